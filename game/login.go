// This file is part of go-mc/server project.
// Copyright (C) 2023.  Tnze
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package game

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"BasaltCore/client"
	"BasaltCore/protocol"
	"BasaltCore/protocol/packets"
	"github.com/Tnze/go-mc/chat"
	"github.com/Tnze/go-mc/offline"
	"github.com/Tnze/go-mc/server"
)

// errClosed ends a connection that was refused on purpose.
var errClosed = errors.New("connection refused")

const (
	nextStatus = 1
	nextLogin  = 2
)

// readExpected reads one packet and requires it to be a P.
func readExpected[P protocol.Packet](c *client.Client) (P, error) {
	var zero P
	p, err := c.ReadPacket()
	if err != nil {
		return zero, err
	}
	want, ok := p.(P)
	if !ok {
		return zero, fmt.Errorf("expected %T in %v, got %T", zero, c.Phase(), p)
	}
	return want, nil
}

func (g *Game) handshake(c *client.Client) error {
	hs, err := readExpected[*packets.Handshake](c)
	if err != nil {
		return err
	}
	switch hs.NextPhase {
	case nextStatus:
		if err := c.SetPhase(protocol.Status); err != nil {
			return err
		}
		return g.status(c)
	case nextLogin:
		if err := c.SetPhase(protocol.Login); err != nil {
			return err
		}
		return g.login(c, hs.ProtocolVersion)
	default:
		return fmt.Errorf("unknown next phase %d", hs.NextPhase)
	}
}

type statusVersion struct {
	Name     string `json:"name"`
	Protocol int    `json:"protocol"`
}

type statusPlayers struct {
	Max    int                   `json:"max"`
	Online int                   `json:"online"`
	Sample []server.PlayerSample `json:"sample"`
}

type statusResponse struct {
	Version     statusVersion `json:"version"`
	Players     statusPlayers `json:"players"`
	Description any           `json:"description"`
	FavIcon     string        `json:"favicon,omitempty"`
}

func (g *Game) statusJSON() (string, error) {
	data, err := json.Marshal(statusResponse{
		Version: statusVersion{Name: protocol.VersionName, Protocol: protocol.Version},
		Players: statusPlayers{
			Max:    g.pingList.MaxPlayer(),
			Online: g.pingList.OnlinePlayer(),
			Sample: g.pingList.PlayerSamples(),
		},
		Description: g.serverInfo.Description(),
		FavIcon:     g.serverInfo.FavIcon(),
	})
	return string(data), err
}

// status answers the server list: one request, then ping until the client
// hangs up.
func (g *Game) status(c *client.Client) error {
	for {
		p, err := c.ReadPacket()
		if err != nil {
			return err
		}
		switch p := p.(type) {
		case *packets.StatusRequest:
			resp, err := g.statusJSON()
			if err != nil {
				return err
			}
			if err := c.WritePacket(&packets.StatusResponse{JSON: resp}); err != nil {
				return err
			}
		case *packets.StatusPing:
			return c.WritePacket(&packets.StatusPong{Payload: p.Payload})
		}
	}
}

func (g *Game) login(c *client.Client, protocolVersion int32) error {
	start, err := readExpected[*packets.LoginStart](c)
	if err != nil {
		return err
	}
	log := c.Log().With(zap.String("name", start.Name), zap.Int32("protocol", protocolVersion))

	if protocolVersion != protocol.Version {
		key := "multiplayer.disconnect.outdated_client"
		if protocolVersion > protocol.Version {
			key = "multiplayer.disconnect.outdated_server"
		}
		log.Info("Refuse client version")
		return errors.Join(errClosed, c.Kick(chat.TranslateMsg(key, chat.Text(protocol.VersionName))))
	}
	if start.Name == "" || existInvalidCharacter(start.Name) {
		return errors.Join(errClosed, c.Kick(chat.TranslateMsg("multiplayer.disconnect.invalid_player_data")))
	}

	id := offline.NameToUUID(start.Name)
	if ok, reason := g.pingList.CheckPlayer(start.Name, id, protocolVersion); !ok {
		log.Info("Refuse player", zap.String("reason", reason.ClearString()))
		return errors.Join(errClosed, c.Kick(reason))
	}

	if threshold := g.config.NetworkCompressionThreshold; threshold >= 0 {
		if err := c.WritePacket(&packets.SetCompression{Threshold: int32(threshold)}); err != nil {
			return err
		}
		c.SetThreshold(threshold)
	}
	if err := c.WritePacket(&packets.LoginSuccess{UUID: id.String(), Name: start.Name}); err != nil {
		return err
	}
	if err := c.SetPhase(protocol.Play); err != nil {
		return err
	}
	g.AcceptPlayer(start.Name, id, c)
	return nil
}
