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
	"time"

	"go.uber.org/zap"

	"BasaltCore/client"
	"BasaltCore/protocol/packets"
	"BasaltCore/world"
	"github.com/Tnze/go-mc/server"
)

type playerList struct {
	// keepAlive перевіряє чи гравці ще підключені
	keepAlive *server.KeepAlive
	// pingList зберігає список гравців для списку серверів
	pingList *server.PlayerList
}

// addPlayer shows the new player to everyone online and everyone online
// to the new player.
func (pl *playerList) addPlayer(c *client.Client, p *world.Player) {
	pl.pingList.ClientJoin(c, server.PlayerSample{
		Name: p.Name,
		ID:   p.UUID,
	})
	pl.keepAlive.ClientJoin(c)
	client.AddHandler(c, keepAliveHandler(pl.keepAlive))
	players := make([]*world.Player, 0, pl.pingList.Len())
	pl.forEach(func(cc *client.Client) {
		if cc != c {
			cc.SendPlayerListAdd([]*world.Player{p})
		}
		players = append(players, cc.GetPlayer())
	})
	c.SendPlayerListAdd(players)
}

func (pl *playerList) updateLatency(c *client.Client, latency time.Duration) {
	p := c.GetPlayer()
	p.Inputs.Lock()
	p.Inputs.Latency = latency
	p.Inputs.Unlock()
	c.Log().Debug("Latency", zap.Duration("latency", latency))
	pl.forEach(func(cc *client.Client) {
		cc.SendPlayerListLatency([]*world.Player{p})
	})
}

func (pl *playerList) removePlayer(c *client.Client) {
	pl.pingList.ClientLeft(c)
	pl.keepAlive.ClientLeft(c)
	p := c.GetPlayer()
	pl.forEach(func(cc *client.Client) {
		cc.SendPlayerListRemove([]*world.Player{p})
	})
}

// forEach calls f for every player online.
func (pl *playerList) forEach(f func(c *client.Client)) {
	pl.pingList.Range(func(c server.PlayerListClient, _ server.PlayerSample) {
		f(c.(*client.Client))
	})
}

func keepAliveHandler(k *server.KeepAlive) func(p *packets.ServerboundKeepAlive, c *client.Client) error {
	return func(p *packets.ServerboundKeepAlive, c *client.Client) error {
		k.ClientTick(c)
		return nil
	}
}
