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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"BasaltCore/client"
	"BasaltCore/inventory"
	"BasaltCore/protocol"
	"BasaltCore/protocol/packets"
	"BasaltCore/world"
	"github.com/Tnze/go-mc/chat"
	"github.com/Tnze/go-mc/net"
	"github.com/Tnze/go-mc/server"
)

type Game struct {
	log *zap.Logger

	config     Config
	serverInfo *server.PingInfo
	registry   *protocol.Registry

	overworld    *world.World
	clicks       *inventory.Handler
	sharedChest  *inventory.Inventory
	chestViewers chestViewers

	globalChat globalChat
	*playerList
}

func NewGame(log *zap.Logger, config Config, pingList *server.PlayerList, serverInfo *server.PingInfo) *Game {
	overworld := world.New(log.Named("overworld"), world.Config{
		ViewDistance:  config.ViewDistance,
		SpawnPosition: config.SpawnPosition,
		ItemDespawn:   config.ItemDespawn,
	})

	// keepalive
	keepAlive := server.NewKeepAlive()
	pl := playerList{pingList: pingList, keepAlive: keepAlive}
	keepAlive.AddPlayerDelayUpdateHandler(func(c server.KeepAliveClient, latency time.Duration) {
		pl.updateLatency(c.(*client.Client), latency)
	})

	g := &Game{
		log: log.Named("game"),

		config:     config,
		serverInfo: serverInfo,
		registry:   packets.NewRegistry(),

		overworld:   overworld,
		clicks:      inventory.NewHandler(log.Named("inventory")),
		sharedChest: inventory.NewContainer(27),

		playerList: &pl,
	}
	g.globalChat = globalChat{log: log.Named("chat"), game: g}
	return g
}

// Serve accepts connections until ctx is done, ticking the world and the
// keep alive checks meanwhile.
func (g *Game) Serve(ctx context.Context, l *net.Listener) error {
	go g.keepAlive.Run(ctx)
	go g.overworld.Run(ctx)
	go func() {
		<-ctx.Done()
		_ = l.Close()
	}()
	for {
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		go g.handleConn(&conn)
	}
}

func (g *Game) handleConn(conn *net.Conn) {
	defer conn.Close()
	logger := g.log.With(zap.Stringer("addr", conn.Socket.RemoteAddr()))
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Connection panic", zap.Any("panic", r))
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("addr", conn.Socket.RemoteAddr().String())
			})
			hub.Recover(r)
			hub.Flush(time.Second * 5)
		}
	}()

	c := client.New(logger, conn, g.registry, g.config.PacketLimiter.Limiter())
	if err := g.handshake(c); err != nil && !errors.Is(err, errClosed) {
		logger.Debug("Handshake fail", zap.Error(err))
	}
}

func (g *Game) AcceptPlayer(name string, id uuid.UUID, c *client.Client) {
	logger := c.Log().With(
		zap.String("name", name),
		zap.String("uuid", id.String()),
	)

	p := world.NewPlayer(name, id, g.config.Gamemode, g.overworld.SpawnPosition())
	c.SetPlayer(p)

	logger.Info("Player join", zap.Int32("eid", p.EntityID))
	defer logger.Info("Player left")

	c.SendJoinGame(p, g.config.MaxPlayers)
	c.SendWindowItems(p.PlayerView())

	joinMsg := chat.TranslateMsg("multiplayer.player.joined", chat.Text(p.Name)).SetColor(chat.Yellow)
	leftMsg := chat.TranslateMsg("multiplayer.player.left", chat.Text(p.Name)).SetColor(chat.Yellow)
	g.globalChat.broadcastSystemChat(joinMsg)
	defer g.globalChat.broadcastSystemChat(leftMsg)
	client.AddHandler(c, g.globalChat.Handle)

	g.playerList.addPlayer(c, p)
	defer g.playerList.removePlayer(c)

	// the world sends the spawn position and waits for its confirmation
	g.overworld.AddPlayer(c, p)
	defer g.overworld.RemovePlayer(c, p)
	g.addInventoryHandlers(c)
	// whatever is left on the cursor falls to the ground
	defer g.closeWindow(c, p)

	c.Start()
}
