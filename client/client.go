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

// Йоу, чат! Клієнт - це одне з'єднання з гравцем. Дві горутини:
// одна читає пакети і віддає їх обробникам, друга пише пакети з черги.

package client

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"BasaltCore/protocol"
	"BasaltCore/protocol/packets"
	"BasaltCore/world"
	"github.com/Tnze/go-mc/chat"
	"github.com/Tnze/go-mc/net"
	pk "github.com/Tnze/go-mc/net/packet"
	"github.com/Tnze/go-mc/net/queue"
	"github.com/Tnze/go-mc/server"
)

// Client is one player connection.
type Client struct {
	log      *zap.Logger
	conn     *net.Conn
	registry *protocol.Registry
	phase    protocol.Phase
	queue    server.PacketQueue
	// closed guards queue, nothing is pushed once it is set
	queueMu  sync.RWMutex
	closed   bool
	handlers map[reflect.Type]PacketHandler
	limiter  *rate.Limiter

	player *world.Player
	// Inputs points at the player's inputs once a player is attached.
	*world.Inputs
}

// PacketHandler handles one decoded serverbound packet. An error ends the
// connection.
type PacketHandler func(p protocol.Packet, c *Client) error

// AddHandler registers h for packets of type P, replacing any previous one.
func AddHandler[P protocol.Packet](c *Client, h func(p P, c *Client) error) {
	c.handlers[reflect.TypeFor[P]()] = func(p protocol.Packet, c *Client) error {
		return h(p.(P), c)
	}
}

// New wraps conn. limiter may be nil for no packet rate limit.
func New(log *zap.Logger, conn *net.Conn, registry *protocol.Registry, limiter *rate.Limiter) *Client {
	c := &Client{
		log:      log,
		conn:     conn,
		registry: registry,
		phase:    protocol.Handshake,
		queue:    queue.NewChannelQueue[pk.Packet](256),
		handlers: make(map[reflect.Type]PacketHandler),
		limiter:  limiter,
	}
	AddHandler(c, clientTeleportConfirm)
	AddHandler(c, clientSettings)
	AddHandler(c, clientHeldItemChange)
	AddHandler(c, clientSteerBoat)
	AddHandler(c, clientPlayerPosition)
	AddHandler(c, clientPlayerPositionAndLook)
	AddHandler(c, clientPlayerLook)
	return c
}

// SetPlayer attaches the player this connection plays as.
func (c *Client) SetPlayer(p *world.Player) {
	c.player = p
	c.Inputs = &p.Inputs
}

func (c *Client) GetPlayer() *world.Player { return c.player }

func (c *Client) Log() *zap.Logger { return c.log }

func (c *Client) Phase() protocol.Phase { return c.phase }

// SetPhase switches the packet id space. Only forward transitions are
// allowed.
func (c *Client) SetPhase(next protocol.Phase) error {
	if !c.phase.CanTransition(next) {
		return fmt.Errorf("client: cannot go from %v to %v", c.phase, next)
	}
	c.log.Debug("Switch phase", zap.Stringer("from", c.phase), zap.Stringer("to", next))
	c.phase = next
	return nil
}

// ReadPacket reads and decodes one serverbound packet of the current phase.
// Errors wrapping protocol.ErrUnknownPacketID leave the connection usable.
func (c *Client) ReadPacket() (protocol.Packet, error) {
	var frame pk.Packet
	if err := c.conn.ReadPacket(&frame); err != nil {
		return nil, err
	}
	p, trailing, err := c.registry.DecodeFrame(c.phase, protocol.Serverbound, frame)
	if err != nil {
		return nil, err
	}
	if trailing > 0 {
		c.log.Debug("Trailing packet bytes", zap.Stringer("packet", p.Descriptor()), zap.Int("len", trailing))
	}
	return p, nil
}

// WritePacket encodes p and writes it right away, bypassing the send
// queue. It is meant for the phases before Start.
func (c *Client) WritePacket(p protocol.Packet) error {
	frame, err := c.registry.Encode(p)
	if err != nil {
		return err
	}
	return c.conn.WritePacket(frame)
}

// SendPacket queues p for the send loop. Packets sent after the
// connection ended are dropped.
func (c *Client) SendPacket(p protocol.Packet) {
	frame, err := c.registry.Encode(p)
	if err != nil {
		c.log.Panic("Marshal packet error", zap.Error(err))
	}
	c.queueMu.RLock()
	defer c.queueMu.RUnlock()
	if c.closed {
		return
	}
	c.queue.Push(frame)
}

// SetThreshold turns on compression for packets of at least n bytes.
func (c *Client) SetThreshold(n int) { c.conn.SetThreshold(n) }

// Start runs the connection until either side gives up. It returns once
// both loops have stopped.
func (c *Client) Start() {
	sent := make(chan struct{})
	go func() {
		defer close(sent)
		c.startSend()
	}()
	c.startReceive()
	c.closeQueue()
	<-sent
}

func (c *Client) closeQueue() {
	c.queueMu.Lock()
	defer c.queueMu.Unlock()
	if !c.closed {
		c.closed = true
		c.queue.Close()
	}
}

var disconnectID = (*packets.Disconnect)(nil).Descriptor().ID

func (c *Client) startSend() {
	c.sendLoop()
	// closing the socket also wakes up the receive loop
	_ = c.conn.Close()
	// keep draining so that SendPacket never blocks on a full queue
	for {
		if _, ok := c.queue.Pull(); !ok {
			return
		}
	}
}

func (c *Client) sendLoop() {
	for {
		p, ok := c.queue.Pull()
		if !ok {
			return
		}
		if err := c.conn.WritePacket(p); err != nil {
			c.log.Debug("Send packet fail", zap.Error(err))
			return
		}
		if p.ID == disconnectID {
			return
		}
	}
}

func (c *Client) startReceive() {
	for {
		p, err := c.ReadPacket()
		if c.limiter != nil && !c.limiter.Allow() {
			c.log.Info("Packet rate limit exceeded")
			c.SendDisconnect(chat.TranslateMsg("disconnect.spam"))
			return
		}
		if protocol.IsFatal(err) {
			c.log.Debug("Receive packet fail", zap.Error(err))
			return
		}
		if err != nil {
			c.log.Debug("Skip unknown packet", zap.Error(err))
			continue
		}
		handler, ok := c.handlers[reflect.TypeOf(p)]
		if !ok {
			c.log.Debug("Unhandled packet", zap.Stringer("packet", p.Descriptor()))
			continue
		}
		if err := handler(p, c); err != nil {
			c.log.Error("Handle packet error", zap.Stringer("packet", p.Descriptor()), zap.Error(err))
			return
		}
	}
}
