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

package client

import (
	"encoding/json"
	"math"
	"sync/atomic"

	"go.uber.org/zap"

	"BasaltCore/content"
	"BasaltCore/inventory"
	"BasaltCore/protocol"
	"BasaltCore/protocol/packets"
	"BasaltCore/world"
	"github.com/Tnze/go-mc/chat"
)

var teleportCounter atomic.Int32

func chatJSON(msg chat.Message) string {
	data, err := json.Marshal(msg)
	if err != nil {
		// chat.Message always marshals
		return `{"text":""}`
	}
	return string(data)
}

// SendKeepAlive sends a keep alive with the low bits of id, 1.9 carries it
// as a VarInt.
func (c *Client) SendKeepAlive(id int64) {
	c.SendPacket(&packets.ClientboundKeepAlive{ID: int32(id)})
}

func (c *Client) disconnectPacket(reason chat.Message) protocol.Packet {
	if c.phase == protocol.Login {
		return &packets.LoginDisconnect{Reason: chatJSON(reason)}
	}
	return &packets.Disconnect{Reason: chatJSON(reason)}
}

// SendDisconnect kicks the client. The connection is closed once the
// packet is flushed.
func (c *Client) SendDisconnect(reason chat.Message) {
	c.log.Debug("Disconnect player", zap.String("reason", reason.ClearString()))
	c.SendPacket(c.disconnectPacket(reason))
}

// Kick writes the disconnect right away. It is used before Start, while
// nothing drains the send queue.
func (c *Client) Kick(reason chat.Message) error {
	c.log.Debug("Kick connection", zap.String("reason", reason.ClearString()))
	return c.WritePacket(c.disconnectPacket(reason))
}

func (c *Client) SendJoinGame(p *world.Player, maxPlayers int) {
	c.SendPacket(&packets.JoinGame{
		EntityID:   p.EntityID,
		Gamemode:   uint8(p.Gamemode),
		Dimension:  0,
		Difficulty: 1,
		MaxPlayers: uint8(min(maxPlayers, math.MaxUint8)),
		LevelType:  "flat",
	})
}

// SendPlayerPosition teleports the player and remembers the teleport id the
// client has to confirm.
func (c *Client) SendPlayerPosition(pos world.Position, rot world.Rotation) (teleportID int32) {
	teleportID = teleportCounter.Add(1)
	c.SendPacket(&packets.PlayerPositionLook{
		X: pos[0], Y: pos[1], Z: pos[2],
		Yaw: rot[0], Pitch: rot[1],
		TeleportID: teleportID,
	})
	return
}

func playerListEntries(players []*world.Player) []packets.PlayerListEntry {
	entries := make([]packets.PlayerListEntry, len(players))
	for i, p := range players {
		p.Inputs.Lock()
		latency := p.Inputs.Latency
		p.Inputs.Unlock()
		entries[i] = packets.PlayerListEntry{
			UUID:     p.UUID,
			Name:     p.Name,
			Gamemode: p.Gamemode,
			Ping:     int32(latency.Milliseconds()),
		}
	}
	return entries
}

// SendPlayerListAdd puts players on the tab list with their last known
// latency.
func (c *Client) SendPlayerListAdd(players []*world.Player) {
	c.SendPacket(&packets.PlayerListItem{Action: packets.PlayerListAdd, Players: playerListEntries(players)})
}

func (c *Client) SendPlayerListLatency(players []*world.Player) {
	c.SendPacket(&packets.PlayerListItem{Action: packets.PlayerListLatency, Players: playerListEntries(players)})
}

func (c *Client) SendPlayerListRemove(players []*world.Player) {
	c.SendPacket(&packets.PlayerListItem{Action: packets.PlayerListRemove, Players: playerListEntries(players)})
}

func (c *Client) SendChat(msg chat.Message) {
	c.SendPacket(&packets.ClientboundChatMessage{JSON: chatJSON(msg), Position: packets.ChatPositionChat})
}

func (c *Client) SendSystemChat(msg chat.Message) {
	c.SendPacket(&packets.ClientboundChatMessage{JSON: chatJSON(msg), Position: packets.ChatPositionSystem})
}

func (c *Client) SendTransaction(conf inventory.Confirmation) {
	c.SendPacket(&packets.Transaction{
		WindowID:     int8(conf.WindowID),
		ActionNumber: conf.ActionNumber,
		Accepted:     conf.Accepted,
	})
}

// SendWindowItems sends the whole content of v.
func (c *Client) SendWindowItems(v *inventory.View) {
	items := v.Items()
	slots := make([]packets.Slot, len(items))
	for i, it := range items {
		slots[i] = packets.SlotOf(it)
	}
	c.SendPacket(&packets.WindowItems{WindowID: v.WindowID, Items: slots})
}

// SendSetSlot updates one slot of a window.
func (c *Client) SendSetSlot(windowID uint8, slot int, item *inventory.ItemStack) {
	c.SendPacket(&packets.SetSlot{WindowID: int8(windowID), Slot: int16(slot), Item: packets.SlotOf(item)})
}

// SendCursor overwrites what the client thinks it carries on the cursor.
func (c *Client) SendCursor(item *inventory.ItemStack) {
	c.SendPacket(&packets.SetSlot{WindowID: packets.CursorWindow, Slot: -1, Item: packets.SlotOf(item)})
}

// SendOpenWindow opens v as a chest style window and fills it.
func (c *Client) SendOpenWindow(v *inventory.View, typ string, title chat.Message) {
	c.SendPacket(&packets.OpenWindow{
		WindowID:  v.WindowID,
		Type:      typ,
		TitleJSON: chatJSON(title),
		Slots:     uint8(v.UpperSize()),
	})
	c.SendWindowItems(v)
}

// SendCloseWindow closes a window the server replaces with another one.
func (c *Client) SendCloseWindow(windowID uint8) {
	c.SendPacket(&packets.ClientboundCloseWindow{WindowID: windowID})
}

// velocity in blocks per tick, the client wants 1/8000 of a block per tick
func packVelocity(v float64) int16 {
	return int16(max(min(v*8000, math.MaxInt16), math.MinInt16))
}

func (c *Client) ViewAddItem(it *world.Item) {
	c.SendPacket(&packets.SpawnObject{
		EntityID:  it.EntityID,
		UUID:      it.UUID,
		Type:      packets.ObjectItemStack,
		X:         it.Position[0],
		Y:         it.Position[1],
		Z:         it.Position[2],
		Data:      1,
		VelocityX: packVelocity(it.Velocity[0]),
		VelocityY: packVelocity(it.Velocity[1]),
		VelocityZ: packVelocity(it.Velocity[2]),
	})
	c.SendPacket(&packets.EntityMetadata{
		EntityID: it.EntityID,
		Metadata: packets.ItemMetadata(packets.SlotOf(it.Stack)),
	})
}

func (c *Client) ViewAddPainting(p *world.Painting) {
	c.SendPacket(&packets.SpawnPainting{
		EntityID:  p.EntityID,
		UUID:      p.UUID,
		Title:     p.Art.Title,
		Location:  p.Location,
		Direction: p.Facing,
	})
}

func (c *Client) ViewRemoveEntities(entityIDs []int32) {
	c.SendPacket(&packets.DestroyEntities{EntityIDs: entityIDs})
}

func (c *Client) ViewSound(sound *content.Sound, pos world.Position, volume float32, pitch uint8) {
	c.SendPacket(packets.NewSoundEffect(int32(sound.ID), pos, volume, pitch))
}
