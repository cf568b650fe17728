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

package packets

import (
	"fmt"

	"github.com/google/uuid"

	"BasaltCore/protocol"
)

func playOut(id int32, size int) protocol.Descriptor {
	return protocol.Descriptor{ID: id, Phase: protocol.Play, Direction: protocol.Clientbound, ExpectedSize: size}
}

// SpawnObject spawns a non living entity. Type 2 is a dropped item.
type SpawnObject struct {
	EntityID   int32
	UUID       uuid.UUID
	Type       int8
	X, Y, Z    float64
	Pitch, Yaw int8
	Data       int32
	VelocityX  int16
	VelocityY  int16
	VelocityZ  int16
}

const ObjectItemStack = 2

func (*SpawnObject) Descriptor() protocol.Descriptor { return playOut(0x00, 51) }

func (p *SpawnObject) ReadFields(b *protocol.Buffer) (err error) {
	if p.EntityID, err = b.ReadVarInt(); err != nil {
		return
	}
	if p.UUID, err = b.ReadUUID(); err != nil {
		return
	}
	if p.Type, err = b.ReadInt8(); err != nil {
		return
	}
	if p.X, err = b.ReadFloat64(); err != nil {
		return
	}
	if p.Y, err = b.ReadFloat64(); err != nil {
		return
	}
	if p.Z, err = b.ReadFloat64(); err != nil {
		return
	}
	if p.Pitch, err = b.ReadInt8(); err != nil {
		return
	}
	if p.Yaw, err = b.ReadInt8(); err != nil {
		return
	}
	if p.Data, err = b.ReadInt32(); err != nil {
		return
	}
	if p.VelocityX, err = b.ReadInt16(); err != nil {
		return
	}
	if p.VelocityY, err = b.ReadInt16(); err != nil {
		return
	}
	p.VelocityZ, err = b.ReadInt16()
	return
}

func (p *SpawnObject) WriteFields(b *protocol.Buffer) {
	b.WriteVarInt(p.EntityID)
	b.WriteUUID(p.UUID)
	b.WriteInt8(p.Type)
	b.WriteFloat64(p.X)
	b.WriteFloat64(p.Y)
	b.WriteFloat64(p.Z)
	b.WriteInt8(p.Pitch)
	b.WriteInt8(p.Yaw)
	b.WriteInt32(p.Data)
	b.WriteInt16(p.VelocityX)
	b.WriteInt16(p.VelocityY)
	b.WriteInt16(p.VelocityZ)
}

// Painting facing, clockwise from south.
const (
	FacingSouth uint8 = iota
	FacingWest
	FacingNorth
	FacingEast
)

// SpawnPainting places a painting. Title is an art title, at most 13
// characters long.
type SpawnPainting struct {
	EntityID  int32
	UUID      uuid.UUID
	Title     string
	Location  protocol.BlockLocation
	Direction uint8
}

func (*SpawnPainting) Descriptor() protocol.Descriptor { return playOut(0x04, 44) }

func (p *SpawnPainting) ReadFields(b *protocol.Buffer) (err error) {
	if p.EntityID, err = b.ReadVarInt(); err != nil {
		return
	}
	if p.UUID, err = b.ReadUUID(); err != nil {
		return
	}
	if p.Title, err = b.ReadText(13); err != nil {
		return
	}
	if p.Location, err = b.ReadBlockLocation(); err != nil {
		return
	}
	p.Direction, err = b.ReadUint8()
	return
}

func (p *SpawnPainting) WriteFields(b *protocol.Buffer) {
	b.WriteVarInt(p.EntityID)
	b.WriteUUID(p.UUID)
	b.WriteText(p.Title)
	b.WriteBlockLocation(p.Location)
	b.WriteUint8(p.Direction)
}

// ClientboundChatMessage positions.
const (
	ChatPositionChat int8 = iota
	ChatPositionSystem
	ChatPositionActionBar
)

type ClientboundChatMessage struct {
	JSON     string
	Position int8
}

func (*ClientboundChatMessage) Descriptor() protocol.Descriptor { return playOut(0x0F, 64) }

func (p *ClientboundChatMessage) ReadFields(b *protocol.Buffer) (err error) {
	if p.JSON, err = b.ReadText(protocol.MaxTextLength); err != nil {
		return
	}
	p.Position, err = b.ReadInt8()
	return
}

func (p *ClientboundChatMessage) WriteFields(b *protocol.Buffer) {
	b.WriteText(p.JSON)
	b.WriteInt8(p.Position)
}

// Transaction answers a click window packet.
type Transaction struct {
	WindowID     int8
	ActionNumber int16
	Accepted     bool
}

func (*Transaction) Descriptor() protocol.Descriptor { return playOut(0x11, 4) }

func (p *Transaction) ReadFields(b *protocol.Buffer) (err error) {
	if p.WindowID, err = b.ReadInt8(); err != nil {
		return
	}
	if p.ActionNumber, err = b.ReadInt16(); err != nil {
		return
	}
	p.Accepted, err = b.ReadBool()
	return
}

func (p *Transaction) WriteFields(b *protocol.Buffer) {
	b.WriteInt8(p.WindowID)
	b.WriteInt16(p.ActionNumber)
	b.WriteBool(p.Accepted)
}

type ClientboundCloseWindow struct {
	WindowID uint8
}

func (*ClientboundCloseWindow) Descriptor() protocol.Descriptor { return playOut(0x12, 1) }

func (p *ClientboundCloseWindow) ReadFields(b *protocol.Buffer) (err error) {
	p.WindowID, err = b.ReadUint8()
	return
}
func (p *ClientboundCloseWindow) WriteFields(b *protocol.Buffer) { b.WriteUint8(p.WindowID) }

// OpenWindow shows a container. EntityID is only sent for horse windows.
type OpenWindow struct {
	WindowID  uint8
	Type      string
	TitleJSON string
	Slots     uint8
	EntityID  int32
}

const horseWindow = "EntityHorse"

func (*OpenWindow) Descriptor() protocol.Descriptor { return playOut(0x13, 48) }

func (p *OpenWindow) ReadFields(b *protocol.Buffer) (err error) {
	if p.WindowID, err = b.ReadUint8(); err != nil {
		return
	}
	if p.Type, err = b.ReadText(32); err != nil {
		return
	}
	if p.TitleJSON, err = b.ReadText(protocol.MaxTextLength); err != nil {
		return
	}
	if p.Slots, err = b.ReadUint8(); err != nil {
		return
	}
	if p.Type == horseWindow {
		p.EntityID, err = b.ReadInt32()
	}
	return
}

func (p *OpenWindow) WriteFields(b *protocol.Buffer) {
	b.WriteUint8(p.WindowID)
	b.WriteText(p.Type)
	b.WriteText(p.TitleJSON)
	b.WriteUint8(p.Slots)
	if p.Type == horseWindow {
		b.WriteInt32(p.EntityID)
	}
}

// WindowItems replaces the content of every slot of a window.
type WindowItems struct {
	WindowID uint8
	Items    []Slot
}

func (*WindowItems) Descriptor() protocol.Descriptor { return playOut(0x14, 3+46*6) }

func (p *WindowItems) ReadFields(b *protocol.Buffer) error {
	var err error
	if p.WindowID, err = b.ReadUint8(); err != nil {
		return err
	}
	n, err := b.ReadInt16()
	if err != nil {
		return err
	}
	if n < 0 {
		n = 0
	}
	p.Items = make([]Slot, n)
	for i := range p.Items {
		if p.Items[i], err = ReadSlot(b); err != nil {
			return err
		}
	}
	return nil
}

func (p *WindowItems) WriteFields(b *protocol.Buffer) {
	b.WriteUint8(p.WindowID)
	b.WriteInt16(int16(len(p.Items)))
	for _, s := range p.Items {
		WriteSlot(b, s)
	}
}

// SetSlot updates one slot. Window -1 with slot -1 sets the cursor.
type SetSlot struct {
	WindowID int8
	Slot     int16
	Item     Slot
}

const CursorWindow = -1

func (*SetSlot) Descriptor() protocol.Descriptor { return playOut(0x16, 9) }

func (p *SetSlot) ReadFields(b *protocol.Buffer) (err error) {
	if p.WindowID, err = b.ReadInt8(); err != nil {
		return
	}
	if p.Slot, err = b.ReadInt16(); err != nil {
		return
	}
	p.Item, err = ReadSlot(b)
	return
}

func (p *SetSlot) WriteFields(b *protocol.Buffer) {
	b.WriteInt8(p.WindowID)
	b.WriteInt16(p.Slot)
	WriteSlot(b, p.Item)
}

type Disconnect struct {
	Reason string
}

func (*Disconnect) Descriptor() protocol.Descriptor { return playOut(0x1A, 64) }

func (p *Disconnect) ReadFields(b *protocol.Buffer) (err error) {
	p.Reason, err = b.ReadText(protocol.MaxTextLength)
	return
}
func (p *Disconnect) WriteFields(b *protocol.Buffer) { b.WriteText(p.Reason) }

type ClientboundKeepAlive struct {
	ID int32
}

func (*ClientboundKeepAlive) Descriptor() protocol.Descriptor { return playOut(0x1F, 5) }

func (p *ClientboundKeepAlive) ReadFields(b *protocol.Buffer) (err error) {
	p.ID, err = b.ReadVarInt()
	return
}
func (p *ClientboundKeepAlive) WriteFields(b *protocol.Buffer) { b.WriteVarInt(p.ID) }

type JoinGame struct {
	EntityID         int32
	Gamemode         uint8
	Dimension        int8
	Difficulty       uint8
	MaxPlayers       uint8
	LevelType        string
	ReducedDebugInfo bool
}

func (*JoinGame) Descriptor() protocol.Descriptor { return playOut(0x23, 17) }

func (p *JoinGame) ReadFields(b *protocol.Buffer) (err error) {
	if p.EntityID, err = b.ReadInt32(); err != nil {
		return
	}
	if p.Gamemode, err = b.ReadUint8(); err != nil {
		return
	}
	if p.Dimension, err = b.ReadInt8(); err != nil {
		return
	}
	if p.Difficulty, err = b.ReadUint8(); err != nil {
		return
	}
	if p.MaxPlayers, err = b.ReadUint8(); err != nil {
		return
	}
	if p.LevelType, err = b.ReadText(16); err != nil {
		return
	}
	p.ReducedDebugInfo, err = b.ReadBool()
	return
}

func (p *JoinGame) WriteFields(b *protocol.Buffer) {
	b.WriteInt32(p.EntityID)
	b.WriteUint8(p.Gamemode)
	b.WriteInt8(p.Dimension)
	b.WriteUint8(p.Difficulty)
	b.WriteUint8(p.MaxPlayers)
	b.WriteText(p.LevelType)
	b.WriteBool(p.ReducedDebugInfo)
}

// Player list actions.
const (
	PlayerListAdd int32 = iota
	PlayerListGamemode
	PlayerListLatency
	PlayerListDisplayName
	PlayerListRemove
)

// PlayerListEntry is one row of the tab list. Which fields travel depends
// on the action of the packet. An empty DisplayName means the plain name.
type PlayerListEntry struct {
	UUID        uuid.UUID
	Name        string
	Gamemode    int32
	Ping        int32
	DisplayName string
}

// PlayerListItem adds, updates or removes rows of the tab list. Skin
// properties are never sent, the client then falls back to the default
// skin.
type PlayerListItem struct {
	Action  int32
	Players []PlayerListEntry
}

func (*PlayerListItem) Descriptor() protocol.Descriptor { return playOut(0x2D, 32) }

func (p *PlayerListItem) ReadFields(b *protocol.Buffer) error {
	var err error
	if p.Action, err = b.ReadVarInt(); err != nil {
		return err
	}
	if p.Action < PlayerListAdd || p.Action > PlayerListRemove {
		return fmt.Errorf("player list: unknown action %d", p.Action)
	}
	n, err := b.ReadVarInt()
	if err != nil {
		return err
	}
	// every entry starts with a 16 byte uuid
	if n < 0 || int(n) > b.Remaining()/16 {
		return fmt.Errorf("%w: %d player list entries declared", protocol.ErrTruncatedPacket, n)
	}
	p.Players = make([]PlayerListEntry, n)
	for i := range p.Players {
		if err := p.Players[i].read(b, p.Action); err != nil {
			return err
		}
	}
	return nil
}

func (e *PlayerListEntry) read(b *protocol.Buffer, action int32) (err error) {
	if e.UUID, err = b.ReadUUID(); err != nil {
		return
	}
	switch action {
	case PlayerListAdd:
		if e.Name, err = b.ReadText(16); err != nil {
			return
		}
		if err = skipProperties(b); err != nil {
			return
		}
		if e.Gamemode, err = b.ReadVarInt(); err != nil {
			return
		}
		if e.Ping, err = b.ReadVarInt(); err != nil {
			return
		}
		e.DisplayName, err = readOptionalText(b)
	case PlayerListGamemode:
		e.Gamemode, err = b.ReadVarInt()
	case PlayerListLatency:
		e.Ping, err = b.ReadVarInt()
	case PlayerListDisplayName:
		e.DisplayName, err = readOptionalText(b)
	}
	return
}

func skipProperties(b *protocol.Buffer) error {
	n, err := b.ReadVarInt()
	if err != nil {
		return err
	}
	// name, value and the signed flag take at least three bytes
	if n < 0 || int(n) > b.Remaining()/3 {
		return fmt.Errorf("%w: %d skin properties declared", protocol.ErrTruncatedPacket, n)
	}
	for i := int32(0); i < n; i++ {
		for range 2 {
			if _, err := b.ReadText(protocol.MaxTextLength); err != nil {
				return err
			}
		}
		if _, err := readOptionalText(b); err != nil {
			return err
		}
	}
	return nil
}

func readOptionalText(b *protocol.Buffer) (string, error) {
	ok, err := b.ReadBool()
	if err != nil || !ok {
		return "", err
	}
	return b.ReadText(protocol.MaxTextLength)
}

func (p *PlayerListItem) WriteFields(b *protocol.Buffer) {
	b.WriteVarInt(p.Action)
	b.WriteVarInt(int32(len(p.Players)))
	for _, e := range p.Players {
		b.WriteUUID(e.UUID)
		switch p.Action {
		case PlayerListAdd:
			b.WriteText(e.Name)
			b.WriteVarInt(0)
			b.WriteVarInt(e.Gamemode)
			b.WriteVarInt(e.Ping)
			writeOptionalText(b, e.DisplayName)
		case PlayerListGamemode:
			b.WriteVarInt(e.Gamemode)
		case PlayerListLatency:
			b.WriteVarInt(e.Ping)
		case PlayerListDisplayName:
			writeOptionalText(b, e.DisplayName)
		}
	}
}

func writeOptionalText(b *protocol.Buffer, json string) {
	b.WriteBool(json != "")
	if json != "" {
		b.WriteText(json)
	}
}

type PlayerPositionLook struct {
	X, Y, Z    float64
	Yaw, Pitch float32
	Flags      int8
	TeleportID int32
}

func (*PlayerPositionLook) Descriptor() protocol.Descriptor { return playOut(0x2E, 38) }

func (p *PlayerPositionLook) ReadFields(b *protocol.Buffer) (err error) {
	if p.X, err = b.ReadFloat64(); err != nil {
		return
	}
	if p.Y, err = b.ReadFloat64(); err != nil {
		return
	}
	if p.Z, err = b.ReadFloat64(); err != nil {
		return
	}
	if p.Yaw, err = b.ReadFloat32(); err != nil {
		return
	}
	if p.Pitch, err = b.ReadFloat32(); err != nil {
		return
	}
	if p.Flags, err = b.ReadInt8(); err != nil {
		return
	}
	p.TeleportID, err = b.ReadVarInt()
	return
}

func (p *PlayerPositionLook) WriteFields(b *protocol.Buffer) {
	b.WriteFloat64(p.X)
	b.WriteFloat64(p.Y)
	b.WriteFloat64(p.Z)
	b.WriteFloat32(p.Yaw)
	b.WriteFloat32(p.Pitch)
	b.WriteInt8(p.Flags)
	b.WriteVarInt(p.TeleportID)
}

type DestroyEntities struct {
	EntityIDs []int32
}

func (*DestroyEntities) Descriptor() protocol.Descriptor { return playOut(0x30, 6) }

func (p *DestroyEntities) ReadFields(b *protocol.Buffer) error {
	n, err := b.ReadVarInt()
	if err != nil {
		return err
	}
	// every id takes at least one byte
	if n < 0 || int(n) > b.Remaining() {
		return fmt.Errorf("%w: %d entity ids declared", protocol.ErrTruncatedPacket, n)
	}
	p.EntityIDs = make([]int32, n)
	for i := range p.EntityIDs {
		if p.EntityIDs[i], err = b.ReadVarInt(); err != nil {
			return err
		}
	}
	return nil
}

func (p *DestroyEntities) WriteFields(b *protocol.Buffer) {
	b.WriteVarInt(int32(len(p.EntityIDs)))
	for _, id := range p.EntityIDs {
		b.WriteVarInt(id)
	}
}

type EntityMetadata struct {
	EntityID int32
	Metadata Metadata
}

func (*EntityMetadata) Descriptor() protocol.Descriptor { return playOut(0x39, 16) }

func (p *EntityMetadata) ReadFields(b *protocol.Buffer) (err error) {
	if p.EntityID, err = b.ReadVarInt(); err != nil {
		return
	}
	p.Metadata, err = readMetadata(b)
	return
}

func (p *EntityMetadata) WriteFields(b *protocol.Buffer) {
	b.WriteVarInt(p.EntityID)
	p.Metadata.write(b)
}

// SoundEffect plays a sound at a point. The coordinates are fixed point
// numbers, eight per block, and Pitch 63 is normal speed.
type SoundEffect struct {
	SoundID int32
	X, Y, Z int32
	Volume  float32
	Pitch   uint8
}

func (*SoundEffect) Descriptor() protocol.Descriptor { return playOut(0x47, 22) }

// NewSoundEffect converts a world position into the fixed point form.
func NewSoundEffect(sound int32, pos [3]float64, volume float32, pitch uint8) *SoundEffect {
	return &SoundEffect{
		SoundID: sound,
		X:       int32(pos[0] * 8),
		Y:       int32(pos[1] * 8),
		Z:       int32(pos[2] * 8),
		Volume:  volume,
		Pitch:   pitch,
	}
}

func (p *SoundEffect) ReadFields(b *protocol.Buffer) (err error) {
	if p.SoundID, err = b.ReadVarInt(); err != nil {
		return
	}
	if p.X, err = b.ReadInt32(); err != nil {
		return
	}
	if p.Y, err = b.ReadInt32(); err != nil {
		return
	}
	if p.Z, err = b.ReadInt32(); err != nil {
		return
	}
	if p.Volume, err = b.ReadFloat32(); err != nil {
		return
	}
	p.Pitch, err = b.ReadUint8()
	return
}

func (p *SoundEffect) WriteFields(b *protocol.Buffer) {
	b.WriteVarInt(p.SoundID)
	b.WriteInt32(p.X)
	b.WriteInt32(p.Y)
	b.WriteInt32(p.Z)
	b.WriteFloat32(p.Volume)
	b.WriteUint8(p.Pitch)
}
