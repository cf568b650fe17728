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

import "BasaltCore/protocol"

func playIn(id int32, size int) protocol.Descriptor {
	return protocol.Descriptor{ID: id, Phase: protocol.Play, Direction: protocol.Serverbound, ExpectedSize: size}
}

type TeleportConfirm struct {
	TeleportID int32
}

func (*TeleportConfirm) Descriptor() protocol.Descriptor { return playIn(0x00, 5) }

func (p *TeleportConfirm) ReadFields(b *protocol.Buffer) (err error) {
	p.TeleportID, err = b.ReadVarInt()
	return
}
func (p *TeleportConfirm) WriteFields(b *protocol.Buffer) { b.WriteVarInt(p.TeleportID) }

type ServerboundChatMessage struct {
	Message string
}

func (*ServerboundChatMessage) Descriptor() protocol.Descriptor { return playIn(0x02, 64) }

func (p *ServerboundChatMessage) ReadFields(b *protocol.Buffer) (err error) {
	p.Message, err = b.ReadText(256)
	return
}
func (p *ServerboundChatMessage) WriteFields(b *protocol.Buffer) { b.WriteText(p.Message) }

// ConfirmTransaction is the client acknowledging a rejected transaction.
type ConfirmTransaction struct {
	WindowID     int8
	ActionNumber int16
	Accepted     bool
}

func (*ConfirmTransaction) Descriptor() protocol.Descriptor { return playIn(0x05, 4) }

func (p *ConfirmTransaction) ReadFields(b *protocol.Buffer) (err error) {
	if p.WindowID, err = b.ReadInt8(); err != nil {
		return
	}
	if p.ActionNumber, err = b.ReadInt16(); err != nil {
		return
	}
	p.Accepted, err = b.ReadBool()
	return
}

func (p *ConfirmTransaction) WriteFields(b *protocol.Buffer) {
	b.WriteInt8(p.WindowID)
	b.WriteInt16(p.ActionNumber)
	b.WriteBool(p.Accepted)
}

// ClientSettings is sent after joining and whenever the player changes
// the client options.
type ClientSettings struct {
	Locale             string
	ViewDistance       int8
	ChatMode           int32
	ChatColors         bool
	DisplayedSkinParts uint8
	MainHand           int32
}

func (*ClientSettings) Descriptor() protocol.Descriptor { return playIn(0x04, 24) }

func (p *ClientSettings) ReadFields(b *protocol.Buffer) (err error) {
	if p.Locale, err = b.ReadText(16); err != nil {
		return
	}
	if p.ViewDistance, err = b.ReadInt8(); err != nil {
		return
	}
	if p.ChatMode, err = b.ReadVarInt(); err != nil {
		return
	}
	if p.ChatColors, err = b.ReadBool(); err != nil {
		return
	}
	if p.DisplayedSkinParts, err = b.ReadUint8(); err != nil {
		return
	}
	p.MainHand, err = b.ReadVarInt()
	return
}

func (p *ClientSettings) WriteFields(b *protocol.Buffer) {
	b.WriteText(p.Locale)
	b.WriteInt8(p.ViewDistance)
	b.WriteVarInt(p.ChatMode)
	b.WriteBool(p.ChatColors)
	b.WriteUint8(p.DisplayedSkinParts)
	b.WriteVarInt(p.MainHand)
}

// ClickWindow carries one inventory click. Item is what the client thinks
// the clicked slot held before the click.
type ClickWindow struct {
	WindowID     uint8
	Slot         int16
	Button       int8
	ActionNumber int16
	Mode         int32
	Item         Slot
}

func (*ClickWindow) Descriptor() protocol.Descriptor { return playIn(0x07, 16) }

func (p *ClickWindow) ReadFields(b *protocol.Buffer) (err error) {
	if p.WindowID, err = b.ReadUint8(); err != nil {
		return
	}
	if p.Slot, err = b.ReadInt16(); err != nil {
		return
	}
	if p.Button, err = b.ReadInt8(); err != nil {
		return
	}
	if p.ActionNumber, err = b.ReadInt16(); err != nil {
		return
	}
	if p.Mode, err = b.ReadVarInt(); err != nil {
		return
	}
	p.Item, err = ReadSlot(b)
	return
}

func (p *ClickWindow) WriteFields(b *protocol.Buffer) {
	b.WriteUint8(p.WindowID)
	b.WriteInt16(p.Slot)
	b.WriteInt8(p.Button)
	b.WriteInt16(p.ActionNumber)
	b.WriteVarInt(p.Mode)
	WriteSlot(b, p.Item)
}

type ServerboundCloseWindow struct {
	WindowID uint8
}

func (*ServerboundCloseWindow) Descriptor() protocol.Descriptor { return playIn(0x08, 1) }

func (p *ServerboundCloseWindow) ReadFields(b *protocol.Buffer) (err error) {
	p.WindowID, err = b.ReadUint8()
	return
}
func (p *ServerboundCloseWindow) WriteFields(b *protocol.Buffer) { b.WriteUint8(p.WindowID) }

type ServerboundKeepAlive struct {
	ID int32
}

func (*ServerboundKeepAlive) Descriptor() protocol.Descriptor { return playIn(0x0B, 5) }

func (p *ServerboundKeepAlive) ReadFields(b *protocol.Buffer) (err error) {
	p.ID, err = b.ReadVarInt()
	return
}
func (p *ServerboundKeepAlive) WriteFields(b *protocol.Buffer) { b.WriteVarInt(p.ID) }

// PlayerPosition is sent while the player walks without turning. FeetY
// is the bottom of the player's hitbox.
type PlayerPosition struct {
	X, FeetY, Z float64
	OnGround    bool
}

func (*PlayerPosition) Descriptor() protocol.Descriptor { return playIn(0x0C, 25) }

func (p *PlayerPosition) ReadFields(b *protocol.Buffer) (err error) {
	if err = readXYZ(b, &p.X, &p.FeetY, &p.Z); err != nil {
		return
	}
	p.OnGround, err = b.ReadBool()
	return
}

func (p *PlayerPosition) WriteFields(b *protocol.Buffer) {
	writeXYZ(b, p.X, p.FeetY, p.Z)
	b.WriteBool(p.OnGround)
}

type PlayerPositionAndLook struct {
	X, FeetY, Z float64
	Yaw, Pitch  float32
	OnGround    bool
}

func (*PlayerPositionAndLook) Descriptor() protocol.Descriptor { return playIn(0x0D, 33) }

func (p *PlayerPositionAndLook) ReadFields(b *protocol.Buffer) (err error) {
	if err = readXYZ(b, &p.X, &p.FeetY, &p.Z); err != nil {
		return
	}
	if p.Yaw, err = b.ReadFloat32(); err != nil {
		return
	}
	if p.Pitch, err = b.ReadFloat32(); err != nil {
		return
	}
	p.OnGround, err = b.ReadBool()
	return
}

func (p *PlayerPositionAndLook) WriteFields(b *protocol.Buffer) {
	writeXYZ(b, p.X, p.FeetY, p.Z)
	b.WriteFloat32(p.Yaw)
	b.WriteFloat32(p.Pitch)
	b.WriteBool(p.OnGround)
}

type PlayerLook struct {
	Yaw, Pitch float32
	OnGround   bool
}

func (*PlayerLook) Descriptor() protocol.Descriptor { return playIn(0x0E, 9) }

func (p *PlayerLook) ReadFields(b *protocol.Buffer) (err error) {
	if p.Yaw, err = b.ReadFloat32(); err != nil {
		return
	}
	if p.Pitch, err = b.ReadFloat32(); err != nil {
		return
	}
	p.OnGround, err = b.ReadBool()
	return
}

func (p *PlayerLook) WriteFields(b *protocol.Buffer) {
	b.WriteFloat32(p.Yaw)
	b.WriteFloat32(p.Pitch)
	b.WriteBool(p.OnGround)
}

func readXYZ(b *protocol.Buffer, x, y, z *float64) (err error) {
	for _, v := range [...]*float64{x, y, z} {
		if *v, err = b.ReadFloat64(); err != nil {
			return
		}
	}
	return
}

func writeXYZ(b *protocol.Buffer, x, y, z float64) {
	b.WriteFloat64(x)
	b.WriteFloat64(y)
	b.WriteFloat64(z)
}

type SteerBoat struct {
	Right, Left bool
}

func (*SteerBoat) Descriptor() protocol.Descriptor { return playIn(0x11, 2) }

func (p *SteerBoat) ReadFields(b *protocol.Buffer) (err error) {
	if p.Right, err = b.ReadBool(); err != nil {
		return
	}
	p.Left, err = b.ReadBool()
	return
}

func (p *SteerBoat) WriteFields(b *protocol.Buffer) {
	b.WriteBool(p.Right)
	b.WriteBool(p.Left)
}

// HeldItemChange selects a hotbar slot, 0 to 8.
type HeldItemChange struct {
	Slot int16
}

func (*HeldItemChange) Descriptor() protocol.Descriptor { return playIn(0x17, 2) }

func (p *HeldItemChange) ReadFields(b *protocol.Buffer) (err error) {
	p.Slot, err = b.ReadInt16()
	return
}
func (p *HeldItemChange) WriteFields(b *protocol.Buffer) { b.WriteInt16(p.Slot) }
