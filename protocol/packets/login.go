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

// Handshake opens every connection and picks the next phase.
type Handshake struct {
	ProtocolVersion int32
	Address         string
	Port            uint16
	NextPhase       int32
}

func (*Handshake) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{ID: 0x00, Phase: protocol.Handshake, Direction: protocol.Serverbound, ExpectedSize: 32}
}

func (p *Handshake) ReadFields(b *protocol.Buffer) (err error) {
	if p.ProtocolVersion, err = b.ReadVarInt(); err != nil {
		return
	}
	if p.Address, err = b.ReadText(255); err != nil {
		return
	}
	if p.Port, err = b.ReadUint16(); err != nil {
		return
	}
	p.NextPhase, err = b.ReadVarInt()
	return
}

func (p *Handshake) WriteFields(b *protocol.Buffer) {
	b.WriteVarInt(p.ProtocolVersion)
	b.WriteText(p.Address)
	b.WriteUint16(p.Port)
	b.WriteVarInt(p.NextPhase)
}

type StatusRequest struct{}

func (*StatusRequest) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{ID: 0x00, Phase: protocol.Status, Direction: protocol.Serverbound}
}
func (*StatusRequest) ReadFields(*protocol.Buffer) error { return nil }
func (*StatusRequest) WriteFields(*protocol.Buffer)      {}

// StatusResponse carries the server list JSON.
type StatusResponse struct {
	JSON string
}

func (*StatusResponse) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{ID: 0x00, Phase: protocol.Status, Direction: protocol.Clientbound, ExpectedSize: 256}
}

func (p *StatusResponse) ReadFields(b *protocol.Buffer) (err error) {
	p.JSON, err = b.ReadText(protocol.MaxTextLength)
	return
}
func (p *StatusResponse) WriteFields(b *protocol.Buffer) { b.WriteText(p.JSON) }

type StatusPing struct {
	Payload int64
}

func (*StatusPing) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{ID: 0x01, Phase: protocol.Status, Direction: protocol.Serverbound, ExpectedSize: 8}
}

func (p *StatusPing) ReadFields(b *protocol.Buffer) (err error) {
	p.Payload, err = b.ReadInt64()
	return
}
func (p *StatusPing) WriteFields(b *protocol.Buffer) { b.WriteInt64(p.Payload) }

type StatusPong struct {
	Payload int64
}

func (*StatusPong) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{ID: 0x01, Phase: protocol.Status, Direction: protocol.Clientbound, ExpectedSize: 8}
}

func (p *StatusPong) ReadFields(b *protocol.Buffer) (err error) {
	p.Payload, err = b.ReadInt64()
	return
}
func (p *StatusPong) WriteFields(b *protocol.Buffer) { b.WriteInt64(p.Payload) }

type LoginStart struct {
	Name string
}

func (*LoginStart) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{ID: 0x00, Phase: protocol.Login, Direction: protocol.Serverbound, ExpectedSize: 17}
}

func (p *LoginStart) ReadFields(b *protocol.Buffer) (err error) {
	p.Name, err = b.ReadText(16)
	return
}
func (p *LoginStart) WriteFields(b *protocol.Buffer) { b.WriteText(p.Name) }

type LoginDisconnect struct {
	Reason string
}

func (*LoginDisconnect) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{ID: 0x00, Phase: protocol.Login, Direction: protocol.Clientbound, ExpectedSize: 64}
}

func (p *LoginDisconnect) ReadFields(b *protocol.Buffer) (err error) {
	p.Reason, err = b.ReadText(protocol.MaxTextLength)
	return
}
func (p *LoginDisconnect) WriteFields(b *protocol.Buffer) { b.WriteText(p.Reason) }

// LoginSuccess ends the login phase. UUID is in its dashed text form.
type LoginSuccess struct {
	UUID string
	Name string
}

func (*LoginSuccess) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{ID: 0x02, Phase: protocol.Login, Direction: protocol.Clientbound, ExpectedSize: 54}
}

func (p *LoginSuccess) ReadFields(b *protocol.Buffer) (err error) {
	if p.UUID, err = b.ReadText(36); err != nil {
		return
	}
	p.Name, err = b.ReadText(16)
	return
}

func (p *LoginSuccess) WriteFields(b *protocol.Buffer) {
	b.WriteText(p.UUID)
	b.WriteText(p.Name)
}

// SetCompression turns on zlib framing for packets of Threshold bytes and
// more. A negative threshold disables it.
type SetCompression struct {
	Threshold int32
}

func (*SetCompression) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{ID: 0x03, Phase: protocol.Login, Direction: protocol.Clientbound, ExpectedSize: 5}
}

func (p *SetCompression) ReadFields(b *protocol.Buffer) (err error) {
	p.Threshold, err = b.ReadVarInt()
	return
}
func (p *SetCompression) WriteFields(b *protocol.Buffer) { b.WriteVarInt(p.Threshold) }
