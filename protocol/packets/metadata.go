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

	"BasaltCore/protocol"
)

const metadataEnd = 0xFF

// Metadata is the list of entity attributes sent with EntityMetadata.
// Every entry carries its index and a typed value, the list ends with 0xFF.
type Metadata []MetadataField

type MetadataField struct {
	Index uint8
	Value MetadataValue
}

// MetadataValue is one of the typed values below.
type MetadataValue interface {
	TypeID() int8
	write(b *protocol.Buffer)
}

type (
	MetaByte   int8
	MetaVarInt int32
	MetaFloat  float32
	MetaString string
	MetaSlot   Slot
	MetaBool   bool
)

func (MetaByte) TypeID() int8   { return 0 }
func (MetaVarInt) TypeID() int8 { return 1 }
func (MetaFloat) TypeID() int8  { return 2 }
func (MetaString) TypeID() int8 { return 3 }
func (MetaSlot) TypeID() int8   { return 5 }
func (MetaBool) TypeID() int8   { return 6 }

func (v MetaByte) write(b *protocol.Buffer)   { b.WriteInt8(int8(v)) }
func (v MetaVarInt) write(b *protocol.Buffer) { b.WriteVarInt(int32(v)) }
func (v MetaFloat) write(b *protocol.Buffer)  { b.WriteFloat32(float32(v)) }
func (v MetaString) write(b *protocol.Buffer) { b.WriteText(string(v)) }
func (v MetaSlot) write(b *protocol.Buffer)   { WriteSlot(b, Slot(v)) }
func (v MetaBool) write(b *protocol.Buffer)   { b.WriteBool(bool(v)) }

// Indices used by dropped item entities.
const (
	MetaIndexFlags = 0
	MetaIndexItem  = 6
)

// ItemMetadata describes a dropped item entity holding s.
func ItemMetadata(s Slot) Metadata {
	return Metadata{
		{Index: MetaIndexFlags, Value: MetaByte(0)},
		{Index: MetaIndexItem, Value: MetaSlot(s)},
	}
}

func (m Metadata) write(b *protocol.Buffer) {
	for _, f := range m {
		b.WriteUint8(f.Index)
		b.WriteInt8(f.Value.TypeID())
		f.Value.write(b)
	}
	b.WriteUint8(metadataEnd)
}

func readMetadata(b *protocol.Buffer) (Metadata, error) {
	var m Metadata
	for {
		index, err := b.ReadUint8()
		if err != nil {
			return nil, err
		}
		if index == metadataEnd {
			return m, nil
		}
		typ, err := b.ReadInt8()
		if err != nil {
			return nil, err
		}
		v, err := readMetadataValue(b, typ)
		if err != nil {
			return nil, fmt.Errorf("metadata %d: %w", index, err)
		}
		m = append(m, MetadataField{Index: index, Value: v})
	}
}

func readMetadataValue(b *protocol.Buffer, typ int8) (MetadataValue, error) {
	switch typ {
	case 0:
		v, err := b.ReadInt8()
		return MetaByte(v), err
	case 1:
		v, err := b.ReadVarInt()
		return MetaVarInt(v), err
	case 2:
		v, err := b.ReadFloat32()
		return MetaFloat(v), err
	case 3:
		v, err := b.ReadText(protocol.MaxTextLength)
		return MetaString(v), err
	case 5:
		v, err := ReadSlot(b)
		return MetaSlot(v), err
	case 6:
		v, err := b.ReadBool()
		return MetaBool(v), err
	}
	return nil, fmt.Errorf("unsupported metadata type %d", typ)
}
