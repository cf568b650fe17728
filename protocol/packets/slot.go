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

	"BasaltCore/content"
	"BasaltCore/inventory"
	"BasaltCore/protocol"
)

// Slot is an item stack as it travels on the wire. ItemID -1 is an empty
// slot, nothing else is written for it.
type Slot struct {
	ItemID int16
	Count  int8
	Damage int16
	Meta   *inventory.Meta
}

var EmptySlot = Slot{ItemID: -1}

func (s Slot) IsEmpty() bool { return s.ItemID < 0 }

func ReadSlot(b *protocol.Buffer) (s Slot, err error) {
	if s.ItemID, err = b.ReadInt16(); err != nil || s.ItemID < 0 {
		s.ItemID = -1
		return
	}
	if s.Count, err = b.ReadInt8(); err != nil {
		return
	}
	if s.Damage, err = b.ReadInt16(); err != nil {
		return
	}
	var meta inventory.Meta
	ok, err := b.ReadNBT(&meta)
	if ok {
		s.Meta = &meta
	}
	return
}

func WriteSlot(b *protocol.Buffer, s Slot) {
	if s.IsEmpty() {
		b.WriteInt16(-1)
		return
	}
	b.WriteInt16(s.ItemID)
	b.WriteInt8(s.Count)
	b.WriteInt16(s.Damage)
	if s.Meta.IsZero() {
		_ = b.WriteNBT(nil)
		return
	}
	if err := b.WriteNBT(*s.Meta); err != nil {
		// a Meta always marshals, keep the stream well formed anyway
		_ = b.WriteNBT(nil)
	}
}

// SlotOf converts a stack into its wire form.
func SlotOf(s *inventory.ItemStack) Slot {
	if s.IsEmpty() {
		return EmptySlot
	}
	return Slot{
		ItemID: int16(s.Material.ID),
		Count:  int8(s.Amount),
		Damage: s.Damage,
		Meta:   s.Meta.Clone(),
	}
}

// Stack resolves the wire item against the material table.
func (s Slot) Stack() (*inventory.ItemStack, error) {
	if s.IsEmpty() || s.Count <= 0 {
		return nil, nil
	}
	m, ok := content.Materials.ByID(int(s.ItemID))
	if !ok {
		return nil, fmt.Errorf("unknown item id %d", s.ItemID)
	}
	return &inventory.ItemStack{
		Material: m,
		Amount:   int(s.Count),
		Damage:   s.Damage,
		Meta:     s.Meta,
	}, nil
}
