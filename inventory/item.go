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

package inventory

import (
	"fmt"
	"slices"

	"BasaltCore/content"
)

// Meta holds the optional attributes of an item. It is stored on the wire
// as the "tag" compound of a slot.
type Meta struct {
	Display    Display `nbt:"display"`
	RepairCost int32   `nbt:"RepairCost"`
}

type Display struct {
	Name string   `nbt:"Name"`
	Lore []string `nbt:"Lore"`
}

func (m *Meta) IsZero() bool {
	return m == nil || m.Display.Name == "" && len(m.Display.Lore) == 0 && m.RepairCost == 0
}

// Equal treats a nil Meta and an empty one as the same.
func (m *Meta) Equal(o *Meta) bool {
	if m.IsZero() || o.IsZero() {
		return m.IsZero() && o.IsZero()
	}
	return m.Display.Name == o.Display.Name &&
		slices.Equal(m.Display.Lore, o.Display.Lore) &&
		m.RepairCost == o.RepairCost
}

func (m *Meta) Clone() *Meta {
	if m == nil {
		return nil
	}
	c := *m
	c.Display.Lore = slices.Clone(m.Display.Lore)
	return &c
}

// ItemStack is an amount of one material. A nil stack, or one with a
// non-positive amount, is empty.
type ItemStack struct {
	Material *content.Material
	Amount   int
	Damage   int16
	Meta     *Meta
}

func NewItemStack(m *content.Material, amount int) *ItemStack {
	return &ItemStack{Material: m, Amount: amount}
}

func (s *ItemStack) IsEmpty() bool {
	return s == nil || s.Material == nil || s.Amount <= 0
}

// Similar reports whether two stacks can merge: same material, damage and
// meta. The amounts are ignored.
func (s *ItemStack) Similar(o *ItemStack) bool {
	if s.IsEmpty() || o.IsEmpty() {
		return false
	}
	return s.Material.ID == o.Material.ID && s.Damage == o.Damage && s.Meta.Equal(o.Meta)
}

// Equal reports whether two stacks are similar and hold the same amount.
// Two empty stacks are equal.
func (s *ItemStack) Equal(o *ItemStack) bool {
	if s.IsEmpty() || o.IsEmpty() {
		return s.IsEmpty() && o.IsEmpty()
	}
	return s.Similar(o) && s.Amount == o.Amount
}

// Clone returns a deep copy, or nil for an empty stack.
func (s *ItemStack) Clone() *ItemStack {
	if s.IsEmpty() {
		return nil
	}
	c := *s
	c.Meta = s.Meta.Clone()
	return &c
}

// WithAmount returns a copy holding n items, or nil when n is not positive.
func (s *ItemStack) WithAmount(n int) *ItemStack {
	if n <= 0 || s.IsEmpty() {
		return nil
	}
	c := s.Clone()
	c.Amount = n
	return c
}

func (s *ItemStack) MaxStack() int {
	if s.IsEmpty() {
		return 0
	}
	return s.Material.MaxStack
}

func (s *ItemStack) String() string {
	if s.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%d×%s", s.Amount, s.Material.Name)
}

func amountOf(s *ItemStack) int {
	if s.IsEmpty() {
		return 0
	}
	return s.Amount
}
