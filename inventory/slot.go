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

	"BasaltCore/content"
)

type SlotType uint8

const (
	Container SlotType = iota
	Hotbar
	Result
	Crafting
	ArmorHelmet
	ArmorChestplate
	ArmorLeggings
	ArmorBoots
	SecondHand
	Outside
)

var slotTypeNames = [...]string{
	"Container", "Hotbar", "Result", "Crafting",
	"ArmorHelmet", "ArmorChestplate", "ArmorLeggings", "ArmorBoots",
	"SecondHand", "Outside",
}

func (t SlotType) String() string {
	if int(t) < len(slotTypeNames) {
		return slotTypeNames[t]
	}
	return fmt.Sprintf("SlotType(%d)", uint8(t))
}

func (t SlotType) armor() content.ArmorType {
	switch t {
	case ArmorHelmet:
		return content.Helmet
	case ArmorChestplate:
		return content.Chestplate
	case ArmorLeggings:
		return content.Leggings
	case ArmorBoots:
		return content.Boots
	}
	return content.NotArmor
}

// Slot is one cell of an Inventory. Index is its position in that
// inventory, which may differ from its position in a View.
type Slot struct {
	Index int
	Type  SlotType
	item  *ItemStack
}

// CanHold reports whether the slot accepts the item type of stack.
// An empty stack fits everywhere a player can put things.
func (s *Slot) CanHold(stack *ItemStack) bool {
	switch s.Type {
	case Result, Outside:
		return false
	case ArmorHelmet, ArmorChestplate, ArmorLeggings, ArmorBoots:
		if stack.IsEmpty() {
			return true
		}
		a, ok := stack.Material.Wearable()
		return ok && a == s.Type.armor()
	}
	return true
}

// MaxStack is the largest amount of stack the slot takes.
func (s *Slot) MaxStack(stack *ItemStack) int {
	if !s.CanHold(stack) {
		return 0
	}
	switch s.Type {
	case ArmorHelmet, ArmorChestplate, ArmorLeggings, ArmorBoots:
		return 1
	}
	return stack.MaxStack()
}

// space returns how many items similar to stack still fit.
func (s *Slot) space(stack *ItemStack) int {
	if s.item.IsEmpty() {
		return s.MaxStack(stack)
	}
	if !s.item.Similar(stack) {
		return 0
	}
	return max(s.MaxStack(stack)-s.item.Amount, 0)
}
