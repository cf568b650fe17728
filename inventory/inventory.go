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

import "sync"

// Layout of the player inventory window.
const (
	ResultSlot     = 0
	CraftingStart  = 1
	HelmetSlot     = 5
	ChestplateSlot = 6
	LeggingsSlot   = 7
	BootsSlot      = 8
	MainStart      = 9
	HotbarStart    = 36
	SecondHandSlot = 45
	PlayerSize     = 46

	HotbarSize = 9
	// LowerSize is the part of the player inventory shown under a container.
	LowerSize = SecondHandSlot - MainStart
)

// Inventory is storage shared by every View showing it. Its mutex guards
// the slots while one click is applied.
type Inventory struct {
	mu    sync.Mutex
	slots []*Slot
}

func newInventory(types []SlotType) *Inventory {
	inv := &Inventory{slots: make([]*Slot, len(types))}
	for i, t := range types {
		inv.slots[i] = &Slot{Index: i, Type: t}
	}
	return inv
}

// NewContainer returns size plain container slots, like a chest.
func NewContainer(size int) *Inventory {
	types := make([]SlotType, size)
	for i := range types {
		types[i] = Container
	}
	return newInventory(types)
}

func (inv *Inventory) Size() int { return len(inv.slots) }

// PlayerInventory is the 46 slot player storage plus the cursor stack,
// which belongs to the player and not to any window.
type PlayerInventory struct {
	*Inventory
	cursor *ItemStack
}

func NewPlayerInventory() *PlayerInventory {
	types := make([]SlotType, PlayerSize)
	for i := range types {
		switch {
		case i == ResultSlot:
			types[i] = Result
		case i < HelmetSlot:
			types[i] = Crafting
		case i == HelmetSlot:
			types[i] = ArmorHelmet
		case i == ChestplateSlot:
			types[i] = ArmorChestplate
		case i == LeggingsSlot:
			types[i] = ArmorLeggings
		case i == BootsSlot:
			types[i] = ArmorBoots
		case i < HotbarStart:
			types[i] = Container
		case i < SecondHandSlot:
			types[i] = Hotbar
		default:
			types[i] = SecondHand
		}
	}
	return &PlayerInventory{Inventory: newInventory(types)}
}

// Held returns a copy of the stack in hotbar slot n (0-8).
func (p *PlayerInventory) Held(n int) *ItemStack {
	if n < 0 || n >= HotbarSize {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.slots[HotbarStart+n].item.Clone()
}

// Give stores stack in the hotbar first, then the main inventory, and
// returns how many items did not fit.
func (p *PlayerInventory) Give(stack *ItemStack) int {
	if stack.IsEmpty() {
		return 0
	}
	v := NewPlayerView(p)
	v.lock()
	defer v.unlock()
	return v.addInto(append(span(HotbarStart, SecondHandSlot), span(MainStart, HotbarStart)...), stack)
}
