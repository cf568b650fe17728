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

// View is one open window: an optional upper inventory followed by the
// player's own slots. Slot indices of a View are the ones the client uses.
type View struct {
	WindowID uint8

	upper  *Inventory
	player *PlayerInventory
	slots  []*Slot
	drag   *DragSession
}

// NewPlayerView shows the whole player inventory as window 0.
func NewPlayerView(p *PlayerInventory) *View {
	return &View{player: p, slots: p.slots}
}

// NewContainerView shows upper on top of the player's main inventory and
// hotbar. Both inventories may be shown by other views at the same time.
func NewContainerView(windowID uint8, upper *Inventory, p *PlayerInventory) *View {
	slots := make([]*Slot, 0, upper.Size()+LowerSize)
	slots = append(slots, upper.slots...)
	slots = append(slots, p.slots[MainStart:SecondHandSlot]...)
	return &View{WindowID: windowID, upper: upper, player: p, slots: slots}
}

// The upper inventory is always locked first so two players sharing a
// container cannot deadlock.
func (v *View) lock() {
	if v.upper != nil {
		v.upper.mu.Lock()
	}
	v.player.mu.Lock()
}

func (v *View) unlock() {
	v.player.mu.Unlock()
	if v.upper != nil {
		v.upper.mu.Unlock()
	}
}

func (v *View) Len() int { return len(v.slots) }

// UpperSize is the number of slots before the player's part of the view.
func (v *View) UpperSize() int {
	if v.upper == nil {
		return 0
	}
	return v.upper.Size()
}

func (v *View) HasUpper() bool { return v.upper != nil }

// Slot returns the slot at view index i, or nil when out of range.
func (v *View) Slot(i int) *Slot {
	if i < 0 || i >= len(v.slots) {
		return nil
	}
	return v.slots[i]
}

// Item returns a copy of the stack at view index i.
func (v *View) Item(i int) *ItemStack {
	v.lock()
	defer v.unlock()
	if s := v.Slot(i); s != nil {
		return s.item.Clone()
	}
	return nil
}

// Items returns a copy of every slot, in view order.
func (v *View) Items() []*ItemStack {
	v.lock()
	defer v.unlock()
	items := make([]*ItemStack, len(v.slots))
	for i, s := range v.slots {
		items[i] = s.item.Clone()
	}
	return items
}

func (v *View) SetItem(i int, stack *ItemStack) {
	v.lock()
	defer v.unlock()
	if s := v.Slot(i); s != nil {
		s.item = stack.Clone()
	}
}

func (v *View) Cursor() *ItemStack {
	v.lock()
	defer v.unlock()
	return v.player.cursor.Clone()
}

func (v *View) SetCursor(stack *ItemStack) {
	v.lock()
	defer v.unlock()
	v.player.cursor = stack.Clone()
}

// TakeCursor empties the cursor and returns what it held. An unfinished
// drag is dropped along with it.
func (v *View) TakeCursor() *ItemStack {
	v.lock()
	defer v.unlock()
	c := v.player.cursor
	v.player.cursor = nil
	v.drag = nil
	return c
}

// Replace puts next into slot i if the slot still holds expected.
func (v *View) Replace(i int, expected, next *ItemStack) bool {
	v.lock()
	defer v.unlock()
	return v.replace(i, expected, next)
}

// ReplaceCursor puts next on the cursor if it still holds expected.
func (v *View) ReplaceCursor(expected, next *ItemStack) bool {
	v.lock()
	defer v.unlock()
	return v.replaceCursor(expected, next)
}

// Total counts the items in every slot of the view plus the cursor.
func (v *View) Total() int {
	v.lock()
	defer v.unlock()
	n := amountOf(v.player.cursor)
	for _, s := range v.slots {
		n += amountOf(s.item)
	}
	return n
}

// Drag returns the unfinished drag session, if any.
func (v *View) Drag() *DragSession { return v.drag }

func (v *View) item(i int) *ItemStack { return v.slots[i].item }

func (v *View) set(i int, stack *ItemStack) {
	if stack.IsEmpty() {
		stack = nil
	}
	v.slots[i].item = stack
}

func (v *View) setCursor(stack *ItemStack) {
	if stack.IsEmpty() {
		stack = nil
	}
	v.player.cursor = stack
}

func (v *View) replace(i int, expected, next *ItemStack) bool {
	s := v.Slot(i)
	if s == nil || !s.item.Equal(expected) {
		return false
	}
	v.set(i, next.Clone())
	return true
}

func (v *View) replaceCursor(expected, next *ItemStack) bool {
	if !v.player.cursor.Equal(expected) {
		return false
	}
	v.setCursor(next.Clone())
	return true
}
