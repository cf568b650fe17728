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

	"go.uber.org/zap"
)

// Handler applies client clicks to views. It never talks to the network,
// the caller sends the confirmation and spawns the drops.
type Handler struct {
	log *zap.Logger
}

func NewHandler(log *zap.Logger) *Handler {
	return &Handler{log: log}
}

// Apply runs one click against v. The click either commits completely or
// leaves v untouched and comes back with Accepted false.
func (h *Handler) Apply(v *View, tx ClickTransaction) ClickResult {
	v.lock()
	drops, err := h.apply(v, &tx)
	v.unlock()
	if err != nil {
		h.log.Debug("Reject inventory click",
			zap.Stringer("type", tx.Type),
			zap.Int("slot", tx.Slot),
			zap.Int16("action", tx.ActionNumber),
			zap.Error(err))
		drops = nil
	}
	return ClickResult{
		Confirmation: Confirmation{WindowID: tx.WindowID, ActionNumber: tx.ActionNumber, Accepted: err == nil},
		Err:          err,
		Drops:        drops,
	}
}

func (h *Handler) apply(v *View, tx *ClickTransaction) ([]*ItemStack, error) {
	if tx.WindowID != v.WindowID {
		return nil, fmt.Errorf("%w: click in window %d, open is %d", ErrInvalidClickAction, tx.WindowID, v.WindowID)
	}
	if err := checkSlot(v, tx); err != nil {
		return nil, err
	}
	if !v.player.cursor.Equal(tx.Cursor) {
		return nil, fmt.Errorf("%w: cursor holds %v, client saw %v", ErrStaleClientState, v.player.cursor, tx.Cursor)
	}
	if tx.Type.readsSlot() && tx.Slot >= 0 && !v.item(tx.Slot).Equal(tx.Clicked) {
		return nil, fmt.Errorf("%w: slot %d holds %v, client saw %v", ErrStaleClientState, tx.Slot, v.item(tx.Slot), tx.Clicked)
	}
	if !tx.Type.isDrag() {
		v.drag = nil
	}

	switch tx.Type {
	case Left:
		h.left(v, tx.Slot)
	case Right:
		h.right(v, tx.Slot)
	case ShiftLeft, ShiftRight:
		h.shift(v, tx.Slot)
	case DropKey, CtrlDropKey:
		return h.drop(v, tx.Slot, tx.Type == CtrlDropKey), nil
	case NumberKey:
		h.numberKey(v, tx.Slot, int(tx.Button))
	case LeftOutside, RightOutside:
		return h.dropCursor(v, tx.Type == LeftOutside), nil
	case Middle:
		if tx.Creative {
			h.middle(v, tx.Slot)
		}
	case LeftDragStart, RightDragStart:
		v.drag = newDragSession(tx.Type == RightDragStart)
	case LeftDragAdd, RightDragAdd:
		return nil, h.dragAdd(v, tx.Slot, tx.Type == RightDragAdd)
	case LeftDragEnd, RightDragEnd:
		return nil, h.dragEnd(v, tx.Type == RightDragEnd)
	case DoubleClick:
		h.doubleClick(v)
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidClickAction, tx.Type)
	}
	return nil, nil
}

// checkSlot makes sure the slot number fits the click kind.
func checkSlot(v *View, tx *ClickTransaction) error {
	switch tx.Type {
	case LeftOutside, RightOutside, LeftDragStart, RightDragStart, LeftDragEnd, RightDragEnd:
		if tx.Slot == OutsideSlot {
			return nil
		}
	case Left, Right:
		if tx.Slot == BorderSlot || v.Slot(tx.Slot) != nil {
			return nil
		}
	case NumberKey:
		if tx.Button >= 0 && tx.Button < HotbarSize && v.Slot(tx.Slot) != nil {
			return nil
		}
	default:
		if v.Slot(tx.Slot) != nil {
			return nil
		}
	}
	return fmt.Errorf("%w: %v on slot %d", ErrInvalidClickAction, tx.Type, tx.Slot)
}

func (h *Handler) left(v *View, i int) {
	if i == BorderSlot {
		return
	}
	slot := v.slots[i]
	if slot.Type == Result {
		return
	}
	cursor, clicked := v.player.cursor, slot.item
	switch {
	case cursor.IsEmpty():
		v.setCursor(clicked)
		v.set(i, nil)
	case cursor.Similar(clicked):
		n := min(slot.space(cursor), cursor.Amount)
		clicked.Amount += n
		cursor.Amount -= n
		v.setCursor(cursor)
	case clicked.IsEmpty():
		n := min(slot.MaxStack(cursor), cursor.Amount)
		if n == 0 {
			return
		}
		v.set(i, cursor.WithAmount(n))
		cursor.Amount -= n
		v.setCursor(cursor)
	default:
		h.swap(v, i)
	}
}

func (h *Handler) right(v *View, i int) {
	if i == BorderSlot {
		return
	}
	slot := v.slots[i]
	if slot.Type == Result {
		return
	}
	cursor, clicked := v.player.cursor, slot.item
	switch {
	case cursor.IsEmpty():
		if clicked.IsEmpty() {
			return
		}
		// The cursor takes the bigger half.
		take := (clicked.Amount + 1) / 2
		v.setCursor(clicked.WithAmount(take))
		clicked.Amount -= take
		v.set(i, clicked)
	case clicked.IsEmpty():
		if slot.MaxStack(cursor) < 1 {
			return
		}
		v.set(i, cursor.WithAmount(1))
		cursor.Amount--
		v.setCursor(cursor)
	case cursor.Similar(clicked):
		if slot.space(cursor) < 1 {
			return
		}
		clicked.Amount++
		cursor.Amount--
		v.setCursor(cursor)
	default:
		h.swap(v, i)
	}
}

// swap exchanges cursor and slot i when the slot can take the whole cursor.
func (h *Handler) swap(v *View, i int) {
	slot, cursor := v.slots[i], v.player.cursor
	if !slot.CanHold(cursor) || cursor.Amount > slot.MaxStack(cursor) {
		return
	}
	clicked := slot.item
	v.set(i, cursor)
	v.setCursor(clicked)
}

func (h *Handler) shift(v *View, i int) {
	slot := v.slots[i]
	clicked := slot.item
	if clicked.IsEmpty() || slot.Type == Result {
		return
	}
	if !v.HasUpper() && (slot.Type == Container || slot.Type == Hotbar || slot.Type == SecondHand) {
		if a, ok := clicked.Material.Wearable(); ok {
			target := HelmetSlot + int(a) - 1
			if v.slots[target].item.IsEmpty() {
				v.set(target, clicked.WithAmount(1))
				clicked.Amount--
				v.set(i, clicked)
				return
			}
		}
	}
	clicked.Amount = v.addInto(shiftTargets(v, i), clicked)
	v.set(i, clicked)
}

// shiftTargets lists the slots a shift click on slot i moves items into.
func shiftTargets(v *View, i int) []int {
	if n := v.UpperSize(); n > 0 {
		if i < n {
			return span(n, v.Len())
		}
		return span(0, n)
	}
	switch {
	case i >= MainStart && i < HotbarStart:
		return span(HotbarStart, SecondHandSlot)
	case i >= HotbarStart && i < SecondHandSlot:
		return span(MainStart, HotbarStart)
	default:
		return span(MainStart, SecondHandSlot)
	}
}

func span(from, to int) []int {
	s := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		s = append(s, i)
	}
	return s
}

// addInto merges stack into similar slots of idx first, then fills empty
// ones. It returns how many items did not fit. stack itself is not changed.
func (v *View) addInto(idx []int, stack *ItemStack) int {
	left := stack.Amount
	for _, j := range idx {
		if left == 0 {
			return 0
		}
		if s := v.slots[j]; s.item.Similar(stack) {
			n := min(s.space(stack), left)
			s.item.Amount += n
			left -= n
		}
	}
	for _, j := range idx {
		if left == 0 {
			return 0
		}
		if s := v.slots[j]; s.item.IsEmpty() {
			if n := min(s.MaxStack(stack), left); n > 0 {
				v.set(j, stack.WithAmount(n))
				left -= n
			}
		}
	}
	return left
}

func (h *Handler) drop(v *View, i int, all bool) []*ItemStack {
	slot := v.slots[i]
	clicked := slot.item
	if clicked.IsEmpty() || slot.Type == Result {
		return nil
	}
	if all || clicked.Amount == 1 {
		v.set(i, nil)
		return []*ItemStack{clicked}
	}
	drop := clicked.WithAmount(1)
	clicked.Amount--
	return []*ItemStack{drop}
}

func (h *Handler) dropCursor(v *View, all bool) []*ItemStack {
	cursor := v.player.cursor
	if cursor.IsEmpty() {
		v.setCursor(nil)
		return nil
	}
	if all || cursor.Amount == 1 {
		v.setCursor(nil)
		return []*ItemStack{cursor}
	}
	drop := cursor.WithAmount(1)
	cursor.Amount--
	return []*ItemStack{drop}
}

// numberKey swaps slot i with hotbar slot n.
func (h *Handler) numberKey(v *View, i, n int) {
	hb := HotbarStart + n
	if v.HasUpper() {
		hb = v.UpperSize() + (HotbarStart - MainStart) + n
	}
	slot := v.slots[i]
	if hb == i || slot.Type == Result {
		return
	}
	clicked, held := slot.item, v.slots[hb].item
	if !held.IsEmpty() && (!slot.CanHold(held) || held.Amount > slot.MaxStack(held)) {
		return
	}
	v.set(i, held)
	v.set(hb, clicked)
}

// middle clones the clicked stack to a full cursor. Creative mode only.
func (h *Handler) middle(v *View, i int) {
	clicked := v.item(i)
	if !v.player.cursor.IsEmpty() || clicked.IsEmpty() {
		return
	}
	v.setCursor(clicked.WithAmount(clicked.MaxStack()))
}

func (h *Handler) dragAdd(v *View, i int, right bool) error {
	if v.drag == nil || v.drag.Right != right || v.player.cursor.IsEmpty() {
		v.drag = nil
		return fmt.Errorf("%w: drag add without matching drag start", ErrInvalidClickAction)
	}
	v.drag.Add(i)
	return nil
}

// dragEnd spreads the cursor over the collected slots. Left drags split
// the cursor evenly, right drags put one item in each slot. Items that do
// not fit stay on the cursor.
func (h *Handler) dragEnd(v *View, right bool) error {
	d := v.drag
	v.drag = nil
	cursor := v.player.cursor
	if d == nil || d.Right != right || cursor.IsEmpty() || d.Len() == 0 {
		return fmt.Errorf("%w: drag end without matching drag", ErrInvalidClickAction)
	}
	idx := d.Slots()
	for _, j := range idx {
		s := v.slots[j]
		if !s.CanHold(cursor) || !s.item.IsEmpty() && !s.item.Similar(cursor) {
			return fmt.Errorf("%w: %v into slot %d (%v)", ErrSlotRejected, cursor, j, s.Type)
		}
	}

	total, left := cursor.Amount, cursor.Amount
	for k, j := range idx {
		if left == 0 {
			break
		}
		want := 1
		if !right {
			want = total / len(idx)
			if k < total%len(idx) {
				want++
			}
		}
		s := v.slots[j]
		n := min(want, left, s.space(cursor))
		if n <= 0 {
			continue
		}
		if s.item.IsEmpty() {
			v.set(j, cursor.WithAmount(n))
		} else {
			s.item.Amount += n
		}
		left -= n
	}
	cursor.Amount = left
	v.setCursor(cursor)
	return nil
}

// doubleClick gathers similar items onto the cursor: partial stacks in
// slot order first, then the first full stack if there is still room.
func (h *Handler) doubleClick(v *View) {
	cursor := v.player.cursor
	if cursor.IsEmpty() {
		return
	}
	limit := cursor.MaxStack()
	full := -1
	for i, s := range v.slots {
		if cursor.Amount >= limit {
			break
		}
		if s.Type == Result || !s.item.Similar(cursor) || !s.CanHold(cursor) {
			continue
		}
		if s.item.Amount >= s.item.MaxStack() {
			if full < 0 {
				full = i
			}
			continue
		}
		v.pull(i, cursor, limit)
	}
	if full >= 0 && cursor.Amount < limit {
		v.pull(full, cursor, limit)
	}
}

func (v *View) pull(i int, cursor *ItemStack, limit int) {
	item := v.slots[i].item
	n := min(item.Amount, limit-cursor.Amount)
	cursor.Amount += n
	item.Amount -= n
	v.set(i, item)
}
