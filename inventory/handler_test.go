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
	"errors"
	"math/rand"
	"sync"
	"testing"

	"go.uber.org/zap"

	"BasaltCore/content"
)

var (
	stone  = &content.Material{ID: 1, Name: "stone", MaxStack: 64}
	dirt   = &content.Material{ID: 3, Name: "dirt", MaxStack: 64}
	pearl  = &content.Material{ID: 368, Name: "ender_pearl", MaxStack: 16}
	helmet = &content.Material{ID: 306, Name: "iron_helmet", MaxStack: 1, Durability: 165, Armor: content.Helmet}
)

func newTestView(items map[int]*ItemStack, cursor *ItemStack) *View {
	v := NewPlayerView(NewPlayerInventory())
	for i, s := range items {
		v.SetItem(i, s)
	}
	v.SetCursor(cursor)
	return v
}

func click(h *Handler, v *View, typ ClickType, slot int) ClickResult {
	tx := ClickTransaction{WindowID: v.WindowID, Slot: slot, Type: typ, Cursor: v.Cursor()}
	if slot >= 0 {
		tx.Clicked = v.Item(slot)
	}
	return h.Apply(v, tx)
}

func mustAccept(t *testing.T, r ClickResult) {
	t.Helper()
	if !r.Accepted || r.Err != nil {
		t.Fatalf("click rejected: %v", r.Err)
	}
}

func expectSlot(t *testing.T, v *View, i int, m *content.Material, n int) {
	t.Helper()
	got := v.Item(i)
	if n == 0 {
		if !got.IsEmpty() {
			t.Errorf("slot %d = %v, want empty", i, got)
		}
		return
	}
	if got.IsEmpty() || got.Material != m || got.Amount != n {
		t.Errorf("slot %d = %v, want %d×%s", i, got, n, m.Name)
	}
}

func expectCursor(t *testing.T, v *View, m *content.Material, n int) {
	t.Helper()
	got := v.Cursor()
	if n == 0 {
		if !got.IsEmpty() {
			t.Errorf("cursor = %v, want empty", got)
		}
		return
	}
	if got.IsEmpty() || got.Material != m || got.Amount != n {
		t.Errorf("cursor = %v, want %d×%s", got, n, m.Name)
	}
}

func sameItems(a, b []*ItemStack) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func TestLeft(t *testing.T) {
	h := NewHandler(zap.NewNop())

	v := newTestView(map[int]*ItemStack{9: NewItemStack(stone, 10)}, nil)
	mustAccept(t, click(h, v, Left, 9))
	expectSlot(t, v, 9, stone, 0)
	expectCursor(t, v, stone, 10)
	mustAccept(t, click(h, v, Left, 12))
	expectSlot(t, v, 12, stone, 10)
	expectCursor(t, v, stone, 0)

	// merge keeps the leftover on the cursor
	v = newTestView(map[int]*ItemStack{9: NewItemStack(stone, 10)}, NewItemStack(stone, 60))
	mustAccept(t, click(h, v, Left, 9))
	expectSlot(t, v, 9, stone, 64)
	expectCursor(t, v, stone, 6)

	v = newTestView(map[int]*ItemStack{9: NewItemStack(stone, 10)}, NewItemStack(dirt, 5))
	mustAccept(t, click(h, v, Left, 9))
	expectSlot(t, v, 9, dirt, 5)
	expectCursor(t, v, stone, 10)
}

func TestLeft_ArmorSlot(t *testing.T) {
	h := NewHandler(zap.NewNop())

	v := newTestView(nil, NewItemStack(stone, 3))
	r := click(h, v, Left, HelmetSlot)
	mustAccept(t, r)
	expectSlot(t, v, HelmetSlot, nil, 0)
	expectCursor(t, v, stone, 3)

	v = newTestView(nil, NewItemStack(helmet, 1))
	mustAccept(t, click(h, v, Left, HelmetSlot))
	expectSlot(t, v, HelmetSlot, helmet, 1)
	expectCursor(t, v, nil, 0)

	mustAccept(t, click(h, v, Left, ResultSlot))
	expectSlot(t, v, ResultSlot, nil, 0)
}

func TestRight(t *testing.T) {
	h := NewHandler(zap.NewNop())

	v := newTestView(map[int]*ItemStack{9: NewItemStack(stone, 7)}, nil)
	mustAccept(t, click(h, v, Right, 9))
	expectSlot(t, v, 9, stone, 3)
	expectCursor(t, v, stone, 4)

	mustAccept(t, click(h, v, Right, 10))
	expectSlot(t, v, 10, stone, 1)
	expectCursor(t, v, stone, 3)

	mustAccept(t, click(h, v, Right, 9))
	expectSlot(t, v, 9, stone, 4)
	expectCursor(t, v, stone, 2)

	v = newTestView(map[int]*ItemStack{9: NewItemStack(pearl, 16)}, NewItemStack(pearl, 2))
	mustAccept(t, click(h, v, Right, 9))
	expectSlot(t, v, 9, pearl, 16)
	expectCursor(t, v, pearl, 2)

	v = newTestView(map[int]*ItemStack{9: NewItemStack(stone, 1)}, nil)
	mustAccept(t, click(h, v, Right, 9))
	expectSlot(t, v, 9, stone, 0)
	expectCursor(t, v, stone, 1)
}

func TestStaleSnapshot(t *testing.T) {
	h := NewHandler(zap.NewNop())
	v := newTestView(map[int]*ItemStack{9: NewItemStack(stone, 10)}, NewItemStack(dirt, 2))
	before := v.Items()

	r := h.Apply(v, ClickTransaction{
		Slot:    9,
		Type:    Left,
		Cursor:  NewItemStack(dirt, 2),
		Clicked: NewItemStack(stone, 9),
	})
	if r.Accepted || !errors.Is(r.Err, ErrStaleClientState) {
		t.Fatalf("stale clicked slot: accepted=%v err=%v", r.Accepted, r.Err)
	}
	r = h.Apply(v, ClickTransaction{
		Slot:    9,
		Type:    Right,
		Cursor:  nil,
		Clicked: NewItemStack(stone, 10),
	})
	if r.Accepted || !errors.Is(r.Err, ErrStaleClientState) {
		t.Fatalf("stale cursor: accepted=%v err=%v", r.Accepted, r.Err)
	}
	if !sameItems(before, v.Items()) {
		t.Error("rejected click changed the view")
	}
	expectCursor(t, v, dirt, 2)
}

func TestInvalidClicks(t *testing.T) {
	h := NewHandler(zap.NewNop())
	v := newTestView(nil, nil)
	for _, tx := range []ClickTransaction{
		{WindowID: 3, Slot: 9, Type: Left},
		{Slot: 46, Type: Left},
		{Slot: 9, Type: LeftOutside},
		{Slot: OutsideSlot, Type: DropKey},
		{Slot: 9, Type: NumberKey, Button: 9},
		{Slot: 9, Type: LeftDragAdd},
		{Slot: OutsideSlot, Type: RightDragEnd},
	} {
		r := h.Apply(v, tx)
		if r.Accepted || !errors.Is(r.Err, ErrInvalidClickAction) {
			t.Errorf("%v on %d: accepted=%v err=%v", tx.Type, tx.Slot, r.Accepted, r.Err)
		}
		if r.WindowID != tx.WindowID || r.ActionNumber != tx.ActionNumber {
			t.Errorf("confirmation %+v does not echo the click", r.Confirmation)
		}
	}
	mustAccept(t, click(h, v, Left, BorderSlot))
}

func TestShift(t *testing.T) {
	h := NewHandler(zap.NewNop())

	v := newTestView(map[int]*ItemStack{
		9:  NewItemStack(stone, 64),
		36: NewItemStack(stone, 60),
		37: NewItemStack(dirt, 1),
	}, nil)
	mustAccept(t, click(h, v, ShiftLeft, 9))
	expectSlot(t, v, 9, stone, 0)
	expectSlot(t, v, 36, stone, 64)
	expectSlot(t, v, 37, dirt, 1)
	expectSlot(t, v, 38, stone, 60)

	mustAccept(t, click(h, v, ShiftRight, 37))
	expectSlot(t, v, 37, dirt, 0)
	expectSlot(t, v, 9, dirt, 1)

	v = newTestView(map[int]*ItemStack{20: NewItemStack(helmet, 1)}, nil)
	mustAccept(t, click(h, v, ShiftLeft, 20))
	expectSlot(t, v, HelmetSlot, helmet, 1)
	expectSlot(t, v, 20, nil, 0)
}

func TestShift_FullDestination(t *testing.T) {
	h := NewHandler(zap.NewNop())
	items := map[int]*ItemStack{40: NewItemStack(pearl, 16)}
	for i := MainStart; i < HotbarStart; i++ {
		items[i] = NewItemStack(dirt, 64)
	}
	items[MainStart] = NewItemStack(pearl, 10)
	v := newTestView(items, nil)
	mustAccept(t, click(h, v, ShiftLeft, 40))
	expectSlot(t, v, MainStart, pearl, 16)
	expectSlot(t, v, 40, pearl, 10)
}

func TestShift_Container(t *testing.T) {
	h := NewHandler(zap.NewNop())
	p := NewPlayerInventory()
	chest := NewContainer(27)
	v := NewContainerView(1, chest, p)
	own := NewPlayerView(p)

	if v.Len() != 27+LowerSize {
		t.Fatalf("container view has %d slots", v.Len())
	}
	v.SetItem(0, NewItemStack(stone, 10))
	mustAccept(t, click(h, v, ShiftLeft, 0))
	expectSlot(t, v, 0, nil, 0)
	expectSlot(t, v, 27, stone, 10)
	expectSlot(t, own, MainStart, stone, 10)

	mustAccept(t, click(h, v, ShiftLeft, 27))
	expectSlot(t, v, 0, stone, 10)
	expectSlot(t, own, MainStart, nil, 0)

	// a second player looking into the same chest sees the change
	other := NewContainerView(1, chest, NewPlayerInventory())
	expectSlot(t, other, 0, stone, 10)
}

func TestDrop(t *testing.T) {
	h := NewHandler(zap.NewNop())
	v := newTestView(map[int]*ItemStack{9: NewItemStack(stone, 3)}, nil)

	r := click(h, v, DropKey, 9)
	mustAccept(t, r)
	if len(r.Drops) != 1 || r.Drops[0].Amount != 1 {
		t.Fatalf("drop key dropped %v", r.Drops)
	}
	expectSlot(t, v, 9, stone, 2)

	r = click(h, v, CtrlDropKey, 9)
	mustAccept(t, r)
	if len(r.Drops) != 1 || r.Drops[0].Amount != 2 {
		t.Fatalf("ctrl drop dropped %v", r.Drops)
	}
	expectSlot(t, v, 9, nil, 0)

	v.SetCursor(NewItemStack(dirt, 5))
	r = click(h, v, RightOutside, OutsideSlot)
	mustAccept(t, r)
	if len(r.Drops) != 1 || r.Drops[0].Amount != 1 {
		t.Fatalf("right outside dropped %v", r.Drops)
	}
	expectCursor(t, v, dirt, 4)
	r = click(h, v, LeftOutside, OutsideSlot)
	mustAccept(t, r)
	if len(r.Drops) != 1 || r.Drops[0].Amount != 4 {
		t.Fatalf("left outside dropped %v", r.Drops)
	}
	expectCursor(t, v, nil, 0)
}

func TestNumberKey(t *testing.T) {
	h := NewHandler(zap.NewNop())
	v := newTestView(map[int]*ItemStack{
		9:  NewItemStack(stone, 5),
		38: NewItemStack(dirt, 7),
	}, nil)
	r := h.Apply(v, ClickTransaction{Slot: 9, Type: NumberKey, Button: 2, Clicked: NewItemStack(stone, 5)})
	mustAccept(t, r)
	expectSlot(t, v, 9, dirt, 7)
	expectSlot(t, v, 38, stone, 5)

	// dirt does not fit the helmet slot
	r = h.Apply(v, ClickTransaction{Slot: HelmetSlot, Type: NumberKey, Button: 2})
	mustAccept(t, r)
	expectSlot(t, v, HelmetSlot, nil, 0)
	expectSlot(t, v, 38, stone, 5)
}

func TestMiddle(t *testing.T) {
	h := NewHandler(zap.NewNop())
	v := newTestView(map[int]*ItemStack{9: NewItemStack(pearl, 3)}, nil)
	mustAccept(t, click(h, v, Middle, 9))
	expectCursor(t, v, nil, 0)

	r := h.Apply(v, ClickTransaction{Slot: 9, Type: Middle, Clicked: NewItemStack(pearl, 3), Creative: true})
	mustAccept(t, r)
	expectCursor(t, v, pearl, 16)
	expectSlot(t, v, 9, pearl, 3)
}

func TestDrag_Left(t *testing.T) {
	h := NewHandler(zap.NewNop())
	v := newTestView(nil, NewItemStack(stone, 10))

	mustAccept(t, click(h, v, LeftDragStart, OutsideSlot))
	for _, i := range []int{9, 10, 11, 10} {
		mustAccept(t, click(h, v, LeftDragAdd, i))
	}
	if d := v.Drag(); d == nil || d.Len() != 3 {
		t.Fatalf("drag session = %+v", d)
	}
	mustAccept(t, click(h, v, LeftDragEnd, OutsideSlot))

	sum := 0
	for _, i := range []int{9, 10, 11} {
		n := v.Item(i).Amount
		if n != 3 && n != 4 {
			t.Errorf("slot %d got %d", i, n)
		}
		sum += n
	}
	if sum != 10 {
		t.Errorf("drag placed %d items, want 10", sum)
	}
	expectCursor(t, v, nil, 0)
	if v.Drag() != nil {
		t.Error("drag session survived its end")
	}
}

func TestDrag_Right(t *testing.T) {
	h := NewHandler(zap.NewNop())
	v := newTestView(map[int]*ItemStack{10: NewItemStack(stone, 5)}, NewItemStack(stone, 2))

	mustAccept(t, click(h, v, RightDragStart, OutsideSlot))
	for _, i := range []int{9, 10, 11} {
		mustAccept(t, click(h, v, RightDragAdd, i))
	}
	mustAccept(t, click(h, v, RightDragEnd, OutsideSlot))
	expectSlot(t, v, 9, stone, 1)
	expectSlot(t, v, 10, stone, 6)
	expectSlot(t, v, 11, nil, 0)
	expectCursor(t, v, nil, 0)
}

func TestDrag_LeftoverStaysOnCursor(t *testing.T) {
	h := NewHandler(zap.NewNop())
	v := newTestView(map[int]*ItemStack{10: NewItemStack(pearl, 15)}, NewItemStack(pearl, 10))

	mustAccept(t, click(h, v, LeftDragStart, OutsideSlot))
	mustAccept(t, click(h, v, LeftDragAdd, 9))
	mustAccept(t, click(h, v, LeftDragAdd, 10))
	mustAccept(t, click(h, v, LeftDragEnd, OutsideSlot))
	expectSlot(t, v, 9, pearl, 5)
	expectSlot(t, v, 10, pearl, 16)
	expectCursor(t, v, pearl, 4)
}

func TestDrag_RejectWithoutPartialMutation(t *testing.T) {
	h := NewHandler(zap.NewNop())
	v := newTestView(map[int]*ItemStack{11: NewItemStack(dirt, 1)}, NewItemStack(stone, 10))
	before := v.Items()

	mustAccept(t, click(h, v, LeftDragStart, OutsideSlot))
	mustAccept(t, click(h, v, LeftDragAdd, 9))
	mustAccept(t, click(h, v, LeftDragAdd, HelmetSlot))
	r := click(h, v, LeftDragEnd, OutsideSlot)
	if r.Accepted || !errors.Is(r.Err, ErrSlotRejected) {
		t.Fatalf("drag over helmet slot: accepted=%v err=%v", r.Accepted, r.Err)
	}
	if !sameItems(before, v.Items()) {
		t.Error("rejected drag changed the view")
	}
	expectCursor(t, v, stone, 10)

	// a dissimilar stack rejects too
	mustAccept(t, click(h, v, LeftDragStart, OutsideSlot))
	mustAccept(t, click(h, v, LeftDragAdd, 9))
	mustAccept(t, click(h, v, LeftDragAdd, 11))
	if r := click(h, v, LeftDragEnd, OutsideSlot); r.Accepted {
		t.Error("drag over dirt accepted")
	}
	if !sameItems(before, v.Items()) {
		t.Error("rejected drag changed the view")
	}
}

func TestDrag_Aborted(t *testing.T) {
	h := NewHandler(zap.NewNop())
	v := newTestView(nil, NewItemStack(stone, 10))

	mustAccept(t, click(h, v, LeftDragStart, OutsideSlot))
	mustAccept(t, click(h, v, LeftDragAdd, 9))
	mustAccept(t, click(h, v, RightDragStart, OutsideSlot))
	if d := v.Drag(); d == nil || !d.Right || d.Len() != 0 {
		t.Fatalf("new drag start kept the old session: %+v", d)
	}
	if r := click(h, v, LeftDragAdd, 10); r.Accepted {
		t.Error("left add accepted inside a right drag")
	}

	mustAccept(t, click(h, v, LeftDragStart, OutsideSlot))
	mustAccept(t, click(h, v, Left, 20))
	if v.Drag() != nil {
		t.Error("plain click did not abort the drag")
	}
}

func TestDoubleClick(t *testing.T) {
	h := NewHandler(zap.NewNop())

	v := newTestView(map[int]*ItemStack{
		9:  NewItemStack(stone, 10),
		10: NewItemStack(stone, 10),
		11: NewItemStack(dirt, 10),
	}, NewItemStack(stone, 5))
	mustAccept(t, click(h, v, DoubleClick, 12))
	expectCursor(t, v, stone, 25)
	expectSlot(t, v, 9, nil, 0)
	expectSlot(t, v, 10, nil, 0)
	expectSlot(t, v, 11, dirt, 10)
}

func TestDoubleClick_FullStackLast(t *testing.T) {
	h := NewHandler(zap.NewNop())

	// partial stacks are taken first even when a full one comes earlier
	v := newTestView(map[int]*ItemStack{
		9:  NewItemStack(stone, 64),
		10: NewItemStack(stone, 10),
		11: NewItemStack(stone, 10),
		12: NewItemStack(stone, 64),
	}, NewItemStack(stone, 5))
	mustAccept(t, click(h, v, DoubleClick, 13))
	expectSlot(t, v, 10, nil, 0)
	expectSlot(t, v, 11, nil, 0)
	expectCursor(t, v, stone, 64)
	expectSlot(t, v, 9, stone, 25)
	expectSlot(t, v, 12, stone, 64)
}

func TestDoubleClick_SkipsResult(t *testing.T) {
	h := NewHandler(zap.NewNop())
	v := newTestView(map[int]*ItemStack{
		ResultSlot: NewItemStack(stone, 4),
		9:          NewItemStack(stone, 2),
	}, NewItemStack(stone, 1))
	mustAccept(t, click(h, v, DoubleClick, 10))
	expectSlot(t, v, ResultSlot, stone, 4)
	expectCursor(t, v, stone, 3)
}

func TestConservation(t *testing.T) {
	h := NewHandler(zap.NewNop())
	rnd := rand.New(rand.NewSource(107))
	mats := []*content.Material{stone, dirt, pearl, helmet}

	items := make(map[int]*ItemStack)
	for i := 1; i < PlayerSize; i++ {
		if rnd.Intn(2) == 0 {
			m := mats[rnd.Intn(len(mats))]
			items[i] = NewItemStack(m, 1+rnd.Intn(m.MaxStack))
		}
	}
	v := newTestView(items, nil)
	total := v.Total()

	kinds := []ClickType{Left, Right, ShiftLeft, ShiftRight, DoubleClick}
	accepted := 0
	for step := 0; step < 2000; step++ {
		var r ClickResult
		if rnd.Intn(8) == 0 {
			right := rnd.Intn(2) == 0
			start, add, end := LeftDragStart, LeftDragAdd, LeftDragEnd
			if right {
				start, add, end = RightDragStart, RightDragAdd, RightDragEnd
			}
			click(h, v, start, OutsideSlot)
			for n := rnd.Intn(4) + 1; n > 0; n-- {
				click(h, v, add, rnd.Intn(PlayerSize))
			}
			r = click(h, v, end, OutsideSlot)
		} else {
			r = click(h, v, kinds[rnd.Intn(len(kinds))], rnd.Intn(PlayerSize))
		}
		if r.Accepted {
			accepted++
		}
		if got := v.Total(); got != total {
			t.Fatalf("step %d: total %d, want %d", step, got, total)
		}
	}
	if accepted == 0 {
		t.Error("no click was accepted")
	}
}

func amountIn(inv *Inventory) int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	n := 0
	for _, s := range inv.slots {
		n += amountOf(s.item)
	}
	return n
}

func dropped(r ClickResult) int {
	n := 0
	for _, d := range r.Drops {
		n += amountOf(d)
	}
	return n
}

// randomClicks plays n random clicks against v, the way a client racing
// another one would: every snapshot is taken right before its click.
func randomClicks(h *Handler, v *View, rnd *rand.Rand, n int) (accepted, drops int) {
	kinds := []ClickType{
		Left, Right, ShiftLeft, ShiftRight, DoubleClick,
		NumberKey, DropKey, CtrlDropKey, LeftOutside, RightOutside,
	}
	apply := func(typ ClickType, slot int, button int8) ClickResult {
		tx := ClickTransaction{WindowID: v.WindowID, Slot: slot, Type: typ, Button: button, Cursor: v.Cursor()}
		if slot >= 0 {
			tx.Clicked = v.Item(slot)
		}
		return h.Apply(v, tx)
	}
	for step := 0; step < n; step++ {
		var r ClickResult
		switch typ := kinds[rnd.Intn(len(kinds))]; {
		case rnd.Intn(8) == 0:
			start, add, end := LeftDragStart, LeftDragAdd, LeftDragEnd
			if rnd.Intn(2) == 0 {
				start, add, end = RightDragStart, RightDragAdd, RightDragEnd
			}
			apply(start, OutsideSlot, 0)
			for k := rnd.Intn(4) + 1; k > 0; k-- {
				apply(add, rnd.Intn(v.Len()), 0)
			}
			r = apply(end, OutsideSlot, 0)
		case typ == LeftOutside || typ == RightOutside:
			r = apply(typ, OutsideSlot, 0)
		case typ == NumberKey:
			r = apply(typ, rnd.Intn(v.Len()), int8(rnd.Intn(HotbarSize)))
		default:
			r = apply(typ, rnd.Intn(v.Len()), 0)
		}
		if r.Accepted {
			accepted++
		}
		drops += dropped(r)
	}
	return
}

func TestConservation_SharedChest(t *testing.T) {
	h := NewHandler(zap.NewNop())
	rnd := rand.New(rand.NewSource(1))
	mats := []*content.Material{stone, dirt, pearl, helmet}

	chest := NewContainer(27)
	views := [2]*View{
		NewContainerView(1, chest, NewPlayerInventory()),
		NewContainerView(2, chest, NewPlayerInventory()),
	}
	for _, v := range views {
		for i := 0; i < v.Len(); i++ {
			if rnd.Intn(3) == 0 {
				m := mats[rnd.Intn(len(mats))]
				v.SetItem(i, NewItemStack(m, 1+rnd.Intn(m.MaxStack)))
			}
		}
	}
	total := func() int {
		return views[0].Total() + views[1].Total() - amountIn(chest)
	}
	want := total()

	var (
		wg       sync.WaitGroup
		accepted [2]int
		drops    [2]int
	)
	for i, v := range views {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(int64(i) + 2))
			accepted[i], drops[i] = randomClicks(h, v, rnd, 3000)
		}()
	}
	wg.Wait()

	if got := total() + drops[0] + drops[1]; got != want {
		t.Errorf("%d items left plus %d dropped, want %d", total(), drops[0]+drops[1], want)
	}
	for i, n := range accepted {
		if n == 0 {
			t.Errorf("player %d: no click was accepted", i)
		}
	}
}

func TestParseClickType(t *testing.T) {
	cases := []struct {
		mode   int32
		button int8
		slot   int16
		want   ClickType
	}{
		{0, 0, 9, Left},
		{0, 1, 9, Right},
		{0, 0, OutsideSlot, LeftOutside},
		{0, 1, OutsideSlot, RightOutside},
		{1, 0, 9, ShiftLeft},
		{1, 1, 9, ShiftRight},
		{2, 0, 9, NumberKey},
		{2, 8, 9, NumberKey},
		{3, 2, 9, Middle},
		{4, 0, 9, DropKey},
		{4, 1, 9, CtrlDropKey},
		{4, 0, OutsideSlot, LeftOutside},
		{5, 0, OutsideSlot, LeftDragStart},
		{5, 1, 9, LeftDragAdd},
		{5, 2, OutsideSlot, LeftDragEnd},
		{5, 4, OutsideSlot, RightDragStart},
		{5, 5, 9, RightDragAdd},
		{5, 6, OutsideSlot, RightDragEnd},
		{6, 0, 9, DoubleClick},
	}
	for _, c := range cases {
		got, err := ParseClickType(c.mode, c.button, c.slot)
		if err != nil || got != c.want {
			t.Errorf("ParseClickType(%d, %d, %d) = %v, %v; want %v", c.mode, c.button, c.slot, got, err, c.want)
		}
	}
	for _, c := range [][2]int{{0, 2}, {2, 9}, {3, 0}, {5, 8}, {6, 1}, {7, 0}} {
		if _, err := ParseClickType(int32(c[0]), int8(c[1]), 9); !errors.Is(err, ErrInvalidClickAction) {
			t.Errorf("mode %d button %d: %v", c[0], c[1], err)
		}
	}
}
