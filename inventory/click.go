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
	"fmt"
)

var (
	// ErrStaleClientState means the client acted on slot contents the
	// server no longer has.
	ErrStaleClientState = errors.New("inventory: stale client state")
	// ErrInvalidClickAction means the click kind, button or slot make no
	// sense together, or the click came out of order.
	ErrInvalidClickAction = errors.New("inventory: invalid click action")
	// ErrSlotRejected means a drag covered a slot that cannot take the item.
	ErrSlotRejected = errors.New("inventory: slot rejected item")
)

// OutsideSlot is the slot number the client sends for clicks outside the
// window. -1 is the window border.
const (
	OutsideSlot = -999
	BorderSlot  = -1
)

type ClickType uint8

const (
	Left ClickType = iota
	Right
	ShiftLeft
	ShiftRight
	DropKey
	CtrlDropKey
	NumberKey
	LeftOutside
	RightOutside
	Middle
	LeftDragStart
	RightDragStart
	LeftDragAdd
	RightDragAdd
	LeftDragEnd
	RightDragEnd
	DoubleClick
)

var clickTypeNames = [...]string{
	"Left", "Right", "ShiftLeft", "ShiftRight", "DropKey", "CtrlDropKey",
	"NumberKey", "LeftOutside", "RightOutside", "Middle",
	"LeftDragStart", "RightDragStart", "LeftDragAdd", "RightDragAdd",
	"LeftDragEnd", "RightDragEnd", "DoubleClick",
}

func (t ClickType) String() string {
	if int(t) < len(clickTypeNames) {
		return clickTypeNames[t]
	}
	return fmt.Sprintf("ClickType(%d)", uint8(t))
}

// readsSlot reports whether the click looks at the clicked slot, in which
// case the client's idea of that slot must match the server's.
func (t ClickType) readsSlot() bool {
	switch t {
	case Left, Right, ShiftLeft, ShiftRight, DropKey, CtrlDropKey, NumberKey, Middle:
		return true
	}
	return false
}

func (t ClickType) isDrag() bool { return t >= LeftDragStart && t <= RightDragEnd }

// ParseClickType decodes the mode and button of a click window packet.
func ParseClickType(mode int32, button int8, slot int16) (ClickType, error) {
	outside := slot == OutsideSlot
	switch mode {
	case 0:
		switch {
		case button == 0 && outside:
			return LeftOutside, nil
		case button == 1 && outside:
			return RightOutside, nil
		case button == 0:
			return Left, nil
		case button == 1:
			return Right, nil
		}
	case 1:
		if button == 0 {
			return ShiftLeft, nil
		} else if button == 1 {
			return ShiftRight, nil
		}
	case 2:
		if button >= 0 && button < HotbarSize {
			return NumberKey, nil
		}
	case 3:
		if button == 2 {
			return Middle, nil
		}
	case 4:
		// With nothing under the mouse the client reports drops as
		// plain clicks outside.
		switch {
		case button == 0 && outside:
			return LeftOutside, nil
		case button == 1 && outside:
			return RightOutside, nil
		case button == 0:
			return DropKey, nil
		case button == 1:
			return CtrlDropKey, nil
		}
	case 5:
		switch button {
		case 0:
			return LeftDragStart, nil
		case 1:
			return LeftDragAdd, nil
		case 2:
			return LeftDragEnd, nil
		case 4:
			return RightDragStart, nil
		case 5:
			return RightDragAdd, nil
		case 6:
			return RightDragEnd, nil
		}
	case 6:
		if button == 0 {
			return DoubleClick, nil
		}
	}
	return 0, fmt.Errorf("%w: mode %d button %d slot %d", ErrInvalidClickAction, mode, button, slot)
}

// ClickTransaction is one click as reported by the client. Cursor and
// Clicked are what the client believes the cursor and the clicked slot
// held before the click.
type ClickTransaction struct {
	WindowID     uint8
	ActionNumber int16
	Slot         int
	Type         ClickType
	Button       int8
	Cursor       *ItemStack
	Clicked      *ItemStack
	// Creative enables middle click cloning.
	Creative bool
}

// Confirmation is the answer the client waits for after every click.
type Confirmation struct {
	WindowID     uint8
	ActionNumber int16
	Accepted     bool
}

// ClickResult is the outcome of applying one click. Drops are stacks that
// left the inventory and must be spawned in the world by the caller.
type ClickResult struct {
	Confirmation
	Err   error
	Drops []*ItemStack
}
