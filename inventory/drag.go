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

import "github.com/elliotchance/orderedmap/v2"

// DragSession collects the slots painted over while the mouse button is
// held. It lives from a drag start click until the matching drag end.
type DragSession struct {
	Right bool
	slots *orderedmap.OrderedMap[int, struct{}]
}

func newDragSession(right bool) *DragSession {
	return &DragSession{Right: right, slots: orderedmap.NewOrderedMap[int, struct{}]()}
}

// Add appends slot i unless it is already collected.
func (d *DragSession) Add(i int) bool {
	if _, ok := d.slots.Get(i); ok {
		return false
	}
	d.slots.Set(i, struct{}{})
	return true
}

// Slots returns the collected indices in the order they were added.
func (d *DragSession) Slots() []int { return d.slots.Keys() }

func (d *DragSession) Len() int { return d.slots.Len() }
