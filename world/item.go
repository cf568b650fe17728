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

package world

import (
	"math"

	"BasaltCore/inventory"
)

// Item is a stack lying in the world.
type Item struct {
	Entity
	Stack *inventory.ItemStack
	// Velocity is in blocks per tick.
	Velocity [3]float64
	Age      int
}

// throwVelocity is the speed of an item thrown by a player looking along
// yaw and pitch.
func throwVelocity(rot Rotation) [3]float64 {
	const speed = 0.3
	yaw := float64(rot[0]) * math.Pi / 180
	pitch := float64(rot[1]) * math.Pi / 180
	return [3]float64{
		-math.Sin(yaw) * math.Cos(pitch) * speed,
		-math.Sin(pitch)*speed + 0.1,
		math.Cos(yaw) * math.Cos(pitch) * speed,
	}
}
