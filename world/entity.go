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

// Йоу, чат! Сутність - це все, що має ID і позицію у світі:
// гравці, предмети на землі, картини на стінах.

package world

import (
	"math"
	"sync/atomic"

	"github.com/google/uuid"
)

var entityCounter atomic.Int32

// NewEntityID returns a process-wide unique entity id.
func NewEntityID() int32 {
	return entityCounter.Add(1)
}

type Entity struct {
	EntityID int32
	UUID     uuid.UUID
	Position
	Rotation
}

func newEntity(pos Position) Entity {
	return Entity{EntityID: NewEntityID(), UUID: uuid.New(), Position: pos}
}

// Position is x, y, z in blocks.
type Position [3]float64

// Rotation is yaw and pitch in degrees.
type Rotation [2]float32

// IsValid rejects NaN and infinite coordinates.
func (p *Position) IsValid() bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (p Position) Add(x, y, z float64) Position {
	return Position{p[0] + x, p[1] + y, p[2] + z}
}

func (p Position) vec() vec3d { return vec3d(p) }
