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

// Йоу, чат! Вектори для BVH дерева. Світ у нас тривимірний,
// тому тут лишився тільки Vec3.

package bvh

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Vec3 is a point or a size in world space.
type Vec3[I constraints.Signed | constraints.Float] [3]I

func (v Vec3[I]) Add(o Vec3[I]) Vec3[I] { return Vec3[I]{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }
func (v Vec3[I]) Sub(o Vec3[I]) Vec3[I] { return Vec3[I]{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }
func (v Vec3[I]) Mul(k I) Vec3[I]       { return Vec3[I]{v[0] * k, v[1] * k, v[2] * k} }

func (v Vec3[I]) Max(o Vec3[I]) Vec3[I] {
	return Vec3[I]{max(v[0], o[0]), max(v[1], o[1]), max(v[2], o[2])}
}

func (v Vec3[I]) Min(o Vec3[I]) Vec3[I] {
	return Vec3[I]{min(v[0], o[0]), min(v[1], o[1]), min(v[2], o[2])}
}

// Less reports whether every component of v is below the one of o.
func (v Vec3[I]) Less(o Vec3[I]) bool { return v[0] < o[0] && v[1] < o[1] && v[2] < o[2] }

// More reports whether every component of v is above the one of o.
func (v Vec3[I]) More(o Vec3[I]) bool { return v[0] > o[0] && v[1] > o[1] && v[2] > o[2] }

func (v Vec3[I]) Norm() float64 {
	return math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]))
}

func (v Vec3[I]) Sum() I { return v[0] + v[1] + v[2] }
