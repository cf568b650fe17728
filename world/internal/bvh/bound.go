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

package bvh

import "golang.org/x/exp/constraints"

// AABB is an axis aligned box. Points on the border are outside.
type AABB[I constraints.Signed | constraints.Float] struct {
	Upper, Lower Vec3[I]
}

// Around returns the cube of half size r centered at c.
func Around[I constraints.Signed | constraints.Float](c Vec3[I], r I) AABB[I] {
	d := Vec3[I]{r, r, r}
	return AABB[I]{Upper: c.Add(d), Lower: c.Sub(d)}
}

func (b AABB[I]) WithIn(point Vec3[I]) bool {
	return b.Lower.Less(point) && b.Upper.More(point)
}

func (b AABB[I]) Touch(o AABB[I]) bool {
	return b.Lower.Less(o.Upper) && o.Lower.Less(b.Upper)
}

func (b AABB[I]) Union(o AABB[I]) AABB[I] {
	return AABB[I]{Upper: b.Upper.Max(o.Upper), Lower: b.Lower.Min(o.Lower)}
}

// Surface is the area of the box, used as the insertion cost.
func (b AABB[I]) Surface() I {
	d := b.Upper.Sub(b.Lower)
	return 2 * (d[0]*d[1] + d[1]*d[2] + d[2]*d[0])
}
