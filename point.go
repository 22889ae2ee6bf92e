// seehuhn.de/go/polyfill - polygon clipping and scan conversion
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package polyfill

import "seehuhn.de/go/geom/vec"

// Point is a pixel position with integer coordinates.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Vec returns p as a floating point vector.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// Edge is the directed segment between two consecutive polygon vertices.
type Edge struct {
	MinX, MinY int // extents of the two endpoints
	MaxX, MaxY int

	// DXDY is the change in x per unit change in y, (x2-x1)/(y2-y1).
	// It is zero and must not be used for horizontal edges.
	DXDY float64
}

// NewEdge returns the edge from p1 to p2.
func NewEdge(p1, p2 Point) Edge {
	e := Edge{
		MinX: min(p1.X, p2.X),
		MaxX: max(p1.X, p2.X),
		MinY: min(p1.Y, p2.Y),
		MaxY: max(p1.Y, p2.Y),
	}
	if p1.Y != p2.Y {
		e.DXDY = float64(p2.X-p1.X) / float64(p2.Y-p1.Y)
	}
	return e
}

// Horizontal reports whether both endpoints of e lie on the same scanline.
// Horizontal edges never intersect a scanline and are skipped by the filler.
func (e Edge) Horizontal() bool {
	return e.MinY == e.MaxY
}
