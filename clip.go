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

import "seehuhn.de/go/geom/rect"

// Bounds is an axis-aligned clip rectangle.  A polygon clipped against b
// fills at most the pixels with MinX <= x < MaxX and MinY <= y < MaxY.
// Vertices which lie exactly on the boundary count as outside.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

// NewBounds returns the rectangle spanned by two opposite corners, given in
// any order.
func NewBounds(c1, c2 Point) Bounds {
	return Bounds{
		MinX: min(c1.X, c2.X),
		MinY: min(c1.Y, c2.Y),
		MaxX: max(c1.X, c2.X),
		MaxY: max(c1.Y, c2.Y),
	}
}

// Empty reports whether b has zero width or height.
func (b Bounds) Empty() bool {
	return b.MinX >= b.MaxX || b.MinY >= b.MaxY
}

// Rect returns b as a rectangle.
func (b Bounds) Rect() rect.Rect {
	return rect.Rect{
		LLx: float64(b.MinX),
		LLy: float64(b.MinY),
		URx: float64(b.MaxX),
		URy: float64(b.MaxY),
	}
}

// Clip clips p against b.  The result is a new closed polygon with the
// color of p, or an empty polygon if nothing of p lies inside b.  Polygons
// with fewer than three vertices are clipped away completely.
//
// The four sides are processed in the fixed order right, bottom, left, top.
func Clip(p *Polygon, b Bounds) *Polygon {
	if len(p.points) < 3 {
		return NewPolygon(p.color)
	}
	p = ClipRight(p, b.MaxX)
	p = ClipBottom(p, b.MaxY)
	p = ClipLeft(p, b.MinX)
	return ClipTop(p, b.MinY)
}

// ClipRight keeps the part of p where x < bound.
func ClipRight(p *Polygon, bound int) *Polygon {
	return clipPlane(p, func(pt Point) bool { return pt.X < bound }, crossX(bound))
}

// ClipBottom keeps the part of p where y < bound.
func ClipBottom(p *Polygon, bound int) *Polygon {
	return clipPlane(p, func(pt Point) bool { return pt.Y < bound }, crossY(bound))
}

// ClipLeft keeps the part of p where x > bound.
func ClipLeft(p *Polygon, bound int) *Polygon {
	return clipPlane(p, func(pt Point) bool { return pt.X > bound }, crossX(bound))
}

// ClipTop keeps the part of p where y > bound.
func ClipTop(p *Polygon, bound int) *Polygon {
	return clipPlane(p, func(pt Point) bool { return pt.Y > bound }, crossY(bound))
}

// clipPlane performs one Sutherland-Hodgman pass against a half-plane.
// The input polygon is not modified.
func clipPlane(p *Polygon, inside func(Point) bool, cross func(prev, cur Point) Point) *Polygon {
	res := NewPolygon(p.color)

	n := len(p.points)
	for i, cur := range p.points {
		prev := p.points[(i+n-1)%n]
		prevIn, curIn := inside(prev), inside(cur)
		switch {
		case prevIn && curIn:
			res.add(cur)
		case prevIn: // leaving
			res.add(cross(prev, cur))
		case curIn: // entering
			res.add(cross(prev, cur))
			res.add(cur)
		}
	}

	if len(res.points) > 0 {
		res.Close()
	}
	return res
}

// crossX returns a function which finds where the segment prev-cur meets
// the vertical line x = bound.
//
// The function is only called for segments with one endpoint strictly on
// each side of the half-plane boundary, so the endpoints always differ in
// x.  Should they coincide anyway, cur is returned with its x moved onto
// the line.
func crossX(bound int) func(prev, cur Point) Point {
	return func(prev, cur Point) Point {
		if prev.X == cur.X {
			return Point{X: bound, Y: cur.Y}
		}
		a, b := prev.Vec(), cur.Vec()
		t := (float64(bound) - b.X) / (a.X - b.X)
		q := b.Add(a.Sub(b).Mul(t))
		return Point{X: bound, Y: int(q.Y)}
	}
}

// crossY is like crossX, but for the horizontal line y = bound.
func crossY(bound int) func(prev, cur Point) Point {
	return func(prev, cur Point) Point {
		if prev.Y == cur.Y {
			return Point{X: cur.X, Y: bound}
		}
		a, b := prev.Vec(), cur.Vec()
		t := (float64(bound) - b.Y) / (a.Y - b.Y)
		q := b.Add(a.Sub(b).Mul(t))
		return Point{X: int(q.X), Y: bound}
	}
}
