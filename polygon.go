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

import (
	"iter"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// MaxVertices is the largest number of vertices a user can append to a
// polygon.  Clipping may produce polygons with more vertices than this.
const MaxVertices = 10

// Polygon is a simple polygon with a single fill color.
//
// A polygon is built by appending vertices one at a time and is then closed
// exactly once.  After closing, the polygon does not change any more.
// Only closed polygons are filled or clipped.
type Polygon struct {
	points []Point
	edges  []Edge
	color  Color
	closed bool

	minX, minY int // bounding box of the vertices
	maxX, maxY int
}

// NewPolygon returns an empty polygon which will be filled with c.
func NewPolygon(c Color) *Polygon {
	return &Polygon{color: c}
}

// Append adds a vertex to the polygon and reports whether the polygon can
// take more vertices.  Once false is returned the caller must close the
// polygon.  Appending to a full or closed polygon has no effect.
func (p *Polygon) Append(pt Point) bool {
	if p.closed || len(p.points) >= MaxVertices {
		return false
	}
	p.add(pt)
	return len(p.points) < MaxVertices
}

// AppendLast adds a final vertex and closes the polygon in one step.
// At least two vertices must already be present; otherwise, and for closed
// polygons, nothing happens and false is returned.
func (p *Polygon) AppendLast(pt Point) bool {
	if p.closed || len(p.points) < 2 {
		return false
	}
	p.add(pt)
	p.Close()
	return true
}

// Close adds the edge from the last vertex back to the first one.
// Closing an empty or an already closed polygon has no effect.
func (p *Polygon) Close() {
	if p.closed || len(p.points) == 0 {
		return
	}
	p.edges = append(p.edges, NewEdge(p.points[len(p.points)-1], p.points[0]))
	p.closed = true
}

// add appends a vertex without enforcing MaxVertices.
func (p *Polygon) add(pt Point) {
	p.points = append(p.points, pt)
	n := len(p.points)
	if n == 1 {
		p.minX, p.maxX = pt.X, pt.X
		p.minY, p.maxY = pt.Y, pt.Y
		return
	}

	p.edges = append(p.edges, NewEdge(p.points[n-2], pt))
	p.minX = min(p.minX, pt.X)
	p.maxX = max(p.maxX, pt.X)
	p.minY = min(p.minY, pt.Y)
	p.maxY = max(p.maxY, pt.Y)
}

// Len returns the number of vertices.
func (p *Polygon) Len() int {
	return len(p.points)
}

// Vertex returns the i-th vertex.
func (p *Polygon) Vertex(i int) Point {
	return p.points[i]
}

// Vertices iterates over the vertices in insertion order.
func (p *Polygon) Vertices() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i, pt := range p.points {
			if !yield(i, pt) {
				return
			}
		}
	}
}

// Color returns the fill color.
func (p *Polygon) Color() Color {
	return p.color
}

// IsClosed reports whether Close (or AppendLast) has been called.
func (p *Polygon) IsClosed() bool {
	return p.closed
}

// IsEmpty reports whether the polygon has no vertices.  Clipping represents
// a polygon which lies entirely outside the clip region this way.
func (p *Polygon) IsEmpty() bool {
	return len(p.points) == 0
}

// BBox returns the bounding box of the vertices.
// The result is meaningless for empty polygons.
func (p *Polygon) BBox() (minX, minY, maxX, maxY int) {
	return p.minX, p.minY, p.maxX, p.maxY
}

// Rect returns the bounding box as a rectangle.
func (p *Polygon) Rect() rect.Rect {
	return rect.Rect{
		LLx: float64(p.minX),
		LLy: float64(p.minY),
		URx: float64(p.maxX),
		URy: float64(p.maxY),
	}
}

// Path returns the outline of the polygon.  The path is closed if the
// polygon is closed.
func (p *Polygon) Path() *path.Data {
	res := &path.Data{}
	for i, pt := range p.points {
		if i == 0 {
			res = res.MoveTo(pt.Vec())
		} else {
			res = res.LineTo(pt.Vec())
		}
	}
	if p.closed {
		res = res.Close()
	}
	return res
}
