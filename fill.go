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
	"math"
	"slices"
)

// PixelSink receives the pixels produced by a Filler.
type PixelSink interface {
	SetPixel(x, y int, c Color)
}

// activeEdge is an edge which intersects the current scanline, together
// with its running x-intersection.
type activeEdge struct {
	edge *Edge
	x    float64
}

// Filler scan converts polygons using an active edge table and the
// even-odd fill rule.  The caller creates one instance and reuses it for
// many polygons.  Internal buffers grow as needed but never shrink.
//
// A Filler is not safe for concurrent use.
type Filler struct {
	table  [][]int      // edge indices, bucketed by first scanline
	active []activeEdge // edges crossing the current scanline
	xs     []float64    // sorted x-intersections of the current scanline
}

// NewFiller returns a new Filler.
func NewFiller() *Filler {
	return &Filler{}
}

// Fill scan converts p and calls emit once for every horizontal run of
// inside pixels.  A run covers the pixels x0 <= x < x1 of row y.
// Rows are emitted in increasing order.
//
// Row y is sampled where the polygon edges cross y+1.  The rows from the
// polygon's minimum y up to, but excluding, its maximum y are scanned.
// The columns from the minimum x up to, but excluding, the maximum x are
// considered.  Open polygons and polygons with fewer than three vertices
// produce no output.
func (f *Filler) Fill(p *Polygon, emit func(y, x0, x1 int)) {
	if !p.closed || len(p.points) < 3 {
		return
	}

	// Bucket the edges by their first scanline.
	height := p.maxY - p.minY + 1
	f.table = slices.Grow(f.table[:0], height)[:height]
	for i := range f.table {
		f.table[i] = f.table[i][:0]
	}
	for i := range p.edges {
		e := &p.edges[i]
		if e.Horizontal() {
			continue
		}
		row := e.MinY - p.minY
		f.table[row] = append(f.table[row], i)
	}

	f.active = f.active[:0]
	for y := p.minY; y < p.maxY; y++ {
		for _, i := range f.table[y-p.minY] {
			e := &p.edges[i]

			// Start at the end of the edge which lies on this scanline,
			// so that the first step below lands on row y+1.
			x := float64(e.MaxX)
			if e.DXDY > 0 {
				x = float64(e.MinX)
			}
			f.active = append(f.active, activeEdge{edge: e, x: x})
		}

		f.xs = f.xs[:0]
		for i := 0; i < len(f.active); {
			a := &f.active[i]
			if y == a.edge.MaxY {
				// Remove from active list (swap with last)
				f.active[i] = f.active[len(f.active)-1]
				f.active = f.active[:len(f.active)-1]
				continue
			}
			a.x += a.edge.DXDY
			f.xs = append(f.xs, a.x)
			i++
		}
		slices.Sort(f.xs)

		f.emitRow(y, p.minX, p.maxX, emit)
	}
}

// emitRow applies the even-odd rule to the sorted intersections of row y.
// A pixel x is inside if an odd number of intersections are <= x.  An
// unpaired last intersection ends the row.
func (f *Filler) emitRow(y, xMin, xMax int, emit func(y, x0, x1 int)) {
	for i := 0; i+1 < len(f.xs); i += 2 {
		x0 := max(int(math.Ceil(f.xs[i])), xMin)
		x1 := min(int(math.Ceil(f.xs[i+1])), xMax)
		if x0 >= xMax {
			return
		}
		if x0 < x1 {
			emit(y, x0, x1)
		}
	}
}

// Draw fills p into dst, one SetPixel call per inside pixel.
func (f *Filler) Draw(dst PixelSink, p *Polygon) {
	c := p.color
	f.Fill(p, func(y, x0, x1 int) {
		for x := x0; x < x1; x++ {
			dst.SetPixel(x, y, c)
		}
	})
}
