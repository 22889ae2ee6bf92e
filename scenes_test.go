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

package polyfill_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/polyfill"
	"seehuhn.de/go/polyfill/testcases"
)

// TestReplay checks that entering a test case through the Scene gives the
// same polygons as building them directly.
func TestReplay(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				s := polyfill.NewScene(nil)
				err := tc.Replay(s)
				if slices.ContainsFunc(tc.Polygons, func(pts []polyfill.Point) bool { return len(pts) < 3 }) {
					require.ErrorIs(t, err, polyfill.ErrTooFewVertices)
					return
				}
				require.NoError(t, err)

				want := tc.Visible()
				got := s.Visible()
				require.Len(t, got, len(want))
				for i := range want {
					assert.Equal(t, points(want[i]), points(got[i]), "polygon %d", i)
					assert.Equal(t, want[i].Color(), got[i].Color(), "polygon %d", i)
				}
				assert.Equal(t, tc.Clip != nil, s.Clipping())
			})
		}
	}
}

// TestClipCases checks that no pixel of a clipped scene lies outside the
// clip rectangle.
func TestClipCases(t *testing.T) {
	f := polyfill.NewFiller()
	for _, tc := range testcases.All["clip"] {
		t.Run(tc.Name, func(t *testing.T) {
			b := *tc.Clip
			for i, p := range tc.Visible() {
				for _, pt := range p.Vertices() {
					require.True(t, pt.X >= b.MinX && pt.X <= b.MaxX && pt.Y >= b.MinY && pt.Y <= b.MaxY,
						"polygon %d: vertex %v outside %v", i, pt, b)
				}
				f.Fill(p, func(y, x0, x1 int) {
					require.True(t, y >= b.MinY && y < b.MaxY, "polygon %d: row %d", i, y)
					require.True(t, x0 >= b.MinX && x1 <= b.MaxX, "polygon %d: span %d-%d", i, x0, x1)
				})
			}
		})
	}
}

// TestClipInsidePixels checks that clipping does not change the pixels
// inside the clip rectangle, for rectangles which cut whole pixel rows and
// columns off the polygon.
func TestClipInsidePixels(t *testing.T) {
	tc := testcases.TestCase{
		Polygons: [][]polyfill.Point{{{4, 4}, {40, 4}, {40, 40}, {4, 40}}},
		Clip:     &polyfill.Bounds{MinX: 10, MinY: 12, MaxX: 30, MaxY: 34},
		Width:    64,
		Height:   64,
	}
	clipped := tc.Render()
	tc.Clip = nil
	full := tc.Render()

	b := polyfill.Bounds{MinX: 10, MinY: 12, MaxX: 30, MaxY: 34}
	for y := range 64 {
		for x := range 64 {
			inside := x >= b.MinX && x < b.MaxX && y >= b.MinY && y < b.MaxY
			if inside {
				require.Equal(t, full.Pixel(x, y), clipped.Pixel(x, y), "pixel (%d,%d)", x, y)
			} else {
				require.Equal(t, polyfill.Black, clipped.Pixel(x, y), "pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestDegenerateCases(t *testing.T) {
	for _, tc := range testcases.All["degenerate"] {
		t.Run(tc.Name, func(t *testing.T) {
			fb := tc.Render()
			for i, c := range fb.Pix {
				require.Equal(t, polyfill.Black, c, "pixel %d", i)
			}
			if tc.Clip != nil {
				for _, p := range tc.Visible() {
					assert.True(t, p.IsEmpty())
				}
			}
		})
	}
}

func TestTriangleCase(t *testing.T) {
	tc := findCase(t, "fill", "triangle")
	fb := tc.Render()

	var lit []int
	for x := range tc.Width {
		if fb.Pixel(x, 30) == polyfill.White {
			lit = append(lit, x)
		}
	}
	assert.Equal(t, []int{21, 22, 23, 24, 25, 26, 27, 28, 29, 30,
		31, 32, 33, 34, 35, 36, 37, 38, 39}, lit)

	tc = findCase(t, "clip", "triangle_right")
	vis := tc.Visible()
	require.Len(t, vis, 1)
	assert.Equal(t, 4, vis[0].Len())
}

func findCase(t *testing.T, category, name string) testcases.TestCase {
	t.Helper()
	for _, tc := range testcases.All[category] {
		if tc.Name == name {
			return tc
		}
	}
	t.Fatalf("test case %s_%s not found", category, name)
	return testcases.TestCase{}
}

func points(p *polyfill.Polygon) []polyfill.Point {
	var res []polyfill.Point
	for _, pt := range p.Vertices() {
		res = append(res, pt)
	}
	return res
}
