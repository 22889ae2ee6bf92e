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

package testcases

import "seehuhn.de/go/polyfill"

// TestCase defines a single scene.
type TestCase struct {
	Name     string             // lowercase a-z and _ only
	Polygons [][]polyfill.Point // vertices of each polygon, in creation order
	Clip     *polyfill.Bounds   // clip rectangle (nil means no clipping)
	Width    int                // canvas width in pixels
	Height   int                // canvas height in pixels
}

// Build returns the closed polygons of the test case, colored from the
// default palette.
func (tc TestCase) Build() []*polyfill.Polygon {
	res := make([]*polyfill.Polygon, len(tc.Polygons))
	for i, pts := range tc.Polygons {
		p := polyfill.NewPolygon(polyfill.DefaultPalette.At(i))
		for _, pt := range pts {
			p.Append(pt)
		}
		p.Close()
		res[i] = p
	}
	return res
}

// Visible returns the polygons of the test case after clipping.
func (tc TestCase) Visible() []*polyfill.Polygon {
	polys := tc.Build()
	if tc.Clip != nil {
		for i, p := range polys {
			polys[i] = polyfill.Clip(p, *tc.Clip)
		}
	}
	return polys
}

// Render fills the visible polygons into a new framebuffer.
func (tc TestCase) Render() *polyfill.Framebuffer {
	fb := polyfill.NewFramebuffer(tc.Width, tc.Height)
	f := polyfill.NewFiller()
	for _, p := range tc.Visible() {
		f.Draw(fb, p)
	}
	return fb
}

// Replay feeds the test case into s, the way mouse input would: every
// polygon is entered with AddVertex calls and finished with FinishPolygon,
// then the clip rectangle is dragged out.
func (tc TestCase) Replay(s *polyfill.Scene) error {
	for _, pts := range tc.Polygons {
		if len(pts) < 3 {
			return polyfill.ErrTooFewVertices
		}
		last := len(pts) - 1
		if len(pts) == polyfill.MaxVertices {
			// the last AddVertex finishes the polygon
			last = len(pts)
		}
		for _, pt := range pts[:last] {
			if err := s.AddVertex(pt); err != nil {
				return err
			}
		}
		if last < len(pts) {
			if err := s.FinishPolygon(pts[last]); err != nil {
				return err
			}
		}
	}

	if tc.Clip == nil {
		return nil
	}
	s.BeginClipping()
	if err := s.PressClip(polyfill.Pt(tc.Clip.MaxX, tc.Clip.MinY)); err != nil {
		return err
	}
	if err := s.DragClip(polyfill.Pt(tc.Clip.MinX, tc.Clip.MaxY)); err != nil {
		return err
	}
	return s.ReleaseClip()
}

// pts converts a flat list of coordinates into points.
func pts(coords ...int) []polyfill.Point {
	res := make([]polyfill.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		res = append(res, polyfill.Pt(coords[i], coords[i+1]))
	}
	return res
}

// bounds is a helper to create a clip rectangle.
func bounds(minX, minY, maxX, maxY int) *polyfill.Bounds {
	return &polyfill.Bounds{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}
