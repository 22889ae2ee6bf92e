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

import "errors"

// MaxPolygons is the number of finished polygons after which a Scene
// switches to clipping mode by itself.
const MaxPolygons = 10

var (
	// ErrTooFewVertices is returned by Scene.FinishPolygon if the polygon
	// has fewer than two vertices before the final one.
	ErrTooFewVertices = errors.New("polyfill: polygon needs at least two vertices")

	// ErrClipping is returned when vertices are added in clipping mode.
	ErrClipping = errors.New("polyfill: scene is in clipping mode")

	// ErrNotClipping is returned when the clip rectangle is changed outside
	// of clipping mode.
	ErrNotClipping = errors.New("polyfill: scene is not in clipping mode")
)

// Scene holds the state of one interactive session: the finished polygons,
// the polygon currently being drawn, and the clip rectangle.
//
// A scene starts in drawing mode, where vertices are added to the current
// polygon.  In clipping mode, a rectangle is dragged out and every finished
// polygon is clipped against it when the drag ends.  There is no way back
// from clipping mode to drawing mode.
//
// A Scene is not safe for concurrent use.
type Scene struct {
	palette  Palette
	polygons []*Polygon // finished polygons, in creation order
	clipped  []*Polygon // polygons clipped at the last release, or nil
	current  *Polygon

	clipping         bool
	corner1, corner2 Point

	filler Filler
}

// NewScene returns an empty scene in drawing mode.  The polygons get their
// colors from pal, or from DefaultPalette if pal is nil.
func NewScene(pal Palette) *Scene {
	if pal == nil {
		pal = DefaultPalette
	}
	s := &Scene{palette: pal}
	s.current = NewPolygon(pal.At(0))
	return s
}

// AddVertex appends a vertex to the current polygon.  When the polygon
// reaches MaxVertices vertices it is closed and finished.
func (s *Scene) AddVertex(pt Point) error {
	if s.clipping {
		return ErrClipping
	}
	if !s.current.Append(pt) {
		s.current.Close()
		s.finish()
	}
	return nil
}

// FinishPolygon appends a last vertex to the current polygon and finishes
// it.  The polygon must already have at least two vertices.
func (s *Scene) FinishPolygon(pt Point) error {
	if s.clipping {
		return ErrClipping
	}
	if !s.current.AppendLast(pt) {
		return ErrTooFewVertices
	}
	s.finish()
	return nil
}

// finish moves the current, closed polygon to the list of finished
// polygons and starts a new one.
func (s *Scene) finish() {
	p := s.current
	s.polygons = append(s.polygons, p)
	Logger().Debug("polygon finished",
		"index", len(s.polygons)-1,
		"vertices", p.Len())

	s.current = NewPolygon(s.palette.At(len(s.polygons)))
	if len(s.polygons) >= MaxPolygons {
		s.BeginClipping()
	}
}

// BeginClipping switches the scene to clipping mode.
// The polygon currently being drawn, if any, is discarded.
func (s *Scene) BeginClipping() {
	if s.clipping {
		return
	}
	s.clipping = true
	s.current = NewPolygon(s.palette.At(len(s.polygons)))
	Logger().Debug("clipping mode", "polygons", len(s.polygons))
}

// Clipping reports whether the scene is in clipping mode.
func (s *Scene) Clipping() bool {
	return s.clipping
}

// PressClip starts a new clip rectangle with both corners at pt.
func (s *Scene) PressClip(pt Point) error {
	if !s.clipping {
		return ErrNotClipping
	}
	s.corner1, s.corner2 = pt, pt
	return nil
}

// DragClip moves the second corner of the clip rectangle to pt.
func (s *Scene) DragClip(pt Point) error {
	if !s.clipping {
		return ErrNotClipping
	}
	s.corner2 = pt
	return nil
}

// ReleaseClip clips all finished polygons against the current clip
// rectangle.  The clipped polygons replace the finished ones for drawing;
// the finished polygons themselves are kept, so that a later rectangle
// again starts from the unclipped shapes.
func (s *Scene) ReleaseClip() error {
	if !s.clipping {
		return ErrNotClipping
	}
	b := s.ClipBounds()
	clipped := make([]*Polygon, len(s.polygons))
	for i, p := range s.polygons {
		clipped[i] = Clip(p, b)
	}
	s.clipped = clipped
	Logger().Debug("polygons clipped",
		"minX", b.MinX, "minY", b.MinY,
		"maxX", b.MaxX, "maxY", b.MaxY)
	return nil
}

// ClipBounds returns the current clip rectangle.
func (s *Scene) ClipBounds() Bounds {
	return NewBounds(s.corner1, s.corner2)
}

// Current returns the polygon which is currently being drawn.
func (s *Scene) Current() *Polygon {
	return s.current
}

// Polygons returns the finished polygons in creation order.
func (s *Scene) Polygons() []*Polygon {
	return s.polygons
}

// Visible returns the polygons which Render draws: the result of the last
// clip, or the finished polygons if nothing has been clipped yet.
func (s *Scene) Visible() []*Polygon {
	if s.clipped != nil {
		return s.clipped
	}
	return s.polygons
}

// Render clears fb and draws the visible polygons in creation order.
// Later polygons cover earlier ones.  In clipping mode the outline of the
// clip rectangle is drawn in white.
func (s *Scene) Render(fb *Framebuffer) {
	fb.Clear(Black)
	for _, p := range s.Visible() {
		s.filler.Draw(fb, p)
	}

	if !s.clipping {
		return
	}
	c1, c2 := s.corner1, s.corner2
	b := s.ClipBounds()
	for x := b.MinX; x < b.MaxX; x++ {
		fb.SetPixel(x, c1.Y, White)
		fb.SetPixel(x, c2.Y, White)
	}
	for y := b.MinY; y < b.MaxY; y++ {
		fb.SetPixel(c1.X, y, White)
		fb.SetPixel(c2.X, y, White)
	}
}
