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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneFinishPolygon(t *testing.T) {
	s := NewScene(nil)
	assert.False(t, s.Clipping())
	assert.Equal(t, White, s.Current().Color())

	require.NoError(t, s.AddVertex(Pt(10, 10)))
	err := s.FinishPolygon(Pt(50, 10))
	assert.ErrorIs(t, err, ErrTooFewVertices)
	assert.Empty(t, s.Polygons())

	require.NoError(t, s.AddVertex(Pt(50, 10)))
	require.NoError(t, s.FinishPolygon(Pt(30, 50)))

	require.Len(t, s.Polygons(), 1)
	p := s.Polygons()[0]
	assert.Equal(t, 3, p.Len())
	assert.True(t, p.IsClosed())
	assert.Equal(t, White, p.Color())

	assert.Equal(t, 0, s.Current().Len())
	assert.Equal(t, Red, s.Current().Color())
}

func TestSceneFullPolygon(t *testing.T) {
	s := NewScene(nil)
	for i := range MaxVertices {
		require.NoError(t, s.AddVertex(Pt(i, i%3)))
	}
	require.Len(t, s.Polygons(), 1)
	p := s.Polygons()[0]
	assert.Equal(t, MaxVertices, p.Len())
	assert.True(t, p.IsClosed())
	assert.Equal(t, 0, s.Current().Len())
}

func TestSceneAutoClipping(t *testing.T) {
	s := NewScene(nil)
	for i := range MaxPolygons {
		require.False(t, s.Clipping())
		require.NoError(t, s.AddVertex(Pt(i, 0)))
		require.NoError(t, s.AddVertex(Pt(i+5, 0)))
		require.NoError(t, s.FinishPolygon(Pt(i, 5)))
	}
	assert.True(t, s.Clipping())
	assert.Len(t, s.Polygons(), MaxPolygons)
	for i, p := range s.Polygons() {
		assert.Equal(t, DefaultPalette[i], p.Color())
	}

	assert.ErrorIs(t, s.AddVertex(Pt(1, 1)), ErrClipping)
	assert.ErrorIs(t, s.FinishPolygon(Pt(1, 1)), ErrClipping)
}

func TestSceneClipModeErrors(t *testing.T) {
	s := NewScene(nil)
	assert.ErrorIs(t, s.PressClip(Pt(0, 0)), ErrNotClipping)
	assert.ErrorIs(t, s.DragClip(Pt(0, 0)), ErrNotClipping)
	assert.ErrorIs(t, s.ReleaseClip(), ErrNotClipping)
}

func TestSceneClip(t *testing.T) {
	s := NewScene(Palette{Red, Green})
	require.NoError(t, s.AddVertex(Pt(10, 10)))
	require.NoError(t, s.AddVertex(Pt(50, 10)))
	require.NoError(t, s.FinishPolygon(Pt(30, 50)))

	// an unfinished polygon is dropped when clipping starts
	require.NoError(t, s.AddVertex(Pt(1, 1)))
	s.BeginClipping()
	assert.Equal(t, 0, s.Current().Len())

	require.NoError(t, s.PressClip(Pt(40, 0)))
	require.NoError(t, s.DragClip(Pt(20, 20)))
	require.NoError(t, s.DragClip(Pt(0, 60)))
	assert.Equal(t, Bounds{MinX: 0, MinY: 0, MaxX: 40, MaxY: 60}, s.ClipBounds())

	// before the release, the unclipped polygons are shown
	assert.Equal(t, s.Polygons(), s.Visible())

	require.NoError(t, s.ReleaseClip())
	require.Len(t, s.Visible(), 1)
	assert.Equal(t, []Point{{10, 10}, {40, 10}, {40, 30}, {30, 50}}, vertices(s.Visible()[0]))
	assert.Equal(t, 3, s.Polygons()[0].Len())

	// a second rectangle starts again from the original polygons
	require.NoError(t, s.PressClip(Pt(100, 100)))
	require.NoError(t, s.DragClip(Pt(200, 200)))
	require.NoError(t, s.ReleaseClip())
	assert.True(t, s.Visible()[0].IsEmpty())
	assert.Equal(t, 3, s.Polygons()[0].Len())
}

func TestSceneRender(t *testing.T) {
	s := NewScene(Palette{Red})
	require.NoError(t, s.AddVertex(Pt(10, 10)))
	require.NoError(t, s.AddVertex(Pt(50, 10)))
	require.NoError(t, s.FinishPolygon(Pt(30, 50)))

	fb := NewFramebuffer(60, 60)
	fb.SetPixel(0, 0, Blue)
	s.Render(fb)
	assert.Equal(t, Black, fb.Pixel(0, 0), "frame not cleared")
	assert.Equal(t, Red, fb.Pixel(45, 12))
	assert.Equal(t, Red, fb.Pixel(30, 30))

	s.BeginClipping()
	require.NoError(t, s.PressClip(Pt(0, 0)))
	require.NoError(t, s.DragClip(Pt(40, 59)))
	require.NoError(t, s.ReleaseClip())
	s.Render(fb)

	assert.Equal(t, Black, fb.Pixel(45, 12), "clipped away")
	assert.Equal(t, Red, fb.Pixel(30, 30))

	// outline of the clip rectangle
	assert.Equal(t, White, fb.Pixel(40, 5))
	assert.Equal(t, White, fb.Pixel(0, 5))
	assert.Equal(t, White, fb.Pixel(20, 0))
	assert.Equal(t, White, fb.Pixel(20, 59))
	assert.Equal(t, Black, fb.Pixel(41, 5))
}
