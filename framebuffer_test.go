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
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramebufferSetPixel(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	require.Len(t, fb.Pix, 12)

	fb.SetPixel(1, 2, Color{2, -1, 0.25})
	assert.Equal(t, Color{1, 0, 0.25}, fb.Pixel(1, 2))
	assert.Equal(t, Color{1, 0, 0.25}, fb.Pix[2*4+1])

	// outside the buffer
	fb.SetPixel(-1, 0, Red)
	fb.SetPixel(4, 0, Red)
	fb.SetPixel(0, 3, Red)
	for i, c := range fb.Pix {
		if i != 2*4+1 {
			assert.Equal(t, Black, c, "index %d", i)
		}
	}
	assert.Equal(t, Black, fb.Pixel(10, 10))
}

func TestFramebufferFlipY(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.FlipY = true

	fb.SetPixel(1, 0, Red)
	assert.Equal(t, Red, fb.Pix[2*4+1])
	assert.Equal(t, Red, fb.Pixel(1, 0))

	// the image view is not flipped
	r, _, _, _ := fb.At(1, 2).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	r, _, _, _ = fb.At(1, 0).RGBA()
	assert.Equal(t, uint32(0), r)
}

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(3, 3)
	fb.SetPixel(1, 1, Red)
	fb.Clear(Color{0, 0.5, 3})
	for _, c := range fb.Pix {
		assert.Equal(t, Color{0, 0.5, 1}, c)
	}
}

func TestFramebufferImage(t *testing.T) {
	fb := NewFramebuffer(5, 2)
	fb.SetPixel(4, 1, Blue)

	var img image.Image = fb
	assert.Equal(t, image.Rect(0, 0, 5, 2), img.Bounds())
	assert.Equal(t, color.RGBA64{B: 0xffff, A: 0xffff}, img.At(4, 1))
	assert.Equal(t, color.RGBA64{A: 0xffff}, img.At(0, 0))
	assert.Equal(t, color.RGBA64{}, img.At(5, 0))
}
