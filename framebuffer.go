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
)

// Framebuffer is an RGB pixel buffer.  It implements [PixelSink] and
// [image.Image].
type Framebuffer struct {
	Width, Height int

	// FlipY places the origin of the SetPixel and Pixel coordinates in the
	// bottom-left corner instead of the top-left corner.  The image.Image
	// view always has its origin at the top-left.
	FlipY bool

	// Pix holds the pixels in row-major order, top row first.
	Pix []Color
}

// NewFramebuffer returns a black framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]Color, width*height),
	}
}

// Clear sets every pixel to c.
func (fb *Framebuffer) Clear(c Color) {
	c = c.Clamp()
	for i := range fb.Pix {
		fb.Pix[i] = c
	}
}

// SetPixel sets pixel (x, y) to c, clamping the components to [0, 1].
// Pixels outside the buffer are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	i, ok := fb.index(x, y)
	if !ok {
		return
	}
	fb.Pix[i] = c.Clamp()
}

// Pixel returns the color of pixel (x, y), using the same coordinates as
// SetPixel.  Pixels outside the buffer are black.
func (fb *Framebuffer) Pixel(x, y int) Color {
	i, ok := fb.index(x, y)
	if !ok {
		return Black
	}
	return fb.Pix[i]
}

func (fb *Framebuffer) index(x, y int) (int, bool) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return 0, false
	}
	if fb.FlipY {
		y = fb.Height - 1 - y
	}
	return y*fb.Width + x, true
}

// ColorModel implements the [image.Image] interface.
func (fb *Framebuffer) ColorModel() color.Model {
	return color.RGBA64Model
}

// Bounds implements the [image.Image] interface.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// At implements the [image.Image] interface.
func (fb *Framebuffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(fb.Bounds()) {
		return color.RGBA64{}
	}
	r, g, b, a := fb.Pix[y*fb.Width+x].RGBA()
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}
}
