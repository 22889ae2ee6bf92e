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

// Color is an RGB color with components in the range [0, 1].
type Color struct {
	R, G, B float32
}

// Colors used by DefaultPalette.
var (
	Black   = Color{0, 0, 0}
	White   = Color{1, 1, 1}
	Red     = Color{1, 0, 0}
	Green   = Color{0, 1, 0}
	Blue    = Color{0, 0, 1}
	Yellow  = Color{1, 1, 0}
	Cyan    = Color{0, 1, 1}
	Magenta = Color{1, 0, 1}
	Orange  = Color{1, 0.5, 0}
	Brown   = Color{0.5, 0.3, 0}
	Gray    = Color{0.5, 0.5, 0.5}
)

// Clamp returns c with all components limited to [0, 1].
func (c Color) Clamp() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// RGBA implements the [image/color.Color] interface.
// Components outside [0, 1] are clamped.
func (c Color) RGBA() (r, g, b, a uint32) {
	c = c.Clamp()
	r = uint32(c.R*0xffff + 0.5)
	g = uint32(c.G*0xffff + 0.5)
	b = uint32(c.B*0xffff + 0.5)
	return r, g, b, 0xffff
}

// Gray returns the luminance of c, using the Rec. 601 weights.
func (c Color) Gray() float64 {
	c = c.Clamp()
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Palette assigns fill colors to polygons in creation order.
// The colors repeat once the palette is exhausted.
type Palette []Color

// DefaultPalette is the palette used by NewScene.
var DefaultPalette = Palette{
	White, Red, Blue,
	Green, Yellow, Cyan,
	Magenta, Orange, Brown,
	Gray,
}

// At returns the color for the i-th polygon.
// An empty palette always gives White.
func (p Palette) At(i int) Color {
	if len(p) == 0 {
		return White
	}
	return p[i%len(p)]
}
