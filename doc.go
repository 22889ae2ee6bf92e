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

// Package polyfill clips simple polygons against a rectangle and scan
// converts them into a pixel buffer.
//
// Polygons are filled with an active edge table and the even-odd rule,
// see [Filler].  Clipping uses the Sutherland-Hodgman algorithm with one
// pass per side of the clip rectangle, see [Clip].  A [Scene] ties both
// together for an interactive session in which polygons are drawn by
// clicking and then clipped by dragging out a rectangle.
package polyfill

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
