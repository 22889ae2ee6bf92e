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

var fillCases = []TestCase{
	{
		Name:     "triangle",
		Polygons: [][]polyfill.Point{pts(10, 10, 50, 10, 30, 50)},
		Width:    60,
		Height:   60,
	},
	{
		Name:     "rectangle",
		Polygons: [][]polyfill.Point{pts(10, 10, 44, 10, 44, 44, 10, 44)},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "star",
		Polygons: [][]polyfill.Point{pts(32, 4, 48, 56, 6, 24, 58, 24, 16, 56)},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "arrow",
		Polygons: [][]polyfill.Point{pts(8, 24, 36, 24, 36, 8, 60, 32, 36, 56, 36, 40, 8, 40)},
		Width:    64,
		Height:   64,
	},
	{
		Name: "ten_vertices",
		Polygons: [][]polyfill.Point{
			pts(32, 2, 44, 8, 56, 20, 60, 34, 52, 50, 36, 60, 20, 56, 8, 44, 4, 28, 14, 12),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "overlapping",
		Polygons: [][]polyfill.Point{
			pts(4, 4, 40, 4, 40, 40, 4, 40),
			pts(24, 24, 60, 24, 42, 60),
		},
		Width:  64,
		Height: 64,
	},
}
