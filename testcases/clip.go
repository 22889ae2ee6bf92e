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

var clipCases = []TestCase{
	{
		Name:     "triangle_right",
		Polygons: [][]polyfill.Point{pts(10, 10, 50, 10, 30, 50)},
		Clip:     bounds(0, 0, 40, 60),
		Width:    60,
		Height:   60,
	},
	{
		Name:     "inside",
		Polygons: [][]polyfill.Point{pts(10, 10, 50, 10, 30, 50)},
		Clip:     bounds(5, 5, 55, 55),
		Width:    60,
		Height:   60,
	},
	{
		Name:     "disjoint",
		Polygons: [][]polyfill.Point{pts(10, 10, 30, 10, 20, 30)},
		Clip:     bounds(40, 40, 60, 60),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "all_sides",
		Polygons: [][]polyfill.Point{pts(32, 0, 63, 32, 32, 63, 0, 32)},
		Clip:     bounds(12, 12, 52, 52),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "star",
		Polygons: [][]polyfill.Point{pts(32, 4, 48, 56, 6, 24, 58, 24, 16, 56)},
		Clip:     bounds(10, 16, 50, 48),
		Width:    64,
		Height:   64,
	},
	{
		Name: "several",
		Polygons: [][]polyfill.Point{
			pts(4, 4, 40, 4, 40, 40, 4, 40),
			pts(24, 24, 60, 24, 42, 60),
			pts(50, 2, 62, 2, 62, 14),
		},
		Clip:   bounds(16, 16, 48, 48),
		Width:  64,
		Height: 64,
	},
}
