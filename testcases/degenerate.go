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

var degenerateCases = []TestCase{
	{
		Name:     "line",
		Polygons: [][]polyfill.Point{pts(10, 10, 50, 40)},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "line_clipped",
		Polygons: [][]polyfill.Point{pts(10, 10, 50, 40)},
		Clip:     bounds(0, 0, 64, 64),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "collinear",
		Polygons: [][]polyfill.Point{pts(10, 10, 30, 30, 50, 50)},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "flat",
		Polygons: [][]polyfill.Point{pts(10, 20, 30, 20, 50, 20)},
		Width:    64,
		Height:   64,
	},
}
