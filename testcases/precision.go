// seehuhn.de/go/polypath - convert between paths and polygons
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

import (
	"math"

	"seehuhn.de/go/polypath/pathcmd"
)

var precisionCases = []TestCase{
	{
		Name:        "subpixel_offset_00",
		Path:        offsetRectangle(20, 20, 24, 24, 0.0),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{true},
		MinVertices: []int{4},
	},
	{
		Name:        "subpixel_offset_25",
		Path:        offsetRectangle(20, 20, 24, 24, 0.25),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{true},
		MinVertices: []int{4},
	},
	{
		Name:        "subpixel_offset_75",
		Path:        offsetRectangle(20, 20, 24, 24, 0.75),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{true},
		MinVertices: []int{4},
	},
	{
		Name:        "large_coord",
		Path:        rectangle(1e6-10, 1e6-10, 1e6+10, 1e6+10),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{true},
		MinVertices: []int{4},
	},
	{
		Name:        "large_coord_curve",
		Path:        circle(10000, 10000, 20),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{true},
		MinVertices: []int{16},
	},
	{
		Name:        "tiny_shape",
		Path:        triangle(0, 0, 1e-4, 0, 0, 1e-4),
		Tolerance:   1e-6,
		Width:       64,
		Height:      64,
		Closed:      []bool{true},
		MinVertices: []int{3},
	},
	{
		Name:        "single_precision_limit",
		Path:        singlePrecisionShape(),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{true},
		MinVertices: []int{4},
	},
}

// offsetRectangle builds a w x h rectangle at (x1, y1), shifted
// diagonally by offset.
func offsetRectangle(x1, y1, w, h, offset float32) *pathcmd.Path {
	ox1 := x1 + offset
	oy1 := y1 + offset
	return rectangle(ox1, oy1, ox1+w, oy1+h)
}

// singlePrecisionShape uses coordinates which differ from their neighbours
// by one unit in the last place of a float32.
func singlePrecisionShape() *pathcmd.Path {
	const base = float32(32)
	x1 := math.Nextafter32(base-10, 0)
	x2 := math.Nextafter32(base+10, 100)
	return rectangle(x1, x1, x2, x2)
}
