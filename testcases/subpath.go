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

import "seehuhn.de/go/polypath/pathcmd"

var subpathCases = []TestCase{
	{
		Name:        "two_triangles",
		Path:        twoTriangles(16, 32, 48, 32, 12),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{true, true},
		MinVertices: []int{3, 3},
	},
	{
		Name:        "svg_multi",
		Path:        svgMulti(),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{true, true},
		MinVertices: []int{3, 3},
	},
	{
		Name:        "overlapping_rect",
		Path:        overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{true, true},
		MinVertices: []int{4, 4},
	},
	{
		Name:        "ring_shape",
		Path:        ringShape(32, 32, 25, 12),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{true, true},
		MinVertices: []int{4, 4},
	},
	{
		Name:        "round_ring",
		Path:        roundRing(32, 32, 25, 12),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{true, true},
		MinVertices: []int{16, 8},
	},
	{
		Name:        "multiple_rings",
		Path:        multipleRings(64, 64),
		Tolerance:   0.1,
		Width:       128,
		Height:      128,
		Closed:      []bool{true, true, true, true, true, true},
		MinVertices: []int{4, 4, 4, 4, 4, 4},
	},
	{
		Name:        "open_and_closed",
		Path:        openAndClosed(),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{false, true},
		MinVertices: []int{3, 4},
	},
	{
		Name:        "many_small_shapes",
		Path:        manySmallShapes(8, 8),
		Tolerance:   0.1,
		Width:       128,
		Height:      128,
		Closed:      repeat(true, 64),
		MinVertices: repeat(3, 64),
	},
}

func twoTriangles(cx1, cy1, cx2, cy2, size float32) *pathcmd.Path {
	p := &pathcmd.Path{}
	for _, c := range [2]pathcmd.Point{pt(cx1, cy1), pt(cx2, cy2)} {
		p.MoveTo(pt(c.X, c.Y-size)).
			LineTo(pt(c.X+size, c.Y+size)).
			LineTo(pt(c.X-size, c.Y+size)).
			Close()
	}
	return p
}

// svgMulti corresponds to the SVG path
// "M 0 0 L 10 10 L 5 20 Z M 20 30 L 40 50 L 30 40 Z".
func svgMulti() *pathcmd.Path {
	return (&pathcmd.Path{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(10, 10)).
		LineTo(pt(5, 20)).
		Close().
		MoveTo(pt(20, 30)).
		LineTo(pt(40, 50)).
		LineTo(pt(30, 40)).
		Close()
}

func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float32) *pathcmd.Path {
	p := &pathcmd.Path{}
	rectangleInto(p, x1a, y1a, x2a, y2a)
	rectangleInto(p, x1b, y1b, x2b, y2b)
	return p
}

// ringShape builds a square with a square hole.  Both sub-paths have the
// same orientation.
func ringShape(cx, cy, outerSize, innerSize float32) *pathcmd.Path {
	p := &pathcmd.Path{}
	rectangleInto(p, cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize)
	rectangleInto(p, cx-innerSize, cy-innerSize, cx+innerSize, cy+innerSize)
	return p
}

// roundRing builds a disc with a circular hole of opposite orientation.
func roundRing(cx, cy, outer, inner float32) *pathcmd.Path {
	p := &pathcmd.Path{}
	circleInto(p, cx, cy, outer, false).Close()
	circleInto(p, cx, cy, inner, true).Close()
	return p
}

func multipleRings(cx, cy float32) *pathcmd.Path {
	rings := []struct{ cx, cy, outer, inner float32 }{
		{cx - 30, cy - 30, 20, 10},
		{cx + 30, cy - 30, 20, 10},
		{cx, cy + 30, 20, 10},
	}

	p := &pathcmd.Path{}
	for _, r := range rings {
		rectangleInto(p, r.cx-r.outer, r.cy-r.outer, r.cx+r.outer, r.cy+r.outer)
		rectangleInto(p, r.cx-r.inner, r.cy-r.inner, r.cx+r.inner, r.cy+r.inner)
	}
	return p
}

// openAndClosed starts with an open zig-zag, followed by a closed square.
func openAndClosed() *pathcmd.Path {
	p := (&pathcmd.Path{}).
		MoveTo(pt(5, 5)).
		LineTo(pt(15, 15)).
		LineTo(pt(25, 5)).
		LineTo(pt(35, 15))
	rectangleInto(p, 20, 30, 50, 60)
	return p
}

func manySmallShapes(rows, cols int) *pathcmd.Path {
	const size = 5
	const spacing = 14

	p := &pathcmd.Path{}
	for row := range rows {
		for col := range cols {
			cx := 10 + float32(col)*spacing
			cy := 10 + float32(row)*spacing

			p.MoveTo(pt(cx, cy-size)).
				LineTo(pt(cx+size, cy+size)).
				LineTo(pt(cx-size, cy+size)).
				Close()
		}
	}
	return p
}

func repeat[T any](v T, n int) []T {
	res := make([]T, n)
	for i := range res {
		res[i] = v
	}
	return res
}
