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

var complexCases = []TestCase{
	{
		Name:        "mixed_lines_curves",
		Path:        mixedLinesCurves(),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{true},
		MinVertices: []int{8},
	},
	{
		Name:        "glyph_like",
		Path:        glyphLikeShape(),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{true},
		MinVertices: []int{24},
	},
	{
		Name:        "glyph_with_counter",
		Path:        glyphWithCounter(),
		Tolerance:   0.05,
		Width:       64,
		Height:      64,
		Closed:      []bool{true, true},
		MinVertices: []int{16, 8},
	},
	{
		Name:        "spiral_open",
		Path:        spiral(32, 32, 5, 25, 3),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{false},
		MinVertices: []int{12},
	},
}

func mixedLinesCurves() *pathcmd.Path {
	return (&pathcmd.Path{}).
		MoveTo(pt(10, 50)).
		LineTo(pt(20, 30)).
		QuadTo(pt(32, 10), pt(44, 30)).
		LineTo(pt(54, 50)).
		CubeTo(pt(48, 60), pt(16, 60), pt(10, 50)). // back to the start area
		Close()
}

// glyphLikeShape draws a letter "a" like outline as a single sub-path.
// The counter is connected to the bowl by a line.
func glyphLikeShape() *pathcmd.Path {
	const cx, cy = 32, 38
	const r, ir = 18, 8

	p := circleInto(&pathcmd.Path{}, cx, cy, r, false)

	// stem
	p.LineTo(pt(cx+r, 10)).
		LineTo(pt(cx+r-6, 10)).
		LineTo(pt(cx+r-6, cy))

	// inner counter, opposite orientation
	ik := float32(ir * kappa)
	p.LineTo(pt(cx+ir, cy)).
		CubeTo(pt(cx+ir, cy+ik), pt(cx+ik, cy+ir), pt(cx, cy+ir)).
		CubeTo(pt(cx-ik, cy+ir), pt(cx-ir, cy+ik), pt(cx-ir, cy)).
		CubeTo(pt(cx-ir, cy-ik), pt(cx-ik, cy-ir), pt(cx, cy-ir)).
		CubeTo(pt(cx+ik, cy-ir), pt(cx+ir, cy-ik), pt(cx+ir, cy))

	return p.Close()
}

// glyphWithCounter draws a letter "o" like outline, with the counter as a
// separate sub-path.
func glyphWithCounter() *pathcmd.Path {
	p := &pathcmd.Path{}
	circleInto(p, 32, 32, 20, false).Close()
	circleInto(p, 32, 32, 11, true).Close()
	return p
}

// spiral approximates an Archimedean spiral by quadratic curves.
// Each turn uses eight segments.
func spiral(cx, cy, r0, r1 float32, turns int) *pathcmd.Path {
	const segPerTurn = 8
	n := turns * segPerTurn

	at := func(i float64) pathcmd.Point {
		t := i / float64(n)
		r := float64(r0) + t*float64(r1-r0)
		phi := 2 * math.Pi * t * float64(turns)
		return pt(cx+float32(r*math.Cos(phi)), cy+float32(r*math.Sin(phi)))
	}

	p := (&pathcmd.Path{}).MoveTo(at(0))
	for i := range n {
		// the control point sits at the midpoint angle, pushed outwards
		// so that the curve follows the circle segment
		mid := at(float64(i) + 0.5)
		scale := float32(1 / math.Cos(math.Pi/segPerTurn))
		ctrl := pt(cx+(mid.X-cx)*scale, cy+(mid.Y-cy)*scale)
		p.QuadTo(ctrl, at(float64(i+1)))
	}
	return p.End()
}
