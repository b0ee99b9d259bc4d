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

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:        "quadratic",
		Path:        quadraticCurve(10, 50, 32, 10, 54, 50),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{true},
		MinVertices: []int{4},
	},
	{
		Name:        "quadratic_open",
		Path:        quadraticCurveOpen(10, 50, 32, 10, 54, 50),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{false},
		MinVertices: []int{4},
	},
	{
		Name:        "quadratic_degenerate",
		Path:        quadraticCurve(10, 32, 10, 32, 54, 32), // control point on start point
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{true},
		MinVertices: []int{2},
	},
	{
		Name:        "quadratic_then_line",
		Path:        quadraticThenLine(),
		Tolerance:   0.1,
		Width:       32,
		Height:      32,
		Closed:      []bool{true},
		MinVertices: []int{3},
	},
	{
		Name:        "cubic",
		Path:        cubicCurve(10, 50, 20, 10, 44, 10, 54, 50),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{true},
		MinVertices: []int{4},
	},
	{
		Name:        "cubic_coarse",
		Path:        cubicCurve(10, 50, 20, 10, 44, 10, 54, 50),
		Tolerance:   5,
		Width:       64,
		Height:      64,
		Closed:      []bool{true},
		MinVertices: []int{2},
	},
	{
		Name:        "circle",
		Path:        circle(32, 32, 25),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{true},
		MinVertices: []int{16},
	},
	{
		Name:        "s_curve",
		Path:        sCurveQuadratic(10, 32, 54, 32),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{true},
		MinVertices: []int{4},
	},
	{
		Name:        "arc_three_quarters",
		Path:        arc(32, 32, 25, 0, 0.75),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{true},
		MinVertices: []int{8},
	},
}

// quadraticCurve builds a closed shape with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float32) *pathcmd.Path {
	return (&pathcmd.Path{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

// quadraticCurveOpen builds an open path with a quadratic Bezier curve.
func quadraticCurveOpen(x1, y1, cx, cy, x2, y2 float32) *pathcmd.Path {
	return (&pathcmd.Path{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		End()
}

// quadraticThenLine builds the closed path begin, quadratic curve,
// line, close.
func quadraticThenLine() *pathcmd.Path {
	return (&pathcmd.Path{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(10, 10)).
		QuadTo(pt(10, 20), pt(5, 20)).
		Close()
}

// cubicCurve builds a closed shape with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float32) *pathcmd.Path {
	return (&pathcmd.Path{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close()
}

// sCurveQuadratic builds a closed S-shaped path from two quadratic Bezier curves.
func sCurveQuadratic(x1, y1, x2, y2 float32) *pathcmd.Path {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&pathcmd.Path{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)). // first quadratic curves up
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2)).     // second quadratic curves down
		Close()
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float32) *pathcmd.Path {
	return circleInto(&pathcmd.Path{}, cx, cy, r, false).Close()
}

// circleInto appends a circle to p.  The circle runs counter-clockwise
// in a y-down coordinate system, or clockwise if reverse is set.
// The sub-path is left open.
func circleInto(p *pathcmd.Path, cx, cy, r float32, reverse bool) *pathcmd.Path {
	k := r * kappa
	p.MoveTo(pt(cx+r, cy)) // start at right
	if !reverse {
		p.CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)) // top-right quadrant
		p.CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)) // top-left quadrant
		p.CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)) // bottom-left quadrant
		p.CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)) // bottom-right quadrant
	} else {
		p.CubeTo(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r))
		p.CubeTo(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy))
		p.CubeTo(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r))
		p.CubeTo(pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy))
	}
	return p
}

// arc builds a pie slice covering the given fractions (0-1) of a full
// circle, starting from the right.  Only whole quadrants are drawn.
func arc(cx, cy, r float32, startFraction, endFraction float32) *pathcmd.Path {
	k := r * kappa

	totalFraction := endFraction - startFraction
	if totalFraction <= 0 {
		return &pathcmd.Path{}
	}

	numQuadrants := min(max(int(totalFraction*4), 1), 4)

	p := (&pathcmd.Path{}).
		MoveTo(pt(cx, cy)).
		LineTo(pt(cx+r, cy)) // line to start of arc (right side)

	quadrants := [4][3]pathcmd.Point{
		{pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)},
		{pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)},
		{pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)},
		{pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)},
	}
	for _, q := range quadrants[:numQuadrants] {
		p.CubeTo(q[0], q[1], q[2])
	}

	return p.Close()
}
