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

var fillCases = []TestCase{
	{
		Name:        "triangle",
		Path:        triangle(0, 0, 10, 10, 5, 20),
		Tolerance:   0.1,
		Width:       32,
		Height:      32,
		Closed:      []bool{true},
		MinVertices: []int{3},
	},
	{
		Name:        "rectangle",
		Path:        rectangle(10, 10, 44, 44),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{true},
		MinVertices: []int{4},
	},
	{
		Name:        "square_centered",
		Path:        rectangle(-100, -100, 100, 100),
		Tolerance:   0.1,
		Width:       256,
		Height:      256,
		Closed:      []bool{true},
		MinVertices: []int{4},
	},
	{
		Name:        "star",
		Path:        fivePointStar(32, 32, 25),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{true},
		MinVertices: []int{5},
	},
	{
		Name:        "polyline_open",
		Path:        polyline(pt(5, 5), pt(20, 40), pt(40, 10), pt(60, 50)),
		Tolerance:   0.1,
		Width:       64,
		Height:      64,
		Closed:      []bool{false},
		MinVertices: []int{4},
	},
}

// triangle builds a closed triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float32) *pathcmd.Path {
	return (&pathcmd.Path{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// rectangle builds a closed rectangular path.
func rectangle(x1, y1, x2, y2 float32) *pathcmd.Path {
	return rectangleInto(&pathcmd.Path{}, x1, y1, x2, y2)
}

// rectangleInto appends a closed axis-aligned rectangle to p.
func rectangleInto(p *pathcmd.Path, x1, y1, x2, y2 float32) *pathcmd.Path {
	return p.MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) *pathcmd.Path {
	pts := make([]pathcmd.Point, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(float32(cx+r*math.Cos(angle)), float32(cy+r*math.Sin(angle)))
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	p := (&pathcmd.Path{}).MoveTo(pts[0])
	for _, i := range []int{2, 4, 1, 3} {
		p.LineTo(pts[i])
	}
	return p.Close()
}

// polyline builds an open path through the given points.
func polyline(first pathcmd.Point, rest ...pathcmd.Point) *pathcmd.Path {
	p := (&pathcmd.Path{}).MoveTo(first)
	for _, q := range rest {
		p.LineTo(q)
	}
	return p.End()
}
