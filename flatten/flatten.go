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

// Package flatten approximates Bézier curves by straight line segments.
package flatten

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polypath/pathcmd"
)

// MaxSegments is the largest number of line segments used for a single
// curve.  Tolerances which would require more segments are not honoured.
const MaxSegments = 4096

// Events returns a sequence in which all curves of the input are
// replaced by straight lines.
//
// Begin, Line and End commands are passed through unchanged.  Every Quad
// or Cube command is replaced by one or more Line commands, such that the
// distance between the curve and the polyline is at most tolerance.  The
// last Line command generated for a curve ends exactly at the end point
// of the curve.
//
// Tolerance must be positive.  The output is generated lazily, while the
// input is being read.  Malformed input is passed through as it is;
// curve commands which occur before the first Begin are taken to start
// at the origin.
func Events(events pathcmd.Iter, tolerance float32) pathcmd.Iter {
	tol := float64(tolerance)
	return func(yield func(pathcmd.Event) bool) {
		var current vec.Vec2
		emit := func(to vec.Vec2) bool {
			return yield(pathcmd.Line(narrow(to)))
		}
		for e := range events {
			switch e.Kind {
			case pathcmd.CmdQuad:
				p2 := widen(e.To)
				if !Quadratic(current, widen(e.Ctrl1), p2, tol, emit) {
					return
				}
				current = p2
			case pathcmd.CmdCube:
				p3 := widen(e.To)
				if !Cubic(current, widen(e.Ctrl1), widen(e.Ctrl2), p3, tol, emit) {
					return
				}
				current = p3
			default:
				if e.Kind == pathcmd.CmdBegin || e.Kind == pathcmd.CmdLine {
					current = widen(e.To)
				}
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Quadratic flattens a quadratic Bézier curve and calls emit for the end
// point of each line segment.  p0 is the start point, p1 the control
// point and p2 the end point.  The start point is not emitted.
//
// If emit returns false, flattening stops and Quadratic returns false.
func Quadratic(p0, p1, p2 vec.Vec2, tolerance float64, emit func(to vec.Vec2) bool) bool {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	n := segmentCount(math.Sqrt(e.Length() / tolerance))

	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		if !emit(pt) {
			return false
		}
	}
	return emit(p2)
}

// Cubic flattens a cubic Bézier curve and calls emit for the end point
// of each line segment.  p0 is the start point, p1 and p2 are the control
// points and p3 is the end point.  The start point is not emitted.
//
// If emit returns false, flattening stops and Cubic returns false.
func Cubic(p0, p1, p2, p3 vec.Vec2, tolerance float64, emit func(to vec.Vec2) bool) bool {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	m := max(d1.Length(), d2.Length())
	n := segmentCount(math.Sqrt(3 * m / (4 * tolerance)))

	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		if !emit(pt) {
			return false
		}
	}
	return emit(p3)
}

// segmentCount converts the (fractional) number of segments required by
// the error bound into a segment count in the range [1, MaxSegments].
func segmentCount(nFloat float64) int {
	switch {
	case math.IsNaN(nFloat) || nFloat <= 1:
		return 1
	case nFloat >= MaxSegments:
		return MaxSegments
	default:
		return int(math.Ceil(nFloat))
	}
}

func narrow(v vec.Vec2) pathcmd.Point {
	return pathcmd.Point{X: float32(v.X), Y: float32(v.Y)}
}

func widen(p pathcmd.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}
