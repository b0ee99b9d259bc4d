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

// Package testcases contains example paths together with the expected
// shape of their polygon representation.
package testcases

import (
	"maps"
	"slices"

	"seehuhn.de/go/polypath/pathcmd"
)

// TestCase defines a single path conversion test.
type TestCase struct {
	Name      string        // lowercase a-z and _ only
	Path      *pathcmd.Path // the geometry to convert
	Tolerance float32       // flattening tolerance
	Width     int           // canvas width for rendered previews
	Height    int           // canvas height for rendered previews

	// Closed lists the expected closed flag of each contour.
	// The length of Closed is the expected number of contours.
	Closed []bool

	// MinVertices lists, for each contour, a lower bound on the number
	// of vertices after flattening.
	MinVertices []int
}

// Categories returns the names of all test case categories, in sorted order.
func Categories() []string {
	return slices.Sorted(maps.Keys(All))
}

// pt is a helper to create a path point from x, y coordinates.
func pt(x, y float32) pathcmd.Point {
	return pathcmd.Point{X: x, Y: y}
}
