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

package polypath

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polypath/flatten"
	"seehuhn.de/go/polypath/pathcmd"
)

// DefaultTolerance is a flattening tolerance suitable for paths given in
// units of pixels or PDF points.
const DefaultTolerance = 0.1

// PathToContours flattens all curves in a path and collects the resulting
// sub-paths into contours.
//
// Tolerance is the maximal distance between a curve and the line segments
// approximating it; it must be finite and positive.
func PathToContours(events pathcmd.Iter, tolerance float32) (MultiContour, error) {
	if err := checkTolerance(tolerance); err != nil {
		return nil, err
	}
	return Group(flatten.Events(events, tolerance))
}

// PathToPolygon flattens a path and interprets the sub-paths as a polygon.
// The first sub-path becomes the exterior, all other sub-paths become holes.
// See [PathToContours] and [Assemble].
func PathToPolygon(events pathcmd.Iter, tolerance float32) (Polygon, error) {
	mc, err := PathToContours(events, tolerance)
	if err != nil {
		return Polygon{}, err
	}
	return Assemble(mc), nil
}

// PathToMultiPolygon flattens a path and turns every sub-path into a
// separate polygon without holes.
func PathToMultiPolygon(events pathcmd.Iter, tolerance float32) (MultiPolygon, error) {
	mc, err := PathToContours(events, tolerance)
	if err != nil {
		return nil, err
	}
	return AssembleEach(mc), nil
}

// PointsToContour converts a list of path points into a contour.
func PointsToContour(pts []pathcmd.Point, closed bool) Contour {
	res := Contour{Closed: closed}
	if pts != nil {
		res.Vertices = make([]vec.Vec2, len(pts))
	}
	for i, p := range pts {
		res.Vertices[i] = ToCoordinate(p)
	}
	return res
}

func checkTolerance(tolerance float32) error {
	t := float64(tolerance)
	if !(t > 0) || math.IsInf(t, 1) {
		return fmt.Errorf("%w: %g", ErrInvalidTolerance, t)
	}
	return nil
}
