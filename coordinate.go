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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polypath/pathcmd"
)

// ToCoordinate converts a path point to a polygon coordinate.
// The conversion is exact.
func ToCoordinate(p pathcmd.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// ToPoint converts a polygon coordinate to a path point.
//
// Coordinates are rounded to the nearest single precision value, so that
// converting back with ToCoordinate in general does not recover the
// original value.
func ToPoint(c vec.Vec2) pathcmd.Point {
	return pathcmd.Point{X: float32(c.X), Y: float32(c.Y)}
}
