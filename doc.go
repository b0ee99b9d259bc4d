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

// Package polypath converts between vector paths and polygons.
//
// Paths are streams of drawing commands, as defined in the
// [seehuhn.de/go/polypath/pathcmd] package, and may contain Bézier curves.
// Polygons consist of straight line contours with double precision
// vertices.
//
// In the direction from paths to polygons, curves are first approximated
// by straight lines (see [PathToContours]), then the sub-paths are
// collected into contours by [Group] and finally the contours can be
// interpreted as a polygon by [Assemble].  The first sub-path of a path
// becomes the exterior of the polygon, all other sub-paths become holes.
//
// In the opposite direction, [ContourToPath], [ContoursToPath] and
// [PolygonToPath] emit one sub-path per contour.
//
// Path coordinates use single precision while polygon coordinates use
// double precision.  Coordinates are rounded to the nearest single
// precision value when polygons are converted to paths.
package polypath

//go:generate go run ./testcases/export -o testdata/testcases.geojson
