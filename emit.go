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

import "seehuhn.de/go/polypath/pathcmd"

// ContourToPath converts a contour into a path with a single sub-path.
//
// The sub-path starts at the first vertex, has a line to every following
// vertex, and is closed if the contour is closed.  A contour without
// vertices gives an empty path.
func ContourToPath(c Contour) *pathcmd.Path {
	res := &pathcmd.Path{}
	appendContour(res, c)
	return res
}

// ContoursToPath converts a collection of contours into a path.
// Every contour becomes a separate sub-path.
func ContoursToPath(mc MultiContour) *pathcmd.Path {
	res := &pathcmd.Path{}
	for _, c := range mc {
		appendContour(res, c)
	}
	return res
}

// PolygonToPath converts a polygon into a path.
//
// The exterior becomes the first sub-path, followed by one sub-path for
// each hole.  The path does not record which sub-paths are holes; when
// the path is converted back using [PathToPolygon], the first sub-path is
// taken as the exterior.
func PolygonToPath(p Polygon) *pathcmd.Path {
	res := &pathcmd.Path{}
	appendContour(res, p.Exterior)
	for _, h := range p.Holes {
		appendContour(res, h)
	}
	return res
}

// MultiPolygonToPath converts all polygons in mp into a single path.
func MultiPolygonToPath(mp MultiPolygon) *pathcmd.Path {
	res := &pathcmd.Path{}
	for _, p := range mp {
		res.Append(PolygonToPath(p))
	}
	return res
}

func appendContour(p *pathcmd.Path, c Contour) {
	if len(c.Vertices) == 0 {
		return
	}
	p.Events = append(p.Events, pathcmd.Begin(ToPoint(c.Vertices[0])))
	for _, v := range c.Vertices[1:] {
		p.Events = append(p.Events, pathcmd.Line(ToPoint(v)))
	}
	p.Events = append(p.Events, pathcmd.End(c.Closed))
}
