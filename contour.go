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
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Contour is a sequence of vertices joined by straight lines.
//
// For a closed contour, the last vertex is implicitly connected back to the
// first one.  The first vertex does not need to be repeated at the end.
// A contour without vertices is allowed and describes no geometry.
type Contour struct {
	Vertices []vec.Vec2
	Closed   bool
}

// MultiContour is an ordered collection of independent contours.
type MultiContour []Contour

// Clone returns a copy of c which shares no memory with c.
func (c Contour) Clone() Contour {
	return Contour{
		Vertices: slices.Clone(c.Vertices),
		Closed:   c.Closed,
	}
}

// Clone returns a copy of mc which shares no memory with mc.
func (mc MultiContour) Clone() MultiContour {
	if mc == nil {
		return nil
	}
	res := make(MultiContour, len(mc))
	for i, c := range mc {
		res[i] = c.Clone()
	}
	return res
}

// Bounds returns the smallest rectangle which contains all vertices.
// The second return value is false if the contour has no vertices.
func (c Contour) Bounds() (rect.Rect, bool) {
	if len(c.Vertices) == 0 {
		return rect.Rect{}, false
	}
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, v := range c.Vertices {
		b.LLx = min(b.LLx, v.X)
		b.LLy = min(b.LLy, v.Y)
		b.URx = max(b.URx, v.X)
		b.URy = max(b.URy, v.Y)
	}
	return b, true
}

// Bounds returns the smallest rectangle which contains all vertices of all
// contours.  The second return value is false if there are no vertices.
func (mc MultiContour) Bounds() (rect.Rect, bool) {
	var res rect.Rect
	found := false
	for _, c := range mc {
		b, ok := c.Bounds()
		if !ok {
			continue
		}
		if !found {
			res = b
			found = true
			continue
		}
		res.LLx = min(res.LLx, b.LLx)
		res.LLy = min(res.LLy, b.LLy)
		res.URx = max(res.URx, b.URx)
		res.URy = max(res.URy, b.URy)
	}
	return res, found
}

// SignedArea returns the area enclosed by the contour, computed with the
// shoelace formula.  The result is positive if the vertices are ordered
// counter-clockwise (in a coordinate system where y points up).
// The implicit closing edge is always included, even for open contours.
func (c Contour) SignedArea() float64 {
	n := len(c.Vertices)
	if n < 3 {
		return 0
	}
	var sum float64
	prev := c.Vertices[n-1]
	for _, v := range c.Vertices {
		sum += prev.X*v.Y - v.X*prev.Y
		prev = v
	}
	return sum / 2
}

// Reversed returns a copy of the contour with the vertex order reversed.
func (c Contour) Reversed() Contour {
	res := c.Clone()
	slices.Reverse(res.Vertices)
	return res
}

// Transform returns a copy of the contour with the affine transformation m
// applied to every vertex.
func (c Contour) Transform(m matrix.Matrix) Contour {
	res := Contour{Closed: c.Closed}
	if c.Vertices != nil {
		res.Vertices = make([]vec.Vec2, len(c.Vertices))
	}
	for i, v := range c.Vertices {
		res.Vertices[i] = vec.Vec2{
			X: m[0]*v.X + m[2]*v.Y + m[4],
			Y: m[1]*v.X + m[3]*v.Y + m[5],
		}
	}
	return res
}

// Transform returns a copy of mc with m applied to every contour.
func (mc MultiContour) Transform(m matrix.Matrix) MultiContour {
	if mc == nil {
		return nil
	}
	res := make(MultiContour, len(mc))
	for i, c := range mc {
		res[i] = c.Transform(m)
	}
	return res
}
