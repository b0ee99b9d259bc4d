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

// Polygon is an area bounded by an exterior contour, with optional holes.
//
// No geometric relationship between the exterior and the holes is
// enforced: holes are identified by position only.
type Polygon struct {
	Exterior Contour
	Holes    []Contour
}

// MultiPolygon is an ordered collection of polygons.
type MultiPolygon []Polygon

// Assemble interprets a collection of contours as a polygon.
//
// The first contour becomes the exterior, all remaining contours become
// holes, in their original order.  If mc is empty, the result has a
// closed exterior without vertices and no holes.
func Assemble(mc MultiContour) Polygon {
	if len(mc) == 0 {
		return Polygon{Exterior: Contour{Closed: true}}
	}
	res := Polygon{Exterior: mc[0].Clone()}
	if len(mc) > 1 {
		res.Holes = mc[1:].Clone()
	}
	return res
}

// Disassemble lists the contours of a polygon, exterior first, followed by
// the holes in order.  This is the inverse of [Assemble].
func Disassemble(p Polygon) MultiContour {
	res := make(MultiContour, 0, 1+len(p.Holes))
	res = append(res, p.Exterior.Clone())
	for _, h := range p.Holes {
		res = append(res, h.Clone())
	}
	return res
}

// AssembleEach turns every contour into a separate polygon without holes.
func AssembleEach(mc MultiContour) MultiPolygon {
	if mc == nil {
		return nil
	}
	res := make(MultiPolygon, len(mc))
	for i, c := range mc {
		res[i] = Polygon{Exterior: c.Clone()}
	}
	return res
}

// DisassembleEach lists the contours of all polygons in mp, in order.
// Information about which contours are holes is lost.
func DisassembleEach(mp MultiPolygon) MultiContour {
	var res MultiContour
	for _, p := range mp {
		res = append(res, Disassemble(p)...)
	}
	return res
}
