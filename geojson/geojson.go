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

// Package geojson converts polygons and contours to and from GeoJSON
// geometries.
//
// GeoJSON linear rings repeat their first position at the end.  When a
// closed contour is exported, the first vertex is appended to the ring
// (unless it is already repeated), and when a ring is imported, a
// repeated first position is removed again.  Open contours are exported
// as line strings.
package geojson

import (
	"errors"
	"fmt"

	gj "github.com/paulmach/go.geojson"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polypath"
)

// ErrUnsupported is returned for geometry types which cannot be
// represented as contours.
var ErrUnsupported = errors.New("unsupported geometry")

// Polygon returns a GeoJSON polygon geometry.
// All contours are written as closed rings, the exterior first.
func Polygon(p polypath.Polygon) *gj.Geometry {
	return gj.NewPolygonGeometry(polygonRings(p))
}

// MultiPolygon returns a GeoJSON multi-polygon geometry.
func MultiPolygon(mp polypath.MultiPolygon) *gj.Geometry {
	polys := make([][][][]float64, len(mp))
	for i, p := range mp {
		polys[i] = polygonRings(p)
	}
	return gj.NewMultiPolygonGeometry(polys...)
}

// MultiLineString returns a GeoJSON multi-line-string geometry with one
// line per contour.  Closed contours repeat their first vertex at the end.
func MultiLineString(mc polypath.MultiContour) *gj.Geometry {
	lines := make([][][]float64, len(mc))
	for i, c := range mc {
		lines[i] = positions(c.Vertices, c.Closed)
	}
	return gj.NewMultiLineStringGeometry(lines...)
}

// Contour returns a polygon geometry for a closed contour, and a line
// string geometry for an open contour.
func Contour(c polypath.Contour) *gj.Geometry {
	if c.Closed {
		return gj.NewPolygonGeometry([][][]float64{positions(c.Vertices, true)})
	}
	return gj.NewLineStringGeometry(positions(c.Vertices, false))
}

// ToMultiContour extracts all rings and lines of a geometry.
// Polygon rings become closed contours, line strings become open
// contours.  Geometry collections are processed recursively.
func ToMultiContour(g *gj.Geometry) (polypath.MultiContour, error) {
	var res polypath.MultiContour
	err := appendContours(&res, g)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ToMultiPolygon converts a polygon or multi-polygon geometry.
func ToMultiPolygon(g *gj.Geometry) (polypath.MultiPolygon, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil geometry", ErrUnsupported)
	}
	switch g.Type {
	case gj.GeometryPolygon:
		p, err := toPolygon(g.Polygon)
		if err != nil {
			return nil, err
		}
		return polypath.MultiPolygon{p}, nil
	case gj.GeometryMultiPolygon:
		res := make(polypath.MultiPolygon, len(g.MultiPolygon))
		for i, rings := range g.MultiPolygon {
			p, err := toPolygon(rings)
			if err != nil {
				return nil, fmt.Errorf("polygon %d: %w", i, err)
			}
			res[i] = p
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, g.Type)
	}
}

func appendContours(res *polypath.MultiContour, g *gj.Geometry) error {
	if g == nil {
		return fmt.Errorf("%w: nil geometry", ErrUnsupported)
	}
	switch g.Type {
	case gj.GeometryLineString:
		c, err := toContour(g.LineString, false)
		if err != nil {
			return err
		}
		*res = append(*res, c)
	case gj.GeometryMultiLineString:
		for _, line := range g.MultiLineString {
			c, err := toContour(line, false)
			if err != nil {
				return err
			}
			*res = append(*res, c)
		}
	case gj.GeometryPolygon, gj.GeometryMultiPolygon:
		mp, err := ToMultiPolygon(g)
		if err != nil {
			return err
		}
		*res = append(*res, polypath.DisassembleEach(mp)...)
	case gj.GeometryCollection:
		for _, child := range g.Geometries {
			if err := appendContours(res, child); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, g.Type)
	}
	return nil
}

func polygonRings(p polypath.Polygon) [][][]float64 {
	rings := make([][][]float64, 0, 1+len(p.Holes))
	for _, c := range polypath.Disassemble(p) {
		rings = append(rings, positions(c.Vertices, true))
	}
	return rings
}

func toPolygon(rings [][][]float64) (polypath.Polygon, error) {
	mc := make(polypath.MultiContour, len(rings))
	for i, ring := range rings {
		c, err := toContour(ring, true)
		if err != nil {
			return polypath.Polygon{}, fmt.Errorf("ring %d: %w", i, err)
		}
		mc[i] = c
	}
	return polypath.Assemble(mc), nil
}

// positions converts vertices into GeoJSON positions.  If ring is set,
// the first vertex is repeated at the end.
func positions(vertices []vec.Vec2, ring bool) [][]float64 {
	res := make([][]float64, 0, len(vertices)+1)
	for _, v := range vertices {
		res = append(res, []float64{v.X, v.Y})
	}
	if ring && len(vertices) > 0 && vertices[len(vertices)-1] != vertices[0] {
		res = append(res, []float64{vertices[0].X, vertices[0].Y})
	}
	return res
}

func toContour(pos [][]float64, ring bool) (polypath.Contour, error) {
	c := polypath.Contour{Closed: ring}
	if len(pos) == 0 {
		return c, nil
	}
	c.Vertices = make([]vec.Vec2, len(pos))
	for i, p := range pos {
		if len(p) < 2 {
			return polypath.Contour{}, fmt.Errorf("position %d: expected 2 coordinates, got %d", i, len(p))
		}
		c.Vertices[i] = vec.Vec2{X: p[0], Y: p[1]}
	}
	if n := len(c.Vertices); ring && n > 1 && c.Vertices[n-1] == c.Vertices[0] {
		c.Vertices = c.Vertices[:n-1]
	}
	return c, nil
}
