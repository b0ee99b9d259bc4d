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

package geojson

import (
	"encoding/json"
	"errors"
	"testing"

	gj "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polypath"
)

func square(x, y, size float64) polypath.Contour {
	return polypath.Contour{
		Vertices: []vec.Vec2{
			{X: x, Y: y},
			{X: x + size, Y: y},
			{X: x + size, Y: y + size},
			{X: x, Y: y + size},
		},
		Closed: true,
	}
}

func TestPolygon(t *testing.T) {
	p := polypath.Polygon{
		Exterior: square(0, 0, 10),
		Holes:    []polypath.Contour{square(2, 2, 2)},
	}
	g := Polygon(p)
	require.Equal(t, gj.GeometryPolygon, g.Type)
	require.Len(t, g.Polygon, 2)

	// rings repeat the first position
	assert.Len(t, g.Polygon[0], 5)
	assert.Equal(t, g.Polygon[0][0], g.Polygon[0][4])
	assert.Equal(t, []float64{2, 2}, g.Polygon[1][4])

	mp, err := ToMultiPolygon(g)
	require.NoError(t, err)
	assert.Equal(t, polypath.MultiPolygon{p}, mp)
}

func TestPolygonJSON(t *testing.T) {
	g := Polygon(polypath.Polygon{Exterior: square(0, 0, 1)})
	data, err := json.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]}`,
		string(data))

	var back gj.Geometry
	require.NoError(t, json.Unmarshal(data, &back))
	mc, err := ToMultiContour(&back)
	require.NoError(t, err)
	assert.Equal(t, polypath.MultiContour{square(0, 0, 1)}, mc)
}

func TestMultiPolygon(t *testing.T) {
	mp := polypath.MultiPolygon{
		{Exterior: square(0, 0, 10), Holes: []polypath.Contour{square(1, 1, 1), square(5, 5, 1)}},
		{Exterior: square(20, 0, 5)},
	}
	g := MultiPolygon(mp)
	require.Equal(t, gj.GeometryMultiPolygon, g.Type)
	require.Len(t, g.MultiPolygon, 2)

	back, err := ToMultiPolygon(g)
	require.NoError(t, err)
	assert.Equal(t, mp, back)

	mc, err := ToMultiContour(g)
	require.NoError(t, err)
	assert.Equal(t, polypath.DisassembleEach(mp), mc)
}

func TestAlreadyRepeated(t *testing.T) {
	c := square(0, 0, 1)
	c.Vertices = append(c.Vertices, c.Vertices[0])

	g := Contour(c)
	require.Equal(t, gj.GeometryPolygon, g.Type)
	assert.Len(t, g.Polygon[0], 5)
}

func TestMultiLineString(t *testing.T) {
	mc := polypath.MultiContour{
		{Vertices: []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 1}}},
		square(5, 5, 1),
	}
	g := MultiLineString(mc)
	require.Equal(t, gj.GeometryMultiLineString, g.Type)
	require.Len(t, g.MultiLineString, 2)
	assert.Len(t, g.MultiLineString[0], 3)
	assert.Len(t, g.MultiLineString[1], 5)

	back, err := ToMultiContour(g)
	require.NoError(t, err)
	require.Len(t, back, 2)
	assert.Equal(t, mc[0], back[0])
	assert.False(t, back[1].Closed)
	assert.Len(t, back[1].Vertices, 5)
}

func TestOpenContour(t *testing.T) {
	c := polypath.Contour{Vertices: []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 0}}}
	g := Contour(c)
	require.Equal(t, gj.GeometryLineString, g.Type)

	mc, err := ToMultiContour(g)
	require.NoError(t, err)
	assert.Equal(t, polypath.MultiContour{c}, mc)
}

func TestCollection(t *testing.T) {
	g := gj.NewCollectionGeometry(
		Contour(square(0, 0, 1)),
		gj.NewLineStringGeometry([][]float64{{5, 5}, {6, 6}}),
		gj.NewCollectionGeometry(Contour(square(2, 2, 1))),
	)
	mc, err := ToMultiContour(g)
	require.NoError(t, err)

	expected := polypath.MultiContour{
		square(0, 0, 1),
		{Vertices: []vec.Vec2{{X: 5, Y: 5}, {X: 6, Y: 6}}},
		square(2, 2, 1),
	}
	assert.Equal(t, expected, mc)
}

func TestEmpty(t *testing.T) {
	p := polypath.Assemble(nil)
	mp, err := ToMultiPolygon(Polygon(p))
	require.NoError(t, err)
	require.Len(t, mp, 1)
	assert.Empty(t, mp[0].Exterior.Vertices)
	assert.True(t, mp[0].Exterior.Closed)
}

func TestErrors(t *testing.T) {
	_, err := ToMultiContour(gj.NewPointGeometry([]float64{1, 2}))
	assert.True(t, errors.Is(err, ErrUnsupported))

	_, err = ToMultiContour(nil)
	assert.True(t, errors.Is(err, ErrUnsupported))

	_, err = ToMultiPolygon(gj.NewLineStringGeometry([][]float64{{0, 0}, {1, 1}}))
	assert.True(t, errors.Is(err, ErrUnsupported))

	_, err = ToMultiContour(gj.NewPolygonGeometry([][][]float64{{{0, 0}, {1}}}))
	assert.Error(t, err)
}
