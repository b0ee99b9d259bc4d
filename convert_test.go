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
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polypath/pathcmd"
	"seehuhn.de/go/polypath/testcases"
)

func TestPathToContoursCurve(t *testing.T) {
	p := (&pathcmd.Path{}).
		MoveTo(pt(0, 0)).
		QuadTo(pt(10, 20), pt(5, 20)).
		LineTo(pt(10, 10)).
		Close()

	mc, err := PathToContours(p.All(), 0.1)
	require.NoError(t, err)
	require.Len(t, mc, 1)

	c := mc[0]
	assert.True(t, c.Closed)
	assert.GreaterOrEqual(t, len(c.Vertices), 2)
	assert.Equal(t, vec.Vec2{X: 0, Y: 0}, c.Vertices[0])
	assert.Equal(t, vec.Vec2{X: 10, Y: 10}, c.Vertices[len(c.Vertices)-1])
	assert.Contains(t, c.Vertices, vec.Vec2{X: 5, Y: 20})
}

func TestPathToContoursOpenCurve(t *testing.T) {
	p := (&pathcmd.Path{}).
		MoveTo(pt(0, 0)).
		CubeTo(pt(0, 10), pt(10, 10), pt(10, 0)).
		End()

	mc, err := PathToContours(p.All(), DefaultTolerance)
	require.NoError(t, err)
	require.Len(t, mc, 1)
	assert.False(t, mc[0].Closed)
	assert.Greater(t, len(mc[0].Vertices), 2)
}

func TestPathToContoursSVGMulti(t *testing.T) {
	p := (&pathcmd.Path{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(10, 10)).
		LineTo(pt(5, 20)).
		Close().
		MoveTo(pt(20, 30)).
		LineTo(pt(40, 50)).
		LineTo(pt(30, 40)).
		Close()

	mc, err := PathToContours(p.All(), 0.1)
	require.NoError(t, err)

	expected := MultiContour{
		{Vertices: []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 5, Y: 20}}, Closed: true},
		{Vertices: []vec.Vec2{{X: 20, Y: 30}, {X: 40, Y: 50}, {X: 30, Y: 40}}, Closed: true},
	}
	assert.Equal(t, expected, mc)
}

func TestPathToPolygon(t *testing.T) {
	p := (&pathcmd.Path{}).
		MoveTo(pt(0, 0)).LineTo(pt(100, 0)).LineTo(pt(100, 100)).LineTo(pt(0, 100)).Close().
		MoveTo(pt(10, 10)).LineTo(pt(10, 20)).LineTo(pt(20, 20)).Close()

	poly, err := PathToPolygon(p.All(), 0.1)
	require.NoError(t, err)
	assert.Len(t, poly.Exterior.Vertices, 4)
	require.Len(t, poly.Holes, 1)
	assert.Len(t, poly.Holes[0].Vertices, 3)

	empty, err := PathToPolygon((&pathcmd.Path{}).All(), 0.1)
	require.NoError(t, err)
	assert.Empty(t, empty.Exterior.Vertices)
	assert.Empty(t, empty.Holes)
}

func TestPathToMultiPolygon(t *testing.T) {
	p := (&pathcmd.Path{}).
		MoveTo(pt(-100, 100)).LineTo(pt(100, 100)).LineTo(pt(100, -100)).LineTo(pt(-100, -100)).Close().
		MoveTo(pt(200, 200)).LineTo(pt(300, 200)).LineTo(pt(300, 300)).Close()

	mp, err := PathToMultiPolygon(p.All(), 0.1)
	require.NoError(t, err)
	require.Len(t, mp, 2)
	for _, poly := range mp {
		assert.Empty(t, poly.Holes)
		assert.True(t, poly.Exterior.Closed)
	}
}

func TestInvalidTolerance(t *testing.T) {
	p := (&pathcmd.Path{}).MoveTo(pt(0, 0)).LineTo(pt(1, 1)).Close()

	for _, tol := range []float32{0, -1, float32(math.NaN()), float32(math.Inf(1))} {
		_, err := PathToContours(p.All(), tol)
		assert.True(t, errors.Is(err, ErrInvalidTolerance), "tolerance %g", tol)

		_, err = PathToPolygon(p.All(), tol)
		assert.True(t, errors.Is(err, ErrInvalidTolerance), "tolerance %g", tol)

		_, err = PathToMultiPolygon(p.All(), tol)
		assert.True(t, errors.Is(err, ErrInvalidTolerance), "tolerance %g", tol)
	}
}

func TestPathToContoursMalformed(t *testing.T) {
	events := pathcmd.Events(pathcmd.Line(pt(1, 1)), pathcmd.End(false))
	_, err := PathToContours(events, 0.1)
	assert.True(t, errors.Is(err, ErrMalformedStream))
}

func TestPointsToContour(t *testing.T) {
	pts := []pathcmd.Point{pt(-100, 100), pt(100, 100), pt(100, -100), pt(-100, -100)}
	c := PointsToContour(pts, true)

	assert.True(t, c.Closed)
	assert.Equal(t, []vec.Vec2{{X: -100, Y: 100}, {X: 100, Y: 100}, {X: 100, Y: -100}, {X: -100, Y: -100}}, c.Vertices)

	// same result as going through the path representation
	events := ContourToPath(c)
	mc, err := PathToContours(events.All(), 0.1)
	require.NoError(t, err)
	assert.Equal(t, MultiContour{c}, mc)

	assert.Nil(t, PointsToContour(nil, false).Vertices)
}

func TestFixtures(t *testing.T) {
	for _, category := range testcases.Categories() {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				mc, err := PathToContours(tc.Path.All(), tc.Tolerance)
				require.NoError(t, err)
				require.Len(t, mc, len(tc.Closed))
				for i, c := range mc {
					assert.Equal(t, tc.Closed[i], c.Closed, "contour %d", i)
					assert.GreaterOrEqual(t, len(c.Vertices), tc.MinVertices[i], "contour %d", i)
				}

				// flattening a flattened path changes nothing
				again, err := PathToContours(ContoursToPath(mc).All(), tc.Tolerance)
				require.NoError(t, err)
				assert.Equal(t, mc, again)
			})
		}
	}
}
