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
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polypath/pathcmd"
)

func pt(x, y float32) pathcmd.Point {
	return pathcmd.Pt(x, y)
}

func TestGroupEmpty(t *testing.T) {
	mc, err := Group(pathcmd.Events())
	require.NoError(t, err)
	assert.Empty(t, mc)
}

func TestGroupSimple(t *testing.T) {
	mc, err := Group(pathcmd.Events(
		pathcmd.Begin(pt(0, 0)),
		pathcmd.Line(pt(10, 10)),
		pathcmd.Line(pt(5, 20)),
		pathcmd.End(true),
	))
	require.NoError(t, err)

	expected := MultiContour{
		{Vertices: []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 5, Y: 20}}, Closed: true},
	}
	assert.Equal(t, expected, mc)
}

func TestGroupMultipleSubpaths(t *testing.T) {
	mc, err := Group(pathcmd.Events(
		pathcmd.Begin(pt(0, 0)),
		pathcmd.Line(pt(10, 10)),
		pathcmd.Line(pt(5, 20)),
		pathcmd.End(true),
		pathcmd.Begin(pt(20, 30)),
		pathcmd.Line(pt(40, 50)),
		pathcmd.End(false),
		pathcmd.Begin(pt(7, 7)),
		pathcmd.End(true),
	))
	require.NoError(t, err)
	require.Len(t, mc, 3)

	assert.True(t, mc[0].Closed)
	assert.Len(t, mc[0].Vertices, 3)
	assert.False(t, mc[1].Closed)
	assert.Equal(t, []vec.Vec2{{X: 20, Y: 30}, {X: 40, Y: 50}}, mc[1].Vertices)
	assert.Equal(t, []vec.Vec2{{X: 7, Y: 7}}, mc[2].Vertices)
}

func TestGroupReopenDropsUnterminated(t *testing.T) {
	mc, err := Group(pathcmd.Events(
		pathcmd.Begin(pt(1, 1)),
		pathcmd.Line(pt(2, 2)),
		pathcmd.Begin(pt(3, 3)),
		pathcmd.Line(pt(4, 4)),
		pathcmd.End(true),
	))
	require.NoError(t, err)

	expected := MultiContour{
		{Vertices: []vec.Vec2{{X: 3, Y: 3}, {X: 4, Y: 4}}, Closed: true},
	}
	assert.Equal(t, expected, mc)
}

func TestGroupTrailingUnterminated(t *testing.T) {
	mc, err := Group(pathcmd.Events(
		pathcmd.Begin(pt(0, 0)),
		pathcmd.Line(pt(1, 0)),
		pathcmd.End(false),
		pathcmd.Begin(pt(5, 5)),
		pathcmd.Line(pt(6, 6)),
	))
	require.NoError(t, err)
	require.Len(t, mc, 1)
	assert.Equal(t, []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}}, mc[0].Vertices)
}

func TestGroupDropIsLogged(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := Group(pathcmd.Events(
		pathcmd.Begin(pt(1, 1)),
		pathcmd.Line(pt(2, 2)),
		pathcmd.Begin(pt(3, 3)),
		pathcmd.End(true),
	))
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.Contains(out, "dropping unterminated sub-path"), "log output: %q", out)
	assert.Contains(t, out, "index=2")
	assert.Contains(t, out, "vertices=2")
}

func TestGroupMalformed(t *testing.T) {
	cases := []struct {
		name   string
		events []pathcmd.Event
		index  int
		kind   pathcmd.Kind
	}{
		{
			name:   "line_without_begin",
			events: []pathcmd.Event{pathcmd.Line(pt(1, 1))},
			index:  0,
			kind:   pathcmd.CmdLine,
		},
		{
			name:   "end_without_begin",
			events: []pathcmd.Event{pathcmd.End(true)},
			index:  0,
			kind:   pathcmd.CmdEnd,
		},
		{
			name: "line_after_end",
			events: []pathcmd.Event{
				pathcmd.Begin(pt(0, 0)),
				pathcmd.Line(pt(1, 1)),
				pathcmd.End(false),
				pathcmd.Line(pt(2, 2)),
			},
			index: 3,
			kind:  pathcmd.CmdLine,
		},
		{
			name: "quadratic",
			events: []pathcmd.Event{
				pathcmd.Begin(pt(0, 0)),
				pathcmd.Quad(pt(1, 1), pt(2, 0)),
				pathcmd.End(true),
			},
			index: 1,
			kind:  pathcmd.CmdQuad,
		},
		{
			name: "cubic",
			events: []pathcmd.Event{
				pathcmd.Begin(pt(0, 0)),
				pathcmd.Line(pt(1, 0)),
				pathcmd.Cube(pt(1, 1), pt(2, 1), pt(2, 0)),
			},
			index: 2,
			kind:  pathcmd.CmdCube,
		},
		{
			name:   "unknown_kind",
			events: []pathcmd.Event{{Kind: pathcmd.Kind(42)}},
			index:  0,
			kind:   pathcmd.Kind(42),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mc, err := Group(pathcmd.Events(c.events...))
			require.Error(t, err)
			assert.Nil(t, mc)
			assert.True(t, errors.Is(err, ErrMalformedStream))

			var streamErr *StreamError
			require.True(t, errors.As(err, &streamErr))
			assert.Equal(t, c.index, streamErr.Index)
			assert.Equal(t, c.kind, streamErr.Kind)
		})
	}
}

func TestGroupStopsReadingOnError(t *testing.T) {
	consumed := 0
	events := func(yield func(pathcmd.Event) bool) {
		for _, e := range []pathcmd.Event{
			pathcmd.Line(pt(0, 0)),
			pathcmd.Begin(pt(1, 1)),
			pathcmd.End(true),
		} {
			consumed++
			if !yield(e) {
				return
			}
		}
	}

	_, err := Group(events)
	require.Error(t, err)
	assert.Equal(t, 1, consumed)
}

// TestGroupEmitRoundTrip checks that a single closed sub-path of straight
// lines is reproduced exactly by grouping and re-emitting it.
func TestGroupEmitRoundTrip(t *testing.T) {
	streams := [][]pathcmd.Event{
		{
			pathcmd.Begin(pt(0, 0)),
			pathcmd.End(true),
		},
		{
			pathcmd.Begin(pt(0, 0)),
			pathcmd.Line(pt(10, 10)),
			pathcmd.Line(pt(5, 20)),
			pathcmd.End(true),
		},
		{
			pathcmd.Begin(pt(-100, 100)),
			pathcmd.Line(pt(100, 100)),
			pathcmd.Line(pt(100, -100)),
			pathcmd.Line(pt(-100, -100)),
			pathcmd.Line(pt(-100, 100)),
			pathcmd.End(true),
		},
		{
			pathcmd.Begin(pt(0.1, 0.2)),
			pathcmd.Line(pt(1e7, -3.25)),
			pathcmd.Line(pt(-1e-7, 1.0000001)),
			pathcmd.End(true),
		},
	}

	for i, s := range streams {
		mc, err := Group(pathcmd.Events(s...))
		require.NoError(t, err, "stream %d", i)
		require.Len(t, mc, 1, "stream %d", i)

		out := ContourToPath(mc[0])
		assert.Equal(t, s, out.Events, "stream %d", i)
	}
}
