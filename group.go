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
	"log/slog"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polypath/pathcmd"
)

// Group collects a stream of straight line commands into contours.
//
// The stream must consist of Begin, Line and End commands only; curves
// must have been flattened before (see [PathToContours]).  Every End
// command completes one contour, and the contours are returned in the
// order in which their End commands occur.  A stream without any complete
// sub-path results in an empty (nil) MultiContour.
//
// A sub-path which is not terminated by End, because it is followed by
// another Begin or by the end of the stream, is discarded.
//
// If the stream contains a Line or End command outside a sub-path, or
// any command other than Begin, Line or End, Group stops and returns an
// error which wraps [ErrMalformedStream].
func Group(events pathcmd.Iter) (MultiContour, error) {
	var res MultiContour

	var current []vec.Vec2
	accumulating := false
	idx := 0
	for e := range events {
		switch e.Kind {
		case pathcmd.CmdBegin:
			if accumulating {
				abandonUnterminated(idx, current)
			}
			current = []vec.Vec2{ToCoordinate(e.To)}
			accumulating = true

		case pathcmd.CmdLine:
			if !accumulating {
				return nil, &StreamError{Index: idx, Kind: e.Kind, Msg: "line outside sub-path"}
			}
			current = append(current, ToCoordinate(e.To))

		case pathcmd.CmdEnd:
			if !accumulating {
				return nil, &StreamError{Index: idx, Kind: e.Kind, Msg: "end outside sub-path"}
			}
			res = append(res, Contour{Vertices: current, Closed: e.Close})
			current = nil
			accumulating = false

		default:
			return nil, &StreamError{Index: idx, Kind: e.Kind, Msg: "unexpected command, curves must be flattened"}
		}
		idx++
	}
	if accumulating {
		abandonUnterminated(idx, current)
	}

	return res, nil
}

// abandonUnterminated decides what happens to a sub-path which is not
// terminated by an End command.  Currently the vertices are dropped;
// idx is the position in the stream where this was detected.
func abandonUnterminated(idx int, vertices []vec.Vec2) {
	Logger().Debug("dropping unterminated sub-path",
		slog.Int("index", idx),
		slog.Int("vertices", len(vertices)))
}
