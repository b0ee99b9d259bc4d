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
	"fmt"

	"seehuhn.de/go/polypath/pathcmd"
)

var (
	// ErrMalformedStream indicates that a command stream passed to Group
	// is not a sequence of Begin/Line/End commands.  This is a programming
	// error in the code which produced the stream.
	ErrMalformedStream = errors.New("malformed command stream")

	// ErrInvalidTolerance is returned if a flattening tolerance is not a
	// finite, positive number.
	ErrInvalidTolerance = errors.New("invalid flattening tolerance")
)

// StreamError describes the position of a malformed command.
type StreamError struct {
	Index int          // position of the offending command in the stream
	Kind  pathcmd.Kind // kind of the offending command
	Msg   string
}

func (err *StreamError) Error() string {
	return fmt.Sprintf("command %d (%s): %s", err.Index, err.Kind, err.Msg)
}

// Unwrap returns ErrMalformedStream.
func (err *StreamError) Unwrap() error {
	return ErrMalformedStream
}
