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

// Package pathcmd represents vector paths as a stream of drawing commands.
//
// Unlike the PDF/PostScript model, every sub-path is explicitly terminated
// by an End command which records whether the sub-path is closed.  A
// well-formed stream therefore has the shape
//
//	Begin (Line | Quad | Cube)* End  [Begin ... End]*
//
// Points use single precision coordinates.
package pathcmd

import "fmt"

// Point is a point in path space.
type Point struct {
	X, Y float32
}

// Pt returns the point (x, y).
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Kind identifies the type of a path command.
type Kind uint8

// These are the command kinds which can occur in a path.
const (
	CmdBegin Kind = iota
	CmdLine
	CmdQuad
	CmdCube
	CmdEnd
)

func (k Kind) String() string {
	switch k {
	case CmdBegin:
		return "Begin"
	case CmdLine:
		return "Line"
	case CmdQuad:
		return "Quad"
	case CmdCube:
		return "Cube"
	case CmdEnd:
		return "End"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Event is a single path command.
//
// The meaning of the fields depends on Kind:
//   - CmdBegin: To is the start point of a new sub-path.
//   - CmdLine: To is the end point of a straight segment.
//   - CmdQuad: Ctrl1 is the control point, To the end point.
//   - CmdCube: Ctrl1 and Ctrl2 are the control points, To the end point.
//   - CmdEnd: Close reports whether the sub-path is closed.
//
// Fields not used by a kind are left at their zero value.
type Event struct {
	Kind  Kind
	To    Point
	Ctrl1 Point
	Ctrl2 Point
	Close bool
}

// Begin returns a command which starts a new sub-path at p.
func Begin(p Point) Event {
	return Event{Kind: CmdBegin, To: p}
}

// Line returns a straight line command ending at p.
func Line(p Point) Event {
	return Event{Kind: CmdLine, To: p}
}

// Quad returns a quadratic Bézier command with control point c, ending at p.
func Quad(c, p Point) Event {
	return Event{Kind: CmdQuad, Ctrl1: c, To: p}
}

// Cube returns a cubic Bézier command with control points c1 and c2,
// ending at p.
func Cube(c1, c2, p Point) Event {
	return Event{Kind: CmdCube, Ctrl1: c1, Ctrl2: c2, To: p}
}

// End returns a command which terminates the current sub-path.
func End(close bool) Event {
	return Event{Kind: CmdEnd, Close: close}
}

func (e Event) String() string {
	switch e.Kind {
	case CmdBegin, CmdLine:
		return fmt.Sprintf("%s(%g,%g)", e.Kind, e.To.X, e.To.Y)
	case CmdQuad:
		return fmt.Sprintf("Quad(%g,%g %g,%g)", e.Ctrl1.X, e.Ctrl1.Y, e.To.X, e.To.Y)
	case CmdCube:
		return fmt.Sprintf("Cube(%g,%g %g,%g %g,%g)",
			e.Ctrl1.X, e.Ctrl1.Y, e.Ctrl2.X, e.Ctrl2.Y, e.To.X, e.To.Y)
	case CmdEnd:
		return fmt.Sprintf("End(%t)", e.Close)
	default:
		return e.Kind.String()
	}
}

// Iter is a lazy sequence of path commands.
type Iter func(yield func(Event) bool)

// Collect reads all commands from the sequence into a new Path.
func (it Iter) Collect() *Path {
	p := &Path{}
	for e := range it {
		p.Events = append(p.Events, e)
	}
	return p
}

// Events returns an Iter which yields the given commands in order.
func Events(events ...Event) Iter {
	return func(yield func(Event) bool) {
		for _, e := range events {
			if !yield(e) {
				return
			}
		}
	}
}
