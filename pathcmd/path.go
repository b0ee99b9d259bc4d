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

package pathcmd

import "slices"

// Path is a recorded sequence of path commands.
//
// The builder methods return the receiver, so that paths can be constructed
// in a single expression:
//
//	p := (&pathcmd.Path{}).
//		MoveTo(pathcmd.Pt(0, 0)).
//		LineTo(pathcmd.Pt(10, 10)).
//		Close()
//
// The builder always produces well-formed streams.  Paths assembled by
// appending to Events directly are not checked.
type Path struct {
	Events []Event

	open    bool  // a sub-path has been started and not yet ended
	first   Point // start of the current sub-path
	current Point // current point
}

// All returns an iterator over the commands of the path.
func (p *Path) All() Iter {
	return func(yield func(Event) bool) {
		if p == nil {
			return
		}
		for _, e := range p.Events {
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of commands in the path.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Events)
}

// MoveTo starts a new sub-path at pt.
// If a sub-path is still open, it is first terminated without closing it.
func (p *Path) MoveTo(pt Point) *Path {
	if p.open {
		p.Events = append(p.Events, End(false))
	}
	p.Events = append(p.Events, Begin(pt))
	p.open = true
	p.first = pt
	p.current = pt
	return p
}

// LineTo appends a straight line to pt.
func (p *Path) LineTo(pt Point) *Path {
	p.ensureOpen()
	p.Events = append(p.Events, Line(pt))
	p.current = pt
	return p
}

// QuadTo appends a quadratic Bézier curve with control point c, ending at pt.
func (p *Path) QuadTo(c, pt Point) *Path {
	p.ensureOpen()
	p.Events = append(p.Events, Quad(c, pt))
	p.current = pt
	return p
}

// CubeTo appends a cubic Bézier curve with control points c1 and c2,
// ending at pt.
func (p *Path) CubeTo(c1, c2, pt Point) *Path {
	p.ensureOpen()
	p.Events = append(p.Events, Cube(c1, c2, pt))
	p.current = pt
	return p
}

// Close terminates the current sub-path and marks it as closed.
// The current point moves back to the start of the sub-path.
// Close has no effect if no sub-path is open.
func (p *Path) Close() *Path {
	if !p.open {
		return p
	}
	p.Events = append(p.Events, End(true))
	p.open = false
	p.current = p.first
	return p
}

// End terminates the current sub-path without closing it.
// End has no effect if no sub-path is open.
func (p *Path) End() *Path {
	if !p.open {
		return p
	}
	p.Events = append(p.Events, End(false))
	p.open = false
	return p
}

// Append adds all commands of other to the end of p.
// A sub-path which is open in p is terminated first, so that the
// sub-paths of both paths remain independent.
func (p *Path) Append(other *Path) *Path {
	p.End()
	if other == nil {
		return p
	}
	p.Events = append(p.Events, other.Events...)
	p.open = other.open
	p.first = other.first
	p.current = other.current
	return p
}

// Clone returns an independent copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	res := *p
	res.Events = slices.Clone(p.Events)
	return &res
}

// ensureOpen starts a new sub-path at the current point, if necessary.
func (p *Path) ensureOpen() {
	if p.open {
		return
	}
	p.Events = append(p.Events, Begin(p.current))
	p.open = true
	p.first = p.current
}
