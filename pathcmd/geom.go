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

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FromGeom converts a path in the PDF/PostScript model to a command stream.
//
// Sub-paths which are not closed by CmdClose are terminated by an open End
// command, either at the next CmdMoveTo or at the end of the path.
// Coordinates are narrowed to single precision.
func FromGeom(p path.Path) *Path {
	res := &Path{}
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			res.MoveTo(narrow(pts[0]))
		case path.CmdLineTo:
			res.LineTo(narrow(pts[0]))
		case path.CmdQuadTo:
			res.QuadTo(narrow(pts[0]), narrow(pts[1]))
		case path.CmdCubeTo:
			res.CubeTo(narrow(pts[0]), narrow(pts[1]), narrow(pts[2]))
		case path.CmdClose:
			res.Close()
		}
	}
	return res.End()
}

// ToGeom converts the command stream to the PDF/PostScript path model.
// Closed sub-paths end in CmdClose, open sub-paths have no terminator.
func (p *Path) ToGeom() *path.Data {
	res := &path.Data{}
	for e := range p.All() {
		switch e.Kind {
		case CmdBegin:
			res = res.MoveTo(widen(e.To))
		case CmdLine:
			res = res.LineTo(widen(e.To))
		case CmdQuad:
			res = res.QuadTo(widen(e.Ctrl1), widen(e.To))
		case CmdCube:
			res = res.CubeTo(widen(e.Ctrl1), widen(e.Ctrl2), widen(e.To))
		case CmdEnd:
			if e.Close {
				res = res.Close()
			}
		}
	}
	return res
}

func narrow(v vec.Vec2) Point {
	return Point{X: float32(v.X), Y: float32(v.Y)}
}

func widen(p Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}
