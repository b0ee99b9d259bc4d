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

// Package preview renders paths and contours into alpha masks.
//
// The images are intended for visual inspection and for comparing the
// area covered by a path with the area covered by its polygon
// approximation.  Coordinates are interpreted as pixel coordinates, with
// the origin in the top-left corner of the image and y pointing down.
// Shapes are filled using the non-zero winding rule.  Open sub-paths are
// filled as if they were closed.
package preview

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"

	"seehuhn.de/go/polypath"
	"seehuhn.de/go/polypath/pathcmd"
)

// Fill renders the path into a new w×h alpha mask.
// Curves are passed to the rasteriser directly, without flattening.
func Fill(events pathcmd.Iter, w, h int) *image.Alpha {
	r := vector.NewRasterizer(w, h)
	AddPath(r, events)
	return draw(r, w, h)
}

// FillContours renders the contours into a new w×h alpha mask.
func FillContours(mc polypath.MultiContour, w, h int) *image.Alpha {
	r := vector.NewRasterizer(w, h)
	AddContours(r, mc)
	return draw(r, w, h)
}

// AddPath adds the sub-paths of a command stream to r.
// Commands which do not belong to a sub-path are ignored.
func AddPath(r *vector.Rasterizer, events pathcmd.Iter) {
	open := false
	for e := range events {
		switch e.Kind {
		case pathcmd.CmdBegin:
			if open {
				r.ClosePath()
			}
			r.MoveTo(e.To.X, e.To.Y)
			open = true
		case pathcmd.CmdLine:
			if open {
				r.LineTo(e.To.X, e.To.Y)
			}
		case pathcmd.CmdQuad:
			if open {
				r.QuadTo(e.Ctrl1.X, e.Ctrl1.Y, e.To.X, e.To.Y)
			}
		case pathcmd.CmdCube:
			if open {
				r.CubeTo(e.Ctrl1.X, e.Ctrl1.Y, e.Ctrl2.X, e.Ctrl2.Y, e.To.X, e.To.Y)
			}
		case pathcmd.CmdEnd:
			if open {
				r.ClosePath()
			}
			open = false
		}
	}
	if open {
		r.ClosePath()
	}
}

// AddContours adds the contours to r.
func AddContours(r *vector.Rasterizer, mc polypath.MultiContour) {
	for _, c := range mc {
		if len(c.Vertices) == 0 {
			continue
		}
		p := polypath.ToPoint(c.Vertices[0])
		r.MoveTo(p.X, p.Y)
		for _, v := range c.Vertices[1:] {
			p = polypath.ToPoint(v)
			r.LineTo(p.X, p.Y)
		}
		r.ClosePath()
	}
}

// Coverage returns the total coverage of the mask, in units of pixels.
// For a mask rendered from a path, this approximates the area of the
// visible part of the path.
func Coverage(img *image.Alpha) float64 {
	var sum int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[(y-b.Min.Y)*img.Stride:]
		for _, a := range row[:b.Dx()] {
			sum += int(a)
		}
	}
	return float64(sum) / 255
}

// MaxDiff returns the largest difference between corresponding pixels of
// two masks.  Only the intersection of the two image rectangles is
// compared.
func MaxDiff(a, b *image.Alpha) uint8 {
	var res uint8
	r := a.Bounds().Intersect(b.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			pa := a.AlphaAt(x, y).A
			pb := b.AlphaAt(x, y).A
			res = max(res, max(pa, pb)-min(pa, pb))
		}
	}
	return res
}

func draw(r *vector.Rasterizer, w, h int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{255}), image.Point{})
	return dst
}
