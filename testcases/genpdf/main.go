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

// Command genpdf writes one PDF file per test case, showing the original
// path together with its polygon approximation.  Two additional files
// show the results of boolean operations on polygons.
// Run from the module root directory.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/polypath"
	"seehuhn.de/go/polypath/clip"
	"seehuhn.de/go/polypath/pathcmd"
	"seehuhn.de/go/polypath/testcases"
)

type options struct {
	OutDir string  `short:"d" long:"dir" default:"testdata/pdf" description:"output directory"`
	Size   float64 `short:"s" long:"size" default:"300" description:"page size in PDF points"`
}

// margin around the drawing, in PDF points
const margin = 12

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.Parse()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		logger.Error("cannot create output directory", "dir", opts.OutDir, "error", err)
		os.Exit(1)
	}

	count := 0
	for _, category := range testcases.Categories() {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			fname := filepath.Join(opts.OutDir, name+".pdf")
			if err := writeCase(fname, tc, opts.Size); err != nil {
				logger.Error("cannot write test case", "name", name, "error", err)
				os.Exit(1)
			}
			count++
		}
	}

	for _, demo := range clipDemos {
		fname := filepath.Join(opts.OutDir, "clip_"+demo.name+".pdf")
		if err := writeClipDemo(fname, demo, opts.Size); err != nil {
			logger.Error("cannot write clip demo", "name", demo.name, "error", err)
			os.Exit(1)
		}
		count++
	}

	logger.Info("wrote PDF files", "dir", opts.OutDir, "count", count)
}

// writeCase shows the original path filled in light grey, and the
// flattened contours stroked in black.
func writeCase(fname string, tc testcases.TestCase, size float64) error {
	mc, err := polypath.PathToContours(tc.Path.All(), tc.Tolerance)
	if err != nil {
		return err
	}
	bbox, ok := mc.Bounds()
	if !ok {
		return errors.New("no vertices")
	}
	m := fitMatrix(bbox, size)

	page, err := document.CreateSinglePage(fname, &pdf.Rectangle{URx: size, URy: size}, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0.85))
	drawGeom(page, tc.Path.ToGeom(), m)
	page.Fill()

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(0.5)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	drawContours(page, mc.Transform(m))
	page.Stroke()

	// mark the vertices
	page.SetFillColor(color.DeviceGray(0))
	for _, c := range mc.Transform(m) {
		for _, v := range c.Vertices {
			page.Rectangle(v.X-1, v.Y-1, 2, 2)
		}
	}
	page.Fill()

	return page.Close()
}

type clipDemo struct {
	name     string
	subject  []pathcmd.Point
	clipping []pathcmd.Point
	op       clip.Op
}

// clipDemos combine two closed polygons.
var clipDemos = []clipDemo{
	{
		name: "squares_intersection",
		subject: []pathcmd.Point{
			pathcmd.Pt(-100, 100), pathcmd.Pt(100, 100), pathcmd.Pt(100, -100), pathcmd.Pt(-100, -100),
		},
		clipping: []pathcmd.Point{
			pathcmd.Pt(-50, 50), pathcmd.Pt(150, 50), pathcmd.Pt(150, -150), pathcmd.Pt(-50, -150),
		},
		op: clip.OpIntersection,
	},
	{
		name: "diff_right",
		subject: []pathcmd.Point{
			pathcmd.Pt(-50, 50), pathcmd.Pt(250, 50), pathcmd.Pt(250, -150), pathcmd.Pt(-50, -150),
			pathcmd.Pt(150, 0),
		},
		clipping: []pathcmd.Point{
			pathcmd.Pt(-150, 100), pathcmd.Pt(100, 100), pathcmd.Pt(100, -100), pathcmd.Pt(-150, -100),
		},
		op: clip.OpDifference,
	},
}

func writeClipDemo(fname string, demo clipDemo, size float64) error {
	subject := polypath.PointsToContour(demo.subject, true)
	clipper := polypath.PointsToContour(demo.clipping, true)

	res, err := clip.Apply(demo.op,
		polypath.AssembleEach(polypath.MultiContour{subject}),
		polypath.AssembleEach(polypath.MultiContour{clipper}),
		10)
	if err != nil {
		return err
	}

	bbox, _ := polypath.MultiContour{subject, clipper}.Bounds()
	m := fitMatrix(bbox, size)

	page, err := document.CreateSinglePage(fname, &pdf.Rectangle{URx: size, URy: size}, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0.9))
	drawContours(page, polypath.MultiContour{subject.Transform(m)})
	page.Fill()
	page.SetFillColor(color.DeviceGray(0.75))
	drawContours(page, polypath.MultiContour{clipper.Transform(m)})
	page.Fill()

	page.SetFillColor(color.DeviceGray(0.3))
	drawContours(page, polypath.DisassembleEach(res).Transform(m))
	page.Fill()

	return page.Close()
}

// fitMatrix maps the rectangle bbox into a size×size page, keeping the
// aspect ratio.  The y-axis is flipped, so that y points down on the page.
func fitMatrix(bbox rect.Rect, size float64) matrix.Matrix {
	w := bbox.URx - bbox.LLx
	h := bbox.URy - bbox.LLy
	s := 1.0
	if ext := max(w, h); ext > 0 {
		s = (size - 2*margin) / ext
	}
	return matrix.Matrix{s, 0, 0, -s, margin - s*bbox.LLx, size - margin + s*bbox.LLy}
}

func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// drawGeom adds a path to the page, after transforming it by m.
// Quadratic curves are converted to cubic ones, since PDF has no
// quadratic curves.
func drawGeom(page *document.Page, p *path.Data, m matrix.Matrix) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			q := apply(m, pts[0])
			page.MoveTo(q.X, q.Y)
		case path.CmdLineTo:
			q := apply(m, pts[0])
			page.LineTo(q.X, q.Y)
		case path.CmdCubeTo:
			c1 := apply(m, pts[0])
			c2 := apply(m, pts[1])
			q := apply(m, pts[2])
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, q.X, q.Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func drawContours(page *document.Page, mc polypath.MultiContour) {
	for _, c := range mc {
		if len(c.Vertices) == 0 {
			continue
		}
		page.MoveTo(c.Vertices[0].X, c.Vertices[0].Y)
		for _, v := range c.Vertices[1:] {
			page.LineTo(v.X, v.Y)
		}
		if c.Closed {
			page.ClosePath()
		}
	}
}
