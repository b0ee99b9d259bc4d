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

// Command export writes the flattened test case geometries to a GeoJSON
// feature collection.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	gj "github.com/paulmach/go.geojson"

	"seehuhn.de/go/polypath"
	"seehuhn.de/go/polypath/geojson"
	"seehuhn.de/go/polypath/testcases"
)

type options struct {
	Output    string  `short:"o" long:"output" default:"testdata/testcases.geojson" description:"output file"`
	Tolerance float64 `short:"t" long:"tolerance" description:"override the flattening tolerance of all test cases"`
	Verbose   bool    `short:"v" long:"verbose" description:"log dropped sub-paths"`
}

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
	if opts.Verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		polypath.SetLogger(logger)
	}

	fc, err := collect(opts.Tolerance)
	if err != nil {
		logger.Error("cannot convert test cases", "error", err)
		os.Exit(1)
	}

	err = write(opts.Output, fc)
	if err != nil {
		logger.Error("cannot write output", "file", opts.Output, "error", err)
		os.Exit(1)
	}
	logger.Info("wrote test cases", "file", opts.Output, "features", len(fc.Features))
}

// collect converts all test cases into GeoJSON features.  Test cases
// where all contours are closed become polygons, all others become
// multi-line-strings.
func collect(tolerance float64) (*gj.FeatureCollection, error) {
	fc := gj.NewFeatureCollection()
	for _, category := range testcases.Categories() {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			tol := tc.Tolerance
			if tolerance != 0 {
				tol = float32(tolerance)
			}
			mc, err := polypath.PathToContours(tc.Path.All(), tol)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}

			var g *gj.Geometry
			if allClosed(mc) {
				g = geojson.Polygon(polypath.Assemble(mc))
			} else {
				g = geojson.MultiLineString(mc)
			}

			f := gj.NewFeature(g)
			f.SetProperty("name", name)
			f.SetProperty("category", category)
			f.SetProperty("tolerance", tol)
			f.SetProperty("contours", len(mc))
			f.SetProperty("width", tc.Width)
			f.SetProperty("height", tc.Height)
			fc.AddFeature(f)
		}
	}
	return fc, nil
}

func allClosed(mc polypath.MultiContour) bool {
	for _, c := range mc {
		if !c.Closed {
			return false
		}
	}
	return len(mc) > 0
}

func write(fname string, fc *gj.FeatureCollection) error {
	if err := os.MkdirAll(filepath.Dir(fname), 0755); err != nil {
		return err
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(fc)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
