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

// Package clip implements boolean operations on polygons.
//
// The operations are computed by the Vatti clipping algorithm, as
// implemented by [github.com/ctessum/go.clipper].  The clipping engine works
// on integer coordinates.  Input coordinates are multiplied by a scale
// factor and rounded to the nearest integer, results are divided by the
// same factor.  The scale factor thus determines the precision of the
// result.
//
// All contours of the input are treated as closed.  Exteriors and holes
// are re-oriented before clipping, so that the input polygons are
// interpreted using the non-zero winding rule, independent of the vertex
// order used by the caller.
package clip

import (
	"errors"
	"fmt"
	"math"
	"slices"

	clipper "github.com/ctessum/go.clipper"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polypath"
)

// DefaultScale is a scale factor suitable for coordinates in the range of
// typical page or screen coordinates.  Results are accurate to about 1/1000
// of a unit.
const DefaultScale = 1000

// maxCoord is the largest scaled coordinate accepted by the clipping engine.
const maxCoord = 1<<62 - 1

var (
	// ErrInvalidScale is returned if the scale factor is not a finite,
	// positive number.
	ErrInvalidScale = errors.New("invalid scale factor")

	// ErrClipFailed is returned if the clipping engine cannot process the
	// input.
	ErrClipFailed = errors.New("polygon clipping failed")
)

// Op selects a boolean operation.
type Op int

// These are the supported boolean operations.
const (
	OpIntersection Op = iota // points inside both a and b
	OpUnion                  // points inside a or b
	OpDifference             // points inside a but not inside b
	OpXor                    // points inside exactly one of a and b
)

func (op Op) String() string {
	switch op {
	case OpIntersection:
		return "intersection"
	case OpUnion:
		return "union"
	case OpDifference:
		return "difference"
	case OpXor:
		return "xor"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

func (op Op) clipType() (clipper.ClipType, bool) {
	switch op {
	case OpIntersection:
		return clipper.CtIntersection, true
	case OpUnion:
		return clipper.CtUnion, true
	case OpDifference:
		return clipper.CtDifference, true
	case OpXor:
		return clipper.CtXor, true
	default:
		return 0, false
	}
}

// Intersection returns the area covered by both a and b.
func Intersection(a, b polypath.MultiPolygon, scale float64) (polypath.MultiPolygon, error) {
	return Apply(OpIntersection, a, b, scale)
}

// Union returns the area covered by a or b.
func Union(a, b polypath.MultiPolygon, scale float64) (polypath.MultiPolygon, error) {
	return Apply(OpUnion, a, b, scale)
}

// Difference returns the area covered by a but not by b.
func Difference(a, b polypath.MultiPolygon, scale float64) (polypath.MultiPolygon, error) {
	return Apply(OpDifference, a, b, scale)
}

// Xor returns the area covered by exactly one of a and b.
func Xor(a, b polypath.MultiPolygon, scale float64) (polypath.MultiPolygon, error) {
	return Apply(OpXor, a, b, scale)
}

// Apply computes the boolean operation op on the polygons a (the subject)
// and b (the clip polygons).
//
// In the result, every polygon has a counter-clockwise exterior and
// clockwise holes (in a coordinate system where y points up).  Closed
// rings do not repeat their first vertex.  An empty result is returned as
// nil.
func Apply(op Op, a, b polypath.MultiPolygon, scale float64) (polypath.MultiPolygon, error) {
	ct, ok := op.clipType()
	if !ok {
		return nil, fmt.Errorf("%w: unknown operation %s", ErrClipFailed, op)
	}
	if !(scale > 0) || math.IsInf(scale, 1) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidScale, scale)
	}

	subj, err := toPaths(a, scale)
	if err != nil {
		return nil, err
	}
	clip, err := toPaths(b, scale)
	if err != nil {
		return nil, err
	}
	if len(subj) == 0 && len(clip) == 0 {
		return nil, nil
	}

	tree, err := execute(ct, subj, clip)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var res polypath.MultiPolygon
	for _, node := range tree.Childs() {
		res = appendOuter(res, node, scale)
	}
	return res, nil
}

// execute runs the clipping engine.  The engine reports some error
// conditions by panicking; these are converted into errors.
func execute(ct clipper.ClipType, subj, clip clipper.Paths) (tree *clipper.PolyTree, err error) {
	defer func() {
		if r := recover(); r != nil {
			tree = nil
			err = fmt.Errorf("%w: %v", ErrClipFailed, r)
		}
	}()

	c := clipper.NewClipper(clipper.IoNone)
	if len(subj) > 0 {
		c.AddPaths(subj, clipper.PtSubject, true)
	}
	if len(clip) > 0 {
		c.AddPaths(clip, clipper.PtClip, true)
	}

	tree, ok := c.Execute2(ct, clipper.PftNonZero, clipper.PftNonZero)
	if !ok || tree == nil {
		return nil, ErrClipFailed
	}
	return tree, nil
}

// appendOuter converts an outer node of the result tree, together with its
// holes, into a polygon.  Polygons nested inside the holes are appended
// after it.
func appendOuter(res polypath.MultiPolygon, node *clipper.PolyNode, scale float64) polypath.MultiPolygon {
	poly := polypath.Polygon{Exterior: fromPath(node.Contour(), scale, false)}
	for _, hole := range node.Childs() {
		poly.Holes = append(poly.Holes, fromPath(hole.Contour(), scale, true))
	}
	res = append(res, poly)

	for _, hole := range node.Childs() {
		for _, inner := range hole.Childs() {
			res = appendOuter(res, inner, scale)
		}
	}
	return res
}

// toPaths converts polygons into integer rings.  Exteriors are oriented to
// have positive area, holes to have negative area.  Rings with fewer than
// three vertices are skipped.  If the exterior is skipped, the holes of the
// polygon are skipped, too.
func toPaths(mp polypath.MultiPolygon, scale float64) (clipper.Paths, error) {
	var res clipper.Paths
	for i, poly := range mp {
		for j, c := range polypath.Disassemble(poly) {
			if len(c.Vertices) < 3 {
				if len(c.Vertices) > 0 || len(poly.Holes) > 0 {
					polypath.Logger().Debug("skipping degenerate ring",
						"polygon", i, "ring", j, "vertices", len(c.Vertices))
				}
				if j == 0 {
					break
				}
				continue
			}

			area := c.SignedArea()
			isHole := j > 0
			if (area < 0 && !isHole) || (area > 0 && isHole) {
				c = c.Reversed()
			}

			path, err := toPath(c.Vertices, scale)
			if err != nil {
				return nil, fmt.Errorf("polygon %d, ring %d: %w", i, j, err)
			}
			res = append(res, path)
		}
	}
	return res, nil
}

func toPath(vertices []vec.Vec2, scale float64) (clipper.Path, error) {
	res := make(clipper.Path, len(vertices))
	for i, v := range vertices {
		x := math.Round(v.X * scale)
		y := math.Round(v.Y * scale)
		if !(math.Abs(x) <= maxCoord && math.Abs(y) <= maxCoord) {
			return nil, fmt.Errorf("%w: coordinate (%g, %g) out of range",
				ErrClipFailed, v.X, v.Y)
		}
		res[i] = &clipper.IntPoint{X: clipper.CInt(x), Y: clipper.CInt(y)}
	}
	return res, nil
}

// fromPath converts an integer ring back into a closed contour.
// Exteriors are returned with positive area, holes with negative area.
func fromPath(p clipper.Path, scale float64, isHole bool) polypath.Contour {
	c := polypath.Contour{
		Vertices: make([]vec.Vec2, len(p)),
		Closed:   true,
	}
	for i, pt := range p {
		c.Vertices[i] = vec.Vec2{
			X: float64(pt.X) / scale,
			Y: float64(pt.Y) / scale,
		}
	}
	if area := c.SignedArea(); (area < 0) != isHole && area != 0 {
		slices.Reverse(c.Vertices)
	}
	return c
}
