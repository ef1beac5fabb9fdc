package clipping

import (
	"fmt"

	"github.com/cetz-package/contourklip/contour"
	"github.com/cetz-package/contourklip/geom"
	"github.com/cetz-package/contourklip/internal/sweep"
)

// connect stitches the sweep's tagged result edges back into closed
// output contours, following each edge to the next one whose start
// point matches its end (within eps), and reorienting each finished
// contour by nesting depth parity (even depth: outer boundary,
// counterclockwise; odd depth: hole, clockwise).
//
// Depth is derived from each edge's PrevInResult link, gated the way
// the original connector's result_in_out bookkeeping gates it: a
// contour only nests one level deeper than its predecessor's contour
// if PrevInResult points at that contour's own starting edge — any
// other target is a sibling at the same depth, not a parent. Since
// PrevInResult always points at an already-processed index (the
// active-set predecessor is assigned a lower posInResult earlier in
// the sweep) and starting indices are absorbed into a whole contour
// before connect advances to the next one, every target's depth and
// starting-edge status is already known by the time it's needed.
func connect(edges []sweep.ResultEdge, eps float64) ([]*contour.Contour, error) {
	used := make([]bool, len(edges))
	starts := make(map[pointKey][]int, len(edges))
	for i, e := range edges {
		p0, _ := edgeEndpoints(e.Edge)
		starts[keyOf(p0, eps)] = append(starts[keyOf(p0, eps)], i)
	}

	depthOf := make([]int, len(edges))
	isContourStart := make([]bool, len(edges))

	var out []*contour.Contour
	for i := range edges {
		if used[i] {
			continue
		}
		c, err := walkContour(edges, used, starts, i, eps, depthOf, isContourStart)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func walkContour(edges []sweep.ResultEdge, used []bool, starts map[pointKey][]int, startIdx int, eps float64, depthOf []int, isContourStart []bool) (*contour.Contour, error) {
	first := edges[startIdx]
	p0, _ := edgeEndpoints(first.Edge)
	c := contour.New(p0)
	depth := contourDepth(edges, startIdx, depthOf, isContourStart)
	isContourStart[startIdx] = true

	idx := startIdx
	for {
		used[idx] = true
		depthOf[idx] = depth
		e := edges[idx]
		appendEdge(c, e.Edge)
		_, end := edgeEndpoints(e.Edge)

		if end.Equal(p0, eps) {
			break
		}

		next := -1
		for _, cand := range starts[keyOf(end, eps)] {
			if !used[cand] {
				next = cand
				break
			}
		}
		if next == -1 {
			return nil, fmt.Errorf("connector at contour starting %v: %w", p0, ErrConnectorHopMissing)
		}
		idx = next
	}

	if depth%2 == 1 {
		if c.Area() > 0 {
			c = c.Reversed()
		}
	} else {
		if c.Area() < 0 {
			c = c.Reversed()
		}
	}
	return c, nil
}

// contourDepth computes the nesting depth of the contour starting at
// startIdx: one more than its PrevInResult target's own contour depth
// if that target is itself a contour-starting edge (a genuine
// parent-to-child nesting transition), otherwise exactly the same
// depth as that target's contour (a sibling reached mid-contour).
func contourDepth(edges []sweep.ResultEdge, startIdx int, depthOf []int, isContourStart []bool) int {
	prev := edges[startIdx].PrevInResult
	if prev == -1 {
		return 0
	}
	if isContourStart[prev] {
		return depthOf[prev] + 1
	}
	return depthOf[prev]
}

func appendEdge(c *contour.Contour, e sweep.Edge) {
	if e.IsCubic {
		c.CubicTo(e.Cubic.P1, e.Cubic.P2, e.Cubic.P3)
	} else {
		c.LineTo(e.Line.P1)
	}
}

func edgeEndpoints(e sweep.Edge) (geom.Point, geom.Point) {
	if e.IsCubic {
		return e.Cubic.P0, e.Cubic.P3
	}
	return e.Line.P0, e.Line.P1
}

type pointKey struct{ x, y int64 }

func keyOf(p geom.Point, eps float64) pointKey {
	scale := 1 / eps
	return pointKey{int64(p.X * scale), int64(p.Y * scale)}
}
