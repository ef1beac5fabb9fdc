// Package sweep implements the Bentley-Ottmann-style sweep-line executor
// at the heart of the clipping engine: it turns two polygons' worth of
// edges into a set of result edges tagged with the information the
// connector needs to stitch them back into output contours.
package sweep

import "github.com/cetz-package/contourklip/geom"

// PolygonID distinguishes which input polygon an edge came from.
type PolygonID int

const (
	Subject PolygonID = iota
	Clipping
)

// EdgeType classifies an edge relative to the *other* polygon, matching
// contourklip's NORMAL/SAME_TRANSITION/DIFFERENT_TRANSITION/NON_CONTRIBUTING
// taxonomy (used by the in_result membership table).
type EdgeType int

const (
	Normal EdgeType = iota
	NonContributing
	SameTransition
	DifferentTransition
)

// Edge is the geometric payload of one polygon edge: either a straight
// line or a single x/y-monotonic cubic piece. Exactly one of Line or
// Cubic is meaningful, selected by IsCubic.
type Edge struct {
	IsCubic bool
	Line    geom.Line
	Cubic   geom.Cubic
}

// PointAtX evaluates the edge's y coordinate at the given x, assuming x
// lies within the edge's monotonic x-range. For a line this is direct
// interpolation; for a cubic piece it inverts x via bisection (the
// piece is guaranteed x-monotonic by construction) and evaluates y at
// the resulting t.
func (e Edge) PointAtX(x float64) geom.Point {
	if !e.IsCubic {
		x0, x1 := e.Line.P0.X, e.Line.P1.X
		if x1 == x0 {
			return e.Line.P0
		}
		t := (x - x0) / (x1 - x0)
		return e.Line.Eval(t)
	}
	t := invertCubicX(e.Cubic, x)
	return e.Cubic.Eval(t)
}

func invertCubicX(c geom.Cubic, x float64) float64 {
	x0, x1 := c.P0.X, c.P3.X
	if x1 == x0 {
		return 0
	}
	lo, hi := 0.0, 1.0
	if x0 > x1 {
		lo, hi = 1.0, 0.0
	}
	for i := 0; i < 60; i++ {
		mid := 0.5 * (lo + hi)
		px := c.Eval(mid).X
		if (px < x) == (x0 < x1) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}

// sweepEvent is one endpoint of one edge, queued and processed by the
// sweep. Events are allocated individually (not inside a growable
// slice) so that *sweepEvent pointers handed out as "other" links and
// stored in the active-set tree remain valid across the whole sweep —
// the Go analogue of contourklip's append-only event deque.
type sweepEvent struct {
	point        geom.Point
	other        *sweepEvent // the edge's other endpoint event
	left         bool        // true if this event is the edge's left endpoint
	poly         PolygonID
	edge         Edge
	edgeType     EdgeType
	inside       bool // true if the *other* polygon's interior lies just below this edge
	inOut        bool // true if the polygon interior is below this edge, sweeping left-to-right
	otherInOut   bool // the in/out flag of the nearest edge below from the *other* polygon
	inResult     bool
	posInResult  int // index into the result edge list once built; -1 until assigned
	contourID    int         // index of the source contour, for grouping during connection
	seq          int64       // creation order, used only to break exact status-line ties
}

// newEventPair allocates a fresh left/right pair of events for the edge
// e running from p0 to p1, sharing a single Edge payload and wired to
// each other via other. It decides itself which endpoint is "left" in
// sweep order (via sweepLess) and returns the left event first.
func newEventPair(p0, p1 geom.Point, e Edge, poly PolygonID, contourID int, seqCounter *int64) (*sweepEvent, *sweepEvent) {
	*seqCounter++
	left := &sweepEvent{point: p0, poly: poly, edge: e, contourID: contourID, seq: *seqCounter}
	*seqCounter++
	right := &sweepEvent{point: p1, poly: poly, edge: e, contourID: contourID, seq: *seqCounter}
	left.other = right
	right.other = left
	if sweepLess(p1, p0) {
		left, right = right, left
	}
	left.left = true
	right.left = false
	return left, right
}

// sweepLess orders points the way the sweep processes them: by
// increasing x, then by increasing y.
func sweepLess(a, b geom.Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}
