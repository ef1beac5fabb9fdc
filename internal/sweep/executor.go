package sweep

import (
	"context"
	"fmt"

	"github.com/cetz-package/contourklip/geom"
	"github.com/cetz-package/contourklip/internal/xlog"
)

// InputContour is the minimal shape the sweep needs from a caller's
// contour: a closed loop of points connected by either straight or
// cubic-Bezier spans. The root package adapts contour.Contour to this
// before handing it to the executor, keeping this package free of a
// dependency on the public data model.
type InputSpan struct {
	IsCubic bool
	P0, P1  geom.Point
	C1, C2  geom.Point // control points, meaningful only if IsCubic
}

type InputContour struct {
	Spans []InputSpan
}

// ResultEdge is one edge of the sweep's output: a span tagged with
// enough bookkeeping for the connector to stitch edges back into
// contours and decide their nesting.
type ResultEdge struct {
	Edge         Edge
	ContourID    int
	PrevInResult int // index into the Result slice of the nearest result edge below, or -1
}

// Tolerances bundles the numerical tolerances the sweep and its
// geometry calls use; the root package derives these from its public
// Config rather than hardcoding them here.
type Tolerances struct {
	Intersect   float64 // parameter-range slack at which a candidate intersection is discarded as an endpoint touch
	Subdivision float64 // cubic-cubic intersection's bounding-box reject slack and near-duplicate root distance
}

// DefaultTolerances returns reasonable tolerances for callers that
// don't need to tune them.
func DefaultTolerances() Tolerances {
	return Tolerances{Intersect: 1e-9, Subdivision: 1e-7}
}

// Run executes the sweep over subject and clipping contours for the
// given operation, returning the tagged result edges for the connector
// to assemble into output contours.
func Run(ctx context.Context, subject, clipping []InputContour, op Operation, tol Tolerances) ([]ResultEdge, error) {
	var seq int64
	queue := newEventQueue()

	enqueue := func(contours []InputContour, poly PolygonID) error {
		for contourID, c := range contours {
			for _, span := range c.Spans {
				pieces, err := splitMonotonic(span, tol)
				if err != nil {
					return err
				}
				for _, e := range pieces {
					p0, p1 := spanEndpoints(e)
					left, right := newEventPair(p0, p1, e, poly, contourID, &seq)
					queue.push(left)
					queue.push(right)
				}
			}
		}
		return nil
	}
	if err := enqueue(subject, Subject); err != nil {
		return nil, err
	}
	if err := enqueue(clipping, Clipping); err != nil {
		return nil, err
	}

	status := newStatusLine()
	var result []ResultEdge

	for queue.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("sweep: %w", err)
		}

		e := queue.pop()
		status.setX(e.point.X)

		if e.left {
			if err := status.insert(e); err != nil {
				return nil, fmt.Errorf("sweep: %w", err)
			}
			above := status.above(e)
			below := status.below(e)

			computeFields(e, below)
			handleOverlap(e, above, below)

			checkIntersection(e, above, queue, &seq, tol)
			checkIntersection(e, below, queue, &seq, tol)
		} else {
			twin := e.other
			if twin == nil || !twin.left {
				return nil, fmt.Errorf("sweep: right event %v missing its left twin: %w", e.point, ErrInconsistentQueue)
			}
			status.setX(twin.point.X)
			above := status.above(twin)
			below := status.below(twin)
			checkIntersection(above, below, queue, &seq, tol)

			if inResult(twin, op) {
				twin.inResult = true
				twin.posInResult = len(result)
				prevIdx := -1
				if below != nil && below.inResult {
					prevIdx = below.posInResult
				}
				result = append(result, ResultEdge{
					Edge:         twin.edge,
					ContourID:    contourKey(twin),
					PrevInResult: prevIdx,
				})
			}
			status.remove(twin)
		}
	}

	xlog.Get().Debug("sweep complete", "resultEdges", len(result))
	return result, nil
}

// contourKey distinguishes source contours across both polygons so the
// connector never merges a subject loop with a clipping loop that
// merely share a numeric ContourID.
func contourKey(e *sweepEvent) int {
	if e.poly == Subject {
		return e.contourID * 2
	}
	return e.contourID*2 + 1
}

func spanEndpoints(e Edge) (geom.Point, geom.Point) {
	if e.IsCubic {
		return e.Cubic.P0, e.Cubic.P3
	}
	return e.Line.P0, e.Line.P1
}

// degenerateTol is the distance below which two points are treated as
// exactly coincident rather than merely numerically close — tight
// enough that it only catches true zero-length geometry, not ordinary
// short edges.
const degenerateTol = 1e-12

// splitMonotonic breaks a span into x-monotonic pieces (lines are
// always monotonic; a cubic is split at its x/y extrema). It rejects
// spans whose endpoints collapse to a single point (ErrDegenerateSubcurve)
// and, for straight spans, endpoints close enough to be numerically
// ambiguous against tol.Intersect without being exactly equal
// (ErrApproxCoincidentPoints) — the same distinction contourklip's
// input validation draws before ever queuing an edge.
func splitMonotonic(span InputSpan, tol Tolerances) ([]Edge, error) {
	if !span.IsCubic {
		dist := span.P0.Distance(span.P1)
		if dist <= degenerateTol {
			return nil, fmt.Errorf("line span at %v: %w", span.P0, ErrDegenerateSubcurve)
		}
		if dist < tol.Intersect {
			return nil, fmt.Errorf("line span %v-%v: %w", span.P0, span.P1, ErrApproxCoincidentPoints)
		}
		return []Edge{{IsCubic: false, Line: geom.Line{P0: span.P0, P1: span.P1}}}, nil
	}
	c := geom.Cubic{P0: span.P0, P1: span.C1, P2: span.C2, P3: span.P1}
	pieces := c.Split(c.MonotonicSplits())
	out := make([]Edge, len(pieces))
	for i, p := range pieces {
		if p.P0.Distance(p.P3) <= degenerateTol {
			return nil, fmt.Errorf("cubic subcurve at %v: %w", p.P0, ErrDegenerateSubcurve)
		}
		out[i] = Edge{IsCubic: true, Cubic: p}
	}
	return out, nil
}

// handleOverlap detects an incoming edge e that exactly coincides with
// a neighbor already in the status line (same two endpoints, opposite
// polygon), tagging both as SAME_TRANSITION/DIFFERENT_TRANSITION and
// demoting the duplicate to NON_CONTRIBUTING so only one copy of the
// shared boundary reaches the result.
func handleOverlap(e, above, below *sweepEvent) {
	for _, other := range [2]*sweepEvent{above, below} {
		if other == nil || other.poly == e.poly {
			continue
		}
		if !coincidentEdges(e, other) {
			continue
		}
		sameDirection := e.inOut == other.inOut
		if sameDirection {
			e.edgeType = SameTransition
			other.edgeType = NonContributing
		} else {
			e.edgeType = DifferentTransition
			other.edgeType = NonContributing
		}
		return
	}
}

func coincidentEdges(a, b *sweepEvent) bool {
	ap0, ap1 := spanEndpoints(a.edge)
	bp0, bp1 := spanEndpoints(b.edge)
	const eps = 1e-9
	if ap0.Equal(bp0, eps) && ap1.Equal(bp1, eps) {
		return true
	}
	if ap0.Equal(bp1, eps) && ap1.Equal(bp0, eps) {
		return true
	}
	return false
}

// checkIntersection looks for a crossing between a and b strictly
// inside both edges' open parameter range and, if found, splits both
// edges at the crossing point: each is truncated to end there, and a
// new edge continuing to the original endpoint is pushed back onto the
// queue. This is the standard Bentley-Ottmann re-insertion step that
// keeps the status line an accurate snapshot of the current sweep
// position.
func checkIntersection(a, b *sweepEvent, queue *eventQueue, seq *int64, tol Tolerances) {
	if a == nil || b == nil || a == b {
		return
	}
	inters := intersectEdges(a.edge, b.edge, tol)
	for _, in := range inters {
		if in.T <= tol.Intersect || in.T >= 1-tol.Intersect {
			continue
		}
		if in.U <= tol.Intersect || in.U >= 1-tol.Intersect {
			continue
		}
		splitEdgeAt(a, in.T, queue, seq)
		splitEdgeAt(b, in.U, queue, seq)
	}
}

// edgeSubsegment returns the portions of e on either side of parameter
// t, using each geometry's own Subsegment so cubic pieces keep an exact
// Bezier shape rather than being approximated by a chord.
func edgeSubsegment(e Edge, t float64) (before, after Edge) {
	if !e.IsCubic {
		return Edge{Line: e.Line.Subsegment(0, t)},
			Edge{Line: e.Line.Subsegment(t, 1)}
	}
	return Edge{IsCubic: true, Cubic: e.Cubic.Subsegment(0, t)},
		Edge{IsCubic: true, Cubic: e.Cubic.Subsegment(t, 1)}
}

func intersectEdges(a, b Edge, tol Tolerances) []geom.Intersection {
	switch {
	case !a.IsCubic && !b.IsCubic:
		return geom.IntersectLineLine(a.Line, b.Line)
	case !a.IsCubic && b.IsCubic:
		return geom.IntersectLineCubic(a.Line, b.Cubic)
	case a.IsCubic && !b.IsCubic:
		rev := geom.IntersectLineCubic(b.Line, a.Cubic)
		out := make([]geom.Intersection, len(rev))
		for i, in := range rev {
			out[i] = geom.Intersection{T: in.U, U: in.T, Point: in.Point}
		}
		return out
	default:
		return geom.IntersectCubicCubic(a.Cubic, b.Cubic, tol.Subdivision)
	}
}

// splitEdgeAt truncates the edge owning left-event le to its [0,t]
// piece (ending at the intersection), and introduces two new events at
// the split point: the truncated edge's new right endpoint, and the
// left endpoint of a new edge covering the [t,1] remainder back to le's
// original right endpoint. le and its original right event keep their
// identities (le may already be in the status line) — only their edge
// geometry, and one endpoint each, change.
func splitEdgeAt(le *sweepEvent, t float64, queue *eventQueue, seq *int64) {
	right := le.other
	before, after := edgeSubsegment(le.edge, t)
	splitPoint, _ := spanEndpoints(after)
	if start, _ := spanEndpoints(le.edge); start != le.point {
		before, after = after, before
	}

	*seq++
	midRight := &sweepEvent{point: splitPoint, left: false, poly: le.poly, edge: before, contourID: le.contourID, seq: *seq}
	*seq++
	midLeft := &sweepEvent{point: splitPoint, left: true, poly: le.poly, edge: after, contourID: le.contourID, seq: *seq}

	le.edge = before
	le.other = midRight
	midRight.other = le

	right.edge = after
	right.other = midLeft
	midLeft.other = right

	queue.push(midRight)
	queue.push(midLeft)
}
