package sweep

import (
	"fmt"

	"github.com/google/btree"
)

// statusLine is the sweep's active-edge set: every edge currently
// straddling the sweep line, ordered bottom-to-top (ascending y) at the current
// sweep x. Backed by google/btree for predecessor/successor queries,
// the same structure an independent sweep-line implementation in the
// retrieval pack (mikenye-geom2d's linesegment sweep) uses for its own
// active set.
type statusLine struct {
	tree *btree.BTreeG[*sweepEvent]
	x    float64 // the x coordinate comparisons are currently evaluated at
}

func newStatusLine() *statusLine {
	s := &statusLine{}
	s.tree = btree.NewG(32, func(a, b *sweepEvent) bool {
		return s.less(a, b)
	})
	return s
}

// less orders two left-events by the y coordinate their edges occupy
// at the status line's current x, breaking exact ties by identity so
// two distinct edges passing through the same point remain distinct
// tree keys.
func (s *statusLine) less(a, b *sweepEvent) bool {
	if a == b {
		return false
	}
	ay := a.edge.PointAtX(s.x).Y
	by := b.edge.PointAtX(s.x).Y
	if ay != by {
		return ay < by
	}
	// Tie-break on slope at the shared point so that near-tangent edges
	// still order consistently rather than flip-flopping with x.
	sa := edgeSlope(a)
	sb := edgeSlope(b)
	if sa != sb {
		return sa < sb
	}
	return a.seq < b.seq
}

func edgeSlope(e *sweepEvent) float64 {
	var d0, d1 float64
	if e.edge.IsCubic {
		t := e.edge.Cubic
		d := t.Deriv(0.5)
		d0, d1 = d.X, d.Y
	} else {
		l := e.edge.Line
		d := l.P1.Sub(l.P0)
		d0, d1 = d.X, d.Y
	}
	if d0 == 0 {
		return 0
	}
	return d1 / d0
}

// setX updates the x coordinate future comparisons use. It must be
// called before insert/remove/neighbor queries for a new event's x.
func (s *statusLine) setX(x float64) { s.x = x }

// insert adds e to the active set. ReplaceOrInsert silently replaces
// any existing tree item that compares neither less nor greater than
// e under less — which should never happen, since less always falls
// back to each event's unique seq when y and slope tie. If it ever
// does, two distinct edges have become indistinguishable to the
// active-set ordering, and the sweep can no longer trust its
// above/below neighbor queries.
func (s *statusLine) insert(e *sweepEvent) error {
	old, existed := s.tree.ReplaceOrInsert(e)
	if existed && old != e {
		return fmt.Errorf("status line: %v and %v compare equal at x=%v: %w", old.point, e.point, s.x, ErrSweepLineConflict)
	}
	return nil
}

func (s *statusLine) remove(e *sweepEvent) { s.tree.Delete(e) }

// above returns the edge immediately above e in the status order, or
// nil if e is topmost.
func (s *statusLine) above(e *sweepEvent) *sweepEvent {
	var found *sweepEvent
	s.tree.AscendGreaterOrEqual(e, func(item *sweepEvent) bool {
		if item != e {
			found = item
			return false
		}
		return true
	})
	return found
}

// below returns the edge immediately below e in the status order, or
// nil if e is bottommost.
func (s *statusLine) below(e *sweepEvent) *sweepEvent {
	var found *sweepEvent
	s.tree.DescendLessOrEqual(e, func(item *sweepEvent) bool {
		if item != e {
			found = item
			return false
		}
		return true
	})
	return found
}
