package sweep

import (
	"errors"
	"testing"

	"github.com/cetz-package/contourklip/geom"
)

func lineEvent(x0, y0, x1, y1 float64, seq int64) *sweepEvent {
	return &sweepEvent{
		point: geom.Pt(x0, y0),
		edge:  Edge{Line: geom.Line{P0: geom.Pt(x0, y0), P1: geom.Pt(x1, y1)}},
		seq:   seq,
	}
}

func TestStatusLineOrdering(t *testing.T) {
	s := newStatusLine()
	s.setX(0)

	low := lineEvent(0, 0, 1, 0, 1)
	high := lineEvent(0, 5, 1, 5, 2)

	if err := s.insert(low); err != nil {
		t.Fatalf("insert(low) returned error: %v", err)
	}
	if err := s.insert(high); err != nil {
		t.Fatalf("insert(high) returned error: %v", err)
	}

	if got := s.above(low); got != high {
		t.Errorf("above(low) = %v, want high", got)
	}
	if got := s.below(high); got != low {
		t.Errorf("below(high) = %v, want low", got)
	}
	if s.above(high) != nil {
		t.Error("above(high) should be nil — high is topmost")
	}
	if s.below(low) != nil {
		t.Error("below(low) should be nil — low is bottommost")
	}
}

func TestStatusLineRemove(t *testing.T) {
	s := newStatusLine()
	s.setX(0)

	a := lineEvent(0, 0, 1, 0, 1)
	b := lineEvent(0, 1, 1, 1, 2)
	if err := s.insert(a); err != nil {
		t.Fatalf("insert(a) returned error: %v", err)
	}
	if err := s.insert(b); err != nil {
		t.Fatalf("insert(b) returned error: %v", err)
	}
	s.remove(a)

	if s.below(b) != nil {
		t.Error("after removing a, b should have no neighbor below")
	}
}

// TestStatusLineConflict checks that insert reports ErrSweepLineConflict
// when two distinct events become indistinguishable under less (same y,
// same slope, and — as a stand-in for a corrupted seq counter — the
// same seq), rather than silently letting one displace the other.
func TestStatusLineConflict(t *testing.T) {
	s := newStatusLine()
	s.setX(0)

	a := lineEvent(0, 0, 1, 0, 7)
	b := lineEvent(0, 0, 1, 0, 7)

	if err := s.insert(a); err != nil {
		t.Fatalf("insert(a) returned error: %v", err)
	}
	if err := s.insert(b); !errors.Is(err, ErrSweepLineConflict) {
		t.Errorf("insert(b) error = %v, want ErrSweepLineConflict", err)
	}
}
