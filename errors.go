package clipping

import "errors"

// Sentinel error kinds the engine can report. Each is wrapped with
// additional context via fmt.Errorf("...: %w", ErrX) at the point it's
// raised; callers can still match it with errors.Is.
var (
	// ErrDegenerateSubcurve is returned when an input contour contains a
	// span whose endpoints coincide: a zero-length line span, or a cubic
	// piece that collapses to a single point after monotonic splitting.
	ErrDegenerateSubcurve = errors.New("clipping: degenerate subcurve")

	// ErrInconsistentQueue is returned when the sweep's event queue is
	// left in a state the executor cannot make sense of (an edge's twin
	// event processed out of order).
	ErrInconsistentQueue = errors.New("clipping: inconsistent event queue")

	// ErrApproxCoincidentPoints is returned when two input vertices are
	// close enough to be numerically ambiguous but not equal, and the
	// engine cannot safely decide whether they should be merged.
	ErrApproxCoincidentPoints = errors.New("clipping: approximately coincident points")

	// ErrSweepLineConflict is returned when the active-set ordering
	// breaks down (two edges that should never compare equal do).
	ErrSweepLineConflict = errors.New("clipping: sweep line ordering conflict")

	// ErrConnectorHopMissing is returned when the connector cannot find
	// the next edge needed to close an output contour.
	ErrConnectorHopMissing = errors.New("clipping: connector could not find next edge")
)
