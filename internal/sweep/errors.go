package sweep

import "errors"

// Sentinel errors surfaced by the executor, active-set, and queue
// machinery. The root clipping package owns the public ErrX sentinels
// callers match against, but clipping imports sweep — so sweep can't
// import clipping's sentinels back without a cycle. clip.go's runSweep
// translates these into the public ones via errors.Is at the package
// boundary.
var (
	ErrDegenerateSubcurve     = errors.New("sweep: degenerate subcurve")
	ErrInconsistentQueue      = errors.New("sweep: inconsistent event queue")
	ErrApproxCoincidentPoints = errors.New("sweep: approximately coincident points")
	ErrSweepLineConflict      = errors.New("sweep: sweep line ordering conflict")
)
