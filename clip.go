// Package clipping computes Boolean set operations — union,
// intersection, difference, symmetric difference, and divide — on
// planar regions bounded by contours of line and cubic-Bezier
// components.
//
// # Overview
//
// Clip takes a subject and a clipping set of contours and an
// Operation, and returns the contours bounding the resulting region.
// Internally it runs a Bentley-Ottmann-style sweep over both inputs'
// edges (internal/sweep), then reconnects the edges the sweep selects
// into closed output contours and orients them by nesting depth.
//
// # Quick Start
//
//	subject := []*contour.Contour{square}
//	clip := []*contour.Contour{circle}
//	result, err := clipping.Clip(context.Background(), subject, clip, clipping.OpIntersection, clipping.DefaultConfig())
//
// # Coordinate System
//
// Contours are plain (x, y) pairs in whatever units the caller works
// in; the engine has no notion of device pixels or a y-down convention.
//
// # Performance
//
// The sweep is O((n+k) log n) in the number of edges n and found
// intersections k, the same complexity class as the classical
// Bentley-Ottmann algorithm, generalized to curved edges by splitting
// each cubic into x/y-monotonic pieces before queuing it.
package clipping

import (
	"context"
	"errors"
	"fmt"

	"github.com/cetz-package/contourklip/contour"
	"github.com/cetz-package/contourklip/internal/sweep"
)

// Clip computes the Boolean operation op between subject and clipping,
// returning the output contours. For OpDivide it instead returns the
// three-way partition of subject ∪ clipping: the contours of subject
// minus clipping, clipping minus subject, and their intersection.
//
// Clip checks ctx for cancellation between sweep and connector phases
// and before each event the sweep processes.
func Clip(ctx context.Context, subject, clipping []*contour.Contour, op Operation, cfg Config) ([]*contour.Contour, error) {
	if op == OpDivide {
		return divide(ctx, subject, clipping, cfg)
	}

	sweepOp, ok := toOperation(op)
	if !ok {
		return nil, fmt.Errorf("clipping: unknown operation %d", op)
	}

	edges, err := runSweep(ctx, subject, clipping, sweepOp, cfg)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("clipping: %w", err)
	}

	contours, err := connect(edges, cfg.VertexMergeEps)
	if err != nil {
		return nil, err
	}
	return postprocess(contours, cfg), nil
}

// sweepErrorTranslations maps the sweep package's internal sentinel
// errors onto the public ones callers of this package match against:
// internal/sweep can't import clipping's own sentinels back (clipping
// already imports sweep), so it raises package-local equivalents that
// get translated here, at the one point where both packages meet.
var sweepErrorTranslations = [...]struct {
	internal error
	public   error
}{
	{sweep.ErrDegenerateSubcurve, ErrDegenerateSubcurve},
	{sweep.ErrInconsistentQueue, ErrInconsistentQueue},
	{sweep.ErrApproxCoincidentPoints, ErrApproxCoincidentPoints},
	{sweep.ErrSweepLineConflict, ErrSweepLineConflict},
}

func runSweep(ctx context.Context, subject, clipping []*contour.Contour, op sweep.Operation, cfg Config) ([]sweep.ResultEdge, error) {
	subjectSpans := toInputContours(subject)
	clippingSpans := toInputContours(clipping)
	tol := sweep.Tolerances{Intersect: cfg.VertexMergeEps, Subdivision: cfg.CurveSubdivisionTol}
	edges, err := sweep.Run(ctx, subjectSpans, clippingSpans, op, tol)
	if err != nil {
		for _, tr := range sweepErrorTranslations {
			if errors.Is(err, tr.internal) {
				return nil, fmt.Errorf("%w: %v", tr.public, err)
			}
		}
		return nil, err
	}
	return edges, nil
}

// divide computes the three-way partition of subject union clipping:
// subject minus clipping, clipping minus subject, and their
// intersection — by running the sweep and connector three times, the
// same reuse contourklip's divide() makes of its internal difference_2
// connector pass run against both orderings of its two inputs.
//
// clipping minus subject is computed by reusing the Difference sweep
// with its two inputs swapped, rather than a dedicated sweep
// operation: the in-result membership rule for "A minus B" is exactly
// the rule for "B minus A" with subject and clipping relabeled, so
// swapping the arguments is equivalent to adding a fourth Operation.
func divide(ctx context.Context, subject, clipping []*contour.Contour, cfg Config) ([]*contour.Contour, error) {
	diffEdges, err := runSweep(ctx, subject, clipping, sweep.Difference, cfg)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("clipping: %w", err)
	}
	revDiffEdges, err := runSweep(ctx, clipping, subject, sweep.Difference, cfg)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("clipping: %w", err)
	}
	interEdges, err := runSweep(ctx, subject, clipping, sweep.Intersection, cfg)
	if err != nil {
		return nil, err
	}

	diffContours, err := connect(diffEdges, cfg.VertexMergeEps)
	if err != nil {
		return nil, err
	}
	revDiffContours, err := connect(revDiffEdges, cfg.VertexMergeEps)
	if err != nil {
		return nil, err
	}
	interContours, err := connect(interEdges, cfg.VertexMergeEps)
	if err != nil {
		return nil, err
	}

	out := postprocess(diffContours, cfg)
	out = append(out, postprocess(revDiffContours, cfg)...)
	out = append(out, postprocess(interContours, cfg)...)
	return out, nil
}
