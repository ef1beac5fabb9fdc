package clipping

import (
	"context"
	"testing"

	"github.com/cetz-package/contourklip/contour"
	"github.com/cetz-package/contourklip/geom"
)

func rectContour(x0, y0, x1, y1 float64) *contour.Contour {
	c := contour.New(geom.Pt(x0, y0))
	c.LineTo(geom.Pt(x1, y0))
	c.LineTo(geom.Pt(x1, y1))
	c.LineTo(geom.Pt(x0, y1))
	c.Close(1e-9)
	return c
}

func TestClipDisjointIntersectionIsEmpty(t *testing.T) {
	subj := []*contour.Contour{rectContour(0, 0, 1, 1)}
	clip := []*contour.Contour{rectContour(5, 5, 6, 6)}

	out, err := Clip(context.Background(), subj, clip, OpIntersection, DefaultConfig())
	if err != nil {
		t.Fatalf("Clip returned error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("disjoint rectangles intersection should be empty, got %d contours", len(out))
	}
}

func TestClipOverlappingUnionProducesContour(t *testing.T) {
	subj := []*contour.Contour{rectContour(0, 0, 1, 1)}
	clip := []*contour.Contour{rectContour(0.5, 0.5, 1.5, 1.5)}

	out, err := Clip(context.Background(), subj, clip, OpUnion, DefaultConfig())
	if err != nil {
		t.Fatalf("Clip returned error: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("overlapping rectangles union should produce at least one contour")
	}
}

func TestClipUnknownOperation(t *testing.T) {
	subj := []*contour.Contour{rectContour(0, 0, 1, 1)}
	clip := []*contour.Contour{rectContour(0.5, 0.5, 1.5, 1.5)}

	_, err := Clip(context.Background(), subj, clip, Operation(99), DefaultConfig())
	if err == nil {
		t.Fatal("expected an error for an unrecognized Operation value")
	}
}

func TestClipContextCancelled(t *testing.T) {
	subj := []*contour.Contour{rectContour(0, 0, 1, 1)}
	clip := []*contour.Contour{rectContour(0.5, 0.5, 1.5, 1.5)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Clip(ctx, subj, clip, OpUnion, DefaultConfig())
	if err == nil {
		t.Fatal("expected an error from a pre-cancelled context")
	}
}

// TestClipDivide checks divide's three-way partition covers all of
// subject union clipping, not just subject: a subject rectangle of
// area 2 and a clipping rectangle of area 6 overlapping in a 1x1
// square (area 1) union to area 7 (2 + 6 - 1). divide's output pieces
// — subject-minus-clipping (area 1), clipping-minus-subject (area 5),
// and their intersection (area 1) — must sum to that same 7; a missing
// clipping-minus-subject pass would silently drop 5 of it.
func TestClipDivide(t *testing.T) {
	subj := []*contour.Contour{rectContour(0, 0, 2, 1)}
	clip := []*contour.Contour{rectContour(1, -1, 3, 2)}

	out, err := Clip(context.Background(), subj, clip, OpDivide, DefaultConfig())
	if err != nil {
		t.Fatalf("Clip(Divide) returned error: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("divide across an overlapping clip should produce at least one piece")
	}

	total := 0.0
	for _, c := range out {
		area := c.Area()
		if area < 0 {
			area = -area
		}
		total += area / 2
	}
	const wantUnionArea = 7.0
	const tol = 1e-6
	if total < wantUnionArea-tol || total > wantUnionArea+tol {
		t.Errorf("divide pieces' total area = %v, want %v (subject union clipping) — a missing pass would drop clipping-minus-subject", total, wantUnionArea)
	}
}
