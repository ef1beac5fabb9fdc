package clipping

import (
	"testing"

	"github.com/cetz-package/contourklip/contour"
	"github.com/cetz-package/contourklip/geom"
)

func TestPostprocessPassesThroughSimpleContour(t *testing.T) {
	c := rectContour(0, 0, 1, 1)
	out := postprocess([]*contour.Contour{c}, DefaultConfig())
	if len(out) != 1 {
		t.Fatalf("expected 1 contour unchanged, got %d", len(out))
	}
}

func TestSplitSelfIntersections(t *testing.T) {
	// A figure-eight: revisits the origin once in the middle.
	c := contour.New(geom.Pt(0, 0))
	c.LineTo(geom.Pt(1, 1))
	c.LineTo(geom.Pt(2, 0))
	c.LineTo(geom.Pt(0, 0)) // revisit
	c.LineTo(geom.Pt(-1, 1))
	c.LineTo(geom.Pt(-2, 0))
	c.LineTo(geom.Pt(0, 0))

	pieces := splitSelfIntersections(c, 1e-9)
	if len(pieces) != 2 {
		t.Fatalf("expected the figure-eight to split into 2 loops, got %d", len(pieces))
	}
}

func TestCollapseCollinear(t *testing.T) {
	c := contour.New(geom.Pt(0, 0))
	c.LineTo(geom.Pt(1, 0))
	c.LineTo(geom.Pt(2, 0)) // collinear with the previous segment
	c.LineTo(geom.Pt(2, 1))

	out := collapseCollinear(c, 1e-9)
	if len(out.Components) != 2 {
		t.Fatalf("expected collinear run folded to 1 segment (2 total), got %d", len(out.Components))
	}
	if !out.Components[0].End().Equal(geom.Pt(2, 0), 1e-9) {
		t.Errorf("folded segment should end at (2,0), got %v", out.Components[0].End())
	}
}
