package contour

import (
	"math"
	"testing"

	"github.com/cetz-package/contourklip/geom"
)

func unitSquare() *Contour {
	c := New(geom.Pt(0, 0))
	c.LineTo(geom.Pt(1, 0))
	c.LineTo(geom.Pt(1, 1))
	c.LineTo(geom.Pt(0, 1))
	c.Close(1e-9)
	return c
}

func TestContourClosed(t *testing.T) {
	c := unitSquare()
	if !c.Closed(1e-9) {
		t.Error("square contour should be closed")
	}
}

func TestContourClose(t *testing.T) {
	c := New(geom.Pt(0, 0))
	c.LineTo(geom.Pt(1, 0))
	c.LineTo(geom.Pt(1, 1))
	if c.Closed(1e-9) {
		t.Fatal("contour should not be closed before Close")
	}
	c.Close(1e-9)
	if !c.Closed(1e-9) {
		t.Error("Close should make the contour closed")
	}

	// Close on an already-closed contour must be a no-op.
	n := len(c.Components)
	c.Close(1e-9)
	if len(c.Components) != n {
		t.Errorf("Close on already-closed contour added a component: %d -> %d", n, len(c.Components))
	}
}

func TestContourArea(t *testing.T) {
	c := unitSquare()
	area := c.Area() / 2
	if math.Abs(math.Abs(area)-1) > 1e-9 {
		t.Errorf("unit square area = %v, want magnitude 1", area)
	}
	if area <= 0 {
		t.Errorf("counterclockwise square should have positive area, got %v", area)
	}
}

func TestContourReversed(t *testing.T) {
	c := unitSquare()
	rev := c.Reversed()

	areaOrig := c.Area()
	areaRev := rev.Area()
	if math.Abs(areaOrig+areaRev) > 1e-9 {
		t.Errorf("reversed contour area should negate: %v vs %v", areaOrig, areaRev)
	}

	if !rev.Start.Equal(c.End(), 1e-9) {
		t.Errorf("reversed contour should start where original ended: %v vs %v", rev.Start, c.End())
	}
}

func TestContourWithCubic(t *testing.T) {
	c := New(geom.Pt(0, 0))
	c.CubicTo(geom.Pt(0, 1), geom.Pt(1, 1), geom.Pt(1, 0))
	c.Close(1e-9)

	if len(c.Components) != 2 {
		t.Fatalf("expected 2 components (cubic + closing line), got %d", len(c.Components))
	}

	rev := c.Reversed()
	cubic, ok := rev.Components[1].(CubicTo)
	if !ok {
		t.Fatalf("expected reversed second component to be a CubicTo, got %T", rev.Components[1])
	}
	if !cubic.C1.Equal(geom.Pt(1, 1), 1e-9) || !cubic.C2.Equal(geom.Pt(0, 1), 1e-9) {
		t.Errorf("reversed cubic control points = (%v, %v), want swapped (1,1),(0,1)", cubic.C1, cubic.C2)
	}
}
