package geom

import "testing"

func straightCubic() Cubic {
	// A cubic that traces the straight segment (0,0)-(3,0), with control
	// points evenly spaced, so Eval/Subdivide results are easy to check.
	return Cubic{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}
}

func TestCubicEvalEndpoints(t *testing.T) {
	c := straightCubic()
	if !pointsEqual(c.Eval(0), c.P0, 1e-12) {
		t.Errorf("Eval(0) = %v, want %v", c.Eval(0), c.P0)
	}
	if !pointsEqual(c.Eval(1), c.P3, 1e-12) {
		t.Errorf("Eval(1) = %v, want %v", c.Eval(1), c.P3)
	}
	if !pointsEqual(c.Eval(0.5), Pt(1.5, 0), 1e-12) {
		t.Errorf("Eval(0.5) = %v, want (1.5,0)", c.Eval(0.5))
	}
}

func TestCubicSubdivide(t *testing.T) {
	c := straightCubic()
	left, right := c.Subdivide(0.5)

	if !pointsEqual(left.P0, c.P0, 1e-12) {
		t.Errorf("left.P0 = %v, want %v", left.P0, c.P0)
	}
	if !pointsEqual(left.P3, right.P0, 1e-12) {
		t.Errorf("left.P3 = %v != right.P0 = %v", left.P3, right.P0)
	}
	if !pointsEqual(right.P3, c.P3, 1e-12) {
		t.Errorf("right.P3 = %v, want %v", right.P3, c.P3)
	}

	// The split point must agree with direct evaluation at t=0.5.
	if !pointsEqual(left.P3, c.Eval(0.5), 1e-9) {
		t.Errorf("split point = %v, want Eval(0.5) = %v", left.P3, c.Eval(0.5))
	}
}

func TestCubicSubsegment(t *testing.T) {
	c := straightCubic()
	sub := c.Subsegment(0.25, 0.75)
	if !pointsEqual(sub.P0, c.Eval(0.25), 1e-9) {
		t.Errorf("Subsegment.P0 = %v, want %v", sub.P0, c.Eval(0.25))
	}
	if !pointsEqual(sub.P3, c.Eval(0.75), 1e-9) {
		t.Errorf("Subsegment.P3 = %v, want %v", sub.P3, c.Eval(0.75))
	}
}

func TestCubicBoundingBox(t *testing.T) {
	// A symmetric S-curve bulging both left and right of its chord.
	c := Cubic{Pt(0, 0), Pt(-1, 1), Pt(2, 1), Pt(1, 0)}
	box := c.BoundingBox()
	if box.Max.X < 1 || box.Min.X > -0.2 {
		t.Errorf("bounding box X range too tight: %+v", box)
	}
}

func TestCubicExtrema(t *testing.T) {
	// A pure vertical bump: x never varies, y has one interior extremum.
	c := Cubic{Pt(0, 0), Pt(0, 3), Pt(0, 3), Pt(0, 0)}
	extrema := c.Extrema()
	if len(extrema) == 0 {
		t.Fatal("expected at least one extremum for a symmetric bump")
	}
	for _, e := range extrema {
		if e <= 0 || e >= 1 {
			t.Errorf("extremum %v outside (0,1)", e)
		}
	}
}

func TestCubicSplit(t *testing.T) {
	c := straightCubic()
	pieces := c.Split([]float64{0.3, 0.6})
	if len(pieces) != 3 {
		t.Fatalf("Split into 2 points should give 3 pieces, got %d", len(pieces))
	}
	if !pointsEqual(pieces[0].P0, c.P0, 1e-12) {
		t.Errorf("first piece start = %v, want %v", pieces[0].P0, c.P0)
	}
	if !pointsEqual(pieces[2].P3, c.P3, 1e-12) {
		t.Errorf("last piece end = %v, want %v", pieces[2].P3, c.P3)
	}
	if !pointsEqual(pieces[0].P3, pieces[1].P0, 1e-9) {
		t.Errorf("piece 0/1 boundary mismatch: %v vs %v", pieces[0].P3, pieces[1].P0)
	}
	if !pointsEqual(pieces[1].P3, pieces[2].P0, 1e-9) {
		t.Errorf("piece 1/2 boundary mismatch: %v vs %v", pieces[1].P3, pieces[2].P0)
	}
}
