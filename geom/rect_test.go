package geom

import "testing"

func TestRectUnion(t *testing.T) {
	r1 := NewRect(Pt(0, 0), Pt(1, 1))
	r2 := NewRect(Pt(2, 2), Pt(3, 3))
	u := r1.Union(r2)
	if !pointsEqual(u.Min, Pt(0, 0), 1e-12) || !pointsEqual(u.Max, Pt(3, 3), 1e-12) {
		t.Errorf("Union = %+v, want Min(0,0) Max(3,3)", u)
	}
}

func TestRectIntersects(t *testing.T) {
	r1 := NewRect(Pt(0, 0), Pt(1, 1))
	r2 := NewRect(Pt(0.5, 0.5), Pt(2, 2))
	r3 := NewRect(Pt(5, 5), Pt(6, 6))

	if !r1.Intersects(r2, 1e-9) {
		t.Error("overlapping rects reported as not intersecting")
	}
	if r1.Intersects(r3, 1e-9) {
		t.Error("disjoint rects reported as intersecting")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(Pt(0, 0), Pt(2, 2))
	if !r.Contains(Pt(1, 1)) {
		t.Error("Contains(1,1) = false, want true")
	}
	if r.Contains(Pt(3, 1)) {
		t.Error("Contains(3,1) = true, want false")
	}
}
