package clipping

import "testing"

func TestDefaultConfigPositiveTolerances(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.VertexMergeEps <= 0 {
		t.Error("VertexMergeEps should be positive")
	}
	if cfg.CurveSubdivisionTol <= 0 {
		t.Error("CurveSubdivisionTol should be positive")
	}
	if cfg.RootIsolationTol <= 0 {
		t.Error("RootIsolationTol should be positive")
	}
	if cfg.CollapseCollinear {
		t.Error("CollapseCollinear should default to false")
	}
}
