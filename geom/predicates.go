package geom

import (
	"math"

	"github.com/cetz-package/contourklip/internal/numerics"
)

// SignedArea returns twice the signed area of the triangle (a, b, c):
// positive when a->b->c turns counterclockwise, negative when clockwise,
// zero when collinear. Computed via a compensated difference of
// products to keep near-collinear points from flipping sign under
// cancellation.
func SignedArea(a, b, c Point) float64 {
	return numerics.DiffOfProducts(b.X-a.X, c.Y-a.Y, b.Y-a.Y, c.X-a.X)
}

// LeftOfLine reports whether c lies strictly to the left of the
// directed line a->b.
func LeftOfLine(a, b, c Point) bool {
	return SignedArea(a, b, c) > 0
}

// IsCollinear reports whether a, b, c are collinear to within eps,
// measured against the triangle's signed area rather than a raw
// cross-product threshold so the test scales with segment length.
func IsCollinear(a, b, c Point, eps float64) bool {
	area := SignedArea(a, b, c)
	scale := a.Distance(b) * a.Distance(c)
	if scale == 0 {
		return true
	}
	return math.Abs(area)/scale < eps
}
