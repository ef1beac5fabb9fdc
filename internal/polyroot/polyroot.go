// Package polyroot isolates and refines the real roots of a univariate
// polynomial on [0, 1].
//
// The strategy follows the classical Bernstein-basis subdivision method:
// convert monomial coefficients to the Bernstein basis, recursively
// bisect counting sign changes (a Descartes'-rule bracket), and refine
// each bracketed interval with the ITP (Interpolate-Truncate-Project)
// method.
package polyroot

import "math"

// ToBernstein converts the coefficients of a degree-N monomial polynomial
// (coeffs[i] is the coefficient of t^i, ascending) to the coefficients of
// the same polynomial expressed in the Bernstein basis of degree N, via
// the standard O(N^2) triangular scheme.
func ToBernstein(coeffs []float64) []float64 {
	n := len(coeffs) - 1
	bernstein := make([]float64, n+1)
	for j := 0; j <= n; j++ {
		sum := 0.0
		for i := 0; i <= j; i++ {
			sum += binomial(j, i) / binomial(n, i) * coeffs[i]
		}
		bernstein[j] = sum
	}
	return bernstein
}

func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	result := 1.0
	for i := 0; i < k; i++ {
		result *= float64(n-i) / float64(i+1)
	}
	return result
}

// CasteljauSplit splits a Bernstein-basis coefficient sequence at t,
// returning the coefficients of the two resulting half-degree-preserving
// sub-polynomials over [0,t] and [t,1], each re-expressed in its own
// local Bernstein basis.
func CasteljauSplit(coeffs []float64, t float64) (left, right []float64) {
	n := len(coeffs)
	work := append([]float64(nil), coeffs...)
	left = make([]float64, n)
	right = make([]float64, n)
	left[0] = work[0]
	right[n-1] = work[n-1]

	for k := 1; k < n; k++ {
		for i := 0; i < n-k; i++ {
			work[i] = work[i]*(1-t) + work[i+1]*t
		}
		left[k] = work[0]
		right[n-1-k] = work[n-1-k]
	}
	return left, right
}

// signChanges counts sign changes in a Bernstein coefficient sequence,
// ignoring coefficients below the zero threshold and trimming leading
// and trailing near-zero entries first.
func signChanges(coeffs []float64, isZero func(float64) bool) int {
	var nonzero []float64
	for _, c := range coeffs {
		if !isZero(c) {
			nonzero = append(nonzero, c)
		}
	}
	changes := 0
	for i := 1; i < len(nonzero); i++ {
		if (nonzero[i] > 0) != (nonzero[i-1] > 0) {
			changes++
		}
	}
	return changes
}

// Interval is a bracketed root interval [Lo, Hi] of the original
// monomial polynomial, expressed in the original [0,1] parameter domain.
type Interval struct {
	Lo, Hi float64
}

// relZeroTol treats coefficients smaller than this in magnitude,
// relative to the largest coefficient, as zero for sign-counting
// purposes.
const relZeroTol = 1e-12

// bracketBezier recursively bisects [lo, hi] using De Casteljau
// subdivision of the Bernstein coefficients, emitting an Interval for
// each bracket containing exactly one sign change (or an endpoint root).
// abstol bounds how small an interval may shrink before bisection gives
// up (treated as a degenerate root at the interval's midpoint).
func bracketBezier(coeffs []float64, lo, hi, abstol float64, out *[]Interval) {
	maxAbs := 0.0
	for _, c := range coeffs {
		if a := math.Abs(c); a > maxAbs {
			maxAbs = a
		}
	}
	isZero := func(v float64) bool {
		if maxAbs == 0 {
			return true
		}
		return math.Abs(v) < relZeroTol*maxAbs
	}

	changes := signChanges(coeffs, isZero)
	n := len(coeffs) - 1

	loIsZero := isZero(coeffs[0])
	hiIsZero := isZero(coeffs[n])

	if changes == 0 {
		if loIsZero {
			*out = append(*out, Interval{lo, lo})
		}
		if hiIsZero && hi != lo {
			*out = append(*out, Interval{hi, hi})
		}
		return
	}

	if changes == 1 && !loIsZero && !hiIsZero {
		*out = append(*out, Interval{lo, hi})
		return
	}

	if hi-lo < abstol {
		mid := 0.5 * (lo + hi)
		*out = append(*out, Interval{mid, mid})
		return
	}

	mid := 0.5 * (lo + hi)
	left, right := CasteljauSplit(coeffs, 0.5)
	bracketBezier(left, lo, mid, abstol, out)
	bracketBezier(right, mid, hi, abstol, out)
}

// Eval evaluates the monomial polynomial (ascending coefficients) at x
// using Horner's method.
func Eval(coeffs []float64, x float64) float64 {
	result := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		result = result*x + coeffs[i]
	}
	return result
}

// itpRefine refines a single bracketed root of f within [a, b] (with
// f(a) and f(b) of opposite sign, or a==b already an exact root) using
// the ITP (Interpolate-Truncate-Project) method, a hybrid of
// regula-falsi and bisection with superlinear convergence guarantees.
func itpRefine(f func(float64) float64, a, b, eps float64, maxIter int) float64 {
	if a == b {
		return a
	}
	fa := f(a)
	fb := f(b)
	if fa == 0 {
		return a
	}
	if fb == 0 {
		return b
	}
	if fa*fb > 0 {
		// Not actually bracketed (can happen at the edge of a Bernstein
		// bracket whose endpoint evaluation disagrees slightly with the
		// Bernstein sign due to round-off) — fall back to the midpoint.
		return 0.5 * (a + b)
	}

	const (
		kappa1 = 0.1
		kappa2 = 2.0
	)
	aStart, bStart := a, b
	nMax := int(math.Ceil(math.Log2((b-a)/(2*eps)))) + 1
	n0 := 1
	nHalf := nMax + n0

	for i := 0; i < maxIter && b-a > 2*eps; i++ {
		if a < aStart || b > bStart {
			break
		}

		xHalf := 0.5 * (a + b)
		r := kappa1 * math.Pow(b-a, kappa2)

		// Interpolation (regula-falsi) point.
		xf := (fb*a - fa*b) / (fb - fa)

		delta := r
		var xt float64
		sigma := 1.0
		if xHalf-xf < 0 {
			sigma = -1.0
		}
		if delta <= math.Abs(xHalf-xf) {
			xt = xf + sigma*delta
		} else {
			xt = xHalf
		}

		rk := eps*math.Exp2(float64(nHalf-i)) - 0.5*(b-a) // safeguard margin (projection)
		var xItp float64
		if math.Abs(xt-xHalf) <= rk {
			xItp = xt
		} else {
			xItp = xHalf - sigma*rk
		}

		fItp := f(xItp)
		switch {
		case fItp == 0:
			return xItp
		case (fItp > 0) == (fa > 0):
			a = xItp
			fa = fItp
		default:
			b = xItp
			fb = fItp
		}
	}
	return 0.5 * (a + b)
}

// Isolate finds all real roots of the degree-N monomial polynomial
// coeffs (ascending coefficients) lying in [0, 1], refined to within eps
// via ITP. abstol bounds the smallest Bernstein-subdivision interval
// width before bisection gives up.
func Isolate(coeffs []float64, abstol, eps float64) []float64 {
	maxAbs := 0.0
	for _, c := range coeffs {
		if a := math.Abs(c); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		return nil
	}
	normalized := make([]float64, len(coeffs))
	for i, c := range coeffs {
		normalized[i] = c / maxAbs
	}

	bernstein := ToBernstein(normalized)

	var intervals []Interval
	bracketBezier(bernstein, 0, 1, abstol, &intervals)

	f := func(x float64) float64 { return Eval(normalized, x) }

	roots := make([]float64, 0, len(intervals))
	for _, iv := range intervals {
		if math.Abs(f(iv.Lo)) < abstol {
			roots = append(roots, iv.Lo)
			continue
		}
		if math.Abs(f(iv.Hi)) < abstol {
			roots = append(roots, iv.Hi)
			continue
		}
		root := itpRefine(f, iv.Lo, iv.Hi, eps, 1+int(math.Ceil(math.Log2((iv.Hi-iv.Lo)/(2*eps))))+4)
		roots = append(roots, root)
	}
	return roots
}
