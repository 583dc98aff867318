package minimize

import "math"

// The golden ratios.
const (
	rgold = 0.61803399
	cgold = 1.0 - rgold
)

// GoldenSection minimizes f by golden section search, starting from
// the initial abscissas a and b (a bracketing triple is found first
// with Bracket). The minimum is isolated to a fractional precision of
// about tol, floored at MinTolerance. maxIter of zero selects the
// default cap of 500; caps above 1000 are clamped.
//
// The bracket narrows by the factor 0.61803 per iteration, so the
// number of iterations grows only logarithmically with the initial
// interval width. No derivative is used.
func GoldenSection(f Objective, a, b, tol float64, maxIter int) Result {
	tol = clampTolerance(tol)
	maxIter = clampIterations(maxIter)

	br := Bracket(f, a, b)

	// At any given time we keep track of four points x0, x1, x2, x3.
	x0 := br.A
	x3 := br.C
	var x1, x2 float64

	// Make x0..x1 the smaller segment and fill in the new point to be tried.
	if math.Abs(br.C-br.B) > math.Abs(br.B-br.A) {
		x1 = br.B
		x2 = br.B + cgold*(br.C-br.B)
	} else {
		x2 = br.B
		x1 = br.B - cgold*(br.B-br.A)
	}

	// The initial function evaluations. The original endpoints are
	// never evaluated again.
	f1 := f.Eval(x1)
	f2 := f.Eval(x2)

	iterations := 1
	for math.Abs(x3-x0) > tol*(math.Abs(x1)+math.Abs(x2)) {
		if iterations >= maxIter {
			break
		}
		// Forced exit for objectives with a kink at the minimum, where
		// x1 and x2 collapse to zero and the fractional criterion above
		// can never be met.
		if iterations > 10 && math.Abs(x3-x0) < tol && math.Abs(f1-f2) < tol {
			break
		}
		if f2 < f1 {
			x0, x1, x2 = x1, x2, rgold*x2+cgold*x3
			f1, f2 = f2, f.Eval(x2)
		} else {
			x3, x2, x1 = x2, x1, rgold*x1+cgold*x0
			f2, f1 = f1, f.Eval(x1)
		}
		iterations++
	}

	// Output the better of the two innermost points.
	if f1 < f2 {
		return Result{X: x1, F: f1, Iterations: iterations}
	}
	return Result{X: x2, F: f2, Iterations: iterations}
}
