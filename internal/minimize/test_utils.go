package minimize

import (
	"math"
	"testing"
)

// poly2 has roots 1 and 2 and its minimum at 1.5.
func poly2(x float64) float64 { return (x - 1.0) * (x - 2.0) }

// poly2Deriv returns poly2 with its derivative 2x-3.
func poly2Deriv(x float64) (float64, float64) { return (x - 1.0) * (x - 2.0), 2.0*x - 3.0 }

// cosine has its minimum at Pi for x in [0, 2*Pi].
func cosine(x float64) float64 { return math.Cos(x) }

// cosineDeriv returns cos(x) with its derivative -sin(x).
func cosineDeriv(x float64) (float64, float64) { return math.Cos(x), -math.Sin(x) }

// saw is non-smooth: x^3 for x >= 0 and -x/1000 for x < 0, with a kink
// at its minimum at zero. It defeats the fractional tolerance test and
// exercises the forced-exit heuristics.
func saw(x float64) float64 {
	if x >= 0.0 {
		return x * x * x
	}
	return -x / 1000.0
}

// testRanges cover reversed order and widely disparate magnitudes.
var testRanges = [][2]float64{
	{10, 20},
	{20, 10},
	{-10, 0},
	{-2000, -1000},
	{-10000, 30000},
	{0.0001, 0.0002},
	{-0.00001, 1.4999},
}

// assertRelEq fails the test when got is not within relative tolerance
// tol of want.
func assertRelEq(t *testing.T, got, want, tol float64) {
	t.Helper()
	denom := math.Abs(want)
	if denom == 0 {
		denom = 1
	}
	if math.Abs(got-want)/denom > tol {
		t.Fatalf("got %v, want %v (relative tolerance %v)", got, want, tol)
	}
}

// assertAbsEq fails the test when got is not within absolute tolerance
// tol of want.
func assertAbsEq(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("got %v, want %v (absolute tolerance %v)", got, want, tol)
	}
}

// countingObjective wraps an Objective and counts evaluations.
type countingObjective struct {
	f Objective
	n int
}

func (c *countingObjective) Eval(x float64) float64 {
	c.n++
	return c.f.Eval(x)
}
