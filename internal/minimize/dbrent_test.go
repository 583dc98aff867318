package minimize

import (
	"math"
	"testing"
)

func TestBrentDerivPoly2(t *testing.T) {
	for _, r := range testRanges {
		res := BrentDeriv(DerivFunc(poly2Deriv), r[0], r[1], 0, 0)
		assertRelEq(t, res.X, 1.5, 1.0e-8)
		assertRelEq(t, res.F, -0.25, 1.0e-6)
	}
}

func TestBrentDerivCosine(t *testing.T) {
	res := BrentDeriv(DerivFunc(cosineDeriv), 0.01, 1.0, 0, 0)
	assertRelEq(t, res.X, math.Pi, 1.0e-8)
	assertAbsEq(t, res.F, -1.0, 1.0e-12)
}

func TestBrentDerivAgreesWithBrent(t *testing.T) {
	for _, r := range testRanges {
		d := BrentDeriv(DerivFunc(poly2Deriv), r[0], r[1], 0, 0)
		b := Brent(Func(poly2), r[0], r[1], 0, 0)
		assertRelEq(t, d.X, b.X, 1.0e-7)
	}
}

func TestBrentDerivIterationCap(t *testing.T) {
	res := BrentDeriv(DerivFunc(poly2Deriv), 10, 20, 0, 2)
	if res.Iterations > 2 {
		t.Fatalf("iteration cap ignored: ran %d iterations", res.Iterations)
	}
}

func TestBrentDerivIdempotent(t *testing.T) {
	first := BrentDeriv(DerivFunc(cosineDeriv), 0.01, 1.0, 0, 0)
	again := BrentDeriv(DerivFunc(cosineDeriv), first.X, first.X+1e-7, 0, 0)
	assertRelEq(t, again.X, first.X, 1.0e-6)
}
