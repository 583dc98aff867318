package minimize

import (
	"math"
	"testing"
)

func TestBracketPoly2(t *testing.T) {
	for _, r := range testRanges {
		br := Bracket(Func(poly2), r[0], r[1])
		if !(br.FA > br.FB && br.FB < br.FC) {
			t.Errorf("range %v: not a bracket: f(a)=%v f(b)=%v f(c)=%v",
				r, br.FA, br.FB, br.FC)
		}
		lo := math.Min(br.A, br.C)
		hi := math.Max(br.A, br.C)
		if br.B < lo || br.B > hi {
			t.Errorf("range %v: midpoint %v outside [%v, %v]", r, br.B, lo, hi)
		}
		if br.Iterations < 1 {
			t.Errorf("range %v: iteration count %d, want >= 1", r, br.Iterations)
		}
	}
}

func TestBracketCosine(t *testing.T) {
	br := Bracket(Func(cosine), 0.01, 1.0)
	if !(br.FA > br.FB && br.FB < br.FC) {
		t.Fatalf("not a bracket: f(a)=%v f(b)=%v f(c)=%v", br.FA, br.FB, br.FC)
	}
	// The minimum at Pi must lie inside the returned interval.
	lo := math.Min(br.A, br.C)
	hi := math.Max(br.A, br.C)
	if math.Pi < lo || math.Pi > hi {
		t.Fatalf("Pi outside bracket [%v, %v]", lo, hi)
	}
}

func TestBracketSaw(t *testing.T) {
	for _, r := range testRanges {
		br := Bracket(Func(saw), r[0], r[1])
		if !(br.FA > br.FB && br.FB < br.FC) {
			t.Errorf("range %v: not a bracket: f(a)=%v f(b)=%v f(c)=%v",
				r, br.FA, br.FB, br.FC)
		}
	}
}

func TestBracketDownhillSwap(t *testing.T) {
	// With f increasing from a to b the routine must swap the pair and
	// search in the other direction.
	br := Bracket(Func(poly2), 1.5, 5.0)
	if !(br.FA > br.FB && br.FB < br.FC) {
		t.Fatalf("not a bracket: f(a)=%v f(b)=%v f(c)=%v", br.FA, br.FB, br.FC)
	}
}
