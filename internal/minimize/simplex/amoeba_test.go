package simplex

import (
	"math"
	"testing"

	"github.com/copyleftdev/MNMZ/internal/minimize"
)

// quartic is x^2 + y^4, positive everywhere except the origin.
func quartic(x []float64) float64 {
	return x[0]*x[0] + x[1]*x[1]*x[1]*x[1]
}

// offsetBowl is x^2 + y^2 - 2x, with its minimum at (1, 0).
func offsetBowl(x []float64) float64 {
	return x[0]*x[0] + x[1]*x[1] - 2.0*x[0]
}

func sphere(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	return sum
}

func TestAmoebaQuartic(t *testing.T) {
	res := Amoeba(minimize.VectorFunc(quartic), []float64{100, -100}, 1.0, 1.0e-8, 100)
	for i, want := range []float64{0, 0} {
		if math.Abs(res.X[i]-want) > 1.0e-4 {
			t.Errorf("coordinate %d: got %v, want %v", i, res.X[i], want)
		}
	}
	if res.F < 0 {
		t.Errorf("minimum value %v below the function's range", res.F)
	}
}

func TestAmoebaOffsetBowl(t *testing.T) {
	res := Amoeba(minimize.VectorFunc(offsetBowl), []float64{10, 10}, 0.1, 1.0e-9, 100)
	for i, want := range []float64{1, 0} {
		if math.Abs(res.X[i]-want) > 1.0e-4 {
			t.Errorf("coordinate %d: got %v, want %v", i, res.X[i], want)
		}
	}
	if math.Abs(res.F-(-1.0)) > 1.0e-6 {
		t.Errorf("minimum value: got %v, want -1", res.F)
	}
}

func TestAmoebaSphereHighDim(t *testing.T) {
	start := []float64{3, -2, 5, -4, 1}
	res := Amoeba(minimize.VectorFunc(sphere), start, 0.5, 1.0e-10, 2000)
	for i, v := range res.X {
		if math.Abs(v) > 1.0e-3 {
			t.Errorf("coordinate %d: got %v, want 0", i, v)
		}
	}
}

func TestAmoebaIterationCapHonored(t *testing.T) {
	// The cap is taken as given; with no iterations allowed the result
	// is simply the best of the initial vertices.
	res := Amoeba(minimize.VectorFunc(sphere), []float64{2, 2}, 1.0, 1.0e-10, 0)
	if res.Iterations != 0 {
		t.Fatalf("iterations = %d, want 0", res.Iterations)
	}
	if res.F > sphere([]float64{2, 2}) {
		t.Fatalf("result worse than the starting vertex: %v", res.F)
	}
}

func TestAmoebaZeroMinimumConverges(t *testing.T) {
	// Both best and worst values approach zero at the minimum; the
	// fractional-range denominator floor must keep the convergence test
	// well defined.
	res := Amoeba(minimize.VectorFunc(sphere), []float64{0.001, -0.001}, 0.001, 1.0e-10, 500)
	if res.Iterations >= 500 {
		t.Fatalf("did not converge within the cap: %d iterations", res.Iterations)
	}
	for i, v := range res.X {
		if math.Abs(v) > 1.0e-4 {
			t.Errorf("coordinate %d: got %v, want 0", i, v)
		}
	}
}

func TestAmoebaIdempotent(t *testing.T) {
	first := Amoeba(minimize.VectorFunc(offsetBowl), []float64{10, 10}, 0.1, 1.0e-9, 200)
	again := Amoeba(minimize.VectorFunc(offsetBowl), first.X, 1.0e-6, 1.0e-9, 200)
	for i := range first.X {
		if math.Abs(again.X[i]-first.X[i]) > 1.0e-4 {
			t.Errorf("coordinate %d drifted: %v -> %v", i, first.X[i], again.X[i])
		}
	}
}

func TestSimplexBookkeeping(t *testing.T) {
	s := New([]float64{1, 2, 3}, 0.5)
	if s.Dim() != 3 {
		t.Fatalf("dim = %d, want 3", s.Dim())
	}
	// Vertex 0 is the starting point; vertex i offsets axis i-1.
	for j, want := range []float64{1, 2, 3} {
		if s.At(0, j) != want {
			t.Errorf("vertex 0 coordinate %d: got %v, want %v", j, s.At(0, j), want)
		}
	}
	if s.At(2, 1) != 2.5 {
		t.Errorf("vertex 2 coordinate 1: got %v, want 2.5", s.At(2, 1))
	}

	// Replace keeps the cached sum in line with a from-scratch total.
	s.Replace(1, []float64{-4, 0, 7})
	for j := 0; j < s.Dim(); j++ {
		sum := 0.0
		for i := 0; i <= s.Dim(); i++ {
			sum += s.At(i, j)
		}
		if math.Abs(s.Sum()[j]-sum) > 1.0e-12 {
			t.Errorf("cached sum[%d] = %v, recomputed %v", j, s.Sum()[j], sum)
		}
	}

	s.Swap(0, 3)
	if s.At(0, 2) != 3.5 {
		t.Errorf("swap: vertex 0 coordinate 2 = %v, want 3.5", s.At(0, 2))
	}
}
