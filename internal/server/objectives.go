package server

import (
	"math"
	"sort"

	"github.com/copyleftdev/MNMZ/internal/minimize"
)

// The service exposes a catalog of named objective functions; requests
// pick one by name rather than shipping code. The catalog covers the
// shapes the minimizers are routinely exercised against: smooth
// single-minimum curves, a kinked curve, and a few low-dimensional
// bowls.

var scalarObjectives = map[string]minimize.Func{
	// Roots at 1 and 2, minimum at 1.5.
	"poly2": func(x float64) float64 { return (x - 1.0) * (x - 2.0) },
	// Minimum at Pi for x in [0, 2*Pi].
	"cosine": math.Cos,
	// Kinked at its minimum at zero.
	"saw": func(x float64) float64 {
		if x >= 0.0 {
			return x * x * x
		}
		return -x / 1000.0
	},
}

var derivObjectives = map[string]minimize.DerivFunc{
	"poly2": func(x float64) (float64, float64) {
		return (x - 1.0) * (x - 2.0), 2.0*x - 3.0
	},
	"cosine": func(x float64) (float64, float64) {
		return math.Cos(x), -math.Sin(x)
	},
}

var vectorObjectives = map[string]minimize.VectorFunc{
	"sphere": func(x []float64) float64 {
		sum := 0.0
		for _, v := range x {
			sum += v * v
		}
		return sum
	},
	// x^2 + y^4, minimum at the origin.
	"quartic": func(x []float64) float64 {
		return x[0]*x[0] + x[1]*x[1]*x[1]*x[1]
	},
	// x^2 + y^2 - 2x, minimum at (1, 0).
	"offset-bowl": func(x []float64) float64 {
		return x[0]*x[0] + x[1]*x[1] - 2.0*x[0]
	},
	"rosenbrock": func(x []float64) float64 {
		sum := 0.0
		for i := 0; i+1 < len(x); i++ {
			a := x[i+1] - x[i]*x[i]
			b := 1.0 - x[i]
			sum += 100.0*a*a + b*b
		}
		return sum
	},
}

// objectiveNames returns the sorted names of a catalog for listings
// and error messages.
func objectiveNames[F any](m map[string]F) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
