// Package minimize implements classical one-dimensional function
// minimization: bracketing of a minimum, golden section search, and
// Brent's method with and without a user-supplied first derivative.
//
// The algorithms follow Numerical Recipes (Press et al., Cambridge
// University Press, 2007). All routines are synchronous, allocate no
// shared state, and report non-convergence by returning the best
// estimate found together with the iteration count actually used;
// a count equal to the cap is the caller's convergence-failure signal.
package minimize

// Objective is a scalar function to be minimized.
type Objective interface {
	// Eval returns the function value at x.
	Eval(x float64) float64
}

// DerivObjective is a scalar function that also reports its first
// derivative. Derivatives are never estimated numerically; callers
// must supply them.
type DerivObjective interface {
	// Eval returns the function value and first derivative at x.
	Eval(x float64) (f, df float64)
}

// VectorObjective is a scalar-valued function of a vector argument,
// used by the downhill simplex method.
type VectorObjective interface {
	// Eval returns the function value at point x.
	Eval(x []float64) float64
}

// Func adapts an ordinary function to the Objective interface.
type Func func(float64) float64

// Eval implements Objective.
func (f Func) Eval(x float64) float64 { return f(x) }

// DerivFunc adapts a function returning (value, derivative) to the
// DerivObjective interface.
type DerivFunc func(float64) (float64, float64)

// Eval implements DerivObjective.
func (f DerivFunc) Eval(x float64) (float64, float64) { return f(x) }

// VectorFunc adapts an ordinary vector function to VectorObjective.
type VectorFunc func([]float64) float64

// Eval implements VectorObjective.
func (f VectorFunc) Eval(x []float64) float64 { return f(x) }

// Result is the outcome of a one-dimensional search.
type Result struct {
	// X is the abscissa of the lowest function value found.
	X float64
	// F is the function value at X.
	F float64
	// Iterations is the number of refinement iterations performed.
	Iterations int
}

// VectorResult is the outcome of a multidimensional search.
type VectorResult struct {
	// X is the location of the lowest function value found.
	X []float64
	// F is the function value at X.
	F float64
	// Iterations is the number of iterations performed.
	Iterations int
}

// MinTolerance is the smallest fractional tolerance honored by the
// line searches: about the square root of double precision, from the
// Taylor expansion of f around a quadratic minimum. Asking for more
// accuracy than this wastes function evaluations.
const MinTolerance = 3.0e-8

const (
	defaultIterations = 500
	maxIterations     = 1000
)

// clampTolerance raises tol to the MinTolerance floor.
func clampTolerance(tol float64) float64 {
	if tol < MinTolerance {
		return MinTolerance
	}
	return tol
}

// clampIterations validates an iteration cap into [1, maxIterations],
// with zero (or negative) meaning "use the default".
func clampIterations(n int) int {
	if n < 1 {
		return defaultIterations
	}
	if n > maxIterations {
		return maxIterations
	}
	return n
}
