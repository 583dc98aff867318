package simplex

import (
	"math"

	"github.com/copyleftdev/MNMZ/internal/minimize"
)

// tiny keeps the fractional-range denominator away from zero when the
// best and worst vertex values coincide at zero; it doubles as the
// tolerance floor.
const tiny = 1.0e-10

// Amoeba performs multidimensional minimization of f by the downhill
// simplex method of Nelder and Mead. The initial simplex is built from
// point by displacing each coordinate direction in turn by step. The
// search converges when the fractional range between the worst and
// best vertex values drops below ftol (floored at 1e-10), or stops
// after maxIter iterations; the cap is taken as given, with no
// implicit bound.
//
// Each iteration reflects the worst vertex through the centroid of the
// others, expanding on success, contracting on failure, and shrinking
// the whole simplex around the best vertex when even contraction does
// not help.
func Amoeba(f minimize.VectorObjective, point []float64, step, ftol float64, maxIter int) minimize.VectorResult {
	if ftol < tiny {
		ftol = tiny
	}
	ndim := len(point)
	s := New(point, step)

	y := make([]float64, ndim+1)
	for i := range y {
		y[i] = f.Eval(s.Vertex(i))
	}

	iterations := 0
	for ; iterations < maxIter; iterations++ {
		// Determine the worst (highest), next-worst, and best (lowest)
		// vertices.
		ilo := 0
		var ihi, inhi int
		if y[0] > y[1] {
			ihi, inhi = 0, 1
		} else {
			ihi, inhi = 1, 0
		}
		for i := 0; i <= ndim; i++ {
			if y[i] <= y[ilo] {
				ilo = i
			}
			if y[i] > y[ihi] {
				inhi = ihi
				ihi = i
			} else if y[i] > y[inhi] && i != ihi {
				inhi = i
			}
		}

		rtol := 2.0 * math.Abs(y[ihi]-y[ilo]) / (math.Abs(y[ihi]) + math.Abs(y[ilo]) + tiny)
		if rtol < ftol {
			// Converged; put the best vertex in slot 0.
			y[0], y[ilo] = y[ilo], y[0]
			s.Swap(0, ilo)
			break
		}

		// Reflect the worst vertex through the opposite face.
		ytry := amotry(s, y, f, ihi, -1.0)
		if ytry <= y[ilo] {
			// The reflection beat the best point: try an extra
			// expansion in the same direction.
			amotry(s, y, f, ihi, 2.0)
		} else if ytry >= y[inhi] {
			// The reflected point is still worse than the second-worst:
			// look for an intermediate lower point by contracting.
			ysave := y[ihi]
			ytry = amotry(s, y, f, ihi, 0.5)
			if ytry >= ysave {
				// Can't get rid of the high point; shrink the whole
				// simplex around the best vertex.
				for i := 0; i <= ndim; i++ {
					if i == ilo {
						continue
					}
					s.MoveToward(i, ilo)
					y[i] = f.Eval(s.Vertex(i))
				}
				s.recomputeSum()
			}
		}
	}

	best := 0
	for i := 1; i <= ndim; i++ {
		if y[i] < y[best] {
			best = i
		}
	}
	x := make([]float64, ndim)
	copy(x, s.Vertex(best))
	return minimize.VectorResult{X: x, F: y[best], Iterations: iterations}
}

// amotry extrapolates by the factor fac from the worst vertex through
// the centroid of the remaining vertices, and replaces the worst
// vertex if the trial point is an improvement.
func amotry(s *Simplex, y []float64, f minimize.VectorObjective, ihi int, fac float64) float64 {
	ndim := s.Dim()
	fac1 := (1.0 - fac) / float64(ndim)
	fac2 := fac1 - fac

	psum := s.Sum()
	ptry := make([]float64, ndim)
	for j := 0; j < ndim; j++ {
		ptry[j] = psum[j]*fac1 - s.At(ihi, j)*fac2
	}

	ytry := f.Eval(ptry)
	if ytry < y[ihi] {
		y[ihi] = ytry
		s.Replace(ihi, ptry)
	}
	return ytry
}
