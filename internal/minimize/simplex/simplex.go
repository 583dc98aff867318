// Package simplex implements the downhill simplex (Nelder-Mead)
// method of multidimensional minimization, after Numerical Recipes
// (Press et al., Cambridge University Press, 2007).
package simplex

import "gonum.org/v1/gonum/mat"

// Simplex is a set of ndim+1 vertices in ndim dimensions, stored as
// the rows of a dense matrix, together with the coordinate-wise sum of
// all vertices. The sum is maintained incrementally on every vertex
// replacement so trial points can be formed without rescanning the
// whole matrix.
type Simplex struct {
	verts *mat.Dense
	psum  []float64
	ndim  int
}

// New builds the initial simplex from a single starting point: vertex
// 0 is the point itself and vertex i (i >= 1) offsets coordinate i-1
// by step.
func New(point []float64, step float64) *Simplex {
	ndim := len(point)
	verts := mat.NewDense(ndim+1, ndim, nil)
	for i := 0; i <= ndim; i++ {
		verts.SetRow(i, point)
		if i > 0 {
			verts.Set(i, i-1, point[i-1]+step)
		}
	}
	s := &Simplex{verts: verts, psum: make([]float64, ndim), ndim: ndim}
	s.recomputeSum()
	return s
}

// Dim returns the dimensionality of the search space.
func (s *Simplex) Dim() int { return s.ndim }

// Vertex returns vertex i as a view into the backing matrix. The
// returned slice must not be mutated directly; use Replace.
func (s *Simplex) Vertex(i int) []float64 {
	return s.verts.RawRowView(i)
}

// At returns coordinate j of vertex i.
func (s *Simplex) At(i, j int) float64 { return s.verts.At(i, j) }

// Sum returns the cached coordinate-wise sum over all vertices.
func (s *Simplex) Sum() []float64 { return s.psum }

// Replace overwrites vertex i with p, updating the cached sum
// incrementally.
func (s *Simplex) Replace(i int, p []float64) {
	for j := 0; j < s.ndim; j++ {
		s.psum[j] += p[j] - s.verts.At(i, j)
	}
	s.verts.SetRow(i, p)
}

// MoveToward moves vertex i halfway toward vertex lo, in place. The
// caller is expected to recompute the sum once all moves of a shrink
// step are done.
func (s *Simplex) MoveToward(i, lo int) {
	for j := 0; j < s.ndim; j++ {
		s.verts.Set(i, j, 0.5*(s.verts.At(i, j)+s.verts.At(lo, j)))
	}
}

// Swap exchanges vertices i and j.
func (s *Simplex) Swap(i, j int) {
	if i == j {
		return
	}
	tmp := make([]float64, s.ndim)
	copy(tmp, s.verts.RawRowView(i))
	s.verts.SetRow(i, s.verts.RawRowView(j))
	s.verts.SetRow(j, tmp)
}

// recomputeSum rebuilds the vertex sum from scratch.
func (s *Simplex) recomputeSum() {
	for j := 0; j < s.ndim; j++ {
		sum := 0.0
		for i := 0; i <= s.ndim; i++ {
			sum += s.verts.At(i, j)
		}
		s.psum[j] = sum
	}
}
