package sparse

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Norm kind tags for Norm, mirroring spec.md §4.1.
const (
	NormInf = 0
	NormL1  = 1
	NormL2  = 2
)

// SpMV computes y = A*x (accumulate == false) or y += A*x (accumulate ==
// true), visiting A column-wise. A column whose x entry is exactly zero is
// skipped, per spec.md; this is a correctness-preserving optimization
// since a zero multiplicand contributes nothing, not an approximation.
// SpMV never allocates and never returns an error; the caller is
// responsible for len(x) == n and len(y) == m.
func SpMV(y []float64, a *CSC, x []float64, accumulate bool) {
	m, n := a.Dims()
	if !accumulate {
		for i := 0; i < m; i++ {
			y[i] = 0
		}
	}
	for j := 0; j < n; j++ {
		xj := x[j]
		if xj == 0 {
			continue
		}
		lo, hi := a.colPtr[j], a.colPtr[j+1]
		for k := lo; k < hi; k++ {
			y[a.rowIdx[k]] += a.values[k] * xj
		}
	}
}

// DenseDot returns sum_i x[i]*y[i]; the empty vector dots to 0.
func DenseDot(x, y []float64) float64 {
	return floats.Dot(x, y)
}

// SparseDenseDot returns sum_k values[k]*y[indices[k]] for a sparse vector
// (indices, values) of length nnz against a dense y. Indices need not be
// sorted; per spec.md, duplicate indices are not expected and their effect
// is undefined (this implementation simply accumulates both entries,
// which is the natural reading of "undefined": not rejected, not
// deduplicated).
func SparseDenseDot(indices []int, values []float64, y []float64) float64 {
	var sum float64
	for k, idx := range indices {
		sum += values[k] * y[idx]
	}
	return sum
}

// Norm computes the L-infinity (kind == NormInf), L1 (kind == NormL1) or
// L2 (kind == NormL2) norm of x. L1 and L2 are delegated to
// floats.Norm(x, 1) and floats.Norm(x, 2), which already guards the
// Euclidean case against overflow on large entries via math.Hypot. The
// L-infinity case is not delegated to floats.Norm(x, math.Inf(1)): that
// path returns the plain (signed) maximum via floats.Max rather than the
// maximum magnitude, so it is computed here directly with floats.Max
// over the magnitudes.
func Norm(x []float64, kind int) float64 {
	switch kind {
	case NormInf:
		if len(x) == 0 {
			return 0
		}
		abs := make([]float64, len(x))
		for i, v := range x {
			abs[i] = math.Abs(v)
		}
		m, _ := floats.Max(abs)
		return m
	case NormL1:
		return floats.Norm(x, 1)
	case NormL2:
		return floats.Norm(x, 2)
	default:
		panic("sparse: unknown norm kind")
	}
}
