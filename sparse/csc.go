// Package sparse provides the compressed sparse matrix representation and
// the primitive numerical kernels (SpMV, dot products, norms, index sorts)
// that every upper layer of the solver is built on.
package sparse

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrShape reports a CSC whose col_ptr/row_idx/values arrays are
	// inconsistent with the stated dimensions.
	ErrShape = errors.New("sparse: size mismatch")
	// ErrNotMonotone reports a col_ptr that is not non-decreasing, or does
	// not start at zero and end at nnz.
	ErrNotMonotone = errors.New("sparse: col_ptr is not monotone")
	// ErrRowIndex reports a row_idx entry outside [0, m).
	ErrRowIndex = errors.New("sparse: row index out of range")
	// ErrNotFinite reports a non-finite coefficient.
	ErrNotFinite = errors.New("sparse: coefficient is not finite")
)

// Sense is a constraint row sense, one of '<', '=', '>'.
type Sense byte

const (
	LE Sense = '<'
	EQ Sense = '='
	GE Sense = '>'
)

// CSC is a read-only-to-the-solver compressed-sparse-column matrix, laid
// out exactly as spec'd: colPtr[0..n] is monotone non-decreasing with
// colPtr[0] == 0 and colPtr[n] == nnz; rowIdx[0..nnz) takes values in
// [0, m); values[0..nnz) are finite.
//
// A CSC may lazily own a row-major (CSR) view built by ToCSR; any mutating
// method invalidates that view atomically (it is freed, not left dangling).
type CSC struct {
	m, n   int
	colPtr []int
	rowIdx []int
	values []float64

	csr      *CSR
	csrValid bool
}

// NewCSC validates and wraps the given CSC arrays. The arrays are used as
// the backing storage of the returned matrix; the caller must not mutate
// them afterwards except through the returned CSC's methods.
func NewCSC(m, n int, colPtr, rowIdx []int, values []float64) (*CSC, error) {
	if m < 0 || n < 0 {
		return nil, ErrShape
	}
	if len(colPtr) != n+1 {
		return nil, fmt.Errorf("%w: len(col_ptr)=%d, want %d", ErrShape, len(colPtr), n+1)
	}
	if len(rowIdx) != len(values) {
		return nil, fmt.Errorf("%w: len(row_idx)=%d, len(values)=%d", ErrShape, len(rowIdx), len(values))
	}
	if colPtr[0] != 0 {
		return nil, ErrNotMonotone
	}
	nnz := colPtr[n]
	if nnz != len(rowIdx) {
		return nil, fmt.Errorf("%w: col_ptr[n]=%d, nnz=%d", ErrShape, nnz, len(rowIdx))
	}
	for j := 0; j < n; j++ {
		if colPtr[j+1] < colPtr[j] {
			return nil, ErrNotMonotone
		}
	}
	for k, r := range rowIdx {
		if r < 0 || r >= m {
			return nil, ErrRowIndex
		}
		if math.IsNaN(values[k]) || math.IsInf(values[k], 0) {
			return nil, ErrNotFinite
		}
	}
	return &CSC{m: m, n: n, colPtr: colPtr, rowIdx: rowIdx, values: values}, nil
}

// Dims returns (rows, cols).
func (c *CSC) Dims() (int, int) { return c.m, c.n }

// NNZ returns the number of stored (structurally nonzero) entries.
func (c *CSC) NNZ() int { return len(c.values) }

// Col returns the row indices and values of column j, as slices sharing
// storage with the matrix. The caller must not retain them past the next
// mutation of c.
func (c *CSC) Col(j int) (rowIdx []int, values []float64) {
	lo, hi := c.colPtr[j], c.colPtr[j+1]
	return c.rowIdx[lo:hi], c.values[lo:hi]
}

// ColPtr, RowIdx and Values expose the raw CSC arrays, read-only.
func (c *CSC) ColPtr() []int      { return c.colPtr }
func (c *CSC) RowIdx() []int      { return c.rowIdx }
func (c *CSC) Values() []float64  { return c.values }

// SetValue overwrites the value at storage position k (an index into
// RowIdx/Values, e.g. as returned by Col) in place. It invalidates any
// cached CSR view: spec.md leaves the exact invalidation trigger an open
// question (any coefficient write vs. only sparsity-changing writes); this
// implementation takes the conservative reading and invalidates on every
// write, since a stale CSR silently returning wrong values is worse than
// an extra rebuild.
func (c *CSC) SetValue(k int, v float64) error {
	if k < 0 || k >= len(c.values) {
		return ErrShape
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNotFinite
	}
	c.values[k] = v
	c.invalidateCSR()
	return nil
}

// NegateColumn multiplies every entry of column j by -1 and invalidates
// any cached CSR view. Row-sense normalization does not use it: negating
// a row is a scatter across every column's entries, which NormalizeSenses
// below performs directly.
func (c *CSC) NegateColumn(j int) {
	lo, hi := c.colPtr[j], c.colPtr[j+1]
	for k := lo; k < hi; k++ {
		c.values[k] = -c.values[k]
	}
	c.invalidateCSR()
}

func (c *CSC) invalidateCSR() {
	if c.csr != nil {
		c.csr.valid = false
	}
	c.csr = nil
	c.csrValid = false
}

// NormalizeSenses rewrites '>' rows to '<' in place by negating every
// coefficient in that row of A and the corresponding entry of rhs,
// preserving semantics (spec.md §3). It returns the updated senses.
func NormalizeSenses(a *CSC, rhs []float64, senses []Sense) []Sense {
	m, n := a.Dims()
	if len(rhs) != m || len(senses) != m {
		panic("sparse: rhs/senses length mismatch")
	}
	flip := make([]bool, m)
	out := make([]Sense, m)
	for r, s := range senses {
		if s == GE {
			flip[r] = true
			out[r] = LE
			rhs[r] = -rhs[r]
		} else {
			out[r] = s
		}
	}
	for j := 0; j < n; j++ {
		lo, hi := a.colPtr[j], a.colPtr[j+1]
		for k := lo; k < hi; k++ {
			if flip[a.rowIdx[k]] {
				a.values[k] = -a.values[k]
			}
		}
	}
	a.invalidateCSR()
	return out
}
