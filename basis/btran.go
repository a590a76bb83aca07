package basis

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// BTRAN solves result^T * B = e_r^T for row index r (spec.md §4.3.3):
// the transpose dual of FTRAN. The eta chain is applied first, newest
// first (the chain's natural Next() order), then the LU stage solves the
// transposed system.
func (b *Basis) BTRAN(result []float64, r int) error {
	if result == nil {
		return ErrNullArgument
	}
	if r < 0 || r >= b.m {
		return ErrInvalidArgument
	}
	if len(result) != b.m {
		return ErrInvalidArgument
	}

	w := b.workEta
	for i := range w {
		w[i] = 0
	}
	w[r] = 1
	return b.btranSolve(result, w)
}

// BTRANVec solves B^T * result = rhs for an arbitrary dense right-hand
// side, the generalization BTRAN(result, r) uses internally with
// rhs = e_r. The simplex driver calls this directly to recover the dual
// vector pi = B^-T c_B from the basic objective-coefficient vector
// without looping BTRAN over every row.
func (b *Basis) BTRANVec(result, rhs []float64) error {
	if result == nil || rhs == nil {
		return ErrNullArgument
	}
	if len(result) != b.m || len(rhs) != b.m {
		return ErrInvalidArgument
	}
	w := b.workEta
	copy(w, rhs)
	return b.btranSolve(result, w)
}

// btranSolve applies the eta chain newest-first to w in place, then the
// LU^T stage, writing the result into result. w is b.workEta, already
// populated by the caller.
func (b *Basis) btranSolve(result, w []float64) error {
	for _, rec := range b.chainNewestToOldest() {
		p := rec.PivotValue()
		if math.Abs(p) < b.pivotTol {
			return ErrSingular
		}
		pr := rec.PivotRow()
		idx, val := rec.Indices(), rec.Values()
		var s float64
		for k, j := range idx {
			s += val[k] * w[j]
		}
		w[pr] = (w[pr] - s) / p
	}

	if b.luValid {
		src := mat.NewVecDense(b.m, w)
		dst := mat.NewVecDense(b.m, result)
		if err := b.lu.SolveVec(dst, true, src); err != nil {
			return ErrSingular
		}
	} else {
		copy(result, w)
	}
	return nil
}
