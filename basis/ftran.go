package basis

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// FTRAN solves B*result = column (spec.md §4.3.2). result and column must
// both have length m; result is overwritten. When no LU is installed
// (cold start, identity basis) the LU stage is a copy, matching spec.md's
// description of the identity-basis case.
func (b *Basis) FTRAN(result, column []float64) error {
	if result == nil || column == nil {
		return ErrNullArgument
	}
	if len(result) != b.m || len(column) != b.m {
		return ErrInvalidArgument
	}

	if b.luValid {
		copy(b.workLU, column)
		src := mat.NewVecDense(b.m, b.workLU)
		dst := mat.NewVecDense(b.m, result)
		if err := b.lu.SolveVec(dst, false, src); err != nil {
			return ErrSingular
		}
	} else {
		copy(result, column)
	}

	// Apply the eta chain oldest-first: the chain is walked newest-first
	// via Next(), so we iterate the captured slice in reverse.
	chain := b.chainNewestToOldest()
	for i := len(chain) - 1; i >= 0; i-- {
		rec := chain[i]
		p := rec.PivotValue()
		if math.Abs(p) < b.pivotTol {
			return ErrSingular
		}
		r := rec.PivotRow()
		pivotComponent := result[r] / p
		idx, val := rec.Indices(), rec.Values()
		for k, j := range idx {
			result[j] -= val[k] * pivotComponent
		}
		result[r] = pivotComponent
	}
	return nil
}
