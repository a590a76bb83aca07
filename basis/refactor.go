package basis

import "gonum.org/v1/gonum/mat"

// Refactor discards the eta chain and rebuilds the basis representation
// from scratch: the current header's columns are extracted from A into a
// dense m x m matrix and factorized with partial pivoting (spec.md
// §4.3.5), exactly the way gonum's own lp.parametric extracts basic
// columns into a dense matrix and calls mat.LU.Factorize rather than
// hand-rolling a sparse LU. obj supplies the objective-coefficient
// snapshot for any bound-fix eta records appended for variables fixed at
// their bound (status == Fixed); obj may be nil if no variable is fixed.
func (b *Basis) Refactor(obj []float64) error {
	ab := mat.NewDense(b.m, b.m, nil)
	for col, j := range b.header {
		rowIdx, values := b.a.Col(j)
		for k, row := range rowIdx {
			ab.Set(row, col, values[k])
		}
	}

	b.eta.Reset()
	b.luValid = false

	var lu mat.LU
	lu.Factorize(ab)
	if lu.Cond() > mat.ConditionTolerance {
		return ErrSingular
	}
	b.lu = lu
	b.luValid = true

	for j, s := range b.status {
		if s != Fixed {
			continue
		}
		var objCoeff float64
		if obj != nil {
			objCoeff = obj[j]
		}
		b.eta.NewRefactor(-1, j, 1.0, Fixed, objCoeff, nil, nil)
	}
	return nil
}
