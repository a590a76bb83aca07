package basis

import "math"

// PivotWithEta performs the basis change at row r: the entering variable
// enter (whose FTRAN'd column is alpha, length m) replaces the leaving
// variable leave, currently basic in row r (spec.md §4.3.4). enterObj is
// the entering variable's objective coefficient, stashed in the eta
// record as its objective-coefficient snapshot.
//
// If |alpha[r]| is below the pivot tolerance, ErrSingular is returned and
// the basis is left unchanged; the caller (the simplex driver) then
// decides whether to force a refactor or perturb.
//
// On success, header[r] is set to enter, status[enter] to r, and
// status[leave] to AtLower unconditionally - spec.md §9 notes the
// original leaves open whether the leaving variable's new nonbasic
// status should consult the ratio-test direction to choose AtUpper
// instead, but states its own source always chooses AtLower, so that is
// what is implemented here; see DESIGN.md.
func (b *Basis) PivotWithEta(r, enter, leave int, alpha []float64, enterObj float64) error {
	if alpha == nil {
		return ErrNullArgument
	}
	if r < 0 || r >= b.m || len(alpha) != b.m {
		return ErrInvalidArgument
	}
	if enter < 0 || enter >= b.n || leave < 0 || leave >= b.n {
		return ErrInvalidArgument
	}

	pivotValue := alpha[r]
	if math.Abs(pivotValue) < b.pivotTol {
		return ErrSingular
	}

	var indices []int
	var values []float64
	for i, v := range alpha {
		if i == r || v == 0 {
			continue
		}
		indices = append(indices, i)
		values = append(values, v)
	}

	b.eta.NewPivot(r, enter, r, pivotValue, AtLower, enterObj, indices, values, nil, nil)

	b.header[r] = enter
	b.status[enter] = r
	b.status[leave] = AtLower
	return nil
}
