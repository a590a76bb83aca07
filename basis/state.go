// Package basis owns the basis representation at the heart of the
// solver core: variable status, basis header, eta chain and LU factors,
// and the FTRAN/BTRAN/refactor/pivot operations built on top of them.
package basis

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/numerix-labs/revsimplex/eta"
	"github.com/numerix-labs/revsimplex/sparse"
)

// Variable status encoding, spec.md §3. Values >= 0 mean "basic,
// occupying row k"; the Go zero value intentionally does not collide
// with "basic in row 0" the way an uninitialized C array element might,
// since Create initializes every status to AtLower rather than leaving
// it as garbage.
const (
	AtLower = -1
	AtUpper = -2
	Free    = -3 // superbasic / free
	Fixed   = -4 // lb == ub
)

var (
	// ErrNullArgument mirrors spec.md §7's invalid-argument class for a
	// required pointer/slice that was nil.
	ErrNullArgument = errors.New("basis: null argument")
	// ErrInvalidArgument mirrors spec.md §7's invalid-argument class for
	// out-of-range indices, inconsistent sizes, or a failed Validate check.
	ErrInvalidArgument = errors.New("basis: invalid argument")
	// ErrSingular reports a zero/sub-tolerance pivot encountered during
	// FTRAN/BTRAN substitution or refactorization (spec.md's "Numerical"
	// error class).
	ErrSingular = errors.New("basis: numerical singularity")
)

// defaultPivotTol is used until the driver overrides it from the
// configuration bag's pivot_tol (spec.md §6).
const defaultPivotTol = 1e-10

// Basis is the revised-simplex basis representation: header/status plus
// the eta chain and optional LU factorization that together represent
// B^-1 = E_k...E_1 (LU)^-1 (spec.md §3).
type Basis struct {
	m, n int
	a    *sparse.CSC

	header []int
	status []int

	eta *eta.Store

	lu       mat.LU
	luValid  bool

	pivotTol float64

	// Scratch buffers, reused across calls to avoid per-solve allocation.
	workLU    []float64
	workEta   []float64
	chainBuf  []*eta.Record
}

// Create allocates a basis of dimension m x n over the read-only
// constraint matrix a. Status is initialized to AtLower for every
// variable (spec.md documents the C original as leaving this
// uninitialized until a crash or warm start fills it; a deterministic
// default is substituted here since Go has no equivalent "don't care"
// value).
func Create(m, n int, a *sparse.CSC) *Basis {
	b := &Basis{
		m:        m,
		n:        n,
		a:        a,
		header:   make([]int, m),
		status:   make([]int, n),
		eta:      eta.NewStore(),
		pivotTol: defaultPivotTol,
		workLU:   make([]float64, m),
		workEta:  make([]float64, m),
	}
	for j := range b.status {
		b.status[j] = AtLower
	}
	return b
}

// Dims returns (m, n).
func (b *Basis) Dims() (int, int) { return b.m, b.n }

// Header returns the basis header, read-only.
func (b *Basis) Header() []int { return b.header }

// Status returns the variable status array, read-only.
func (b *Basis) Status() []int { return b.status }

// SetNonbasicStatus overrides the status of a variable that is not
// currently basic, used by the driver for bound flips (AtLower <->
// AtUpper) that do not change the basis header.
func (b *Basis) SetNonbasicStatus(j, status int) {
	b.status[j] = status
}

// SetPivotTol overrides the pivot-acceptance tolerance (spec.md §6's
// pivot_tol); Create installs a conservative default.
func (b *Basis) SetPivotTol(tol float64) { b.pivotTol = tol }

// EtaCount returns the number of eta records currently chained.
func (b *Basis) EtaCount() int { return b.eta.Count() }

// Head returns the most recently appended eta record, or nil if the
// chain is empty.
func (b *Basis) Head() *eta.Record { return b.eta.Head() }

// PivotsSinceRefactor returns the number of pivot-update records
// appended since the last Refactor.
func (b *Basis) PivotsSinceRefactor() int { return b.eta.PivotsSinceRefactor() }

// LUValid reports whether a dense LU factorization of the basic columns
// is currently installed.
func (b *Basis) LUValid() bool { return b.luValid }

// WarmStart assigns header from a list of m distinct basic variable
// indices in [0, n), deriving status so that status[j] = row(j) for
// every basic j and AtLower for everything else. Any existing eta chain
// is discarded and pivot counters reset.
func (b *Basis) WarmStart(basicVars []int) error {
	if basicVars == nil {
		return ErrNullArgument
	}
	if len(basicVars) != b.m {
		return fmt.Errorf("%w: warm start supplied %d basic variables, want %d", ErrInvalidArgument, len(basicVars), b.m)
	}
	for _, j := range basicVars {
		if j < 0 || j >= b.n {
			return fmt.Errorf("%w: basic variable %d out of range [0,%d)", ErrInvalidArgument, j, b.n)
		}
	}
	b.eta.Reset()
	b.luValid = false
	for j := range b.status {
		b.status[j] = AtLower
	}
	copy(b.header, basicVars)
	for r, j := range b.header {
		b.status[j] = r
	}
	return nil
}

// WarmStartFromSnapshot restores header and status from a previously
// captured Snapshot of matching dimensions, discarding any eta chain.
func (b *Basis) WarmStartFromSnapshot(s *Snapshot) error {
	if s == nil || !s.valid {
		return ErrNullArgument
	}
	if s.m != b.m || s.n != b.n {
		return fmt.Errorf("%w: snapshot dims (%d,%d) do not match basis (%d,%d)", ErrInvalidArgument, s.m, s.n, b.m, b.n)
	}
	b.eta.Reset()
	copy(b.header, s.header)
	copy(b.status, s.status)
	if s.hasFactors {
		b.lu = s.lu
		b.luValid = true
	} else {
		b.luValid = false
	}
	return nil
}

// ValidateFlag selects which of the four basis invariants (spec.md
// §4.3.1) Validate checks.
type ValidateFlag uint

const (
	FlagCount ValidateFlag = 1 << iota
	FlagBounds
	FlagDuplicates
	FlagConsistency
	FlagAll = FlagCount | FlagBounds | FlagDuplicates | FlagConsistency
)

// Validate checks the requested invariant classes in the order spec.md
// §4.3.1 lists them (COUNT, BOUNDS, DUPLICATES, CONSISTENCY), returning
// on the first violated class.
func (b *Basis) Validate(flags ValidateFlag) error {
	if flags&FlagCount != 0 {
		count := 0
		for _, s := range b.status {
			if s >= 0 {
				count++
			}
		}
		if count != b.m {
			return fmt.Errorf("%w: %d basic variables, want %d", ErrInvalidArgument, count, b.m)
		}
	}
	if flags&FlagBounds != 0 {
		for r, j := range b.header {
			if j < 0 || j >= b.n {
				return fmt.Errorf("%w: header[%d]=%d out of range [0,%d)", ErrInvalidArgument, r, j, b.n)
			}
		}
	}
	if flags&FlagDuplicates != 0 {
		seen := make(map[int]bool, b.m)
		for _, j := range b.header {
			if seen[j] {
				return fmt.Errorf("%w: variable %d is basic in more than one row", ErrInvalidArgument, j)
			}
			seen[j] = true
		}
	}
	if flags&FlagConsistency != 0 {
		for r, j := range b.header {
			if b.status[j] != r {
				return fmt.Errorf("%w: status[header[%d]=%d]=%d, want %d", ErrInvalidArgument, r, j, b.status[j], r)
			}
		}
	}
	return nil
}

// chainNewestToOldest returns the eta chain as a reused scratch slice, in
// the chain's natural (newest-first) order.
func (b *Basis) chainNewestToOldest() []*eta.Record {
	b.chainBuf = b.chainBuf[:0]
	for r := b.eta.Head(); r != nil; r = r.Next() {
		b.chainBuf = append(b.chainBuf, r)
	}
	return b.chainBuf
}
