// Package problem holds the read-only linear-program view the solver
// core consumes: a sparse constraint matrix, objective coefficients,
// variable bounds, and row right-hand sides/senses. Building, editing,
// and parsing a model from a file format are deliberately out of scope;
// Model is a plain data carrier assembled by the caller.
package problem

import (
	"errors"
	"fmt"
	"math"

	"github.com/numerix-labs/revsimplex/sparse"
)

var (
	ErrNullArgument    = errors.New("problem: null argument")
	ErrInvalidArgument = errors.New("problem: invalid argument")
)

// DefaultInfinity is the bound sentinel spec.md §6 names as the
// "effectively unbounded" value; any |bound| at or beyond this is
// treated as +/-infinity rather than a finite number.
const DefaultInfinity = 1e100

// Model is the read-only problem view: a constraint matrix in CSC form,
// objective coefficients, variable bounds, and row right-hand
// sides/senses, all normalized so every row sense is '<' or '='
// (spec.md §3's "'>' rows are normalized to '<'").
type Model struct {
	A   *sparse.CSC
	Obj []float64
	Lb  []float64
	Ub  []float64
	Rhs []float64

	// Senses holds the normalized sense of every row, post-construction
	// always '<' or '='.
	Senses []sparse.Sense

	Infinity float64
}

// New validates and normalizes a raw problem description into a Model.
// a, obj, lb and ub are taken by reference; New does not copy a, whose
// '>' rows are negated in place. rhs is copied before normalization and
// senses is replaced by a normalized copy. infinity defaults to
// DefaultInfinity when zero.
func New(a *sparse.CSC, obj, lb, ub, rhs []float64, senses []sparse.Sense, infinity float64) (*Model, error) {
	if a == nil || obj == nil || lb == nil || ub == nil || rhs == nil || senses == nil {
		return nil, ErrNullArgument
	}
	m, n := a.Dims()
	if len(obj) != n || len(lb) != n || len(ub) != n {
		return nil, fmt.Errorf("%w: obj/lb/ub must have length n=%d", ErrInvalidArgument, n)
	}
	if len(rhs) != m || len(senses) != m {
		return nil, fmt.Errorf("%w: rhs/senses must have length m=%d", ErrInvalidArgument, m)
	}
	for _, s := range senses {
		if s != sparse.LE && s != sparse.EQ && s != sparse.GE {
			return nil, fmt.Errorf("%w: sense %q outside {<,=,>}", ErrInvalidArgument, byte(s))
		}
	}
	for j := range obj {
		if math.IsNaN(obj[j]) {
			return nil, fmt.Errorf("%w: obj[%d] is NaN", ErrInvalidArgument, j)
		}
	}

	if infinity == 0 {
		infinity = DefaultInfinity
	}

	rhsCopy := append([]float64(nil), rhs...)
	normalized := sparse.NormalizeSenses(a, rhsCopy, senses)

	return &Model{
		A:        a,
		Obj:      obj,
		Lb:       lb,
		Ub:       ub,
		Rhs:      rhsCopy,
		Senses:   normalized,
		Infinity: infinity,
	}, nil
}

// Dims returns (m, n): the number of rows and columns of A.
func (p *Model) Dims() (int, int) { return p.A.Dims() }

// IsInfinite reports whether v is at or beyond the problem's infinity
// sentinel in magnitude.
func (p *Model) IsInfinite(v float64) bool {
	return v >= p.Infinity || v <= -p.Infinity
}

// BoundsInfeasible reports whether any variable's bounds are inverted
// beyond tol (spec.md §4.5.1's "any bound is infeasible" Phase I trigger).
func (p *Model) BoundsInfeasible(tol float64) bool {
	for j := range p.Lb {
		if p.Lb[j]-p.Ub[j] > tol {
			return true
		}
	}
	return false
}
