package simplexlp

import (
	"errors"

	"golang.org/x/exp/rand"

	"github.com/numerix-labs/revsimplex/basis"
	"github.com/numerix-labs/revsimplex/diagnostics"
	"github.com/numerix-labs/revsimplex/pricing"
	"github.com/numerix-labs/revsimplex/problem"
)

var (
	ErrNullArgument    = errors.New("simplexlp: null argument")
	ErrInvalidArgument = errors.New("simplexlp: invalid argument")
)

// Solver is the solver context of spec.md §3: model reference,
// dimensions, phase, iteration counter and tolerance, working bound and
// objective copies, the primal/dual/reduced-cost vectors, and the
// exclusively-owned basis and pricing context.
type Solver struct {
	model *problem.Model
	cfg   Config
	m, n  int

	basis   *basis.Basis
	pricing *pricing.Context

	phase     int // 1 or 2
	tolerance float64

	iteration int
	objVal    float64

	lb, ub []float64 // working bounds, perturbed in place by Perturb
	obj    []float64 // working objective: phase-1 composite or real obj

	x  []float64 // primal values, length n
	pi []float64 // dual values, length m
	d  []float64 // reduced costs, length n

	perturbed    bool
	perturbDelta []float64

	candBuf []int
	colBuf  []float64 // scratch, length m: dense column / FTRAN result
	rowBuf  []float64 // scratch, length m: BTRAN result

	rng *rand.Rand

	terminate *bool

	forcedRefactorRetried bool

	trace *diagnostics.Trace
}

// EnableTrace attaches a diagnostics.Trace that records (iteration,
// objective value, phase) on every call to Iterate. Tracing is opt-in
// and off by default.
func (s *Solver) EnableTrace(t *diagnostics.Trace) { s.trace = t }

// Setup implements simplex_setup (spec.md §4.5.1). initialBasis names m
// distinct column indices the caller has arranged to form a nonsingular
// starting basis (e.g. slack/artificial columns); constructing one from
// scratch is the model-building API's job and out of scope here.
func Setup(model *problem.Model, cfg Config, initialBasis []int) (*Solver, error) {
	if model == nil {
		return nil, ErrNullArgument
	}
	m, n := model.Dims()
	if len(initialBasis) != m {
		return nil, ErrInvalidArgument
	}

	s := &Solver{
		model:     model,
		cfg:       cfg,
		m:         m,
		n:         n,
		tolerance: cfg.OptimalityTol,
		lb:        append([]float64(nil), model.Lb...),
		ub:        append([]float64(nil), model.Ub...),
		obj:       append([]float64(nil), model.Obj...),
		x:         make([]float64, n),
		pi:        make([]float64, m),
		d:         append([]float64(nil), model.Obj...),
		colBuf:    make([]float64, m),
		rowBuf:    make([]float64, m),
		rng:       rand.New(rand.NewSource(cfg.Seed)),
	}

	s.basis = basis.Create(m, n, model.A)
	s.basis.SetPivotTol(cfg.PivotTol)
	if err := s.basis.WarmStart(initialBasis); err != nil {
		return nil, err
	}
	if err := s.basis.Refactor(s.obj); err != nil {
		return nil, NumericalError{Err: err}
	}

	levels := cfg.MaxPricingLevels
	if levels <= 0 {
		levels = 1
	}
	s.pricing = pricing.New(n, levels, pricing.Strategy(cfg.PricingStrategy), cfg.OptimalityTol)
	if s.pricing == nil {
		return nil, ErrInvalidArgument
	}

	for i := range s.pi {
		s.pi[i] = 0
	}

	if model.BoundsInfeasible(cfg.FeasibilityTol) {
		s.phase = 1
	} else if err := s.computeBasicValues(); err == nil && s.anyBasicInfeasible(cfg.FeasibilityTol) {
		s.phase = 1
	} else {
		s.phase = 2
	}
	if s.phase == 1 {
		s.setPhaseOneObjective()
	}

	return s, nil
}

// NumericalError wraps a numerical failure (e.g. a singular refactor)
// surfaced during setup, where no solver status token yet exists to
// report it through.
type NumericalError struct{ Err error }

func (e NumericalError) Error() string { return "simplexlp: numerical: " + e.Err.Error() }
func (e NumericalError) Unwrap() error { return e.Err }

// Preprocess implements simplex_preprocess (spec.md §4.5.1). If skip is
// true, returns OK immediately; otherwise scans bounds and returns the
// sentinel INFEASIBLE without mutating state when any lb[j] > ub[j]
// beyond the feasibility tolerance.
func (s *Solver) Preprocess(skip bool) Status {
	if skip {
		return OK
	}
	if s.model.BoundsInfeasible(s.cfg.FeasibilityTol) {
		return INFEASIBLE
	}
	return OK
}

// Iteration returns the number of iterations performed so far.
func (s *Solver) Iteration() int { return s.iteration }

// ObjVal returns the current (working, possibly Phase I) objective
// value.
func (s *Solver) ObjVal() float64 { return s.objVal }

// Phase reports the active phase (1 or 2).
func (s *Solver) Phase() int { return s.phase }

// X returns the current primal values, including nonbasic variables at
// their bounds.
func (s *Solver) X() []float64 { return s.x }

// Pi returns the current dual values.
func (s *Solver) Pi() []float64 { return s.pi }

// D returns the current reduced-cost vector.
func (s *Solver) D() []float64 { return s.d }

// Basis exposes the underlying basis state for inspection/snapshotting.
func (s *Solver) Basis() *basis.Basis { return s.basis }

// SetTerminateFlag installs a pointer the driver polls once per
// iteration, before each Iterate call of Solve's loop. Once the flag is
// set, the iteration in progress completes and Solve returns
// ITERATION_LIMIT without starting another.
func (s *Solver) SetTerminateFlag(flag *bool) { s.terminate = flag }
