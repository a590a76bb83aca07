// Package pricing selects the entering variable for the simplex driver
// from the reduced-cost vector and variable status, supporting Dantzig,
// partial, steepest-edge and Devex strategies.
package pricing

import "errors"

// Strategy selects which pricing rule Context uses.
type Strategy int

const (
	// Auto resolves to full steepest-edge pricing (one level) below
	// autoThreshold variables, and to partial pricing at or above it.
	Auto Strategy = 0
	Partial Strategy = 1
	SteepestEdge Strategy = 2
	Devex Strategy = 3
)

// autoThreshold is the variable-count cutoff at which Auto switches from
// full steepest-edge pricing to partial pricing.
const autoThreshold = 1000

// DirtyFlag marks which cached structures a Context must rescan before
// its next use.
type DirtyFlag uint

const (
	Candidates DirtyFlag = 1 << iota
	ReducedCosts
	Weights
	All = Candidates | ReducedCosts | Weights
)

var (
	// ErrNullArgument mirrors basis.ErrNullArgument for this package's
	// own invalid-construction case.
	ErrNullArgument = errors.New("pricing: null argument")
)

// Stats tracks the bookkeeping counters spec.md §3 assigns to the
// pricing context.
type Stats struct {
	CandidatesScanned int
	LevelEscalations  int
}

// Context holds pricing strategy state: candidate levels for partial
// pricing, reference weights for steepest-edge/Devex, cache-dirty
// flags, and running statistics.
type Context struct {
	numVars   int
	maxLevels int
	strategy  Strategy

	levelCandCount []int
	levelCandIdx   [][]int
	levelStart     []int
	levelEnd       []int

	weight []float64

	candCountValid bool
	stats          Stats

	tol float64
}

// New allocates a pricing context over numVars variables with up to
// maxLevels partial-pricing levels. Returns nil if numVars <= 0 (spec.md
// §4.4). strategy selects the rule; Auto resolves to steepest-edge full
// pricing (a single level spanning all variables) or partial pricing
// depending on numVars against a fixed threshold.
func New(numVars, maxLevels int, strategy Strategy, tol float64) *Context {
	if numVars <= 0 {
		return nil
	}
	if maxLevels <= 0 {
		maxLevels = 1
	}

	resolved := strategy
	if resolved == Auto {
		if numVars < autoThreshold {
			resolved = SteepestEdge
			maxLevels = 1
		} else {
			resolved = Partial
		}
	}

	c := &Context{
		numVars:  numVars,
		maxLevels: maxLevels,
		strategy: resolved,
		tol:      tol,
	}
	c.initLevels()

	if resolved == SteepestEdge || resolved == Devex {
		c.weight = make([]float64, numVars)
		for j := range c.weight {
			c.weight[j] = 1.0
		}
	}
	return c
}

func (c *Context) initLevels() {
	c.levelCandCount = make([]int, c.maxLevels)
	c.levelCandIdx = make([][]int, c.maxLevels)
	c.levelStart = make([]int, c.maxLevels)
	c.levelEnd = make([]int, c.maxLevels)

	base := c.numVars / c.maxLevels
	rem := c.numVars % c.maxLevels
	start := 0
	for lvl := 0; lvl < c.maxLevels; lvl++ {
		size := base
		if lvl < rem {
			size++
		}
		c.levelStart[lvl] = start
		c.levelEnd[lvl] = start + size
		c.levelCandIdx[lvl] = make([]int, size)
		c.levelCandCount[lvl] = -1
		start += size
	}
}

// Strategy reports the resolved strategy (Auto is never returned once
// New has resolved it).
func (c *Context) Strategy() Strategy { return c.strategy }

// Levels reports the number of partial-pricing levels in use.
func (c *Context) Levels() int { return c.maxLevels }

// Stats returns a copy of the running pricing statistics.
func (c *Context) Stats() Stats { return c.stats }

// Invalidate marks the cached structures selected by flags dirty.
func (c *Context) Invalidate(flags DirtyFlag) {
	if flags&Candidates != 0 {
		c.candCountValid = false
		for lvl := range c.levelCandCount {
			c.levelCandCount[lvl] = -1
		}
	}
	if flags&Weights != 0 && c.weight != nil {
		for j := range c.weight {
			c.weight[j] = 1.0
		}
	}
}

// isCandidate implements spec.md §4.4's KKT sign test for a nonbasic
// variable given its status and reduced cost.
func isCandidate(status int, d, tol float64) bool {
	if status >= 0 {
		return false
	}
	switch status {
	case -1: // AtLower
		return d < -tol
	case -2: // AtUpper
		return d > tol
	case -3: // Free / superbasic
		return d > tol || d < -tol
	default: // Fixed, never enters
		return false
	}
}
