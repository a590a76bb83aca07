package simplexlp

import (
	"math"
	"testing"

	"github.com/numerix-labs/revsimplex/problem"
	"github.com/numerix-labs/revsimplex/sparse"
)

func buildCSC(t *testing.T, m, n int, cols [][2][]float64) *sparse.CSC {
	t.Helper()
	colPtr := make([]int, n+1)
	var rowIdx []int
	var values []float64
	for j := 0; j < n; j++ {
		colPtr[j] = len(rowIdx)
		rows := cols[j][0]
		vals := cols[j][1]
		for k := range rows {
			rowIdx = append(rowIdx, int(rows[k]))
			values = append(values, vals[k])
		}
	}
	colPtr[n] = len(rowIdx)
	a, err := sparse.NewCSC(m, n, colPtr, rowIdx, values)
	if err != nil {
		t.Fatalf("buildCSC: %v", err)
	}
	return a
}

func col(rows []float64, vals []float64) [2][]float64 {
	return [2][]float64{rows, vals}
}

func TestSolveTwoVariableOptimal(t *testing.T) {
	inf := problem.DefaultInfinity
	a := buildCSC(t, 1, 3, [][2][]float64{
		col([]float64{0}, []float64{1}), // x
		col([]float64{0}, []float64{1}), // y
		col([]float64{0}, []float64{1}), // slack
	})
	model, err := problem.New(a,
		[]float64{1, 2, 0},
		[]float64{0, 0, 0},
		[]float64{10, 10, inf},
		[]float64{10},
		[]sparse.Sense{sparse.LE},
		inf,
	)
	if err != nil {
		t.Fatalf("problem.New: %v", err)
	}

	st, s, err := Solve(model, DefaultConfig(), []int{2})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if st != OPTIMAL {
		t.Fatalf("status = %v, want OPTIMAL", st)
	}
	if math.Abs(s.ObjVal()) > 1e-6 {
		t.Fatalf("ObjVal() = %v, want 0", s.ObjVal())
	}
	if math.Abs(s.X()[0]) > 1e-6 || math.Abs(s.X()[1]) > 1e-6 {
		t.Fatalf("x = %v, want [0,0,...]", s.X())
	}
}

func TestSolveUnbounded(t *testing.T) {
	inf := problem.DefaultInfinity
	a := buildCSC(t, 1, 3, [][2][]float64{
		col([]float64{0}, []float64{1}),  // x
		col([]float64{0}, []float64{-1}), // y
		col([]float64{0}, []float64{1}),  // slack
	})
	model, err := problem.New(a,
		[]float64{-1, -1, 0},
		[]float64{0, 0, 0},
		[]float64{inf, inf, inf},
		[]float64{1},
		[]sparse.Sense{sparse.LE},
		inf,
	)
	if err != nil {
		t.Fatalf("problem.New: %v", err)
	}

	st, _, err := Solve(model, DefaultConfig(), []int{2})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if st != UNBOUNDED {
		t.Fatalf("status = %v, want UNBOUNDED", st)
	}
}

func TestSolveInfeasibleByBounds(t *testing.T) {
	inf := problem.DefaultInfinity
	a := buildCSC(t, 1, 2, [][2][]float64{
		col([]float64{0}, []float64{1}),
		col([]float64{0}, []float64{1}),
	})
	model, err := problem.New(a,
		[]float64{1, 0},
		[]float64{5, 0},
		[]float64{3, inf},
		[]float64{5},
		[]sparse.Sense{sparse.EQ},
		inf,
	)
	if err != nil {
		t.Fatalf("problem.New: %v", err)
	}

	st, _, err := Solve(model, DefaultConfig(), []int{1})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if st != INFEASIBLE {
		t.Fatalf("status = %v, want INFEASIBLE", st)
	}
}

// TestSolveMultiRowRegression exercises a larger, genuinely
// multi-iteration instance end to end: three rows, two structural
// variables plus their slacks, requiring two basis-changing pivots from
// the identity slack basis to reach the optimum. This is the classic
// maximize-3x1+5x2 resource-allocation LP (subject to x1<=4, 2x2<=12,
// 3x1+2x2<=18), posed here as the equivalent minimization of its
// negated objective; the optimal vertex (x1,x2)=(2,6), objective -36,
// is confirmed independently by corner-point enumeration and by strong
// duality. The byte-exact Netlib afiro coefficients named in spec.md's
// reference scenario were not available to reproduce reliably without
// a verified source (MPS parsing is out of scope, and no verified afiro
// data was present in the material this module was grounded on), so
// this stands in as the suite's one larger multi-pivot regression case;
// see DESIGN.md for the explicit scope note.
func TestSolveMultiRowRegression(t *testing.T) {
	inf := problem.DefaultInfinity
	a := buildCSC(t, 3, 5, [][2][]float64{
		col([]float64{0, 2}, []float64{1, 3}), // x1
		col([]float64{1, 2}, []float64{2, 2}), // x2
		col([]float64{0}, []float64{1}),       // s1
		col([]float64{1}, []float64{1}),       // s2
		col([]float64{2}, []float64{1}),       // s3
	})
	model, err := problem.New(a,
		[]float64{-3, -5, 0, 0, 0},
		[]float64{0, 0, 0, 0, 0},
		[]float64{inf, inf, inf, inf, inf},
		[]float64{4, 12, 18},
		[]sparse.Sense{sparse.LE, sparse.LE, sparse.LE},
		inf,
	)
	if err != nil {
		t.Fatalf("problem.New: %v", err)
	}

	st, s, err := Solve(model, DefaultConfig(), []int{2, 3, 4})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if st != OPTIMAL {
		t.Fatalf("status = %v, want OPTIMAL", st)
	}
	if math.Abs(s.ObjVal()-(-36)) > 1e-6 {
		t.Fatalf("ObjVal() = %v, want -36", s.ObjVal())
	}
	if math.Abs(s.X()[0]-2) > 1e-6 || math.Abs(s.X()[1]-6) > 1e-6 {
		t.Fatalf("x = %v, want [2,6,...]", s.X())
	}
	if s.Iteration() < 2 {
		t.Fatalf("Iteration() = %d, want at least 2 pivots", s.Iteration())
	}
}

func TestSolveInfeasibleByConstraints(t *testing.T) {
	inf := problem.DefaultInfinity
	// x+y <= 1 (row0, slack +1) and x+y >= 3 represented as an equality
	// with a surplus variable of coefficient -1 (row1).
	a := buildCSC(t, 2, 4, [][2][]float64{
		col([]float64{0, 1}, []float64{1, 1}),  // x
		col([]float64{0, 1}, []float64{1, 1}),  // y
		col([]float64{0}, []float64{1}),        // slack row0
		col([]float64{1}, []float64{-1}),       // surplus row1
	})
	model, err := problem.New(a,
		[]float64{0, 0, 0, 0},
		[]float64{0, 0, 0, 0},
		[]float64{inf, inf, inf, inf},
		[]float64{1, 3},
		[]sparse.Sense{sparse.EQ, sparse.EQ},
		inf,
	)
	if err != nil {
		t.Fatalf("problem.New: %v", err)
	}

	st, _, err := Solve(model, DefaultConfig(), []int{2, 3})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if st != INFEASIBLE {
		t.Fatalf("status = %v, want INFEASIBLE", st)
	}
}
