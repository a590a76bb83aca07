package problem

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/numerix-labs/revsimplex/sparse"
)

func identity(t *testing.T, m int) *sparse.CSC {
	t.Helper()
	colPtr := make([]int, m+1)
	rowIdx := make([]int, m)
	values := make([]float64, m)
	for j := 0; j < m; j++ {
		colPtr[j] = j
		rowIdx[j] = j
		values[j] = 1
	}
	colPtr[m] = m
	a, err := sparse.NewCSC(m, m, colPtr, rowIdx, values)
	if err != nil {
		t.Fatalf("identity: %v", err)
	}
	return a
}

func TestNewNormalizesGERows(t *testing.T) {
	a := identity(t, 2)
	obj := []float64{1, 1}
	lb := []float64{0, 0}
	ub := []float64{10, 10}
	rhs := []float64{3, 4}
	senses := []sparse.Sense{sparse.GE, sparse.LE}

	model, err := New(a, obj, lb, ub, rhs, senses, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if model.Senses[0] != sparse.LE || model.Senses[1] != sparse.LE {
		t.Fatalf("Senses = %v, want all normalized to LE", model.Senses)
	}
	if model.Rhs[0] != -3 {
		t.Fatalf("Rhs[0] = %v, want -3 after GE negation", model.Rhs[0])
	}
	if model.Infinity != DefaultInfinity {
		t.Fatalf("Infinity = %v, want default %v", model.Infinity, DefaultInfinity)
	}

	wantSenses := []sparse.Sense{sparse.LE, sparse.LE}
	if diff := cmp.Diff(wantSenses, model.Senses); diff != "" {
		t.Fatalf("Senses mismatch (-want +got):\n%s", diff)
	}
	wantRhs := []float64{-3, 4}
	if diff := cmp.Diff(wantRhs, model.Rhs); diff != "" {
		t.Fatalf("Rhs mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRejectsBadSense(t *testing.T) {
	a := identity(t, 1)
	_, err := New(a, []float64{1}, []float64{0}, []float64{1}, []float64{1}, []sparse.Sense{'!'}, 0)
	if err == nil {
		t.Fatal("expected error for an invalid sense character")
	}
}

func TestNewRejectsNaNObjective(t *testing.T) {
	a := identity(t, 1)
	_, err := New(a, []float64{nan()}, []float64{0}, []float64{1}, []float64{1}, []sparse.Sense{sparse.LE}, 0)
	if err == nil {
		t.Fatal("expected error for a NaN objective coefficient")
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestBoundsInfeasible(t *testing.T) {
	a := identity(t, 1)
	model, err := New(a, []float64{1}, []float64{5}, []float64{1}, []float64{1}, []sparse.Sense{sparse.LE}, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !model.BoundsInfeasible(1e-9) {
		t.Fatal("expected BoundsInfeasible to detect lb > ub")
	}
}

func TestIsInfinite(t *testing.T) {
	a := identity(t, 1)
	model, err := New(a, []float64{1}, []float64{0}, []float64{1}, []float64{1}, []sparse.Sense{sparse.LE}, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !model.IsInfinite(DefaultInfinity) {
		t.Fatal("expected the infinity sentinel to report as infinite")
	}
	if model.IsInfinite(100) {
		t.Fatal("a finite bound should not report as infinite")
	}
}
