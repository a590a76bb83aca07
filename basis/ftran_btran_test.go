package basis

import (
	"math"
	"testing"
)

func TestFTRANIdentityIsCopy(t *testing.T) {
	a := identityCSC(t, 3)
	b := Create(3, 3, a)
	_ = b.WarmStart([]int{0, 1, 2})

	column := []float64{1, 2, 3}
	result := make([]float64, 3)
	if err := b.FTRAN(result, column); err != nil {
		t.Fatalf("FTRAN: %v", err)
	}
	for i, want := range column {
		if result[i] != want {
			t.Errorf("result[%d] = %v, want %v", i, result[i], want)
		}
	}
}

func TestBTRANIdentityLastRow(t *testing.T) {
	a := identityCSC(t, 3)
	b := Create(3, 3, a)
	_ = b.WarmStart([]int{0, 1, 2})

	result := make([]float64, 3)
	if err := b.BTRAN(result, 2); err != nil {
		t.Fatalf("BTRAN: %v", err)
	}
	want := []float64{0, 0, 1}
	for i := range want {
		if result[i] != want[i] {
			t.Errorf("result[%d] = %v, want %v", i, result[i], want[i])
		}
	}
}

func TestFTRANBTRANDuality(t *testing.T) {
	a := identityCSC(t, 3)
	b := Create(3, 3, a)
	_ = b.WarmStart([]int{0, 1, 2})

	alpha := []float64{2, -1, 0.5}
	if err := b.PivotWithEta(1, 2, 1, alpha, 0); err != nil {
		t.Fatalf("PivotWithEta: %v", err)
	}

	c := []float64{3, -2, 1}
	fc := make([]float64, 3)
	if err := b.FTRAN(fc, c); err != nil {
		t.Fatalf("FTRAN: %v", err)
	}

	for r := 0; r < 3; r++ {
		yr := make([]float64, 3)
		if err := b.BTRAN(yr, r); err != nil {
			t.Fatalf("BTRAN(%d): %v", r, err)
		}
		var dot float64
		for i := range c {
			dot += yr[i] * c[i]
		}
		if math.Abs(dot-fc[r]) > 1e-9 {
			t.Errorf("duality broken at row %d: BTRAN.c=%v FTRAN(c)[r]=%v", r, dot, fc[r])
		}
	}
}

func TestFTRANRejectsWrongLength(t *testing.T) {
	a := identityCSC(t, 3)
	b := Create(3, 3, a)
	_ = b.WarmStart([]int{0, 1, 2})

	if err := b.FTRAN(make([]float64, 2), make([]float64, 3)); err == nil {
		t.Fatal("expected error for mismatched length")
	}
}

func TestBTRANVecMatchesPerRowBTRAN(t *testing.T) {
	a := identityCSC(t, 3)
	b := Create(3, 3, a)
	_ = b.WarmStart([]int{0, 1, 2})
	_ = b.PivotWithEta(1, 2, 1, []float64{2, -1, 0.5}, 0)

	rhs := []float64{2, -3, 5}
	want := make([]float64, 3)
	for r := 0; r < 3; r++ {
		er := make([]float64, 3)
		if err := b.BTRAN(er, r); err != nil {
			t.Fatalf("BTRAN(%d): %v", r, err)
		}
		for i := range want {
			want[i] += er[i] * rhs[r]
		}
	}

	got := make([]float64, 3)
	if err := b.BTRANVec(got, rhs); err != nil {
		t.Fatalf("BTRANVec: %v", err)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("BTRANVec[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBTRANRejectsOutOfRangeRow(t *testing.T) {
	a := identityCSC(t, 3)
	b := Create(3, 3, a)
	_ = b.WarmStart([]int{0, 1, 2})

	if err := b.BTRAN(make([]float64, 3), 5); err == nil {
		t.Fatal("expected error for out-of-range row")
	}
}
