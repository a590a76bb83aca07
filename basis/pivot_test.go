package basis

import "testing"

func TestPivotWithEtaCountersAndHeader(t *testing.T) {
	a := identityCSC(t, 3)
	b := Create(3, 3, a)
	_ = b.WarmStart([]int{0, 1, 2})

	alpha := []float64{1, 2, 0}
	if err := b.PivotWithEta(1, 2, 1, alpha, 5); err != nil {
		t.Fatalf("PivotWithEta: %v", err)
	}

	if got := b.EtaCount(); got != 1 {
		t.Fatalf("EtaCount() = %d, want 1", got)
	}
	head := b.Head()
	if head == nil {
		t.Fatal("Head() is nil after a pivot")
	}
	if head.PivotRow() != 1 {
		t.Errorf("PivotRow() = %d, want 1", head.PivotRow())
	}
	if b.header[1] != 2 {
		t.Errorf("header[1] = %d, want 2 (entering variable)", b.header[1])
	}
	if b.status[2] != 1 {
		t.Errorf("status[2] = %d, want 1 (basic in row 1)", b.status[2])
	}
	if b.status[1] != AtLower {
		t.Errorf("status[1] = %d, want AtLower", b.status[1])
	}
}

func TestPivotWithEtaRejectsNearZeroPivot(t *testing.T) {
	a := identityCSC(t, 3)
	b := Create(3, 3, a)
	_ = b.WarmStart([]int{0, 1, 2})

	alpha := []float64{1, 1e-15, 0}
	if err := b.PivotWithEta(1, 2, 1, alpha, 0); err == nil {
		t.Fatal("expected ErrSingular for near-zero pivot entry")
	}
}

func TestPivotImmutabilityAtBasisLevel(t *testing.T) {
	a := identityCSC(t, 3)
	b := Create(3, 3, a)
	_ = b.WarmStart([]int{0, 1, 2})

	if err := b.PivotWithEta(0, 2, 0, []float64{2, 0, 1}, 0); err != nil {
		t.Fatalf("first pivot: %v", err)
	}
	firstHead := b.Head()

	if err := b.PivotWithEta(1, 1, 1, []float64{0, 3, -1}, 0); err != nil {
		t.Fatalf("second pivot: %v", err)
	}
	secondHead := b.Head()

	if secondHead.Next() != firstHead {
		t.Fatal("second pivot's Next() does not reach the first pivot's record")
	}
	if firstHead.PivotRow() != 0 || firstHead.PivotVar() != 2 {
		t.Fatal("first eta record was mutated by the second pivot")
	}
}
