package basis

import "testing"

func TestSnapshotEqualAndDiff(t *testing.T) {
	a := identityCSC(t, 3)
	b := Create(3, 3, a)
	_ = b.WarmStart([]int{0, 1, 2})

	s1 := b.Snapshot(false, 0)
	defer s1.Free()
	s2 := b.Snapshot(false, 0)
	defer s2.Free()

	if !s1.Equal(s2) {
		t.Fatal("two snapshots of an unchanged basis should be equal")
	}
	if d := s1.Diff(s2); d != 0 {
		t.Fatalf("Diff() = %d, want 0", d)
	}

	if err := b.PivotWithEta(0, 2, 0, []float64{2, 0, 1}, 0); err != nil {
		t.Fatalf("pivot: %v", err)
	}
	s3 := b.Snapshot(false, 1)
	defer s3.Free()

	if s1.Equal(s3) {
		t.Fatal("snapshots before and after a pivot should differ")
	}
	if d := s1.Diff(s3); d <= 0 {
		t.Fatalf("Diff() = %d, want > 0 after a pivot changed the header/status", d)
	}
}

func TestSnapshotDiffDimensionMismatch(t *testing.T) {
	a3 := identityCSC(t, 3)
	b3 := Create(3, 3, a3)
	_ = b3.WarmStart([]int{0, 1, 2})
	s3 := b3.Snapshot(false, 0)
	defer s3.Free()

	a2 := identityCSC(t, 2)
	b2 := Create(2, 2, a2)
	_ = b2.WarmStart([]int{0, 1})
	s2 := b2.Snapshot(false, 0)
	defer s2.Free()

	if d := s3.Diff(s2); d != -1 {
		t.Fatalf("Diff() across mismatched dimensions = %d, want -1", d)
	}
}

func TestWarmStartFromSnapshotRestoresState(t *testing.T) {
	a := identityCSC(t, 3)
	b := Create(3, 3, a)
	_ = b.WarmStart([]int{0, 1, 2})
	before := b.Snapshot(false, 0)
	defer before.Free()

	if err := b.PivotWithEta(0, 2, 0, []float64{2, 0, 1}, 0); err != nil {
		t.Fatalf("pivot: %v", err)
	}

	if err := b.WarmStartFromSnapshot(before); err != nil {
		t.Fatalf("WarmStartFromSnapshot: %v", err)
	}
	after := b.Snapshot(false, 0)
	defer after.Free()

	if !before.Equal(after) {
		t.Fatal("restoring from a snapshot should reproduce its header and status")
	}
}

func TestSnapshotFreeIsNullSafe(t *testing.T) {
	var s *Snapshot
	s.Free()
}
