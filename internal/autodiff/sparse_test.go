package autodiff

import "testing"

func TestPairStore_AccumulateAndLookup(t *testing.T) {
	var s pairStore

	s.accumulate(3, 7, 1.5)
	s.accumulate(7, 3, 2.5) // reversed order hits the same entry

	if got := s.lookup(3, 7); got != 4.0 {
		t.Errorf("lookup(3,7) = %g, want 4", got)
	}
	if got := s.lookup(7, 3); got != 4.0 {
		t.Errorf("lookup(7,3) = %g, want 4", got)
	}
}

func TestPairStore_CanonicalStorage(t *testing.T) {
	var s pairStore
	s.accumulate(9, 2, 1)

	// Stored once, keyed by the higher endpoint.
	if row := s.row(9); row[2] != 1 {
		t.Errorf("row(9)[2] = %g, want 1", row[2])
	}
	if row := s.row(2); len(row) != 0 {
		t.Errorf("row(2) has %d entries, want 0", len(row))
	}
}

func TestPairStore_Diagonal(t *testing.T) {
	var s pairStore
	s.accumulate(4, 4, 0.5)
	s.accumulate(4, 4, 0.25)

	if got := s.lookup(4, 4); got != 0.75 {
		t.Errorf("lookup(4,4) = %g, want 0.75", got)
	}
}

func TestPairStore_AbsentIsZero(t *testing.T) {
	var s pairStore
	if got := s.lookup(100, 200); got != 0 {
		t.Errorf("lookup on empty store = %g, want 0", got)
	}
	s.accumulate(1, 2, 3)
	if got := s.lookup(1, 1); got != 0 {
		t.Errorf("lookup of absent pair = %g, want 0", got)
	}
}

func TestPairStore_RowIteration(t *testing.T) {
	var s pairStore
	s.accumulate(5, 1, 1)
	s.accumulate(2, 5, 2)
	s.accumulate(5, 5, 3)
	s.accumulate(6, 5, 4) // incident to 5 but keyed by 6: not live for row(5)

	row := s.row(5)
	if len(row) != 3 {
		t.Fatalf("row(5) has %d entries, want 3", len(row))
	}
	want := map[VertexID]Real{1: 1, 2: 2, 5: 3}
	for k, w := range want {
		if row[k] != w {
			t.Errorf("row(5)[%d] = %g, want %g", k, row[k], w)
		}
	}
}

func TestPairStore_ClearReuse(t *testing.T) {
	var s pairStore
	s.accumulate(1, 2, 3)
	s.clear()

	if s.size() != 0 {
		t.Fatalf("size after clear = %d, want 0", s.size())
	}
	// Reused storage must start from zero, not from stale entries.
	s.accumulate(1, 2, 1)
	if got := s.lookup(1, 2); got != 1 {
		t.Errorf("lookup after clear+accumulate = %g, want 1", got)
	}
}
