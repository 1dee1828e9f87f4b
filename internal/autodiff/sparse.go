package autodiff

// pairStore is a symmetric sparse store of second-order coupling weights
// between unordered pairs of vertex ids.
//
// An entry for the pair (i, j) is materialized exactly once, keyed by the
// higher id and mapping the lower id to the accumulated weight
// (rows[hi][lo]). The reverse sweep visits vertices in decreasing id order
// and consumes every entry incident to the visited vertex during its step,
// so by the time a vertex is visited all of its live couplings have it as
// the higher endpoint — iterating rows[v] is iterating everything incident
// to v that still matters.
type pairStore struct {
	rows []map[VertexID]Real
}

// grow extends the row index to cover n vertices. It appends explicit nil
// rows so storage reused after clear starts empty.
func (s *pairStore) grow(n int) {
	for len(s.rows) < n {
		s.rows = append(s.rows, nil)
	}
}

// accumulate adds w to the entry for the unordered pair (i, j), creating
// it at zero if absent. The diagonal (i == j) holds the pure second
// derivative for that single vertex.
func (s *pairStore) accumulate(i, j VertexID, w Real) {
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	s.grow(int(hi) + 1)
	m := s.rows[hi]
	if m == nil {
		m = make(map[VertexID]Real, 4)
		s.rows[hi] = m
	}
	m[lo] += w
}

// lookup returns the accumulated weight for the unordered pair (i, j),
// zero if absent. Never allocates.
func (s *pairStore) lookup(i, j VertexID) Real {
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	if int(hi) >= len(s.rows) {
		return 0
	}
	return s.rows[hi][lo]
}

// row returns the live entries whose higher endpoint is hi, keyed by the
// lower endpoint. May be nil. The caller must not accumulate into pairs
// involving hi while iterating; the propagation sweep only writes pairs
// with both endpoints strictly below the vertex it is processing, so its
// iteration is safe.
func (s *pairStore) row(hi VertexID) map[VertexID]Real {
	if int(hi) >= len(s.rows) {
		return nil
	}
	return s.rows[hi]
}

// size returns the number of materialized entries, for inspection.
func (s *pairStore) size() int {
	n := 0
	for _, m := range s.rows {
		n += len(m)
	}
	return n
}

// clear drops every entry while keeping the row index's backing storage.
func (s *pairStore) clear() {
	s.rows = s.rows[:0]
}
