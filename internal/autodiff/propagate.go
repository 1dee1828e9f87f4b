package autodiff

// Propagate runs the edge-pushing sweep: a single reverse pass over the
// recorded vertices that simultaneously accumulates first-order adjoints
// (gradient entries) and second-order couplings (Hessian entries).
//
// Precondition: exactly one vertex has been seeded with a non-zero adjoint
// via SetAdjoint (typically the output, seeded to 1).
//
// Vertices are visited from the highest id down to 1. Every outgoing edge
// targets a strictly smaller id, so by the time a vertex is visited every
// vertex that could push work onto its incident couplings has already been
// fully processed; no separate topological sort is needed. Vertex 0 is
// never expanded — it cannot have operands.
//
// For each non-leaf vertex v the step is:
//
//  1. Pushing: each coupling entry incident to v, as it exists before this
//     step, is pushed down v's outgoing edges. An off-diagonal entry (v, k)
//     with weight s contributes e.W*s to (e.To, k) for each edge e, doubled
//     onto the diagonal when e.To == k. The diagonal entry (v, v) with
//     weight s contributes e.W²*s to each edge target's diagonal plus the
//     cross term E1.W*E2.W*s to (E1.To, E2.To), doubled when the two
//     targets coincide.
//  2. Creating (only when v's adjoint a is non-zero): fold a*Curvature
//     into the store — diagonal at E1.To for a unary vertex, off-diagonal
//     (E1.To, E2.To) for a binary one (doubled when the targets coincide).
//     Then ordinary first-order propagation: reset v's adjoint and add
//     a*E.W to each edge target's adjoint.
//
// Cost is linear in the number of vertices plus the number of coupling
// entries ever created. Running Propagate twice without Clear in between
// is a caller error.
func (g *Graph) Propagate() {
	g.pairs.grow(len(g.vertices))
	for vid := len(g.vertices) - 1; vid >= 1; vid-- {
		v := &g.vertices[vid]
		id := VertexID(vid)
		e1, e2 := v.E1, v.E2
		if e1.To == id {
			continue // leaf, nothing to push
		}

		// Pushing
		for k, s := range g.pairs.row(id) {
			if k != id {
				g.pushEdge(e1, k, s)
				if e2.To != id {
					g.pushEdge(e2, k, s)
				}
			} else {
				g.pairs.accumulate(e1.To, e1.To, e1.W*e1.W*s)
				if e2.To != id {
					g.pairs.accumulate(e2.To, e2.To, e2.W*e2.W*s)
					// e1 exists whenever e2 does
					cross := e1.W * e2.W * s
					if e1.To == e2.To {
						cross *= 2
					}
					g.pairs.accumulate(e1.To, e2.To, cross)
				}
			}
		}

		a := v.Adjoint
		if a == 0 {
			continue
		}

		// Creating
		if v.Curvature != 0 {
			if e2.To == id {
				g.pairs.accumulate(e1.To, e1.To, a*v.Curvature)
			} else {
				w := a * v.Curvature
				if e1.To == e2.To {
					w *= 2
				}
				g.pairs.accumulate(e1.To, e2.To, w)
			}
		}

		// Adjoint
		v.Adjoint = 0
		g.vertices[e1.To].Adjoint += a * e1.W
		if e2.To != id {
			g.vertices[e2.To].Adjoint += a * e2.W
		}
	}
}

// pushEdge forwards the coupling (v, k) with weight s along the first-order
// edge e of v. Landing on k itself folds both symmetric halves onto the
// diagonal, hence the doubling.
func (g *Graph) pushEdge(e Edge, k VertexID, s Real) {
	if e.To == k {
		g.pairs.accumulate(k, k, 2*e.W*s)
	} else {
		g.pairs.accumulate(e.To, k, e.W*s)
	}
}
