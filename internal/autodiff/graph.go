// Package autodiff implements reverse-mode automatic differentiation with
// simultaneous first- and second-order derivatives (gradient and Hessian).
//
// The computation graph is recorded implicitly: every elementary operation
// appends one vertex holding the local derivative weights of the result with
// respect to its operands. A single reverse sweep (edge pushing, see
// propagate.go) then produces the gradient and the full Hessian in one pass,
// exploiting the symmetry of the Hessian instead of running one
// forward/reverse pair per input dimension.
//
// Usage:
//
//	g := autodiff.New()
//	x := g.NewVar(3)
//	y := g.NewVar(4)
//	z := g.Mul(x, y)
//	g.Backward(z)
//	g.Adjoint(x)    // dz/dx = 4
//	g.Hessian(x, y) // d²z/dxdy = 1
package autodiff

// Real is the scalar type used for values, weights and adjoints.
// It is an alias so values flow into gonum without conversion; change it to
// float32 to run the whole engine in single precision.
type Real = float64

// VertexID identifies one recorded vertex. IDs are issued strictly
// increasing from zero, so creation order doubles as topological order.
type VertexID uint32

// Edge points from a result vertex to one of its operands. W is the local
// partial derivative of the result with respect to that operand, evaluated
// at recording time and immutable afterwards.
type Edge struct {
	To VertexID
	W  Real
}

// Vertex is one recorded value in the computation graph.
//
// A vertex has at most two outgoing edges. An absent edge is encoded by the
// sentinel E.To == the vertex's own id; there is no separate flag. Every
// present edge targets a strictly smaller id (operands are recorded before
// the results that use them), which is what makes the reverse sweep in
// Propagate sound.
//
// Curvature is the single second-order scalar fixed at recording time:
// d²f/dx² for a unary operation, d²f/dxdy for a binary one. Binary
// operations must have zero pure second derivatives per operand; see the
// contract note in ops.go.
type Vertex struct {
	E1, E2    Edge
	Adjoint   Real
	Curvature Real
}

// Var is a variable handle: a value snapshot plus a reference into the
// graph that recorded it. Handles are cheap and copyable and own no graph
// storage; using a handle with a different or cleared graph is a fatal
// caller error.
type Var struct {
	val Real
	id  VertexID
}

// Value returns the recorded value.
func (v Var) Value() Real { return v.val }

// ID returns the vertex id backing this handle.
func (v Var) ID() VertexID { return v.id }

// Value comparisons. These compare only the value component and never touch
// the graph.

func (v Var) Less(o Var) bool      { return v.val < o.val }
func (v Var) LessEq(o Var) bool    { return v.val <= o.val }
func (v Var) Greater(o Var) bool   { return v.val > o.val }
func (v Var) GreaterEq(o Var) bool { return v.val >= o.val }
func (v Var) Equal(o Var) bool     { return v.val == o.val }

// Graph owns the recorded vertices and the sparse second-order coupling
// store. A Graph is the recording target for every operation invoked
// through it; it is not safe for concurrent use. Independent goroutines
// must each own their own Graph.
type Graph struct {
	vertices []Vertex
	pairs    pairStore
}

// New creates an empty graph ready for recording.
func New() *Graph {
	return &Graph{
		vertices: make([]Vertex, 0, 64), // Pre-allocate for common case
	}
}

// NewVar appends an input leaf (a vertex with no outgoing edges) and
// returns its handle.
func (g *Graph) NewVar(val Real) Var {
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{
		E1: Edge{To: id},
		E2: Edge{To: id},
	})
	return Var{val: val, id: id}
}

// NumVertices returns the number of recorded vertices.
func (g *Graph) NumVertices() int {
	return len(g.vertices)
}

// Vertex returns a copy of the vertex with the given id. Intended for
// inspection and invariant checking, not for the hot path.
func (g *Graph) Vertex(id VertexID) Vertex {
	return g.vertices[id]
}

// Clear empties the vertex collection and the coupling store so the graph's
// storage can be reused for a new recording. Handles issued before Clear
// must not be used afterwards.
func (g *Graph) Clear() {
	g.vertices = g.vertices[:0]
	g.pairs.clear()
}

// SetAdjoint writes the first-order adjoint accumulator of v's vertex.
// Called once before Propagate to seed the output (typically with 1, or
// with arbitrary weights for weighted multi-output sums).
func (g *Graph) SetAdjoint(v Var, adj Real) {
	g.vertices[v.id].Adjoint = adj
}

// Adjoint reads a vertex's first-order adjoint. After a completed
// propagation this is the gradient entry for that variable; before seeding
// or propagation it is simply the zero-initialized accumulator.
func (g *Graph) Adjoint(v Var) Real {
	return g.vertices[v.id].Adjoint
}

// Hessian reads the accumulated second-order coupling for a pair of
// variables (the Hessian entry), including the diagonal for a == b. Only
// the canonical ordering of a pair is stored, so Hessian(a, b) and
// Hessian(b, a) are the same entry by construction.
func (g *Graph) Hessian(a, b Var) Real {
	return g.pairs.lookup(a.id, b.id)
}

// Backward seeds v's adjoint to 1 and runs the propagation sweep. It is
// the common case of SetAdjoint followed by Propagate.
func (g *Graph) Backward(v Var) {
	g.SetAdjoint(v, 1)
	g.Propagate()
}

// unary records a vertex with one outgoing edge.
// w is df/dx and curv is d²f/dx², both evaluated at the operand value.
func (g *Graph) unary(val Real, x Var, w, curv Real) Var {
	out := g.NewVar(val)
	v := &g.vertices[out.id]
	v.E1 = Edge{To: x.id, W: w}
	v.Curvature = curv
	return out
}

// binary records a vertex with two outgoing edges.
// wx, wy are the partials with respect to each operand and curv is the
// mixed second derivative d²f/dxdy.
func (g *Graph) binary(val Real, x, y Var, wx, wy, curv Real) Var {
	out := g.NewVar(val)
	v := &g.vertices[out.id]
	v.E1 = Edge{To: x.id, W: wx}
	v.E2 = Edge{To: y.id, W: wy}
	v.Curvature = curv
	return out
}
