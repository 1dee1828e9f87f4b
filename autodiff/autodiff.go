// Copyright 2026 Edgepush Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation with
// simultaneous gradient and Hessian computation.
//
// Expressions are recorded on a Graph; a single backward sweep then yields
// every first and second partial derivative of the seeded output. Two
// surfaces are offered:
//
// Explicit graphs (safe for concurrent use of independent graphs):
//
//	g := autodiff.New()
//	x := g.NewVar(3)
//	y := g.NewVar(4)
//	z := g.Mul(x, y)
//	g.Backward(z)
//	g.Adjoint(x)    // dz/dx = 4
//	g.Hessian(x, y) // d²z/dxdy = 1
//
// Or the active-graph free functions, which record into whichever graph
// was last passed to Activate. The binding is a single package-level slot
// with last-bind-wins semantics and no synchronization: it is meant for
// straight-line single-goroutine use. Concurrent recording must go through
// explicit graph methods or EvalBatch, one graph per goroutine.
//
//	autodiff.Activate(autodiff.New())
//	x := autodiff.NewVar(3)
//	y := autodiff.NewVar(4)
//	z := autodiff.Mul(x, y)
//	autodiff.Backward(z)
package autodiff

import (
	"github.com/edgepush-ml/edgepush/internal/autodiff"
	"github.com/edgepush-ml/edgepush/internal/parallel"
)

// Real is the scalar type used throughout the engine (float64).
type Real = autodiff.Real

// VertexID identifies one recorded vertex.
type VertexID = autodiff.VertexID

// Var is a variable handle: a value snapshot plus a vertex reference.
type Var = autodiff.Var

// Graph owns a recorded computation graph and its derivative stores.
type Graph = autodiff.Graph

// Func builds a scalar expression on a graph from input variables.
type Func = autodiff.Func

// Result bundles the value, gradient and Hessian of one evaluation.
type Result = autodiff.Result

// BatchConfig controls parallelism of EvalBatch.
type BatchConfig = parallel.Config

// New creates an empty graph ready for recording.
func New() *Graph { return autodiff.New() }

// Eval records f at x on a fresh graph and returns value, gradient and
// Hessian.
func Eval(f Func, x []Real) Result { return autodiff.Eval(f, x) }

// EvalBatch evaluates f at every point, one confined graph per worker.
func EvalBatch(f Func, points [][]Real, cfg BatchConfig) []Result {
	return autodiff.EvalBatch(f, points, cfg)
}

// DefaultBatchConfig returns the CPU-count based parallel configuration.
func DefaultBatchConfig() BatchConfig { return parallel.DefaultConfig() }

// SerialBatchConfig forces sequential batch evaluation.
func SerialBatchConfig() BatchConfig { return parallel.Serial() }

// active is the graph bound by Activate. Deliberately a plain package
// variable: one binding per process, last bind wins, no nesting stack.
var active *Graph

// Activate binds g as the recording target for the free functions below.
func Activate(g *Graph) { active = g }

// Active returns the currently bound graph, or nil before any Activate.
func Active() *Graph { return active }

// NewVar records an input leaf on the active graph.
func NewVar(val Real) Var { return active.NewVar(val) }

// SetAdjoint seeds a vertex's adjoint on the active graph.
func SetAdjoint(v Var, adj Real) { active.SetAdjoint(v, adj) }

// Propagate runs the backward sweep on the active graph.
func Propagate() { active.Propagate() }

// Backward seeds v to 1 and propagates on the active graph.
func Backward(v Var) { active.Backward(v) }

// Adjoint reads a gradient entry from the active graph.
func Adjoint(v Var) Real { return active.Adjoint(v) }

// Hessian reads a second-derivative entry from the active graph.
func Hessian(a, b Var) Real { return active.Hessian(a, b) }

// Elementary operations on the active graph.

func Add(x, y Var) Var { return active.Add(x, y) }

func AddConst(x Var, c Real) Var { return active.AddConst(x, c) }

func Sub(x, y Var) Var { return active.Sub(x, y) }

func SubConst(x Var, c Real) Var { return active.SubConst(x, c) }

func ConstSub(c Real, x Var) Var { return active.ConstSub(c, x) }

func Neg(x Var) Var { return active.Neg(x) }

func Mul(x, y Var) Var { return active.Mul(x, y) }

func MulConst(x Var, c Real) Var { return active.MulConst(x, c) }

func Inv(x Var) Var { return active.Inv(x) }

func Div(x, y Var) Var { return active.Div(x, y) }

func DivConst(x Var, c Real) Var { return active.DivConst(x, c) }

func ConstDiv(c Real, x Var) Var { return active.ConstDiv(c, x) }

func Powi(x Var, n int) Var { return active.Powi(x, n) }

func Sqrt(x Var) Var { return active.Sqrt(x) }

func Pow(x Var, a Real) Var { return active.Pow(x, a) }

func PowVar(x, y Var) Var { return active.PowVar(x, y) }

func Exp(x Var) Var { return active.Exp(x) }

func Log(x Var) Var { return active.Log(x) }

func Sin(x Var) Var { return active.Sin(x) }

func Cos(x Var) Var { return active.Cos(x) }

func Tan(x Var) Var { return active.Tan(x) }

func Asin(x Var) Var { return active.Asin(x) }

func Acos(x Var) Var { return active.Acos(x) }

func Atan(x Var) Var { return active.Atan(x) }

func Tanh(x Var) Var { return active.Tanh(x) }

func Sigmoid(x Var) Var { return active.Sigmoid(x) }
