package autodiff

import (
	"gonum.org/v1/gonum/mat"

	"github.com/edgepush-ml/edgepush/internal/parallel"
)

// Func builds a scalar expression on the given graph from the input
// variables. It must record through g only; the engine provides no
// synchronization for graphs shared across goroutines.
type Func func(g *Graph, x []Var) Var

// Result bundles the value, gradient and Hessian of one evaluation.
type Result struct {
	Value Real
	Grad  *mat.VecDense
	Hess  *mat.SymDense
}

// Eval records f at the point x on a fresh graph, runs the backward sweep,
// and returns value, gradient and Hessian.
func Eval(f Func, x []Real) Result {
	g := New()
	vars := make([]Var, len(x))
	for i, xi := range x {
		vars[i] = g.NewVar(xi)
	}
	out := f(g, vars)
	g.Backward(out)
	return Result{
		Value: out.Value(),
		Grad:  g.GradientVec(vars),
		Hess:  g.HessianMat(vars),
	}
}

// EvalBatch evaluates f at every point, in parallel when the config allows
// it. Each evaluation owns a private graph confined to its worker, which is
// the only supported way to compute independent Hessians concurrently.
func EvalBatch(f Func, points [][]Real, cfg parallel.Config) []Result {
	results := make([]Result, len(points))
	parallel.For(len(points), func(i int) {
		results[i] = Eval(f, points[i])
	}, cfg)
	return results
}
