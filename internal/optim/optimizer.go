// Package optim implements unconstrained minimization driven by the
// derivative engine.
//
// This package provides:
//   - Optimizer interface: base interface for all minimizers
//   - GradientDescent: fixed-step first-order descent
//   - Newton: second-order steps solving the engine's Hessian
//
// Example usage:
//
//	sphere := func(g *autodiff.Graph, x []autodiff.Var) autodiff.Var {
//	    return g.Add(g.Mul(x[0], x[0]), g.Mul(x[1], x[1]))
//	}
//	opt := optim.NewNewton(optim.NewtonConfig{})
//	x, iters := opt.Minimize(sphere, []autodiff.Real{-1.2, 1})
package optim

import (
	"math"

	"github.com/edgepush-ml/edgepush/internal/autodiff"
)

// Optimizer is the base interface for all minimizers.
//
// Minimize iterates from x0 until its convergence criterion is met or the
// iteration budget runs out, and returns the final point together with the
// number of iterations taken. The objective is re-recorded on a fresh
// graph at every iterate via autodiff.Eval, so control flow inside f may
// depend on the current point.
type Optimizer interface {
	Minimize(f autodiff.Func, x0 []autodiff.Real) ([]autodiff.Real, int)
}

// gradNorm returns the Euclidean norm of the gradient in r.
func gradNorm(r autodiff.Result) autodiff.Real {
	var sum autodiff.Real
	for i := 0; i < r.Grad.Len(); i++ {
		g := r.Grad.AtVec(i)
		sum += g * g
	}
	return math.Sqrt(sum)
}
