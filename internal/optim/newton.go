package optim

import (
	"gonum.org/v1/gonum/mat"

	"github.com/edgepush-ml/edgepush/internal/autodiff"
)

// Newton implements Newton's method for unconstrained minimization.
//
// Update rule:
//
//	solve H(x) d = -∇f(x)
//	x = x + d
//
// The Hessian comes straight out of the engine's backward sweep, so every
// iteration costs one recording plus one Cholesky factorization. When the
// Hessian is not positive definite, increasing multiples of the identity
// are added until the factorization succeeds (Levenberg-style damping),
// which keeps the step a descent direction far from the minimum.
type Newton struct {
	maxIter int
	tol     autodiff.Real
	damping autodiff.Real
}

// NewtonConfig holds configuration for Newton.
type NewtonConfig struct {
	MaxIter int           // Iteration budget (default: 100)
	Tol     autodiff.Real // Gradient-norm stopping tolerance (default: 1e-10)
	Damping autodiff.Real // Initial diagonal damping on factorization failure (default: 1e-4)
}

// NewNewton creates a Newton minimizer.
func NewNewton(config NewtonConfig) *Newton {
	if config.MaxIter == 0 {
		config.MaxIter = 100
	}
	if config.Tol == 0 {
		config.Tol = 1e-10
	}
	if config.Damping == 0 {
		config.Damping = 1e-4
	}
	return &Newton{
		maxIter: config.MaxIter,
		tol:     config.Tol,
		damping: config.Damping,
	}
}

// Minimize runs Newton iterations from x0. x0 is not modified.
func (n *Newton) Minimize(f autodiff.Func, x0 []autodiff.Real) ([]autodiff.Real, int) {
	x := append([]autodiff.Real(nil), x0...)
	dim := len(x)
	step := mat.NewVecDense(dim, nil)

	for iter := 1; iter <= n.maxIter; iter++ {
		r := autodiff.Eval(f, x)
		if gradNorm(r) < n.tol {
			return x, iter
		}
		n.solveStep(step, r)
		for i := range x {
			x[i] -= step.AtVec(i)
		}
	}
	return x, n.maxIter
}

// solveStep solves H d = ∇f into dst, damping the diagonal until the
// Cholesky factorization succeeds.
func (n *Newton) solveStep(dst *mat.VecDense, r autodiff.Result) {
	dim := r.Grad.Len()
	var chol mat.Cholesky
	if chol.Factorize(r.Hess) {
		if err := chol.SolveVecTo(dst, r.Grad); err == nil {
			return
		}
	}

	damped := mat.NewSymDense(dim, nil)
	for lambda := n.damping; ; lambda *= 10 {
		damped.CopySym(r.Hess)
		for i := 0; i < dim; i++ {
			damped.SetSym(i, i, damped.At(i, i)+lambda)
		}
		if chol.Factorize(damped) {
			if err := chol.SolveVecTo(dst, r.Grad); err == nil {
				return
			}
		}
		if lambda > 1e12 {
			// Give up on curvature, fall back to a plain gradient step.
			dst.CopyVec(r.Grad)
			return
		}
	}
}
