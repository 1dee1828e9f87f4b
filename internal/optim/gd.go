package optim

import (
	"github.com/edgepush-ml/edgepush/internal/autodiff"
)

// GradientDescent implements fixed-step gradient descent.
//
// Update rule:
//
//	x = x - lr * ∇f(x)
//
// Cheap per iteration but first-order only; use Newton when the Hessian is
// affordable, which for this engine it usually is.
type GradientDescent struct {
	lr      autodiff.Real
	maxIter int
	tol     autodiff.Real
}

// GradientDescentConfig holds configuration for GradientDescent.
type GradientDescentConfig struct {
	LR      autodiff.Real // Step size (default: 0.01)
	MaxIter int           // Iteration budget (default: 1000)
	Tol     autodiff.Real // Gradient-norm stopping tolerance (default: 1e-8)
}

// NewGradientDescent creates a gradient descent minimizer.
func NewGradientDescent(config GradientDescentConfig) *GradientDescent {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.MaxIter == 0 {
		config.MaxIter = 1000
	}
	if config.Tol == 0 {
		config.Tol = 1e-8
	}
	return &GradientDescent{
		lr:      config.LR,
		maxIter: config.MaxIter,
		tol:     config.Tol,
	}
}

// Minimize runs descent from x0. x0 is not modified.
func (gd *GradientDescent) Minimize(f autodiff.Func, x0 []autodiff.Real) ([]autodiff.Real, int) {
	x := append([]autodiff.Real(nil), x0...)
	for iter := 1; iter <= gd.maxIter; iter++ {
		r := autodiff.Eval(f, x)
		if gradNorm(r) < gd.tol {
			return x, iter
		}
		for i := range x {
			x[i] -= gd.lr * r.Grad.AtVec(i)
		}
	}
	return x, gd.maxIter
}
