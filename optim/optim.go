// Copyright 2026 Edgepush Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides unconstrained minimizers driven by the derivative
// engine: Newton's method consuming the exact Hessian, and fixed-step
// gradient descent.
//
// Example:
//
//	opt := optim.NewNewton(optim.NewtonConfig{})
//	x, iters := opt.Minimize(f, []autodiff.Real{-1.2, 1})
package optim

import (
	"github.com/edgepush-ml/edgepush/internal/optim"
)

// Optimizer is the base interface for all minimizers.
type Optimizer = optim.Optimizer

// Newton minimizes with damped Newton steps using the exact Hessian.
type Newton = optim.Newton

// NewtonConfig holds configuration for Newton.
type NewtonConfig = optim.NewtonConfig

// NewNewton creates a Newton minimizer.
func NewNewton(config NewtonConfig) *Newton {
	return optim.NewNewton(config)
}

// GradientDescent minimizes with fixed-step first-order descent.
type GradientDescent = optim.GradientDescent

// GradientDescentConfig holds configuration for GradientDescent.
type GradientDescentConfig = optim.GradientDescentConfig

// NewGradientDescent creates a gradient descent minimizer.
func NewGradientDescent(config GradientDescentConfig) *GradientDescent {
	return optim.NewGradientDescent(config)
}
