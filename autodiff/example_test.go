// Copyright 2026 Edgepush Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"fmt"

	"github.com/edgepush-ml/edgepush/autodiff"
)

// Gradient and Hessian of z = x*y in one backward sweep.
func Example() {
	g := autodiff.New()
	x := g.NewVar(3)
	y := g.NewVar(4)
	z := g.Mul(x, y)

	g.Backward(z)

	fmt.Printf("dz/dx = %.0f\n", g.Adjoint(x))
	fmt.Printf("dz/dy = %.0f\n", g.Adjoint(y))
	fmt.Printf("d2z/dxdy = %.0f\n", g.Hessian(x, y))
	// Output:
	// dz/dx = 4
	// dz/dy = 3
	// d2z/dxdy = 1
}

// The free-function surface records into the graph bound by Activate.
func ExampleActivate() {
	g := autodiff.New()
	autodiff.Activate(g)

	x := autodiff.NewVar(1)
	z := autodiff.Mul(autodiff.Sin(x), x)
	autodiff.Backward(z)

	fmt.Printf("dz/dx = %.6f\n", autodiff.Adjoint(x))
	fmt.Printf("d2z/dx2 = %.6f\n", autodiff.Hessian(x, x))
	// Output:
	// dz/dx = 1.381773
	// d2z/dx2 = 0.239134
}
