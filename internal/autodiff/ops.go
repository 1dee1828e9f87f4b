package autodiff

// Elementary arithmetic operations. Every operation computes its result
// value with the ordinary formula, records one vertex, and fixes the local
// first-order weight(s) and the curvature scalar at the current operand
// values.
//
// Contract for binary operations: the recorded curvature is the mixed
// second derivative d²f/dxdy only; the pure per-operand second derivatives
// are assumed zero. A binary operation for which they are not zero must be
// composed from unary primitives instead of recorded directly — Div goes
// through Inv, variable-exponent PowVar goes through Exp/Log (math.go).

// Add records x + y.
// Weights: d/dx = 1, d/dy = 1. Curvature: 0.
func (g *Graph) Add(x, y Var) Var {
	return g.binary(x.val+y.val, x, y, 1, 1, 0)
}

// AddConst records x + c for a constant c.
func (g *Graph) AddConst(x Var, c Real) Var {
	return g.unary(x.val+c, x, 1, 0)
}

// Sub records x - y.
// Weights: d/dx = 1, d/dy = -1. Curvature: 0.
func (g *Graph) Sub(x, y Var) Var {
	return g.binary(x.val-y.val, x, y, 1, -1, 0)
}

// SubConst records x - c for a constant c.
func (g *Graph) SubConst(x Var, c Real) Var {
	return g.unary(x.val-c, x, 1, 0)
}

// ConstSub records c - x for a constant c.
func (g *Graph) ConstSub(c Real, x Var) Var {
	return g.unary(c-x.val, x, -1, 0)
}

// Neg records -x.
func (g *Graph) Neg(x Var) Var {
	return g.unary(-x.val, x, -1, 0)
}

// Mul records x * y.
// Weights: d/dx = y, d/dy = x. Curvature: d²/dxdy = 1.
func (g *Graph) Mul(x, y Var) Var {
	return g.binary(x.val*y.val, x, y, y.val, x.val, 1)
}

// MulConst records x * c for a constant c.
// Weight: c. Curvature: 0.
func (g *Graph) MulConst(x Var, c Real) Var {
	return g.unary(x.val*c, x, c, 0)
}

// Inv records 1 / x.
// Weight: -1/x². Curvature: 2/x³.
// Division by zero follows IEEE semantics; Inf and NaN weights propagate
// through the sweep like any other value.
func (g *Graph) Inv(x Var) Var {
	inv := 1 / x.val
	invSq := inv * inv
	return g.unary(inv, x, -invSq, 2*invSq*inv)
}

// Div records x / y as x * Inv(y), so each recorded primitive keeps the
// zero-pure-second-derivative convention.
func (g *Graph) Div(x, y Var) Var {
	return g.Mul(x, g.Inv(y))
}

// DivConst records x / c for a constant c.
func (g *Graph) DivConst(x Var, c Real) Var {
	return g.MulConst(x, 1/c)
}

// ConstDiv records c / x for a constant c.
func (g *Graph) ConstDiv(c Real, x Var) Var {
	return g.MulConst(g.Inv(x), c)
}

// Powi records x^n for an integer exponent by repeated squaring, keeping
// the vertex count logarithmic in n. Negative exponents invert the
// positive power; n == 0 records a fresh constant-one leaf.
func (g *Graph) Powi(x Var, n int) Var {
	if n == 0 {
		return g.NewVar(1)
	}
	if n < 0 {
		return g.Inv(g.Powi(x, -n))
	}
	result, base := x, x
	n--
	for n > 0 {
		if n&1 == 1 {
			result = g.Mul(result, base)
		}
		n >>= 1
		if n > 0 {
			base = g.Mul(base, base)
		}
	}
	return result
}
