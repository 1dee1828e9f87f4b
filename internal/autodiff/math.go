package autodiff

import "math"

// Transcendental operations. Each records one unary vertex whose weight is
// the first derivative and whose curvature is the second derivative,
// evaluated at the operand value. Domain errors (Sqrt of a negative, Log of
// a non-positive, Asin outside [-1, 1]) follow standard floating-point
// semantics: NaN weights propagate through the sweep unflagged.

// Sqrt records √x.
// Weight: 1/(2√x). Curvature: -1/(4x√x).
func (g *Graph) Sqrt(x Var) Var {
	sqrtX := math.Sqrt(x.val)
	invSqrtX := 1 / sqrtX
	return g.unary(sqrtX, x, 0.5*invSqrtX, -0.25*invSqrtX/x.val)
}

// Pow records x^a for a constant real exponent a.
// Weight: a·x^(a-1). Curvature: a(a-1)·x^(a-2).
func (g *Graph) Pow(x Var, a Real) Var {
	return g.unary(math.Pow(x.val, a), x,
		a*math.Pow(x.val, a-1),
		a*(a-1)*math.Pow(x.val, a-2))
}

// PowVar records x^y for a variable exponent as exp(y·log x). The
// composition exists because x^y has non-zero pure second derivatives in
// both operands, which a directly recorded binary vertex cannot carry.
func (g *Graph) PowVar(x, y Var) Var {
	return g.Exp(g.Mul(y, g.Log(x)))
}

// Exp records eˣ. Weight and curvature are both eˣ.
func (g *Graph) Exp(x Var) Var {
	expX := math.Exp(x.val)
	return g.unary(expX, x, expX, expX)
}

// Log records the natural logarithm.
// Weight: 1/x. Curvature: -1/x².
func (g *Graph) Log(x Var) Var {
	invX := 1 / x.val
	return g.unary(math.Log(x.val), x, invX, -invX*invX)
}

// Sin records sin x. Weight: cos x. Curvature: -sin x.
func (g *Graph) Sin(x Var) Var {
	sinX := math.Sin(x.val)
	return g.unary(sinX, x, math.Cos(x.val), -sinX)
}

// Cos records cos x. Weight: -sin x. Curvature: -cos x.
func (g *Graph) Cos(x Var) Var {
	cosX := math.Cos(x.val)
	return g.unary(cosX, x, -math.Sin(x.val), -cosX)
}

// Tan records tan x.
// Weight: sec²x. Curvature: 2·tan x·sec²x.
func (g *Graph) Tan(x Var) Var {
	tanX := math.Tan(x.val)
	secX := 1 / math.Cos(x.val)
	sec2X := secX * secX
	return g.unary(tanX, x, sec2X, 2*tanX*sec2X)
}

// Asin records arcsin x.
// Weight: 1/√(1-x²). Curvature: x/(1-x²)^(3/2).
func (g *Graph) Asin(x Var) Var {
	tmp := 1 / (1 - x.val*x.val)
	sqrtTmp := math.Sqrt(tmp)
	return g.unary(math.Asin(x.val), x, sqrtTmp, x.val*sqrtTmp*tmp)
}

// Acos records arccos x.
// Weight: -1/√(1-x²). Curvature: -x/(1-x²)^(3/2).
func (g *Graph) Acos(x Var) Var {
	tmp := 1 / (1 - x.val*x.val)
	negSqrtTmp := -math.Sqrt(tmp)
	return g.unary(math.Acos(x.val), x, negSqrtTmp, x.val*negSqrtTmp*tmp)
}

// Atan records arctan x.
// Weight: 1/(1+x²). Curvature: -2x/(1+x²)².
func (g *Graph) Atan(x Var) Var {
	tmp := 1 / (1 + x.val*x.val)
	return g.unary(math.Atan(x.val), x, tmp, -2*x.val*tmp*tmp)
}

// Tanh records tanh x.
// Weight: 1-tanh²x. Curvature: -2·tanh x·(1-tanh²x).
func (g *Graph) Tanh(x Var) Var {
	tanhX := math.Tanh(x.val)
	w := 1 - tanhX*tanhX
	return g.unary(tanhX, x, w, -2*tanhX*w)
}

// Sigmoid records σ(x) = 1/(1+e⁻ˣ).
// Weight: σ(1-σ). Curvature: σ(1-σ)(1-2σ).
func (g *Graph) Sigmoid(x Var) Var {
	s := 1 / (1 + math.Exp(-x.val))
	w := s * (1 - s)
	return g.unary(s, x, w, w*(1-2*s))
}
