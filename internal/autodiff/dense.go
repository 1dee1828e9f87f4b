package autodiff

import "gonum.org/v1/gonum/mat"

// Dense views over the propagated derivative stores, for callers that feed
// the results into linear algebra (Newton steps, trust regions, eigenvalue
// checks). Valid only after a completed Backward/Propagate.

// GradientVec copies the adjoint of each listed variable into a dense
// gonum vector, in the given order.
func (g *Graph) GradientVec(vars []Var) *mat.VecDense {
	v := mat.NewVecDense(len(vars), nil)
	for i, x := range vars {
		v.SetVec(i, g.Adjoint(x))
	}
	return v
}

// HessianMat copies the pairwise couplings of the listed variables into a
// dense symmetric gonum matrix. Pairs that never interacted read as zero.
func (g *Graph) HessianMat(vars []Var) *mat.SymDense {
	h := mat.NewSymDense(len(vars), nil)
	for i, a := range vars {
		for j := i; j < len(vars); j++ {
			h.SetSym(i, j, g.Hessian(a, vars[j]))
		}
	}
	return h
}
