package autodiff_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edgepush-ml/edgepush/internal/autodiff"
	"github.com/edgepush-ml/edgepush/internal/parallel"
)

func peaks(g *autodiff.Graph, x []autodiff.Var) autodiff.Var {
	// x·e^(-x²-y²), a smooth bump with sign-changing curvature
	x2 := g.Mul(x[0], x[0])
	y2 := g.Mul(x[1], x[1])
	return g.Mul(x[0], g.Exp(g.Neg(g.Add(x2, y2))))
}

// TestEvalBatch_MatchesSerial compares the parallel batch against
// one-at-a-time evaluation, entry for entry.
func TestEvalBatch_MatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	points := make([][]autodiff.Real, 64)
	for i := range points {
		points[i] = []autodiff.Real{rng.Float64()*4 - 2, rng.Float64()*4 - 2}
	}

	got := autodiff.EvalBatch(peaks, points, parallel.DefaultConfig())
	require.Len(t, got, len(points))

	for i, pt := range points {
		want := autodiff.Eval(peaks, pt)
		require.InDelta(t, want.Value, got[i].Value, 1e-14, "value at point %d", i)
		for j := range pt {
			require.InDelta(t, want.Grad.AtVec(j), got[i].Grad.AtVec(j), 1e-12,
				"gradient %d at point %d", j, i)
			for k := range pt {
				require.InDelta(t, want.Hess.At(j, k), got[i].Hess.At(j, k), 1e-12,
					"hessian (%d,%d) at point %d", j, k, i)
			}
		}
	}
}

// TestEvalBatch_Serial exercises the sequential fallback path.
func TestEvalBatch_Serial(t *testing.T) {
	points := [][]autodiff.Real{{0.5, 0.5}, {-1, 1}}
	got := autodiff.EvalBatch(peaks, points, parallel.Serial())
	require.Len(t, got, 2)
	for i := range got {
		require.NotNil(t, got[i].Grad)
		require.NotNil(t, got[i].Hess)
	}
}

// TestEval_GradientAndHessianShapes sanity-checks the dense export sizes.
func TestEval_GradientAndHessianShapes(t *testing.T) {
	res := autodiff.Eval(peaks, []autodiff.Real{0.3, -0.4})
	require.Equal(t, 2, res.Grad.Len())
	r, c := res.Hess.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
}
