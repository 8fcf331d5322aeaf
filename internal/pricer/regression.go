package pricer

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// polyCoeffs holds a degree-2 polynomial c0 + c1*x + c2*x^2.
type polyCoeffs [3]float64

// polyFit fits a degree-2 least-squares polynomial of y against x using
// the basis {1, x, x^2}. The solve goes through QR factorization of the
// Vandermonde design matrix.
//
// ok is false when the fit cannot be trusted: fewer points than
// coefficients, or a singular system (all x identical). Callers fall
// back to a continuation value of zero in that case, so a degenerate
// step can never abort a pricing run.
func polyFit(x, y []float64) (polyCoeffs, bool) {
	var c polyCoeffs
	if len(x) != len(y) || len(x) < 3 {
		return c, false
	}

	design := mat.NewDense(len(x), 3, nil)
	for i, v := range x {
		design.SetRow(i, []float64{1, v, v * v})
	}

	var coef mat.VecDense
	if err := coef.SolveVec(design, mat.NewVecDense(len(y), y)); err != nil {
		// Any error, mat.Condition included, means the coefficients
		// cannot be trusted: a rank-deficient design (all x identical)
		// reports ill conditioning yet still fills the vector with
		// finite garbage. Well-posed fits on price data stay orders of
		// magnitude below the condition threshold, so nothing usable is
		// rejected here.
		return c, false
	}

	c[0], c[1], c[2] = coef.AtVec(0), coef.AtVec(1), coef.AtVec(2)
	for _, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return polyCoeffs{}, false
		}
	}
	return c, true
}

// polyEval evaluates the polynomial at x (Horner form).
func polyEval(c polyCoeffs, x float64) float64 {
	return c[0] + x*(c[1]+x*c[2])
}
