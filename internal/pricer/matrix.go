package pricer

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// PriceAmericanPutMatrix prices an American put with the tabular
// formulation of the LSM algorithm: a dense cash-flow matrix with one
// column per time step, where each path's discounted future cash flow
// is found by scanning forward for the first nonzero entry. It consumes
// the same random stream as PriceAmericanPut and makes identical
// exercise decisions; the two exist as cross-checks of each other.
func PriceAmericanPutMatrix(opt OptionSpec, sim SimulationSpec) (float64, error) {
	if err := opt.Validate(); err != nil {
		return 0, err
	}
	if err := sim.Validate(); err != nil {
		return 0, err
	}

	g := simulatePaths(opt, sim)
	dt := opt.T / float64(sim.NumSteps)
	cols := sim.NumSteps + 1

	// Cash flows at the step they occur, one column per step. At most
	// one nonzero entry per row at any point in the backward pass.
	cf := mat.NewDense(sim.NumPaths, cols, nil)
	for p := 0; p < sim.NumPaths; p++ {
		cf.Set(p, sim.NumSteps, putIntrinsic(g.at(p, sim.NumSteps), opt.K))
	}

	itm := make([]int, 0, sim.NumPaths)
	xs := make([]float64, 0, sim.NumPaths)
	ys := make([]float64, 0, sim.NumPaths)

	for t := sim.NumSteps - 1; t >= 1; t-- {
		itm, xs, ys = itm[:0], xs[:0], ys[:0]

		for p := 0; p < sim.NumPaths; p++ {
			price := g.at(p, t)
			if opt.K-price <= 0 {
				continue
			}
			itm = append(itm, p)
			xs = append(xs, price)
			ys = append(ys, futureCashFlow(cf, p, t, opt.R, dt))
		}
		if len(itm) == 0 {
			continue
		}

		coef, ok := polyFit(xs, ys)
		for i, p := range itm {
			continuation := 0.0
			if ok {
				continuation = polyEval(coef, xs[i])
			}
			if intrinsic := opt.K - xs[i]; intrinsic > continuation {
				cf.Set(p, t, intrinsic)
				for u := t + 1; u < cols; u++ {
					cf.Set(p, u, 0)
				}
			}
		}
	}

	discounted := make([]float64, sim.NumPaths)
	for p := 0; p < sim.NumPaths; p++ {
		for u := 0; u < cols; u++ {
			if v := cf.At(p, u); v > 0 {
				discounted[p] = v * math.Exp(-opt.R*float64(u)*dt)
				break
			}
		}
	}
	return floorAtIntrinsic(stat.Mean(discounted, nil), opt), nil
}

// futureCashFlow returns the path's first cash flow strictly after
// column t, discounted back to t. Zero if the path has no realized
// cash flow yet.
func futureCashFlow(cf *mat.Dense, path, t int, r, dt float64) float64 {
	_, cols := cf.Dims()
	for u := t + 1; u < cols; u++ {
		if v := cf.At(path, u); v > 0 {
			return v * math.Exp(-r*float64(u-t)*dt)
		}
	}
	return 0
}
