package pricer

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// PriceAmericanPut prices an American put by Longstaff-Schwartz
// least-squares Monte Carlo: simulate a price grid, walk backward in
// time regressing discounted future cash flows against price on the
// in-the-money paths, and exercise wherever intrinsic value beats the
// fitted continuation value.
//
// Instead of a full cash-flow table, each path carries one pending
// (cash flow, exercise step) pair updated in place during the single
// backward pass. Since at most one cash flow can be realized per path,
// the pair is equivalent to the table's forward scan and keeps the hot
// loop free of allocation.
func PriceAmericanPut(opt OptionSpec, sim SimulationSpec) (float64, error) {
	if err := opt.Validate(); err != nil {
		return 0, err
	}
	if err := sim.Validate(); err != nil {
		return 0, err
	}
	g := simulatePaths(opt, sim)
	return floorAtIntrinsic(inductBackward(opt, sim, g), opt), nil
}

// floorAtIntrinsic applies the time-zero exercise opportunity: the
// holder can always exercise immediately, so the price is never below
// max(0, K-S0). The backward pass stops at step 1, so without this
// floor a deep in-the-money put would price slightly below intrinsic.
func floorAtIntrinsic(price float64, opt OptionSpec) float64 {
	if intrinsic := putIntrinsic(opt.S0, opt.K); intrinsic > price {
		return intrinsic
	}
	return price
}

// inductBackward runs the backward induction and discounts the realized
// cash flows to time zero. The time loop is inherently sequential: the
// regression at step t must observe the finalized state of every step
// after t.
func inductBackward(opt OptionSpec, sim SimulationSpec, g *grid) float64 {
	dt := opt.T / float64(sim.NumSteps)

	// Pending exercise state, one slot per path. cash is the realized
	// (undiscounted) cash flow, exStep the step it occurs at. A path
	// that expires worthless keeps cash == 0.
	cash := make([]float64, sim.NumPaths)
	exStep := make([]int, sim.NumPaths)
	for p := range cash {
		cash[p] = putIntrinsic(g.at(p, sim.NumSteps), opt.K)
		exStep[p] = sim.NumSteps
	}

	// Scratch reused across steps.
	itm := make([]int, 0, sim.NumPaths)
	xs := make([]float64, 0, sim.NumPaths)
	ys := make([]float64, 0, sim.NumPaths)

	for t := sim.NumSteps - 1; t >= 1; t-- {
		itm, xs, ys = itm[:0], xs[:0], ys[:0]

		// Collect regression points from the in-the-money paths. The
		// dependent variable is the path's future cash flow discounted
		// back to t, or zero if nothing has been realized yet. Both
		// slices are filled before any exercise decision is applied,
		// so the fit never sees this step's own updates.
		for p := 0; p < sim.NumPaths; p++ {
			price := g.at(p, t)
			if opt.K-price <= 0 {
				continue
			}
			itm = append(itm, p)
			xs = append(xs, price)
			y := 0.0
			if cash[p] > 0 {
				y = cash[p] * math.Exp(-opt.R*float64(exStep[p]-t)*dt)
			}
			ys = append(ys, y)
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
				cash[p] = intrinsic
				exStep[p] = t
			}
		}
	}

	discounted := make([]float64, sim.NumPaths)
	for p := range discounted {
		discounted[p] = cash[p] * math.Exp(-opt.R*float64(exStep[p])*dt)
	}
	return stat.Mean(discounted, nil)
}
