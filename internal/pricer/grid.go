package pricer

import (
	"math"

	"golang.org/x/exp/rand"
)

// grid holds simulated asset prices, one row per path and numSteps+1
// columns. Column 0 is fixed at S0. Generated once, never mutated
// afterwards.
type grid struct {
	paths  int
	steps  int       // time steps; columns = steps+1
	prices []float64 // row-major, len = paths*(steps+1)
}

func (g *grid) at(path, step int) float64 {
	return g.prices[path*(g.steps+1)+step]
}

// simulatePaths generates a price grid under geometric Brownian motion
// using the exact-solution discretization
//
//	log S[t] = log S[t-1] + (r - sigma^2/2) dt + sigma sqrt(dt) Z
//
// which is exact at any step size. Draws are consumed path-major: all
// steps of path 0, then path 1, and so on. That order is shared by
// every backend that reuses the single-stream generator.
func simulatePaths(opt OptionSpec, sim SimulationSpec) *grid {
	rng := rand.New(rand.NewSource(sim.Seed))
	g := newGrid(sim)
	for p := 0; p < sim.NumPaths; p++ {
		fillPath(g.row(p), opt, sim, rng)
	}
	return g
}

func newGrid(sim SimulationSpec) *grid {
	return &grid{
		paths:  sim.NumPaths,
		steps:  sim.NumSteps,
		prices: make([]float64, sim.NumPaths*(sim.NumSteps+1)),
	}
}

func (g *grid) row(path int) []float64 {
	cols := g.steps + 1
	return g.prices[path*cols : (path+1)*cols]
}

// fillPath writes one simulated trajectory into row. The log price is
// carried forward so each step costs one normal draw and one Exp.
func fillPath(row []float64, opt OptionSpec, sim SimulationSpec, rng *rand.Rand) {
	dt := opt.T / float64(sim.NumSteps)
	drift := (opt.R - 0.5*opt.Sigma*opt.Sigma) * dt
	vol := opt.Sigma * math.Sqrt(dt)

	row[0] = opt.S0
	logS := math.Log(opt.S0)
	for t := 1; t < len(row); t++ {
		logS += drift + vol*rng.NormFloat64()
		row[t] = math.Exp(logS)
	}
}

// putIntrinsic is the immediate exercise value of a put.
func putIntrinsic(s, k float64) float64 {
	if v := k - s; v > 0 {
		return v
	}
	return 0
}
