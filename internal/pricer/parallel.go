package pricer

import (
	"math"
	"runtime"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// PriceAmericanPutParallel prices an American put with the same
// semantics as PriceAmericanPut, sharding the per-path work across
// goroutines. Path simulation and per-step regression-point collection
// are embarrassingly parallel; the backward time loop itself stays
// strictly sequential because step t's regression must observe the
// finalized state of every later step.
//
// Each path draws from its own stream derived from the seed, so the
// result is deterministic for a fixed seed regardless of GOMAXPROCS.
// The stream layout differs from the single-stream backends, so prices
// agree in distribution, not bit-for-bit.
func PriceAmericanPutParallel(opt OptionSpec, sim SimulationSpec) (float64, error) {
	if err := opt.Validate(); err != nil {
		return 0, err
	}
	if err := sim.Validate(); err != nil {
		return 0, err
	}

	shards := runtime.GOMAXPROCS(0)
	if shards > sim.NumPaths {
		shards = sim.NumPaths
	}

	g := newGrid(sim)
	var grp errgroup.Group
	for s := 0; s < shards; s++ {
		lo, hi := shardRange(sim.NumPaths, shards, s)
		grp.Go(func() error {
			for p := lo; p < hi; p++ {
				rng := rand.New(rand.NewSource(pathSeed(sim.Seed, p)))
				fillPath(g.row(p), opt, sim, rng)
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return 0, err
	}

	dt := opt.T / float64(sim.NumSteps)
	cash := make([]float64, sim.NumPaths)
	exStep := make([]int, sim.NumPaths)
	for p := range cash {
		cash[p] = putIntrinsic(g.at(p, sim.NumSteps), opt.K)
		exStep[p] = sim.NumSteps
	}

	// Per-shard scratch, merged in shard order after each collection so
	// the regression input ordering matches the path ordering exactly.
	type scratch struct {
		itm    []int
		xs, ys []float64
	}
	shardScratch := make([]scratch, shards)

	itm := make([]int, 0, sim.NumPaths)
	xs := make([]float64, 0, sim.NumPaths)
	ys := make([]float64, 0, sim.NumPaths)

	for t := sim.NumSteps - 1; t >= 1; t-- {
		var collect errgroup.Group
		for s := 0; s < shards; s++ {
			lo, hi := shardRange(sim.NumPaths, shards, s)
			sc := &shardScratch[s]
			collect.Go(func() error {
				sc.itm, sc.xs, sc.ys = sc.itm[:0], sc.xs[:0], sc.ys[:0]
				for p := lo; p < hi; p++ {
					price := g.at(p, t)
					if opt.K-price <= 0 {
						continue
					}
					sc.itm = append(sc.itm, p)
					sc.xs = append(sc.xs, price)
					y := 0.0
					if cash[p] > 0 {
						y = cash[p] * math.Exp(-opt.R*float64(exStep[p]-t)*dt)
					}
					sc.ys = append(sc.ys, y)
				}
				return nil
			})
		}
		if err := collect.Wait(); err != nil {
			return 0, err
		}

		itm, xs, ys = itm[:0], xs[:0], ys[:0]
		for s := range shardScratch {
			itm = append(itm, shardScratch[s].itm...)
			xs = append(xs, shardScratch[s].xs...)
			ys = append(ys, shardScratch[s].ys...)
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
	return floorAtIntrinsic(stat.Mean(discounted, nil), opt), nil
}

// shardRange splits n items into count contiguous ranges and returns
// the half-open bounds of shard s.
func shardRange(n, count, s int) (lo, hi int) {
	size := n / count
	rem := n % count
	lo = s*size + min(s, rem)
	hi = lo + size
	if s < rem {
		hi++
	}
	return lo, hi
}

// pathSeed derives an independent stream seed for a single path from
// the base seed, using the splitmix64 finalizer so nearby path indices
// map to well-separated seeds.
func pathSeed(seed uint64, path int) uint64 {
	z := seed + 0x9e3779b97f4a7c15*uint64(path+1)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
