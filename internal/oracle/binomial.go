package oracle

import (
	"fmt"
	"math"
)

// BinomialTree returns the price of an American vanilla option on a
// Cox-Ross-Rubinstein lattice with n steps. Each backward level writes
// into a fresh buffer so a node's value is never computed from
// already-overwritten state. n of 2000 or more gives lattice error well
// below typical Monte Carlo noise.
func BinomialTree(s, k, t, r, sigma float64, n int, typ OptionType) (float64, error) {
	if err := typ.validate(); err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("binomial tree: steps must be >= 1, got %d", n)
	}

	dt := t / float64(n)
	u := math.Exp(sigma * math.Sqrt(dt))
	d := 1 / u
	q := (math.Exp(r*dt) - d) / (u - d)
	discount := math.Exp(-r * dt)

	intrinsic := func(price float64) float64 {
		if typ == Put {
			return math.Max(k-price, 0)
		}
		return math.Max(price-k, 0)
	}

	// Option values at maturity: n+1 terminal nodes.
	v := make([]float64, n+1)
	for j := 0; j <= n; j++ {
		v[j] = intrinsic(s * math.Pow(u, float64(j)) * math.Pow(d, float64(n-j)))
	}

	for i := n - 1; i >= 0; i-- {
		level := make([]float64, i+1)
		for j := 0; j <= i; j++ {
			continuation := discount * (q*v[j+1] + (1-q)*v[j])
			exercise := intrinsic(s * math.Pow(u, float64(j)) * math.Pow(d, float64(i-j)))
			level[j] = math.Max(continuation, exercise)
		}
		v = level
	}
	return v[0], nil
}
