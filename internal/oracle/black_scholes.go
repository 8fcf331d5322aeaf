package oracle

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// OptionType selects call or put.
type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// ErrUnknownOptionType is returned for any type other than Call or Put.
var ErrUnknownOptionType = errors.New("unknown option type")

func (t OptionType) validate() error {
	switch t {
	case Call, Put:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOptionType, t)
	}
}

// BlackScholes returns the closed-form price of a European vanilla
// option. At or past expiry the price degenerates to intrinsic value.
func BlackScholes(s, k, t, r, sigma float64, typ OptionType) (float64, error) {
	if err := typ.validate(); err != nil {
		return 0, err
	}
	if t <= 0 {
		if typ == Call {
			return math.Max(s-k, 0), nil
		}
		return math.Max(k-s, 0), nil
	}

	stdNorm := distuv.Normal{Mu: 0, Sigma: 1}
	d1 := (math.Log(s/k) + (r+0.5*sigma*sigma)*t) / (sigma * math.Sqrt(t))
	d2 := d1 - sigma*math.Sqrt(t)

	if typ == Call {
		return s*stdNorm.CDF(d1) - k*math.Exp(-r*t)*stdNorm.CDF(d2), nil
	}
	return k*math.Exp(-r*t)*stdNorm.CDF(-d2) - s*stdNorm.CDF(-d1), nil
}
