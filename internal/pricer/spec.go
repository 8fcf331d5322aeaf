package pricer

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned when an input violates the pricing
// preconditions. Checked before any allocation.
var ErrInvalidParameter = errors.New("invalid parameter")

// OptionSpec describes an American put contract.
type OptionSpec struct {
	S0    float64 // initial asset price
	K     float64 // strike
	T     float64 // time to maturity, years
	R     float64 // annualized risk-free rate
	Sigma float64 // annualized volatility
}

// Validate checks the option preconditions.
func (o OptionSpec) Validate() error {
	if o.S0 <= 0 {
		return fmt.Errorf("%w: initial price must be > 0, got %v", ErrInvalidParameter, o.S0)
	}
	if o.K <= 0 {
		return fmt.Errorf("%w: strike must be > 0, got %v", ErrInvalidParameter, o.K)
	}
	if o.T <= 0 {
		return fmt.Errorf("%w: maturity must be > 0, got %v", ErrInvalidParameter, o.T)
	}
	if o.Sigma <= 0 {
		return fmt.Errorf("%w: volatility must be > 0, got %v", ErrInvalidParameter, o.Sigma)
	}
	return nil
}

// SimulationSpec describes the Monte Carlo discretization.
type SimulationSpec struct {
	NumPaths int
	NumSteps int
	Seed     uint64
}

// Validate checks the simulation preconditions.
func (s SimulationSpec) Validate() error {
	if s.NumPaths < 1 {
		return fmt.Errorf("%w: num_paths must be >= 1, got %d", ErrInvalidParameter, s.NumPaths)
	}
	if s.NumSteps < 1 {
		return fmt.Errorf("%w: num_steps must be >= 1, got %d", ErrInvalidParameter, s.NumSteps)
	}
	return nil
}
