package run

import (
	"fmt"
	"math"
)

// Sweep varies exactly one parameter linearly from Start to End over
// Steps points. Integer parameters are rounded at each point.
type Sweep struct {
	Parameter string  `yaml:"parameter" json:"parameter"`
	Start     float64 `yaml:"start" json:"start"`
	End       float64 `yaml:"end" json:"end"`
	Steps     int     `yaml:"steps" json:"steps"`
}

// sweepable lists the parameters a sweep may vary.
var sweepable = map[string]bool{
	"S0":        true,
	"K":         true,
	"T":         true,
	"r":         true,
	"sigma":     true,
	"num_paths": true,
	"num_steps": true,
}

// Validate checks the sweep definition.
func (s *Sweep) Validate() error {
	if !sweepable[s.Parameter] {
		return fmt.Errorf("sweep parameter %q is not sweepable", s.Parameter)
	}
	if s.Steps < 2 {
		return fmt.Errorf("sweep steps must be >= 2, got %d", s.Steps)
	}
	return nil
}

// Values returns the sweep points, endpoints included.
func (s *Sweep) Values() []float64 {
	vals := make([]float64, s.Steps)
	step := (s.End - s.Start) / float64(s.Steps-1)
	for i := range vals {
		vals[i] = s.Start + float64(i)*step
	}
	return vals
}

// apply sets the swept parameter on a copy of the case's parameters.
func (s *Sweep) apply(opt OptionParams, sim SimulationParams, v float64) (OptionParams, SimulationParams) {
	switch s.Parameter {
	case "S0":
		opt.S0 = v
	case "K":
		opt.K = v
	case "T":
		opt.T = v
	case "r":
		opt.R = v
	case "sigma":
		opt.Sigma = v
	case "num_paths":
		sim.NumPaths = int(math.Round(v))
	case "num_steps":
		sim.NumSteps = int(math.Round(v))
	}
	return opt, sim
}
