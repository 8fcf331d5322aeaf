package run

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mhalvorsen/lsm-workbench/internal/pricer"
)

// OptionParams are the contract parameters of a case.
type OptionParams struct {
	S0    float64 `yaml:"s0" json:"S0"`
	K     float64 `yaml:"k" json:"K"`
	T     float64 `yaml:"t" json:"T"`
	R     float64 `yaml:"r" json:"r"`
	Sigma float64 `yaml:"sigma" json:"sigma"`
}

// Spec converts to the pricer's input type.
func (p OptionParams) Spec() pricer.OptionSpec {
	return pricer.OptionSpec{S0: p.S0, K: p.K, T: p.T, R: p.R, Sigma: p.Sigma}
}

// SimulationParams are the Monte Carlo parameters of a case.
type SimulationParams struct {
	NumPaths int    `yaml:"num_paths" json:"num_paths"`
	NumSteps int    `yaml:"num_steps" json:"num_steps"`
	Seed     uint64 `yaml:"seed" json:"seed"`
}

// Spec converts to the pricer's input type.
func (p SimulationParams) Spec() pricer.SimulationSpec {
	return pricer.SimulationSpec{NumPaths: p.NumPaths, NumSteps: p.NumSteps, Seed: p.Seed}
}

// Case is one experiment: a parameter set (optionally swept along one
// axis) priced by one or more backends.
type Case struct {
	Name       string           `yaml:"name" json:"name"`
	Params     OptionParams     `yaml:"params" json:"option_params"`
	Simulation SimulationParams `yaml:"simulation" json:"simulation_params"`
	Backends   []string         `yaml:"backends" json:"backends"`
	Sweep      *Sweep           `yaml:"sweep,omitempty" json:"sweep,omitempty"`
}

// Validate checks the case before any backend runs.
func (c *Case) Validate() error {
	if c.Name == "" {
		return errors.New("case name is required")
	}
	if len(c.Backends) == 0 {
		return fmt.Errorf("case %q: at least one backend is required", c.Name)
	}
	if err := c.Params.Spec().Validate(); err != nil {
		return fmt.Errorf("case %q: %w", c.Name, err)
	}
	if err := c.Simulation.Spec().Validate(); err != nil {
		return fmt.Errorf("case %q: %w", c.Name, err)
	}
	if c.Sweep != nil {
		if err := c.Sweep.Validate(); err != nil {
			return fmt.Errorf("case %q: %w", c.Name, err)
		}
	}
	return nil
}

// CaseFile is the on-disk experiment definition.
type CaseFile struct {
	Cases []Case `yaml:"cases"`
}

// LoadCases reads and validates an experiments YAML file.
func LoadCases(path string) (*CaseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read experiments file: %w", err)
	}

	var cf CaseFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse experiments yaml: %w", err)
	}
	if len(cf.Cases) == 0 {
		return nil, errors.New("experiments file defines no cases")
	}
	for i := range cf.Cases {
		if err := cf.Cases[i].Validate(); err != nil {
			return nil, err
		}
	}
	return &cf, nil
}
