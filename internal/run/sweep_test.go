package run

import (
	"math"
	"testing"
)

func TestSweepValues(t *testing.T) {
	s := Sweep{Parameter: "sigma", Start: 0.1, End: 0.5, Steps: 5}
	got := s.Values()
	want := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	if len(got) != len(want) {
		t.Fatalf("Values() returned %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("Values()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSweepValuesEndpointsExact(t *testing.T) {
	s := Sweep{Parameter: "num_paths", Start: 5000, End: 500000, Steps: 3}
	got := s.Values()
	if got[0] != 5000 || got[len(got)-1] != 500000 {
		t.Errorf("endpoints = %v and %v, want 5000 and 500000", got[0], got[len(got)-1])
	}
}

func TestSweepValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Sweep
		wantErr bool
	}{
		{"valid", Sweep{Parameter: "K", Start: 90, End: 120, Steps: 4}, false},
		{"unknown parameter", Sweep{Parameter: "dividend", Start: 0, End: 1, Steps: 2}, true},
		{"seed not sweepable", Sweep{Parameter: "seed", Start: 1, End: 10, Steps: 2}, true},
		{"too few steps", Sweep{Parameter: "K", Start: 90, End: 120, Steps: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSweepApply(t *testing.T) {
	opt := OptionParams{S0: 100, K: 105, T: 1, R: 0.05, Sigma: 0.2}
	sim := SimulationParams{NumPaths: 1000, NumSteps: 50, Seed: 42}

	tests := []struct {
		param string
		value float64
		check func(OptionParams, SimulationParams) bool
	}{
		{"S0", 110, func(o OptionParams, _ SimulationParams) bool { return o.S0 == 110 }},
		{"K", 95, func(o OptionParams, _ SimulationParams) bool { return o.K == 95 }},
		{"T", 2, func(o OptionParams, _ SimulationParams) bool { return o.T == 2 }},
		{"r", 0.03, func(o OptionParams, _ SimulationParams) bool { return o.R == 0.03 }},
		{"sigma", 0.4, func(o OptionParams, _ SimulationParams) bool { return o.Sigma == 0.4 }},
		{"num_paths", 2500.4, func(_ OptionParams, s SimulationParams) bool { return s.NumPaths == 2500 }},
		{"num_steps", 99.6, func(_ OptionParams, s SimulationParams) bool { return s.NumSteps == 100 }},
	}
	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			s := Sweep{Parameter: tt.param}
			gotOpt, gotSim := s.apply(opt, sim, tt.value)
			if !tt.check(gotOpt, gotSim) {
				t.Errorf("apply(%q, %v) produced opt=%+v sim=%+v", tt.param, tt.value, gotOpt, gotSim)
			}
		})
	}

	// The originals must be untouched.
	if opt.S0 != 100 || sim.NumPaths != 1000 {
		t.Error("apply mutated its inputs")
	}
}
