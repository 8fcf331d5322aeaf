package run

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCases(t *testing.T) {
	yaml := `
cases:
  - name: baseline
    params:
      s0: 100.0
      k: 105.0
      t: 1.0
      r: 0.05
      sigma: 0.2
    simulation:
      num_paths: 20000
      num_steps: 100
      seed: 42
    backends: [scalar, parallel]
  - name: vol_sweep
    params:
      s0: 100.0
      k: 105.0
      t: 1.0
      r: 0.05
      sigma: 0.1
    simulation:
      num_paths: 5000
      num_steps: 50
      seed: 7
    backends: [scalar]
    sweep:
      parameter: sigma
      start: 0.1
      end: 0.5
      steps: 5
`
	path := writeTempFile(t, yaml)

	cf, err := LoadCases(path)
	if err != nil {
		t.Fatalf("LoadCases failed: %v", err)
	}
	if len(cf.Cases) != 2 {
		t.Fatalf("got %d cases, want 2", len(cf.Cases))
	}

	c := cf.Cases[0]
	if c.Name != "baseline" {
		t.Errorf("Name = %q, want %q", c.Name, "baseline")
	}
	if c.Params.K != 105 || c.Simulation.Seed != 42 {
		t.Errorf("parameters not parsed: %+v %+v", c.Params, c.Simulation)
	}
	if len(c.Backends) != 2 {
		t.Errorf("Backends = %v, want two entries", c.Backends)
	}

	sweep := cf.Cases[1].Sweep
	if sweep == nil || sweep.Parameter != "sigma" || sweep.Steps != 5 {
		t.Errorf("Sweep = %+v, want sigma over 5 steps", sweep)
	}
}

func TestLoadCasesRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no cases", "cases: []"},
		{"missing backends", `
cases:
  - name: broken
    params: {s0: 100, k: 105, t: 1, r: 0.05, sigma: 0.2}
    simulation: {num_paths: 100, num_steps: 10, seed: 1}
`},
		{"bad option params", `
cases:
  - name: broken
    params: {s0: -1, k: 105, t: 1, r: 0.05, sigma: 0.2}
    simulation: {num_paths: 100, num_steps: 10, seed: 1}
    backends: [scalar]
`},
		{"bad sweep", `
cases:
  - name: broken
    params: {s0: 100, k: 105, t: 1, r: 0.05, sigma: 0.2}
    simulation: {num_paths: 100, num_steps: 10, seed: 1}
    backends: [scalar]
    sweep: {parameter: nope, start: 0, end: 1, steps: 3}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.yaml)
			if _, err := LoadCases(path); err == nil {
				t.Error("LoadCases accepted invalid file")
			}
		})
	}
}

func TestLoadCasesMissingFile(t *testing.T) {
	if _, err := LoadCases(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadCases accepted missing file")
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "experiments.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
