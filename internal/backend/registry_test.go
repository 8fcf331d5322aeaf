package backend

import (
	"errors"
	"testing"

	"github.com/mhalvorsen/lsm-workbench/internal/pricer"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()

	want := []string{"scalar", "matrix", "parallel"}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	for _, name := range want {
		b, err := r.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", name, err)
		}
		if b.Name() != name {
			t.Errorf("backend name = %q, want %q", b.Name(), name)
		}
		if b.Describe() == "" {
			t.Errorf("backend %q has empty description", name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	r := Default()
	_, err := r.Lookup("cpp_simd")
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Lookup error = %v, want ErrUnknownBackend", err)
	}
}

func TestRegistryDuplicateKeepsLast(t *testing.T) {
	stub := func(v float64) PriceFunc {
		return PriceFunc{
			Key:   "dup",
			Label: "stub",
			Fn: func(pricer.OptionSpec, pricer.SimulationSpec) (float64, error) {
				return v, nil
			},
		}
	}
	r := NewRegistry(stub(1), stub(2))

	if names := r.Names(); len(names) != 1 {
		t.Fatalf("Names() = %v, want single entry", names)
	}
	b, err := r.Lookup("dup")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	got, err := b.Price(pricer.OptionSpec{}, pricer.SimulationSpec{})
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}
	if got != 2 {
		t.Errorf("duplicate registration kept value %v, want last-registered 2", got)
	}
}

func TestDefaultBackendsPrice(t *testing.T) {
	r := Default()
	opt := pricer.OptionSpec{S0: 100, K: 105, T: 1, R: 0.05, Sigma: 0.2}
	sim := pricer.SimulationSpec{NumPaths: 500, NumSteps: 20, Seed: 42}

	for _, name := range r.Names() {
		b, err := r.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", name, err)
		}
		price, err := b.Price(opt, sim)
		if err != nil {
			t.Errorf("backend %q failed: %v", name, err)
			continue
		}
		if price <= 0 {
			t.Errorf("backend %q returned non-positive price %v", name, price)
		}
	}
}
