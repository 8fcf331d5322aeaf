package backend

import (
	"errors"
	"fmt"

	"github.com/mhalvorsen/lsm-workbench/internal/pricer"
)

// ErrUnknownBackend is returned by Lookup for names not in the registry.
var ErrUnknownBackend = errors.New("unknown backend")

// Backend is one pricing implementation.
type Backend interface {
	// Name is the registry key (e.g., "scalar").
	Name() string

	// Describe is a human-readable label (e.g., "Go (sharded paths)").
	Describe() string

	// Price runs the backend for one parameter set.
	Price(opt pricer.OptionSpec, sim pricer.SimulationSpec) (float64, error)
}

// PriceFunc adapts a plain pricing function into a Backend.
type PriceFunc struct {
	Key   string
	Label string
	Fn    func(pricer.OptionSpec, pricer.SimulationSpec) (float64, error)
}

func (f PriceFunc) Name() string     { return f.Key }
func (f PriceFunc) Describe() string { return f.Label }
func (f PriceFunc) Price(opt pricer.OptionSpec, sim pricer.SimulationSpec) (float64, error) {
	return f.Fn(opt, sim)
}

// Registry is an immutable name -> Backend table.
type Registry struct {
	order  []string
	byName map[string]Backend
}

// NewRegistry builds a registry from the given backends, preserving
// registration order for Names. A duplicate name keeps the last entry.
func NewRegistry(backends ...Backend) *Registry {
	r := &Registry{byName: make(map[string]Backend, len(backends))}
	for _, b := range backends {
		if _, seen := r.byName[b.Name()]; !seen {
			r.order = append(r.order, b.Name())
		}
		r.byName[b.Name()] = b
	}
	return r
}

// Default returns the registry of built-in backends.
func Default() *Registry {
	return NewRegistry(
		PriceFunc{
			Key:   "scalar",
			Label: "Go (pending cash flows)",
			Fn:    pricer.PriceAmericanPut,
		},
		PriceFunc{
			Key:   "matrix",
			Label: "Go (dense cash-flow matrix)",
			Fn:    pricer.PriceAmericanPutMatrix,
		},
		PriceFunc{
			Key:   "parallel",
			Label: "Go (sharded paths)",
			Fn:    pricer.PriceAmericanPutParallel,
		},
	)
}

// Lookup resolves a backend by name.
func (r *Registry) Lookup(name string) (Backend, error) {
	b, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return b, nil
}

// Names returns backend names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
