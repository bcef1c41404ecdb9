package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/kuking/go-equihash/equihash"
	"github.com/pkg/errors"
)

// Preset names a single (n,k) pair for reuse across callers who only
// know it by a short label ("zcash", "bitcoingold", ...) rather than the raw
// numbers.
type Preset struct {
	Name string
	N    uint32
	K    uint32
}

// Params validates and returns the equihash.Params this preset names.
func (p Preset) Params() (equihash.Params, error) {
	return equihash.NewParams(p.N, p.K)
}

// Registry is a named collection of Presets, persisted as JSON.
type Registry struct {
	Presets []Preset
}

// NewEmpty returns a Registry seeded with the parameter choices of
// well-known Equihash deployments plus a small "test-small" preset. The
// "zcash" entry (200,9) has n/(k+1) = 20, which is not a multiple of 8,
// so its Params call fails with equihash.ErrInvalidParams.
func NewEmpty() *Registry {
	return &Registry{
		Presets: []Preset{
			{Name: "zcash", N: 200, K: 9},
			{Name: "bitcoingold", N: 144, K: 5},
			{Name: "zero", N: 192, K: 7},
			{Name: "test-small", N: 96, K: 5},
		},
	}
}

// Add appends preset, replacing any existing preset with the same name.
func (r *Registry) Add(preset Preset) {
	for i, existing := range r.Presets {
		if existing.Name == preset.Name {
			r.Presets[i] = preset
			return
		}
	}
	r.Presets = append(r.Presets, preset)
}

// Get looks up a preset by name.
func (r *Registry) Get(name string) (Preset, error) {
	for _, p := range r.Presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, errors.Errorf("config: no preset named %q", name)
}

func LoadFrom(file string) (*Registry, error) {
	registry := NewEmpty()
	bytes, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "config: could not read registry file")
	}
	if err := json.Unmarshal(bytes, registry); err != nil {
		return nil, errors.Wrap(err, "config: could not parse registry file")
	}
	return registry, nil
}

func (r *Registry) SaveTo(file string) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.Wrap(err, "config: could not marshal registry")
	}
	if err := ioutil.WriteFile(file, b, 0o600); err != nil {
		return errors.Wrap(err, "config: could not write registry file")
	}
	return nil
}

func (p Preset) String() string {
	return fmt.Sprintf("%s(n=%d,k=%d)", p.Name, p.N, p.K)
}
