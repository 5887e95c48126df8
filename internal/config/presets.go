package config

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPreset is returned by Apply for a plot/preset pair that does
// not exist.
var ErrUnknownPreset = errors.New("config: unknown preset")

// Plot names used as preset groups.
const (
	PlotEyring = "eyring"
	PlotSalt   = "salt"
)

var EyringPresets = map[string]EyringConfig{
	// typical bimolecular reaction
	"typical": {DeltaH: 50, DeltaS: -50},
	// ordered transition state: strongly negative entropy of activation
	"associative": {DeltaH: 40, DeltaS: -120},
	// loose transition state: positive entropy of activation
	"dissociative": {DeltaH: 110, DeltaS: 40},
}

var SaltPresets = map[string]SaltConfig{
	"like":     {ZA: 1, ZB: 1},
	"opposite": {ZA: 1, ZB: -1},
	"neutral":  {ZA: 0, ZB: 1},
	"dication": {ZA: 2, ZB: 2},
}

func GetEyringPreset(name string) (EyringConfig, bool) {
	p, ok := EyringPresets[name]
	return p, ok
}

func GetSaltPreset(name string) (SaltConfig, bool) {
	p, ok := SaltPresets[name]
	return p, ok
}

// ListPresets returns the sorted preset names for a plot, or nil for an
// unknown plot.
func ListPresets(plot string) []string {
	var names []string
	switch plot {
	case PlotEyring:
		for name := range EyringPresets {
			names = append(names, name)
		}
	case PlotSalt:
		for name := range SaltPresets {
			names = append(names, name)
		}
	default:
		return nil
	}
	sort.Strings(names)
	return names
}

// Apply copies the named preset into cfg.
func (c *Config) Apply(plot, name string) error {
	switch plot {
	case PlotEyring:
		if p, ok := GetEyringPreset(name); ok {
			c.Eyring = p
			return nil
		}
	case PlotSalt:
		if p, ok := GetSaltPreset(name); ok {
			c.Salt = p
			return nil
		}
	}
	return fmt.Errorf("%w: %s/%s (available: %v)", ErrUnknownPreset, plot, name, ListPresets(plot))
}
