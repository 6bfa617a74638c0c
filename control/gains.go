// Package control implements PID control and moving window filters for robot mechanisms.
package control

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"
)

// PIDGains holds the gains of a PID loop, in the form motor controllers accept them.
type PIDGains struct {
	KP  float64 `json:"kp"`
	KI  float64 `json:"ki,omitempty"`
	KD  float64 `json:"kd,omitempty"`
	KFF float64 `json:"kff,omitempty"`
	// KIZone clears the integral accumulator while the absolute error is above it. Zero disables
	// the zone.
	KIZone float64 `json:"kizone,omitempty"`
}

// Validate ensures every gain is finite and non-negative.
func (g PIDGains) Validate(path string) error {
	var errs error
	for _, gain := range []struct {
		name  string
		value float64
	}{
		{"kp", g.KP},
		{"ki", g.KI},
		{"kd", g.KD},
		{"kff", g.KFF},
		{"kizone", g.KIZone},
	} {
		if math.IsNaN(gain.value) || math.IsInf(gain.value, 0) || gain.value < 0 {
			errs = multierr.Append(errs, utils.NewConfigValidationError(path,
				errors.Errorf("%s must be a finite non-negative number, got %v", gain.name, gain.value)))
		}
	}
	return errs
}
