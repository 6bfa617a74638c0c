// Package encoder turns raw encoder readings into mechanism positions and speeds.
package encoder

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"go.viam.com/utils"

	"github.com/hamosad1657/halib/units"
)

// A Counter is a quadrature decoder. It starts counting when created.
type Counter interface {
	// Count returns the pulses counted since the last reset.
	Count(ctx context.Context) (int64, error)
	// Rate returns the current pulse rate in pulses per second.
	Rate(ctx context.Context) (float64, error)
	// Reset sets the count to zero.
	Reset(ctx context.Context) error
}

// QuadratureConfig describes the mechanism a quadrature encoder measures.
type QuadratureConfig struct {
	PulsesPerRev int `json:"pulses_per_rev"`
	// GearRatio is mechanism rotations per encoder rotation: a 4:1 reduction is 0.25. Zero means 1.
	GearRatio         float64 `json:"gear_ratio,omitempty"`
	WheelRadiusMeters float64 `json:"wheel_radius_meters,omitempty"`
	Reversed          bool    `json:"reversed,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (cfg *QuadratureConfig) Validate(path string) error {
	if cfg.PulsesPerRev == 0 {
		return utils.NewConfigValidationFieldRequiredError(path, "pulses_per_rev")
	}
	if cfg.PulsesPerRev < 0 {
		return utils.NewConfigValidationError(path, errors.Errorf("pulses_per_rev must be positive, got %d", cfg.PulsesPerRev))
	}
	if cfg.GearRatio < 0 || math.IsNaN(cfg.GearRatio) {
		return utils.NewConfigValidationError(path, errors.Errorf("gear_ratio must be positive, got %v", cfg.GearRatio))
	}
	if cfg.WheelRadiusMeters < 0 || math.IsNaN(cfg.WheelRadiusMeters) {
		return utils.NewConfigValidationError(path,
			errors.Errorf("wheel_radius_meters must not be negative, got %v", cfg.WheelRadiusMeters))
	}
	return nil
}

// Quadrature measures a mechanism through a Counter.
type Quadrature struct {
	name        string
	counter     Counter
	revsPerTick float64
	wheelRadius units.Length
}

// NewQuadrature returns a Quadrature reading counter.
func NewQuadrature(name string, counter Counter, cfg QuadratureConfig) (*Quadrature, error) {
	if err := cfg.Validate(name); err != nil {
		return nil, err
	}
	gearRatio := cfg.GearRatio
	if gearRatio == 0 {
		gearRatio = 1
	}
	revsPerTick := gearRatio / float64(cfg.PulsesPerRev)
	if cfg.Reversed {
		revsPerTick = -revsPerTick
	}
	wheelRadius, err := units.LengthFromMeters(cfg.WheelRadiusMeters)
	if err != nil {
		return nil, err
	}
	return &Quadrature{name: name, counter: counter, revsPerTick: revsPerTick, wheelRadius: wheelRadius}, nil
}

// Rotations returns the mechanism rotations since the last reset.
func (q *Quadrature) Rotations(ctx context.Context) (float64, error) {
	count, err := q.counter.Count(ctx)
	if err != nil {
		return 0, err
	}
	return float64(count) * q.revsPerTick, nil
}

// Degrees returns the mechanism rotation since the last reset in degrees.
func (q *Quadrature) Degrees(ctx context.Context) (float64, error) {
	rotations, err := q.Rotations(ctx)
	if err != nil {
		return 0, err
	}
	return rotations * 360, nil
}

// DistanceMeters returns the distance the wheel rolled since the last reset.
func (q *Quadrature) DistanceMeters(ctx context.Context) (float64, error) {
	if q.wheelRadius.Meters() == 0 {
		return 0, NewNoWheelRadiusError(q.name)
	}
	rotations, err := q.Rotations(ctx)
	if err != nil {
		return 0, err
	}
	return rotations * 2 * math.Pi * q.wheelRadius.Meters(), nil
}

func (q *Quadrature) rps(ctx context.Context) (float64, error) {
	rate, err := q.counter.Rate(ctx)
	if err != nil {
		return 0, err
	}
	return rate * q.revsPerTick, nil
}

// SpeedRPM returns the mechanism speed in rotations per minute.
func (q *Quadrature) SpeedRPM(ctx context.Context) (float64, error) {
	rps, err := q.rps(ctx)
	if err != nil {
		return 0, err
	}
	return units.RPSToRPM(rps), nil
}

// SpeedDegPS returns the mechanism speed in degrees per second.
func (q *Quadrature) SpeedDegPS(ctx context.Context) (float64, error) {
	rps, err := q.rps(ctx)
	if err != nil {
		return 0, err
	}
	return units.RPSToDegPS(rps), nil
}

// SpeedMPS returns the wheel's surface speed.
func (q *Quadrature) SpeedMPS(ctx context.Context) (float64, error) {
	if q.wheelRadius.Meters() == 0 {
		return 0, NewNoWheelRadiusError(q.name)
	}
	rps, err := q.rps(ctx)
	if err != nil {
		return 0, err
	}
	return units.RPMToMPS(units.RPSToRPM(rps), q.wheelRadius)
}

// Reset zeroes the distance.
func (q *Quadrature) Reset(ctx context.Context) error {
	return q.counter.Reset(ctx)
}
