// Package swerve steers and drives one swerve module from two Falcon-driven motors.
package swerve

import (
	"context"
	"math"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"

	"github.com/hamosad1657/halib/components/motor"
	"github.com/hamosad1657/halib/logging"
	"github.com/hamosad1657/halib/units"
	rutils "github.com/hamosad1657/halib/utils"
)

// Config describes the module's mechanics. Gear ratios are motor rotations per mechanism
// rotation.
type Config struct {
	SteerGearRatio    float64 `json:"steer_gear_ratio"`
	DriveGearRatio    float64 `json:"drive_gear_ratio"`
	WheelRadiusMeters float64 `json:"wheel_radius_meters"`
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	var errs error
	for _, field := range []struct {
		name  string
		value float64
	}{
		{"steer_gear_ratio", cfg.SteerGearRatio},
		{"drive_gear_ratio", cfg.DriveGearRatio},
		{"wheel_radius_meters", cfg.WheelRadiusMeters},
	} {
		switch {
		case field.value == 0:
			errs = multierr.Append(errs, utils.NewConfigValidationFieldRequiredError(path, field.name))
		case !(field.value > 0) || math.IsInf(field.value, 0):
			errs = multierr.Append(errs, utils.NewConfigValidationError(path,
				errors.Errorf("%s must be positive, got %v", field.name, field.value)))
		}
	}
	return errs
}

// Module drives one swerve module. The steer motor is put in position wrap over one module
// rotation, so the azimuth never turns more than 90 degrees for a new state.
type Module struct {
	name   string
	steer  *motor.Motor
	drive  *motor.Motor
	cfg    Config
	logger logging.Logger

	circumferenceMeters float64

	mu              sync.Mutex
	desiredAngleDeg float64
	desiredSpeedMPS float64
}

// New returns a Module and enables position wrap on steer.
func New(name string, steer, drive *motor.Motor, cfg Config, logger logging.Logger) (*Module, error) {
	if err := cfg.Validate(name); err != nil {
		return nil, err
	}
	ticksPerRev := units.DegreesToFalconTicks(360, cfg.SteerGearRatio)
	if err := steer.EnablePositionWrap(rutils.WrapConfig{Min: 0, Max: ticksPerRev, TicksPerRotation: ticksPerRev}); err != nil {
		return nil, errors.Wrapf(err, "swerve module %s", name)
	}
	return &Module{
		name:                name,
		steer:               steer,
		drive:               drive,
		cfg:                 cfg,
		logger:              logger,
		circumferenceMeters: 2 * math.Pi * cfg.WheelRadiusMeters,
	}, nil
}

// AngleDeg returns the module azimuth in [0, 360).
func (m *Module) AngleDeg(ctx context.Context) (float64, error) {
	ticks, err := m.steer.Position(ctx)
	if err != nil {
		return 0, errors.Wrapf(err, "swerve module %s", m.name)
	}
	return rutils.MustInputModulus(units.FalconTicksToDegrees(ticks, m.cfg.SteerGearRatio), 0, 360), nil
}

// Optimize returns the state closest to currentDeg that moves the robot the same way as
// (speedMPS, angleDeg): when the azimuth would turn more than 90 degrees, the wheel is pointed
// the other way and driven in reverse instead. The returned angle is in [0, 360).
func Optimize(speedMPS, angleDeg, currentDeg float64) (float64, float64) {
	angleDeg = rutils.MustInputModulus(angleDeg, 0, 360)
	if rutils.AngleDiffDeg(angleDeg, currentDeg) > 90 {
		return -speedMPS, rutils.MustInputModulus(angleDeg+180, 0, 360)
	}
	return speedMPS, angleDeg
}

// SetState points the wheel at angleDeg and drives it at speedMPS, after optimizing.
func (m *Module) SetState(ctx context.Context, speedMPS, angleDeg float64) error {
	currentDeg, err := m.AngleDeg(ctx)
	if err != nil {
		return err
	}
	speed, angle := Optimize(speedMPS, angleDeg, currentDeg)
	m.logger.CDebugw(ctx, "setting swerve state",
		"module", m.name, "speed", speedMPS, "angle", angleDeg, "current", currentDeg,
		"optimized_speed", speed, "optimized_angle", angle)

	m.mu.Lock()
	m.desiredSpeedMPS, m.desiredAngleDeg = speed, angle
	m.mu.Unlock()

	if err := m.steer.Set(ctx, motor.Position, units.DegreesToFalconTicks(angle, m.cfg.SteerGearRatio)); err != nil {
		return errors.Wrapf(err, "swerve module %s: steer", m.name)
	}
	velocity := units.MPSToFalconTicksPer100ms(speed, m.circumferenceMeters, m.cfg.DriveGearRatio)
	if err := m.drive.Set(ctx, motor.Velocity, velocity); err != nil {
		return errors.Wrapf(err, "swerve module %s: drive", m.name)
	}
	return nil
}

// DesiredState returns the last optimized speed and angle commanded.
func (m *Module) DesiredState() (float64, float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.desiredSpeedMPS, m.desiredAngleDeg
}

// Stop stops both motors.
func (m *Module) Stop(ctx context.Context) error {
	return multierr.Combine(m.steer.Stop(ctx), m.drive.Stop(ctx))
}
