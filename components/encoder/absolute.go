package encoder

import (
	"context"

	"github.com/hamosad1657/halib/units"
	"github.com/hamosad1657/halib/utils"
)

// An AbsoluteSensor is a CANCoder-style magnetic encoder.
type AbsoluteSensor interface {
	// RawPosition returns the position in ticks, units.CANCoderTicksPerRev per rotation. It may
	// be outside a single rotation.
	RawPosition(ctx context.Context) (float64, error)
	// RawVelocity returns the velocity in ticks per 100ms.
	RawVelocity(ctx context.Context) (float64, error)
}

// Absolute reads a mechanism angle in [0, 360) from an AbsoluteSensor. MagnetOffsetDeg is added
// to every reading, so the mechanism's zero can be set without moving the magnet.
type Absolute struct {
	sensor          AbsoluteSensor
	magnetOffsetDeg float64
}

// NewAbsolute returns an Absolute reading sensor.
func NewAbsolute(sensor AbsoluteSensor, magnetOffsetDeg float64) *Absolute {
	return &Absolute{sensor: sensor, magnetOffsetDeg: magnetOffsetDeg}
}

// AngleDeg returns the angle in [0, 360).
func (a *Absolute) AngleDeg(ctx context.Context) (float64, error) {
	raw, err := a.sensor.RawPosition(ctx)
	if err != nil {
		return 0, err
	}
	return utils.MustInputModulus(units.CANCoderTicksToDegrees(raw, 1)+a.magnetOffsetDeg, 0, 360), nil
}

// AngleRad returns the angle in [0, 2π).
func (a *Absolute) AngleRad(ctx context.Context) (float64, error) {
	deg, err := a.AngleDeg(ctx)
	if err != nil {
		return 0, err
	}
	return utils.DegToRad(deg), nil
}

// VelocityDegPS returns the angular velocity in degrees per second.
func (a *Absolute) VelocityDegPS(ctx context.Context) (float64, error) {
	raw, err := a.sensor.RawVelocity(ctx)
	if err != nil {
		return 0, err
	}
	// ten 100ms windows per second
	return units.CANCoderTicksToDegrees(raw*10, 1), nil
}

// VelocityRadPS returns the angular velocity in radians per second.
func (a *Absolute) VelocityRadPS(ctx context.Context) (float64, error) {
	degPS, err := a.VelocityDegPS(ctx)
	if err != nil {
		return 0, err
	}
	return units.DegPSToRadPS(degPS), nil
}

// VelocityRPM returns the angular velocity in rotations per minute.
func (a *Absolute) VelocityRPM(ctx context.Context) (float64, error) {
	degPS, err := a.VelocityDegPS(ctx)
	if err != nil {
		return 0, err
	}
	return units.DegPSToRPM(degPS), nil
}

// VelocityMPS returns the surface speed of a wheel of the given radius.
func (a *Absolute) VelocityMPS(ctx context.Context, wheelRadius units.Length) (float64, error) {
	degPS, err := a.VelocityDegPS(ctx)
	if err != nil {
		return 0, err
	}
	return units.DegPSToMPS(degPS, wheelRadius)
}
