package utils

import (
	"math"

	"github.com/pkg/errors"
)

// InputModulus maps x into the half-open interval [lo, hi) while preserving its value
// modulo the interval width. A value exactly on hi maps to lo. It is safe to call with x
// any number of periods away from the interval, or negative.
func InputModulus(x, lo, hi float64) (float64, error) {
	if err := checkRange(lo, hi); err != nil {
		return 0, err
	}
	return inputModulus(x, lo, hi), nil
}

// MustInputModulus is like InputModulus but panics on an invalid range. Use it only with
// bounds that were already validated.
func MustInputModulus(x, lo, hi float64) float64 {
	y, err := InputModulus(x, lo, hi)
	if err != nil {
		panic(err)
	}
	return y
}

func inputModulus(x, lo, hi float64) float64 {
	period := hi - lo
	y := math.Mod(x-lo, period)
	if y < 0 {
		y += period
	}
	// adding period to a tiny negative remainder can round up to period itself
	if y >= period {
		y = 0
	}
	return lo + y
}

// balancedModulus maps x into [-period/2, period/2). An exact half-period tie resolves to
// the negative side.
func balancedModulus(x, period float64) float64 {
	return inputModulus(x, -period/2, period/2)
}

func checkRange(lo, hi float64) error {
	if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return NewInvalidRangeError(lo, hi)
	}
	return nil
}

func inClosedRange(x, lo, hi float64) bool {
	return x >= lo && x <= hi
}

// WrapConfig describes one full period of a continuously rotating mechanism. Min and Max
// bound the logical setpoint domain and TicksPerRotation is the same period expressed in
// raw sensor units, used to recover how many rotations an accumulating sensor has made.
//
// For a swerve azimuth read directly in degrees this is {0, 360, 360}.
type WrapConfig struct {
	Min              float64 `json:"min"`
	Max              float64 `json:"max"`
	TicksPerRotation float64 `json:"ticks_per_rotation"`
}

// Validate ensures the range is non-empty and the tick scale is positive.
func (cfg WrapConfig) Validate() error {
	if err := checkRange(cfg.Min, cfg.Max); err != nil {
		return err
	}
	return checkTicksPerRotation(cfg.TicksPerRotation)
}

// Period returns the width of the measurement range.
func (cfg WrapConfig) Period() float64 {
	return cfg.Max - cfg.Min
}

// Wrap calls WrapPositionSetpoint with the receiver's range and tick scale.
func (cfg WrapConfig) Wrap(realSetpoint, measurement float64) (float64, error) {
	return WrapPositionSetpoint(realSetpoint, measurement, cfg.Min, cfg.Max, cfg.TicksPerRotation)
}

func checkTicksPerRotation(ticks float64) error {
	if !(ticks > 0) || math.IsInf(ticks, 0) {
		return NewInvalidTicksPerRotationError(ticks)
	}
	return nil
}

// ModifyPositionSetpoint returns a setpoint that makes a position controller take the
// shortest path to realSetpoint, for a measurement that is already wrapped into
// [minMeasurement, maxMeasurement]. The result differs from measurement by at most half a
// period. Both realSetpoint and measurement must lie within the closed range.
//
// Use WrapPositionSetpoint when the sensor accumulates past the range.
func ModifyPositionSetpoint(realSetpoint, measurement, minMeasurement, maxMeasurement float64) (float64, error) {
	if err := checkRange(minMeasurement, maxMeasurement); err != nil {
		return 0, err
	}
	if !inClosedRange(realSetpoint, minMeasurement, maxMeasurement) {
		return 0, NewSetpointOutOfRangeError(realSetpoint, minMeasurement, maxMeasurement)
	}
	if !inClosedRange(measurement, minMeasurement, maxMeasurement) {
		return 0, NewMeasurementOutOfRangeError(measurement, minMeasurement, maxMeasurement)
	}

	realError := realSetpoint - measurement
	modifiedError := balancedModulus(realError, maxMeasurement-minMeasurement)
	return measurement + modifiedError, nil
}

// WrapPositionSetpoint modifies the setpoint to always go the shorter way in position
// control, for mechanisms that can rotate freely in both directions.
//
// Say a swerve module's wheel is at 10 degrees and the setpoint is 350. Zero and 360 are
// the same physical position, so the shortest move is 20 degrees backwards, but a
// controller given 350 directly would rotate 340 degrees forwards. Passing 350 for
// realSetpoint, 10 for measurement, 0 and 360 for the range and 360 for ticksInRotation
// returns -10, which the controller reaches by the short way.
//
// The measurement may accumulate past the range (e.g. 361 for the same angle as 1); whole
// rotations counted by FullPeriods are added back onto the result. Because that count
// truncates toward zero and the range need not start at zero, the result can be a full
// rotation away from a negative measurement: 355 with a measurement of -10 stays 355. Pass
// the result through NearestRotation before handing it to a controller that tracks the raw
// sensor count. realSetpoint must lie within the closed range.
//
// Do not use this for mechanisms with finite travel such as a turret with a cable limit,
// an elevator or a telescopic arm.
func WrapPositionSetpoint(
	realSetpoint, measurement, minMeasurement, maxMeasurement, ticksInRotation float64,
) (float64, error) {
	if err := checkRange(minMeasurement, maxMeasurement); err != nil {
		return 0, err
	}
	if !inClosedRange(realSetpoint, minMeasurement, maxMeasurement) {
		return 0, NewSetpointOutOfRangeError(realSetpoint, minMeasurement, maxMeasurement)
	}
	if err := checkTicksPerRotation(ticksInRotation); err != nil {
		return 0, err
	}
	if math.IsNaN(measurement) || math.IsInf(measurement, 0) {
		return 0, errors.Wrapf(ErrMeasurementOutOfRange, "measurement %v is not finite", measurement)
	}

	wrappedMeasurement := inputModulus(measurement, minMeasurement, maxMeasurement)

	realError := realSetpoint - wrappedMeasurement
	modifiedError := balancedModulus(realError, maxMeasurement-minMeasurement)
	modifiedSetpoint := wrappedMeasurement + modifiedError

	return modifiedSetpoint + FullPeriods(measurement, ticksInRotation)*ticksInRotation, nil
}

// FullPeriods returns how many whole rotations of ticksInRotation the raw measurement has
// accumulated, truncated toward zero: floor for non-negative measurements and ceil for
// negative ones. The same magnitude therefore yields the same count with opposite sign.
func FullPeriods(measurement, ticksInRotation float64) float64 {
	if measurement < 0 {
		return math.Ceil(measurement / ticksInRotation)
	}
	return math.Floor(measurement / ticksInRotation)
}

// NearestRotation shifts setpoint by whole rotations of ticksInRotation to the equivalent
// position closest to measurement. The result lies in
// [measurement-ticksInRotation/2, measurement+ticksInRotation/2); an exact half rotation
// resolves to the negative side. A setpoint already in that window is returned as is.
func NearestRotation(setpoint, measurement, ticksInRotation float64) float64 {
	half := ticksInRotation / 2
	diff := setpoint - measurement
	if diff >= -half && diff < half {
		return setpoint
	}
	return setpoint - ticksInRotation*math.Floor((diff+half)/ticksInRotation)
}
