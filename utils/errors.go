package utils

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidRange is returned when a range's lower bound is not below its upper bound.
	ErrInvalidRange = errors.New("invalid range")
	// ErrSetpointOutOfRange is returned when a setpoint lies outside its declared range.
	ErrSetpointOutOfRange = errors.New("setpoint out of range")
	// ErrMeasurementOutOfRange is returned when a measurement lies outside its declared range.
	ErrMeasurementOutOfRange = errors.New("measurement out of range")
	// ErrInvalidTicksPerRotation is returned for a non-positive rotation scale.
	ErrInvalidTicksPerRotation = errors.New("ticks per rotation must be positive")
	// ErrEmptyInput is returned by statistics over no values.
	ErrEmptyInput = errors.New("no values given")
)

// NewInvalidRangeError is used when min is not strictly less than max.
func NewInvalidRangeError(lo, hi float64) error {
	return errors.Wrapf(ErrInvalidRange, "min %v must be less than max %v", lo, hi)
}

// NewSetpointOutOfRangeError is used when a setpoint is outside of [lo, hi].
func NewSetpointOutOfRangeError(setpoint, lo, hi float64) error {
	return errors.Wrapf(ErrSetpointOutOfRange, "setpoint %v not in [%v, %v]", setpoint, lo, hi)
}

// NewMeasurementOutOfRangeError is used when a measurement is outside of [lo, hi].
func NewMeasurementOutOfRangeError(measurement, lo, hi float64) error {
	return errors.Wrapf(ErrMeasurementOutOfRange, "measurement %v not in [%v, %v]", measurement, lo, hi)
}

// NewInvalidTicksPerRotationError is used when a tick scale is zero, negative or not finite.
func NewInvalidTicksPerRotationError(ticks float64) error {
	return errors.Wrapf(ErrInvalidTicksPerRotation, "got %v", ticks)
}

// NewUnexpectedTypeError is used when there is a type mismatch.
func NewUnexpectedTypeError(expected interface{}, actual interface{}) error {
	return errors.Errorf("expected %T but got %T", expected, actual)
}
