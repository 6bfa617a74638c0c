package units

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidLength is returned for a negative, NaN or infinite length.
	ErrInvalidLength = errors.New("invalid length")
	// ErrInvalidAngularVelocity is returned for a NaN or infinite angular velocity.
	ErrInvalidAngularVelocity = errors.New("invalid angular velocity")
	// ErrInvalidWheelRadius is returned when converting with a zero wheel radius.
	ErrInvalidWheelRadius = errors.New("wheel radius must be positive")
)

// NewInvalidLengthError is used when a length would be negative or not finite.
func NewInvalidLengthError(meters float64) error {
	return errors.Wrapf(ErrInvalidLength, "%v meters", meters)
}

// NewInvalidAngularVelocityError is used when an angular velocity would not be finite.
func NewInvalidAngularVelocityError(rpm float64) error {
	return errors.Wrapf(ErrInvalidAngularVelocity, "%v rpm", rpm)
}

// NewInvalidWheelRadiusError is used when a wheel radius is zero.
func NewInvalidWheelRadiusError(radius Length) error {
	return errors.Wrapf(ErrInvalidWheelRadius, "got %v", radius)
}
