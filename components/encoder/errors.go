package encoder

import "github.com/pkg/errors"

// ErrNoWheelRadius is returned for a linear measurement from an encoder configured without a
// wheel radius.
var ErrNoWheelRadius = errors.New("no wheel radius configured")

// NewNoWheelRadiusError returns an error naming the encoder without a wheel radius.
func NewNoWheelRadiusError(name string) error {
	return errors.Wrapf(ErrNoWheelRadius, "encoder %s", name)
}
