package ledstrip

import "github.com/pkg/errors"

// NewInvalidLengthError is used when a strip is created with no LEDs.
func NewInvalidLengthError(length int) error {
	return errors.Errorf("strip length must be positive, got %d", length)
}

// NewInvalidStepError is used when a pattern step is not positive.
func NewInvalidStepError(step int) error {
	return errors.Errorf("step must be positive, got %d", step)
}
