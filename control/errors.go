package control

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidWindow is returned for a moving window filter with no samples.
	ErrInvalidWindow = errors.New("window must be positive")
	// ErrInvalidOutputLimits is returned when a controller's minimum output exceeds its maximum.
	ErrInvalidOutputLimits = errors.New("min output must not exceed max output")
)

// NewInvalidWindowError is used when a filter window is zero or negative.
func NewInvalidWindowError(window int) error {
	return errors.Wrapf(ErrInvalidWindow, "got %d", window)
}

// NewInvalidOutputLimitsError is used when min > max.
func NewInvalidOutputLimitsError(minOutput, maxOutput float64) error {
	return errors.Wrapf(ErrInvalidOutputLimits, "min %v, max %v", minOutput, maxOutput)
}
