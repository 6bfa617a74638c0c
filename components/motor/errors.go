package motor

import "github.com/pkg/errors"

var (
	// ErrInvalidPercentOutputLimits is returned when the maximum percent output is below the
	// minimum.
	ErrInvalidPercentOutputLimits = errors.New("max percent output must not be below min percent output")
	// ErrPositionWrap is returned when a Position-mode setpoint cannot be wrapped.
	ErrPositionWrap = errors.New("cannot wrap position setpoint")
)

// NewInvalidPercentOutputLimitsError returns an error for min > max.
func NewInvalidPercentOutputLimitsError(minPct, maxPct float64) error {
	return errors.Wrapf(ErrInvalidPercentOutputLimits, "min %v, max %v", minPct, maxPct)
}

// NewPositionWrapError returns an error for a setpoint the position wrap rejected.
func NewPositionWrapError(motorName string, err error) error {
	return errors.Wrapf(ErrPositionWrap, "motor %s: %v", motorName, err)
}

// NewUnknownControlModeError returns an error for an out-of-range control mode.
func NewUnknownControlModeError(mode ControlMode) error {
	return errors.Errorf("unknown control mode %d", int(mode))
}
