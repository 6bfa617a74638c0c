package utils

import (
	"math"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// AngleDiffDeg returns the closest difference from the two given
// angles. The arguments are commutative.
func AngleDiffDeg(a1, a2 float64) float64 {
	return math.Abs(balancedModulus(a1-a2, 360))
}

// IsAngleInTolerance reports whether current is within tolerance of desired, going the
// short way around the circle. Angles are in degrees and may be in any range.
func IsAngleInTolerance(currentDeg, desiredDeg, toleranceDeg float64) bool {
	return AngleDiffDeg(currentDeg, desiredDeg) < toleranceDeg
}

// Sign returns -1, 0 or 1.
func Sign(x float64) float64 {
	if x == 0 {
		return 0
	}
	if math.Signbit(x) {
		return -1.0
	}
	return 1.0
}

// Clamp limits value to [min, max]. An inverted range (min > max) yields 0.
func Clamp(value, min, max float64) float64 {
	if min > max {
		return 0
	}
	return math.Max(min, math.Min(value, max))
}

// ClampInt is Clamp for ints.
func ClampInt(value, min, max int) int {
	if min > max {
		return 0
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// SimpleDeadband returns 0 when |value| is below deadband and value otherwise.
func SimpleDeadband(value, deadband float64) float64 {
	if math.Abs(value) < deadband {
		return 0
	}
	return value
}

// ContinuousDeadband zeroes |value| <= deadband and rescales the rest so the output is
// continuous at the deadband edge and still reaches ±1 at ±1. Meant for joystick axes.
func ContinuousDeadband(value, deadband float64) float64 {
	if math.Abs(value) <= deadband {
		return 0
	}
	return (value - deadband*Sign(value)) / (1.0 - deadband)
}

// MapRange maps value linearly from [startMin, startMax] onto [endMin, endMax].
func MapRange(value, startMin, startMax, endMin, endMax float64) float64 {
	return endMin + (endMax-endMin)/(startMax-startMin)*(value-startMin)
}

// MapRangeInt is MapRange in integer arithmetic. The scale factor is truncated first,
// so ranges whose widths do not divide evenly lose precision.
func MapRangeInt(value, startMin, startMax, endMin, endMax int) int {
	return endMin + (endMax-endMin)/(startMax-startMin)*(value-startMin)
}

// Median returns the median of values. For an even count it is the mean of the two middle
// values. The input is not modified.
func Median(values ...float64) (float64, error) {
	if len(values) == 0 {
		return math.NaN(), ErrEmptyInput
	}
	m, err := stats.Median(values)
	if err != nil {
		return math.NaN(), errors.Wrap(err, "median")
	}
	return m, nil
}

// Square returns n*n.
func Square(n float64) float64 {
	return n * n
}
