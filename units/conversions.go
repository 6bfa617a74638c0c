// Package units converts between the angle, angular velocity, length and encoder tick units
// used on the robot, and provides Length and AngularVelocity value types.
package units

import (
	"math"

	"github.com/hamosad1657/halib/utils"
)

// InchesInMeter is the number of inches in one meter.
const InchesInMeter = 39.3700787402

// RPMToRPS converts rotations per minute to rotations per second.
func RPMToRPS(rpm float64) float64 {
	return rpm / 60.0
}

// RPMToRadPS converts rotations per minute to radians per second.
func RPMToRadPS(rpm float64) float64 {
	return rpm / 60.0 * (math.Pi * 2.0)
}

// RPMToDegPS converts rotations per minute to degrees per second.
func RPMToDegPS(rpm float64) float64 {
	return rpm / 60.0 * 360.0
}

// RPSToRPM converts rotations per second to rotations per minute.
func RPSToRPM(rps float64) float64 {
	return rps * 60.0
}

// RPSToRadPS converts rotations per second to radians per second.
func RPSToRadPS(rps float64) float64 {
	return rps * math.Pi * 2.0
}

// RPSToDegPS converts rotations per second to degrees per second.
func RPSToDegPS(rps float64) float64 {
	return rps * 360.0
}

// RadPSToRPM converts radians per second to rotations per minute.
func RadPSToRPM(radPS float64) float64 {
	return radPS / (math.Pi * 2.0) * 60.0
}

// RadPSToRPS converts radians per second to rotations per second.
func RadPSToRPS(radPS float64) float64 {
	return radPS / (math.Pi * 2.0)
}

// RadPSToDegPS converts radians per second to degrees per second.
func RadPSToDegPS(radPS float64) float64 {
	return utils.RadToDeg(radPS)
}

// DegPSToRPM converts degrees per second to rotations per minute.
func DegPSToRPM(degPS float64) float64 {
	return degPS / 360.0 * 60.0
}

// DegPSToRPS converts degrees per second to rotations per second.
func DegPSToRPS(degPS float64) float64 {
	return degPS / 360.0
}

// DegPSToRadPS converts degrees per second to radians per second.
func DegPSToRadPS(degPS float64) float64 {
	return utils.DegToRad(degPS)
}

// RPMToMPS converts the rotation speed of a wheel to the linear speed of its rim.
func RPMToMPS(rpm float64, wheelRadius Length) (float64, error) {
	if wheelRadius.Meters() <= 0 {
		return 0, NewInvalidWheelRadiusError(wheelRadius)
	}
	return rpm / 60.0 * (wheelRadius.Meters() * 2.0 * math.Pi), nil
}

// RadPSToMPS is RPMToMPS for radians per second.
func RadPSToMPS(radPS float64, wheelRadius Length) (float64, error) {
	return RPMToMPS(RadPSToRPM(radPS), wheelRadius)
}

// DegPSToMPS is RPMToMPS for degrees per second.
func DegPSToMPS(degPS float64, wheelRadius Length) (float64, error) {
	return RPMToMPS(DegPSToRPM(degPS), wheelRadius)
}

// MPSToRPM converts the linear speed of a wheel's rim to its rotation speed.
func MPSToRPM(mps float64, wheelRadius Length) (float64, error) {
	if wheelRadius.Meters() <= 0 {
		return 0, NewInvalidWheelRadiusError(wheelRadius)
	}
	return mps * 60.0 / (wheelRadius.Meters() * 2.0 * math.Pi), nil
}

// MPSToRadPS is MPSToRPM in radians per second.
func MPSToRadPS(mps float64, wheelRadius Length) (float64, error) {
	rpm, err := MPSToRPM(mps, wheelRadius)
	if err != nil {
		return 0, err
	}
	return RPMToRadPS(rpm), nil
}

// MPSToDegPS is MPSToRPM in degrees per second.
func MPSToDegPS(mps float64, wheelRadius Length) (float64, error) {
	rpm, err := MPSToRPM(mps, wheelRadius)
	if err != nil {
		return 0, err
	}
	return RPMToDegPS(rpm), nil
}

// MetersToInches converts meters to inches.
func MetersToInches(meters float64) float64 {
	return meters * InchesInMeter
}

// MetersToFeet converts meters to feet.
func MetersToFeet(meters float64) float64 {
	return InchesToFeet(MetersToInches(meters))
}

// InchesToMeters converts inches to meters.
func InchesToMeters(inches float64) float64 {
	return inches / InchesInMeter
}

// InchesToFeet converts inches to feet.
func InchesToFeet(inches float64) float64 {
	return inches / 12.0
}

// FeetToMeters converts feet to meters.
func FeetToMeters(feet float64) float64 {
	return InchesToMeters(FeetToInches(feet))
}

// FeetToInches converts feet to inches.
func FeetToInches(feet float64) float64 {
	return feet * 12.0
}
