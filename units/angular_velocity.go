package units

import (
	"fmt"
	"math"
)

// AngularVelocity is a finite rotation speed. The zero value is stationary.
type AngularVelocity struct {
	rpm float64
}

func newAngularVelocity(rpm float64) (AngularVelocity, error) {
	if math.IsNaN(rpm) || math.IsInf(rpm, 0) {
		return AngularVelocity{}, NewInvalidAngularVelocityError(rpm)
	}
	return AngularVelocity{rpm: rpm}, nil
}

// AngularVelocityFromRPM returns an angular velocity of the given rotations per minute.
func AngularVelocityFromRPM(rpm float64) (AngularVelocity, error) {
	return newAngularVelocity(rpm)
}

// AngularVelocityFromRPS returns an angular velocity of the given rotations per second.
func AngularVelocityFromRPS(rps float64) (AngularVelocity, error) {
	return newAngularVelocity(RPSToRPM(rps))
}

// AngularVelocityFromRadPS returns an angular velocity of the given radians per second.
func AngularVelocityFromRadPS(radPS float64) (AngularVelocity, error) {
	return newAngularVelocity(RadPSToRPM(radPS))
}

// AngularVelocityFromDegPS returns an angular velocity of the given degrees per second.
func AngularVelocityFromDegPS(degPS float64) (AngularVelocity, error) {
	return newAngularVelocity(DegPSToRPM(degPS))
}

// AngularVelocityFromMPS returns the rotation speed of a wheel whose rim moves at mps.
func AngularVelocityFromMPS(mps float64, wheelRadius Length) (AngularVelocity, error) {
	rpm, err := MPSToRPM(mps, wheelRadius)
	if err != nil {
		return AngularVelocity{}, err
	}
	return newAngularVelocity(rpm)
}

// RPM returns the velocity in rotations per minute.
func (v AngularVelocity) RPM() float64 {
	return v.rpm
}

// RPS returns the velocity in rotations per second.
func (v AngularVelocity) RPS() float64 {
	return RPMToRPS(v.rpm)
}

// RadPS returns the velocity in radians per second.
func (v AngularVelocity) RadPS() float64 {
	return RPMToRadPS(v.rpm)
}

// DegPS returns the velocity in degrees per second.
func (v AngularVelocity) DegPS() float64 {
	return RPMToDegPS(v.rpm)
}

// MPS returns the rim speed of a wheel of the given radius turning at v.
func (v AngularVelocity) MPS(wheelRadius Length) (float64, error) {
	return RPMToMPS(v.rpm, wheelRadius)
}

// Abs returns the magnitude of v.
func (v AngularVelocity) Abs() AngularVelocity {
	return AngularVelocity{rpm: math.Abs(v.rpm)}
}

// Add returns v + other.
func (v AngularVelocity) Add(other AngularVelocity) (AngularVelocity, error) {
	return newAngularVelocity(v.rpm + other.rpm)
}

// Sub returns v - other.
func (v AngularVelocity) Sub(other AngularVelocity) (AngularVelocity, error) {
	return newAngularVelocity(v.rpm - other.rpm)
}

// Mul scales v by ratio.
func (v AngularVelocity) Mul(ratio float64) (AngularVelocity, error) {
	return newAngularVelocity(v.rpm * ratio)
}

// Div divides v by ratio. Dividing by zero fails.
func (v AngularVelocity) Div(ratio float64) (AngularVelocity, error) {
	return newAngularVelocity(v.rpm / ratio)
}

// Less reports whether v is slower than other, signs included.
func (v AngularVelocity) Less(other AngularVelocity) bool {
	return v.rpm < other.rpm
}

func (v AngularVelocity) String() string {
	return fmt.Sprintf("RPM(%v)", v.rpm)
}
