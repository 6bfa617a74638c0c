package units

import (
	"fmt"
	"math"
)

// Length is a non-negative, finite distance. The zero value is zero meters.
type Length struct {
	meters float64
}

func newLength(meters float64) (Length, error) {
	if math.IsNaN(meters) || math.IsInf(meters, 0) || meters < 0 {
		return Length{}, NewInvalidLengthError(meters)
	}
	return Length{meters: meters}, nil
}

// LengthFromMeters returns a length of the given meters.
func LengthFromMeters(meters float64) (Length, error) {
	return newLength(meters)
}

// LengthFromCentimeters returns a length of the given centimeters.
func LengthFromCentimeters(centimeters float64) (Length, error) {
	return newLength(centimeters / 100.0)
}

// LengthFromMillimeters returns a length of the given millimeters.
func LengthFromMillimeters(millimeters float64) (Length, error) {
	return newLength(millimeters / 1000.0)
}

// LengthFromFeet returns a length of the given feet.
func LengthFromFeet(feet float64) (Length, error) {
	return newLength(FeetToMeters(feet))
}

// LengthFromInches returns a length of the given inches.
func LengthFromInches(inches float64) (Length, error) {
	return newLength(InchesToMeters(inches))
}

// Meters returns the length in meters.
func (l Length) Meters() float64 {
	return l.meters
}

// Centimeters returns the length in centimeters.
func (l Length) Centimeters() float64 {
	return l.meters * 100.0
}

// Millimeters returns the length in millimeters.
func (l Length) Millimeters() float64 {
	return l.meters * 1000.0
}

// Feet returns the length in feet.
func (l Length) Feet() float64 {
	return MetersToFeet(l.meters)
}

// Inches returns the length in inches.
func (l Length) Inches() float64 {
	return MetersToInches(l.meters)
}

// Add returns l + other.
func (l Length) Add(other Length) (Length, error) {
	return newLength(l.meters + other.meters)
}

// Sub returns l - other, which fails when other is longer.
func (l Length) Sub(other Length) (Length, error) {
	return newLength(l.meters - other.meters)
}

// Mul scales the length.
func (l Length) Mul(factor float64) (Length, error) {
	return newLength(l.meters * factor)
}

// Div divides the length.
func (l Length) Div(divisor float64) (Length, error) {
	return newLength(l.meters / divisor)
}

// Less reports whether l is shorter than other.
func (l Length) Less(other Length) bool {
	return l.meters < other.meters
}

func (l Length) String() string {
	return fmt.Sprintf("%vm", l.meters)
}
