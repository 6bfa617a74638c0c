package units

// Encoder resolutions, in ticks per revolution of the sensor shaft.
const (
	FalconTicksPerRev   = 2048.0
	CANCoderTicksPerRev = 4096.0
)

// The Falcon reports velocity in ticks per 100ms; there are 600 such windows in a minute.
const falconVelocityWindowsPerMinute = 600.0

// FalconTicksToDegrees converts a Falcon integrated sensor position to degrees of the mechanism.
// gearRatio is sensor rotations per mechanism rotation.
func FalconTicksToDegrees(ticks, gearRatio float64) float64 {
	return ticks * (360.0 / (gearRatio * FalconTicksPerRev))
}

// DegreesToFalconTicks converts degrees of the mechanism to a Falcon integrated sensor position.
func DegreesToFalconTicks(degrees, gearRatio float64) float64 {
	return degrees / (360.0 / (gearRatio * FalconTicksPerRev))
}

// FalconTicksPer100msToRPM converts a Falcon velocity reading to mechanism RPM. Use a gear ratio
// of 1 for the motor's own RPM.
func FalconTicksPer100msToRPM(velocity, gearRatio float64) float64 {
	motorRPM := velocity * (falconVelocityWindowsPerMinute / FalconTicksPerRev)
	return motorRPM / gearRatio
}

// RPMToFalconTicksPer100ms converts mechanism RPM to a Falcon velocity setpoint.
func RPMToFalconTicksPer100ms(rpm, gearRatio float64) float64 {
	motorRPM := rpm * gearRatio
	return motorRPM * (FalconTicksPerRev / falconVelocityWindowsPerMinute)
}

// FalconTicksPer100msToMPS converts a Falcon velocity reading to wheel surface speed.
func FalconTicksPer100msToMPS(velocity, wheelCircumferenceMeters, gearRatio float64) float64 {
	wheelRPM := FalconTicksPer100msToRPM(velocity, gearRatio)
	return wheelRPM * wheelCircumferenceMeters / 60
}

// MPSToFalconTicksPer100ms converts wheel surface speed to a Falcon velocity setpoint.
func MPSToFalconTicksPer100ms(mps, wheelCircumferenceMeters, gearRatio float64) float64 {
	wheelRPM := mps * 60 / wheelCircumferenceMeters
	return RPMToFalconTicksPer100ms(wheelRPM, gearRatio)
}

// FalconTicksToMeters converts a Falcon position to distance travelled by the wheel.
func FalconTicksToMeters(ticks, wheelCircumferenceMeters, gearRatio float64) float64 {
	return ticks * (wheelCircumferenceMeters / (gearRatio * FalconTicksPerRev))
}

// MetersToFalconTicks converts wheel distance to a Falcon position.
func MetersToFalconTicks(meters, wheelCircumferenceMeters, gearRatio float64) float64 {
	return meters / (wheelCircumferenceMeters / (gearRatio * FalconTicksPerRev))
}

// CANCoderTicksToDegrees converts a CANCoder position to degrees of the mechanism.
func CANCoderTicksToDegrees(ticks, gearRatio float64) float64 {
	return ticks * (360.0 / (gearRatio * CANCoderTicksPerRev))
}

// DegreesToCANCoderTicks converts degrees of the mechanism to a CANCoder position.
func DegreesToCANCoderTicks(degrees, gearRatio float64) float64 {
	return degrees / (360.0 / (gearRatio * CANCoderTicksPerRev))
}

// DegPSToCANCoderTicksPer100ms converts degrees per second of the sensor shaft to CANCoder ticks
// per 100ms.
func DegPSToCANCoderTicksPer100ms(degPS float64) float64 {
	return DegreesToCANCoderTicks(degPS, 1) / 10
}
