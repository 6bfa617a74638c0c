package control

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"github.com/hamosad1657/halib/utils"
)

func TestPIDConfig(t *testing.T) {
	for _, tc := range []struct {
		name string
		cfg  PIDConfig
		err  error
	}{
		{"empty", PIDConfig{}, nil},
		{"limits", PIDConfig{MinOutput: -1, MaxOutput: 1}, nil},
		{"inverted limits", PIDConfig{MinOutput: 1, MaxOutput: -1}, ErrInvalidOutputLimits},
		{"bad wrap", PIDConfig{ContinuousInput: &utils.WrapConfig{Min: 1, Max: 1, TicksPerRotation: 1}}, utils.ErrInvalidRange},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPIDController(tc.cfg, nil)
			if tc.err == nil {
				test.That(t, err, test.ShouldBeNil)
			} else {
				test.That(t, errors.Is(err, tc.err), test.ShouldBeTrue)
			}
		})
	}

	_, err := NewPIDController(PIDConfig{Gains: PIDGains{KP: -1}}, nil)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestPIDProportional(t *testing.T) {
	pid, err := NewPIDController(PIDConfig{Gains: PIDGains{KP: 0.5}, Tolerance: 1}, clock.NewMock())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pid.AtSetpoint(), test.ShouldBeFalse)

	pid.SetSetpoint(10)
	test.That(t, pid.Setpoint(), test.ShouldEqual, 10.0)
	test.That(t, pid.Calculate(4), test.ShouldEqual, 3.0)
	test.That(t, pid.LastError(), test.ShouldEqual, 6.0)
	test.That(t, pid.AtSetpoint(), test.ShouldBeFalse)

	test.That(t, pid.Calculate(9.5), test.ShouldEqual, 0.25)
	test.That(t, pid.AtSetpoint(), test.ShouldBeTrue)
}

func TestPIDIntegralAndDerivative(t *testing.T) {
	clk := clock.NewMock()
	pid, err := NewPIDController(PIDConfig{Gains: PIDGains{KI: 1, KD: 2}}, clk)
	test.That(t, err, test.ShouldBeNil)
	pid.SetSetpoint(1)

	// no history on the first call
	test.That(t, pid.Calculate(0), test.ShouldEqual, 0.0)

	clk.Add(500 * time.Millisecond)
	// integral 0.5, error unchanged so no derivative
	test.That(t, pid.Calculate(0), test.ShouldAlmostEqual, 0.5)

	clk.Add(500 * time.Millisecond)
	// error drops from 1 to 0.5: integral 0.75, derivative -1
	test.That(t, pid.Calculate(0.5), test.ShouldAlmostEqual, 0.75-2)

	pid.Reset()
	test.That(t, pid.AtSetpoint(), test.ShouldBeFalse)
	test.That(t, pid.Step(0, time.Second), test.ShouldAlmostEqual, 1.0)
}

func TestPIDIZone(t *testing.T) {
	pid, err := NewPIDController(PIDConfig{Gains: PIDGains{KI: 1, KIZone: 5}}, clock.NewMock())
	test.That(t, err, test.ShouldBeNil)
	pid.SetSetpoint(10)

	// outside the zone the accumulator stays clear
	test.That(t, pid.Step(0, time.Second), test.ShouldEqual, 0.0)
	test.That(t, pid.Step(0, time.Second), test.ShouldEqual, 0.0)

	test.That(t, pid.Step(8, time.Second), test.ShouldEqual, 2.0)
	test.That(t, pid.Step(8, time.Second), test.ShouldEqual, 4.0)

	// leaving the zone clears it again
	test.That(t, pid.Step(-10, time.Second), test.ShouldEqual, 0.0)
}

func TestPIDOutputLimits(t *testing.T) {
	pid, err := NewPIDController(PIDConfig{
		Gains:     PIDGains{KP: 1, KI: 1},
		MinOutput: -1,
		MaxOutput: 1,
	}, clock.NewMock())
	test.That(t, err, test.ShouldBeNil)
	pid.SetSetpoint(100)

	for i := 0; i < 10; i++ {
		test.That(t, pid.Step(0, time.Second), test.ShouldEqual, 1.0)
	}
	// the integral did not wind up past the limit, so it recovers immediately
	pid.SetSetpoint(0)
	test.That(t, pid.Step(1.5, time.Second), test.ShouldEqual, -1.0)
	test.That(t, pid.Step(0, 0), test.ShouldAlmostEqual, -0.5)
}

func TestPIDFeedForward(t *testing.T) {
	pid, err := NewPIDController(PIDConfig{Gains: PIDGains{KFF: 0.01}}, clock.NewMock())
	test.That(t, err, test.ShouldBeNil)
	pid.SetSetpoint(300)
	test.That(t, pid.Calculate(300), test.ShouldAlmostEqual, 3.0)

	test.That(t, pid.SetGains(PIDGains{KFF: 0.02}), test.ShouldBeNil)
	test.That(t, pid.Calculate(0), test.ShouldAlmostEqual, 6.0)
	test.That(t, pid.SetGains(PIDGains{KFF: -1}), test.ShouldNotBeNil)
}

func TestPIDContinuousInput(t *testing.T) {
	pid, err := NewPIDController(PIDConfig{
		Gains:           PIDGains{KP: 1},
		ContinuousInput: &utils.WrapConfig{Min: 0, Max: 360, TicksPerRotation: 360},
	}, clock.NewMock())
	test.That(t, err, test.ShouldBeNil)

	pid.SetSetpoint(350)
	test.That(t, pid.Calculate(10), test.ShouldAlmostEqual, -20.0)

	pid.SetSetpoint(10)
	test.That(t, pid.Calculate(350), test.ShouldAlmostEqual, 20.0)
	test.That(t, pid.Calculate(730), test.ShouldAlmostEqual, 0.0)
}
