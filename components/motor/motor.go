// Package motor wraps a motor controller with the safety and setpoint handling every mechanism
// needs: percent output limits, limit switches, temperature checks and position wrap.
package motor

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/hamosad1657/halib/logging"
	"github.com/hamosad1657/halib/utils"
)

// ControlMode selects what the value passed to a controller means.
type ControlMode int

// The control modes a controller accepts.
const (
	PercentOutput ControlMode = iota
	Position
	Velocity
	Current
)

func (m ControlMode) String() string {
	switch m {
	case PercentOutput:
		return "PercentOutput"
	case Position:
		return "Position"
	case Velocity:
		return "Velocity"
	case Current:
		return "Current"
	}
	return "Unknown"
}

// A Controller is a motor controller running its own closed loops, as exposed by a vendor SDK.
// Position and velocity are in the controller's raw sensor units.
type Controller interface {
	// Set commands the controller in the given mode.
	Set(ctx context.Context, mode ControlMode, value float64) error
	// SelectedSensorPosition returns the raw, accumulating position of the feedback sensor.
	SelectedSensorPosition(ctx context.Context) (float64, error)
	// Temperature returns the motor temperature in degrees Celsius.
	Temperature(ctx context.Context) (float64, error)
}

// A LimitSwitch reports whether the mechanism is at the end of its travel.
type LimitSwitch func() bool

// Option configures a Motor.
type Option func(*Motor)

// WithForwardLimit stops positive output while the switch is pressed.
func WithForwardLimit(limit LimitSwitch) Option {
	return func(m *Motor) {
		m.forwardLimit = limit
	}
}

// WithReverseLimit stops negative output while the switch is pressed.
func WithReverseLimit(limit LimitSwitch) Option {
	return func(m *Motor) {
		m.reverseLimit = limit
	}
}

// Motor drives a Controller. It is safe for concurrent use.
type Motor struct {
	name   string
	ctrl   Controller
	logger logging.Logger

	mu           sync.Mutex
	minPct       float64
	maxPct       float64
	safeTempC    float64
	wrap         utils.WrapConfig
	wrapEnabled  bool
	forwardLimit LimitSwitch
	reverseLimit LimitSwitch
}

func noLimit() bool { return false }

// New returns a Motor driving ctrl.
func New(name string, ctrl Controller, cfg Config, logger logging.Logger, opts ...Option) (*Motor, error) {
	if err := cfg.Validate(name); err != nil {
		return nil, err
	}
	minPct, maxPct := cfg.percentOutputLimits()
	m := &Motor{
		name:         name,
		ctrl:         ctrl,
		logger:       logger,
		minPct:       minPct,
		maxPct:       maxPct,
		safeTempC:    cfg.safeTemperatureC(),
		forwardLimit: noLimit,
		reverseLimit: noLimit,
	}
	if cfg.PositionWrap != nil {
		m.wrap = *cfg.PositionWrap
		m.wrapEnabled = true
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Name returns the name the motor was created with.
func (m *Motor) Name() string {
	return m.name
}

// SetPercentOutputLimits changes the percent output range. Each bound is first clamped to
// [-1, 1].
func (m *Motor) SetPercentOutputLimits(minPct, maxPct float64) error {
	minPct, maxPct = clampPercent(minPct), clampPercent(maxPct)
	if maxPct < minPct {
		return NewInvalidPercentOutputLimitsError(minPct, maxPct)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.minPct, m.maxPct = minPct, maxPct
	return nil
}

// PercentOutputLimits returns the current percent output range.
func (m *Motor) PercentOutputLimits() (float64, float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.minPct, m.maxPct
}

// SetPower commands a percent output, clamped to the percent output limits.
func (m *Motor) SetPower(ctx context.Context, pct float64) error {
	m.mu.Lock()
	minPct, maxPct := m.minPct, m.maxPct
	m.mu.Unlock()
	return m.ctrl.Set(ctx, PercentOutput, utils.Clamp(pct, minPct, maxPct))
}

// SetPowerWithLimits is like SetPower but outputs zero when the mechanism is pressing a limit
// switch in the commanded direction.
func (m *Motor) SetPowerWithLimits(ctx context.Context, pct float64) error {
	m.mu.Lock()
	forwardLimit, reverseLimit := m.forwardLimit, m.reverseLimit
	m.mu.Unlock()
	if (pct > 0 && forwardLimit()) || (pct < 0 && reverseLimit()) {
		m.logger.CDebugw(ctx, "limit switch pressed, stopping", "motor", m.name, "power", pct)
		return m.SetPower(ctx, 0)
	}
	return m.SetPower(ctx, pct)
}

// Position returns the raw, accumulating sensor position.
func (m *Motor) Position(ctx context.Context) (float64, error) {
	return m.ctrl.SelectedSensorPosition(ctx)
}

// Stop sets the output to zero.
func (m *Motor) Stop(ctx context.Context) error {
	return m.ctrl.Set(ctx, PercentOutput, 0)
}

// Set commands the controller. PercentOutput goes through SetPower. With position wrap enabled,
// a Position setpoint is taken as a logical position within the wrap range and replaced by the
// equivalent raw position closest to the current sensor reading.
func (m *Motor) Set(ctx context.Context, mode ControlMode, value float64) error {
	switch mode {
	case PercentOutput:
		return m.SetPower(ctx, value)
	case Position:
		wrap, enabled := m.PositionWrap()
		if !enabled {
			return m.ctrl.Set(ctx, mode, value)
		}
		measurement, err := m.ctrl.SelectedSensorPosition(ctx)
		if err != nil {
			return errors.Wrapf(err, "motor %s: cannot read sensor position", m.name)
		}
		wrapped, err := wrap.Wrap(value, measurement)
		if err != nil {
			m.logger.Warnw("position setpoint rejected", "motor", m.name, "setpoint", value, "error", err)
			return NewPositionWrapError(m.name, err)
		}
		wrapped = utils.NearestRotation(wrapped, measurement, wrap.TicksPerRotation)
		m.logger.CDebugw(ctx, "wrapped position setpoint",
			"motor", m.name, "setpoint", value, "measurement", measurement, "wrapped", wrapped)
		return m.ctrl.Set(ctx, Position, wrapped)
	case Velocity, Current:
		return m.ctrl.Set(ctx, mode, value)
	default:
		return NewUnknownControlModeError(mode)
	}
}

// EnablePositionWrap makes Position setpoints always take the shorter way around. For example,
// with a range of [0, 360), a sensor at 359 and a setpoint of 2, the motor moves 3 degrees
// forwards instead of 357 backwards.
//
// Never enable this on a mechanism with limited travel.
func (m *Motor) EnablePositionWrap(cfg utils.WrapConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wrap = cfg
	m.wrapEnabled = true
	return nil
}

// DisablePositionWrap passes Position setpoints through unchanged.
func (m *Motor) DisablePositionWrap() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wrapEnabled = false
}

// PositionWrap returns the position wrap range and whether it is enabled.
func (m *Motor) PositionWrap() (utils.WrapConfig, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wrap, m.wrapEnabled
}

// IsTempSafe reports whether the motor is below its safe temperature.
func (m *Motor) IsTempSafe(ctx context.Context) (bool, error) {
	temp, err := m.ctrl.Temperature(ctx)
	if err != nil {
		return false, err
	}
	m.mu.Lock()
	safeTempC := m.safeTempC
	m.mu.Unlock()
	if temp >= safeTempC {
		m.logger.Warnw("motor over safe temperature", "motor", m.name, "temperature", temp, "limit", safeTempC)
		return false, nil
	}
	return true, nil
}
