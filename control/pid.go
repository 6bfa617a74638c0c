package control

import (
	"math"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/hamosad1657/halib/utils"
)

// PIDConfig configures a PIDController.
type PIDConfig struct {
	Gains PIDGains `json:"gains"`
	// MinOutput and MaxOutput bound the output. Both zero leaves the output unbounded.
	MinOutput float64 `json:"min_output,omitempty"`
	MaxOutput float64 `json:"max_output,omitempty"`
	// Tolerance is the error at or below which AtSetpoint reports true.
	Tolerance float64 `json:"tolerance,omitempty"`
	// ContinuousInput treats the measurement as wrapping around every ContinuousInput.Period(),
	// so the error always takes the short way around.
	ContinuousInput *utils.WrapConfig `json:"continuous_input,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (cfg *PIDConfig) Validate(path string) error {
	if err := cfg.Gains.Validate(path); err != nil {
		return err
	}
	if cfg.MinOutput > cfg.MaxOutput {
		return NewInvalidOutputLimitsError(cfg.MinOutput, cfg.MaxOutput)
	}
	if cfg.ContinuousInput != nil {
		return cfg.ContinuousInput.Validate()
	}
	return nil
}

func (cfg *PIDConfig) limited() bool {
	return cfg.MinOutput != 0 || cfg.MaxOutput != 0
}

// PIDController is a discrete PID controller with a feed forward term, an integral zone and
// optional continuous input. It is safe for concurrent use.
type PIDController struct {
	mu    sync.Mutex
	cfg   PIDConfig
	clock clock.Clock

	setpoint  float64
	integral  float64
	lastError float64
	lastTime  time.Time
	hasLast   bool
}

// NewPIDController returns a controller for cfg. Calculate measures the time between calls with
// clk, which may be nil to use the wall clock.
func NewPIDController(cfg PIDConfig, clk clock.Clock) (*PIDController, error) {
	if err := cfg.Validate("pid"); err != nil {
		return nil, err
	}
	if clk == nil {
		clk = clock.New()
	}
	return &PIDController{cfg: cfg, clock: clk}, nil
}

// SetSetpoint changes the target. The accumulated state is kept.
func (p *PIDController) SetSetpoint(setpoint float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setpoint = setpoint
}

// Setpoint returns the current target.
func (p *PIDController) Setpoint() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.setpoint
}

// SetGains replaces the gains.
func (p *PIDController) SetGains(gains PIDGains) error {
	if err := gains.Validate("pid"); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.Gains = gains
	return nil
}

// Reset clears the integral and derivative history.
func (p *PIDController) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.integral = 0
	p.lastError = 0
	p.hasLast = false
}

// Calculate returns the output for measurement, using the time since the previous call as the
// step. The first call after construction or Reset has no integral or derivative contribution.
func (p *PIDController) Calculate(measurement float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := p.clock.Now()
	var dt time.Duration
	if p.hasLast {
		dt = now.Sub(p.lastTime)
	}
	p.lastTime = now
	return p.step(measurement, dt)
}

// Step is like Calculate with an explicit time step.
func (p *PIDController) Step(measurement float64, dt time.Duration) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastTime = p.clock.Now()
	return p.step(measurement, dt)
}

func (p *PIDController) step(measurement float64, dt time.Duration) float64 {
	gains := p.cfg.Gains
	dtS := dt.Seconds()
	err := p.errorFor(measurement)

	if gains.KIZone > 0 && math.Abs(err) > gains.KIZone {
		p.integral = 0
	} else if dtS > 0 {
		p.integral += err * dtS
		// keep the integral term alone from exceeding the output limits
		if p.cfg.limited() && gains.KI > 0 {
			p.integral = utils.Clamp(p.integral, p.cfg.MinOutput/gains.KI, p.cfg.MaxOutput/gains.KI)
		}
	}

	var deriv float64
	if p.hasLast && dtS > 0 {
		deriv = (err - p.lastError) / dtS
	}
	p.lastError = err
	p.hasLast = true

	output := gains.KP*err + gains.KI*p.integral + gains.KD*deriv + gains.KFF*p.setpoint
	if p.cfg.limited() {
		output = utils.Clamp(output, p.cfg.MinOutput, p.cfg.MaxOutput)
	}
	return output
}

func (p *PIDController) errorFor(measurement float64) float64 {
	err := p.setpoint - measurement
	if p.cfg.ContinuousInput == nil {
		return err
	}
	// validated at construction
	halfPeriod := p.cfg.ContinuousInput.Period() / 2
	return utils.MustInputModulus(err, -halfPeriod, halfPeriod)
}

// AtSetpoint reports whether the last error was within tolerance. It is false before the first
// Calculate.
func (p *PIDController) AtSetpoint() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasLast && math.Abs(p.lastError) <= p.cfg.Tolerance
}

// LastError returns the error seen by the last Calculate or Step.
func (p *PIDController) LastError() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastError
}
