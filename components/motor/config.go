package motor

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"

	rutils "github.com/hamosad1657/halib/utils"
)

// DefaultSafeTemperatureC is the highest temperature a motor is expected to survive for the
// length of a match.
const DefaultSafeTemperatureC = 90.0

// Config describes how a Motor drives its controller. Unset percent output limits default to
// the full [-1, 1] range.
type Config struct {
	MinPercentOutput *float64 `json:"min_percent_output,omitempty"`
	MaxPercentOutput *float64 `json:"max_percent_output,omitempty"`
	SafeTemperatureC float64  `json:"safe_temperature_c,omitempty"`
	// PositionWrap, when set, enables position wrap from construction.
	PositionWrap *rutils.WrapConfig `json:"position_wrap,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	var errs error
	minPct, maxPct := cfg.percentOutputLimits()
	if maxPct < minPct {
		errs = multierr.Append(errs, utils.NewConfigValidationError(path,
			NewInvalidPercentOutputLimitsError(minPct, maxPct)))
	}
	if cfg.SafeTemperatureC < 0 || math.IsNaN(cfg.SafeTemperatureC) {
		errs = multierr.Append(errs, utils.NewConfigValidationError(path,
			errors.Errorf("safe_temperature_c must not be negative, got %v", cfg.SafeTemperatureC)))
	}
	if cfg.PositionWrap != nil {
		if err := cfg.PositionWrap.Validate(); err != nil {
			errs = multierr.Append(errs, utils.NewConfigValidationError(path+".position_wrap", err))
		}
	}
	return errs
}

func (cfg *Config) percentOutputLimits() (float64, float64) {
	minPct, maxPct := -1.0, 1.0
	if cfg.MinPercentOutput != nil {
		minPct = clampPercent(*cfg.MinPercentOutput)
	}
	if cfg.MaxPercentOutput != nil {
		maxPct = clampPercent(*cfg.MaxPercentOutput)
	}
	return minPct, maxPct
}

func (cfg *Config) safeTemperatureC() float64 {
	if cfg.SafeTemperatureC == 0 {
		return DefaultSafeTemperatureC
	}
	return cfg.SafeTemperatureC
}

func clampPercent(pct float64) float64 {
	return rutils.Clamp(pct, -1, 1)
}
