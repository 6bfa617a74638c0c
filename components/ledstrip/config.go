package ledstrip

import (
	"github.com/pkg/errors"
	"go.viam.com/utils"
)

// Config describes a strip on one PWM port.
type Config struct {
	Length  int `json:"length"`
	PWMPort int `json:"pwm_port"`
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	if cfg.Length == 0 {
		return utils.NewConfigValidationFieldRequiredError(path, "length")
	}
	if cfg.Length < 0 {
		return utils.NewConfigValidationError(path, NewInvalidLengthError(cfg.Length))
	}
	if cfg.PWMPort < 0 {
		return utils.NewConfigValidationError(path, errors.Errorf("pwm_port must not be negative, got %d", cfg.PWMPort))
	}
	return nil
}
