package config

import (
	"encoding/json"
	"fmt"

	"github.com/a8m/envsubst"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"
	"go.viam.com/utils"
)

// ComponentType names a family of components.
type ComponentType string

// The component types this library knows how to configure.
const (
	ComponentTypeMotor    = ComponentType("motor")
	ComponentTypeEncoder  = ComponentType("encoder")
	ComponentTypeLEDStrip = ComponentType("led_strip")
	ComponentTypeSwerve   = ComponentType("swerve_module")
)

// A Component describes one configured device.
type Component struct {
	Name       string        `json:"name"`
	Type       ComponentType `json:"type"`
	Attributes AttributeMap  `json:"attributes"`
}

// Validate ensures all parts of the config are valid.
func (c *Component) Validate(path string) error {
	if c.Name == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "name")
	}
	if c.Type == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "type")
	}
	return nil
}

// Config describes the set of components of a robot.
type Config struct {
	Components []Component `json:"components"`
}

// Validate checks every component and reports all failures at once.
func (c *Config) Validate() error {
	var errs error
	seen := make(map[string]struct{}, len(c.Components))
	for idx := range c.Components {
		path := fmt.Sprintf("components.%d", idx)
		comp := &c.Components[idx]
		if err := comp.Validate(path); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if _, ok := seen[comp.Name]; ok {
			errs = multierr.Append(errs, utils.NewConfigValidationError(path,
				errors.Errorf("duplicate component name %q", comp.Name)))
			continue
		}
		seen[comp.Name] = struct{}{}
	}
	return errs
}

// FindComponent returns the component with the given name, or nil.
func (c *Config) FindComponent(name string) *Component {
	_, idx, ok := lo.FindIndexOf(c.Components, func(comp Component) bool {
		return comp.Name == name
	})
	if !ok {
		return nil
	}
	return &c.Components[idx]
}

// ReadConfig reads and validates a robot config file. Environment variables in the file are
// expanded first.
func ReadConfig(fn string) (*Config, error) {
	buf, err := envsubst.ReadFile(fn)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(buf, cfg); err != nil {
		return nil, errors.Wrapf(err, "cannot parse config %q", fn)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
