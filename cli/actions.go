package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"github.com/hamosad1657/halib/components/encoder"
	"github.com/hamosad1657/halib/components/ledstrip"
	"github.com/hamosad1657/halib/components/motor"
	"github.com/hamosad1657/halib/components/swerve"
	"github.com/hamosad1657/halib/config"
	"github.com/hamosad1657/halib/logging"
	"github.com/hamosad1657/halib/utils"
)

// logFile is the appender opened for --log-file, closed once the command returns.
var logFile *logging.FileAppender

func setupLogging(c *cli.Context) error {
	logger := logging.NewLogger(c.App.Name)
	if c.Bool(debugFlag) {
		logger.SetLevel(logging.DEBUG)
		c.Context = logging.EnableDebugMode(c.Context, "")
	}
	if fn := c.Path(logFileFlag); fn != "" {
		logFile = logging.NewFileAppender(fn)
		logger.AddAppender(logFile)
	}
	logging.ReplaceGlobal(logger)
	return nil
}

func syncLogs(c *cli.Context) error {
	err := logging.Global().Sync()
	if logFile != nil {
		err = multierr.Combine(err, logFile.Close())
		logFile = nil
	}
	return err
}

func printf(c *cli.Context, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(c.App.Writer, format+"\n", a...)
}

// ModifyAction prints the setpoint for a measurement already inside the range.
func ModifyAction(c *cli.Context) error {
	setpoint, measurement := c.Float64(setpointFlag), c.Float64(measurementFlag)
	lo, hi := c.Float64(minFlag), c.Float64(maxFlag)
	modified, err := utils.ModifyPositionSetpoint(setpoint, measurement, lo, hi)
	if err != nil {
		return err
	}
	logging.Global().CDebugw(c.Context, "modified setpoint",
		"setpoint", setpoint, "measurement", measurement, "min", lo, "max", hi, "result", modified)
	printf(c, "%v", modified)
	return nil
}

// WrapAction prints the setpoint for an accumulating measurement.
func WrapAction(c *cli.Context) error {
	setpoint, measurement := c.Float64(setpointFlag), c.Float64(measurementFlag)
	lo, hi, ticks := c.Float64(minFlag), c.Float64(maxFlag), c.Float64(ticksFlag)
	wrapped, err := utils.WrapPositionSetpoint(setpoint, measurement, lo, hi, ticks)
	if err != nil {
		return err
	}
	logging.Global().CDebugw(c.Context, "wrapped setpoint",
		"setpoint", setpoint, "measurement", measurement, "min", lo, "max", hi, "ticks", ticks,
		"full_periods", utils.FullPeriods(measurement, ticks), "result", wrapped)
	printf(c, "%v", wrapped)
	return nil
}

// ModulusAction prints the value mapped into [min, max).
func ModulusAction(c *cli.Context) error {
	y, err := utils.InputModulus(c.Float64(valueFlag), c.Float64(minFlag), c.Float64(maxFlag))
	if err != nil {
		return err
	}
	printf(c, "%v", y)
	return nil
}

// ValidateConfigAction reads a robot config and checks every component's attributes.
func ValidateConfigAction(c *cli.Context) error {
	cfg, err := config.ReadConfig(c.Path(configFlag))
	if err != nil {
		return err
	}
	var errs error
	for idx := range cfg.Components {
		comp := &cfg.Components[idx]
		if err := validateComponent(fmt.Sprintf("components.%d", idx), comp); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		logging.Global().CDebugw(c.Context, "component ok", "name", comp.Name, "type", comp.Type)
	}
	if errs != nil {
		return errs
	}
	printf(c, "%d components ok", len(cfg.Components))
	return nil
}

func validateComponent(path string, comp *config.Component) error {
	var err error
	switch comp.Type {
	case config.ComponentTypeMotor:
		_, err = config.DecodeAttributes[motor.Config](path, comp.Attributes)
	case config.ComponentTypeEncoder:
		_, err = config.DecodeAttributes[encoder.QuadratureConfig](path, comp.Attributes)
	case config.ComponentTypeLEDStrip:
		_, err = config.DecodeAttributes[ledstrip.Config](path, comp.Attributes)
	case config.ComponentTypeSwerve:
		_, err = config.DecodeAttributes[swerve.Config](path, comp.Attributes)
	default:
		err = errors.Errorf("%s: unknown component type %q", path, comp.Type)
	}
	return err
}
