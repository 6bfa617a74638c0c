// Package cli contains the wrapcalc command line tool.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

// Flags.
const (
	debugFlag   = "debug"
	logFileFlag = "log-file"

	setpointFlag    = "setpoint"
	measurementFlag = "measurement"
	minFlag         = "min"
	maxFlag         = "max"
	ticksFlag       = "ticks"
	valueFlag       = "value"
	configFlag      = "config"
)

func rangeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{
			Name:     minFlag,
			Required: true,
			Usage:    "lower bound of the measurement range",
		},
		&cli.Float64Flag{
			Name:     maxFlag,
			Required: true,
			Usage:    "upper bound of the measurement range",
		},
	}
}

func setpointFlags() []cli.Flag {
	return append([]cli.Flag{
		&cli.Float64Flag{
			Name:     setpointFlag,
			Aliases:  []string{"s"},
			Required: true,
			Usage:    "wanted position, inside the range",
		},
		&cli.Float64Flag{
			Name:     measurementFlag,
			Aliases:  []string{"m"},
			Required: true,
			Usage:    "current sensor reading",
		},
	}, rangeFlags()...)
}

var app = &cli.App{
	Name:            "wrapcalc",
	Usage:           "compute shortest path position setpoints for continuous mechanisms",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    debugFlag,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
		&cli.PathFlag{
			Name:  logFileFlag,
			Usage: "also write logs to `FILE`, rotating it when it grows large",
		},
	},
	Before: setupLogging,
	After:  syncLogs,
	Commands: []*cli.Command{
		{
			Name:      "modify",
			Usage:     "correct a setpoint for a measurement already wrapped into the range",
			UsageText: "wrapcalc modify --setpoint <s> --measurement <m> --min <lo> --max <hi>",
			Flags:     setpointFlags(),
			Action:    ModifyAction,
		},
		{
			Name:      "wrap",
			Usage:     "correct a setpoint for an accumulating sensor",
			UsageText: "wrapcalc wrap --setpoint <s> --measurement <m> --min <lo> --max <hi> --ticks <t>",
			Flags: append(setpointFlags(), &cli.Float64Flag{
				Name:     ticksFlag,
				Required: true,
				Usage:    "sensor units in one full rotation",
			}),
			Action: WrapAction,
		},
		{
			Name:  "modulus",
			Usage: "map a value into [min, max)",
			Flags: append([]cli.Flag{
				&cli.Float64Flag{
					Name:     valueFlag,
					Required: true,
					Usage:    "value to map",
				},
			}, rangeFlags()...),
			Action: ModulusAction,
		},
		{
			Name:  "validate",
			Usage: "check a robot config file",
			Flags: []cli.Flag{
				&cli.PathFlag{
					Name:     configFlag,
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "load configuration from `FILE`",
				},
			},
			Action: ValidateConfigAction,
		},
	},
}

// NewApp returns the wrapcalc app writing results to out and errors to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}
