// Package main is the wrapcalc command itself.
package main

import (
	"os"

	"github.com/hamosad1657/halib/cli"
	"github.com/hamosad1657/halib/logging"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		logging.Global().Errorw("wrapcalc failed", "error", err)
		os.Exit(1)
	}
}
