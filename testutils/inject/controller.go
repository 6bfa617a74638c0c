package inject

import (
	"context"

	"github.com/hamosad1657/halib/components/motor"
)

// Controller is an injectable motor controller.
type Controller struct {
	motor.Controller
	SetFunc                    func(ctx context.Context, mode motor.ControlMode, value float64) error
	SelectedSensorPositionFunc func(ctx context.Context) (float64, error)
	TemperatureFunc            func(ctx context.Context) (float64, error)
}

// Set calls the injected Set or the real version.
func (c *Controller) Set(ctx context.Context, mode motor.ControlMode, value float64) error {
	if c.SetFunc == nil {
		return c.Controller.Set(ctx, mode, value)
	}
	return c.SetFunc(ctx, mode, value)
}

// SelectedSensorPosition calls the injected SelectedSensorPosition or the real version.
func (c *Controller) SelectedSensorPosition(ctx context.Context) (float64, error) {
	if c.SelectedSensorPositionFunc == nil {
		return c.Controller.SelectedSensorPosition(ctx)
	}
	return c.SelectedSensorPositionFunc(ctx)
}

// Temperature calls the injected Temperature or the real version.
func (c *Controller) Temperature(ctx context.Context) (float64, error) {
	if c.TemperatureFunc == nil {
		return c.Controller.Temperature(ctx)
	}
	return c.TemperatureFunc(ctx)
}
