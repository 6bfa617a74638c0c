// Package fake implements a fake motor controller.
package fake

import (
	"context"
	"sync"

	"github.com/hamosad1657/halib/components/motor"
)

// Command is one call to Set.
type Command struct {
	Mode  motor.ControlMode
	Value float64
}

// Controller is a motor controller with an ideal mechanism: Position commands move the raw
// sensor there instantly, and nothing else moves it.
type Controller struct {
	mu           sync.Mutex
	position     float64
	temperatureC float64
	commands     []Command
}

// NewController returns a controller whose sensor reads position.
func NewController(position float64) *Controller {
	return &Controller{position: position, temperatureC: 25}
}

// Set records the command.
func (c *Controller) Set(ctx context.Context, mode motor.ControlMode, value float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commands = append(c.commands, Command{Mode: mode, Value: value})
	if mode == motor.Position {
		c.position = value
	}
	return nil
}

// SelectedSensorPosition returns the simulated raw position.
func (c *Controller) SelectedSensorPosition(ctx context.Context) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position, nil
}

// Temperature returns the simulated temperature.
func (c *Controller) Temperature(ctx context.Context) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.temperatureC, nil
}

// SetSensorPosition moves the simulated sensor, as if the mechanism was pushed.
func (c *Controller) SetSensorPosition(position float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = position
}

// SetTemperature changes the simulated temperature.
func (c *Controller) SetTemperature(temperatureC float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.temperatureC = temperatureC
}

// LastCommand returns the most recent command and whether there was one.
func (c *Controller) LastCommand() (Command, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.commands) == 0 {
		return Command{}, false
	}
	return c.commands[len(c.commands)-1], true
}

// Commands returns every command so far, oldest first.
func (c *Controller) Commands() []Command {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Command(nil), c.commands...)
}
