// Package fake implements fake encoders.
package fake

import (
	"context"
	"sync"

	"github.com/hamosad1657/halib/units"
)

// Counter is a quadrature counter whose count and rate are set by the test.
type Counter struct {
	mu    sync.Mutex
	count int64
	rate  float64
}

// Count returns the set count.
func (c *Counter) Count(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count, nil
}

// Rate returns the set rate.
func (c *Counter) Rate(ctx context.Context) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rate, nil
}

// Reset zeroes the count.
func (c *Counter) Reset(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count = 0
	return nil
}

// Set changes the count and rate.
func (c *Counter) Set(count int64, rate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count = count
	c.rate = rate
}

// AbsoluteSensor is a CANCoder whose angle and velocity are set in degrees.
type AbsoluteSensor struct {
	mu          sync.Mutex
	rawPosition float64
	rawVelocity float64
}

// RawPosition returns the set position in ticks.
func (s *AbsoluteSensor) RawPosition(ctx context.Context) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rawPosition, nil
}

// RawVelocity returns the set velocity in ticks per 100ms.
func (s *AbsoluteSensor) RawVelocity(ctx context.Context) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rawVelocity, nil
}

// SetAngleDeg moves the sensor to angleDeg.
func (s *AbsoluteSensor) SetAngleDeg(angleDeg float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawPosition = units.DegreesToCANCoderTicks(angleDeg, 1)
}

// SetVelocityDegPS sets the reported velocity.
func (s *AbsoluteSensor) SetVelocityDegPS(degPS float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawVelocity = units.DegPSToCANCoderTicksPer100ms(degPS)
}
