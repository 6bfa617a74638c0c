package inject

import (
	"context"

	"github.com/hamosad1657/halib/components/encoder"
)

// Counter is an injectable quadrature counter.
type Counter struct {
	encoder.Counter
	CountFunc func(ctx context.Context) (int64, error)
	RateFunc  func(ctx context.Context) (float64, error)
	ResetFunc func(ctx context.Context) error
}

// Count calls the injected Count or the real version.
func (c *Counter) Count(ctx context.Context) (int64, error) {
	if c.CountFunc == nil {
		return c.Counter.Count(ctx)
	}
	return c.CountFunc(ctx)
}

// Rate calls the injected Rate or the real version.
func (c *Counter) Rate(ctx context.Context) (float64, error) {
	if c.RateFunc == nil {
		return c.Counter.Rate(ctx)
	}
	return c.RateFunc(ctx)
}

// Reset calls the injected Reset or the real version.
func (c *Counter) Reset(ctx context.Context) error {
	if c.ResetFunc == nil {
		return c.Counter.Reset(ctx)
	}
	return c.ResetFunc(ctx)
}

// AbsoluteSensor is an injectable absolute encoder.
type AbsoluteSensor struct {
	encoder.AbsoluteSensor
	RawPositionFunc func(ctx context.Context) (float64, error)
	RawVelocityFunc func(ctx context.Context) (float64, error)
}

// RawPosition calls the injected RawPosition or the real version.
func (s *AbsoluteSensor) RawPosition(ctx context.Context) (float64, error) {
	if s.RawPositionFunc == nil {
		return s.AbsoluteSensor.RawPosition(ctx)
	}
	return s.RawPositionFunc(ctx)
}

// RawVelocity calls the injected RawVelocity or the real version.
func (s *AbsoluteSensor) RawVelocity(ctx context.Context) (float64, error) {
	if s.RawVelocityFunc == nil {
		return s.AbsoluteSensor.RawVelocity(ctx)
	}
	return s.RawVelocityFunc(ctx)
}
