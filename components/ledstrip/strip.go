// Package ledstrip drives an addressable LED strip: solid colors, ranges, toggling, blinking and
// a moving rainbow.
package ledstrip

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/hamosad1657/halib/logging"
	"github.com/hamosad1657/halib/utils"
)

// A Buffer is the hardware side of a strip. SetData is expensive, so each Strip call sends the
// whole frame once.
type Buffer interface {
	SetData(ctx context.Context, pixels []RGB) error
}

const (
	rainbowHueStep    = 3
	rainbowSaturation = 255
	rainbowValue      = 128
)

// Strip keeps the frame shown on a Buffer. Ranges are half-open, [start, end), and indices
// outside [0, length] are clamped.
type Strip struct {
	buffer Buffer
	clock  clock.Clock
	logger logging.Logger

	mu          sync.Mutex
	pixels      []RGB
	lastApplied RGB
	blinkStart  time.Time
	rainbowHue  int
}

// New returns a Strip of length LEDs, initially off. A nil clock uses the wall clock.
func New(length int, buffer Buffer, clk clock.Clock, logger logging.Logger) (*Strip, error) {
	if length <= 0 {
		return nil, NewInvalidLengthError(length)
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Strip{
		buffer: buffer,
		clock:  clk,
		logger: logger,
		pixels: make([]RGB, length),
	}, nil
}

// Len returns the number of LEDs.
func (s *Strip) Len() int {
	return len(s.pixels)
}

// ColorAt returns the color of the LED at index, which is clamped into the strip.
func (s *Strip) ColorAt(index int) RGB {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pixels[utils.ClampInt(index, 0, len(s.pixels)-1)]
}

// LastAppliedColor returns the last color other than Off that was applied.
func (s *Strip) LastAppliedColor() RGB {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastApplied
}

// ApplyColorForAll sets every LED to color.
func (s *Strip) ApplyColorForAll(ctx context.Context, color RGB) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.pixels {
		s.pixels[i] = color
	}
	s.remember(color)
	return s.flush(ctx)
}

// TurnOff sets every LED to Off.
func (s *Strip) TurnOff(ctx context.Context) error {
	return s.ApplyColorForAll(ctx, Off)
}

// ApplyColor sets every step-th LED in [start, end) to color.
func (s *Strip) ApplyColor(ctx context.Context, color RGB, step, start, end int) error {
	if step <= 0 {
		return NewInvalidStepError(step)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	start, end = s.clampIndex(start), s.clampIndex(end)
	for i := start; i < end; i += step {
		s.pixels[i] = color
	}
	s.remember(color)
	return s.flush(ctx)
}

// SetPixel sets one LED.
func (s *Strip) SetPixel(ctx context.Context, index int, color RGB) error {
	return s.ApplyColor(ctx, color, 1, index, index+1)
}

// SetHSV sets every LED in [start, end) to an HSV color. See FromHSV for the ranges.
func (s *Strip) SetHSV(ctx context.Context, hue, saturation, value, start, end int) error {
	return s.ApplyColor(ctx, FromHSV(hue, saturation, value), 1, start, end)
}

// Toggle flips every step-th LED in [start, end): lit LEDs turn off and unlit ones take color.
func (s *Strip) Toggle(ctx context.Context, color RGB, step, start, end int) error {
	if step <= 0 {
		return NewInvalidStepError(step)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toggle(color, step, start, end)
	return s.flush(ctx)
}

func (s *Strip) toggle(color RGB, step, start, end int) {
	start, end = s.clampIndex(start), s.clampIndex(end)
	for i := start; i < end; i += step {
		if s.pixels[i].IsOff() {
			s.pixels[i] = color
		} else {
			s.pixels[i] = Off
		}
	}
}

// ToggleEntireStrip turns the strip off when its first LED is lit and applies color otherwise.
func (s *Strip) ToggleEntireStrip(ctx context.Context, color RGB) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toggleEntireStrip(color)
	return s.flush(ctx)
}

func (s *Strip) toggleEntireStrip(color RGB) {
	next := color
	if !s.pixels[0].IsOff() {
		next = Off
	}
	for i := range s.pixels {
		s.pixels[i] = next
	}
	s.remember(next)
}

// Blink toggles [start, end) once every period. Call it periodically; the first call only
// starts the timer.
func (s *Strip) Blink(ctx context.Context, period time.Duration, color RGB, step, start, end int) error {
	if step <= 0 {
		return NewInvalidStepError(step)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.blinkDue(period) {
		return nil
	}
	s.toggle(color, step, start, end)
	return s.flush(ctx)
}

// BlinkEntireStrip is Blink for the whole strip.
func (s *Strip) BlinkEntireStrip(ctx context.Context, period time.Duration, color RGB) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.blinkDue(period) {
		return nil
	}
	s.toggleEntireStrip(color)
	return s.flush(ctx)
}

func (s *Strip) blinkDue(period time.Duration) bool {
	now := s.clock.Now()
	if s.blinkStart.IsZero() {
		s.blinkStart = now
		return false
	}
	if now.Sub(s.blinkStart) < period {
		return false
	}
	s.blinkStart = now
	return true
}

// Rainbow draws one frame of a rainbow spread over the strip and advances it. Call it
// periodically to make the rainbow move.
func (s *Strip) Rainbow(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.pixels)
	for i := range s.pixels {
		s.pixels[i] = FromHSV((s.rainbowHue+i*180/n)%180, rainbowSaturation, rainbowValue)
	}
	s.rainbowHue = (s.rainbowHue + rainbowHueStep) % 180
	return s.flush(ctx)
}

func (s *Strip) remember(color RGB) {
	if !color.IsOff() {
		s.lastApplied = color
	}
}

func (s *Strip) clampIndex(index int) int {
	if index >= 0 && index <= len(s.pixels) {
		return index
	}
	clamped := utils.ClampInt(index, 0, len(s.pixels))
	s.logger.Warnw("LED index out of range, clamping", "index", index, "length", len(s.pixels), "clamped", clamped)
	return clamped
}

func (s *Strip) flush(ctx context.Context) error {
	frame := make([]RGB, len(s.pixels))
	copy(frame, s.pixels)
	return s.buffer.SetData(ctx, frame)
}
