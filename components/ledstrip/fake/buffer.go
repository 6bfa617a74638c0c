// Package fake implements a fake LED buffer.
package fake

import (
	"context"
	"sync"

	"github.com/hamosad1657/halib/components/ledstrip"
)

// Buffer records every frame sent to it.
type Buffer struct {
	mu     sync.Mutex
	frames [][]ledstrip.RGB
}

// SetData records pixels as the latest frame.
func (b *Buffer) SetData(ctx context.Context, pixels []ledstrip.RGB) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	frame := make([]ledstrip.RGB, len(pixels))
	copy(frame, pixels)
	b.frames = append(b.frames, frame)
	return nil
}

// Frames returns the number of frames sent.
func (b *Buffer) Frames() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.frames)
}

// LastFrame returns the latest frame, or nil if none was sent.
func (b *Buffer) LastFrame() []ledstrip.RGB {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.frames) == 0 {
		return nil
	}
	return b.frames[len(b.frames)-1]
}
