package inject

import (
	"context"

	"github.com/hamosad1657/halib/components/ledstrip"
)

// LEDBuffer is an injectable LED buffer.
type LEDBuffer struct {
	ledstrip.Buffer
	SetDataFunc func(ctx context.Context, pixels []ledstrip.RGB) error
}

// SetData calls the injected SetData or the real version.
func (b *LEDBuffer) SetData(ctx context.Context, pixels []ledstrip.RGB) error {
	if b.SetDataFunc == nil {
		return b.Buffer.SetData(ctx, pixels)
	}
	return b.SetDataFunc(ctx, pixels)
}
