package ledstrip

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is the color of one LED.
type RGB struct {
	R, G, B uint8
}

// Off is an unlit LED.
var Off = RGB{}

// Some common colors.
var (
	Red    = RGB{R: 255}
	Green  = RGB{G: 255}
	Blue   = RGB{B: 255}
	White  = RGB{R: 255, G: 255, B: 255}
	Yellow = RGB{R: 255, G: 255}
	Orange = RGB{R: 255, G: 165}
	Purple = RGB{R: 128, B: 128}
)

// IsOff reports whether the LED is unlit.
func (c RGB) IsOff() bool {
	return c == Off
}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%.2x%.2x%.2x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.Hex()
}

// FromHSV converts an addressable LED HSV triplet to RGB. Hue is in [0, 180), half a degree per
// step; saturation and value are in [0, 255]. Out of range hues wrap.
func FromHSV(hue, saturation, value int) RGB {
	hue %= 180
	if hue < 0 {
		hue += 180
	}
	r, g, b := colorful.Hsv(float64(hue)*2, clampByte(saturation)/255, clampByte(value)/255).RGB255()
	return RGB{R: r, G: g, B: b}
}

func clampByte(x int) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return float64(x)
}
