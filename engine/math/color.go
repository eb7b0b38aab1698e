package math

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/korkuveren/MARS/engine/math/vector"
)

var (
	ColorWhite   = NewColor(1, 1, 1, 1)
	ColorBlack   = NewColor(0, 0, 0, 1)
	ColorRed     = NewColor(1, 0, 0, 1)
	ColorGreen   = NewColor(0, 1, 0, 1)
	ColorBlue    = NewColor(0, 0, 1, 1)
	ColorCyan    = NewColor(0, 1, 1, 1)
	ColorYellow  = NewColor(1, 1, 0, 1)
	ColorMagenta = NewColor(1, 0, 1, 1)
	ColorClear   = NewColor(0, 0, 0, 0)
)

// Rec. 601 luma weights. Alpha does not contribute.
var luminanceWeights = vector.New(0.299, 0.587, 0.114, 0)

func NewColor(r, g, b, a float32) Color {
	return Color(vector.New(r, g, b, a))
}

// NewColorRGB returns an opaque colour.
func NewColorRGB(r, g, b float32) Color {
	return NewColor(r, g, b, 1)
}

func (c Color) Vector() vector.Vector { return vector.Vector(c) }

func (c Color) R() float32 { return c[0] }
func (c Color) G() float32 { return c[1] }
func (c Color) B() float32 { return c[2] }
func (c Color) A() float32 { return c[3] }

// Invert returns 1 - rgb and keeps alpha.
func (c Color) Invert() Color {
	return Color(vector.Select(vector.MaskXYZ, vector.One.Sub(c.Vector()), c.Vector()))
}

func (c Color) Add(o Color) Color     { return Color(c.Vector().Add(o.Vector())) }
func (c Color) Sub(o Color) Color     { return Color(c.Vector().Sub(o.Vector())) }
func (c Color) Mul(o Color) Color     { return Color(c.Vector().Mul(o.Vector())) }
func (c Color) Div(o Color) Color     { return Color(c.Vector().Div(o.Vector())) }
func (c Color) Scale(f float32) Color { return Color(c.Vector().Scale(f)) }

func (c Color) Luminance() float32 {
	return luminanceWeights.Dot4f(c.Vector())
}

// Quantized snaps every channel to the nearest of 256 levels.
func (c Color) Quantized() Color {
	bytes := c.bytes()
	levels := vector.New(float32(bytes[0]), float32(bytes[1]), float32(bytes[2]), float32(bytes[3]))
	return Color(levels.Div(vector.Load1(255)))
}

/**
 * @brief Packs the colour into 8 bits per channel.
 *
 * @return The packed value with red in the high byte and alpha in the low
 * byte. Channels are clamped to [0, 1] first.
 */
func (c Color) ToUint32() uint32 {
	var out uint32
	for _, b := range c.bytes() {
		out = out<<8 | uint32(b)
	}
	return out
}

func (c Color) bytes() [4]uint8 {
	scaled := c.Vector().Scale(255)
	var out [4]uint8
	for i := range out {
		out[i] = uint8(math32.Round(Clamp(scaled[i], 0, 255)))
	}
	return out
}

// ContrastAdjust pushes rgb away from (c > 1) or towards (c < 1) mid grey.
func (c Color) ContrastAdjust(contrast float32) Color {
	return Color(vector.Select(vector.MaskXYZ, vector.Lerp(vector.Half, c.Vector(), contrast), c.Vector()))
}

// SaturationAdjust blends rgb between its luminance grey (s = 0) and the
// original colour (s = 1).
func (c Color) SaturationAdjust(saturation float32) Color {
	grey := vector.Load1(c.Luminance())
	return Color(vector.Select(vector.MaskXYZ, vector.Lerp(grey, c.Vector(), saturation), c.Vector()))
}

// VarianceAdjust scales rgb and keeps alpha.
func (c Color) VarianceAdjust(variance float32) Color {
	return Color(vector.Select(vector.MaskXYZ, c.Vector().Scale(variance), c.Vector()))
}

func (c Color) Equals(o Color, eps float32) bool {
	return !c.Vector().ApproxNotEqual(o.Vector(), eps).AnyTrue()
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c[0], c[1], c[2], c[3])
}
