package softras

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
)

// A Color represents a color, containing R, G, and B components, each expected to range from 0 to 1.
// Values outside of that range are kept as-is; they're clamped only when the Color is encoded.
type Color struct {
	R, G, B float64
}

// NewColor returns a new Color, with the provided R, G, and B components expected to range from 0 to 1.
func NewColor(r, g, b float64) Color {
	return Color{r, g, b}
}

// NewColorGray returns a new Color with all three channels set to the value given.
func NewColorGray(value float64) Color {
	return Color{value, value, value}
}

// ColorFromStd converts a standard library color.Color into a Color, ignoring alpha.
func ColorFromStd(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{float64(r) / 0xffff, float64(g) / 0xffff, float64(b) / 0xffff}
}

// ColorFromRGBA converts 8-bit channels (as returned by a texture Sampler) into a Color.
func ColorFromRGBA(c color.RGBA) Color {
	return Color{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

// Scale returns a copy of the Color with all channels multiplied by the scalar given.
func (c Color) Scale(scalar float64) Color {
	c.R *= scalar
	c.G *= scalar
	c.B *= scalar
	return c
}

// Mult returns a copy of the Color multiplied channel-wise by the other Color.
func (c Color) Mult(other Color) Color {
	c.R *= other.R
	c.G *= other.G
	c.B *= other.B
	return c
}

// Add returns a copy of the Color with the other Color added channel-wise.
func (c Color) Add(other Color) Color {
	c.R += other.R
	c.G += other.G
	c.B += other.B
	return c
}

// Get returns the channel at the index given (0 for R, 1 for G, 2 for B). Any other index returns an *IndexError.
func (c Color) Get(index int) (float64, error) {
	switch index {
	case 0:
		return c.R, nil
	case 1:
		return c.G, nil
	case 2:
		return c.B, nil
	}
	return 0, &IndexError{Type: "Color", Index: index, Arity: 3}
}

// Set returns a copy of the Color with the channel at the index given set to value.
func (c Color) Set(index int, value float64) (Color, error) {
	switch index {
	case 0:
		c.R = value
	case 1:
		c.G = value
	case 2:
		c.B = value
	default:
		return c, &IndexError{Type: "Color", Index: index, Arity: 3}
	}
	return c, nil
}

// channelByte is the canonical 0-255 encoding of a single channel: round(clamp(c, 0, 1) * 255).
func channelByte(value float64) uint {
	return uint(math.Round(clamp(value, 0, 1) * 255))
}

// Bytes returns the Color encoded as 0-255 integers, one per channel.
func (c Color) Bytes() UVector3 {
	return UVector3{channelByte(c.R), channelByte(c.G), channelByte(c.B)}
}

// ToRGBA returns the Color as an opaque color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	b := c.Bytes()
	return color.RGBA{uint8(b.X), uint8(b.Y), uint8(b.Z), 0xff}
}

// PPMString returns the Color as a plain PPM triple, like "255 128 0".
func (c Color) PPMString() string {
	b := c.Bytes()
	return strconv.FormatUint(uint64(b.X), 10) + " " + strconv.FormatUint(uint64(b.Y), 10) + " " + strconv.FormatUint(uint64(b.Z), 10)
}

// PPMLength returns the number of characters the Color takes up in a PPM body, including the trailing separator.
func (c Color) PPMLength() int {
	return len(c.PPMString()) + 1
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%g, %g, %g)", c.R, c.G, c.B)
}
