package softras

import (
	"image"
	"image/draw"
)

// Sink is anything the line and triangle rasterizers can draw into: it has a size and accepts pixel colors.
// Implementations must ignore writes outside of [0, Width) x [0, Height).
type Sink interface {
	Width() int
	Height() int
	Set(x, y int, color Color)
}

// ReadableSink is a Sink that can also report the color of a pixel; Get returns false outside of the Sink.
type ReadableSink interface {
	Sink
	Get(x, y int) (Color, bool)
}

var _ ReadableSink = (*Canvas)(nil)
var _ ReadableSink = (*ImageSink)(nil)

// ImageSink adapts a standard library draw.Image (like *image.RGBA) into a ReadableSink. Like the Canvas encoders, it
// flips rows so that sink row 0 lands on the bottom row of the image.
type ImageSink struct {
	Image  draw.Image
	bounds image.Rectangle
}

// NewImageSink returns a new ImageSink drawing into the image given.
func NewImageSink(img draw.Image) *ImageSink {
	return &ImageSink{
		Image:  img,
		bounds: img.Bounds(),
	}
}

func (sink *ImageSink) Width() int  { return sink.bounds.Dx() }
func (sink *ImageSink) Height() int { return sink.bounds.Dy() }

func (sink *ImageSink) toImage(x, y int) (int, int, bool) {
	if x < 0 || y < 0 || x >= sink.bounds.Dx() || y >= sink.bounds.Dy() {
		return 0, 0, false
	}
	return sink.bounds.Min.X + x, sink.bounds.Max.Y - 1 - y, true
}

// Set sets the pixel at x, y; writes outside the image are ignored.
func (sink *ImageSink) Set(x, y int, color Color) {
	if ix, iy, ok := sink.toImage(x, y); ok {
		sink.Image.Set(ix, iy, color.ToRGBA())
	}
}

// Get returns the color of the pixel at x, y.
func (sink *ImageSink) Get(x, y int) (Color, bool) {
	ix, iy, ok := sink.toImage(x, y)
	if !ok {
		return Color{}, false
	}
	return ColorFromStd(sink.Image.At(ix, iy)), true
}
