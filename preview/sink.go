package preview

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/softras"
)

// Sink is a softras.ReadableSink backed by an *ebiten.Image. Pixels are written into a CPU-side buffer, and only uploaded
// to the image when Flush is called. Sink row 0 is the bottom row of the image.
type Sink struct {
	Image *ebiten.Image
	pix   *image.RGBA
}

var _ softras.ReadableSink = (*Sink)(nil)

// NewSink creates a new Sink (and its backing *ebiten.Image) of the size given.
func NewSink(width, height int) *Sink {
	return &Sink{
		Image: ebiten.NewImage(width, height),
		pix:   image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

func (sink *Sink) Width() int  { return sink.pix.Rect.Dx() }
func (sink *Sink) Height() int { return sink.pix.Rect.Dy() }

// Set sets the pixel at x, y; writes outside the Sink are ignored.
func (sink *Sink) Set(x, y int, color softras.Color) {
	if x < 0 || y < 0 || x >= sink.Width() || y >= sink.Height() {
		return
	}
	sink.pix.SetRGBA(x, sink.Height()-1-y, color.ToRGBA())
}

// Get returns the color of the pixel at x, y, as of the last Set (not the last Flush).
func (sink *Sink) Get(x, y int) (softras.Color, bool) {
	if x < 0 || y < 0 || x >= sink.Width() || y >= sink.Height() {
		return softras.Color{}, false
	}
	return softras.ColorFromRGBA(sink.pix.RGBAAt(x, sink.Height()-1-y)), true
}

// Snapshot returns the current pixels in image orientation, for saving screenshots.
func (sink *Sink) Snapshot() *image.RGBA {
	clone := image.NewRGBA(sink.pix.Rect)
	copy(clone.Pix, sink.pix.Pix)
	return clone
}

// Flush uploads the drawn pixels to the Sink's *ebiten.Image.
func (sink *Sink) Flush() {
	sink.Image.WritePixels(sink.pix.Pix)
}
