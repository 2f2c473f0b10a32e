// Package tinysink lets softras render onto TinyGo displays, or anything else implementing drivers.Displayer.
package tinysink

import (
	"image/color"

	"github.com/solarlune/softras"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// DisplaySink is a softras.Sink drawing onto a drivers.Displayer. Sink row 0 is the bottom row of the display, the same
// orientation softras uses for encoded images.
type DisplaySink struct {
	Display drivers.Displayer
	// Font is the font used by Caption; defaults to Proggy TinySZ 8pt.
	Font tinyfont.Fonter
}

var _ softras.Sink = (*DisplaySink)(nil)

// New returns a new DisplaySink drawing onto the display given.
func New(display drivers.Displayer) *DisplaySink {
	return &DisplaySink{
		Display: display,
		Font:    &proggy.TinySZ8pt7b,
	}
}

func (sink *DisplaySink) Width() int {
	w, _ := sink.Display.Size()
	return int(w)
}

func (sink *DisplaySink) Height() int {
	_, h := sink.Display.Size()
	return int(h)
}

// Set sets the pixel at x, y; pixels outside the display are ignored.
func (sink *DisplaySink) Set(x, y int, c softras.Color) {
	w, h := sink.Display.Size()
	if x < 0 || y < 0 || x >= int(w) || y >= int(h) {
		return
	}
	sink.Display.SetPixel(int16(x), h-1-int16(y), c.ToRGBA())
}

// Caption writes a line of text in the top-left corner of the display.
func (sink *DisplaySink) Caption(text string, c color.RGBA) {
	// WriteLine's y is the text baseline
	tinyfont.WriteLine(sink.Display, sink.Font, 1, int16(sink.Font.GetYAdvance()), text, c)
}

// Flush pushes the drawn pixels out to the display.
func (sink *DisplaySink) Flush() error {
	return sink.Display.Display()
}
