package softras

import (
	"image"
	"image/color"
)

// Canvas stores the Color for each pixel of a render. The canvas is addressed with a top-left origin in storage order:
// x increases to the right and y increases by row. Encoders (PPM, PNG, etc) write the rows bottom-to-top, so a mesh
// projected with +Y up comes out the right way up in the file.
//
// Reading or writing outside of [0, Width) x [0, Height) is silently ignored, so rasterization code never needs to
// clip a pixel before writing it.
type Canvas struct {
	width, height int
	contents      []Color
}

// NewCanvas creates a new Canvas of the given size, filled with black. Both dimensions must be greater than 0, or NewCanvas will panic.
func NewCanvas(width, height int) *Canvas {

	if width <= 0 || height <= 0 {
		panic("Error: NewCanvas() needs a width and height greater than 0")
	}

	return &Canvas{
		width:    width,
		height:   height,
		contents: make([]Color, width*height),
	}

}

// Width returns the width of the Canvas in pixels.
func (canvas *Canvas) Width() int { return canvas.width }

// Height returns the height of the Canvas in pixels.
func (canvas *Canvas) Height() int { return canvas.height }

func (canvas *Canvas) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < canvas.width && y < canvas.height
}

// Get returns the Color of the pixel at x, y, and true. If the pixel lies outside the Canvas, Get returns false.
func (canvas *Canvas) Get(x, y int) (Color, bool) {
	if !canvas.inBounds(x, y) {
		return Color{}, false
	}
	return canvas.contents[y*canvas.width+x], true
}

// Set sets the color of the pixel at x, y. Writes outside the Canvas are ignored.
func (canvas *Canvas) Set(x, y int, color Color) {
	if canvas.inBounds(x, y) {
		canvas.contents[y*canvas.width+x] = color
	}
}

// Clear fills the entire Canvas with the Color given.
func (canvas *Canvas) Clear(color Color) {
	for i := range canvas.contents {
		canvas.contents[i] = color
	}
}

// Image returns the contents of the Canvas as an *image.RGBA in output orientation (the last Canvas row is the first image row).
func (canvas *Canvas) Image() *image.RGBA {

	img := image.NewRGBA(image.Rect(0, 0, canvas.width, canvas.height))

	for y := 0; y < canvas.height; y++ {
		row := canvas.contents[y*canvas.width : (y+1)*canvas.width]
		for x, c := range row {
			img.SetRGBA(x, canvas.height-1-y, c.ToRGBA())
		}
	}

	return img

}

// DrawImage copies an image onto the Canvas. The image is read in output orientation, matching Canvas.Image(), so
// canvas.DrawImage(canvas.Image()) leaves the Canvas unchanged (within 8-bit precision).
func (canvas *Canvas) DrawImage(img image.Image) {

	bounds := img.Bounds()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cx := x - bounds.Min.X
			cy := canvas.height - 1 - (y - bounds.Min.Y)
			canvas.Set(cx, cy, ColorFromStd(img.At(x, y)))
		}
	}

}

// ColorModel, Bounds and At let a Canvas be used directly as an image.Image (in output orientation).
func (canvas *Canvas) ColorModel() color.Model { return color.RGBAModel }

func (canvas *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, canvas.width, canvas.height) }

func (canvas *Canvas) At(x, y int) color.Color {
	c, _ := canvas.Get(x, canvas.height-1-y)
	return c.ToRGBA()
}
