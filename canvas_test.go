package softras

import (
	"image"
	"image/color"
	"testing"
)

func TestCanvasBounds(t *testing.T) {

	canvas := NewCanvas(4, 3)

	if canvas.Width() != 4 || canvas.Height() != 3 {
		t.Fatal("unexpected canvas size", canvas.Width(), canvas.Height())
	}

	red := NewColor(1, 0, 0)

	// Out-of-range writes are ignored
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}} {
		canvas.Set(p[0], p[1], red)
		if _, ok := canvas.Get(p[0], p[1]); ok {
			t.Fatalf("Get(%d, %d) should report out of bounds", p[0], p[1])
		}
	}

	for y := range 3 {
		for x := range 4 {
			if c, ok := canvas.Get(x, y); !ok || c != (Color{}) {
				t.Fatalf("pixel %d, %d = %v, %v; want black", x, y, c, ok)
			}
		}
	}

	canvas.Set(3, 2, red)
	if c, ok := canvas.Get(3, 2); !ok || c != red {
		t.Fatal("Set/Get round trip failed:", c, ok)
	}

	canvas.Clear(NewColor(0, 1, 0))
	if c, _ := canvas.Get(3, 2); c != NewColor(0, 1, 0) {
		t.Fatal("Clear didn't fill the canvas:", c)
	}

}

func TestCanvasInvalidSize(t *testing.T) {

	for _, size := range [][2]int{{0, 1}, {1, 0}, {-5, 5}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewCanvas(%d, %d) should panic", size[0], size[1])
				}
			}()
			NewCanvas(size[0], size[1])
		}()
	}

}

func TestCanvasImageOrientation(t *testing.T) {

	canvas := NewCanvas(3, 2)
	canvas.Set(0, 0, NewColor(1, 0, 0))
	canvas.Set(2, 1, NewColor(0, 0, 1))

	img := canvas.Image()

	// Canvas row 0 is the bottom row of the image; x isn't mirrored
	if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Fatal("canvas (0, 0) should be image (0, 1), got", got)
	}

	if got := img.RGBAAt(2, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Fatal("canvas (2, 1) should be image (2, 0), got", got)
	}

	// The Canvas itself reads like its own Image()
	if got := canvas.At(0, 1); got != img.At(0, 1) {
		t.Fatal("Canvas.At doesn't match Canvas.Image:", got)
	}

	if canvas.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatal("unexpected bounds", canvas.Bounds())
	}

	copied := NewCanvas(3, 2)
	copied.DrawImage(img)

	for y := range 2 {
		for x := range 3 {
			a, _ := canvas.Get(x, y)
			b, _ := copied.Get(x, y)
			if a != b {
				t.Fatalf("DrawImage(Image()) changed pixel %d, %d: %v != %v", x, y, a, b)
			}
		}
	}

}

func TestImageSink(t *testing.T) {

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	sink := NewImageSink(img)

	if sink.Width() != 4 || sink.Height() != 4 {
		t.Fatal("unexpected sink size", sink.Width(), sink.Height())
	}

	sink.Set(1, 0, NewColor(1, 1, 1))
	sink.Set(-1, 0, NewColor(1, 1, 1))
	sink.Set(0, 4, NewColor(1, 1, 1))

	if got := img.RGBAAt(1, 3); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatal("sink (1, 0) should land on the bottom image row, got", got)
	}

	if c, ok := sink.Get(1, 0); !ok || c != NewColor(1, 1, 1) {
		t.Fatal("Get(1, 0) =", c, ok)
	}

	if _, ok := sink.Get(4, 0); ok {
		t.Fatal("Get outside the sink should fail")
	}

}
