package softras

import "math"

// DepthBuffer records the nearest depth drawn so far for each pixel of a render pass. Larger depth values are
// considered nearer to the viewer. A fresh DepthBuffer holds negative infinity everywhere, so the first fragment
// drawn to a pixel always passes.
type DepthBuffer struct {
	width, height int
	depth         []float64
}

// NewDepthBuffer creates a new DepthBuffer of the given size. Both dimensions must be greater than 0, or NewDepthBuffer will panic.
func NewDepthBuffer(width, height int) *DepthBuffer {

	if width <= 0 || height <= 0 {
		panic("Error: NewDepthBuffer() needs a width and height greater than 0")
	}

	db := &DepthBuffer{
		width:  width,
		height: height,
		depth:  make([]float64, width*height),
	}
	db.Reset()
	return db

}

// Width returns the width of the DepthBuffer.
func (db *DepthBuffer) Width() int { return db.width }

// Height returns the height of the DepthBuffer.
func (db *DepthBuffer) Height() int { return db.height }

// Reset sets every pixel of the DepthBuffer back to negative infinity.
func (db *DepthBuffer) Reset() {
	// Copy-doubling fill
	n := len(db.depth)
	db.depth[0] = math.Inf(-1)
	for i := 1; i < n; i *= 2 {
		copy(db.depth[i:], db.depth[:i])
	}
}

// Get returns the depth stored at x, y, and true; outside of the buffer it returns false.
func (db *DepthBuffer) Get(x, y int) (float64, bool) {
	if x < 0 || y < 0 || x >= db.width || y >= db.height {
		return 0, false
	}
	return db.depth[y*db.width+x], true
}

// Set stores the depth given at x, y. Writes outside the buffer are ignored.
func (db *DepthBuffer) Set(x, y int, z float64) {
	if x < 0 || y < 0 || x >= db.width || y >= db.height {
		return
	}
	db.depth[y*db.width+x] = z
}

// Test performs the depth test for a fragment at x, y with depth z. If z is strictly greater than the stored depth,
// Test stores z and returns true. Fragments of equal depth fail, so drawing the same triangle twice changes nothing.
func (db *DepthBuffer) Test(x, y int, z float64) bool {
	if x < 0 || y < 0 || x >= db.width || y >= db.height {
		return false
	}
	i := y*db.width + x
	if z > db.depth[i] {
		db.depth[i] = z
		return true
	}
	return false
}

func (db *DepthBuffer) fits(sink Sink) bool {
	return db.width == sink.Width() && db.height == sink.Height()
}
