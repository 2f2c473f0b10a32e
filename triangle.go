package softras

import "math"

// degenerateWeights is returned by Barycentric for triangles with (near) zero screen area; its negative
// weight rejects every pixel.
var degenerateWeights = Vector3{-1, 1, 1}

// Barycentric returns the barycentric weights of the point x, y with regards to the triangle given. The weights
// are all non-negative for points inside the triangle or on its boundary. For a degenerate triangle (one covering
// less than about a pixel of area, so |u.z| < 1) Barycentric returns {-1, 1, 1}.
func Barycentric(x, y float64, points [3]Vector2) Vector3 {

	u := Vector3{
		points[2].X - points[0].X,
		points[1].X - points[0].X,
		points[0].X - x,
	}.Cross(Vector3{
		points[2].Y - points[0].Y,
		points[1].Y - points[0].Y,
		points[0].Y - y,
	})

	if math.Abs(u.Z) < 1 {
		return degenerateWeights
	}

	return Vector3{1 - (u.X+u.Y)/u.Z, u.Y / u.Z, u.X / u.Z}

}

// boundingBox returns the integer pixel bounds of the triangle, clamped to a width x height target. ok is false
// when the triangle doesn't overlap the target at all.
func boundingBox(points [3]Vector2, width, height int) (xMin, yMin, xMax, yMax int, ok bool) {

	minX := math.Min(points[0].X, math.Min(points[1].X, points[2].X))
	minY := math.Min(points[0].Y, math.Min(points[1].Y, points[2].Y))
	maxX := math.Max(points[0].X, math.Max(points[1].X, points[2].X))
	maxY := math.Max(points[0].Y, math.Max(points[1].Y, points[2].Y))

	// NaN never compares true, so reject it here before it turns into a garbage int
	if !(minX <= maxX && minY <= maxY) {
		return 0, 0, 0, 0, false
	}

	// Clamp in float space first so huge coordinates can't overflow the int conversion
	xMin = int(math.Ceil(math.Max(minX, 0)))
	yMin = int(math.Ceil(math.Max(minY, 0)))
	xMax = int(math.Floor(math.Min(maxX, float64(width-1))))
	yMax = int(math.Floor(math.Min(maxY, float64(height-1))))

	if xMin > xMax || yMin > yMax {
		return 0, 0, 0, 0, false
	}

	return xMin, yMin, xMax, yMax, true

}

func insideTriangle(weights Vector3) bool {
	return weights.X >= 0 && weights.Y >= 0 && weights.Z >= 0
}

// FillTriangle fills the triangle given with a flat Color, without any depth testing. It returns the number of
// pixels written.
func FillTriangle(points [3]Vector2, sink Sink, color Color) int {

	xMin, yMin, xMax, yMax, ok := boundingBox(points, sink.Width(), sink.Height())
	if !ok {
		return 0
	}

	drawn := 0

	for x := xMin; x <= xMax; x++ {
		for y := yMin; y <= yMax; y++ {
			if insideTriangle(Barycentric(float64(x), float64(y), points)) {
				sink.Set(x, y, color)
				drawn++
			}
		}
	}

	return drawn

}

// DrawTriangle fills the screen-space triangle given (X and Y in pixels, Z being depth) with a flat Color, writing
// only pixels that pass the depth test against the DepthBuffer. It returns the number of pixels written.
func DrawTriangle(points [3]Vector3, depth *DepthBuffer, sink Sink, color Color) int {
	return rasterize(points, depth, sink, func(Vector3) Color { return color })
}

// DrawTriangleShaded is DrawTriangle, but with each pixel's Color computed by the Shader from its barycentric weights
// and the mesh's texture.
func DrawTriangleShaded(points [3]Vector3, depth *DepthBuffer, sink Sink, shader *Shader, mesh MeshSource) int {
	return rasterize(points, depth, sink, func(weights Vector3) Color { return shader.ComputeColor(weights, mesh) })
}

func rasterize(points [3]Vector3, depth *DepthBuffer, sink Sink, shade func(weights Vector3) Color) int {

	if depth == nil || !depth.fits(sink) {
		Logger().Debug("softras: depth buffer doesn't match sink; triangle skipped")
		return 0
	}

	flat := [3]Vector2{points[0].XY(), points[1].XY(), points[2].XY()}

	xMin, yMin, xMax, yMax, ok := boundingBox(flat, sink.Width(), sink.Height())
	if !ok {
		return 0
	}

	drawn := 0

	for x := xMin; x <= xMax; x++ {
		for y := yMin; y <= yMax; y++ {

			weights := Barycentric(float64(x), float64(y), flat)
			if !insideTriangle(weights) {
				continue
			}

			z := weights.X*points[0].Z + weights.Y*points[1].Z + weights.Z*points[2].Z

			if depth.Test(x, y, z) {
				sink.Set(x, y, shade(weights))
				drawn++
			}

		}
	}

	return drawn

}
