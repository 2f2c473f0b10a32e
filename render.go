package softras

import (
	"errors"
	"math"
	"time"
)

// ErrNoMesh is returned when there's no mesh to render, or a file contains no mesh data.
var ErrNoMesh = errors.New("no mesh")

// RenderMode selects how Render draws a mesh.
type RenderMode int

const (
	RenderModeFilled    RenderMode = iota // Faces are filled with flat or textured shading, with depth testing
	RenderModeWireframe                   // Only face edges are drawn, as lines of RenderOptions.WireColor
)

func (mode RenderMode) String() string {
	switch mode {
	case RenderModeFilled:
		return "filled"
	case RenderModeWireframe:
		return "wireframe"
	}
	return "unknown"
}

// RenderOptions configures a render pass.
type RenderOptions struct {
	Width, Height  int       // Size of the Canvas created by RenderToCanvas; render passes into a Sink use the Sink's size
	LightDirection Vector3   // Direction faces are lit from; faces whose normal doesn't face it are culled
	Mode           RenderMode
	Transform      Matrix4 // Applied to every vertex before lighting and projection
	WireColor      Color   // Line color for RenderModeWireframe
	Background     Color   // Color the Sink is cleared to when ClearBackground is on
	// ClearBackground fills the Sink with Background before drawing.
	ClearBackground bool
}

// DefaultRenderOptions creates an instance of RenderOptions with some sensible defaults: a 200x200 filled render, lit
// from (0, 0, -1), with no transform.
func DefaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		Width:           200,
		Height:          200,
		LightDirection:  Vector3{0, 0, -1},
		Mode:            RenderModeFilled,
		Transform:       NewMatrix4(),
		WireColor:       NewColor(1, 1, 1),
		Background:      NewColor(0, 0, 0),
		ClearBackground: true,
	}
}

// RenderStats reports what happened during a render pass.
type RenderStats struct {
	Faces   int // Faces in the mesh
	Drawn   int // Faces that were rasterized (or outlined)
	Culled  int // Faces skipped because they face away from the light
	Skipped int // Faces skipped for having fewer than 3 corners or invalid vertex indices
	Pixels  int // Pixels written by filled triangles (lines aren't counted)
	Elapsed time.Duration
}

// Project maps a vertex from normalized [-1, 1] space onto a width x height pixel grid: x and y are scaled and truncated
// to whole pixels, while z is passed through untouched as depth.
func Project(v Vector3, width, height int) Vector3 {
	return Vector3{
		X: math.Trunc((v.X + 1) * float64(width) / 2),
		Y: math.Trunc((v.Y + 1) * float64(height) / 2),
		Z: v.Z,
	}
}

// Render draws the mesh into the Sink according to options.Mode. Passing nil for options renders with DefaultRenderOptions().
func Render(mesh MeshSource, sink Sink, options *RenderOptions) (RenderStats, error) {

	if options == nil {
		options = DefaultRenderOptions()
	}

	switch options.Mode {
	case RenderModeWireframe:
		return RenderWireframe(mesh, sink, options)
	default:
		return RenderModel(mesh, sink, options)
	}

}

// RenderToCanvas creates a new Canvas of options.Width x options.Height and renders the mesh into it.
func RenderToCanvas(mesh MeshSource, options *RenderOptions) (*Canvas, RenderStats, error) {

	if options == nil {
		options = DefaultRenderOptions()
	}

	canvas := NewCanvas(options.Width, options.Height)
	stats, err := Render(mesh, canvas, options)
	return canvas, stats, err

}

// faceVertices returns the three transformed vertices of the face given, or false if the face can't be rasterized.
func faceVertices(face Face, vertices []Vector3, transform Matrix4) ([3]Vector3, bool) {

	var out [3]Vector3

	if len(face) < 3 {
		return out, false
	}

	for i := range 3 {
		index := face[i].Vertex
		if index < 0 || index >= len(vertices) {
			return out, false
		}
		out[i] = transform.MultVec(vertices[index])
	}

	return out, true

}

// faceUVs returns the UV coordinates of the face's three corners, or nil if any of them is missing.
func faceUVs(face Face, uvs []Vector2) []Vector2 {

	out := make([]Vector2, 0, 3)

	for i := range 3 {
		index := face[i].UV
		if index < 0 || index >= len(uvs) {
			return nil
		}
		out = append(out, uvs[index])
	}

	return out

}

func clearSink(sink Sink, color Color) {
	if canvas, ok := sink.(*Canvas); ok {
		canvas.Clear(color)
		return
	}
	for y := range sink.Height() {
		for x := range sink.Width() {
			sink.Set(x, y, color)
		}
	}
}

// RenderWireframe draws every edge of every face of the mesh into the Sink as a line of options.WireColor. No depth testing
// or lighting is done.
func RenderWireframe(mesh MeshSource, sink Sink, options *RenderOptions) (RenderStats, error) {

	start := time.Now()

	if options == nil {
		options = DefaultRenderOptions()
	}

	stats := RenderStats{}

	if mesh == nil {
		return stats, ErrNoMesh
	}

	if options.ClearBackground {
		clearSink(sink, options.Background)
	}

	vertices := mesh.Vertices()
	faces := mesh.Faces()
	stats.Faces = len(faces)

	w, h := sink.Width(), sink.Height()

	for _, face := range faces {

		world, ok := faceVertices(face, vertices, options.Transform)
		if !ok {
			stats.Skipped++
			continue
		}

		for i := range 3 {
			p0 := Project(world[i], w, h)
			p1 := Project(world[(i+1)%3], w, h)
			DrawLine(int(p0.X), int(p0.Y), int(p1.X), int(p1.Y), sink, options.WireColor)
		}

		stats.Drawn++

	}

	stats.Elapsed = time.Since(start)

	Logger().Debug("softras: wireframe render", "faces", stats.Faces, "drawn", stats.Drawn, "skipped", stats.Skipped, "elapsed", stats.Elapsed)

	return stats, nil

}

// RenderModel rasterizes every face of the mesh into the Sink with flat lighting and depth testing, using one DepthBuffer
// for the whole pass. Faces lit with an intensity of 0 or less are culled. If the mesh has a texture and a face has UV
// coordinates for all of its corners, the face is textured; otherwise it's filled with the gray of its intensity.
func RenderModel(mesh MeshSource, sink Sink, options *RenderOptions) (RenderStats, error) {

	start := time.Now()

	if options == nil {
		options = DefaultRenderOptions()
	}

	stats := RenderStats{}

	if mesh == nil {
		return stats, ErrNoMesh
	}

	if options.ClearBackground {
		clearSink(sink, options.Background)
	}

	w, h := sink.Width(), sink.Height()
	if w <= 0 || h <= 0 {
		return stats, nil
	}

	depth := NewDepthBuffer(w, h)

	vertices := mesh.Vertices()
	faces := mesh.Faces()
	uvs := mesh.UVTable()
	textured := mesh.Texture() != nil

	stats.Faces = len(faces)

	for _, face := range faces {

		world, ok := faceVertices(face, vertices, options.Transform)
		if !ok {
			stats.Skipped++
			continue
		}

		intensity := FaceIntensity(world[0], world[1], world[2], options.LightDirection)
		if intensity <= 0 {
			stats.Culled++
			continue
		}

		screen := [3]Vector3{
			Project(world[0], w, h),
			Project(world[1], w, h),
			Project(world[2], w, h),
		}

		var uv []Vector2
		if textured {
			uv = faceUVs(face, uvs)
		}

		if uv != nil {
			shader := NewShader(intensity)
			shader.UV = uv
			stats.Pixels += DrawTriangleShaded(screen, depth, sink, shader, mesh)
		} else {
			stats.Pixels += DrawTriangle(screen, depth, sink, NewColorGray(intensity))
		}

		stats.Drawn++

	}

	stats.Elapsed = time.Since(start)

	Logger().Debug("softras: model render",
		"faces", stats.Faces,
		"drawn", stats.Drawn,
		"culled", stats.Culled,
		"skipped", stats.Skipped,
		"pixels", stats.Pixels,
		"elapsed", stats.Elapsed,
	)

	return stats, nil

}
