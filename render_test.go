package softras

import (
	"errors"
	"testing"
)

func singleTriangle(reversed bool) *Mesh {
	mesh := NewMesh("triangle")
	mesh.AddVertices(Vector3{-1, -1, 0}, Vector3{1, -1, 0}, Vector3{0, 1, 0})
	if reversed {
		mesh.AddTriangle(0, 2, 1)
	} else {
		mesh.AddTriangle(0, 1, 2)
	}
	return mesh
}

func TestProject(t *testing.T) {

	tests := []struct {
		in, want Vector3
	}{
		{Vector3{-1, -1, 0.25}, Vector3{0, 0, 0.25}},
		{Vector3{0, 0, -3}, Vector3{100, 100, -3}},
		{Vector3{1, 1, 0}, Vector3{200, 200, 0}},
		{Vector3{0.999, -0.999, 0}, Vector3{199, 0, 0}},
	}

	for _, test := range tests {
		if got := Project(test.in, 200, 200); got != test.want {
			t.Errorf("Project(%v) = %v, want %v", test.in, got, test.want)
		}
	}

}

func TestRenderLitTriangle(t *testing.T) {

	canvas, stats, err := RenderToCanvas(singleTriangle(false), nil)
	if err != nil {
		t.Fatal(err)
	}

	if stats.Faces != 1 || stats.Drawn != 1 || stats.Culled != 0 || stats.Pixels == 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	if c, _ := canvas.Get(100, 50); c.ToRGBA() != NewColor(1, 1, 1).ToRGBA() {
		t.Fatal("triangle center isn't lit white:", c)
	}

	_, stats, err = RenderToCanvas(singleTriangle(true), nil)
	if err != nil {
		t.Fatal(err)
	}

	if stats.Drawn != 0 || stats.Culled != 1 || stats.Pixels != 0 {
		t.Fatalf("reversed triangle should be culled, stats %+v", stats)
	}

}

func TestRenderCube(t *testing.T) {

	canvas, stats, err := RenderToCanvas(NewCube(), nil)
	if err != nil {
		t.Fatal(err)
	}

	// Only the two triangles facing the light survive; the sides are edge-on
	if stats.Faces != 12 || stats.Drawn != 2 || stats.Culled != 10 || stats.Skipped != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	if c, _ := canvas.Get(100, 100); c.ToRGBA() != NewColor(1, 1, 1).ToRGBA() {
		t.Fatal("cube center =", c)
	}

	if c, _ := canvas.Get(0, 0); c != NewColor(0, 0, 0) {
		t.Fatal("background =", c)
	}

	// A turn of the cube on Y shows a dimmer face
	options := DefaultRenderOptions()
	options.Transform = NewMatrix4Rotate(0, 1, 0, 0.5)
	options.Background = NewColor(0, 0, 1)

	turned, stats, err := RenderToCanvas(NewCube(), options)
	if err != nil {
		t.Fatal(err)
	}

	if stats.Drawn != 4 {
		t.Fatal("turned cube drew", stats.Drawn, "faces")
	}

	if c, _ := turned.Get(0, 0); c != NewColor(0, 0, 1) {
		t.Fatal("background =", c)
	}

}

func TestRenderTextured(t *testing.T) {

	mesh := singleTriangle(false)
	mesh.AddUVs(Vector2{0, 0}, Vector2{1, 0}, Vector2{0.5, 1})
	mesh.faces = nil
	mesh.AddTriangle(0, 1, 2)

	texture := NewCanvas(4, 4)
	texture.Clear(NewColor(1, 0, 0))
	mesh.SetTexture(NewImageSampler(texture))

	canvas, stats, err := RenderToCanvas(mesh, nil)
	if err != nil {
		t.Fatal(err)
	}

	if stats.Drawn != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	if c, _ := canvas.Get(100, 50); c.ToRGBA() != NewColor(1, 0, 0).ToRGBA() {
		t.Fatal("textured triangle =", c)
	}

}

func TestRenderSkipsBadFaces(t *testing.T) {

	mesh := singleTriangle(false)
	mesh.AddFace(Face{{Vertex: 0, UV: -1, Normal: -1}, {Vertex: 1, UV: -1, Normal: -1}})
	mesh.AddTriangle(0, 1, 7)

	for _, mode := range []RenderMode{RenderModeFilled, RenderModeWireframe} {

		options := DefaultRenderOptions()
		options.Mode = mode

		_, stats, err := RenderToCanvas(mesh, options)
		if err != nil {
			t.Fatal(err)
		}

		if stats.Faces != 3 || stats.Drawn != 1 || stats.Skipped != 2 {
			t.Fatalf("%s: unexpected stats %+v", mode, stats)
		}

	}

}

func TestRenderWireframe(t *testing.T) {

	options := DefaultRenderOptions()
	options.Mode = RenderModeWireframe
	options.WireColor = NewColor(0, 1, 0)

	// Wireframes aren't culled
	canvas, stats, err := RenderToCanvas(singleTriangle(true), options)
	if err != nil {
		t.Fatal(err)
	}

	if stats.Drawn != 1 || stats.Pixels != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	// The bottom edge runs along row 0
	for x := 0; x < 200; x += 20 {
		if c, _ := canvas.Get(x, 0); c != options.WireColor {
			t.Fatalf("bottom edge is missing pixel %d: %v", x, c)
		}
	}

	// The interior is left as background
	if c, _ := canvas.Get(100, 50); c != options.Background {
		t.Fatal("interior =", c)
	}

}

func TestRenderNoMesh(t *testing.T) {

	canvas := NewCanvas(10, 10)

	if _, err := Render(nil, canvas, nil); !errors.Is(err, ErrNoMesh) {
		t.Fatal("expected ErrNoMesh, got", err)
	}

	options := DefaultRenderOptions()
	options.Mode = RenderModeWireframe
	if _, err := Render(nil, canvas, options); !errors.Is(err, ErrNoMesh) {
		t.Fatal("expected ErrNoMesh, got", err)
	}

}

func TestRenderModeString(t *testing.T) {
	if RenderModeFilled.String() != "filled" || RenderModeWireframe.String() != "wireframe" || RenderMode(9).String() != "unknown" {
		t.Fatal("bad RenderMode strings")
	}
}
