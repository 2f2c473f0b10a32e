package softras

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const triangleOBJ = `# A single triangle
o Triangle
v -1 -1 0
v 1 -1 0
v 0 1 0 1.0
vt 0 0
vt 1 0
vt 0.5 1
vn 0 0 1
s off
f 1/1/1 2/2/1 3/3/1
`

func TestLoadOBJData(t *testing.T) {

	mesh, err := LoadOBJData(strings.NewReader(triangleOBJ), nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(mesh.Vertices()) != 3 || len(mesh.UVTable()) != 3 || len(mesh.Normals()) != 1 {
		t.Fatalf("loaded %d vertices, %d UVs, %d normals", len(mesh.Vertices()), len(mesh.UVTable()), len(mesh.Normals()))
	}

	if len(mesh.Faces()) != 1 {
		t.Fatal("loaded", len(mesh.Faces()), "faces")
	}

	want := Face{{0, 0, 0}, {1, 1, 0}, {2, 2, 0}}
	for i, fv := range mesh.Faces()[0] {
		if fv != want[i] {
			t.Fatalf("corner %d = %+v, want %+v", i, fv, want[i])
		}
	}

	if mesh.Dimensions[0] != (Vector3{-1, -1, 0}) || mesh.Dimensions[1] != (Vector3{1, 1, 0}) {
		t.Fatal("bad dimensions:", mesh.Dimensions)
	}

}

func TestLoadOBJFaceForms(t *testing.T) {

	tests := []struct {
		name string
		face string
		want Face
	}{
		{"vertex only", "f 1 2 3", Face{{0, -1, -1}, {1, -1, -1}, {2, -1, -1}}},
		{"vertex and uv", "f 1/3 2/2 3/1", Face{{0, 2, -1}, {1, 1, -1}, {2, 0, -1}}},
		{"vertex and normal", "f 1//1 2//1 3//1", Face{{0, -1, 0}, {1, -1, 0}, {2, -1, 0}}},
		{"negative", "f -3/-3 -2/-2 -1/-1", Face{{1, 1, -1}, {2, 2, -1}, {3, 3, -1}}},
		{"quad trimmed", "f 1 2 3 4", Face{{0, -1, -1}, {1, -1, -1}, {2, -1, -1}}},
		{"bad corners dropped", "f 1 x 0 2 3", Face{{0, -1, -1}, {1, -1, -1}, {2, -1, -1}}},
		{"too short", "f 1 2", Face{{0, -1, -1}, {1, -1, -1}}},
	}

	header := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nvt 0 0\nvt 1 0\nvt 1 1\nvt 0 1\nvn 0 0 1\n"

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {

			mesh, err := LoadOBJData(strings.NewReader(header+test.face+"\n"), nil)
			if err != nil {
				t.Fatal(err)
			}

			if len(mesh.Faces()) != 1 {
				t.Fatal("loaded", len(mesh.Faces()), "faces")
			}

			face := mesh.Faces()[0]
			if len(face) != len(test.want) {
				t.Fatalf("face has %d corners, want %d", len(face), len(test.want))
			}

			for i := range face {
				if face[i] != test.want[i] {
					t.Fatalf("corner %d = %+v, want %+v", i, face[i], test.want[i])
				}
			}

		})
	}

}

func TestLoadOBJPermissive(t *testing.T) {

	data := strings.Join([]string{
		"mtllib missing.mtl",
		"g group",
		"v 0 0 0",
		"v not a vertex",
		"v 1 0",
		"v 1 0 0",
		"vt 0.5",
		"usemtl none",
		"v 0 1 0",
		"f 1 2 3",
		"",
		"   ",
		"l 1 2",
	}, "\n")

	mesh, err := LoadOBJData(strings.NewReader(data), nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(mesh.Vertices()) != 3 {
		t.Fatal("expected malformed vertices to be skipped, got", len(mesh.Vertices()), "vertices")
	}

	if len(mesh.UVTable()) != 0 {
		t.Fatal("expected the malformed UV to be skipped")
	}

	if len(mesh.Faces()) != 1 {
		t.Fatal("expected one face, got", len(mesh.Faces()))
	}

}

func TestLoadOBJFileMaterials(t *testing.T) {

	dir := t.TempDir()

	obj := "mtllib cube.mtl\n" + triangleOBJ
	mtl := "newmtl Material\nKd 1 1 1\nmap_Kd -s 1 1 1 tex.png\n"

	tex := NewCanvas(2, 2)
	tex.Clear(NewColor(1, 0, 0))

	if err := os.WriteFile(filepath.Join(dir, "tri.obj"), []byte(obj), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "cube.mtl"), []byte(mtl), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := tex.WriteFile(filepath.Join(dir, "tex.png")); err != nil {
		t.Fatal(err)
	}

	mesh, err := LoadOBJFile(filepath.Join(dir, "tri.obj"), nil)
	if err != nil {
		t.Fatal(err)
	}

	if mesh.Name != "tri" {
		t.Fatal("mesh name =", mesh.Name)
	}

	if mesh.Texture() == nil {
		t.Fatal("the diffuse map wasn't loaded")
	}

	if c := mesh.Texture().Sample(0, 0); c.R != 255 || c.G != 0 {
		t.Fatal("unexpected texel", c)
	}

	options := DefaultOBJLoadOptions()
	options.LoadMaterials = false
	options.Normalize = true

	plain, err := LoadOBJFile(filepath.Join(dir, "tri.obj"), options)
	if err != nil {
		t.Fatal(err)
	}

	if plain.Texture() != nil {
		t.Fatal("texture loaded with LoadMaterials off")
	}

	if _, err := LoadOBJFile(filepath.Join(dir, "missing.obj"), nil); err == nil {
		t.Fatal("expected an error for a missing file")
	}

}

func TestLoadOBJLongLines(t *testing.T) {

	data := "v -1 -1 0\nv 1 -1 0\nv 0 1 0\n# " + strings.Repeat("x", 200000) + "\nf 1 2 3\n"

	mesh, err := LoadOBJData(strings.NewReader(data), nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(mesh.Vertices()) != 3 || len(mesh.Faces()) != 1 {
		t.Fatalf("loaded %d vertices and %d faces past a long line", len(mesh.Vertices()), len(mesh.Faces()))
	}

}
