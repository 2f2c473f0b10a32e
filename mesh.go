package softras

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"
)

// Sampler is a texture that can be sampled by integer texel coordinates. How out-of-range coordinates are handled is
// up to the Sampler.
type Sampler interface {
	Sample(u, v int) color.RGBA
	Size() (width, height int)
}

// FaceVertex is one corner of a Face: an index into the mesh's vertices, and optionally indices into its UV table and
// normals (-1 when absent).
type FaceVertex struct {
	Vertex int
	UV     int
	Normal int
}

// Face is a list of FaceVertex corners. Only faces with exactly three usable corners are rasterized.
type Face []FaceVertex

// MeshSource is the geometry a render pass consumes.
type MeshSource interface {
	Vertices() []Vector3
	Faces() []Face
	UVTable() []Vector2
	Texture() Sampler // nil if the mesh has no texture
}

// Dimensions represents the minimum and maximum spatial dimensions of a Mesh.
type Dimensions [2]Vector3

// Width returns the extent of the Dimensions along the X axis.
func (dim Dimensions) Width() float64 {
	return dim[1].X - dim[0].X
}

// Height returns the extent of the Dimensions along the Y axis.
func (dim Dimensions) Height() float64 {
	return dim[1].Y - dim[0].Y
}

// Depth returns the extent of the Dimensions along the Z axis.
func (dim Dimensions) Depth() float64 {
	return dim[1].Z - dim[0].Z
}

// Center returns the center point inbetween the two corners of the dimension set.
func (dim Dimensions) Center() Vector3 {
	return dim[0].Add(dim[1]).Scale(0.5)
}

// MaxSpan returns the maximum span out of width, height, and depth.
func (dim Dimensions) MaxSpan() float64 {
	return math.Max(math.Max(dim.Width(), dim.Height()), dim.Depth())
}

// Mesh is an in-memory MeshSource, as produced by the OBJ and glTF loaders.
type Mesh struct {
	Name       string
	vertices   []Vector3
	uvs        []Vector2
	normals    []Vector3
	faces      []Face
	texture    Sampler
	Dimensions Dimensions
}

var _ MeshSource = (*Mesh)(nil)

// NewMesh returns a new, empty Mesh with the name given.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		vertices: []Vector3{},
		uvs:      []Vector2{},
		normals:  []Vector3{},
		faces:    []Face{},
	}
}

func (mesh *Mesh) Vertices() []Vector3 { return mesh.vertices }
func (mesh *Mesh) Faces() []Face       { return mesh.faces }
func (mesh *Mesh) UVTable() []Vector2  { return mesh.uvs }
func (mesh *Mesh) Normals() []Vector3  { return mesh.normals }
func (mesh *Mesh) Texture() Sampler    { return mesh.texture }

// SetTexture sets the texture sampled by the Mesh's UV coordinates; pass nil to remove it.
func (mesh *Mesh) SetTexture(texture Sampler) {
	mesh.texture = texture
}

// AddVertices adds vertex positions to the Mesh, returning the index of the first one added.
func (mesh *Mesh) AddVertices(vertices ...Vector3) int {
	start := len(mesh.vertices)
	mesh.vertices = append(mesh.vertices, vertices...)
	return start
}

// AddUVs adds UV coordinates to the Mesh's UV table, returning the index of the first one added.
func (mesh *Mesh) AddUVs(uvs ...Vector2) int {
	start := len(mesh.uvs)
	mesh.uvs = append(mesh.uvs, uvs...)
	return start
}

// AddNormals adds vertex normals to the Mesh, returning the index of the first one added. Normals are carried through
// from loaded files for callers; rendering is flat-shaded from face geometry and doesn't read them.
func (mesh *Mesh) AddNormals(normals ...Vector3) int {
	start := len(mesh.normals)
	mesh.normals = append(mesh.normals, normals...)
	return start
}

// AddFace adds a Face to the Mesh. The Face isn't validated here; faces that don't reference exactly three valid
// vertices are skipped at render time instead.
func (mesh *Mesh) AddFace(face Face) {
	mesh.faces = append(mesh.faces, face)
}

// AddTriangle is a shortcut for adding a three-cornered Face with the vertex indices given and UV indices matching them.
func (mesh *Mesh) AddTriangle(i0, i1, i2 int) {
	uv := func(i int) int {
		if i < len(mesh.uvs) {
			return i
		}
		return -1
	}
	mesh.AddFace(Face{
		{Vertex: i0, UV: uv(i0), Normal: -1},
		{Vertex: i1, UV: uv(i1), Normal: -1},
		{Vertex: i2, UV: uv(i2), Normal: -1},
	})
}

// ApplyMatrix applies the Matrix provided to all vertices on the Mesh. You can use this to, for example, translate (move) all vertices
// of a Mesh to the right by 5 units ( mesh.ApplyMatrix(softras.NewMatrix4Translate(5, 0, 0)) ).
func (mesh *Mesh) ApplyMatrix(matrix Matrix4) {

	for i, v := range mesh.vertices {
		mesh.vertices[i] = matrix.MultVec(v)
	}

	mesh.UpdateBounds()

}

// UpdateBounds updates the mesh's dimensions; call this after manually changing vertex positions.
func (mesh *Mesh) UpdateBounds() {

	if len(mesh.vertices) == 0 {
		mesh.Dimensions = Dimensions{}
		return
	}

	mesh.Dimensions[0] = Vector3{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64}
	mesh.Dimensions[1] = Vector3{-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64}

	for _, v := range mesh.vertices {
		mesh.Dimensions[0].X = math.Min(mesh.Dimensions[0].X, v.X)
		mesh.Dimensions[0].Y = math.Min(mesh.Dimensions[0].Y, v.Y)
		mesh.Dimensions[0].Z = math.Min(mesh.Dimensions[0].Z, v.Z)
		mesh.Dimensions[1].X = math.Max(mesh.Dimensions[1].X, v.X)
		mesh.Dimensions[1].Y = math.Max(mesh.Dimensions[1].Y, v.Y)
		mesh.Dimensions[1].Z = math.Max(mesh.Dimensions[1].Z, v.Z)
	}

}

// Normalize centers the Mesh on the origin and scales it uniformly so that it fits within [-1, 1] on every axis, which
// is the space the renderer projects onto the canvas.
func (mesh *Mesh) Normalize() {

	mesh.UpdateBounds()

	span := mesh.Dimensions.MaxSpan()
	if span == 0 {
		return
	}

	center := mesh.Dimensions.Center()
	scale := 2 / span

	mesh.ApplyMatrix(NewMatrix4Translate(-center.X, -center.Y, -center.Z).Mult(NewMatrix4Scale(scale, scale, scale)))

}

// NewCube creates a new Cube Mesh spanning [-0.5, 0.5] on every axis, with UV coordinates for each side. Faces are wound
// counter-clockwise seen from outside, like exported OBJ files, so with the default light direction of (0, 0, -1) only the
// side facing +Z (towards the viewer) is lit.
func NewCube() *Mesh {

	mesh := NewMesh("Cube")

	type side struct {
		corners [4]Vector3
	}

	h := 0.5

	sides := []side{
		{[4]Vector3{{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h}}}, // Front (-Z)
		{[4]Vector3{{h, -h, h}, {-h, -h, h}, {-h, h, h}, {h, h, h}}},     // Back (+Z)
		{[4]Vector3{{-h, -h, h}, {-h, -h, -h}, {-h, h, -h}, {-h, h, h}}}, // Left (-X)
		{[4]Vector3{{h, -h, -h}, {h, -h, h}, {h, h, h}, {h, h, -h}}},     // Right (+X)
		{[4]Vector3{{-h, h, -h}, {h, h, -h}, {h, h, h}, {-h, h, h}}},     // Top (+Y)
		{[4]Vector3{{-h, -h, h}, {h, -h, h}, {h, -h, -h}, {-h, -h, -h}}}, // Bottom (-Y)
	}

	uvs := []Vector2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for _, s := range sides {
		start := mesh.AddVertices(s.corners[:]...)
		mesh.AddUVs(uvs...)
		mesh.AddTriangle(start, start+2, start+1)
		mesh.AddTriangle(start, start+3, start+2)
	}

	mesh.UpdateBounds()

	return mesh

}

// LoadMeshFile loads a mesh file, picking the loader by the file's extension (.obj, .gltf, or .glb). The mesh's textures
// are loaded too, and if normalize is true, the mesh is centered and scaled to fit [-1, 1].
func LoadMeshFile(path string, normalize bool) (*Mesh, error) {

	switch strings.ToLower(filepath.Ext(path)) {

	case ".obj":
		options := DefaultOBJLoadOptions()
		options.Normalize = normalize
		return LoadOBJFile(path, options)

	case ".gltf", ".glb":
		options := DefaultGLTFLoadOptions()
		options.Normalize = normalize
		return LoadGLTFFile(path, options)

	}

	return nil, fmt.Errorf("softras: %q: %w", path, ErrUnknownFormat)

}
