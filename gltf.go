package softras

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// GLTFLoadOptions alters how glTF files are loaded.
type GLTFLoadOptions struct {
	LoadTextures bool // If the base color texture of the first textured material should be loaded
	Normalize    bool // Normalize centers and scales the loaded Mesh to fit [-1, 1] on every axis
}

// DefaultGLTFLoadOptions creates an instance of GLTFLoadOptions with some sensible defaults.
func DefaultGLTFLoadOptions() *GLTFLoadOptions {
	return &GLTFLoadOptions{
		LoadTextures: true,
	}
}

// LoadGLTFFile loads a .gltf or .glb file from the filepath given, using a provided GLTFLoadOptions struct to alter how the file is loaded.
// Passing nil for loadOptions will load the file using default load options. External buffers and images are resolved relative to the file.
// Every triangle primitive of every mesh in the file is merged into the returned Mesh.
func LoadGLTFFile(path string, loadOptions *GLTFLoadOptions) (*Mesh, error) {

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("softras: opening glTF: %w", err)
	}

	return loadGLTFDocument(doc, filepath.Dir(path), strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), loadOptions)

}

// LoadGLTFData loads a .gltf or .glb file from the byte data given, using a provided GLTFLoadOptions struct to alter how the file is loaded.
// Passing nil for loadOptions will load the file using default load options. Only embedded buffers and images can be read.
func LoadGLTFData(data []byte, loadOptions *GLTFLoadOptions) (*Mesh, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("softras: decoding glTF: %w", err)
	}

	return loadGLTFDocument(doc, "", "glTF", loadOptions)

}

func loadGLTFDocument(doc *gltf.Document, dir, name string, loadOptions *GLTFLoadOptions) (*Mesh, error) {

	if loadOptions == nil {
		loadOptions = DefaultGLTFLoadOptions()
	}

	mesh, err := meshFromGLTFDocument(doc, name)
	if err != nil {
		return nil, err
	}

	if loadOptions.LoadTextures {
		texture, err := gltfBaseColorTexture(doc, dir)
		if err != nil {
			Logger().Warn("softras: ignoring glTF texture", "mesh", name, "err", err)
		} else if texture != nil {
			mesh.SetTexture(texture)
		}
	}

	if loadOptions.Normalize {
		mesh.Normalize()
	}

	return mesh, nil

}

// ErrBadIndex is returned when a glTF document refers to an accessor, texture, image or buffer view that doesn't exist.
var ErrBadIndex = errors.New("index out of range")

func gltfAccessor(doc *gltf.Document, index int) (*gltf.Accessor, error) {
	if index < 0 || index >= len(doc.Accessors) {
		return nil, fmt.Errorf("softras: glTF accessor %d: %w", index, ErrBadIndex)
	}
	return doc.Accessors[index], nil
}

func meshFromGLTFDocument(doc *gltf.Document, name string) (*Mesh, error) {

	if len(doc.Meshes) == 0 {
		return nil, fmt.Errorf("softras: glTF %q: %w", name, ErrNoMesh)
	}

	mesh := NewMesh(name)

	if len(doc.Meshes) == 1 && doc.Meshes[0].Name != "" {
		mesh.Name = doc.Meshes[0].Name
	}

	for _, gltfMesh := range doc.Meshes {

		for _, v := range gltfMesh.Primitives {

			if v.Mode != gltf.PrimitiveTriangles {
				Logger().Debug("softras: skipping non-triangle glTF primitive", "mesh", gltfMesh.Name, "mode", v.Mode)
				continue
			}

			positionAccessor, exists := v.Attributes[gltf.POSITION]
			if !exists {
				continue
			}

			accessor, err := gltfAccessor(doc, positionAccessor)
			if err != nil {
				return nil, err
			}

			vertPos, err := modeler.ReadPosition(doc, accessor, [][3]float32{})
			if err != nil {
				return nil, fmt.Errorf("softras: reading glTF positions: %w", err)
			}

			start := len(mesh.vertices)

			for _, p := range vertPos {
				mesh.AddVertices(Vector3{float64(p[0]), float64(p[1]), float64(p[2])})
			}

			// UV indices follow vertex indices, so the UV table is padded when a primitive has no texture coordinates
			uvStart := len(mesh.uvs)
			hasUVs := false

			if texCoordAccessor, texCoordExists := v.Attributes[gltf.TEXCOORD_0]; texCoordExists {

				accessor, err := gltfAccessor(doc, texCoordAccessor)
				if err != nil {
					return nil, err
				}

				texCoords, err := modeler.ReadTextureCoord(doc, accessor, [][2]float32{})
				if err != nil {
					return nil, fmt.Errorf("softras: reading glTF texture coordinates: %w", err)
				}

				for i := range vertPos {
					uv := Vector2{}
					if i < len(texCoords) {
						uv = Vector2{float64(texCoords[i][0]), -(float64(texCoords[i][1]) - 1)}
					}
					mesh.AddUVs(uv)
				}

				hasUVs = true

			}

			if normalAccessor, normalExists := v.Attributes[gltf.NORMAL]; normalExists {
				accessor, err := gltfAccessor(doc, normalAccessor)
				if err != nil {
					return nil, err
				}
				normals, err := modeler.ReadNormal(doc, accessor, [][3]float32{})
				if err != nil {
					return nil, fmt.Errorf("softras: reading glTF normals: %w", err)
				}
				for _, n := range normals {
					mesh.AddNormals(Vector3{float64(n[0]), float64(n[1]), float64(n[2])})
				}
			}

			var indices []uint32

			if v.Indices != nil {
				accessor, err := gltfAccessor(doc, *v.Indices)
				if err != nil {
					return nil, err
				}
				indices, err = modeler.ReadIndices(doc, accessor, []uint32{})
				if err != nil {
					return nil, fmt.Errorf("softras: reading glTF indices: %w", err)
				}
			} else {
				indices = make([]uint32, len(vertPos))
				for i := range indices {
					indices[i] = uint32(i)
				}
			}

			corner := func(index uint32) FaceVertex {
				fv := FaceVertex{Vertex: start + int(index), UV: -1, Normal: -1}
				if hasUVs {
					fv.UV = uvStart + int(index)
				}
				return fv
			}

			for i := 0; i+2 < len(indices); i += 3 {
				mesh.AddFace(Face{corner(indices[i]), corner(indices[i+1]), corner(indices[i+2])})
			}

		}

	}

	mesh.UpdateBounds()

	return mesh, nil

}

// gltfBaseColorTexture returns the base color texture of the first material that has one, or nil if there isn't any.
func gltfBaseColorTexture(doc *gltf.Document, dir string) (*ImageSampler, error) {

	for _, gltfMat := range doc.Materials {

		if gltfMat.PBRMetallicRoughness == nil || gltfMat.PBRMetallicRoughness.BaseColorTexture == nil {
			continue
		}

		textureIndex := gltfMat.PBRMetallicRoughness.BaseColorTexture.Index
		if textureIndex < 0 || textureIndex >= len(doc.Textures) {
			return nil, fmt.Errorf("softras: glTF material %q: texture %d: %w", gltfMat.Name, textureIndex, ErrBadIndex)
		}

		source := doc.Textures[textureIndex].Source
		if source == nil {
			continue
		}

		if *source < 0 || *source >= len(doc.Images) {
			return nil, fmt.Errorf("softras: glTF texture %d: image %d: %w", textureIndex, *source, ErrBadIndex)
		}

		gltfImage := doc.Images[*source]

		switch {

		case gltfImage.BufferView != nil:
			if *gltfImage.BufferView < 0 || *gltfImage.BufferView >= len(doc.BufferViews) {
				return nil, fmt.Errorf("softras: glTF image %d: buffer view %d: %w", *source, *gltfImage.BufferView, ErrBadIndex)
			}
			imageData, err := modeler.ReadBufferView(doc, doc.BufferViews[*gltfImage.BufferView])
			if err != nil {
				return nil, err
			}
			return LoadTextureData(bytes.NewReader(imageData), mimeTypeExtension(gltfImage.MimeType))

		case gltfImage.IsEmbeddedResource():
			imageData, err := gltfImage.MarshalData()
			if err != nil {
				return nil, err
			}
			mimeType := gltfImage.MimeType
			if mimeType == "" {
				mimeType, _, _ = strings.Cut(strings.TrimPrefix(gltfImage.URI, "data:"), ";")
			}
			return LoadTextureData(bytes.NewReader(imageData), mimeTypeExtension(mimeType))

		case gltfImage.URI != "" && dir != "":
			return LoadTextureFile(filepath.Join(dir, gltfImage.URI))

		}

	}

	return nil, nil

}

func mimeTypeExtension(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	}
	return ""
}
