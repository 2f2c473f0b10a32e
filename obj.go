package softras

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// OBJLoadOptions alters how Wavefront OBJ files are loaded.
type OBJLoadOptions struct {
	// LoadMaterials controls whether LoadOBJFile follows mtllib statements to find a diffuse texture (the first map_Kd
	// found). Textures that can't be loaded are logged and ignored.
	LoadMaterials bool
	// Normalize centers and scales the loaded Mesh to fit [-1, 1] on every axis.
	Normalize bool
}

// DefaultOBJLoadOptions creates an instance of OBJLoadOptions with some sensible defaults.
func DefaultOBJLoadOptions() *OBJLoadOptions {
	return &OBJLoadOptions{
		LoadMaterials: true,
	}
}

// LoadOBJFile loads a Wavefront OBJ file from the filepath given, using a provided OBJLoadOptions struct to alter how the file is loaded.
// Passing nil for options will load the file using default load options.
func LoadOBJFile(path string, options *OBJLoadOptions) (*Mesh, error) {

	if options == nil {
		options = DefaultOBJLoadOptions()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("softras: opening mesh: %w", err)
	}

	mesh, materialLibs, err := parseOBJ(bytes.NewReader(data), strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	if err != nil {
		return nil, err
	}

	if options.LoadMaterials {
		dir := filepath.Dir(path)
		for _, lib := range materialLibs {
			if texturePath := findDiffuseMap(filepath.Join(dir, lib)); texturePath != "" {
				texture, err := LoadTextureFile(filepath.Join(dir, texturePath))
				if err != nil {
					Logger().Warn("softras: ignoring OBJ texture", "path", texturePath, "err", err)
					continue
				}
				mesh.SetTexture(texture)
				break
			}
		}
	}

	if options.Normalize {
		mesh.Normalize()
	}

	return mesh, nil

}

// LoadOBJData loads a Wavefront OBJ mesh from the reader given. Material libraries can't be followed without a file path,
// so options.LoadMaterials is ignored. Passing nil for options will load the mesh using default load options.
//
// Parsing is permissive: statements other than v, vt, vn and f are skipped, as are lines that don't parse.
// Faces keep at most their first three usable corners; faces with fewer are kept as-is and refused when rendering.
func LoadOBJData(r io.Reader, options *OBJLoadOptions) (*Mesh, error) {

	if options == nil {
		options = DefaultOBJLoadOptions()
	}

	mesh, _, err := parseOBJ(r, "OBJ")
	if err != nil {
		return nil, err
	}

	if options.Normalize {
		mesh.Normalize()
	}

	return mesh, nil

}

func parseOBJ(r io.Reader, name string) (*Mesh, []string, error) {

	mesh := NewMesh(name)
	materialLibs := []string{}
	skipped := 0

	scanner := bufio.NewScanner(r)
	// Lines may be any length; the default 64 KiB limit would reject a whole mesh over one long comment
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt32)
	lineNumber := 0

	for scanner.Scan() {

		lineNumber++

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {

		case "v":
			if v, ok := parseFloats(fields[1:], 3); ok {
				mesh.AddVertices(Vector3{v[0], v[1], v[2]})
			} else {
				skipped++
			}

		case "vt":
			if v, ok := parseFloats(fields[1:], 2); ok {
				mesh.AddUVs(Vector2{v[0], v[1]})
			} else {
				skipped++
			}

		case "vn":
			if v, ok := parseFloats(fields[1:], 3); ok {
				mesh.AddNormals(Vector3{v[0], v[1], v[2]})
			} else {
				skipped++
			}

		case "f":
			face := Face{}
			for _, corner := range fields[1:] {
				if len(face) == 3 {
					break
				}
				if fv, ok := parseFaceVertex(corner, len(mesh.vertices), len(mesh.uvs), len(mesh.normals)); ok {
					face = append(face, fv)
				}
			}
			mesh.AddFace(face)

		case "mtllib":
			materialLibs = append(materialLibs, fields[1:]...)

		default:
			Logger().Debug("softras: skipping OBJ statement", "line", lineNumber, "statement", fields[0])

		}

	}

	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("softras: reading mesh: %w", err)
	}

	if skipped > 0 {
		Logger().Warn("softras: skipped malformed OBJ lines", "mesh", name, "count", skipped)
	}

	mesh.UpdateBounds()

	return mesh, materialLibs, nil

}

// parseFloats parses the first count fields as floats; extra fields (like a vertex's w) are ignored.
func parseFloats(fields []string, count int) ([]float64, bool) {

	if len(fields) < count {
		return nil, false
	}

	values := make([]float64, count)

	for i := range count {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, false
		}
		values[i] = v
	}

	return values, true

}

// parseFaceVertex parses one corner of an f statement, in any of the a, a/b, a/b/c, or a//c forms. The corner is unusable
// if its vertex index doesn't parse; a bad UV or normal index just leaves that index absent.
func parseFaceVertex(corner string, vertexCount, uvCount, normalCount int) (FaceVertex, bool) {

	parts := strings.Split(corner, "/")

	fv := FaceVertex{Vertex: -1, UV: -1, Normal: -1}

	vertex, ok := resolveOBJIndex(parts[0], vertexCount)
	if !ok {
		return fv, false
	}
	fv.Vertex = vertex

	if len(parts) > 1 {
		if uv, ok := resolveOBJIndex(parts[1], uvCount); ok {
			fv.UV = uv
		}
	}

	if len(parts) > 2 {
		if normal, ok := resolveOBJIndex(parts[2], normalCount); ok {
			fv.Normal = normal
		}
	}

	return fv, true

}

// resolveOBJIndex turns a 1-based OBJ index into a 0-based one; negative indices count back from the end of the list
// so far (-1 being the last element).
func resolveOBJIndex(field string, count int) (int, bool) {

	if field == "" {
		return -1, false
	}

	index, err := strconv.Atoi(field)
	if err != nil || index == 0 {
		return -1, false
	}

	if index < 0 {
		index = count + index
	} else {
		index--
	}

	if index < 0 {
		return -1, false
	}

	return index, true

}

// findDiffuseMap returns the first map_Kd texture path in the material library given, or an empty string.
func findDiffuseMap(mtlPath string) string {

	data, err := os.ReadFile(mtlPath)
	if err != nil {
		Logger().Warn("softras: ignoring OBJ material library", "path", mtlPath, "err", err)
		return ""
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt32)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) >= 2 && fields[0] == "map_Kd" {
			// Options (like -s 1 1 1) come before the path, so the path is last
			return fields[len(fields)-1]
		}
	}

	return ""

}
