package softras

import "math"

// Shader computes the final color of each pixel of a single face. A Shader is created for every face drawn and is
// never shared between faces.
type Shader struct {
	UV        []Vector2 // The UV coordinates of the face's three vertices, in normalized [0, 1] texture space; empty if the face has none
	Intensity float64   // The flat light intensity of the face
}

// NewShader creates a new Shader with the intensity given and no UV coordinates.
func NewShader(intensity float64) *Shader {
	return &Shader{
		UV:        []Vector2{},
		Intensity: intensity,
	}
}

// ComputeColor returns the Color of the pixel with the barycentric weights given. Without UV coordinates (or without a
// texture on the mesh), this is the flat gray (Intensity, Intensity, Intensity). Otherwise the UV coordinates are
// interpolated by the weights, scaled to texel coordinates, sampled (nearest texel, no filtering), and the sampled
// color is scaled by Intensity.
func (shader *Shader) ComputeColor(weights Vector3, mesh MeshSource) Color {

	var texture Sampler
	if mesh != nil {
		texture = mesh.Texture()
	}

	if len(shader.UV) < 3 || texture == nil {
		return NewColorGray(shader.Intensity)
	}

	uv := shader.UV[0].Scale(weights.X).Add(shader.UV[1].Scale(weights.Y)).Add(shader.UV[2].Scale(weights.Z))

	return ColorFromRGBA(texture.Sample(texelCoords(uv, texture))).Scale(shader.Intensity)

}

// texelCoords converts a normalized UV coordinate into the (truncated) texel coordinate of the Sampler given, clamped to
// the texture. NaN coordinates map to texel 0.
func texelCoords(uv Vector2, texture Sampler) (int, int) {
	w, h := texture.Size()
	return texelAxis(uv.X, w), texelAxis(uv.Y, h)
}

func texelAxis(value float64, size int) int {
	if size <= 0 {
		return 0
	}
	scaled := value * float64(size)
	if math.IsNaN(scaled) || scaled < 0 {
		return 0
	}
	if scaled >= float64(size) {
		return size - 1
	}
	return int(scaled)
}

// FaceIntensity returns the flat light intensity of the face made of the three world-space vertices given, lit from
// the light direction given: dot(unit((v2 - v0) x (v1 - v0)), light). Faces with no area have an intensity of 0.
func FaceIntensity(v0, v1, v2, light Vector3) float64 {

	normal := v2.Sub(v0).Cross(v1.Sub(v0))

	if normal.Magnitude() == 0 {
		return 0
	}

	return normal.Unit().Dot(light)

}
