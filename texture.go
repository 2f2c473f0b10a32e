package softras

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// ImageSampler is a Sampler backed by an image.Image. Texel row 0 is the bottom row of the image (matching UV coordinates,
// where V increases upwards), and texel coordinates outside of the image are clamped to its edges.
type ImageSampler struct {
	Image image.Image
	// Flip controls whether texel rows are flipped against image rows; NewImageSampler turns it on.
	Flip bool
}

var _ Sampler = (*ImageSampler)(nil)

// NewImageSampler returns a new ImageSampler sampling the image given.
func NewImageSampler(img image.Image) *ImageSampler {
	return &ImageSampler{
		Image: img,
		Flip:  true,
	}
}

// Size returns the size of the underlying image in texels.
func (sampler *ImageSampler) Size() (int, int) {
	bounds := sampler.Image.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// Sample returns the color of the texel at u, v.
func (sampler *ImageSampler) Sample(u, v int) color.RGBA {

	bounds := sampler.Image.Bounds()
	if bounds.Empty() {
		return color.RGBA{}
	}

	u = clamp(u, 0, bounds.Dx()-1)
	v = clamp(v, 0, bounds.Dy()-1)

	if sampler.Flip {
		v = bounds.Dy() - 1 - v
	}

	return color.RGBAModel.Convert(sampler.Image.At(bounds.Min.X+u, bounds.Min.Y+v)).(color.RGBA)

}

type imageDecoder func(io.Reader) (image.Image, error)

var textureDecoders = map[string]imageDecoder{
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".gif":  gif.Decode,
	".bmp":  bmp.Decode,
	".tif":  tiff.Decode,
	".tiff": tiff.Decode,
	".webp": webp.Decode,
	".tga":  tga.Decode,
}

// LoadTextureFile loads the image file at the path given as an ImageSampler. The format is picked by the file's extension
// (PNG, JPEG, GIF, BMP, TIFF, WebP, or TGA).
func LoadTextureFile(path string) (*ImageSampler, error) {

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("softras: opening texture: %w", err)
	}
	defer file.Close()

	return LoadTextureData(bufio.NewReader(file), path)

}

// textureMagic maps the leading bytes of each sniffable format to its decoder's extension. TGA files have no magic number,
// so they're only decoded by extension.
var textureMagic = []struct {
	magic string
	ext   string
}{
	{"\x89PNG\r\n\x1a\n", ".png"},
	{"\xff\xd8", ".jpg"},
	{"GIF87a", ".gif"},
	{"GIF89a", ".gif"},
	{"BM", ".bmp"},
	{"II*\x00", ".tif"},
	{"MM\x00*", ".tif"},
	{"RIFF????WEBP", ".webp"},
}

// sniffTexture returns the decoder matching the magic bytes at the start of data, or false if none does.
func sniffTexture(data []byte) (imageDecoder, bool) {

	for _, m := range textureMagic {

		if len(data) < len(m.magic) {
			continue
		}

		match := true
		for i := range len(m.magic) {
			if m.magic[i] != '?' && m.magic[i] != data[i] {
				match = false
				break
			}
		}

		if match {
			return textureDecoders[m.ext], true
		}

	}

	return nil, false

}

// LoadTextureData decodes a texture from the reader given. name is only used for its extension, which picks the decoder;
// if the extension isn't known, the format is sniffed from the data instead (which can't detect TGA files).
func LoadTextureData(r io.Reader, name string) (*ImageSampler, error) {

	decode, ok := textureDecoders[strings.ToLower(filepath.Ext(name))]

	if !ok {
		buffered := bufio.NewReader(r)
		header, _ := buffered.Peek(12)
		if decode, ok = sniffTexture(header); !ok {
			return nil, fmt.Errorf("softras: decoding texture %q: %w", name, image.ErrFormat)
		}
		r = buffered
	}

	img, err := decode(r)
	if err != nil {
		return nil, fmt.Errorf("softras: decoding texture %q: %w", name, err)
	}

	return NewImageSampler(img), nil

}
