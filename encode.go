package softras

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned when an output image format can't be determined from a file extension.
var ErrUnknownFormat = errors.New("unknown image format")

// ImageFormat is an output image encoding.
type ImageFormat int

const (
	ImageFormatPPM ImageFormat = iota // ASCII PPM ("P3")
	ImageFormatPNG
	ImageFormatBMP
	ImageFormatTIFF
)

// ppmLineLimit is the longest a line of PPM pixel data may get.
const ppmLineLimit = 70

// FormatFromPath returns the ImageFormat matching the path's extension (.ppm, .png, .bmp, .tif or .tiff).
func FormatFromPath(path string) (ImageFormat, error) {

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return ImageFormatPPM, nil
	case ".png":
		return ImageFormatPNG, nil
	case ".bmp":
		return ImageFormatBMP, nil
	case ".tif", ".tiff":
		return ImageFormatTIFF, nil
	}

	return 0, fmt.Errorf("softras: %q: %w", path, ErrUnknownFormat)

}

// Encode writes the image to w in the format given. A Canvas can be passed directly, and comes out the right way up (see Canvas).
func Encode(w io.Writer, img image.Image, format ImageFormat) error {

	switch format {
	case ImageFormatPPM:
		return encodePPM(w, img)
	case ImageFormatPNG:
		return png.Encode(w, img)
	case ImageFormatBMP:
		return bmp.Encode(w, img)
	case ImageFormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}

	return ErrUnknownFormat

}

// WriteImageFile writes the image to the path given, picking the format with FormatFromPath.
func WriteImageFile(path string, img image.Image) error {

	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("softras: creating output: %w", err)
	}

	out := bufio.NewWriter(file)

	if err := Encode(out, img, format); err != nil {
		file.Close()
		return fmt.Errorf("softras: encoding %s: %w", path, err)
	}

	if err := out.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("softras: writing %s: %w", path, err)
	}

	return file.Close()

}

// WriteFile writes the Canvas to the path given, picking the format with FormatFromPath.
func (canvas *Canvas) WriteFile(path string) error {
	return WriteImageFile(path, canvas)
}

// WritePPM writes the Canvas to w as an ASCII PPM image.
func (canvas *Canvas) WritePPM(w io.Writer) error {
	return encodePPM(w, canvas)
}

// FormatPPM returns the Canvas as an ASCII PPM image: a "P3" header, then "r g b " for every pixel, starting a new line for
// every pixel row and whenever a line would pass 70 characters. Rows are written bottom-to-top relative to Canvas storage.
func (canvas *Canvas) FormatPPM() string {
	s := strings.Builder{}
	encodePPM(&s, canvas)
	return s.String()
}

func encodePPM(w io.Writer, img image.Image) error {

	bounds := img.Bounds()

	out := bufio.NewWriter(w)

	fmt.Fprintf(out, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy())

	lineLength := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {

		for x := bounds.Min.X; x < bounds.Max.X; x++ {

			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)

			triple := strconv.Itoa(int(c.R)) + " " + strconv.Itoa(int(c.G)) + " " + strconv.Itoa(int(c.B)) + " "

			if lineLength > 0 && (x == bounds.Min.X || lineLength+len(triple) > ppmLineLimit) {
				out.WriteString("\n")
				lineLength = 0
			}

			out.WriteString(triple)
			lineLength += len(triple)

		}

	}

	out.WriteString("\n")

	return out.Flush()

}

// Caption draws a line of white text in the top-left corner of the image, using a fixed-size 7x13 bitmap font.
func Caption(img draw.Image, text string) {
	CaptionColor(img, text, color.White)
}

// CaptionColor is Caption with a text color.
func CaptionColor(img draw.Image, text string, c color.Color) {

	face := basicfont.Face7x13
	bounds := img.Bounds()

	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(bounds.Min.X+2, bounds.Min.Y+2+face.Ascent),
	}

	drawer.DrawString(text)

}
