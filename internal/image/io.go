package image

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/px"
	"github.com/gogpu/px/ppm"
)

// ErrUnsupportedFormat is returned when the image format is not supported.
var ErrUnsupportedFormat = errors.New("image: unsupported format")

// Save writes img to path in the format named by the path's extension.
func Save(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	// gg writes PNG files itself.
	if f == FormatPNG {
		if err := gg.SavePNG(filepath.Clean(path), img); err != nil {
			return fmt.Errorf("image: save PNG: %w", err)
		}
		return nil
	}

	out, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	if err := Encode(out, f, img); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Encode writes img to w in format f.
func Encode(w io.Writer, f Format, img image.Image) error {
	var err error
	switch f {
	case FormatPPM:
		err = encodePPM(w, img)
	case FormatPNG:
		err = gg.NewContextForImage(img).EncodePNG(w)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("image: encode %v: %w", f, err)
	}
	return nil
}

// encodePPM writes img with the ppm encoder. Canvases are written straight
// from their store; other images are converted pixel by pixel.
func encodePPM(w io.Writer, img image.Image) error {
	if c, ok := img.(*px.Canvas); ok {
		return ppm.Encode(w, c)
	}

	b := img.Bounds()
	buf := make([]uint32, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			buf = append(buf, uint32(px.FromColor(img.At(x, y))))
		}
	}
	return ppm.EncodeBuffer(w, buf, b.Dx(), b.Dy())
}
