// Package image exports canvases to image files.
//
// The output format is chosen from the file extension. PPM is written by
// the px ppm encoder; PNG, BMP and TIFF go through their Go encoders.
package image

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an image file format.
type Format uint8

const (
	// FormatPPM is binary Portable Pixmap (P6).
	FormatPPM Format = iota

	// FormatPNG is Portable Network Graphics.
	FormatPNG

	// FormatBMP is Windows bitmap.
	FormatBMP

	// FormatTIFF is Tagged Image File Format.
	FormatTIFF
)

// String returns the conventional extension of the format, without a dot.
func (f Format) String() string {
	switch f {
	case FormatPPM:
		return "ppm"
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// extensions maps lower-case file extensions to formats.
var extensions = map[string]Format{
	".ppm":  FormatPPM,
	".png":  FormatPNG,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
}

// FormatFromPath picks the format for path from its extension.
// The match is case-insensitive.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := extensions[ext]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return f, nil
}

// ParseFormat parses a format name such as "png" or ".tif".
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !strings.HasPrefix(name, ".") {
		name = "." + name
	}
	f, ok := extensions[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return f, nil
}
