// Package ppm writes canvases as binary Portable Pixmap (P6) images.
//
// The format is a short ASCII header followed by raw bytes:
//
//	P6
//	<width> <height>
//	255
//	R G B R G B ...
//
// Pixels come from a row-major store of 0x00RRGGBB words, the layout used
// by px.Canvas, and are written top to bottom with no row padding.
package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Errors returned by this package.
var (
	// ErrSizeMismatch is returned when a buffer length does not equal
	// width*height.
	ErrSizeMismatch = errors.New("ppm: buffer size does not match dimensions")

	// ErrFormat is returned by Decode for input that is not an 8-bit P6 image.
	ErrFormat = errors.New("ppm: invalid format")
)

// Image is a pixel source. *px.Canvas satisfies it.
type Image interface {
	Width() int
	Height() int
	Buffer() []uint32
}

// chunkPixels is the number of pixels converted per write call.
const chunkPixels = 4096

// Limits on the images Decode accepts.
const (
	MaxSide   = 1 << 16
	MaxPixels = 1 << 28
)

// Encode writes img to w in P6 format.
func Encode(w io.Writer, img Image) error {
	return EncodeBuffer(w, img.Buffer(), img.Width(), img.Height())
}

// EncodeBuffer writes a raw row-major 0x00RRGGBB buffer to w in P6 format.
// The top byte of every word is ignored.
func EncodeBuffer(w io.Writer, buf []uint32, width, height int) error {
	if width < 0 || height < 0 || len(buf) != width*height {
		return fmt.Errorf("%w: %d pixels for %dx%d", ErrSizeMismatch, len(buf), width, height)
	}

	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("ppm: write header: %w", err)
	}

	chunk := make([]byte, 0, min(len(buf), chunkPixels)*3)
	for _, v := range buf {
		chunk = append(chunk, byte(v>>16), byte(v>>8), byte(v))
		if len(chunk) == cap(chunk) {
			if _, err := w.Write(chunk); err != nil {
				return fmt.Errorf("ppm: write pixels: %w", err)
			}
			chunk = chunk[:0]
		}
	}
	if len(chunk) > 0 {
		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("ppm: write pixels: %w", err)
		}
	}
	return nil
}

// Save writes img to the file at path, creating or truncating it.
func Save(path string, img Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("ppm: create file: %w", err)
	}

	if err := Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Decode reads an 8-bit P6 image and returns its pixels as a row-major
// 0x00RRGGBB buffer. Header comments starting with '#' are skipped.
func Decode(r io.Reader) (buf []uint32, width, height int, err error) {
	br := bufio.NewReader(r)

	magic, err := token(br)
	if err != nil {
		return nil, 0, 0, err
	}
	if magic != "P6" {
		return nil, 0, 0, fmt.Errorf("%w: magic %q", ErrFormat, magic)
	}

	var fields [3]int
	for i := range fields {
		tok, err := token(br)
		if err != nil {
			return nil, 0, 0, err
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 {
			return nil, 0, 0, fmt.Errorf("%w: bad header field %q", ErrFormat, tok)
		}
		fields[i] = n
	}
	width, height = fields[0], fields[1]
	if fields[2] != 255 {
		return nil, 0, 0, fmt.Errorf("%w: maxval %d", ErrFormat, fields[2])
	}
	if width > MaxSide || height > MaxSide || (height != 0 && width > MaxPixels/height) {
		return nil, 0, 0, fmt.Errorf("%w: %dx%d is too large", ErrFormat, width, height)
	}

	// The buffer grows with the rows actually read, so a short body never
	// costs the allocation its header announces.
	row := make([]byte, width*3)
	buf = make([]uint32, 0, min(width*height, chunkPixels))
	for y := range height {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, 0, 0, fmt.Errorf("ppm: read pixels: row %d: %w", y, err)
		}
		for j := 0; j < len(row); j += 3 {
			buf = append(buf, uint32(row[j])<<16|uint32(row[j+1])<<8|uint32(row[j+2]))
		}
	}
	return buf, width, height, nil
}

// token reads one whitespace-delimited header token and the single
// whitespace byte that ends it.
func token(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		c, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return "", fmt.Errorf("ppm: read header: %w", err)
		}
		switch {
		case c == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", fmt.Errorf("ppm: read header: %w", err)
			}
		case isSpace(c):
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, c)
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
