package image

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// MaxScaledSide bounds each side of an image returned by Scale.
const MaxScaledSide = 1 << 16

// ErrTooLarge is returned by Scale when the result would exceed
// MaxScaledSide pixels on a side.
var ErrTooLarge = errors.New("image: scaled image too large")

// Scale enlarges img by an integer factor with nearest-neighbour sampling,
// so every source pixel becomes a factor x factor block. Factors below 2
// return img unchanged.
func Scale(img image.Image, factor int) (image.Image, error) {
	if factor < 2 {
		return img, nil
	}
	b := img.Bounds()
	if b.Dx() > MaxScaledSide/factor || b.Dy() > MaxScaledSide/factor {
		return nil, fmt.Errorf("%w: %dx%d by %d", ErrTooLarge, b.Dx(), b.Dy(), factor)
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, nil
}
