// Package imaging normalizes uploaded images. Every accepted upload is
// decoded, downscaled when oversized, and re-encoded as JPEG at a fixed
// quality of 85. The policy is deliberately not configurable.
package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"strings"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// Quality is the fixed JPEG quality applied to every upload.
	Quality = 85
	// MaxEdge caps the longest image edge; larger uploads are downscaled.
	MaxEdge = 1920
	// Ext is the extension every stored image carries after conversion.
	Ext = "jpg"
)

// ErrNotAnImage is returned when the uploaded bytes cannot be decoded as a
// supported image format (jpeg, png, gif, webp).
var ErrNotAnImage = errors.New("file is not a supported image")

// Normalize converts raw upload bytes into the stored representation.
func Normalize(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrNotAnImage
	}

	img = downscale(img, MaxEdge)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: Quality}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// FileName swaps the original extension for the converted one, discarding
// the source format.
func FileName(original string) string {
	base := original
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	if base == "" {
		base = "image"
	}
	return base + "." + Ext
}

func downscale(img image.Image, maxEdge int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxEdge && h <= maxEdge {
		return img
	}

	nw, nh := w, h
	if w >= h {
		nw = maxEdge
		nh = h * maxEdge / w
	} else {
		nh = maxEdge
		nw = w * maxEdge / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
