package source

import (
	"fmt"
	"image"
	"io"

	// registered decoders for the formats the carousel accepts
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// decodeScaled decodes an image and downscales it to fit within target while
// keeping aspect ratio. Images already inside the target box are returned
// as decoded; upscaling only wastes memory.
func decodeScaled(r io.Reader, target image.Point) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if target.X <= 0 || target.Y <= 0 {
		return img, nil
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= target.X && h <= target.Y {
		return img, nil
	}

	scaleX := float64(target.X) / float64(w)
	scaleY := float64(target.Y) / float64(h)
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst, nil
}
