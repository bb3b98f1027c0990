package images

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"tradelog/journal"
)

const (
	// maxDimension caps the longer edge of a stored screenshot. Full-screen
	// chart captures are several MB as PNG; the journal embeds them in the
	// persisted document, so they are downscaled and re-encoded as JPEG.
	maxDimension = 1600
	jpegQuality  = 80
)

// Compress decodes a pasted or dropped screenshot, downscales it when the
// longer edge exceeds maxDimension, and re-encodes it as JPEG.
func Compress(name string, data []byte) (journal.Image, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return journal.Image{}, fmt.Errorf("decode image %s: %w", name, err)
	}

	src = downscale(src, maxDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return journal.Image{}, fmt.Errorf("encode image %s: %w", name, err)
	}
	return journal.Image{Name: name, MIME: "image/jpeg", Data: buf.Bytes()}, nil
}

// downscale shrinks src so its longer edge is at most max, by point sampling.
// Screenshots are viewed as thumbnails and zoomed occasionally; sampling
// quality is good enough and keeps this dependency free.
func downscale(src image.Image, max int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return src
	}

	scale := float64(max) / float64(w)
	if h > w {
		scale = float64(max) / float64(h)
	}
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	for y := 0; y < nh; y++ {
		sy := b.Min.Y + y*h/nh
		for x := 0; x < nw; x++ {
			sx := b.Min.X + x*w/nw
			dst.Set(x, y, src.At(sx, sy))
		}
	}
	return dst
}
