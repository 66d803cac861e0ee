package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterize parses svg and draws it scaled onto a transparent size x size canvas.
// Unknown SVG elements are an error rather than being skipped.
func Rasterize(svg []byte, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}
	if len(bytes.TrimSpace(svg)) == 0 {
		return nil, fmt.Errorf("parse svg: empty document")
	}

	ic, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.StrictErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	ic.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	ic.Draw(raster, 1.0)
	return img, nil
}

// Render rasterizes svg and returns the PNG encoding.
func Render(svg []byte, size int) ([]byte, error) {
	img, err := Rasterize(svg, size)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Default renders the embedded mosque icon at Size.
func Default() ([]byte, error) {
	return Render([]byte(SVG), Size)
}
