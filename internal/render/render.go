// Package render paints identicons onto a canvas and encodes them.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/asteroid-belt/identicon/internal/identicon"
)

// Canvas is the drawing surface the rasterizer needs.
type Canvas interface {
	FillRect(r identicon.Rect, c identicon.Color)
	Encode(w io.Writer) error
}

// CanvasFactory creates a blank canvas of the given size.
type CanvasFactory func(width, height int) Canvas

// Background is the color of pixels not covered by any rectangle.
var Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// PNGCanvas is an in-memory RGBA bitmap encoded as PNG.
type PNGCanvas struct {
	img *image.RGBA
}

// NewPNGCanvas returns a canvas filled with Background.
func NewPNGCanvas(width, height int) Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	return &PNGCanvas{img: img}
}

// FillRect paints r in c. The bottom-right corner is exclusive.
func (p *PNGCanvas) FillRect(r identicon.Rect, c identicon.Color) {
	bounds := image.Rect(r.TopLeft.X, r.TopLeft.Y, r.BottomRight.X, r.BottomRight.Y)
	fill := image.NewUniform(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	draw.Draw(p.img, bounds.Intersect(p.img.Bounds()), fill, image.Point{}, draw.Src)
}

// Encode writes the canvas as PNG.
func (p *PNGCanvas) Encode(w io.Writer) error {
	return png.Encode(w, p.img)
}

// Rasterize paints every rectangle of img's pixel map in img's color and
// returns the encoded result. A nil factory uses NewPNGCanvas.
func Rasterize(img identicon.Image, newCanvas CanvasFactory) ([]byte, error) {
	if newCanvas == nil {
		newCanvas = NewPNGCanvas
	}

	canvas := newCanvas(identicon.CanvasSize, identicon.CanvasSize)
	for _, r := range img.PixelMap {
		canvas.FillRect(r, img.Color)
	}

	var buf bytes.Buffer
	if err := canvas.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
