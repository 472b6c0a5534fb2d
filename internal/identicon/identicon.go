// Package identicon derives the drawable description of an identicon from an
// input string.
//
// Each stage takes an Image and returns a new Image with one more field
// populated. Stages never modify their argument, so intermediate values can be
// shared freely between goroutines.
package identicon

import (
	"fmt"

	"github.com/asteroid-belt/identicon/internal/hash"
)

const (
	// GridSize is the number of rows and columns in the grid.
	GridSize = 5
	// CellSize is the width and height of one grid cell in pixels.
	CellSize = 50
	// CanvasSize is the width and height of the rendered image in pixels.
	CanvasSize = GridSize * CellSize
	// ChunkSize is the number of digest bytes consumed per grid row.
	ChunkSize = 3
)

// Color is an RGB color.
type Color struct {
	R, G, B uint8
}

// Hex returns the color formatted as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Cell is one square of the grid: the digest byte that decides whether it is
// filled, and its row-major position.
type Cell struct {
	Value byte
	Index int
}

// Row returns the zero-based row of the cell.
func (c Cell) Row() int { return c.Index / GridSize }

// Column returns the zero-based column of the cell.
func (c Cell) Column() int { return c.Index % GridSize }

// Point is a pixel coordinate.
type Point struct {
	X, Y int
}

// Rect is a filled square, from its top-left corner to its bottom-right corner.
type Rect struct {
	TopLeft     Point
	BottomRight Point
}

// Image is the working state of the pipeline. It is not a bitmap.
type Image struct {
	Digest   []byte
	Color    Color
	Grid     []Cell
	PixelMap []Rect
}

// New runs the full pipeline for input.
func New(input string) Image {
	d := hash.Sum(input)
	img, err := FromDigest(d.Bytes())
	if err != nil {
		// A 16 byte digest always satisfies every stage.
		panic(fmt.Sprintf("identicon: %v", err))
	}
	return img
}

// FromDigest runs every stage after hashing over an arbitrary digest.
func FromDigest(digest []byte) (Image, error) {
	img := Image{Digest: append([]byte(nil), digest...)}

	img, err := PickColor(img)
	if err != nil {
		return Image{}, err
	}
	img, err = BuildGrid(img)
	if err != nil {
		return Image{}, err
	}
	img = FilterOddSquares(img)
	return BuildPixelMap(img), nil
}

// PickColor sets the color from the first three digest bytes.
func PickColor(img Image) (Image, error) {
	if len(img.Digest) < ChunkSize {
		return Image{}, fmt.Errorf("pick color from %d byte digest: %w", len(img.Digest), ErrInsufficientDigest)
	}
	img.Color = Color{R: img.Digest[0], G: img.Digest[1], B: img.Digest[2]}
	return img, nil
}
