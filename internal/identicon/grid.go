package identicon

import "fmt"

// MirrorRow reflects a three byte chunk around its middle element.
func MirrorRow(chunk [ChunkSize]byte) [GridSize]byte {
	return [GridSize]byte{chunk[0], chunk[1], chunk[2], chunk[1], chunk[0]}
}

// BuildGrid lays the digest out as mirrored rows. Bytes that do not fill a
// whole chunk are dropped, so a 16 byte digest gives five rows and ignores its
// last byte.
func BuildGrid(img Image) (Image, error) {
	rows := len(img.Digest) / ChunkSize
	if rows == 0 {
		return Image{}, fmt.Errorf("build grid from %d byte digest: %w", len(img.Digest), ErrInsufficientDigest)
	}

	grid := make([]Cell, 0, rows*GridSize)
	for r := 0; r < rows; r++ {
		var chunk [ChunkSize]byte
		copy(chunk[:], img.Digest[r*ChunkSize:])
		for _, v := range MirrorRow(chunk) {
			grid = append(grid, Cell{Value: v, Index: len(grid)})
		}
	}

	img.Grid = grid
	return img, nil
}

// FilterOddSquares keeps the cells with an even value. Order is preserved.
func FilterOddSquares(img Image) Image {
	kept := make([]Cell, 0, len(img.Grid))
	for _, c := range img.Grid {
		if c.Value%2 == 0 {
			kept = append(kept, c)
		}
	}
	img.Grid = kept
	return img
}
