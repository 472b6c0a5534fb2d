package identicon

// CellRect returns the canvas rectangle covered by the cell at index.
func CellRect(index int) Rect {
	topLeft := Point{
		X: (index % GridSize) * CellSize,
		Y: (index / GridSize) * CellSize,
	}
	return Rect{
		TopLeft:     topLeft,
		BottomRight: Point{X: topLeft.X + CellSize, Y: topLeft.Y + CellSize},
	}
}

// BuildPixelMap maps every cell left in the grid to its rectangle, in grid order.
func BuildPixelMap(img Image) Image {
	pixels := make([]Rect, len(img.Grid))
	for i, c := range img.Grid {
		pixels[i] = CellRect(c.Index)
	}
	img.PixelMap = pixels
	return img
}

// Filled reports whether the cell at index survived filtering.
func (img Image) Filled(index int) bool {
	for _, c := range img.Grid {
		if c.Index == index {
			return true
		}
	}
	return false
}
