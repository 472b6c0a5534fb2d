package identicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-belt/identicon/internal/hash"
)

func TestMirrorRow(t *testing.T) {
	assert.Equal(t, [GridSize]byte{1, 2, 3, 2, 1}, MirrorRow([ChunkSize]byte{1, 2, 3}))
}

func TestPickColor(t *testing.T) {
	img, err := PickColor(Image{Digest: []byte{200, 100, 50, 7}})
	require.NoError(t, err)
	assert.Equal(t, Color{R: 200, G: 100, B: 50}, img.Color)
	assert.Equal(t, "#c86432", img.Color.Hex())
}

func TestPickColor_ShortDigest(t *testing.T) {
	_, err := PickColor(Image{Digest: []byte{1, 2}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientDigest)
}

func TestBuildGrid_SixByteDigest(t *testing.T) {
	img, err := BuildGrid(Image{Digest: []byte{10, 20, 30, 40, 50, 60}})
	require.NoError(t, err)

	want := []Cell{
		{10, 0}, {20, 1}, {30, 2}, {20, 3}, {10, 4},
		{40, 5}, {50, 6}, {60, 7}, {50, 8}, {40, 9},
	}
	assert.Equal(t, want, img.Grid)
}

func TestBuildGrid_DropsTrailingBytes(t *testing.T) {
	d := hash.Sum("trailing")
	img, err := BuildGrid(Image{Digest: d.Bytes()})
	require.NoError(t, err)

	require.Len(t, img.Grid, GridSize*GridSize)
	for i, c := range img.Grid {
		assert.Equal(t, i, c.Index)
	}
	// Row 4 comes from bytes 12..14; byte 15 is unused.
	assert.Equal(t, d[12], img.Grid[20].Value)
	assert.Equal(t, d[14], img.Grid[22].Value)
}

func TestBuildGrid_ShortDigest(t *testing.T) {
	_, err := BuildGrid(Image{Digest: []byte{1, 2}})
	assert.ErrorIs(t, err, ErrInsufficientDigest)
}

func TestBuildGrid_MirrorSymmetry(t *testing.T) {
	inputs := []string{"", "a", "banana", "identicon", "user@example.com", "0123456789"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			img, err := BuildGrid(Image{Digest: hash.Sum(input).Bytes()})
			require.NoError(t, err)
			for r := 0; r < GridSize; r++ {
				assert.Equal(t, img.Grid[5*r].Value, img.Grid[5*r+4].Value, "row %d outer", r)
				assert.Equal(t, img.Grid[5*r+1].Value, img.Grid[5*r+3].Value, "row %d inner", r)
			}
		})
	}
}

func TestBuildGrid_DoesNotMutateInput(t *testing.T) {
	digest := []byte{1, 2, 3, 4, 5, 6}
	in := Image{Digest: digest}
	_, err := BuildGrid(in)
	require.NoError(t, err)
	assert.Nil(t, in.Grid)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, digest)
}

func TestFilterOddSquares(t *testing.T) {
	tests := []struct {
		name string
		grid []Cell
		want []Cell
	}{
		{
			name: "all even",
			grid: []Cell{{10, 0}, {20, 1}, {30, 2}, {20, 3}, {10, 4}},
			want: []Cell{{10, 0}, {20, 1}, {30, 2}, {20, 3}, {10, 4}},
		},
		{
			name: "mixed",
			grid: []Cell{{1, 0}, {2, 1}, {3, 2}},
			want: []Cell{{2, 1}},
		},
		{
			name: "all odd",
			grid: []Cell{{1, 0}, {255, 1}},
			want: []Cell{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Image{Grid: tt.grid}
			got := FilterOddSquares(in)
			assert.Equal(t, tt.want, got.Grid)
			assert.Equal(t, tt.grid, in.Grid)
		})
	}
}

func TestFilterOddSquares_OnlyEvenAndOrdered(t *testing.T) {
	img, err := BuildGrid(Image{Digest: hash.Sum("filter").Bytes()})
	require.NoError(t, err)

	filtered := FilterOddSquares(img)
	last := -1
	for _, c := range filtered.Grid {
		assert.Zero(t, c.Value%2)
		assert.Greater(t, c.Index, last)
		last = c.Index
	}
}

func TestCellRect(t *testing.T) {
	r := CellRect(1)
	assert.Equal(t, Point{X: 50, Y: 0}, r.TopLeft)
	assert.Equal(t, Point{X: 100, Y: 50}, r.BottomRight)

	r = CellRect(24)
	assert.Equal(t, Point{X: 200, Y: 200}, r.TopLeft)
	assert.Equal(t, Point{X: 250, Y: 250}, r.BottomRight)
}

func TestBuildPixelMap(t *testing.T) {
	img := BuildPixelMap(Image{Grid: []Cell{{2, 1}}})
	require.Len(t, img.PixelMap, 1)
	assert.Equal(t, Rect{TopLeft: Point{50, 0}, BottomRight: Point{100, 50}}, img.PixelMap[0])
}

func TestNew_PixelMapCorrespondence(t *testing.T) {
	for _, input := range []string{"", "alice", "bob", "carol", "dave"} {
		img := New(input)

		require.Len(t, img.PixelMap, len(img.Grid))
		for i, c := range img.Grid {
			r := img.PixelMap[i]
			assert.Equal(t, Point{X: 50 * (c.Index % 5), Y: 50 * (c.Index / 5)}, r.TopLeft)
			assert.Equal(t, Point{X: r.TopLeft.X + 50, Y: r.TopLeft.Y + 50}, r.BottomRight)

			assert.GreaterOrEqual(t, r.TopLeft.X, 0)
			assert.GreaterOrEqual(t, r.TopLeft.Y, 0)
			assert.LessOrEqual(t, r.BottomRight.X, CanvasSize)
			assert.LessOrEqual(t, r.BottomRight.Y, CanvasSize)
		}
	}
}

func TestNew_Deterministic(t *testing.T) {
	assert.Equal(t, New("same"), New("same"))
	assert.NotEqual(t, New("one").Digest, New("two").Digest)
}

func TestNew_Color(t *testing.T) {
	img := New("abc")
	// md5("abc") = 900150983cd24fb0...
	assert.Equal(t, Color{R: 0x90, G: 0x01, B: 0x50}, img.Color)
	assert.Len(t, img.Digest, hash.DigestSize)
}

func TestFromDigest_ShortDigest(t *testing.T) {
	_, err := FromDigest([]byte{1})
	assert.ErrorIs(t, err, ErrInsufficientDigest)
}

func TestImage_Filled(t *testing.T) {
	img := Image{Grid: []Cell{{2, 1}, {4, 7}}}
	assert.True(t, img.Filled(1))
	assert.True(t, img.Filled(7))
	assert.False(t, img.Filled(0))
}

func TestCell_RowColumn(t *testing.T) {
	c := Cell{Index: 13}
	assert.Equal(t, 2, c.Row())
	assert.Equal(t, 3, c.Column())
}
