package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/identicon/internal/hash"
	"github.com/asteroid-belt/identicon/internal/identicon"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input>",
	Short: "Print every pipeline stage for an input",
	Long: `Print the digest, color, full grid, kept cells and pixel rectangles
computed for an input. Nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	input := args[0]
	digest := hash.Sum(input)

	img, err := identicon.PickColor(identicon.Image{Digest: digest.Bytes()})
	if err != nil {
		return trackCLIError("inspect", err)
	}
	img, err = identicon.BuildGrid(img)
	if err != nil {
		return trackCLIError("inspect", err)
	}
	full := img.Grid
	img = identicon.BuildPixelMap(identicon.FilterOddSquares(img))

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Input:  %q\n", input)
	_, _ = fmt.Fprintf(out, "Digest: %s\n", digest.Hex())
	_, _ = fmt.Fprintf(out, "Color:  %s (r=%d g=%d b=%d)\n\n", img.Color.Hex(), img.Color.R, img.Color.G, img.Color.B)

	_, _ = fmt.Fprintln(out, "Grid (value, * = kept):")
	for row := 0; row < identicon.GridSize; row++ {
		cells := make([]string, identicon.GridSize)
		for col := range cells {
			c := full[row*identicon.GridSize+col]
			mark := " "
			if c.Value%2 == 0 {
				mark = "*"
			}
			cells[col] = fmt.Sprintf("%3d%s", c.Value, mark)
		}
		_, _ = fmt.Fprintf(out, "  %s\n", strings.Join(cells, " "))
	}

	_, _ = fmt.Fprintf(out, "\nRectangles (%d):\n", len(img.PixelMap))
	for i, r := range img.PixelMap {
		_, _ = fmt.Fprintf(out, "  cell %2d  (%3d,%3d) -> (%3d,%3d)\n",
			img.Grid[i].Index, r.TopLeft.X, r.TopLeft.Y, r.BottomRight.X, r.BottomRight.Y)
	}
	return nil
}
