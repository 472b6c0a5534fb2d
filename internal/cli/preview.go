package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/identicon/internal/hash"
	"github.com/asteroid-belt/identicon/internal/identicon"
	"github.com/asteroid-belt/identicon/internal/render"
)

var previewCmd = &cobra.Command{
	Use:   "preview <input>",
	Short: "Show the identicon for an input in the terminal",
	Long: `Draw the identicon for an input in the terminal without writing a file.

Each filled cell is drawn in the identicon's color.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	img := identicon.New(args[0])

	telemetryClient.TrackPreviewViewed(len(img.Grid))

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, render.Preview(img))
	_, _ = fmt.Fprintf(out, "Digest: %s\n", hash.Sum(args[0]).Hex())
	_, _ = fmt.Fprintf(out, "Color:  %s\n", img.Color.Hex())
	_, _ = fmt.Fprintf(out, "Filled: %d/%d\n", len(img.Grid), identicon.GridSize*identicon.GridSize)
	return nil
}
