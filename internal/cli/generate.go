package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/asteroid-belt/identicon/internal/config"
	"github.com/asteroid-belt/identicon/internal/db"
	"github.com/asteroid-belt/identicon/internal/generator"
	"github.com/asteroid-belt/identicon/internal/storage"
)

var (
	generateOutDir    string
	generateJobs      int
	generateNoHistory bool
)

var generateCmd = &cobra.Command{
	Use:     "generate <input>...",
	Aliases: []string{"gen"},
	Short:   "Write the identicon for each input as <input>.png",
	Long: `Generate identicons and write each one to <input>.png.

Files are written to the output directory (the current directory unless
--out-dir or IDENTICON_OUT_DIR says otherwise) and replace existing files
of the same name. Several inputs are generated in parallel.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutDir, "out-dir", "o", "",
		"Directory to write images to (default: IDENTICON_OUT_DIR or current directory)")
	generateCmd.Flags().IntVarP(&generateJobs, "jobs", "j", 0,
		"Maximum identicons generated at once (default: IDENTICON_JOBS)")
	generateCmd.Flags().BoolVar(&generateNoHistory, "no-history", false,
		"Don't record this run in the history database")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return trackCLIError("generate", fmt.Errorf("load config: %w", err))
	}

	outDir := cfg.OutDir
	if cmd.Flags().Changed("out-dir") {
		outDir = generateOutDir
	}
	jobs := cfg.Jobs
	if cmd.Flags().Changed("jobs") {
		if generateJobs < 1 {
			return trackCLIError("generate", fmt.Errorf("invalid --jobs %d: must be at least 1", generateJobs))
		}
		jobs = generateJobs
	}

	var opts []generator.Option
	if cfg.HistoryEnabled && !generateNoHistory {
		database, err := db.New(db.DefaultConfig(config.GetPaths(cfg).Database))
		if err != nil {
			return trackCLIError("generate", fmt.Errorf("open history database: %w", err))
		}
		defer func() { _ = database.Close() }()
		opts = append(opts, generator.WithRecorder(database))
	}

	svc := generator.New(storage.NewFileWriter(outDir), opts...)

	batch := generator.BatchOptions{Jobs: jobs}
	if len(args) > 1 {
		batch.OnProgress = progressPrinter(cmd.ErrOrStderr(), len(args))
	}

	results, err := svc.GenerateAll(cmd.Context(), args, batch)
	if batch.OnProgress != nil {
		ClearLine(cmd.ErrOrStderr())
	}
	if err != nil {
		return trackCLIError("generate", err)
	}

	telemetryClient.TrackIdenticonsGenerated(len(results), jobs, time.Since(start).Milliseconds())

	out := cmd.OutOrStdout()
	for _, res := range results {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(res.Color.Hex())).Render("■")
		_, _ = fmt.Fprintf(out, "%s %s\n", swatch, res.Path)
	}
	return nil
}

// progressPrinter redraws a progress bar on w after every finished identicon.
func progressPrinter(w io.Writer, total int) func(done, total int, res generator.Result) {
	var mu sync.Mutex
	bar := NewProgressBar(total, 20)
	return func(done, _ int, res generator.Result) {
		mu.Lock()
		defer mu.Unlock()
		bar.Update(done, res.Input)
		ClearLine(w)
		_, _ = fmt.Fprint(w, bar.Render())
	}
}
