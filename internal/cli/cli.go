// Package cli provides the command-line interface for identicon.
package cli

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/asteroid-belt/identicon/internal/identicon"
	"github.com/asteroid-belt/identicon/internal/storage"
	"github.com/asteroid-belt/identicon/internal/telemetry"
	"github.com/asteroid-belt/identicon/pkg/version"
)

var telemetryClient telemetry.Client

var commandStartTime time.Time

var rootCmd = &cobra.Command{
	Use:   "identicon",
	Short: "Deterministic identicon generator",
	Long: `Deterministic identicon generator

Turns any string into a 250x250 PNG fingerprint. The same string always
produces the same image; different strings almost always look different.

Configuration is read from IDENTICON_* environment variables
(IDENTICON_OUT_DIR, IDENTICON_JOBS, IDENTICON_BASE_DIR, IDENTICON_LOG_LEVEL,
IDENTICON_HISTORY_ENABLED).

Telemetry:
  Telemetry is anonymous and never includes the strings you generate from.

  Opt-out with:
  	IDENTICON_TELEMETRY_TRACKING_ENABLED=false`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commandStartTime = time.Now()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cmd.Name() != "identicon" {
			durationMs := time.Since(commandStartTime).Milliseconds()
			hasFlags := cmd.Flags().NFlag() > 0
			telemetryClient.TrackCLICommandExecuted(cmd.Name(), hasFlags, durationMs)
		}

		if cmd.Flags().Changed("help") {
			telemetryClient.TrackCLIHelpViewed(cmd.Name(), os.Args[1:])
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(historyCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context, tc telemetry.Client) error {
	if tc == nil {
		tc = telemetry.New(nil)
	}
	telemetryClient = tc

	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)

	if rootCmd.CalledAs() != "" && rootCmd.CalledAs() != "identicon" {
		durationMs := time.Since(commandStartTime).Milliseconds()
		telemetryClient.TrackAppExited("cli", durationMs, 1)
	}

	return err
}

// trackCLIError wraps an error with telemetry tracking.
// Call this before returning errors from CLI commands.
func trackCLIError(cmdName string, err error) error {
	if err == nil {
		return nil
	}
	telemetryClient.TrackCLIError(cmdName, classifyError(err))
	return err
}

// classifyError determines the error type for telemetry.
func classifyError(err error) string {
	switch {
	case errors.Is(err, storage.ErrPermissionDenied):
		return "permission_error"
	case errors.Is(err, storage.ErrDiskFull):
		return "disk_full_error"
	case errors.Is(err, storage.ErrInvalidPath):
		return "invalid_path_error"
	case errors.Is(err, identicon.ErrInsufficientDigest):
		return "digest_error"
	case errors.Is(err, context.Canceled):
		return "canceled"
	}

	errStr := err.Error()
	switch {
	case containsAny(errStr, "config", "configuration"):
		return "config_error"
	case containsAny(errStr, "database", "history"):
		return "database_error"
	case containsAny(errStr, "permission", "access denied"):
		return "permission_error"
	case containsAny(errStr, "invalid", "parse", "format"):
		return "validation_error"
	default:
		return "unknown_error"
	}
}

// containsAny checks if s contains any of the substrings (case-insensitive).
func containsAny(s string, substrs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range substrs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}
