package telemetry

import (
	"runtime"

	"github.com/asteroid-belt/identicon/pkg/version"
)

// Event names
const (
	EventAppExited           = "app_exited"
	EventCLICommandExecuted  = "cli_command_executed"
	EventCLIErrorOccurred    = "cli_error_occurred"
	EventCLIHelpViewed       = "cli_help_viewed"
	EventIdenticonsGenerated = "identicons_generated"
	EventPreviewViewed       = "preview_viewed"
	EventHistoryViewed       = "history_viewed"
	EventHistoryCleared      = "history_cleared"
)

// baseProperties returns common properties for all events.
func baseProperties() map[string]interface{} {
	return map[string]interface{}{
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"version":    version.Short(),
		"prerelease": version.IsPrerelease(),
		"dev_build":  version.IsDevBuild(),
	}
}

// TrackAppExited tracks application exit.
func (c *posthogClient) TrackAppExited(mode string, sessionDurationMs int64, commandsRun int) {
	props := baseProperties()
	props["mode"] = mode
	props["session_duration_ms"] = sessionDurationMs
	props["commands_run"] = commandsRun
	c.Track(EventAppExited, props)
}

// TrackCLICommandExecuted tracks CLI command execution.
func (c *posthogClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {
	props := baseProperties()
	props["command_name"] = commandName
	props["has_flags"] = hasFlags
	props["execution_duration_ms"] = durationMs
	c.Track(EventCLICommandExecuted, props)
}

// TrackCLIError tracks a classified CLI error. The input string is never sent.
func (c *posthogClient) TrackCLIError(commandName, errorType string) {
	props := baseProperties()
	props["command_name"] = commandName
	props["error_type"] = errorType
	c.Track(EventCLIErrorOccurred, props)
}

// TrackCLIHelpViewed tracks --help usage. Only flag names are sent.
func (c *posthogClient) TrackCLIHelpViewed(commandName string, cliArgs []string) {
	flags := make([]string, 0, len(cliArgs))
	for _, arg := range cliArgs {
		if len(arg) > 1 && arg[0] == '-' {
			flags = append(flags, arg)
		}
	}
	props := baseProperties()
	props["command_name"] = commandName
	props["flags"] = flags
	c.Track(EventCLIHelpViewed, props)
}

// TrackIdenticonsGenerated tracks a completed generate run.
func (c *posthogClient) TrackIdenticonsGenerated(count, jobs int, durationMs int64) {
	props := baseProperties()
	props["count"] = count
	props["jobs"] = jobs
	props["duration_ms"] = durationMs
	c.Track(EventIdenticonsGenerated, props)
}

// TrackPreviewViewed tracks a terminal preview.
func (c *posthogClient) TrackPreviewViewed(filledCells int) {
	props := baseProperties()
	props["filled_cells"] = filledCells
	c.Track(EventPreviewViewed, props)
}

// TrackHistoryViewed tracks the history listing.
func (c *posthogClient) TrackHistoryViewed(entryCount int) {
	props := baseProperties()
	props["entry_count"] = entryCount
	c.Track(EventHistoryViewed, props)
}

// TrackHistoryCleared tracks history deletion.
func (c *posthogClient) TrackHistoryCleared(removed int64) {
	props := baseProperties()
	props["removed"] = removed
	c.Track(EventHistoryCleared, props)
}
