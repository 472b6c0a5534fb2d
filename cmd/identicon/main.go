// Identicon - deterministic identicon generator
//
// Turns any string into a 250x250 PNG fingerprint written to <input>.png.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/asteroid-belt/identicon/internal/cli"
	"github.com/asteroid-belt/identicon/internal/config"
	"github.com/asteroid-belt/identicon/internal/db"
	"github.com/asteroid-belt/identicon/internal/log"
	"github.com/asteroid-belt/identicon/internal/telemetry"
	"github.com/asteroid-belt/identicon/pkg/version"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	paths := config.GetPaths(cfg)
	if err := log.Init(paths.Logs, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	}
	defer func() { _ = log.Close() }()
	log.Infof("starting %s", version.Info())

	provider, closeProvider := trackingIDProvider(paths.Database)
	defer closeProvider()

	telemetryClient := telemetry.New(provider)
	defer telemetryClient.Close()

	if err := cli.Execute(ctx, telemetryClient); err != nil {
		// fang already printed the error
		log.S().Warnw("command failed", "error", err)
		os.Exit(1)
	}
}

// trackingIDProvider opens the history database for its persistent tracking
// ID. Nothing is opened while telemetry is disabled.
func trackingIDProvider(dbPath string) (telemetry.TrackingIDProvider, func()) {
	if !telemetry.IsEnabled() {
		return nil, func() {}
	}

	database, err := db.New(db.DefaultConfig(dbPath))
	if err != nil {
		log.Warnf("open database: %v", err)
		return nil, func() {}
	}
	return database, func() { _ = database.Close() }
}
