// Package main provides the entry point for the tenets CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/tenets/internal/cli"
	"github.com/mrz1836/tenets/internal/signal"
)

// Set at build time via ldflags.
//
//nolint:gochecknoglobals // build metadata
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	h := signal.NewHandler(context.Background())
	code := cli.Execute(h.Context(), cli.BuildInfo{Version: version, Commit: commit, Date: date})
	if h.WasInterrupted() {
		code = signal.ExitInterrupted
	}
	h.Stop()
	os.Exit(code)
}
