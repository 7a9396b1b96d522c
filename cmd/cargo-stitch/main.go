package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/romac/cargo-stitch/internal/cargo"
	"github.com/romac/cargo-stitch/internal/wrapper"
)

// Set via -ldflags at build time.
var version = "dev"

func main() {
	log.SetPrefix("cargo-stitch")
	log.SetReportTimestamp(false)
	if os.Getenv("CARGO_STITCH_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	// Wrapper mode: during an orchestrated build, cargo re-invokes this
	// binary once per compiled package. A successful wrapper run execs the
	// real compiler and never returns.
	if wrapper.Active() {
		if err := wrapper.Run(os.Args); err != nil {
			fmt.Fprintln(os.Stderr, "cargo-stitch:", err)
			os.Exit(1)
		}
		return
	}

	if err := newRootCmd().Execute(); err != nil {
		var exitErr *cargo.ExitError
		if errors.As(err, &exitErr) {
			// cargo already reported its own failure; mirror its exit code.
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "cargo-stitch:", err)
		os.Exit(1)
	}
}
