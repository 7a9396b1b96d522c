package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/romac/cargo-stitch/internal/cargo"
	"github.com/romac/cargo-stitch/internal/engine"
	"github.com/romac/cargo-stitch/internal/stitch"
	"github.com/romac/cargo-stitch/internal/workspace"
	"github.com/romac/cargo-stitch/internal/wrapper"
)

func newStitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stitch <cargo command...>",
		Short: "Run a cargo command with workspace stitches applied",
		Long: `Discovers modification files under stitches/<package>/, registers this
binary as cargo's workspace compiler wrapper, and runs the given cargo
command. Packages with stitches are compiled from a patched staging copy;
their on-disk source is never touched.`,
		DisableFlagParsing: true,
		RunE:               runStitch,
	}
}

func runStitch(cmd *cobra.Command, args []string) error {
	// Strip a leading "--" so both forms work: "cargo stitch build" and
	// "cargo-stitch stitch -- build".
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: cargo stitch <cargo command...>")
	}

	// The workspace is resolved from the invocation directory, exactly as
	// cargo itself resolves it. The --root flag is not available here:
	// flag parsing is disabled so every argument reaches cargo verbatim.
	ctx, err := workspace.Load(".")
	if err != nil {
		return err
	}

	manifest, err := stitch.DiscoverAll(ctx.StitchesDir)
	if err != nil {
		return err
	}

	// A malformed stitch file fails the build here, before cargo ever
	// launches, rather than mid-build inside a wrapper process.
	pkgs := make([]string, 0, len(manifest))
	for pkg := range manifest {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)
	for _, pkg := range pkgs {
		for _, st := range manifest[pkg] {
			if err := st.Validate(); err != nil {
				return err
			}
		}
	}

	// External tools are checked before cargo launches, but only the
	// engines the discovered stitches actually need.
	if err := engine.Preflight(append(manifest.Engines(), "cargo")...); err != nil {
		return err
	}

	encoded, err := stitch.EncodeManifest(manifest)
	if err != nil {
		return err
	}

	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locating own executable: %w", err)
	}

	log.Debug("orchestrating build", "root", ctx.Root, "packages", len(manifest))

	return cargo.Run(".", args, map[string]string{
		"RUSTC_WORKSPACE_WRAPPER": self,
		wrapper.EnvWrap:           "1",
		wrapper.EnvWorkspaceRoot:  ctx.Root,
		wrapper.EnvManifest:       encoded,
	})
}
