package main

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/romac/cargo-stitch/internal/engine"
	"github.com/romac/cargo-stitch/internal/stitch"
	"github.com/romac/cargo-stitch/internal/ui"
	"github.com/romac/cargo-stitch/internal/workspace"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment and stitch files for common issues",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	ok := true

	// cargo is always required; the engines only when stitches need them,
	// so a missing engine for an unused kind is a warning, not a failure.
	required := map[string]bool{"cargo": true}

	root, _ := cmd.Flags().GetString("root")
	ctx, loadErr := workspace.Load(root)

	var manifest stitch.Manifest
	if loadErr == nil {
		var err error
		manifest, err = stitch.DiscoverAll(ctx.StitchesDir)
		if err != nil {
			return err
		}
		for _, name := range manifest.Engines() {
			required[name] = true
		}
	}

	for _, tool := range []string{"cargo", engine.PatchBin, engine.AstGrepBin} {
		fmt.Fprintf(out, "Checking %s... ", tool)
		path, err := exec.LookPath(tool)
		switch {
		case err == nil:
			fmt.Fprintln(out, ui.Pass("found"), ui.Dim(path))
		case required[tool]:
			fmt.Fprintln(out, ui.Fail("NOT FOUND"))
			ok = false
		default:
			fmt.Fprintln(out, ui.Dim("not found (not needed by current stitches)"))
		}
	}

	if loadErr != nil {
		fmt.Fprintf(out, "Workspace: %s\n", ui.Fail(loadErr.Error()))
		return fmt.Errorf("doctor checks failed")
	}

	fmt.Fprintf(out, "Workspace: %s (%d packages with stitches)\n", ctx.Root, len(manifest))

	pkgs := make([]string, 0, len(manifest))
	for pkg := range manifest {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)

	for _, pkg := range pkgs {
		for _, st := range manifest[pkg] {
			rel := st.Path
			if r, err := filepath.Rel(ctx.Root, st.Path); err == nil {
				rel = r
			}
			fmt.Fprintf(out, "  Checking %s (%s)... ", rel, pkg)
			if err := st.Validate(); err != nil {
				fmt.Fprintln(out, ui.Fail(err.Error()))
				ok = false
			} else {
				fmt.Fprintln(out, ui.Pass("ok"))
			}
		}
	}

	if ok {
		fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	return fmt.Errorf("doctor checks failed")
}
