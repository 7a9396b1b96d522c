package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/romac/cargo-stitch/internal/stitch"
	"github.com/romac/cargo-stitch/internal/ui"
	"github.com/romac/cargo-stitch/internal/workspace"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show discovered stitches per package",
		RunE:  runStatus,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type pkgStatus struct {
	Package string   `json:"package"`
	Patches int      `json:"patches"`
	Rules   int      `json:"rules"`
	Staged  bool     `json:"staged"`
	Files   []string `json:"files"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx, err := workspace.Load(root)
	if err != nil {
		return err
	}

	manifest, err := stitch.DiscoverAll(ctx.StitchesDir)
	if err != nil {
		return err
	}

	statuses := make([]pkgStatus, 0, len(manifest))
	for pkg, set := range manifest {
		statuses = append(statuses, collectStatus(ctx, pkg, set))
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Package < statuses[j].Package })

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	if len(statuses) == 0 {
		fmt.Fprintf(out, "No stitches found under %s\n", ctx.StitchesDir)
		return nil
	}

	tbl := ui.NewTable(out, "PACKAGE", "PATCHES", "RULES", "STAGED", "FILES")
	for _, s := range statuses {
		staged := "-"
		if s.Staged {
			staged = "yes"
		}
		tbl.Row(s.Package, s.Patches, s.Rules, staged, strings.Join(s.Files, ", "))
	}
	return tbl.Flush()
}

func collectStatus(ctx *workspace.Context, pkg string, set stitch.Set) pkgStatus {
	s := pkgStatus{Package: pkg}
	for _, st := range set {
		switch st.Kind {
		case stitch.KindPatch:
			s.Patches++
		case stitch.KindRule:
			s.Rules++
		}
		if rel, err := filepath.Rel(ctx.Root, st.Path); err == nil {
			s.Files = append(s.Files, rel)
		} else {
			s.Files = append(s.Files, st.Path)
		}
	}
	if info, err := os.Stat(workspace.StagedDir(ctx.Root, pkg)); err == nil && info.IsDir() {
		s.Staged = true
	}
	return s
}
