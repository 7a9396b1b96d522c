package stitch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DiscoverAll scans stitchesDir and returns the full manifest. Each
// immediate subdirectory names a package; its files are classified by
// extension in lexicographic filename order. Entries that do not classify
// are skipped without error. A missing stitchesDir yields an empty
// manifest; any other filesystem error aborts discovery, never returning a
// partial manifest.
func DiscoverAll(stitchesDir string) (Manifest, error) {
	manifest := Manifest{}

	entries, err := os.ReadDir(stitchesDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return manifest, nil
		}
		return nil, fmt.Errorf("reading stitches directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pkg := entry.Name()
		pkgDir := filepath.Join(stitchesDir, pkg)

		files, err := os.ReadDir(pkgDir)
		if err != nil {
			return nil, fmt.Errorf("reading stitches for %s: %w", pkg, err)
		}

		var set Set
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			if st, ok := FromPath(filepath.Join(pkgDir, f.Name())); ok {
				set = append(set, st)
			}
		}
		if len(set) > 0 {
			manifest[pkg] = set
		}
	}

	return manifest, nil
}
