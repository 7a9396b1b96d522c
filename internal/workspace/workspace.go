package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// StitchesDirName is the workspace subdirectory scanned for per-package
// modification files.
const StitchesDirName = "stitches"

// stagingSubdir is where staged package copies live under target/.
const stagingSubdir = "cargo-stitch"

// Context holds the resolved paths for a workspace.
type Context struct {
	Root        string
	StitchesDir string
	StagingDir  string
}

// Load resolves the workspace root enclosing dir. The root must contain a
// Cargo.toml; resolution happens before the build tool is launched, so a
// bad invocation directory fails fast.
func Load(dir string) (*Context, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}
	root := FindRoot(abs)
	if _, err := os.Stat(filepath.Join(root, "Cargo.toml")); err != nil {
		return nil, fmt.Errorf("no Cargo.toml found at %s (not inside a cargo workspace?)", root)
	}
	return &Context{
		Root:        root,
		StitchesDir: filepath.Join(root, StitchesDirName),
		StagingDir:  StagingDir(root),
	}, nil
}

// FindRoot walks upward from dir while the parent directory still contains
// a Cargo.toml and returns the highest such directory. For a standalone
// package this is dir itself.
func FindRoot(dir string) string {
	root := dir
	current := dir
	for {
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		if _, err := os.Stat(filepath.Join(parent, "Cargo.toml")); err != nil {
			break
		}
		root = parent
		current = parent
	}
	return root
}

// StagingDir returns the directory holding all staged package copies for a
// workspace root.
func StagingDir(root string) string {
	return filepath.Join(root, "target", stagingSubdir)
}

// StagedDir returns the staged copy location for one package. Staged copies
// are scoped per package name; distinct packages never share one.
func StagedDir(root, pkg string) string {
	return filepath.Join(StagingDir(root), pkg)
}
