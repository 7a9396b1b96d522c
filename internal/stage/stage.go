// Package stage produces isolated, disposable copies of package source
// trees so modifications never touch the original on-disk source.
package stage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Directory names never copied into a staged tree. The staging area lives
// under the workspace's own target directory, so copying target would
// recurse into earlier staged output.
var skipDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"target":       true,
	"node_modules": true,
}

// Stage creates dst as a from-scratch copy of src. Any existing dst is
// removed first; staging is never incremental. No rollback is attempted on
// failure, since the next run overwrites any partial result.
func Stage(src, dst string) error {
	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("removing stale staged copy: %w", err)
	}
	if err := copyTree(src, dst); err != nil {
		return fmt.Errorf("staging %s: %w", src, err)
	}
	return nil
}

func copyTree(src, dst string) error {
	if err := os.MkdirAll(dst, 0755); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			if skipDirs[entry.Name()] {
				continue
			}
			if err := copyTree(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies file contents and permissions. Symlinks are followed, so
// a staged tree is always self-contained.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
