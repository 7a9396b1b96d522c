package engine

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Engine binaries resolved on PATH.
const (
	PatchBin   = "patch"
	AstGrepBin = "sg"
)

// PatchError reports a patch file the diff engine rejected.
type PatchError struct {
	File string
}

func (e *PatchError) Error() string {
	return fmt.Sprintf("failed to apply patch: %s", e.File)
}

// RuleError reports an ast-grep rule file the rewrite engine rejected.
type RuleError struct {
	File string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("failed to apply ast-grep rule: %s", e.File)
}

// MissingToolError reports a required external binary absent from PATH.
type MissingToolError struct {
	Name string
}

func (e *MissingToolError) Error() string {
	return fmt.Sprintf("required tool not found on PATH: %s", e.Name)
}

// ApplyPatch applies a unified diff to the tree rooted at dir. Fuzz is
// disabled: a context mismatch fails the patch instead of fuzzy-matching.
func ApplyPatch(patchFile, dir string) error {
	cmd := exec.Command(PatchBin, "-s", "-F", "0", "-p1", "-i", patchFile, "-d", dir)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if isExitError(err) {
			return &PatchError{File: patchFile}
		}
		return fmt.Errorf("running %s: %w", PatchBin, err)
	}
	return nil
}

// ApplyRule runs a structural rewrite rule against every match under dir.
func ApplyRule(ruleFile, dir string) error {
	cmd := exec.Command(AstGrepBin, "scan", "-r", ruleFile, "--update-all", dir)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if isExitError(err) {
			return &RuleError{File: ruleFile}
		}
		return fmt.Errorf("running %s: %w", AstGrepBin, err)
	}
	return nil
}

// Installed reports whether the named binary is available on PATH.
func Installed(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Preflight verifies that every named binary exists before any staging or
// patching work begins.
func Preflight(names ...string) error {
	for _, name := range names {
		if !Installed(name) {
			return &MissingToolError{Name: name}
		}
	}
	return nil
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
