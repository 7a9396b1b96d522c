//go:build unix

package wrapper

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// execCompiler replaces the current process image with the compiler, so a
// successful hand-off never returns. It returns only when the replacement
// itself fails to launch.
func execCompiler(path string, args []string) error {
	resolved, err := exec.LookPath(path)
	if err != nil {
		return fmt.Errorf("locating compiler %s: %w", path, err)
	}
	argv := append([]string{path}, args...)
	if err := syscall.Exec(resolved, argv, os.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	// Unreachable: Exec either replaces the process or errors.
	return nil
}
