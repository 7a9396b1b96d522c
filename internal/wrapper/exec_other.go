//go:build !unix

package wrapper

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// execCompiler runs the compiler synchronously and exits with its status,
// mirroring the process-replacement semantics of the unix build. It
// returns only when the compiler fails to launch.
func execCompiler(path string, args []string) error {
	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return fmt.Errorf("launching compiler %s: %w", path, err)
	}
	os.Exit(0)
	return nil
}
