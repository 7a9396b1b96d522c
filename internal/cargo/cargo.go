// Package cargo launches the host build tool with the coordination
// environment attached. cargo owns the terminal and all build parallelism;
// this package only starts it and reports how it exited.
package cargo

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
)

// ExitError carries cargo's own non-zero exit code so the process can
// mirror it.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("cargo exited with status %d", e.Code)
}

// Run invokes cargo with args from dir, streaming stdio. extraEnv entries
// are appended to the inherited environment and are visible to every
// compiler invocation cargo spawns.
func Run(dir string, args []string, extraEnv map[string]string) error {
	cmd := exec.Command("cargo", args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	env := os.Environ()
	keys := make([]string, 0, len(extraEnv))
	for k := range extraEnv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, k+"="+extraEnv[k])
	}
	cmd.Env = env

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("launching cargo: %w", err)
	}
	return nil
}
