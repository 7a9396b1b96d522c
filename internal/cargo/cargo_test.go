package cargo

import (
	"errors"
	"testing"
)

func TestExitError_message(t *testing.T) {
	err := &ExitError{Code: 101}
	if got := err.Error(); got != "cargo exited with status 101" {
		t.Errorf("message = %q", got)
	}
}

func TestRun_cargoNotOnPath(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	err := Run(t.TempDir(), []string{"build"}, nil)
	if err == nil {
		t.Fatal("expected launch error when cargo is absent")
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		t.Errorf("launch failure must not be an ExitError: %v", err)
	}
}
