package wrapper

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/romac/cargo-stitch/internal/stage"
	"github.com/romac/cargo-stitch/internal/stitch"
	"github.com/romac/cargo-stitch/internal/workspace"
)

// Coordination environment written by the orchestrator and inherited by
// every wrapper invocation.
const (
	// EnvWrap selects wrapper mode at process start.
	EnvWrap = "__CARGO_STITCH_WRAP"
	// EnvWorkspaceRoot is the resolved workspace root path.
	EnvWorkspaceRoot = "CARGO_STITCH_WORKSPACE_ROOT"
	// EnvManifest is the serialized stitch manifest.
	EnvManifest = "CARGO_STITCH_MANIFEST"
)

// MissingEnvError reports coordination or build-tool state absent from the
// environment. It means the wrapper was invoked outside an orchestrated
// build rather than as a child of cargo stitch.
type MissingEnvError struct {
	Name string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("missing environment variable %s (wrapper invoked outside cargo stitch?)", e.Name)
}

// Active reports whether this process was started as a compiler wrapper.
func Active() bool {
	return os.Getenv(EnvWrap) != ""
}

// Run handles one wrapper invocation. argv is the full os.Args: argv[1] is
// the real compiler and the rest are its arguments. On success the current
// process is replaced by the compiler and Run never returns; an error
// return always means the compiler did not run to completion.
func Run(argv []string) error {
	if len(argv) < 2 {
		return fmt.Errorf("wrapper invoked without a compiler argument")
	}
	rustc := argv[1]
	args := argv[2:]

	// A rustc capability probe carries no package context. Nothing to
	// stitch; hand straight off to the compiler.
	pkg := os.Getenv("CARGO_PKG_NAME")
	if pkg == "" {
		return execCompiler(rustc, args)
	}

	srcDir := os.Getenv("CARGO_MANIFEST_DIR")
	if srcDir == "" {
		return &MissingEnvError{Name: "CARGO_MANIFEST_DIR"}
	}
	root := os.Getenv(EnvWorkspaceRoot)
	if root == "" {
		return &MissingEnvError{Name: EnvWorkspaceRoot}
	}
	encoded := os.Getenv(EnvManifest)
	if encoded == "" {
		return &MissingEnvError{Name: EnvManifest}
	}

	manifest, err := stitch.DecodeManifest(encoded)
	if err != nil {
		return err
	}

	set, ok := manifest[pkg]
	if !ok {
		return execCompiler(rustc, args)
	}

	log.Debug("stitching package", "package", pkg, "stitches", len(set))

	rewritten, err := prepare(pkg, srcDir, root, set, args)
	if err != nil {
		return err
	}
	return execCompiler(rustc, rewritten)
}

// prepare stages the package source, applies its stitches in discovery
// order, and rewrites the compiler arguments to target the staged copy.
func prepare(pkg, srcDir, root string, set stitch.Set, args []string) ([]string, error) {
	staged := workspace.StagedDir(root, pkg)
	if err := stage.Stage(srcDir, staged); err != nil {
		return nil, err
	}
	if err := set.Apply(staged); err != nil {
		return nil, err
	}
	return RewriteArgs(args, srcDir, staged, root), nil
}
