package stitch

import (
	"fmt"
	"path/filepath"

	"github.com/romac/cargo-stitch/internal/engine"
)

// Kind identifies which engine applies a stitch.
type Kind string

const (
	// KindPatch is a unified diff applied with patch(1).
	KindPatch Kind = "patch"
	// KindRule is an ast-grep structural rewrite rule.
	KindRule Kind = "rule"
)

// Stitch is one scheduled source modification. The two kinds differ only in
// backing engine and share the ordered-application contract, so they are a
// single kind-tagged value dispatched in Apply rather than an interface.
type Stitch struct {
	Kind Kind   `yaml:"kind"`
	Path string `yaml:"path"`
}

// FromPath classifies a file into a Stitch by extension: .patch is a diff
// patch, .yaml/.yml is a rewrite rule. Any other extension is not a
// modification and reports ok=false.
func FromPath(path string) (Stitch, bool) {
	switch filepath.Ext(path) {
	case ".patch":
		return Stitch{Kind: KindPatch, Path: path}, true
	case ".yaml", ".yml":
		return Stitch{Kind: KindRule, Path: path}, true
	default:
		return Stitch{}, false
	}
}

// Apply runs this stitch's engine against the tree rooted at dir.
func (s Stitch) Apply(dir string) error {
	switch s.Kind {
	case KindPatch:
		return engine.ApplyPatch(s.Path, dir)
	case KindRule:
		return engine.ApplyRule(s.Path, dir)
	default:
		return fmt.Errorf("unknown stitch kind: %q", s.Kind)
	}
}

// Set holds the stitches for one package in discovery (filename) order.
type Set []Stitch

// Apply applies every stitch in order, stopping at the first failure.
// Order is significant: stitches of different kinds may target the same
// file and are not commutative.
func (s Set) Apply(dir string) error {
	for _, st := range s {
		if err := st.Apply(dir); err != nil {
			return err
		}
	}
	return nil
}

// Manifest maps package names to their ordered stitch sets. A package with
// no recognized stitch files has no entry at all.
type Manifest map[string]Set

// Engines returns the engine binaries needed to apply every stitch in the
// manifest. A workspace with only patches does not require ast-grep.
func (m Manifest) Engines() []string {
	var needPatch, needRule bool
	for _, set := range m {
		for _, st := range set {
			switch st.Kind {
			case KindPatch:
				needPatch = true
			case KindRule:
				needRule = true
			}
		}
	}
	var names []string
	if needPatch {
		names = append(names, engine.PatchBin)
	}
	if needRule {
		names = append(names, engine.AstGrepBin)
	}
	return names
}
