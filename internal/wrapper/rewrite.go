package wrapper

import (
	"path/filepath"
	"strings"
)

// RewriteArgs returns args with every reference to the original package
// source directory redirected to the staged copy. Each argument is
// rewritten independently; arguments matching neither form pass through
// unchanged.
//
// Two forms are tried per argument, in order: the absolute original path,
// then the source directory expressed relative to the workspace root. Both
// forms only match on a path-component boundary, so a package whose name is
// a proper prefix of another's ("foo" vs "foobar") can never be rewritten
// by the wrong rule, and a bare package-name argument is left alone.
func RewriteArgs(args []string, srcDir, stagedDir, root string) []string {
	relPrefix := relSourcePrefix(srcDir, root)

	rewritten := make([]string, len(args))
	for i, arg := range args {
		if out, changed := replaceBounded(arg, srcDir, stagedDir); changed {
			rewritten[i] = out
			continue
		}
		if relPrefix != "" && strings.HasPrefix(arg, relPrefix) {
			rewritten[i] = stagedDir + string(filepath.Separator) + arg[len(relPrefix):]
			continue
		}
		rewritten[i] = arg
	}
	return rewritten
}

// replaceBounded replaces every occurrence of old in arg with new, but only
// where the occurrence ends the argument or is followed by a path
// separator.
func replaceBounded(arg, old, new string) (string, bool) {
	var b strings.Builder
	changed := false
	for i := 0; i < len(arg); {
		j := strings.Index(arg[i:], old)
		if j < 0 {
			b.WriteString(arg[i:])
			break
		}
		j += i
		end := j + len(old)
		if end == len(arg) || arg[end] == filepath.Separator {
			b.WriteString(arg[i:j])
			b.WriteString(new)
			changed = true
			i = end
		} else {
			b.WriteString(arg[i : j+1])
			i = j + 1
		}
	}
	return b.String(), changed
}

// relSourcePrefix returns the source directory relative to the workspace
// root with a mandatory trailing separator, or "" when the source is the
// root itself or lies outside it.
func relSourcePrefix(srcDir, root string) string {
	rel, err := filepath.Rel(root, srcDir)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	return rel + string(filepath.Separator)
}
