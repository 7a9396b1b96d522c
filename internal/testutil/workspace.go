package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// CreateWorkspace writes a minimal two-crate cargo workspace in a temp
// directory: crate-a exports greeting() returning "hello", crate-b depends
// on it. Returns the workspace root.
func CreateWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "Cargo.toml"), `[workspace]
members = ["crate-a", "crate-b"]
resolver = "2"
`)

	writeFile(t, filepath.Join(root, "crate-a", "Cargo.toml"), `[package]
name = "crate-a"
version = "0.1.0"
edition = "2021"
`)
	writeFile(t, filepath.Join(root, "crate-a", "src", "lib.rs"), `pub fn greeting() -> &'static str {
    "hello"
}
`)

	writeFile(t, filepath.Join(root, "crate-b", "Cargo.toml"), `[package]
name = "crate-b"
version = "0.1.0"
edition = "2021"

[dependencies]
crate-a = { path = "../crate-a" }
`)
	writeFile(t, filepath.Join(root, "crate-b", "src", "lib.rs"), `pub fn message() -> String {
    format!("{} world", crate_a::greeting())
}
`)

	return root
}

// WriteStitch writes a stitch file for pkg under root/stitches/<pkg>/ and
// returns its path.
func WriteStitch(t *testing.T, root, pkg, name, content string) string {
	t.Helper()
	path := filepath.Join(root, "stitches", pkg, name)
	writeFile(t, path, content)
	return path
}

// GreetingPatch returns a unified diff against crate-a's lib.rs replacing
// one greeting string literal with another.
func GreetingPatch(from, to string) string {
	return fmt.Sprintf(`--- a/src/lib.rs
+++ b/src/lib.rs
@@ -1,3 +1,3 @@
 pub fn greeting() -> &'static str {
-    %q
+    %q
 }
`, from, to)
}

// GreetingRule returns an ast-grep rule rewriting one greeting string
// literal to another.
func GreetingRule(from, to string) string {
	return fmt.Sprintf("id: rewrite-greeting\nlanguage: rust\nrule:\n  pattern: '%q'\nfix: '%q'\n", from, to)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
