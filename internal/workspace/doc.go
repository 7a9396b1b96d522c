// Package workspace resolves the cargo workspace root and the directory
// layout cargo-stitch uses inside it: the stitches directory holding
// per-package modifications and the staging area for patched source copies.
package workspace
