// Package stitch models source modifications and their discovery. A stitch
// is one scheduled change to a package's staged source copy: either a
// unified diff patch or an ast-grep structural rewrite rule. Stitches are
// discovered from stitches/<package>/ directories, ordered by filename, and
// applied strictly in that order.
package stitch
