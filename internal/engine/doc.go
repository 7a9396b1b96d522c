// Package engine wraps the two external modification engines: patch(1) for
// unified diffs and ast-grep for structural rewrite rules. Only the engine
// exit status is used for control flow; any diagnostic output streams
// through to the user untouched.
package engine
