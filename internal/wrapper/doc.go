// Package wrapper implements the per-package compiler interception mode.
// During an orchestrated build cargo re-invokes the cargo-stitch binary
// once per compiled workspace package, passing the real rustc as the first
// argument. The wrapper either passes the invocation through untouched or
// stages an isolated copy of the package source, applies its stitches in
// order, rewrites the compiler arguments to point at the staged copy, and
// replaces itself with rustc.
//
// Wrapper processes share nothing with the orchestrator except the
// environment they inherited from it. That state is written once before
// cargo launches and never mutated, so concurrent wrapper invocations for
// distinct packages need no synchronization.
package wrapper
