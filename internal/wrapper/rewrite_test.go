package wrapper

import (
	"reflect"
	"testing"
)

func TestRewriteArgs(t *testing.T) {
	const (
		root   = "/ws"
		src    = "/ws/foo"
		staged = "/ws/target/cargo-stitch/foo"
	)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "absolute path",
			args: []string{"/ws/foo/src/lib.rs"},
			want: []string{"/ws/target/cargo-stitch/foo/src/lib.rs"},
		},
		{
			name: "absolute path embedded in flag",
			args: []string{"--emit=dep-info=/ws/foo/src/lib.rs"},
			want: []string{"--emit=dep-info=/ws/target/cargo-stitch/foo/src/lib.rs"},
		},
		{
			name: "exact absolute dir",
			args: []string{"/ws/foo"},
			want: []string{"/ws/target/cargo-stitch/foo"},
		},
		{
			name: "relative path from workspace root",
			args: []string{"foo/src/lib.rs"},
			want: []string{"/ws/target/cargo-stitch/foo/src/lib.rs"},
		},
		{
			name: "bare package name is not a path",
			args: []string{"foo"},
			want: []string{"foo"},
		},
		{
			name: "prefix-sharing package, relative form",
			args: []string{"foobar/src/lib.rs"},
			want: []string{"foobar/src/lib.rs"},
		},
		{
			name: "prefix-sharing package, absolute form",
			args: []string{"/ws/foobar/src/lib.rs"},
			want: []string{"/ws/foobar/src/lib.rs"},
		},
		{
			name: "unrelated args pass through",
			args: []string{"--edition=2021", "--crate-name", "foo"},
			want: []string{"--edition=2021", "--crate-name", "foo"},
		},
		{
			name: "mixed argument list",
			args: []string{"--crate-name", "foo", "foo/src/lib.rs", "-L", "/ws/target/debug/deps"},
			want: []string{"--crate-name", "foo", "/ws/target/cargo-stitch/foo/src/lib.rs", "-L", "/ws/target/debug/deps"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RewriteArgs(tt.args, src, staged, root)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RewriteArgs(%v)\n got %v\nwant %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestRewriteArgs_reverseDirection(t *testing.T) {
	// The wrapper for foobar must never touch foo's paths.
	got := RewriteArgs(
		[]string{"foo/src/lib.rs", "/ws/foo/src/lib.rs"},
		"/ws/foobar", "/ws/target/cargo-stitch/foobar", "/ws",
	)
	want := []string{"foo/src/lib.rs", "/ws/foo/src/lib.rs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRelSourcePrefix(t *testing.T) {
	tests := []struct {
		src, root, want string
	}{
		{"/ws/foo", "/ws", "foo/"},
		{"/ws/crates/foo", "/ws", "crates/foo/"},
		{"/ws", "/ws", ""},
		{"/elsewhere/foo", "/ws", ""},
	}
	for _, tt := range tests {
		if got := relSourcePrefix(tt.src, tt.root); got != tt.want {
			t.Errorf("relSourcePrefix(%s, %s) = %q, want %q", tt.src, tt.root, got, tt.want)
		}
	}
}
