package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/romac/cargo-stitch/internal/testutil"
)

func TestRunStatus_listsStitches(t *testing.T) {
	ws := testutil.CreateWorkspace(t)
	testutil.WriteStitch(t, ws, "crate-a", "001-fix.patch", testutil.GreetingPatch("hello", "patched"))
	testutil.WriteStitch(t, ws, "crate-a", "002-rename.yaml", "id: r\nrule:\n  pattern: x\n")
	testutil.WriteStitch(t, ws, "crate-b", "001.patch", testutil.GreetingPatch("a", "b"))

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--root", ws, "status"})
	if err := root.Execute(); err != nil {
		t.Fatalf("status failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"crate-a", "crate-b", "PACKAGE", "FILES", "001-fix.patch", "002-rename.yaml"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunStatus_json(t *testing.T) {
	ws := testutil.CreateWorkspace(t)
	testutil.WriteStitch(t, ws, "crate-a", "001-fix.patch", testutil.GreetingPatch("hello", "patched"))

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--root", ws, "status", "--json"})
	if err := root.Execute(); err != nil {
		t.Fatalf("status --json failed: %v", err)
	}

	var statuses []pkgStatus
	if err := json.Unmarshal(buf.Bytes(), &statuses); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(statuses) != 1 {
		t.Fatalf("got %d packages, want 1", len(statuses))
	}
	if statuses[0].Package != "crate-a" || statuses[0].Patches != 1 || statuses[0].Rules != 0 {
		t.Errorf("unexpected status: %+v", statuses[0])
	}
	if statuses[0].Staged {
		t.Error("nothing was built; staged should be false")
	}
}

func TestRunStatus_noStitches(t *testing.T) {
	ws := testutil.CreateWorkspace(t)

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--root", ws, "status"})
	if err := root.Execute(); err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No stitches found") {
		t.Errorf("expected no-stitches message, got:\n%s", buf.String())
	}
}
