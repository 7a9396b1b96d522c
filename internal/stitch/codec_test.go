package stitch

import (
	"reflect"
	"testing"
)

func TestManifestCodec_roundTrip(t *testing.T) {
	m := Manifest{
		"crate-a": {
			{Kind: KindPatch, Path: "/ws/stitches/crate-a/001-fix.patch"},
			{Kind: KindRule, Path: "/ws/stitches/crate-a/002-rename.yaml"},
		},
		"crate-b": {
			{Kind: KindPatch, Path: "/ws/stitches/crate-b/001.patch"},
		},
	}

	encoded, err := EncodeManifest(m)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodeManifest(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(m, decoded) {
		t.Errorf("round trip mismatch:\nwant %+v\ngot  %+v", m, decoded)
	}
	// Order within a set is load-bearing.
	if decoded["crate-a"][0].Kind != KindPatch || decoded["crate-a"][1].Kind != KindRule {
		t.Error("stitch order not preserved through codec")
	}
}

func TestDecodeManifest_empty(t *testing.T) {
	m, err := DecodeManifest("")
	if err != nil {
		t.Fatal(err)
	}
	if m == nil || len(m) != 0 {
		t.Errorf("decoded = %v, want empty non-nil manifest", m)
	}
}

func TestDecodeManifest_garbage(t *testing.T) {
	if _, err := DecodeManifest("- just\n- a list\n"); err == nil {
		t.Fatal("expected error for malformed manifest")
	}
}
