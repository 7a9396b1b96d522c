package stitch

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// The manifest crosses the orchestrator/wrapper process boundary through a
// single inherited environment variable. It is serialized once, before the
// build tool launches, and treated as read-only by every wrapper process.

// EncodeManifest serializes a manifest for the coordination environment.
func EncodeManifest(m Manifest) (string, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encoding stitch manifest: %w", err)
	}
	return string(data), nil
}

// DecodeManifest parses a manifest from its environment form.
func DecodeManifest(s string) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal([]byte(s), &m); err != nil {
		return nil, fmt.Errorf("decoding stitch manifest: %w", err)
	}
	if m == nil {
		m = Manifest{}
	}
	return m, nil
}
