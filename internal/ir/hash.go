package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainLaunch prefixes launch hashes. The version suffix leaves room
// for changing the canonical form.
const DomainLaunch = "launchdims/launch/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// LaunchHash computes the content identity of l from its name, kernel and
// the per-axis values and classification of every level. ID and Hash are
// not part of the input.
func LaunchHash(l *Launch) (string, error) {
	canonical, err := MarshalCanonical(canonicalLaunch(l))
	if err != nil {
		return "", fmt.Errorf("LaunchHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainLaunch, canonical), nil
}

func canonicalLaunch(l *Launch) map[string]any {
	levels := make([]any, 0, 3)
	for _, le := range l.Levels() {
		e := le.Extents
		levels = append(levels, map[string]any{
			"level":  le.Level.String(),
			"x":      e.X().Value(),
			"y":      e.Y().Value(),
			"z":      e.Z().Value(),
			"static": []any{e.X().IsStatic(), e.Y().IsStatic(), e.Z().IsStatic()},
		})
	}

	return map[string]any{
		"ir_version": IRVersion,
		"name":       l.Name,
		"kernel":     l.Kernel,
		"levels":     levels,
	}
}
