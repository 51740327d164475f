package version

import (
	"fmt"
	"regexp"
	"strings"
)

var version = "dev"

// Protocol is the descriptor/registration protocol generation. Agents
// advertising a different generation in their discovery descriptor are
// rejected before dialing.
const Protocol = 1

// attachSuffix marks a registration as a subscription to an existing
// session rather than the creation of a new one.
const attachSuffix = "+attach"

// String returns the build version for the current binary.
func String() string {
	return version
}

// ForTesting overrides the version string and returns a cleanup function
// that restores the original value. Must not be called concurrently.
func ForTesting(v string) func() {
	original := version
	version = v
	return func() { version = original }
}

// Marker returns the version marker sent in stream registration messages.
func Marker() string {
	return "tether/" + version
}

// AttachMarker returns the registration marker for duplex attach streams.
// The suffix tells the agent this connection subscribes to an existing
// session instead of registering a new one.
func AttachMarker() string {
	return Marker() + attachSuffix
}

// IsAttachMarker reports whether a registration version marker carries the
// attach suffix.
func IsAttachMarker(marker string) bool {
	return strings.HasSuffix(marker, attachSuffix)
}

// ParseMarker splits a registration version marker into its bare version
// and whether it carries the attach suffix. ok is false when the marker
// does not start with the product prefix.
func ParseMarker(marker string) (ver string, attach, ok bool) {
	rest, found := strings.CutPrefix(marker, "tether/")
	if !found {
		return "", false, false
	}
	return strings.TrimSuffix(rest, attachSuffix), strings.HasSuffix(rest, attachSuffix), true
}

// gitDescribeSuffix matches the trailing "-N-gHASH" added by git describe
// (e.g., "0.3.0-5-gabcdef" → strip "-5-gabcdef").
var gitDescribeSuffix = regexp.MustCompile(`-\d+-g[0-9a-f]+$`)

// normalizeVersion strips the "v" prefix and any git-describe suffix so that
// versions like "v0.3.0-5-gabcdef" and "0.3.0" compare as equal.
func normalizeVersion(v string) string {
	v = strings.TrimPrefix(v, "v")
	return gitDescribeSuffix.ReplaceAllString(v, "")
}

// FormatVersion returns a display-friendly version string. For normal versions
// it ensures a "v" prefix (e.g. "0.3.0" → "v0.3.0"). Special values like
// "dev" and empty strings are returned as-is.
func FormatVersion(v string) string {
	if v == "" || v == "dev" {
		return v
	}
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

// CheckVersionMismatch compares the local build version with a peer's
// reported version (the agent's, or a client's registration marker). It
// returns a human-readable warning string when the versions differ, or an
// empty string when they match or when either side reports "dev"
// (development builds are expected to be inconsistent).
func CheckVersionMismatch(peerVersion string) string {
	if peerVersion == "" || version == "" {
		return ""
	}
	local := version
	if local == "dev" || peerVersion == "dev" {
		return ""
	}
	if normalizeVersion(local) == normalizeVersion(peerVersion) {
		return ""
	}
	return fmt.Sprintf(
		"WARNING: tether %s detected a version mismatch with peer %s, consider upgrading",
		FormatVersion(local), FormatVersion(peerVersion),
	)
}
