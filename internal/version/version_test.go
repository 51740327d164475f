package version

import (
	"strings"
	"testing"
)

func TestStringReflectsBuildVersion(t *testing.T) {
	cleanup := ForTesting("1.2.3-test")
	t.Cleanup(cleanup)

	if got := String(); got != "1.2.3-test" {
		t.Fatalf("expected version 1.2.3-test, got %s", got)
	}
}

func TestMarkers(t *testing.T) {
	cleanup := ForTesting("0.3.0")
	t.Cleanup(cleanup)

	if got := Marker(); got != "tether/0.3.0" {
		t.Fatalf("Marker() = %q, want tether/0.3.0", got)
	}
	attach := AttachMarker()
	if attach != "tether/0.3.0+attach" {
		t.Fatalf("AttachMarker() = %q, want tether/0.3.0+attach", attach)
	}
	if !IsAttachMarker(attach) {
		t.Fatalf("IsAttachMarker(%q) = false, want true", attach)
	}
	if IsAttachMarker(Marker()) {
		t.Fatalf("IsAttachMarker(%q) = true for plain marker", Marker())
	}
}

func TestParseMarker(t *testing.T) {
	tests := []struct {
		marker     string
		wantVer    string
		wantAttach bool
		wantOK     bool
	}{
		{"tether/0.3.0", "0.3.0", false, true},
		{"tether/0.3.0+attach", "0.3.0", true, true},
		{"tether/dev+attach", "dev", true, true},
		{"nupi/0.3.0", "", false, false},
		{"", "", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.marker, func(t *testing.T) {
			ver, attach, ok := ParseMarker(tt.marker)
			if ver != tt.wantVer || attach != tt.wantAttach || ok != tt.wantOK {
				t.Errorf("ParseMarker(%q) = (%q, %v, %v), want (%q, %v, %v)",
					tt.marker, ver, attach, ok, tt.wantVer, tt.wantAttach, tt.wantOK)
			}
		})
	}
}

func TestCheckVersionMismatch(t *testing.T) {
	tests := map[string]struct {
		local, peer string
		wantWarning bool
	}{
		"match":               {"1.4.2", "1.4.2", false},
		"mismatch":            {"1.4.2", "1.3.0", true},
		"dev peer skipped":    {"1.4.2", "dev", false},
		"dev local skipped":   {"dev", "1.4.2", false},
		"empty peer skipped":  {"1.4.2", "", false},
		"empty local skipped": {"", "1.4.2", false},
		"describe stripped":   {"1.4.2-3-g9f2c1ab", "1.4.2", false},
		"describe mismatch":   {"1.4.2-3-g9f2c1ab", "1.3.0", true},
		"describe both sides": {"1.4.2-3-g9f2c1ab", "v1.4.2-7-gdeadbee", false},
		"v prefix equal":      {"v1.4.2", "1.4.2", false},
		"v prefix mismatch":   {"v1.4.2", "v1.3.0", true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(ForTesting(tt.local))

			got := CheckVersionMismatch(tt.peer)
			if (got != "") != tt.wantWarning {
				t.Fatalf("CheckVersionMismatch(%q) with local %q = %q, wantWarning=%v",
					tt.peer, tt.local, got, tt.wantWarning)
			}
			// Assert on literal substrings rather than FormatVersion output so a
			// formatting regression cannot hide behind a tautology.
			if tt.wantWarning && (!strings.HasPrefix(got, "WARNING: tether ") || !strings.Contains(got, "version mismatch")) {
				t.Errorf("warning %q missing expected wording", got)
			}
		})
	}
}

func TestNormalizeAndFormat(t *testing.T) {
	norm := map[string]string{
		"v1.4.2":              "1.4.2",
		"1.4.2":               "1.4.2",
		"1.4.2-3-g9f2c1ab":    "1.4.2",
		"v1.4.2-7-gdeadbee":   "1.4.2",
		"1.4.2-rc1":           "1.4.2-rc1",
		"1.4.2-rc1-3-g9f2c1a": "1.4.2-rc1",
		"dev":                 "dev",
		"":                    "",
		"9f2c1ab":             "9f2c1ab",
	}
	for input, want := range norm {
		if got := normalizeVersion(input); got != want {
			t.Errorf("normalizeVersion(%q) = %q, want %q", input, got, want)
		}
	}

	format := map[string]string{
		"1.4.2":     "v1.4.2",
		"v1.4.2":    "v1.4.2",
		"1.4.2-rc1": "v1.4.2-rc1",
		"dev":       "dev",
		"":          "",
	}
	for input, want := range format {
		if got := FormatVersion(input); got != want {
			t.Errorf("FormatVersion(%q) = %q, want %q", input, got, want)
		}
	}
}
