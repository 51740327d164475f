package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGetTetherHome(t *testing.T) {
	os.Setenv("TETHER_HOME", "/tmp/should-be-ignored")
	defer os.Unsetenv("TETHER_HOME")

	home := GetTetherHome()

	userHome, _ := os.UserHomeDir()
	expected := filepath.Join(userHome, ".tether")

	if home != expected {
		t.Errorf("GetTetherHome() = %s; want %s (TETHER_HOME should be ignored)", home, expected)
	}
}

func TestGetPaths(t *testing.T) {
	paths := GetPaths()

	if !strings.Contains(paths.ConfigDB, ".tether/config.db") {
		t.Errorf("ConfigDB path incorrect: %s", paths.ConfigDB)
	}
	if !strings.Contains(paths.Descriptor, ".tether/agent.json") {
		t.Errorf("Descriptor path incorrect: %s", paths.Descriptor)
	}
	if !strings.Contains(paths.Socket, ".tether/agent.sock") {
		t.Errorf("Socket path incorrect: %s", paths.Socket)
	}
	if !strings.Contains(paths.TokenFile, ".tether/token") {
		t.Errorf("TokenFile path incorrect: %s", paths.TokenFile)
	}
}

func TestDescriptorCandidates(t *testing.T) {
	without := DescriptorCandidates("")
	if len(without) != 2 {
		t.Fatalf("expected 2 candidates without override, got %d", len(without))
	}
	if !strings.Contains(without[0], ".tether/agent.json") {
		t.Errorf("first candidate should be user descriptor: %s", without[0])
	}
	if without[1] != "/run/tether/agent.json" {
		t.Errorf("second candidate should be system descriptor: %s", without[1])
	}

	with := DescriptorCandidates("/custom/agent.json")
	if len(with) != 3 {
		t.Fatalf("expected 3 candidates with override, got %d", len(with))
	}
	if with[0] != "/custom/agent.json" {
		t.Errorf("override should be searched first: %s", with[0])
	}
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{"~/test", "/test"},
		{"~", ""},
		{"/absolute/path", "/absolute/path"},
		{"", ""},
	}

	for _, tt := range tests {
		result := ExpandPath(tt.input)
		if tt.input == "~" {
			home, _ := os.UserHomeDir()
			if result != home {
				t.Errorf("ExpandPath(%q) = %q; want home directory", tt.input, result)
			}
		} else if tt.input != "" && !strings.Contains(result, tt.contains) {
			t.Errorf("ExpandPath(%q) = %q; should contain %q", tt.input, result, tt.contains)
		}
	}
}

func TestSettingsApplyAndReset(t *testing.T) {
	s := Default()

	s.Apply(Overrides{
		AgentID: "agent-7",
		Address: "127.0.0.1:9000",
		Token:   "secret",
	})

	if s.AgentID != "agent-7" || s.Address != "127.0.0.1:9000" || s.Token != "secret" {
		t.Errorf("overrides not applied: %+v", s)
	}
	if s.DialTimeout != Default().DialTimeout {
		t.Error("untouched fields should keep defaults")
	}

	s.Apply(Overrides{})
	if s.AgentID != "agent-7" {
		t.Error("zero-valued overrides must not clear existing values")
	}

	s.Reset()
	if s.AgentID != "" || s.Token != "" {
		t.Errorf("Reset should restore defaults: %+v", s)
	}
	if s.PollIdleThreshold != Default().PollIdleThreshold {
		t.Error("Reset should restore default thresholds")
	}
}

func TestSettingsNormalize(t *testing.T) {
	s := &Settings{Address: "127.0.0.1:9000", DialTimeout: time.Minute}
	s.Normalize()

	if s.DialTimeout != time.Minute {
		t.Error("Normalize must keep explicit values")
	}
	if s.Address != "127.0.0.1:9000" {
		t.Error("Normalize must not touch addressing fields")
	}
	d := Default()
	if s.HealthTimeout != d.HealthTimeout ||
		s.PollFastInterval != d.PollFastInterval ||
		s.PollSlowInterval != d.PollSlowInterval ||
		s.PollIdleThreshold != d.PollIdleThreshold ||
		s.KeepaliveInterval != d.KeepaliveInterval ||
		s.MaxRecvMessageBytes != d.MaxRecvMessageBytes ||
		s.MaxSendMessageBytes != d.MaxSendMessageBytes {
		t.Errorf("Normalize should fill zero fields from defaults: %+v", s)
	}
}
