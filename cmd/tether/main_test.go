package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/tether-ai/tether/internal/config"
)

// newSettingsTestCommand mirrors the root command's persistent flags so
// settingsFromCommand can be exercised without the package globals.
func newSettingsTestCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	flags := cmd.Flags()
	flags.Bool("json", false, "")
	flags.String("address", "", "")
	flags.String("token", "", "")
	flags.String("agent-id", "", "")
	flags.Bool("insecure", false, "")
	flags.String("ca-cert", "", "")
	flags.String("server-name", "", "")
	flags.String("descriptor", "", "")
	return cmd
}

func TestSettingsFromCommandDefaults(t *testing.T) {
	cmd := newSettingsTestCommand()

	settings, err := settingsFromCommand(cmd, nil)
	if err != nil {
		t.Fatalf("settingsFromCommand: %v", err)
	}
	if settings.Address != "" || settings.Token != "" || settings.AgentID != "" || settings.DescriptorPath != "" {
		t.Fatalf("expected empty connection settings, got %+v", settings)
	}
	if settings.TLS != nil {
		t.Fatal("expected nil TLS config without TLS flags")
	}
	if settings.DialTimeout != config.Default().DialTimeout {
		t.Fatalf("expected default dial timeout, got %v", settings.DialTimeout)
	}
}

func TestSettingsFromCommandStoredValues(t *testing.T) {
	cmd := newSettingsTestCommand()
	stored := map[string]string{
		"address":    "agent.example.com:443",
		"token":      "stored-token",
		"agent-id":   "edge-1",
		"descriptor": "/tmp/agent.json",
	}

	settings, err := settingsFromCommand(cmd, stored)
	if err != nil {
		t.Fatalf("settingsFromCommand: %v", err)
	}
	if settings.Address != "agent.example.com:443" {
		t.Fatalf("address = %q", settings.Address)
	}
	if settings.Token != "stored-token" || settings.AgentID != "edge-1" {
		t.Fatalf("unexpected credentials: %+v", settings)
	}
	if settings.DescriptorPath != "/tmp/agent.json" {
		t.Fatalf("descriptor = %q", settings.DescriptorPath)
	}
}

func TestSettingsFromCommandFlagsWin(t *testing.T) {
	cmd := newSettingsTestCommand()
	if err := cmd.Flags().Set("address", "10.0.0.5:7777"); err != nil {
		t.Fatalf("set --address: %v", err)
	}
	if err := cmd.Flags().Set("token", "flag-token"); err != nil {
		t.Fatalf("set --token: %v", err)
	}
	stored := map[string]string{
		"address":  "stored.example.com:1",
		"token":    "stored-token",
		"agent-id": "stored-agent",
	}

	settings, err := settingsFromCommand(cmd, stored)
	if err != nil {
		t.Fatalf("settingsFromCommand: %v", err)
	}
	if settings.Address != "10.0.0.5:7777" || settings.Token != "flag-token" {
		t.Fatalf("flags should win over stored values, got %+v", settings)
	}
	if settings.AgentID != "stored-agent" {
		t.Fatalf("unset flag should keep stored value, got %q", settings.AgentID)
	}
}

func TestSettingsFromCommandTLSFlags(t *testing.T) {
	t.Run("insecure", func(t *testing.T) {
		cmd := newSettingsTestCommand()
		if err := cmd.Flags().Set("insecure", "true"); err != nil {
			t.Fatalf("set --insecure: %v", err)
		}

		settings, err := settingsFromCommand(cmd, nil)
		if err != nil {
			t.Fatalf("settingsFromCommand: %v", err)
		}
		if settings.TLS == nil || !settings.TLS.InsecureSkipVerify {
			t.Fatalf("expected insecure TLS config, got %+v", settings.TLS)
		}
	})

	t.Run("server name", func(t *testing.T) {
		cmd := newSettingsTestCommand()
		if err := cmd.Flags().Set("server-name", "edge.internal"); err != nil {
			t.Fatalf("set --server-name: %v", err)
		}

		settings, err := settingsFromCommand(cmd, nil)
		if err != nil {
			t.Fatalf("settingsFromCommand: %v", err)
		}
		if settings.TLS == nil || settings.TLS.ServerName != "edge.internal" {
			t.Fatalf("expected TLS server name, got %+v", settings.TLS)
		}
	})

	t.Run("missing ca cert", func(t *testing.T) {
		cmd := newSettingsTestCommand()
		if err := cmd.Flags().Set("ca-cert", filepath.Join(t.TempDir(), "missing.pem")); err != nil {
			t.Fatalf("set --ca-cert: %v", err)
		}

		if _, err := settingsFromCommand(cmd, nil); err == nil {
			t.Fatal("expected error for unreadable CA cert")
		}
	})
}

func TestOutputFormatterRender(t *testing.T) {
	t.Run("json mode prints data", func(t *testing.T) {
		oldStdout := os.Stdout
		r, w, _ := os.Pipe()
		os.Stdout = w

		f := &OutputFormatter{jsonMode: true}
		err := f.Render(CommandResult{
			Data: map[string]interface{}{"session_id": "abc123"},
			HumanReadable: func() error {
				t.Error("human renderer must not run in JSON mode")
				return nil
			},
		})

		w.Close()
		os.Stdout = oldStdout
		var buf bytes.Buffer
		io.Copy(&buf, r)

		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		var parsed map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
		}
		if parsed["session_id"] != "abc123" {
			t.Fatalf("unexpected payload: %v", parsed)
		}
	})

	t.Run("human mode runs renderer", func(t *testing.T) {
		ran := false
		f := &OutputFormatter{}
		err := f.Render(CommandResult{
			Data:          map[string]interface{}{"ignored": true},
			HumanReadable: func() error { ran = true; return nil },
		})
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if !ran {
			t.Fatal("human renderer did not run")
		}
	})

	t.Run("human mode tolerates nil renderer", func(t *testing.T) {
		f := &OutputFormatter{}
		if err := f.Render(CommandResult{Data: map[string]interface{}{}}); err != nil {
			t.Fatalf("Render: %v", err)
		}
	})
}

func TestOutputFormatterPrintText(t *testing.T) {
	ran := false
	(&OutputFormatter{}).PrintText(func() { ran = true })
	if !ran {
		t.Fatal("PrintText should run in human mode")
	}

	(&OutputFormatter{jsonMode: true}).PrintText(func() {
		t.Error("PrintText must not run in JSON mode")
	})
}

func TestOutputFormatterError(t *testing.T) {
	t.Run("json mode", func(t *testing.T) {
		oldStderr := os.Stderr
		r, w, _ := os.Pipe()
		os.Stderr = w

		f := &OutputFormatter{jsonMode: true}
		retErr := f.Error("connection failed", io.EOF)

		w.Close()
		os.Stderr = oldStderr
		var buf bytes.Buffer
		io.Copy(&buf, r)

		if retErr == nil || !strings.Contains(retErr.Error(), "connection failed") {
			t.Fatalf("returned error should carry the message, got %v", retErr)
		}
		if !errors.Is(retErr, io.EOF) {
			t.Fatalf("returned error should wrap the cause, got %v", retErr)
		}

		var parsed map[string]interface{}
		if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &parsed); err != nil {
			t.Fatalf("expected JSON on stderr, got %q: %v", buf.String(), err)
		}
		if parsed["success"] != false || parsed["error"] != "connection failed" {
			t.Fatalf("unexpected error payload: %v", parsed)
		}
		if parsed["details"] != io.EOF.Error() {
			t.Fatalf("details = %v, want %q", parsed["details"], io.EOF.Error())
		}
	})

	t.Run("human mode", func(t *testing.T) {
		oldStderr := os.Stderr
		r, w, _ := os.Pipe()
		os.Stderr = w

		f := &OutputFormatter{}
		retErr := f.Error("close failed", io.ErrUnexpectedEOF)

		w.Close()
		os.Stderr = oldStderr
		var buf bytes.Buffer
		io.Copy(&buf, r)

		if retErr == nil {
			t.Fatal("expected non-nil error")
		}
		if got := buf.String(); !strings.Contains(got, "close failed") || !strings.Contains(got, io.ErrUnexpectedEOF.Error()) {
			t.Fatalf("unexpected stderr: %q", got)
		}
	})
}

func TestOutputFormatterSuccess(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f := &OutputFormatter{jsonMode: true}
	err := f.Success("Session abc123 created", map[string]interface{}{"session_id": "abc123"})

	w.Close()
	os.Stdout = oldStdout
	var buf bytes.Buffer
	io.Copy(&buf, r)

	if err != nil {
		t.Fatalf("Success: %v", err)
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if parsed["success"] != true || parsed["session_id"] != "abc123" {
		t.Fatalf("unexpected payload: %v", parsed)
	}
	if parsed["message"] != "Session abc123 created" {
		t.Fatalf("message = %v", parsed["message"])
	}
}

func TestTerminalSizeFallback(t *testing.T) {
	cols, rows := terminalSize()
	if cols == 0 || rows == 0 {
		t.Fatalf("terminalSize returned %dx%d", cols, rows)
	}
}
