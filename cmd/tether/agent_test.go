package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	apiv1 "github.com/tether-ai/tether/internal/api/grpc/v1"
	"github.com/tether-ai/tether/internal/protocol"
)

func TestParseKeyValues(t *testing.T) {
	options, err := parseKeyValues([]string{"temperature=0.2", "effort=high", "schema=a=b"})
	if err != nil {
		t.Fatalf("parseKeyValues: %v", err)
	}
	want := map[string]string{"temperature": "0.2", "effort": "high", "schema": "a=b"}
	if len(options) != len(want) {
		t.Fatalf("expected %d options, got %v", len(want), options)
	}
	for k, v := range want {
		if options[k] != v {
			t.Fatalf("option %s = %q, want %q", k, options[k], v)
		}
	}

	if got, err := parseKeyValues(nil); err != nil || got != nil {
		t.Fatalf("expected nil map for no flags, got %v (%v)", got, err)
	}

	for _, invalid := range []string{"notanoption", "=value"} {
		if _, err := parseKeyValues([]string{invalid}); err == nil {
			t.Fatalf("expected error for %q", invalid)
		}
	}
}

func TestRunOptionsFromFlags(t *testing.T) {
	agentCmd := newAgentCommand()
	runCmd, _, err := agentCmd.Find([]string{"run"})
	if err != nil {
		t.Fatalf("find run command: %v", err)
	}

	flags := runCmd.Flags()
	mustSet := func(name, value string) {
		t.Helper()
		if err := flags.Set(name, value); err != nil {
			t.Fatalf("set --%s: %v", name, err)
		}
	}
	mustSet("session", "sess-1")
	mustSet("mode", "plan")
	mustSet("model", "large")
	mustSet("max-turns", "12")
	mustSet("max-retries", "2")
	mustSet("timeout", "45s")
	mustSet("output-schema", `{"type":"object"}`)
	mustSet("option", "temperature=0.1")
	mustSet("option", "effort=high")

	opts, err := runOptionsFromFlags(runCmd)
	if err != nil {
		t.Fatalf("runOptionsFromFlags: %v", err)
	}
	if opts.SessionID != "sess-1" || opts.Mode != "plan" || opts.Model != "large" {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.MaxTurns != 12 || opts.MaxRetries != 2 {
		t.Fatalf("unexpected caps: %+v", opts)
	}
	if opts.Timeout != 45*time.Second {
		t.Fatalf("timeout = %v, want 45s", opts.Timeout)
	}
	if opts.OutputSchema != `{"type":"object"}` {
		t.Fatalf("unexpected schema: %q", opts.OutputSchema)
	}
	if opts.Options["temperature"] != "0.1" || opts.Options["effort"] != "high" {
		t.Fatalf("unexpected pass-through options: %v", opts.Options)
	}
}

func TestRunOptionsFromFlagsRejectsBadOption(t *testing.T) {
	agentCmd := newAgentCommand()
	runCmd, _, err := agentCmd.Find([]string{"run"})
	if err != nil {
		t.Fatalf("find run command: %v", err)
	}
	if err := runCmd.Flags().Set("option", "monkeybusiness"); err != nil {
		t.Fatalf("set --option: %v", err)
	}

	if _, err := runOptionsFromFlags(runCmd); err == nil {
		t.Fatal("expected error for malformed option")
	}
}

func TestRenderAgentEvent(t *testing.T) {
	t.Run("tokens go to stdout", func(t *testing.T) {
		oldStdout := os.Stdout
		r, w, _ := os.Pipe()
		os.Stdout = w

		renderAgentEvent(&OutputFormatter{}, &apiv1.AgentStreamEvent{Type: protocol.AgentEventToken, Token: "hel"})
		renderAgentEvent(&OutputFormatter{}, &apiv1.AgentStreamEvent{Type: protocol.AgentEventToken, Token: "lo"})

		w.Close()
		os.Stdout = oldStdout
		var buf bytes.Buffer
		io.Copy(&buf, r)

		if buf.String() != "hello" {
			t.Fatalf("token output = %q, want %q", buf.String(), "hello")
		}
	})

	t.Run("progress goes to stderr", func(t *testing.T) {
		oldStderr := os.Stderr
		r, w, _ := os.Pipe()
		os.Stderr = w

		renderAgentEvent(&OutputFormatter{}, &apiv1.AgentStreamEvent{Type: protocol.AgentEventToolStart, ToolName: "shell"})
		renderAgentEvent(&OutputFormatter{}, &apiv1.AgentStreamEvent{Type: protocol.AgentEventThinking, Text: "planning"})

		w.Close()
		os.Stderr = oldStderr
		var buf bytes.Buffer
		io.Copy(&buf, r)

		got := buf.String()
		if !strings.Contains(got, "[tool] shell...") || !strings.Contains(got, "[thinking] planning") {
			t.Fatalf("unexpected progress output: %q", got)
		}
	})

	t.Run("json mode is silent", func(t *testing.T) {
		oldStdout := os.Stdout
		r, w, _ := os.Pipe()
		os.Stdout = w

		renderAgentEvent(&OutputFormatter{jsonMode: true}, &apiv1.AgentStreamEvent{Type: protocol.AgentEventToken, Token: "x"})

		w.Close()
		os.Stdout = oldStdout
		var buf bytes.Buffer
		io.Copy(&buf, r)

		if buf.Len() != 0 {
			t.Fatalf("expected no output in JSON mode, got %q", buf.String())
		}
	})
}

func TestRenderAgentResultJSON(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	result := &apiv1.AgentResult{
		RequestId:  "req-9",
		Success:    true,
		Text:       "done",
		DurationMs: 1200,
		Usage:      &apiv1.AgentUsage{InputTokens: 10, OutputTokens: 4},
	}
	err := renderAgentResult(&OutputFormatter{jsonMode: true}, result, false)

	w.Close()
	os.Stdout = oldStdout
	var buf bytes.Buffer
	io.Copy(&buf, r)

	if err != nil {
		t.Fatalf("renderAgentResult: %v", err)
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("expected JSON, got %q: %v", buf.String(), err)
	}
	if parsed["request_id"] != "req-9" || parsed["success"] != true || parsed["text"] != "done" {
		t.Fatalf("unexpected payload: %v", parsed)
	}
	usage, ok := parsed["usage"].(map[string]interface{})
	if !ok || usage["input_tokens"] != float64(10) {
		t.Fatalf("unexpected usage payload: %v", parsed["usage"])
	}
}

func TestRenderAgentResultHuman(t *testing.T) {
	t.Run("unary prints the result text", func(t *testing.T) {
		oldStdout := os.Stdout
		r, w, _ := os.Pipe()
		os.Stdout = w

		err := renderAgentResult(&OutputFormatter{}, &apiv1.AgentResult{Success: true, Text: "done"}, false)

		w.Close()
		os.Stdout = oldStdout
		var buf bytes.Buffer
		io.Copy(&buf, r)

		if err != nil {
			t.Fatalf("renderAgentResult: %v", err)
		}
		if buf.String() != "done\n" {
			t.Fatalf("stdout = %q, want %q", buf.String(), "done\n")
		}
	})

	t.Run("streamed run only closes the token line", func(t *testing.T) {
		oldStdout := os.Stdout
		r, w, _ := os.Pipe()
		os.Stdout = w

		err := renderAgentResult(&OutputFormatter{}, &apiv1.AgentResult{Success: true, Text: "done"}, true)

		w.Close()
		os.Stdout = oldStdout
		var buf bytes.Buffer
		io.Copy(&buf, r)

		if err != nil {
			t.Fatalf("renderAgentResult: %v", err)
		}
		if buf.String() != "\n" {
			t.Fatalf("stdout = %q, want a bare newline", buf.String())
		}
	})
}
