package rpcerrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapNil(t *testing.T) {
	if got := Map(nil, Context{}); got != nil {
		t.Fatalf("Map(nil) = %v, want nil", got)
	}
}

func TestMapStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want Code
	}{
		{"unauthenticated", status.Error(codes.Unauthenticated, "bad token"), CodeAuthentication},
		{"permission", status.Error(codes.PermissionDenied, "nope"), CodePermission},
		{"not found", status.Error(codes.NotFound, "missing"), CodeNotFound},
		{"deadline", status.Error(codes.DeadlineExceeded, "slow"), CodeTimeout},
		{"canceled", status.Error(codes.Canceled, "gone"), CodeCancelled},
		{"exhausted", status.Error(codes.ResourceExhausted, "quota"), CodeResourceExhausted},
		{"unavailable", status.Error(codes.Unavailable, "down"), CodeUnavailable},
		{"precondition", status.Error(codes.FailedPrecondition, "not attached"), CodeSession},
		{"aborted", status.Error(codes.Aborted, "conflict"), CodeSession},
		{"invalid argument", status.Error(codes.InvalidArgument, "bad offset"), CodeSession},
		{"internal falls through", status.Error(codes.Internal, "boom"), CodeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Map(tt.in, Context{Op: "poll output", SessionID: "abc123"})
			var typed *Error
			if !errors.As(got, &typed) {
				t.Fatalf("Map did not return *Error: %v", got)
			}
			if typed.Code != tt.want {
				t.Fatalf("code = %s, want %s", typed.Code, tt.want)
			}
			if typed.Op != "poll output" || typed.SessionID != "abc123" {
				t.Fatalf("context not preserved: %+v", typed)
			}
			if !errors.Is(got, tt.in) {
				t.Fatal("cause not reachable through Unwrap")
			}
		})
	}
}

func TestMapUnknownKeepsStatusCode(t *testing.T) {
	got := Map(status.Error(codes.DataLoss, "corrupt"), Context{})
	var typed *Error
	if !errors.As(got, &typed) {
		t.Fatalf("want *Error, got %v", got)
	}
	if typed.Code != CodeUnknown {
		t.Fatalf("code = %s, want %s", typed.Code, CodeUnknown)
	}
	if typed.StatusCode != codes.DataLoss.String() {
		t.Fatalf("StatusCode = %q, want %q", typed.StatusCode, codes.DataLoss.String())
	}
}

func TestMapContextErrors(t *testing.T) {
	if !IsCode(Map(context.DeadlineExceeded, Context{}), CodeTimeout) {
		t.Fatal("context.DeadlineExceeded not mapped to timeout")
	}
	if !IsCode(Map(context.Canceled, Context{}), CodeCancelled) {
		t.Fatal("context.Canceled not mapped to cancelled")
	}
}

func TestMapPassesThroughTypedAndPlainErrors(t *testing.T) {
	typed := New(CodeSession, "already typed")
	if got := Map(typed, Context{Op: "ignored"}); got != error(typed) {
		t.Fatalf("typed error rewritten: %v", got)
	}

	wrapped := fmt.Errorf("outer: %w", New(CodeTimeout, "inner"))
	if got := Map(wrapped, Context{}); got != wrapped {
		t.Fatalf("wrapped typed error rewritten: %v", got)
	}

	plain := errors.New("disk on fire")
	if got := Map(plain, Context{Op: "whatever"}); got != plain {
		t.Fatalf("plain error rewritten: %v", got)
	}
}

func TestMessageEnrichment(t *testing.T) {
	got := Map(status.Error(codes.NotFound, "no row"), Context{
		Op:        "get session status",
		SessionID: "s1",
		Path:      "/tmp/agent.json",
	})
	msg := got.Error()
	for _, fragment := range []string{"get session status", "s1", "/tmp/agent.json", "not found"} {
		if !strings.Contains(msg, fragment) {
			t.Errorf("message %q missing %q", msg, fragment)
		}
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("attach: %w", New(CodeCancelled, "agent stream cancelled"))
	if !errors.Is(err, New(CodeCancelled, "")) {
		t.Fatal("errors.Is by code failed through wrapping")
	}
	if errors.Is(err, New(CodeTimeout, "")) {
		t.Fatal("errors.Is matched the wrong code")
	}
}
