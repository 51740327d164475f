// Package rpcerrors is the single error taxonomy for remote-call failures.
// Every stream and transport component funnels failures through Map (or a
// constructor below) before they reach a caller, so callers only ever see
// one typed error shape.
package rpcerrors

import (
	"errors"
)

// Code classifies a remote-call failure.
type Code string

const (
	CodeConnection        Code = "connection"
	CodeAuthentication    Code = "authentication"
	CodeSession           Code = "session"
	CodeTimeout           Code = "timeout"
	CodeNotFound          Code = "not_found"
	CodePermission        Code = "permission"
	CodeResourceExhausted Code = "resource_exhausted"
	CodeCancelled         Code = "cancelled"
	CodeUnavailable       Code = "unavailable"
	// CodeUnknown carries a free-form status code string in Error.StatusCode
	// for anything the mapper does not recognize.
	CodeUnknown Code = "unknown"
)

// Error is a typed, message-enriched remote-call failure.
type Error struct {
	Code    Code
	Message string

	// Mapping context supplied by the failing call site.
	Op        string
	SessionID string
	Path      string

	// StatusCode preserves the raw status code string for CodeUnknown.
	StatusCode string

	Cause error
}

// Error returns the enriched message. The message already embeds whatever
// context the mapper added; codes are matched via Is/IsCode, not parsed
// out of the string.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return string(e.Code)
}

// Unwrap returns the underlying cause for errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error by code, so sentinel-style checks like
// errors.Is(err, rpcerrors.New(CodeCancelled, "")) work across wrapping.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// New creates a typed error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a typed error preserving the original cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Connection builds a CodeConnection error.
func Connection(message string) *Error {
	return New(CodeConnection, message)
}

// Cancelled builds a CodeCancelled error.
func Cancelled(message string) *Error {
	return New(CodeCancelled, message)
}

// Session builds a CodeSession error.
func Session(message string) *Error {
	return New(CodeSession, message)
}

// IsCode reports whether err is (or wraps) an *Error with the given code.
func IsCode(err error, code Code) bool {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Code == code
	}
	return false
}
