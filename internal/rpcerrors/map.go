package rpcerrors

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Context carries the call-site details the mapper folds into messages.
// Zero fields are simply omitted.
type Context struct {
	Op        string
	SessionID string
	Path      string
}

// Map turns a remote-call failure into exactly one typed error. Errors that
// are already typed, and plain errors with no status code, pass through
// unchanged.
func Map(err error, mctx Context) error {
	if err == nil {
		return nil
	}
	var typed *Error
	if errors.As(err, &typed) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return enrich(&Error{Code: CodeTimeout, Message: mctx.phrase("timed out"), Cause: err}, mctx)
	}
	if errors.Is(err, context.Canceled) {
		return enrich(&Error{Code: CodeCancelled, Message: mctx.phrase("cancelled"), Cause: err}, mctx)
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	e := &Error{Cause: err}
	switch st.Code() {
	case codes.Unauthenticated:
		e.Code = CodeAuthentication
		e.Message = mctx.phrase("authentication failed (check the bearer token)")
	case codes.PermissionDenied:
		e.Code = CodePermission
		e.Message = mctx.phrase("permission denied")
	case codes.NotFound:
		e.Code = CodeNotFound
		e.Message = mctx.phrase("not found")
	case codes.DeadlineExceeded:
		e.Code = CodeTimeout
		e.Message = mctx.phrase("timed out")
	case codes.Canceled:
		e.Code = CodeCancelled
		e.Message = mctx.phrase("cancelled")
	case codes.ResourceExhausted:
		e.Code = CodeResourceExhausted
		e.Message = mctx.phrase("rate limited: " + st.Message())
	case codes.Unavailable:
		e.Code = CodeUnavailable
		e.Message = mctx.phrase("agent not responding (connection unavailable)")
	case codes.FailedPrecondition, codes.Aborted, codes.InvalidArgument:
		e.Code = CodeSession
		e.Message = mctx.phrase(st.Message())
	default:
		e.Code = CodeUnknown
		e.StatusCode = st.Code().String()
		e.Message = mctx.phrase(st.Message())
	}
	return enrich(e, mctx)
}

func enrich(e *Error, mctx Context) *Error {
	e.Op = mctx.Op
	e.SessionID = mctx.SessionID
	e.Path = mctx.Path
	return e
}

// phrase prefixes a base message with whatever context is available, in the
// order operation, session, path.
func (c Context) phrase(base string) string {
	msg := base
	if c.Path != "" {
		msg = fmt.Sprintf("%s (path %s)", msg, c.Path)
	}
	if c.SessionID != "" {
		msg = fmt.Sprintf("session %s: %s", c.SessionID, msg)
	}
	if c.Op != "" {
		msg = fmt.Sprintf("%s: %s", c.Op, msg)
	}
	return msg
}
