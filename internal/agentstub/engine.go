// Package agentstub implements an in-process agent serving the session and
// agent services over the real wire surface. Integration tests run it on a
// bufconn listener with the echo engine; the hidden stub-agent command runs
// it on a unix socket or TCP port with a PTY engine behind each session.
package agentstub

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"syscall"
	"time"
)

// EngineOptions carry everything an engine needs to start. Output and
// Exited are invoked from engine-owned goroutines with no session lock
// held; Output receives chunks the engine will not reuse.
type EngineOptions struct {
	Shell      string
	WorkingDir string
	Env        []string
	Cols       uint16
	Rows       uint16

	Output func(data []byte)
	Exited func(reason string)
}

// Engine runs the process (real or fake) behind one stub session.
type Engine interface {
	Start(opts EngineOptions) error
	Write(data []byte) (int, error)
	Resize(cols, rows uint16) error
	Signal(name string) error
	Stop(timeout time.Duration) error
	Running() bool
}

// EngineFactory builds a fresh engine per created session.
type EngineFactory func() Engine

// Engine names accepted by the stub-agent command.
const (
	EngineEcho = "echo"
	EnginePTY  = "pty"
)

// NewEngineFactory resolves an engine name. An empty name means echo.
func NewEngineFactory(name string) (EngineFactory, error) {
	switch name {
	case "", EngineEcho:
		return func() Engine { return newEchoEngine() }, nil
	case EnginePTY:
		return func() Engine { return newPTYEngine() }, nil
	default:
		return nil, fmt.Errorf("agentstub: unknown engine %q", name)
	}
}

var (
	errEngineStopped = errors.New("agentstub: engine is not running")
	errUnknownSignal = errors.New("agentstub: unknown signal")
)

// signalsByName maps the signal names accepted over the wire to their
// POSIX numbers.
var signalsByName = map[string]syscall.Signal{
	"SIGHUP":  syscall.SIGHUP,
	"SIGINT":  syscall.SIGINT,
	"SIGQUIT": syscall.SIGQUIT,
	"SIGKILL": syscall.SIGKILL,
	"SIGTERM": syscall.SIGTERM,
}

// terminatesProcess reports whether a signal ends the session process by
// default.
func terminatesProcess(name string) bool {
	switch name {
	case "SIGHUP", "SIGINT", "SIGQUIT", "SIGKILL", "SIGTERM":
		return true
	}
	return false
}

// echoEngine reflects every input byte back as output. It is the hermetic
// engine used by tests: no process, no PTY, fully deterministic.
type echoEngine struct {
	mu      sync.Mutex
	opts    EngineOptions
	running bool
}

func newEchoEngine() *echoEngine { return &echoEngine{} }

func (e *echoEngine) Start(opts EngineOptions) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return errors.New("agentstub: engine already started")
	}
	e.opts = opts
	e.running = true
	return nil
}

func (e *echoEngine) Write(data []byte) (int, error) {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return 0, io.ErrClosedPipe
	}
	output := e.opts.Output
	e.mu.Unlock()

	if output != nil {
		output(append([]byte(nil), data...))
	}
	return len(data), nil
}

func (e *echoEngine) Resize(cols, rows uint16) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		return errEngineStopped
	}
	e.opts.Cols, e.opts.Rows = cols, rows
	return nil
}

func (e *echoEngine) Signal(name string) error {
	if _, ok := signalsByName[name]; !ok {
		return fmt.Errorf("%w %q", errUnknownSignal, name)
	}
	if terminatesProcess(name) {
		e.exit("signal:" + name)
	}
	return nil
}

func (e *echoEngine) Stop(time.Duration) error {
	e.mu.Lock()
	e.running = false
	e.mu.Unlock()
	return nil
}

func (e *echoEngine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// exit stops the engine and reports the reason exactly once.
func (e *echoEngine) exit(reason string) {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	exited := e.opts.Exited
	e.mu.Unlock()

	if exited != nil {
		exited(reason)
	}
}
