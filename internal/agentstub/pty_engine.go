package agentstub

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	ptyDevice "github.com/creack/pty"
)

// ptyEngine runs a real shell under a pseudo-terminal. One pump goroutine
// reads the PTY and forwards chunks to the session; when the read loop ends
// the process is reaped and the exit is reported once.
type ptyEngine struct {
	mu   sync.Mutex
	cmd  *exec.Cmd
	ptmx *os.File
	opts EngineOptions

	running   atomic.Bool
	exitCode  atomic.Int32
	waitOnce  sync.Once
	closeOnce sync.Once
	exitOnce  sync.Once
}

func newPTYEngine() *ptyEngine { return &ptyEngine{} }

func (e *ptyEngine) Start(opts EngineOptions) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cmd != nil {
		return errors.New("agentstub: engine already started")
	}

	shell := opts.Shell
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/bash"
	}

	cmd := exec.Command(shell)
	if opts.WorkingDir != "" {
		cmd.Dir = opts.WorkingDir
	}
	if len(opts.Env) > 0 {
		cmd.Env = opts.Env
	} else {
		cmd.Env = os.Environ()
	}
	if !envHas(cmd.Env, "TERM=") {
		cmd.Env = append(cmd.Env, "TERM=xterm-256color")
	}

	ptmx, err := ptyDevice.Start(cmd)
	if err != nil {
		return fmt.Errorf("agentstub: start shell: %w", err)
	}

	cols, rows := opts.Cols, opts.Rows
	if cols == 0 {
		cols = 80
	}
	if rows == 0 {
		rows = 24
	}
	if err := ptyDevice.Setsize(ptmx, &ptyDevice.Winsize{Cols: cols, Rows: rows}); err != nil {
		ptmx.Close()
		_ = cmd.Process.Kill()
		return fmt.Errorf("agentstub: size pty: %w", err)
	}

	e.cmd = cmd
	e.ptmx = ptmx
	e.opts = opts
	e.exitCode.Store(-1)
	e.running.Store(true)

	go e.pump(ptmx)
	return nil
}

func envHas(env []string, prefix string) bool {
	for _, entry := range env {
		if strings.HasPrefix(entry, prefix) {
			return true
		}
	}
	return false
}

// pump copies PTY output to the session until the PTY closes, then reaps
// the process and reports the exit.
func (e *ptyEngine) pump(ptmx *os.File) {
	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 && e.opts.Output != nil {
			e.opts.Output(append([]byte(nil), buf[:n]...))
		}
		if err != nil {
			break
		}
	}

	e.closePTY()
	e.running.Store(false)
	e.reap()

	reason := "shell exited"
	if code := e.exitCode.Load(); code > 0 {
		reason = fmt.Sprintf("shell exited with code %d", code)
	}
	e.reportExit(reason)
}

func (e *ptyEngine) Write(data []byte) (int, error) {
	e.mu.Lock()
	ptmx := e.ptmx
	e.mu.Unlock()
	if ptmx == nil || !e.running.Load() {
		return 0, io.ErrClosedPipe
	}
	return ptmx.Write(data)
}

func (e *ptyEngine) Resize(cols, rows uint16) error {
	e.mu.Lock()
	ptmx := e.ptmx
	e.mu.Unlock()
	if ptmx == nil || !e.running.Load() {
		return errEngineStopped
	}
	return ptyDevice.Setsize(ptmx, &ptyDevice.Winsize{Cols: cols, Rows: rows})
}

func (e *ptyEngine) Signal(name string) error {
	sig, ok := signalsByName[name]
	if !ok {
		return fmt.Errorf("%w %q", errUnknownSignal, name)
	}
	e.mu.Lock()
	cmd := e.cmd
	e.mu.Unlock()
	if cmd == nil || cmd.Process == nil || !e.running.Load() {
		return errEngineStopped
	}
	return cmd.Process.Signal(sig)
}

// Stop terminates the shell gracefully, escalating to SIGKILL after the
// timeout. Closing the PTY afterwards unblocks the pump goroutine.
func (e *ptyEngine) Stop(timeout time.Duration) error {
	if !e.running.Load() {
		return nil
	}
	// A deliberate stop must not race the pump's own exit report.
	e.exitOnce.Do(func() {})

	e.mu.Lock()
	cmd := e.cmd
	e.mu.Unlock()
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	defer e.closePTY()

	_ = cmd.Process.Signal(signalsByName["SIGTERM"])

	done := make(chan struct{})
	go func() {
		e.reap()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		_ = cmd.Process.Kill()
		<-done
	}
	e.running.Store(false)
	return nil
}

func (e *ptyEngine) Running() bool { return e.running.Load() }

func (e *ptyEngine) closePTY() {
	e.closeOnce.Do(func() {
		e.mu.Lock()
		ptmx := e.ptmx
		e.mu.Unlock()
		if ptmx != nil {
			ptmx.Close()
		}
	})
}

func (e *ptyEngine) reap() {
	e.waitOnce.Do(func() {
		e.mu.Lock()
		cmd := e.cmd
		e.mu.Unlock()
		if cmd == nil {
			return
		}
		_ = cmd.Wait()
		if state := cmd.ProcessState; state != nil {
			e.exitCode.Store(int32(state.ExitCode()))
		}
	})
}

func (e *ptyEngine) reportExit(reason string) {
	e.exitOnce.Do(func() {
		if e.opts.Exited != nil {
			e.opts.Exited(reason)
		}
	})
}
