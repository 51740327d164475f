package agentstub

import (
	"errors"
	"log"
	"sync"
	"time"

	apiv1 "github.com/tether-ai/tether/internal/api/grpc/v1"
	"github.com/tether-ai/tether/internal/constants"
	"github.com/tether-ai/tether/internal/protocol"
)

var errSessionClosed = errors.New("agentstub: session is closed")

// terminalWatcher is one attached terminal stream's view of a session.
// Messages are delivered without blocking; a watcher that cannot keep up
// loses output rather than stalling the engine pump.
type terminalWatcher struct {
	ch   chan *apiv1.TerminalServerMessage
	once sync.Once
}

func newTerminalWatcher() *terminalWatcher {
	return &terminalWatcher{ch: make(chan *apiv1.TerminalServerMessage, 256)}
}

// deliver is only called under the owning session's lock, which is what
// keeps it ordered against finish.
func (w *terminalWatcher) deliver(sessionID string, msg *apiv1.TerminalServerMessage) {
	select {
	case w.ch <- msg:
	default:
		log.Printf("[agentstub] session %s: dropping %s for slow attach client", sessionID, msg.GetType())
	}
}

func (w *terminalWatcher) finish() {
	w.once.Do(func() { close(w.ch) })
}

// session binds one engine to its output window and attached watchers.
type session struct {
	id         string
	hostname   string
	shell      string
	workingDir string
	createdAt  time.Time

	buffer *outputBuffer

	mu          sync.Mutex
	engine      Engine
	cols, rows  uint16
	status      string
	closeReason string
	watchers    map[*terminalWatcher]struct{}
}

func newSession(id, hostname string, req *apiv1.CreateSessionRequest, engine Engine) *session {
	cols, rows := uint16(req.GetCols()), uint16(req.GetRows())
	if cols == 0 {
		cols = 80
	}
	if rows == 0 {
		rows = 24
	}
	return &session{
		id:         id,
		hostname:   hostname,
		shell:      req.GetShell(),
		workingDir: req.GetWorkingDir(),
		createdAt:  time.Now(),
		buffer:     newOutputBuffer(constants.StubOutputBufferBytes),
		engine:     engine,
		cols:       cols,
		rows:       rows,
		status:     protocol.SessionConnected,
		watchers:   make(map[*terminalWatcher]struct{}),
	}
}

func (s *session) start(env []string) error {
	return s.engine.Start(EngineOptions{
		Shell:      s.shell,
		WorkingDir: s.workingDir,
		Env:        env,
		Cols:       s.cols,
		Rows:       s.rows,
		Output:     s.handleOutput,
		Exited:     s.handleExit,
	})
}

// handleOutput runs on the engine's pump goroutine.
func (s *session) handleOutput(data []byte) {
	s.buffer.Write(data)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == protocol.SessionClosed {
		return
	}
	msg := &apiv1.TerminalServerMessage{
		Type:      protocol.ServerInput,
		SessionId: s.id,
		Data:      data,
	}
	for w := range s.watchers {
		w.deliver(s.id, msg)
	}
}

func (s *session) handleExit(reason string) {
	s.close(reason)
}

// close ends the session once: watchers get a close_session message and
// are finished, then the engine is stopped. Later calls are no-ops.
func (s *session) close(reason string) bool {
	s.mu.Lock()
	if s.status == protocol.SessionClosed {
		s.mu.Unlock()
		return false
	}
	s.status = protocol.SessionClosed
	s.closeReason = reason
	engine := s.engine

	msg := &apiv1.TerminalServerMessage{
		Type:      protocol.ServerCloseSession,
		SessionId: s.id,
		Reason:    reason,
	}
	for w := range s.watchers {
		w.deliver(s.id, msg)
		w.finish()
	}
	s.watchers = make(map[*terminalWatcher]struct{})
	s.mu.Unlock()

	if engine != nil && engine.Running() {
		if err := engine.Stop(constants.StubShutdownTimeout); err != nil {
			log.Printf("[agentstub] session %s: stop engine: %v", s.id, err)
		}
	}
	return true
}

func (s *session) write(data []byte) error {
	engine, err := s.runningEngine()
	if err != nil {
		return err
	}
	_, err = engine.Write(data)
	return err
}

func (s *session) resize(cols, rows uint16) error {
	s.mu.Lock()
	if s.status == protocol.SessionClosed {
		s.mu.Unlock()
		return errSessionClosed
	}
	s.cols, s.rows = cols, rows
	engine := s.engine
	s.mu.Unlock()
	return engine.Resize(cols, rows)
}

func (s *session) signal(name string) error {
	engine, err := s.runningEngine()
	if err != nil {
		return err
	}
	return engine.Signal(name)
}

func (s *session) runningEngine() (Engine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == protocol.SessionClosed {
		return nil, errSessionClosed
	}
	return s.engine, nil
}

func (s *session) attachWatcher(w *terminalWatcher) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == protocol.SessionClosed {
		return errSessionClosed
	}
	s.watchers[w] = struct{}{}
	return nil
}

func (s *session) detachWatcher(w *terminalWatcher) {
	s.mu.Lock()
	if _, ok := s.watchers[w]; ok {
		delete(s.watchers, w)
		w.finish()
	}
	s.mu.Unlock()
}

func (s *session) snapshotInfo() *apiv1.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &apiv1.Session{
		Id:         s.id,
		Hostname:   s.hostname,
		Shell:      s.shell,
		WorkingDir: s.workingDir,
		Status:     s.status,
		Cols:       uint32(s.cols),
		Rows:       uint32(s.rows),
		CreatedAt:  s.createdAt.Unix(),
	}
}
