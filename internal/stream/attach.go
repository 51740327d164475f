package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	apiv1 "github.com/tether-ai/tether/internal/api/grpc/v1"
	"github.com/tether-ai/tether/internal/config"
	"github.com/tether-ai/tether/internal/constants"
	"github.com/tether-ai/tether/internal/protocol"
	"github.com/tether-ai/tether/internal/rpcerrors"
	"github.com/tether-ai/tether/internal/version"
)

// AttachStream subscribes to an existing session over one long-lived
// ConnectTerminal call. Outbound traffic (keystrokes, resize, signal,
// heartbeat) funnels through a FIFO queue drained by a single sender
// goroutine; inbound traffic is dispatched to listeners by a single
// receiver goroutine. The first message on the wire is always the
// registration carrying the attach version marker.
//
// When the queue sits empty for a full keepalive interval the sender
// synthesizes a heartbeat so the connection never idles out from this
// side. A server ping enqueues a heartbeat immediately, bypassing the
// idle timer.
type AttachStream struct {
	sessions  apiv1.SessionServiceClient
	settings  *config.Settings
	sessionID string

	life    *lifecycle
	metrics *Metrics
	queue   *outboundQueue

	ready  fanout[string]
	output fanout[[]byte]
	closed fanout[string]
	errs   fanout[error]

	// nextID numbers outbound messages per stream instance. The ids are
	// diagnostic, not a deduplication mechanism.
	nextID atomic.Uint64

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc

	sendDone chan struct{}
	recvDone chan struct{}

	// closeGrace bounds how long Close waits for the remote to end the
	// stream after CloseSend before cancelling outright.
	closeGrace time.Duration
}

// NewAttachStream builds an attach stream for an existing session. A nil
// settings uses the defaults.
func NewAttachStream(sessions apiv1.SessionServiceClient, settings *config.Settings, sessionID string) *AttachStream {
	if settings == nil {
		settings = config.Default()
	} else {
		settings.Normalize()
	}
	return &AttachStream{
		sessions:   sessions,
		settings:   settings,
		sessionID:  sessionID,
		life:       &lifecycle{},
		metrics:    &Metrics{},
		queue:      newOutboundQueue(),
		sendDone:   make(chan struct{}),
		recvDone:   make(chan struct{}),
		closeGrace: constants.Duration2Seconds,
	}
}

// OnReady registers a listener fired when the agent acknowledges the
// subscription with a start_session message.
func (a *AttachStream) OnReady(fn func(sessionID string)) { a.ready.add(fn) }

// OnOutput registers a listener for session output bytes.
func (a *AttachStream) OnOutput(fn func(data []byte)) { a.output.add(fn) }

// OnClosed registers a listener fired once when the stream ends, with the
// remote's close reason when one was given.
func (a *AttachStream) OnClosed(fn func(reason string)) { a.closed.add(fn) }

// OnError registers a listener for stream failures that were not part of a
// local shutdown.
func (a *AttachStream) OnError(fn func(err error)) { a.errs.add(fn) }

// Connect opens the terminal stream, registers, and starts the sender and
// receiver loops. The stream stays alive until Close is called, the remote
// ends it, or ctx is cancelled.
func (a *AttachStream) Connect(ctx context.Context) error {
	if strings.TrimSpace(a.sessionID) == "" {
		return rpcerrors.Session("attach requires a session id")
	}
	if !a.life.to(StateConnecting) {
		return rpcerrors.Connection(fmt.Sprintf("attach stream cannot start (stream is %s)", a.life.current()))
	}

	streamCtx, cancel := context.WithCancel(ctx)
	stream, err := a.sessions.ConnectTerminal(streamCtx)
	if err != nil {
		cancel()
		a.life.to(StateError)
		return rpcerrors.Map(err, rpcerrors.Context{Op: "attach", SessionID: a.sessionID})
	}
	a.life.to(StateRegistering)

	// Registration goes out before the sender loop starts, so an early
	// SendInput cannot jump ahead of it.
	reg := &apiv1.TerminalClientMessage{
		Type:      protocol.ClientRegister,
		SessionId: a.sessionID,
		MessageId: a.nextID.Add(1),
		Version:   version.AttachMarker(),
	}
	if err := a.sendMessage(stream, reg); err != nil {
		cancel()
		a.life.to(StateError)
		return rpcerrors.Map(err, rpcerrors.Context{Op: "register", SessionID: a.sessionID})
	}

	a.mu.Lock()
	a.started = true
	a.cancel = cancel
	a.mu.Unlock()

	go a.sendLoop(streamCtx, stream)
	go a.recvLoop(stream)
	return nil
}

// SendInput queues stdin bytes for the session. It is legal as soon as
// registration is on the wire; the agent buffers input until the session
// handoff completes. Keystrokes travel as output messages because the wire
// names directions from the session's point of view.
func (a *AttachStream) SendInput(data []byte) error {
	if err := a.life.require("send input", StateRegistering, StateConnected); err != nil {
		return err
	}
	msg := &apiv1.TerminalClientMessage{
		Type:      protocol.ClientOutput,
		SessionId: a.sessionID,
		MessageId: a.nextID.Add(1),
		Data:      data,
	}
	if !a.queue.enqueue(msg) {
		return rpcerrors.Connection(fmt.Sprintf("send input: session %s stream is shutting down", a.sessionID))
	}
	return nil
}

// SendResize queues a terminal geometry change.
func (a *AttachStream) SendResize(cols, rows uint16) error {
	if err := a.life.require("send resize", StateConnected); err != nil {
		return err
	}
	return a.enqueueStatus("send resize", protocol.ResizeReason(cols, rows))
}

// SendSignal queues a named POSIX signal for the session process.
func (a *AttachStream) SendSignal(signal string) error {
	if err := a.life.require("send signal", StateConnected); err != nil {
		return err
	}
	return a.enqueueStatus("send signal", protocol.SignalReason(signal))
}

func (a *AttachStream) enqueueStatus(op, reason string) error {
	msg := &apiv1.TerminalClientMessage{
		Type:      protocol.ClientStatus,
		SessionId: a.sessionID,
		MessageId: a.nextID.Add(1),
		Reason:    reason,
	}
	if !a.queue.enqueue(msg) {
		return rpcerrors.Connection(fmt.Sprintf("%s: session %s stream is shutting down", op, a.sessionID))
	}
	return nil
}

// Close marks the queue done, lets any in-flight message drain, half-closes
// the send side and waits for the remote to end the stream. It is safe to
// call more than once.
func (a *AttachStream) Close() error {
	if !a.life.to(StateClosing) {
		return nil
	}
	a.queue.markDone()

	a.mu.Lock()
	started := a.started
	a.mu.Unlock()
	if started {
		<-a.sendDone
		select {
		case <-a.recvDone:
		case <-time.After(a.closeGrace):
			a.cancelStream()
			<-a.recvDone
		}
	}
	a.cancelStream()
	a.life.to(StateClosed)
	return nil
}

// State returns the current lifecycle state.
func (a *AttachStream) State() State { return a.life.current() }

// Metrics returns a snapshot of the stream counters.
func (a *AttachStream) Metrics() MetricsSnapshot { return a.metrics.Snapshot() }

// SessionID returns the session this stream is attached to.
func (a *AttachStream) SessionID() string { return a.sessionID }

func (a *AttachStream) sendMessage(stream apiv1.SessionService_ConnectTerminalClient, msg *apiv1.TerminalClientMessage) error {
	if err := stream.Send(msg); err != nil {
		return err
	}
	a.metrics.recordSend(len(msg.GetData()))
	return nil
}

func (a *AttachStream) sendLoop(ctx context.Context, stream apiv1.SessionService_ConnectTerminalClient) {
	defer close(a.sendDone)
	for {
		msg, res := a.queue.next(ctx, a.settings.KeepaliveInterval)
		switch res {
		case pullDone:
			if err := stream.CloseSend(); err != nil {
				log.Printf("[stream] session %s: close send: %v", a.sessionID, err)
			}
			return
		case pullKeepalive:
			a.enqueueHeartbeat()
			continue
		}
		if err := a.sendMessage(stream, msg); err != nil {
			a.handleStreamError("send", err)
			return
		}
	}
}

func (a *AttachStream) recvLoop(stream apiv1.SessionService_ConnectTerminalClient) {
	defer close(a.recvDone)
	for {
		msg, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				a.handleRemoteEnd()
			} else {
				a.handleStreamError("receive", err)
			}
			return
		}
		a.handleInbound(msg)
	}
}

func (a *AttachStream) handleInbound(msg *apiv1.TerminalServerMessage) {
	switch msg.GetType() {
	case protocol.ServerStartSession:
		a.life.to(StateConnected)
		a.ready.deliver("ready", msg.GetSessionId())
	case protocol.ServerInput:
		data := msg.GetData()
		a.metrics.recordReceive(len(data))
		a.output.deliver("output", data)
	case protocol.ServerCloseSession:
		a.queue.markDone()
		a.life.to(StateClosing)
		a.life.to(StateClosed)
		a.closed.deliver("closed", msg.GetReason())
	case protocol.ServerPing:
		a.enqueueHeartbeat()
	default:
		log.Printf("[stream] session %s: unknown server message type %q", a.sessionID, msg.GetType())
	}
}

// handleStreamError classifies a loop failure. During a local shutdown the
// error is an expected artifact of tearing the stream down, so it is logged
// and kept away from the caller-visible error listeners.
func (a *AttachStream) handleStreamError(op string, err error) {
	st := a.life.current()
	if st == StateClosing || st.Terminal() {
		log.Printf("[stream] session %s: %s error during shutdown (suppressed): %v", a.sessionID, op, err)
		return
	}
	a.metrics.recordError()
	mapped := rpcerrors.Map(err, rpcerrors.Context{Op: op, SessionID: a.sessionID})
	a.life.to(StateError)
	a.queue.markDone()
	a.cancelStream()
	a.errs.deliver("stream error", mapped)
}

// handleRemoteEnd finishes the stream after a clean end-of-stream from the
// remote. When a close_session message already ran the closed event, the
// trailing EOF is a no-op.
func (a *AttachStream) handleRemoteEnd() {
	a.queue.markDone()
	if a.life.current().Terminal() {
		return
	}
	a.life.to(StateClosing)
	a.life.to(StateClosed)
	a.closed.deliver("closed", "")
}

func (a *AttachStream) enqueueHeartbeat() {
	a.queue.enqueue(&apiv1.TerminalClientMessage{
		Type:      protocol.ClientHeartbeat,
		SessionId: a.sessionID,
		MessageId: a.nextID.Add(1),
	})
}

func (a *AttachStream) cancelStream() {
	a.mu.Lock()
	cancel := a.cancel
	a.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}
