package stream

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apiv1 "github.com/tether-ai/tether/internal/api/grpc/v1"
	"github.com/tether-ai/tether/internal/config"
	"github.com/tether-ai/tether/internal/protocol"
	"github.com/tether-ai/tether/internal/rpcerrors"
	"github.com/tether-ai/tether/internal/version"
)

type recvReply struct {
	msg *apiv1.TerminalServerMessage
	err error
}

// fakeTerminalStream is a scriptable ConnectTerminal stream. Sent messages
// are recorded and mirrored on sentCh; Recv blocks until the test feeds
// recvCh, the client cancels, or (with endRecvOnClose) CloseSend lands.
type fakeTerminalStream struct {
	grpc.ClientStream

	ctx context.Context

	mu      sync.Mutex
	sent    []*apiv1.TerminalClientMessage
	sendErr error

	sentCh chan *apiv1.TerminalClientMessage
	recvCh chan recvReply

	closeOnce sync.Once
	closeSent chan struct{}

	// endRecvOnClose makes Recv return io.EOF once CloseSend arrives,
	// like a server that ends the stream when the client half-closes.
	endRecvOnClose bool
}

func newFakeTerminalStream(endRecvOnClose bool) *fakeTerminalStream {
	return &fakeTerminalStream{
		sentCh:         make(chan *apiv1.TerminalClientMessage, 64),
		recvCh:         make(chan recvReply, 16),
		closeSent:      make(chan struct{}),
		endRecvOnClose: endRecvOnClose,
	}
}

func (f *fakeTerminalStream) Send(msg *apiv1.TerminalClientMessage) error {
	f.mu.Lock()
	if f.sendErr != nil {
		err := f.sendErr
		f.mu.Unlock()
		return err
	}
	f.sent = append(f.sent, msg)
	f.mu.Unlock()
	f.sentCh <- msg
	return nil
}

func (f *fakeTerminalStream) Recv() (*apiv1.TerminalServerMessage, error) {
	closeCh := f.closeSent
	if !f.endRecvOnClose {
		closeCh = nil
	}
	var done <-chan struct{}
	if f.ctx != nil {
		done = f.ctx.Done()
	}
	select {
	case reply, ok := <-f.recvCh:
		if !ok {
			return nil, io.EOF
		}
		return reply.msg, reply.err
	case <-closeCh:
		return nil, io.EOF
	case <-done:
		return nil, status.FromContextError(f.ctx.Err()).Err()
	}
}

func (f *fakeTerminalStream) CloseSend() error {
	f.closeOnce.Do(func() { close(f.closeSent) })
	return nil
}

func (f *fakeTerminalStream) sentMessages() []*apiv1.TerminalClientMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*apiv1.TerminalClientMessage(nil), f.sent...)
}

func newAttachHarness(settings *config.Settings, endRecvOnClose bool) (*AttachStream, *fakeTerminalStream) {
	stream := newFakeTerminalStream(endRecvOnClose)
	fake := &fakeSessionClient{stream: stream}
	return NewAttachStream(fake, settings, "sess-1"), stream
}

func nextSent(t *testing.T, s *fakeTerminalStream) *apiv1.TerminalClientMessage {
	t.Helper()
	select {
	case msg := <-s.sentCh:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no message reached the stream")
		return nil
	}
}

// nextSentSkippingHeartbeats reads sent messages until one that is not a
// heartbeat arrives.
func nextSentSkippingHeartbeats(t *testing.T, s *fakeTerminalStream) *apiv1.TerminalClientMessage {
	t.Helper()
	for {
		msg := nextSent(t, s)
		if msg.GetType() != protocol.ClientHeartbeat {
			return msg
		}
	}
}

func waitForState(t *testing.T, current func() State, want State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if current() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("stream never reached state %s (still %s)", want, current())
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestAttachRegistersFirstAndSendsInput(t *testing.T) {
	a, stream := newAttachHarness(nil, true)
	ready := make(chan string, 1)
	a.OnReady(func(sessionID string) { ready <- sessionID })

	if err := a.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}

	reg := nextSent(t, stream)
	if reg.GetType() != protocol.ClientRegister {
		t.Fatalf("first message type = %q, want %q", reg.GetType(), protocol.ClientRegister)
	}
	if reg.GetSessionId() != "sess-1" {
		t.Fatalf("register session = %q", reg.GetSessionId())
	}
	if !version.IsAttachMarker(reg.GetVersion()) {
		t.Fatalf("register version %q is not an attach marker", reg.GetVersion())
	}
	if first := stream.sentMessages()[0]; first.GetType() != protocol.ClientRegister {
		t.Fatalf("registration was not the first message on the wire: %q", first.GetType())
	}

	stream.recvCh <- recvReply{msg: &apiv1.TerminalServerMessage{
		Type:      protocol.ServerStartSession,
		SessionId: "sess-1",
	}}
	select {
	case id := <-ready:
		if id != "sess-1" {
			t.Fatalf("ready session = %q", id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ready event never delivered")
	}
	waitForState(t, a.State, StateConnected)

	if err := a.SendInput([]byte("ls\n")); err != nil {
		t.Fatalf("send input: %v", err)
	}
	out := nextSent(t, stream)
	if out.GetType() != protocol.ClientOutput {
		t.Fatalf("input message type = %q, want %q", out.GetType(), protocol.ClientOutput)
	}
	if string(out.GetData()) != "ls\n" {
		t.Fatalf("input payload = %q, want %q", out.GetData(), "ls\n")
	}
	if reg.GetMessageId() == 0 || out.GetMessageId() <= reg.GetMessageId() {
		t.Fatalf("message ids not increasing: register %d, output %d", reg.GetMessageId(), out.GetMessageId())
	}

	waitFor(t, func() bool { return a.Metrics().BytesSent == 3 }, "bytesSent never reached 3")

	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if got := a.State(); got != StateClosed {
		t.Fatalf("state after close = %s", got)
	}
}

func TestAttachEarlyInputDuringRegistering(t *testing.T) {
	a, stream := newAttachHarness(nil, true)
	if err := a.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	nextSent(t, stream) // register

	// Input may be queued before the session handoff completes.
	if err := a.SendInput([]byte("early")); err != nil {
		t.Fatalf("send input while registering: %v", err)
	}
	msg := nextSent(t, stream)
	if msg.GetType() != protocol.ClientOutput || string(msg.GetData()) != "early" {
		t.Fatalf("unexpected message: %+v", msg)
	}

	// Resize and signal need the full handshake.
	if err := a.SendResize(80, 24); !rpcerrors.IsCode(err, rpcerrors.CodeConnection) {
		t.Fatalf("expected connection error, got %v", err)
	}
	if err := a.SendSignal("SIGINT"); !rpcerrors.IsCode(err, rpcerrors.CodeConnection) {
		t.Fatalf("expected connection error, got %v", err)
	}

	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestAttachOutboundFIFO(t *testing.T) {
	a, stream := newAttachHarness(nil, true)
	if err := a.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	nextSent(t, stream) // register
	stream.recvCh <- recvReply{msg: &apiv1.TerminalServerMessage{
		Type:      protocol.ServerStartSession,
		SessionId: "sess-1",
	}}
	waitForState(t, a.State, StateConnected)

	if err := a.SendInput([]byte("a")); err != nil {
		t.Fatalf("send input: %v", err)
	}
	if err := a.SendResize(120, 40); err != nil {
		t.Fatalf("send resize: %v", err)
	}
	if err := a.SendSignal("SIGINT"); err != nil {
		t.Fatalf("send signal: %v", err)
	}

	first := nextSent(t, stream)
	second := nextSent(t, stream)
	third := nextSent(t, stream)

	if first.GetType() != protocol.ClientOutput || string(first.GetData()) != "a" {
		t.Fatalf("first queued message: %+v", first)
	}
	if second.GetType() != protocol.ClientStatus || second.GetReason() != "resize:120x40" {
		t.Fatalf("second queued message: %+v", second)
	}
	if third.GetType() != protocol.ClientStatus || third.GetReason() != "signal:SIGINT" {
		t.Fatalf("third queued message: %+v", third)
	}
	if !(first.GetMessageId() < second.GetMessageId() && second.GetMessageId() < third.GetMessageId()) {
		t.Fatalf("message ids not increasing: %d, %d, %d",
			first.GetMessageId(), second.GetMessageId(), third.GetMessageId())
	}

	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestAttachPingTriggersImmediateHeartbeat(t *testing.T) {
	settings := &config.Settings{KeepaliveInterval: time.Minute}
	a, stream := newAttachHarness(settings, true)
	if err := a.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	nextSent(t, stream) // register

	// The keepalive timer is a minute out; only the ping can produce a
	// heartbeat this fast.
	stream.recvCh <- recvReply{msg: &apiv1.TerminalServerMessage{Type: protocol.ServerPing}}
	hb := nextSent(t, stream)
	if hb.GetType() != protocol.ClientHeartbeat {
		t.Fatalf("expected heartbeat after ping, got %q", hb.GetType())
	}

	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestAttachIdleHeartbeat(t *testing.T) {
	settings := &config.Settings{KeepaliveInterval: 20 * time.Millisecond}
	a, stream := newAttachHarness(settings, true)
	if err := a.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	nextSent(t, stream) // register

	hb := nextSent(t, stream)
	if hb.GetType() != protocol.ClientHeartbeat {
		t.Fatalf("expected idle heartbeat, got %q", hb.GetType())
	}

	// Real traffic still flows between heartbeats.
	if err := a.SendInput([]byte("x")); err != nil {
		t.Fatalf("send input: %v", err)
	}
	msg := nextSentSkippingHeartbeats(t, stream)
	if msg.GetType() != protocol.ClientOutput || string(msg.GetData()) != "x" {
		t.Fatalf("unexpected message after heartbeats: %+v", msg)
	}

	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestAttachRemoteCloseSession(t *testing.T) {
	a, stream := newAttachHarness(nil, true)
	closedCh := make(chan string, 4)
	a.OnClosed(func(reason string) { closedCh <- reason })

	if err := a.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	nextSent(t, stream) // register
	stream.recvCh <- recvReply{msg: &apiv1.TerminalServerMessage{
		Type:      protocol.ServerStartSession,
		SessionId: "sess-1",
	}}
	waitForState(t, a.State, StateConnected)

	stream.recvCh <- recvReply{msg: &apiv1.TerminalServerMessage{
		Type:   protocol.ServerCloseSession,
		Reason: "shell exited",
	}}
	select {
	case reason := <-closedCh:
		if reason != "shell exited" {
			t.Fatalf("close reason = %q", reason)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("closed event never delivered")
	}
	waitForState(t, a.State, StateClosed)

	if err := a.SendInput([]byte("x")); !rpcerrors.IsCode(err, rpcerrors.CodeConnection) {
		t.Fatalf("expected connection error after close, got %v", err)
	}

	// The trailing end-of-stream must not fire a second closed event.
	close(stream.recvCh)
	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	select {
	case reason := <-closedCh:
		t.Fatalf("duplicate closed event with reason %q", reason)
	default:
	}
}

func TestAttachSurfacesStreamErrors(t *testing.T) {
	a, stream := newAttachHarness(nil, true)
	errs := make(chan error, 4)
	a.OnError(func(err error) { errs <- err })

	if err := a.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	nextSent(t, stream) // register
	stream.recvCh <- recvReply{msg: &apiv1.TerminalServerMessage{
		Type:      protocol.ServerStartSession,
		SessionId: "sess-1",
	}}
	waitForState(t, a.State, StateConnected)

	stream.recvCh <- recvReply{err: status.Error(codes.Unavailable, "relay lost")}
	select {
	case err := <-errs:
		if !rpcerrors.IsCode(err, rpcerrors.CodeUnavailable) {
			t.Fatalf("expected unavailable error, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("stream error never delivered")
	}
	waitForState(t, a.State, StateError)

	if err := a.SendInput([]byte("x")); !rpcerrors.IsCode(err, rpcerrors.CodeConnection) {
		t.Fatalf("expected connection error after failure, got %v", err)
	}
	if got := a.Metrics().Errors; got != 1 {
		t.Fatalf("errors = %d, want 1", got)
	}
}

func TestAttachSuppressesErrorsWhileClosing(t *testing.T) {
	a, stream := newAttachHarness(nil, false)
	a.closeGrace = 5 * time.Second
	errs := make(chan error, 4)
	a.OnError(func(err error) { errs <- err })

	if err := a.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	nextSent(t, stream) // register

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := a.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	}()
	waitForState(t, a.State, StateClosing)

	// A receive failure during teardown stays out of the error listeners.
	stream.recvCh <- recvReply{err: status.Error(codes.Unavailable, "relay torn down")}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("close never finished")
	}
	if got := a.State(); got != StateClosed {
		t.Fatalf("state after close = %s", got)
	}
	select {
	case err := <-errs:
		t.Fatalf("shutdown error leaked to listeners: %v", err)
	default:
	}
}

func TestAttachConnectValidation(t *testing.T) {
	t.Run("blank session id", func(t *testing.T) {
		a := NewAttachStream(&fakeSessionClient{}, nil, "   ")
		if err := a.Connect(context.Background()); !rpcerrors.IsCode(err, rpcerrors.CodeSession) {
			t.Fatalf("expected session error, got %v", err)
		}
		if got := a.State(); got != StateIdle {
			t.Fatalf("state = %s, want idle", got)
		}
	})

	t.Run("dial failure", func(t *testing.T) {
		fake := &fakeSessionClient{connectErr: status.Error(codes.Unavailable, "no relay")}
		a := NewAttachStream(fake, nil, "sess-1")
		if err := a.Connect(context.Background()); !rpcerrors.IsCode(err, rpcerrors.CodeUnavailable) {
			t.Fatalf("expected unavailable error, got %v", err)
		}
		if got := a.State(); got != StateError {
			t.Fatalf("state = %s, want error", got)
		}
	})

	t.Run("register failure", func(t *testing.T) {
		a, stream := newAttachHarness(nil, true)
		stream.sendErr = status.Error(codes.Unavailable, "broken pipe")
		if err := a.Connect(context.Background()); !rpcerrors.IsCode(err, rpcerrors.CodeUnavailable) {
			t.Fatalf("expected unavailable error, got %v", err)
		}
		if got := a.State(); got != StateError {
			t.Fatalf("state = %s, want error", got)
		}
	})

	t.Run("double connect", func(t *testing.T) {
		a, stream := newAttachHarness(nil, true)
		if err := a.Connect(context.Background()); err != nil {
			t.Fatalf("connect: %v", err)
		}
		nextSent(t, stream)
		if err := a.Connect(context.Background()); !rpcerrors.IsCode(err, rpcerrors.CodeConnection) {
			t.Fatalf("expected connection error, got %v", err)
		}
		if err := a.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
}
