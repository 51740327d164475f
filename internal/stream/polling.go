package stream

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	apiv1 "github.com/tether-ai/tether/internal/api/grpc/v1"
	"github.com/tether-ai/tether/internal/config"
	"github.com/tether-ai/tether/internal/constants"
	"github.com/tether-ai/tether/internal/rpcerrors"
)

// PollingStream drives one session over unary calls: input, resize and
// signal go out as independent RPCs while output is pulled by polling
// GetOutput from a byte cursor. The poll cadence adapts, dropping from the
// fast to the slow interval after enough consecutive empty polls and
// snapping back to fast as soon as any byte arrives.
//
// Poll failures are recovered locally: the loop logs, emits an error event
// and reschedules. Only Close (or cancelling the Connect context) stops it.
type PollingStream struct {
	sessions  apiv1.SessionServiceClient
	settings  *config.Settings
	sessionID string

	life    *lifecycle
	metrics *Metrics

	output fanout[[]byte]
	errs   fanout[error]

	mu         sync.Mutex
	cursor     uint64
	emptyPolls int
	started    bool
	cancel     context.CancelFunc

	done chan struct{}

	// wait pauses between polls. Tests replace it to observe the
	// scheduled delays without sleeping.
	wait func(ctx context.Context, d time.Duration) bool
}

// NewPollingStream builds a stream for an existing session. A nil settings
// uses the defaults.
func NewPollingStream(sessions apiv1.SessionServiceClient, settings *config.Settings, sessionID string) *PollingStream {
	if settings == nil {
		settings = config.Default()
	} else {
		settings.Normalize()
	}
	return &PollingStream{
		sessions:  sessions,
		settings:  settings,
		sessionID: sessionID,
		life:      &lifecycle{},
		metrics:   &Metrics{},
		done:      make(chan struct{}),
		wait:      sleepContext,
	}
}

// OnOutput registers a listener for session output bytes.
func (p *PollingStream) OnOutput(fn func(data []byte)) { p.output.add(fn) }

// OnError registers a listener for recovered poll failures. These are
// informational; the stream keeps polling.
func (p *PollingStream) OnError(fn func(err error)) { p.errs.add(fn) }

// Connect starts the poll loop. The stream stays alive until Close is
// called or ctx is cancelled.
func (p *PollingStream) Connect(ctx context.Context) error {
	if !p.life.to(StateConnecting) {
		return rpcerrors.Connection(fmt.Sprintf("output stream cannot start (stream is %s)", p.life.current()))
	}
	p.life.to(StateConnected)

	loopCtx, cancel := context.WithCancel(ctx)
	p.mu.Lock()
	p.started = true
	p.cancel = cancel
	p.mu.Unlock()

	go p.loop(loopCtx)
	return nil
}

// Wait blocks until the stream reaches Closed or ctx is cancelled.
func (p *PollingStream) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close cancels any pending poll timer, stops the loop and transitions the
// stream to Closed. It is safe to call more than once.
func (p *PollingStream) Close() error {
	if !p.life.to(StateClosing) {
		return nil
	}
	p.mu.Lock()
	started := p.started
	cancel := p.cancel
	p.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	if started {
		<-p.done
	} else {
		close(p.done)
	}
	p.life.to(StateClosed)
	return nil
}

// SendInput writes stdin bytes to the session through a unary call.
func (p *PollingStream) SendInput(ctx context.Context, data []byte) error {
	if err := p.life.require("send input", StateConnected); err != nil {
		return err
	}
	_, err := p.sessions.SendInput(ctx, &apiv1.SendInputRequest{
		SessionId: p.sessionID,
		Data:      data,
	})
	if err != nil {
		return rpcerrors.Map(err, rpcerrors.Context{Op: "send input", SessionID: p.sessionID})
	}
	p.metrics.recordSend(len(data))
	return nil
}

// SendResize reports a new terminal geometry for the session.
func (p *PollingStream) SendResize(ctx context.Context, cols, rows uint16) error {
	if err := p.life.require("send resize", StateConnected); err != nil {
		return err
	}
	_, err := p.sessions.SendResize(ctx, &apiv1.SendResizeRequest{
		SessionId: p.sessionID,
		Cols:      uint32(cols),
		Rows:      uint32(rows),
	})
	if err != nil {
		return rpcerrors.Map(err, rpcerrors.Context{Op: "send resize", SessionID: p.sessionID})
	}
	return nil
}

// SendSignal delivers a named POSIX signal to the session process.
func (p *PollingStream) SendSignal(ctx context.Context, signal string) error {
	if err := p.life.require("send signal", StateConnected); err != nil {
		return err
	}
	_, err := p.sessions.SendSignal(ctx, &apiv1.SendSignalRequest{
		SessionId: p.sessionID,
		Signal:    signal,
	})
	if err != nil {
		return rpcerrors.Map(err, rpcerrors.Context{Op: "send signal", SessionID: p.sessionID})
	}
	return nil
}

// State returns the current lifecycle state.
func (p *PollingStream) State() State { return p.life.current() }

// Metrics returns a snapshot of the stream counters.
func (p *PollingStream) Metrics() MetricsSnapshot { return p.metrics.Snapshot() }

// Cursor returns the current output byte offset.
func (p *PollingStream) Cursor() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

// SessionID returns the session this stream polls.
func (p *PollingStream) SessionID() string { return p.sessionID }

func (p *PollingStream) loop(ctx context.Context) {
	defer close(p.done)
	for {
		if ctx.Err() != nil {
			return
		}
		p.pollOnce(ctx)
		if !p.wait(ctx, p.nextDelay()) {
			return
		}
	}
}

// pollOnce fetches the next output chunk. The cursor advances only by the
// exact number of bytes handed to listeners, so a failed poll is retried
// from the same offset without gaps or duplicates.
func (p *PollingStream) pollOnce(ctx context.Context) {
	p.mu.Lock()
	offset := p.cursor
	p.mu.Unlock()

	resp, err := p.sessions.GetOutput(ctx, &apiv1.GetOutputRequest{
		SessionId: p.sessionID,
		Offset:    offset,
		MaxBytes:  constants.PollChunkBytes,
	})
	p.metrics.recordPoll()
	if err != nil {
		st := p.life.current()
		if st == StateClosing || st.Terminal() || ctx.Err() != nil {
			return
		}
		p.metrics.recordError()
		mapped := rpcerrors.Map(err, rpcerrors.Context{Op: "poll output", SessionID: p.sessionID})
		log.Printf("[stream] session %s: poll failed, will retry: %v", p.sessionID, mapped)
		p.errs.deliver("poll error", mapped)
		return
	}

	data := resp.GetData()
	if len(data) == 0 {
		p.mu.Lock()
		p.emptyPolls++
		p.mu.Unlock()
		return
	}

	p.mu.Lock()
	p.cursor += uint64(len(data))
	p.emptyPolls = 0
	p.mu.Unlock()
	p.metrics.recordReceive(len(data))
	p.output.deliver("output", data)
}

func (p *PollingStream) nextDelay() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.emptyPolls >= p.settings.PollIdleThreshold {
		return p.settings.PollSlowInterval
	}
	return p.settings.PollFastInterval
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
