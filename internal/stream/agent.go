package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"

	apiv1 "github.com/tether-ai/tether/internal/api/grpc/v1"
	"github.com/tether-ai/tether/internal/protocol"
	"github.com/tether-ai/tether/internal/rpcerrors"
)

const cancelledMessage = "agent stream cancelled"

// RunOptions shape one agent run. The named fields are folded into the
// request's options list next to the free-form Options entries; both appear
// in the final request.
type RunOptions struct {
	SessionID    string
	Mode         string
	Timeout      time.Duration
	Model        string
	MaxTurns     int
	MaxRetries   int
	OutputSchema string
	Options      map[string]string
}

// NewRunRequest assembles a RunAgentRequest with a fresh request id. Caller
// options are emitted in key order, then the named overrides; a key present
// in both appears twice and the agent reads the entries additively.
func NewRunRequest(prompt string, opts RunOptions) *apiv1.RunAgentRequest {
	req := &apiv1.RunAgentRequest{
		RequestId:    uuid.New().String(),
		Prompt:       prompt,
		Mode:         opts.Mode,
		SessionId:    opts.SessionID,
		OutputSchema: opts.OutputSchema,
	}
	if opts.Timeout > 0 {
		req.TimeoutMs = opts.Timeout.Milliseconds()
	}

	keys := make([]string, 0, len(opts.Options))
	for k := range opts.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		req.Options = append(req.Options, &apiv1.AgentOption{Key: k, Value: opts.Options[k]})
	}
	if opts.Model != "" {
		req.Options = append(req.Options, &apiv1.AgentOption{Key: protocol.OptionModel, Value: opts.Model})
	}
	if opts.MaxTurns > 0 {
		req.Options = append(req.Options, &apiv1.AgentOption{Key: protocol.OptionMaxTurns, Value: strconv.Itoa(opts.MaxTurns)})
	}
	if opts.MaxRetries > 0 {
		req.Options = append(req.Options, &apiv1.AgentOption{Key: protocol.OptionMaxRetries, Value: strconv.Itoa(opts.MaxRetries)})
	}
	return req
}

// AgentStream runs one agent operation over the server-streaming call,
// fanning progress events out to listeners and returning the terminal
// result. A stream instance is single-use.
type AgentStream struct {
	agent apiv1.AgentServiceClient

	life    *lifecycle
	metrics *Metrics
	events  fanout[*apiv1.AgentStreamEvent]

	mu        sync.Mutex
	cancel    context.CancelFunc
	cancelled bool
}

// NewAgentStream builds a stream over the given agent service client.
func NewAgentStream(agent apiv1.AgentServiceClient) *AgentStream {
	return &AgentStream{
		agent:   agent,
		life:    &lifecycle{},
		metrics: &Metrics{},
	}
}

// OnEvent registers a listener for progress events, including the terminal
// result event.
func (s *AgentStream) OnEvent(fn func(event *apiv1.AgentStreamEvent)) { s.events.add(fn) }

// Start runs the agent and blocks until the terminal result arrives or the
// stream fails. A stream ending without a result message is a protocol
// violation and yields a typed error; a result with success false yields an
// error carrying the agent's own message.
func (s *AgentStream) Start(ctx context.Context, prompt string, opts RunOptions) (*apiv1.AgentResult, error) {
	if !s.life.to(StateConnecting) {
		return nil, rpcerrors.Connection(fmt.Sprintf("agent stream cannot start (stream is %s)", s.life.current()))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	s.cancel = cancel
	cancelled := s.cancelled
	s.mu.Unlock()
	if cancelled {
		s.finish()
		return nil, rpcerrors.Cancelled(cancelledMessage)
	}

	req := NewRunRequest(prompt, opts)
	stream, err := s.agent.RunAgentStream(ctx, req)
	if err != nil {
		s.life.to(StateError)
		return nil, rpcerrors.Map(err, rpcerrors.Context{Op: "run agent", SessionID: opts.SessionID})
	}
	s.life.to(StateConnected)
	s.metrics.recordSend(proto.Size(req))

	var result *apiv1.AgentResult
	for result == nil {
		event, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if s.wasCancelled() {
				s.finish()
				return nil, rpcerrors.Cancelled(cancelledMessage)
			}
			s.metrics.recordError()
			s.life.to(StateError)
			return nil, rpcerrors.Map(err, rpcerrors.Context{Op: "run agent", SessionID: opts.SessionID})
		}
		s.metrics.recordReceive(proto.Size(event))
		s.events.deliver("agent event", event)
		if event.GetType() == protocol.AgentEventResult && event.GetResult() != nil {
			result = event.GetResult()
		}
	}

	if result == nil {
		if s.wasCancelled() {
			s.finish()
			return nil, rpcerrors.Cancelled(cancelledMessage)
		}
		s.life.to(StateError)
		return nil, rpcerrors.Session("agent stream ended without a result message")
	}

	s.finish()
	if !result.GetSuccess() {
		msg := result.GetError()
		if msg == "" {
			msg = "agent run failed"
		}
		return nil, rpcerrors.Session(msg)
	}
	return result, nil
}

// Cancel aborts a running stream. The unwind inside Start is reported as a
// cancellation error rather than the raw transport abort.
func (s *AgentStream) Cancel() {
	s.mu.Lock()
	s.cancelled = true
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// State returns the current lifecycle state.
func (s *AgentStream) State() State { return s.life.current() }

// Metrics returns a snapshot of the stream counters.
func (s *AgentStream) Metrics() MetricsSnapshot { return s.metrics.Snapshot() }

func (s *AgentStream) wasCancelled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelled
}

func (s *AgentStream) finish() {
	s.life.to(StateClosing)
	s.life.to(StateClosed)
}
