package agentstub

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	apiv1 "github.com/tether-ai/tether/internal/api/grpc/v1"
	"github.com/tether-ai/tether/internal/constants"
	"github.com/tether-ai/tether/internal/protocol"
	"github.com/tether-ai/tether/internal/version"
)

// Server implements SessionService, AgentService and the standard health
// protocol over in-memory sessions.
type Server struct {
	apiv1.UnimplementedSessionServiceServer
	apiv1.UnimplementedAgentServiceServer

	hostname  string
	newEngine EngineFactory
	health    *health.Server

	mu       sync.Mutex
	sessions map[string]*session

	agentMu     sync.Mutex
	agentScript []*apiv1.AgentStreamEvent
	agentDelay  time.Duration
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithEngineFactory replaces the default echo engine.
func WithEngineFactory(factory EngineFactory) ServerOption {
	return func(s *Server) { s.newEngine = factory }
}

// WithHostname overrides the hostname reported for created sessions.
func WithHostname(hostname string) ServerOption {
	return func(s *Server) { s.hostname = hostname }
}

// NewServer builds a stub agent. The default engine is echo.
func NewServer(opts ...ServerOption) *Server {
	hostname, _ := os.Hostname()
	s := &Server{
		hostname:  hostname,
		newEngine: func() Engine { return newEchoEngine() },
		health:    health.NewServer(),
		sessions:  make(map[string]*session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all three services to a gRPC server.
func (s *Server) Register(reg grpc.ServiceRegistrar) {
	apiv1.RegisterSessionServiceServer(reg, s)
	apiv1.RegisterAgentServiceServer(reg, s)
	grpc_health_v1.RegisterHealthServer(reg, s.health)
}

// SetHealth flips the health status reported to liveness probes. Tests use
// it to simulate a crashed or draining agent.
func (s *Server) SetHealth(serving bool) {
	st := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if serving {
		st = grpc_health_v1.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", st)
}

// SetAgentScript replaces the event sequence RunAgentStream replays. An
// empty script restores the default acknowledgement behavior.
func (s *Server) SetAgentScript(events ...*apiv1.AgentStreamEvent) {
	s.agentMu.Lock()
	s.agentScript = events
	s.agentMu.Unlock()
}

// SetAgentDelay inserts a pause before each scripted agent event.
func (s *Server) SetAgentDelay(d time.Duration) {
	s.agentMu.Lock()
	s.agentDelay = d
	s.agentMu.Unlock()
}

// CloseAll ends every session. Used at shutdown.
func (s *Server) CloseAll(reason string) {
	s.mu.Lock()
	all := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		all = append(all, sess)
	}
	s.mu.Unlock()
	for _, sess := range all {
		sess.close(reason)
	}
}

func (s *Server) lookup(id string) (*session, error) {
	id = strings.TrimSpace(id)
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "session %s not found", id)
	}
	return sess, nil
}

func (s *Server) CreateSession(ctx context.Context, req *apiv1.CreateSessionRequest) (*apiv1.CreateSessionResponse, error) {
	hostname := req.GetHostname()
	if hostname == "" {
		hostname = s.hostname
	}

	id := uuid.New().String()[:8]
	sess := newSession(id, hostname, req, s.newEngine())
	if err := sess.start(req.GetEnv()); err != nil {
		return nil, status.Errorf(codes.Internal, "start session: %v", err)
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	log.Printf("[agentstub] session %s created", id)
	return &apiv1.CreateSessionResponse{Session: sess.snapshotInfo()}, nil
}

func (s *Server) CloseSession(ctx context.Context, req *apiv1.CloseSessionRequest) (*apiv1.CloseSessionResponse, error) {
	sess, err := s.lookup(req.GetSessionId())
	if err != nil {
		return nil, err
	}
	if sess.close("closed by client") {
		log.Printf("[agentstub] session %s closed", sess.id)
	}
	return &apiv1.CloseSessionResponse{}, nil
}

func (s *Server) GetSessionStatus(ctx context.Context, req *apiv1.GetSessionStatusRequest) (*apiv1.GetSessionStatusResponse, error) {
	sess, err := s.lookup(req.GetSessionId())
	if err != nil {
		return nil, err
	}
	return &apiv1.GetSessionStatusResponse{Session: sess.snapshotInfo()}, nil
}

func (s *Server) ListSessions(ctx context.Context, req *apiv1.ListSessionsRequest) (*apiv1.ListSessionsResponse, error) {
	s.mu.Lock()
	all := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		all = append(all, sess)
	}
	s.mu.Unlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].createdAt.Equal(all[j].createdAt) {
			return all[i].id < all[j].id
		}
		return all[i].createdAt.Before(all[j].createdAt)
	})

	resp := &apiv1.ListSessionsResponse{}
	for _, sess := range all {
		if req.GetHostname() != "" && sess.hostname != req.GetHostname() {
			continue
		}
		resp.Sessions = append(resp.Sessions, sess.snapshotInfo())
	}
	return resp, nil
}

func (s *Server) SendInput(ctx context.Context, req *apiv1.SendInputRequest) (*apiv1.SendInputResponse, error) {
	sess, err := s.lookup(req.GetSessionId())
	if err != nil {
		return nil, err
	}
	if err := sess.write(req.GetData()); err != nil {
		return nil, sessionOpError("write input", err)
	}
	return &apiv1.SendInputResponse{}, nil
}

func (s *Server) SendResize(ctx context.Context, req *apiv1.SendResizeRequest) (*apiv1.SendResizeResponse, error) {
	sess, err := s.lookup(req.GetSessionId())
	if err != nil {
		return nil, err
	}
	if req.GetCols() == 0 || req.GetRows() == 0 {
		return nil, status.Error(codes.InvalidArgument, "cols and rows must be positive")
	}
	if err := sess.resize(uint16(req.GetCols()), uint16(req.GetRows())); err != nil {
		return nil, sessionOpError("resize", err)
	}
	return &apiv1.SendResizeResponse{}, nil
}

func (s *Server) SendSignal(ctx context.Context, req *apiv1.SendSignalRequest) (*apiv1.SendSignalResponse, error) {
	sess, err := s.lookup(req.GetSessionId())
	if err != nil {
		return nil, err
	}
	if err := sess.signal(req.GetSignal()); err != nil {
		return nil, sessionOpError("signal", err)
	}
	return &apiv1.SendSignalResponse{}, nil
}

func (s *Server) GetOutput(ctx context.Context, req *apiv1.GetOutputRequest) (*apiv1.GetOutputResponse, error) {
	sess, err := s.lookup(req.GetSessionId())
	if err != nil {
		return nil, err
	}
	max := int(req.GetMaxBytes())
	if max == 0 {
		max = constants.PollChunkBytes
	}
	return &apiv1.GetOutputResponse{Data: sess.buffer.ReadAt(req.GetOffset(), max)}, nil
}

func (s *Server) GetHistory(ctx context.Context, req *apiv1.GetHistoryRequest) (*apiv1.GetHistoryResponse, error) {
	sess, err := s.lookup(req.GetSessionId())
	if err != nil {
		return nil, err
	}
	return &apiv1.GetHistoryResponse{Data: sess.buffer.Tail(int(req.GetMaxBytes()))}, nil
}

// sessionOpError translates session/engine failures into status codes.
func sessionOpError(op string, err error) error {
	switch {
	case errors.Is(err, errSessionClosed):
		return status.Errorf(codes.FailedPrecondition, "%s: session is closed", op)
	case errors.Is(err, errUnknownSignal):
		return status.Errorf(codes.InvalidArgument, "%s: %v", op, err)
	default:
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}

// ConnectTerminal serves one duplex attach. The first client message must
// be a registration carrying the attach version marker; after the
// start_session acknowledgement, session output flows down as input
// messages and client keystrokes come up as output messages. All sends
// happen on this goroutine, funneled through the watcher channel, so no
// send lock is needed.
func (s *Server) ConnectTerminal(stream apiv1.SessionService_ConnectTerminalServer) error {
	first, err := stream.Recv()
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "expected register message: %v", err)
	}
	if first.GetType() != protocol.ClientRegister {
		return status.Errorf(codes.InvalidArgument, "first message must be %s", protocol.ClientRegister)
	}
	sessionID := strings.TrimSpace(first.GetSessionId())
	if sessionID == "" {
		return status.Error(codes.InvalidArgument, "session_id is required")
	}

	peerVersion, attach, ok := version.ParseMarker(first.GetVersion())
	if !ok || !attach {
		return status.Error(codes.InvalidArgument, "registration must carry an attach version marker")
	}
	if warning := version.CheckVersionMismatch(peerVersion); warning != "" {
		log.Printf("[agentstub] %s", warning)
	}

	sess, err := s.lookup(sessionID)
	if err != nil {
		return err
	}

	watcher := newTerminalWatcher()
	if err := sess.attachWatcher(watcher); err != nil {
		return status.Errorf(codes.FailedPrecondition, "session %s is closed", sessionID)
	}
	defer sess.detachWatcher(watcher)

	if err := stream.Send(&apiv1.TerminalServerMessage{
		Type:      protocol.ServerStartSession,
		SessionId: sessionID,
	}); err != nil {
		return err
	}
	log.Printf("[agentstub] session %s: terminal attached", sessionID)

	ctx := stream.Context()
	recvErr := make(chan error, 1)
	go func() {
		defer close(recvErr)
		for {
			msg, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				recvErr <- err
				return
			}
			s.handleTerminalClient(sess, msg)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return status.FromContextError(ctx.Err()).Err()
		case err, ok := <-recvErr:
			if !ok {
				return nil
			}
			return err
		case msg, ok := <-watcher.ch:
			if !ok {
				return nil
			}
			if err := stream.Send(msg); err != nil {
				return err
			}
			if msg.GetType() == protocol.ServerCloseSession {
				return nil
			}
		}
	}
}

// handleTerminalClient runs on the attach stream's receive goroutine.
func (s *Server) handleTerminalClient(sess *session, msg *apiv1.TerminalClientMessage) {
	switch msg.GetType() {
	case protocol.ClientOutput:
		if len(msg.GetData()) == 0 {
			return
		}
		if err := sess.write(msg.GetData()); err != nil {
			log.Printf("[agentstub] session %s: write input: %v", sess.id, err)
		}
	case protocol.ClientStatus:
		s.handleClientStatus(sess, msg.GetReason())
	case protocol.ClientHeartbeat:
		// Keepalive only.
	case protocol.ClientRegister:
		log.Printf("[agentstub] session %s: duplicate register ignored", sess.id)
	default:
		log.Printf("[agentstub] session %s: unknown client message type %q", sess.id, msg.GetType())
	}
}

func (s *Server) handleClientStatus(sess *session, reason string) {
	if cols, rows, ok := protocol.ParseResizeReason(reason); ok {
		if err := sess.resize(cols, rows); err != nil {
			log.Printf("[agentstub] session %s: resize: %v", sess.id, err)
		}
		return
	}
	if signal, ok := protocol.ParseSignalReason(reason); ok {
		if err := sess.signal(signal); err != nil {
			log.Printf("[agentstub] session %s: signal: %v", sess.id, err)
		}
		return
	}
	log.Printf("[agentstub] session %s: unknown status reason %q", sess.id, reason)
}

func (s *Server) RunAgent(ctx context.Context, req *apiv1.RunAgentRequest) (*apiv1.RunAgentResponse, error) {
	events := s.agentPlan(req)
	for i := len(events) - 1; i >= 0; i-- {
		if result := events[i].GetResult(); result != nil {
			return &apiv1.RunAgentResponse{Result: result}, nil
		}
	}
	return &apiv1.RunAgentResponse{Result: &apiv1.AgentResult{
		RequestId: req.GetRequestId(),
		Success:   true,
	}}, nil
}

func (s *Server) RunAgentStream(req *apiv1.RunAgentRequest, stream apiv1.AgentService_RunAgentStreamServer) error {
	events := s.agentPlan(req)
	s.agentMu.Lock()
	delay := s.agentDelay
	s.agentMu.Unlock()

	ctx := stream.Context()
	for _, event := range events {
		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return status.FromContextError(ctx.Err()).Err()
			case <-timer.C:
			}
		}
		if err := ctx.Err(); err != nil {
			return status.FromContextError(err).Err()
		}
		if err := stream.Send(event); err != nil {
			return err
		}
	}
	return nil
}

// agentPlan clones the configured script (or the default acknowledgement)
// and stamps the request id into result events that lack one.
func (s *Server) agentPlan(req *apiv1.RunAgentRequest) []*apiv1.AgentStreamEvent {
	s.agentMu.Lock()
	script := s.agentScript
	s.agentMu.Unlock()

	if len(script) == 0 {
		script = defaultAgentEvents(req)
	}
	events := make([]*apiv1.AgentStreamEvent, 0, len(script))
	for _, event := range script {
		clone := proto.Clone(event).(*apiv1.AgentStreamEvent)
		if result := clone.GetResult(); result != nil && result.GetRequestId() == "" {
			result.RequestId = req.GetRequestId()
		}
		events = append(events, clone)
	}
	return events
}

func defaultAgentEvents(req *apiv1.RunAgentRequest) []*apiv1.AgentStreamEvent {
	ack := "ack: " + strings.TrimSpace(req.GetPrompt())
	return []*apiv1.AgentStreamEvent{
		{Type: protocol.AgentEventThinking, Text: "planning"},
		{Type: protocol.AgentEventToken, Token: ack},
		{Type: protocol.AgentEventResult, Result: &apiv1.AgentResult{
			Success: true,
			Text:    ack,
		}},
	}
}
