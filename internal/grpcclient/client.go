// Package grpcclient owns the client side of the tether wire: one gRPC
// channel per Transport, service clients that carry credential and routing
// metadata on every call, and discovery of a locally running agent.
package grpcclient

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	apiv1 "github.com/tether-ai/tether/internal/api/grpc/v1"
	"github.com/tether-ai/tether/internal/config"
	"github.com/tether-ai/tether/internal/rpcerrors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// agentIDHeader selects the target agent behind a relay. Attached in
// remote mode only; a local agent is always the only agent.
const agentIDHeader = "x-agent-id"

// Transport produces a reusable channel and a memoized client set.
// Connect is idempotent, SetAgentID swaps routing without reconnecting,
// and Close invalidates every client and stream built from it.
type Transport struct {
	mu       sync.Mutex
	settings *config.Settings

	conn   *grpc.ClientConn
	client *Client

	token   string
	agentID string
	remote  bool
}

// New builds a Transport around the given settings. Nil settings mean
// defaults. No network activity happens until Connect.
func New(settings *config.Settings) *Transport {
	if settings == nil {
		settings = config.Default()
	} else {
		settings.Normalize()
	}
	return &Transport{
		settings: settings,
		token:    strings.TrimSpace(settings.Token),
		agentID:  strings.TrimSpace(settings.AgentID),
	}
}

// Connect builds the channel if absent. Calling it again once a channel
// exists returns immediately.
func (t *Transport) Connect(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn != nil {
		return nil
	}

	if addr := strings.TrimSpace(t.settings.Address); addr != "" {
		return t.connectExplicit(addr)
	}
	return t.connectDiscovered(ctx)
}

// connectExplicit dials a caller-supplied address directly. Explicit
// addresses are treated as remote: calls carry the routing header once an
// agent id is set.
func (t *Transport) connectExplicit(addr string) error {
	conn, err := dial(NormalizeAddress(addr), t.settings)
	if err != nil {
		return rpcerrors.Wrap(rpcerrors.CodeConnection, err.Error(), err)
	}
	t.conn = conn
	t.remote = true
	return nil
}

// connectDiscovered locates a local agent through its descriptor file and
// verifies it is alive before keeping the channel.
func (t *Transport) connectDiscovered(ctx context.Context) error {
	desc, path := FindDescriptor(t.settings.DescriptorPath)
	if desc == nil {
		return rpcerrors.Connection("transport: no agent descriptor found (is the tether agent running?)")
	}

	conn, err := dial(NormalizeAddress(desc.Address), t.settings)
	if err != nil {
		return rpcerrors.Wrap(rpcerrors.CodeConnection, err.Error(), err)
	}

	if err := checkHealth(ctx, conn, t.settings.HealthTimeout); err != nil {
		_ = conn.Close()
		if rmErr := RemoveDescriptor(path); rmErr != nil {
			log.Printf("[grpcclient] remove stale descriptor %s: %v", path, rmErr)
		}
		return rpcerrors.Wrap(rpcerrors.CodeConnection,
			fmt.Sprintf("transport: agent at %s is not responding, it may have crashed (removed stale descriptor %s)", desc.Address, path),
			err)
	}

	token := t.token
	if token == "" {
		token, err = desc.LoadToken()
		if err != nil {
			_ = conn.Close()
			return rpcerrors.Wrap(rpcerrors.CodeAuthentication, fmt.Sprintf("transport: %v", err), err)
		}
	}

	t.conn = conn
	t.token = token
	t.remote = false
	return nil
}

// Client returns the memoized client set, building it on first use and
// after every SetAgentID.
func (t *Transport) Client() (*Client, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		return nil, rpcerrors.Connection("transport: not connected (call Connect first)")
	}
	if t.client == nil {
		t.client = newClient(t.wrapConn())
	}
	return t.client, nil
}

// wrapConn decorates the channel with the metadata the current token and
// routing identifier require. Callers hold t.mu.
func (t *Transport) wrapConn() grpc.ClientConnInterface {
	pairs := make([]string, 0, 4)
	if t.token != "" {
		pairs = append(pairs, "authorization", "Bearer "+t.token)
	}
	if t.remote && t.agentID != "" {
		pairs = append(pairs, agentIDHeader, t.agentID)
	}
	if len(pairs) == 0 {
		return t.conn
	}
	return &metadataConn{base: t.conn, pairs: pairs}
}

// SetAgentID changes which remote agent subsequent calls are routed to.
// Only the cached client is dropped; the channel stays up, so the next
// Client call picks up the new header without reconnecting.
func (t *Transport) SetAgentID(id string) {
	id = strings.TrimSpace(id)

	t.mu.Lock()
	defer t.mu.Unlock()
	if id == t.agentID {
		return
	}
	t.agentID = id
	t.client = nil
}

// AgentID returns the current routing identifier.
func (t *Transport) AgentID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.agentID
}

// Connected reports whether a channel has been built.
func (t *Transport) Connected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.conn != nil
}

// Close tears down the channel. Clients and streams built from this
// transport stop working once it returns; Connect may be called again.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	t.client = nil
	return err
}

// metadataConn is an explicit grpc.ClientConnInterface wrapper adding the
// transport's credential and routing metadata to every unary and streaming
// call.
type metadataConn struct {
	base  grpc.ClientConnInterface
	pairs []string
}

func (m *metadataConn) Invoke(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error {
	return m.base.Invoke(metadata.AppendToOutgoingContext(ctx, m.pairs...), method, args, reply, opts...)
}

func (m *metadataConn) NewStream(ctx context.Context, desc *grpc.StreamDesc, method string, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	return m.base.NewStream(metadata.AppendToOutgoingContext(ctx, m.pairs...), desc, method, opts...)
}

// Client bundles the generated service clients built over one
// metadata-injecting conn. The unary helpers funnel failures through the
// error mapper; stream constructors take the raw service clients and map
// on their own boundaries.
type Client struct {
	sessions apiv1.SessionServiceClient
	agent    apiv1.AgentServiceClient
}

func newClient(cc grpc.ClientConnInterface) *Client {
	return &Client{
		sessions: apiv1.NewSessionServiceClient(cc),
		agent:    apiv1.NewAgentServiceClient(cc),
	}
}

// Sessions exposes the raw session service client for stream constructors.
func (c *Client) Sessions() apiv1.SessionServiceClient { return c.sessions }

// Agent exposes the raw agent service client for stream constructors.
func (c *Client) Agent() apiv1.AgentServiceClient { return c.agent }

// ─── SessionService ───

func (c *Client) CreateSession(ctx context.Context, req *apiv1.CreateSessionRequest) (*apiv1.Session, error) {
	resp, err := c.sessions.CreateSession(ctx, req)
	if err != nil {
		return nil, rpcerrors.Map(err, rpcerrors.Context{Op: "create session"})
	}
	return resp.GetSession(), nil
}

func (c *Client) CloseSession(ctx context.Context, sessionID string) error {
	_, err := c.sessions.CloseSession(ctx, &apiv1.CloseSessionRequest{SessionId: sessionID})
	return rpcerrors.Map(err, rpcerrors.Context{Op: "close session", SessionID: sessionID})
}

func (c *Client) SessionStatus(ctx context.Context, sessionID string) (*apiv1.Session, error) {
	resp, err := c.sessions.GetSessionStatus(ctx, &apiv1.GetSessionStatusRequest{SessionId: sessionID})
	if err != nil {
		return nil, rpcerrors.Map(err, rpcerrors.Context{Op: "session status", SessionID: sessionID})
	}
	return resp.GetSession(), nil
}

func (c *Client) ListSessions(ctx context.Context, hostname string) ([]*apiv1.Session, error) {
	resp, err := c.sessions.ListSessions(ctx, &apiv1.ListSessionsRequest{Hostname: hostname})
	if err != nil {
		return nil, rpcerrors.Map(err, rpcerrors.Context{Op: "list sessions"})
	}
	return resp.GetSessions(), nil
}

func (c *Client) SendInput(ctx context.Context, sessionID string, data []byte) error {
	_, err := c.sessions.SendInput(ctx, &apiv1.SendInputRequest{SessionId: sessionID, Data: data})
	return rpcerrors.Map(err, rpcerrors.Context{Op: "send input", SessionID: sessionID})
}

func (c *Client) SendResize(ctx context.Context, sessionID string, cols, rows uint32) error {
	_, err := c.sessions.SendResize(ctx, &apiv1.SendResizeRequest{SessionId: sessionID, Cols: cols, Rows: rows})
	return rpcerrors.Map(err, rpcerrors.Context{Op: "send resize", SessionID: sessionID})
}

func (c *Client) SendSignal(ctx context.Context, sessionID, signal string) error {
	_, err := c.sessions.SendSignal(ctx, &apiv1.SendSignalRequest{SessionId: sessionID, Signal: signal})
	return rpcerrors.Map(err, rpcerrors.Context{Op: "send signal", SessionID: sessionID})
}

func (c *Client) GetOutput(ctx context.Context, sessionID string, offset uint64, maxBytes uint32) ([]byte, error) {
	resp, err := c.sessions.GetOutput(ctx, &apiv1.GetOutputRequest{SessionId: sessionID, Offset: offset, MaxBytes: maxBytes})
	if err != nil {
		return nil, rpcerrors.Map(err, rpcerrors.Context{Op: "get output", SessionID: sessionID})
	}
	return resp.GetData(), nil
}

func (c *Client) GetHistory(ctx context.Context, sessionID string, maxBytes uint32) ([]byte, error) {
	resp, err := c.sessions.GetHistory(ctx, &apiv1.GetHistoryRequest{SessionId: sessionID, MaxBytes: maxBytes})
	if err != nil {
		return nil, rpcerrors.Map(err, rpcerrors.Context{Op: "get history", SessionID: sessionID})
	}
	return resp.GetData(), nil
}

// ─── AgentService ───

func (c *Client) RunAgent(ctx context.Context, req *apiv1.RunAgentRequest) (*apiv1.AgentResult, error) {
	resp, err := c.agent.RunAgent(ctx, req)
	if err != nil {
		return nil, rpcerrors.Map(err, rpcerrors.Context{Op: "run agent", SessionID: req.GetSessionId()})
	}
	return resp.GetResult(), nil
}
