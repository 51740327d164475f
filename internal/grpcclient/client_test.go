package grpcclient

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	apiv1 "github.com/tether-ai/tether/internal/api/grpc/v1"
	"github.com/tether-ai/tether/internal/config"
	"github.com/tether-ai/tether/internal/rpcerrors"
	"github.com/tether-ai/tether/internal/version"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
)

type testSessionServer struct {
	apiv1.UnimplementedSessionServiceServer
}

func (s *testSessionServer) CreateSession(ctx context.Context, req *apiv1.CreateSessionRequest) (*apiv1.CreateSessionResponse, error) {
	return &apiv1.CreateSessionResponse{
		Session: &apiv1.Session{Id: "sess-1", Hostname: req.GetHostname(), Status: "connected"},
	}, nil
}

// startAgentServer runs an in-process agent endpoint that records the
// metadata of the most recent unary call.
func startAgentServer(t *testing.T, healthy bool) (addr string, shutdown func(), lastMD func(key string) string) {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("network not permitted: %v", err)
	}

	var mu sync.Mutex
	captured := map[string]string{}

	server := grpc.NewServer(grpc.UnaryInterceptor(func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			mu.Lock()
			for _, key := range []string{"authorization", agentIDHeader} {
				if values := md.Get(key); len(values) > 0 {
					captured[key] = values[0]
				} else {
					delete(captured, key)
				}
			}
			mu.Unlock()
		}
		return handler(ctx, req)
	}))

	apiv1.RegisterSessionServiceServer(server, &testSessionServer{})
	if healthy {
		hs := health.NewServer()
		hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
		grpc_health_v1.RegisterHealthServer(server, hs)
	}

	go func() {
		if err := server.Serve(lis); err != nil {
			t.Logf("grpc serve exited: %v", err)
		}
	}()

	return lis.Addr().String(), func() { server.Stop() }, func(key string) string {
		mu.Lock()
		defer mu.Unlock()
		return captured[key]
	}
}

func TestConnectExplicitInjectsToken(t *testing.T) {
	addr, shutdown, lastMD := startAgentServer(t, false)
	defer shutdown()

	settings := config.Default()
	settings.Address = "http://" + addr
	settings.Token = "env-token"

	transport := New(settings)
	if err := transport.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { transport.Close() })

	client, err := transport.Client()
	if err != nil {
		t.Fatalf("Client: %v", err)
	}
	sess, err := client.CreateSession(context.Background(), &apiv1.CreateSessionRequest{Hostname: "dev"})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if sess.GetId() != "sess-1" {
		t.Fatalf("unexpected session id %q", sess.GetId())
	}
	if got := lastMD("authorization"); got != "Bearer env-token" {
		t.Fatalf("expected bearer token propagated, got %q", got)
	}
	if got := lastMD(agentIDHeader); got != "" {
		t.Fatalf("expected no routing header before SetAgentID, got %q", got)
	}
}

func TestSetAgentIDInvalidatesClientOnly(t *testing.T) {
	addr, shutdown, lastMD := startAgentServer(t, false)
	defer shutdown()

	settings := config.Default()
	settings.Address = addr // scheme-less host:port passes through normalization

	transport := New(settings)
	if err := transport.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { transport.Close() })

	before, err := transport.Client()
	if err != nil {
		t.Fatalf("Client: %v", err)
	}
	connBefore := transport.conn

	transport.SetAgentID("agent-7")

	if transport.conn != connBefore {
		t.Fatal("SetAgentID must not touch the channel")
	}
	after, err := transport.Client()
	if err != nil {
		t.Fatalf("Client after SetAgentID: %v", err)
	}
	if before == after {
		t.Fatal("SetAgentID must invalidate the cached client")
	}

	if _, err := after.CreateSession(context.Background(), &apiv1.CreateSessionRequest{}); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if got := lastMD(agentIDHeader); got != "agent-7" {
		t.Fatalf("expected routing header agent-7, got %q", got)
	}

	// Same id again is a no-op: the cached client survives.
	transport.SetAgentID("agent-7")
	again, err := transport.Client()
	if err != nil {
		t.Fatalf("Client: %v", err)
	}
	if again != after {
		t.Fatal("setting the same agent id must keep the cached client")
	}
}

func TestConnectIsIdempotent(t *testing.T) {
	addr, shutdown, _ := startAgentServer(t, false)
	defer shutdown()

	settings := config.Default()
	settings.Address = "http://" + addr

	transport := New(settings)
	if err := transport.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { transport.Close() })

	conn := transport.conn
	if err := transport.Connect(context.Background()); err != nil {
		t.Fatalf("second Connect: %v", err)
	}
	if transport.conn != conn {
		t.Fatal("second Connect must reuse the existing channel")
	}
}

func TestClientBeforeConnect(t *testing.T) {
	transport := New(nil)
	if _, err := transport.Client(); !rpcerrors.IsCode(err, rpcerrors.CodeConnection) {
		t.Fatalf("expected connection error, got %v", err)
	}
}

func TestConnectDiscoversAgentAndLoadsToken(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	addr, shutdown, lastMD := startAgentServer(t, true)
	defer shutdown()

	tokenPath := filepath.Join(home, "agent-token")
	if err := os.WriteFile(tokenPath, []byte("file-token\n"), 0o600); err != nil {
		t.Fatalf("write token file: %v", err)
	}

	descPath := filepath.Join(home, ".tether", config.DescriptorName)
	err := SaveDescriptor(descPath, &Descriptor{
		ProtocolVersion: version.Protocol,
		PID:             os.Getpid(),
		TransportKind:   TransportTCP,
		Address:         addr,
		TokenPath:       tokenPath,
	})
	if err != nil {
		t.Fatalf("save descriptor: %v", err)
	}

	transport := New(nil)
	if err := transport.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { transport.Close() })

	client, err := transport.Client()
	if err != nil {
		t.Fatalf("Client: %v", err)
	}
	if _, err := client.CreateSession(context.Background(), &apiv1.CreateSessionRequest{}); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if got := lastMD("authorization"); got != "Bearer file-token" {
		t.Fatalf("expected token from descriptor token file, got %q", got)
	}
}

func TestConnectRemovesStaleDescriptor(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("network not permitted: %v", err)
	}
	deadAddr := lis.Addr().String()
	lis.Close()

	// A live pid keeps the liveness gate out of the way; this test is about
	// the failed health check.
	descPath := filepath.Join(home, ".tether", config.DescriptorName)
	err = SaveDescriptor(descPath, &Descriptor{
		ProtocolVersion: version.Protocol,
		PID:             os.Getpid(),
		TransportKind:   TransportTCP,
		Address:         deadAddr,
	})
	if err != nil {
		t.Fatalf("save descriptor: %v", err)
	}

	settings := config.Default()
	settings.HealthTimeout = 500 * time.Millisecond

	transport := New(settings)
	err = transport.Connect(context.Background())
	if err == nil {
		transport.Close()
		t.Fatal("expected Connect to fail against a dead address")
	}
	if !rpcerrors.IsCode(err, rpcerrors.CodeConnection) {
		t.Fatalf("expected connection error, got %v", err)
	}
	if !strings.Contains(err.Error(), "crashed") {
		t.Fatalf("error should mention a crashed agent, got %q", err.Error())
	}
	if _, statErr := os.Stat(descPath); !os.IsNotExist(statErr) {
		t.Fatalf("stale descriptor should have been removed, stat err = %v", statErr)
	}
}

func TestConnectWithoutDescriptor(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	settings := config.Default()
	settings.DescriptorPath = filepath.Join(home, "absent.json")

	transport := New(settings)
	err := transport.Connect(context.Background())
	if !rpcerrors.IsCode(err, rpcerrors.CodeConnection) {
		t.Fatalf("expected connection error, got %v", err)
	}
	if !strings.Contains(err.Error(), "no agent descriptor") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
