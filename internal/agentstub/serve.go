package agentstub

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strings"
	"time"

	"google.golang.org/grpc"

	"github.com/tether-ai/tether/internal/constants"
	"github.com/tether-ai/tether/internal/grpcclient"
	"github.com/tether-ai/tether/internal/version"
)

// ServeOptions configure a standalone stub agent process.
type ServeOptions struct {
	// Address is a unix socket path (bare or unix://) or a TCP host:port.
	Address string
	// DescriptorPath, when set, is where the discovery descriptor is
	// written on startup and removed on shutdown.
	DescriptorPath string
	// TokenPath is advertised in the descriptor for clients that need a
	// bearer token. The stub itself does not enforce tokens.
	TokenPath string
	// Engine selects the session engine ("echo" or "pty").
	Engine string
	// Hostname overrides the hostname reported for sessions.
	Hostname string
}

// ListenAndServe runs a stub agent until ctx is cancelled or the listener
// fails. It writes the discovery descriptor (when configured) so local
// clients can find the agent without explicit addresses.
func ListenAndServe(ctx context.Context, opts ServeOptions) error {
	factory, err := NewEngineFactory(opts.Engine)
	if err != nil {
		return err
	}

	kind, network, addr, err := splitListenAddress(opts.Address)
	if err != nil {
		return err
	}
	if network == "unix" {
		// A stale socket from a previous run blocks the bind.
		if err := os.Remove(addr); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("agentstub: remove stale socket: %w", err)
		}
	}

	lis, err := net.Listen(network, addr)
	if err != nil {
		return fmt.Errorf("agentstub: listen on %s: %w", opts.Address, err)
	}
	defer lis.Close()

	serverOpts := []ServerOption{WithEngineFactory(factory)}
	if opts.Hostname != "" {
		serverOpts = append(serverOpts, WithHostname(opts.Hostname))
	}
	stub := NewServer(serverOpts...)

	grpcServer := grpc.NewServer()
	stub.Register(grpcServer)

	if opts.DescriptorPath != "" {
		descriptor := &grpcclient.Descriptor{
			ProtocolVersion: version.Protocol,
			PID:             os.Getpid(),
			TransportKind:   kind,
			Address:         addr,
			TokenPath:       opts.TokenPath,
		}
		if err := grpcclient.SaveDescriptor(opts.DescriptorPath, descriptor); err != nil {
			return err
		}
		defer func() {
			if err := grpcclient.RemoveDescriptor(opts.DescriptorPath); err != nil {
				log.Printf("[agentstub] %v", err)
			}
		}()
	}

	log.Printf("[agentstub] serving on %s (%s)", lis.Addr(), engineName(opts.Engine))

	errCh := make(chan error, 1)
	go func() { errCh <- grpcServer.Serve(lis) }()

	select {
	case err := <-errCh:
		return fmt.Errorf("agentstub: serve: %w", err)
	case <-ctx.Done():
	}

	stub.SetHealth(false)
	stub.CloseAll("agent shutting down")

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(constants.StubShutdownTimeout):
		grpcServer.Stop()
		<-stopped
	}
	<-errCh
	log.Printf("[agentstub] stopped")
	return nil
}

func engineName(name string) string {
	if name == "" {
		return EngineEcho
	}
	return name
}

// splitListenAddress classifies a listen address: unix:// and tcp://
// prefixes are explicit, a bare path is a unix socket, host:port is TCP.
func splitListenAddress(address string) (kind, network, addr string, err error) {
	address = strings.TrimSpace(address)
	switch {
	case address == "":
		return "", "", "", errors.New("agentstub: listen address is empty")
	case strings.HasPrefix(address, "unix://"):
		return grpcclient.TransportUnix, "unix", strings.TrimPrefix(address, "unix://"), nil
	case strings.HasPrefix(address, "tcp://"):
		return grpcclient.TransportTCP, "tcp", strings.TrimPrefix(address, "tcp://"), nil
	case strings.HasPrefix(address, "/"):
		return grpcclient.TransportUnix, "unix", address, nil
	case strings.Contains(address, ":"):
		return grpcclient.TransportTCP, "tcp", address, nil
	default:
		return grpcclient.TransportUnix, "unix", address, nil
	}
}
