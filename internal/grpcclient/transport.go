package grpcclient

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/tether-ai/tether/internal/config"
	"github.com/tether-ai/tether/internal/constants"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

// insecureWarnOnce keeps repeated --insecure connections from spamming the
// log; one warning per process is enough.
var insecureWarnOnce sync.Once

// passthroughPrefix bypasses gRPC DNS resolution, matching deprecated DialContext behaviour.
const passthroughPrefix = "passthrough:///"

// NormalizeAddress maps user-supplied addresses onto dialable targets.
// Schemed addresses and host:port pairs pass through unchanged; anything
// else is a filesystem path (local socket or named pipe) and gets the
// unix scheme.
func NormalizeAddress(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" || strings.Contains(addr, "://") || strings.Contains(addr, ":") {
		return addr
	}
	return "unix://" + addr
}

// dial builds the channel for a normalized address. The connection itself
// is lazy; failures surface on the first call.
func dial(target string, s *config.Settings) (*grpc.ClientConn, error) {
	if path, ok := unixPath(target); ok {
		return dialUnixSocket(path, s)
	}

	address, tlsConfig, err := resolveRemote(target, s)
	if err != nil {
		return nil, err
	}

	opts := append(baseDialOptions(s),
		grpc.WithConnectParams(grpc.ConnectParams{
			MinConnectTimeout: s.DialTimeout,
		}),
	)
	if tlsConfig != nil {
		opts = append(opts, grpc.WithTransportCredentials(credentials.NewTLS(tlsConfig)))
	} else {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}

	conn, err := grpc.NewClient(passthroughPrefix+address, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpc: connect %s: %w", address, err)
	}
	return conn, nil
}

// unixPath extracts the socket path from unix-schemed targets.
func unixPath(target string) (string, bool) {
	if rest, ok := strings.CutPrefix(target, "unix://"); ok {
		return rest, true
	}
	if rest, ok := strings.CutPrefix(target, "unix:"); ok {
		return rest, true
	}
	return "", false
}

func dialUnixSocket(sockPath string, s *config.Settings) (*grpc.ClientConn, error) {
	opts := append(baseDialOptions(s),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithContextDialer(func(ctx context.Context, addr string) (net.Conn, error) {
			return net.DialTimeout("unix", sockPath, s.DialTimeout)
		}),
	)

	conn, err := grpc.NewClient("unix:"+sockPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpc: connect unix %s: %w", sockPath, err)
	}
	return conn, nil
}

// baseDialOptions carries the options every channel gets: message size
// caps from settings and the protocol-level keepalive shared with the
// attach queue's idle heartbeat.
func baseDialOptions(s *config.Settings) []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithConnectParams(grpc.ConnectParams{
			MinConnectTimeout: constants.GRPCClientMinConnectTimeout,
		}),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(s.MaxRecvMessageBytes),
			grpc.MaxCallSendMsgSize(s.MaxSendMessageBytes),
		),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                s.KeepaliveInterval,
			Timeout:             s.DialTimeout,
			PermitWithoutStream: true,
		}),
	}
}

// resolveRemote turns a non-unix target into a host:port plus the TLS
// config its scheme implies. Scheme-less host:port pairs let the settings
// decide the credentials.
func resolveRemote(target string, s *config.Settings) (string, *tls.Config, error) {
	if !strings.Contains(target, "://") {
		return target, s.TLS, nil
	}

	u, err := url.Parse(target)
	if err != nil {
		return "", nil, fmt.Errorf("grpc: parse address %q: %w", target, err)
	}
	if u.Host == "" {
		return "", nil, fmt.Errorf("grpc: address %q missing host", target)
	}

	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = defaultPortForScheme(u.Scheme)
	}
	address := net.JoinHostPort(host, port)

	switch strings.ToLower(u.Scheme) {
	case "https", "grpcs":
		tlsConfig := s.TLS
		if tlsConfig == nil {
			tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		return address, tlsConfig, nil
	case "http", "grpc", "tcp":
		return address, nil, nil
	default:
		return "", nil, fmt.Errorf("grpc: unsupported scheme %q", u.Scheme)
	}
}

func defaultPortForScheme(scheme string) string {
	if strings.EqualFold(scheme, "https") || strings.EqualFold(scheme, "grpcs") {
		return "443"
	}
	return "80"
}

// TLSOptions drives TLS configuration when the caller configures the
// transport explicitly (CLI flags, environment variables).
type TLSOptions struct {
	Insecure   bool
	CACertPath string
	ServerName string
}

// BuildTLSConfig turns TLSOptions into the tls.Config carried by
// config.Settings.
func BuildTLSConfig(opts TLSOptions) (*tls.Config, error) {
	if opts.Insecure {
		insecureWarnOnce.Do(func() {
			log.Print("[grpc] WARNING: TLS certificate and hostname verification is disabled. Do NOT use in production.")
		})
		return &tls.Config{InsecureSkipVerify: true, MinVersion: tls.VersionTLS12}, nil //nolint:gosec // user explicitly requested insecure
	}

	var roots *x509.CertPool
	if opts.CACertPath != "" {
		data, err := os.ReadFile(opts.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("grpc: read TLS CA cert: %w", err)
		}
		roots = x509.NewCertPool()
		if !roots.AppendCertsFromPEM(data) {
			return nil, fmt.Errorf("grpc: parse TLS CA cert: %s", opts.CACertPath)
		}
	}

	cfg := &tls.Config{MinVersion: tls.VersionTLS12}
	if roots != nil {
		cfg.RootCAs = roots
	}
	if opts.ServerName != "" {
		cfg.ServerName = opts.ServerName
	}
	return cfg, nil
}
