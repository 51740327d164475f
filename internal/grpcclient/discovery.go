package grpcclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tether-ai/tether/internal/config"
	"github.com/tether-ai/tether/internal/procutil"
	"github.com/tether-ai/tether/internal/version"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// Descriptor is the JSON file a locally running agent writes so clients
// can find it without configuration. Field names are part of the wire
// contract shared with the agent.
type Descriptor struct {
	ProtocolVersion int       `json:"protocolVersion"`
	PID             int       `json:"pid"`
	TransportKind   string    `json:"transportKind"`
	Address         string    `json:"address"`
	TokenPath       string    `json:"tokenPath,omitempty"`
	StartedAt       time.Time `json:"startedAt"`
}

// Transport kinds a descriptor may advertise.
const (
	TransportUnix = "unix"
	TransportPipe = "pipe"
	TransportTCP  = "tcp"
)

// LoadDescriptor reads a descriptor file. If the file does not exist,
// (nil, nil) is returned.
func LoadDescriptor(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("discovery: read descriptor: %w", err)
	}

	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("discovery: decode descriptor %s: %w", path, err)
	}
	return &d, nil
}

// SaveDescriptor persists a descriptor to disk, creating intermediate
// directories as needed. Agents call this on startup; clients only read.
func SaveDescriptor(path string, d *Descriptor) error {
	if d == nil {
		return errors.New("discovery: descriptor is nil")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("discovery: create directory: %w", err)
	}

	if d.StartedAt.IsZero() {
		d.StartedAt = time.Now().UTC()
	}

	encoded, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("discovery: encode descriptor: %w", err)
	}

	if err := os.WriteFile(path, encoded, 0o600); err != nil {
		return fmt.Errorf("discovery: write descriptor: %w", err)
	}
	return nil
}

// RemoveDescriptor deletes a descriptor file. It is not considered an
// error when the file does not exist.
func RemoveDescriptor(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("discovery: remove descriptor: %w", err)
	}
	return nil
}

// FindDescriptor walks the candidate paths (explicit override first, then
// the user and system locations) and returns the first usable descriptor
// along with the path it came from. Unreadable or incompatible files are
// skipped with a log line; (nil, "") means nothing was found.
func FindDescriptor(override string) (*Descriptor, string) {
	for _, path := range config.DescriptorCandidates(override) {
		d, err := LoadDescriptor(path)
		if err != nil {
			log.Printf("[grpcclient] skipping descriptor %s: %v", path, err)
			continue
		}
		if d == nil {
			continue
		}
		if d.ProtocolVersion != version.Protocol {
			log.Printf("[grpcclient] skipping descriptor %s: protocol %d (this client speaks %d)", path, d.ProtocolVersion, version.Protocol)
			continue
		}
		if strings.TrimSpace(d.Address) == "" {
			log.Printf("[grpcclient] skipping descriptor %s: empty address", path)
			continue
		}
		// A descriptor advertising a dead pid is left over from a crash;
		// delete it so later lookups go straight to the next candidate.
		if d.PID > 0 && !procutil.IsProcessAlive(d.PID) {
			log.Printf("[grpcclient] removing stale descriptor %s: process %d is gone", path, d.PID)
			if err := RemoveDescriptor(path); err != nil {
				log.Printf("[grpcclient] %v", err)
			}
			continue
		}
		return d, path
	}
	return nil, ""
}

// LoadToken reads the bearer token file the descriptor references.
// Descriptors without a token path yield an empty token and no error.
func (d *Descriptor) LoadToken() (string, error) {
	path := strings.TrimSpace(d.TokenPath)
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("discovery: read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// checkHealth verifies the agent behind conn answers the standard health
// probe within the given timeout.
func checkHealth(ctx context.Context, conn grpc.ClientConnInterface, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := grpc_health_v1.NewHealthClient(conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{})
	if err != nil {
		return err
	}
	if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
		return fmt.Errorf("discovery: agent reported health %s", resp.GetStatus())
	}
	return nil
}
