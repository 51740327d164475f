package constants

import "time"

// Shared duration vocabulary used by timeouts and polling cadences.
// Keep these centralized to simplify system-wide timing tuning.
const (
	Duration200Milliseconds = 200 * time.Millisecond

	Duration2Seconds  = 2 * time.Second
	Duration5Seconds  = 5 * time.Second
	Duration15Seconds = 15 * time.Second
)

// Domain-level timeout constants.
const (
	// HealthCheckTimeout bounds the liveness probe against a discovered
	// agent descriptor before the descriptor is considered stale.
	HealthCheckTimeout = Duration2Seconds

	GRPCClientDialTimeout       = Duration5Seconds
	GRPCClientMinConnectTimeout = Duration5Seconds

	// PollFastInterval is the output poll cadence while a session is
	// producing data; PollSlowInterval takes over after
	// PollIdleThreshold consecutive empty polls.
	PollFastInterval = Duration200Milliseconds
	PollSlowInterval = Duration2Seconds

	// KeepaliveInterval is shared between the attach queue's idle
	// heartbeat and the channel-level protocol keepalive.
	KeepaliveInterval = Duration15Seconds

	StubShutdownTimeout = Duration5Seconds
)

// PollIdleThreshold is the number of consecutive empty polls after which
// the output stream falls back to PollSlowInterval.
const PollIdleThreshold = 10
