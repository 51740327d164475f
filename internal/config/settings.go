package config

import (
	"crypto/tls"
	"time"

	"github.com/tether-ai/tether/internal/constants"
)

// Settings is the client configuration shared by the transport and the
// streams built on it. It is constructed once and passed by reference;
// there is no hidden process-wide cache.
type Settings struct {
	// AgentID is the routing identifier injected as a header on remote
	// calls. Empty means no routing header.
	AgentID string

	// Address overrides discovery when non-empty. It accepts a schemed
	// address, host:port, or a bare socket path.
	Address string

	// DescriptorPath overrides the descriptor search order when non-empty.
	DescriptorPath string

	// Token is the bearer token injected on every call. Discovery may
	// replace it with the token referenced by the descriptor.
	Token string

	// TLS enables a TLS channel for remote addresses. Nil means plaintext.
	TLS *tls.Config

	DialTimeout   time.Duration
	HealthTimeout time.Duration

	PollFastInterval  time.Duration
	PollSlowInterval  time.Duration
	PollIdleThreshold int

	KeepaliveInterval time.Duration

	MaxRecvMessageBytes int
	MaxSendMessageBytes int
}

// Overrides carries optional per-field replacements for a Settings value.
// Zero-valued fields are ignored by Apply.
type Overrides struct {
	AgentID        string
	Address        string
	DescriptorPath string
	Token          string
	TLS            *tls.Config

	DialTimeout   time.Duration
	HealthTimeout time.Duration

	PollFastInterval  time.Duration
	PollSlowInterval  time.Duration
	PollIdleThreshold int

	KeepaliveInterval time.Duration

	MaxRecvMessageBytes int
	MaxSendMessageBytes int
}

// Default returns the settings used when the caller supplies nothing.
func Default() *Settings {
	return &Settings{
		DialTimeout:         constants.GRPCClientDialTimeout,
		HealthTimeout:       constants.HealthCheckTimeout,
		PollFastInterval:    constants.PollFastInterval,
		PollSlowInterval:    constants.PollSlowInterval,
		PollIdleThreshold:   constants.PollIdleThreshold,
		KeepaliveInterval:   constants.KeepaliveInterval,
		MaxRecvMessageBytes: constants.MaxRecvMessageBytes,
		MaxSendMessageBytes: constants.MaxSendMessageBytes,
	}
}

// Apply merges non-zero override fields into s.
func (s *Settings) Apply(o Overrides) {
	if o.AgentID != "" {
		s.AgentID = o.AgentID
	}
	if o.Address != "" {
		s.Address = o.Address
	}
	if o.DescriptorPath != "" {
		s.DescriptorPath = o.DescriptorPath
	}
	if o.Token != "" {
		s.Token = o.Token
	}
	if o.TLS != nil {
		s.TLS = o.TLS
	}
	if o.DialTimeout != 0 {
		s.DialTimeout = o.DialTimeout
	}
	if o.HealthTimeout != 0 {
		s.HealthTimeout = o.HealthTimeout
	}
	if o.PollFastInterval != 0 {
		s.PollFastInterval = o.PollFastInterval
	}
	if o.PollSlowInterval != 0 {
		s.PollSlowInterval = o.PollSlowInterval
	}
	if o.PollIdleThreshold != 0 {
		s.PollIdleThreshold = o.PollIdleThreshold
	}
	if o.KeepaliveInterval != 0 {
		s.KeepaliveInterval = o.KeepaliveInterval
	}
	if o.MaxRecvMessageBytes != 0 {
		s.MaxRecvMessageBytes = o.MaxRecvMessageBytes
	}
	if o.MaxSendMessageBytes != 0 {
		s.MaxSendMessageBytes = o.MaxSendMessageBytes
	}
}

// Normalize fills zero-valued timing and size fields from Default so a
// hand-built Settings literal behaves like Default() plus overrides.
// Zero values here would otherwise mean instant deadlines and zero-byte
// message caps.
func (s *Settings) Normalize() {
	d := Default()
	if s.DialTimeout <= 0 {
		s.DialTimeout = d.DialTimeout
	}
	if s.HealthTimeout <= 0 {
		s.HealthTimeout = d.HealthTimeout
	}
	if s.PollFastInterval <= 0 {
		s.PollFastInterval = d.PollFastInterval
	}
	if s.PollSlowInterval <= 0 {
		s.PollSlowInterval = d.PollSlowInterval
	}
	if s.PollIdleThreshold <= 0 {
		s.PollIdleThreshold = d.PollIdleThreshold
	}
	if s.KeepaliveInterval <= 0 {
		s.KeepaliveInterval = d.KeepaliveInterval
	}
	if s.MaxRecvMessageBytes <= 0 {
		s.MaxRecvMessageBytes = d.MaxRecvMessageBytes
	}
	if s.MaxSendMessageBytes <= 0 {
		s.MaxSendMessageBytes = d.MaxSendMessageBytes
	}
}

// Reset restores s to the defaults. Tests use it to undo overrides without
// rebuilding the objects holding the reference.
func (s *Settings) Reset() {
	*s = *Default()
}
