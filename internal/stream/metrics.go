package stream

import (
	"sync"
	"time"
)

// Metrics counts a single stream's traffic. Counters only grow; a new
// stream starts a fresh set.
type Metrics struct {
	mu            sync.Mutex
	bytesSent     uint64
	bytesReceived uint64
	pollCount     uint64
	errors        uint64
	lastActivity  time.Time
}

// MetricsSnapshot is a point-in-time copy of a stream's counters.
type MetricsSnapshot struct {
	BytesSent     uint64
	BytesReceived uint64
	PollCount     uint64
	Errors        uint64
	LastActivity  time.Time
}

func (m *Metrics) recordSend(n int) {
	m.mu.Lock()
	m.bytesSent += uint64(n)
	m.lastActivity = time.Now()
	m.mu.Unlock()
}

func (m *Metrics) recordReceive(n int) {
	m.mu.Lock()
	m.bytesReceived += uint64(n)
	m.lastActivity = time.Now()
	m.mu.Unlock()
}

func (m *Metrics) recordPoll() {
	m.mu.Lock()
	m.pollCount++
	m.lastActivity = time.Now()
	m.mu.Unlock()
}

func (m *Metrics) recordError() {
	m.mu.Lock()
	m.errors++
	m.lastActivity = time.Now()
	m.mu.Unlock()
}

// Snapshot returns a copy of the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return MetricsSnapshot{
		BytesSent:     m.bytesSent,
		BytesReceived: m.bytesReceived,
		PollCount:     m.pollCount,
		Errors:        m.errors,
		LastActivity:  m.lastActivity,
	}
}
