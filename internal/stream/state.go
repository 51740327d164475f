// Package stream implements the client side of the session and agent
// streaming protocol: a polling output stream, a duplex attach stream with
// its outbound queue, and a cancellable agent execution stream. All three
// share one state machine, one metrics shape, and one listener fan-out.
package stream

import (
	"fmt"
	"sync"

	"github.com/tether-ai/tether/internal/rpcerrors"
)

// State is the lifecycle position of a stream instance. Transitions only
// move forward; Closed and Error are absorbing.
type State int

const (
	StateIdle State = iota
	StateConnecting
	StateRegistering
	StateConnected
	// StateReconnecting is reserved for a future resume protocol. No
	// current stream enters it.
	StateReconnecting
	StateClosing
	StateClosed
	StateError
)

var stateNames = map[State]string{
	StateIdle:         "idle",
	StateConnecting:   "connecting",
	StateRegistering:  "registering",
	StateConnected:    "connected",
	StateReconnecting: "reconnecting",
	StateClosing:      "closing",
	StateClosed:       "closed",
	StateError:        "error",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Terminal reports whether s is an absorbing state.
func (s State) Terminal() bool {
	return s == StateClosed || s == StateError
}

// lifecycle guards a stream's state under a mutex. Each stream owns exactly
// one; nothing else mutates it.
type lifecycle struct {
	mu    sync.Mutex
	state State
}

func (l *lifecycle) current() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// to attempts a transition and reports whether it was applied. Backward
// jumps and transitions out of a terminal state are refused.
func (l *lifecycle) to(next State) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state.Terminal() || next <= l.state {
		return false
	}
	l.state = next
	return true
}

// require returns a typed connection error unless the current state is one
// of the given states.
func (l *lifecycle) require(op string, states ...State) error {
	cur := l.current()
	for _, s := range states {
		if cur == s {
			return nil
		}
	}
	return rpcerrors.Connection(fmt.Sprintf("%s: not connected (stream is %s)", op, cur))
}
