// Package protocol defines the wire vocabulary shared by the SDK streams
// and the stub agent: message type discriminators, session status values,
// and the reason-string encoding used for resize/signal status messages.
package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Client → agent terminal message types.
const (
	ClientRegister  = "register"
	ClientOutput    = "output"
	ClientStatus    = "status"
	ClientHeartbeat = "heartbeat"
)

// Agent → client terminal message types.
const (
	ServerStartSession = "start_session"
	ServerInput        = "input"
	ServerCloseSession = "close_session"
	ServerPing         = "ping"
)

// Agent execution stream event types.
const (
	AgentEventToken     = "token"
	AgentEventToolStart = "tool_start"
	AgentEventToolEnd   = "tool_end"
	AgentEventThinking  = "thinking"
	AgentEventHandOff   = "hand_off"
	AgentEventCancelled = "cancelled"
	AgentEventResult    = "result"
)

// Session status values.
const (
	SessionConnecting = "connecting"
	SessionConnected  = "connected"
	SessionClosed     = "closed"
	SessionError      = "error"
)

// Named agent run options merged into the request option map.
const (
	OptionModel      = "model"
	OptionMaxTurns   = "max_turns"
	OptionMaxRetries = "max_retries"
)

const (
	reasonResizePrefix = "resize:"
	reasonSignalPrefix = "signal:"
)

// ResizeReason encodes a terminal resize as a status message reason string.
func ResizeReason(cols, rows uint16) string {
	return fmt.Sprintf("%s%dx%d", reasonResizePrefix, cols, rows)
}

// SignalReason encodes a POSIX signal name as a status message reason string.
func SignalReason(signal string) string {
	return reasonSignalPrefix + signal
}

// ParseResizeReason decodes a reason string produced by ResizeReason.
func ParseResizeReason(reason string) (cols, rows uint16, ok bool) {
	rest, found := strings.CutPrefix(reason, reasonResizePrefix)
	if !found {
		return 0, 0, false
	}
	cstr, rstr, found := strings.Cut(rest, "x")
	if !found {
		return 0, 0, false
	}
	c, err := strconv.ParseUint(cstr, 10, 16)
	if err != nil {
		return 0, 0, false
	}
	r, err := strconv.ParseUint(rstr, 10, 16)
	if err != nil {
		return 0, 0, false
	}
	return uint16(c), uint16(r), true
}

// ParseSignalReason decodes a reason string produced by SignalReason.
func ParseSignalReason(reason string) (signal string, ok bool) {
	return strings.CutPrefix(reason, reasonSignalPrefix)
}
