package constants

// Message and buffer size limits shared by the transport and the streams.
const (
	// MaxRecvMessageBytes / MaxSendMessageBytes are the default gRPC
	// channel call options; callers may override them through Settings.
	MaxRecvMessageBytes = 16 * 1024 * 1024
	MaxSendMessageBytes = 4 * 1024 * 1024

	// PollChunkBytes caps how much output a single GetOutput poll asks for.
	PollChunkBytes = 64 * 1024

	// StubOutputBufferBytes bounds the per-session output history kept by
	// the stub agent before the oldest bytes are discarded.
	StubOutputBufferBytes = 1 * 1024 * 1024
)
