package stream

import (
	"context"
	"sync"
	"time"

	apiv1 "github.com/tether-ai/tether/internal/api/grpc/v1"
)

// pullResult tells the sender loop why next returned.
type pullResult int

const (
	// pullMessage delivers a queued message.
	pullMessage pullResult = iota
	// pullKeepalive reports that the keepalive window elapsed with an
	// empty queue. The caller is expected to enqueue a heartbeat.
	pullKeepalive
	// pullDone reports that the queue is done and fully drained.
	pullDone
)

// outboundQueue is the FIFO handoff between callers enqueuing terminal
// messages and the single sender goroutine draining them. Once marked done
// it refuses new messages but still drains whatever was already queued.
type outboundQueue struct {
	mu    sync.Mutex
	items []*apiv1.TerminalClientMessage
	done  bool
	wake  chan struct{}
}

func newOutboundQueue() *outboundQueue {
	return &outboundQueue{wake: make(chan struct{}, 1)}
}

// enqueue appends msg and wakes a waiting consumer. It reports false when
// the queue no longer accepts messages.
func (q *outboundQueue) enqueue(msg *apiv1.TerminalClientMessage) bool {
	q.mu.Lock()
	if q.done {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, msg)
	q.mu.Unlock()
	q.signal()
	return true
}

// markDone stops the queue accepting further messages and unblocks a
// waiting consumer. Messages already queued still drain first.
func (q *outboundQueue) markDone() {
	q.mu.Lock()
	q.done = true
	q.mu.Unlock()
	q.signal()
}

func (q *outboundQueue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// next blocks until a message is available, the queue is done and drained,
// or keepalive elapses with nothing queued. Each call arms a fresh timer,
// so an idle gap yields exactly one keepalive per elapsed window.
func (q *outboundQueue) next(ctx context.Context, keepalive time.Duration) (*apiv1.TerminalClientMessage, pullResult) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			msg := q.items[0]
			q.items = q.items[1:]
			q.mu.Unlock()
			return msg, pullMessage
		}
		if q.done {
			q.mu.Unlock()
			return nil, pullDone
		}
		q.mu.Unlock()

		timer := time.NewTimer(keepalive)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, pullDone
		case <-q.wake:
			timer.Stop()
		case <-timer.C:
			return nil, pullKeepalive
		}
	}
}
