package stream

import (
	"context"
	"testing"
	"time"

	apiv1 "github.com/tether-ai/tether/internal/api/grpc/v1"
	"github.com/tether-ai/tether/internal/protocol"
)

func queuedMessage(id uint64) *apiv1.TerminalClientMessage {
	return &apiv1.TerminalClientMessage{Type: protocol.ClientOutput, MessageId: id}
}

func TestQueueFIFO(t *testing.T) {
	q := newOutboundQueue()
	for i := uint64(1); i <= 3; i++ {
		if !q.enqueue(queuedMessage(i)) {
			t.Fatalf("enqueue %d refused", i)
		}
	}
	for i := uint64(1); i <= 3; i++ {
		msg, res := q.next(context.Background(), time.Second)
		if res != pullMessage {
			t.Fatalf("pull %d: result %d, want message", i, res)
		}
		if msg.GetMessageId() != i {
			t.Fatalf("pull %d: got id %d", i, msg.GetMessageId())
		}
	}
}

func TestQueueDrainsBeforeDone(t *testing.T) {
	q := newOutboundQueue()
	q.enqueue(queuedMessage(1))
	q.markDone()

	if q.enqueue(queuedMessage(2)) {
		t.Fatal("enqueue after markDone should be refused")
	}

	msg, res := q.next(context.Background(), time.Second)
	if res != pullMessage || msg.GetMessageId() != 1 {
		t.Fatalf("expected the queued message first, got result %d", res)
	}
	if _, res := q.next(context.Background(), time.Second); res != pullDone {
		t.Fatalf("expected done, got %d", res)
	}
}

func TestQueueKeepaliveExpiry(t *testing.T) {
	q := newOutboundQueue()
	start := time.Now()
	_, res := q.next(context.Background(), 20*time.Millisecond)
	if res != pullKeepalive {
		t.Fatalf("expected keepalive, got %d", res)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("keepalive fired early after %v", elapsed)
	}
}

func TestQueueWakeBeatsKeepalive(t *testing.T) {
	q := newOutboundQueue()
	go func() {
		time.Sleep(10 * time.Millisecond)
		q.enqueue(queuedMessage(7))
	}()
	msg, res := q.next(context.Background(), time.Minute)
	if res != pullMessage || msg.GetMessageId() != 7 {
		t.Fatalf("expected the enqueued message, got result %d", res)
	}
}

func TestQueueContextCancel(t *testing.T) {
	q := newOutboundQueue()
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	if _, res := q.next(ctx, time.Minute); res != pullDone {
		t.Fatalf("expected done on cancel, got %d", res)
	}
}
