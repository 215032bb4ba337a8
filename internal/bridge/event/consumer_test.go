package event

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/bridge/entity"
)

type handlerFunc func(ctx context.Context, event entity.ComparisonEvent) error

func (h handlerFunc) Handle(ctx context.Context, event entity.ComparisonEvent) error {
	return h(ctx, event)
}

func TestStatsConsumerRetriesAndIdempotent(t *testing.T) {
	bus := NewBus(10)

	var attempts int32
	done := make(chan struct{})
	handler := handlerFunc(func(ctx context.Context, event entity.ComparisonEvent) error {
		n := atomic.AddInt32(&attempts, 1)
		if n < 3 {
			return errors.New("temporary failure")
		}
		select {
		case <-done:
		default:
			close(done)
		}
		return nil
	})

	consumer := NewStatsConsumer(bus, handler, ConsumerConfig{
		Workers:     1,
		MaxRetries:  2,
		BaseBackoff: time.Millisecond,
	})
	consumer.Start()

	event := entity.ComparisonEvent{EventID: 1, FileA: "a.csv", FileB: "b.csv"}
	if err := bus.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish event: %v", err)
	}
	if err := bus.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish duplicate: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for handler")
	}

	if err := consumer.Stop(context.Background()); err != nil {
		t.Fatalf("stop consumer: %v", err)
	}

	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestBusPublishAfterClose(t *testing.T) {
	bus := NewBus(1)
	bus.Close()

	err := bus.Publish(context.Background(), entity.ComparisonEvent{EventID: 7})
	if !errors.Is(err, ErrBusClosed) {
		t.Fatalf("expected ErrBusClosed, got %v", err)
	}
}

type countingRecorder struct {
	calls int32
}

func (r *countingRecorder) RecordComparison(ctx context.Context, event entity.ComparisonEvent) error {
	atomic.AddInt32(&r.calls, 1)
	return nil
}

func TestRecorderHandler(t *testing.T) {
	recorder := &countingRecorder{}
	handler := NewRecorderHandler(recorder)

	if err := handler.Handle(context.Background(), entity.ComparisonEvent{EventID: 1}); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if got := atomic.LoadInt32(&recorder.calls); got != 1 {
		t.Fatalf("expected 1 record call, got %d", got)
	}

	if err := NewRecorderHandler(nil).Handle(context.Background(), entity.ComparisonEvent{}); err == nil {
		t.Fatal("expected error for missing recorder")
	}
}
