package event

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/bridge/entity"
)

// Handler processes one comparison event.
type Handler interface {
	Handle(ctx context.Context, event entity.ComparisonEvent) error
}

type ConsumerConfig struct {
	Workers     int
	MaxRetries  int
	BaseBackoff time.Duration
}

// StatsConsumer drains the bus and hands events to a Handler, retrying with
// backoff and dropping duplicate event IDs.
type StatsConsumer struct {
	bus         *Bus
	handler     Handler
	workers     int
	maxRetries  int
	baseBackoff time.Duration
	seen        sync.Map
	wg          sync.WaitGroup
}

func NewStatsConsumer(bus *Bus, handler Handler, cfg ConsumerConfig) *StatsConsumer {
	workers := cfg.Workers
	if workers < 1 {
		workers = 4
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	baseBackoff := cfg.BaseBackoff
	if baseBackoff <= 0 {
		baseBackoff = 100 * time.Millisecond
	}

	return &StatsConsumer{
		bus:         bus,
		handler:     handler,
		workers:     workers,
		maxRetries:  maxRetries,
		baseBackoff: baseBackoff,
	}
}

func (c *StatsConsumer) Start() {
	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go c.worker()
	}
}

func (c *StatsConsumer) Stop(ctx context.Context) error {
	if c.bus != nil {
		c.bus.Close()
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *StatsConsumer) worker() {
	defer c.wg.Done()

	for event := range c.bus.Subscribe() {
		c.processEvent(event)
	}
}

func (c *StatsConsumer) processEvent(event entity.ComparisonEvent) {
	if c.handler == nil {
		return
	}

	if event.EventID != 0 {
		if _, loaded := c.seen.LoadOrStore(event.EventID, struct{}{}); loaded {
			slog.Info("skip duplicate comparison event", "event_id", event.EventID)
			return
		}
	}

	backoff := c.baseBackoff
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		err := c.handler.Handle(context.Background(), event)
		if err == nil {
			return
		}

		if attempt == c.maxRetries {
			slog.Error("failed to record comparison after retries", "event_id", event.EventID, "error", err)
			return
		}

		if !sleepBackoff(backoff) {
			return
		}
		backoff *= 2
	}
}

func sleepBackoff(d time.Duration) bool {
	if d <= 0 {
		return false
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	<-timer.C
	return true
}

// StatsRecorder is the sink for aggregated comparison counters.
type StatsRecorder interface {
	RecordComparison(ctx context.Context, event entity.ComparisonEvent) error
}

// RecorderHandler adapts a StatsRecorder to the consumer's Handler.
type RecorderHandler struct {
	recorder StatsRecorder
}

func NewRecorderHandler(recorder StatsRecorder) *RecorderHandler {
	return &RecorderHandler{recorder: recorder}
}

func (h *RecorderHandler) Handle(ctx context.Context, event entity.ComparisonEvent) error {
	if h.recorder == nil {
		return errors.New("missing stats recorder")
	}

	if err := h.recorder.RecordComparison(ctx, event); err != nil {
		return err
	}

	slog.Info("recorded comparison", "event_id", event.EventID, "matched", event.Matched)
	return nil
}
