package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/bridge/entity"
	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/bridge/inference"
	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/pkg/pkgerror"
	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/pkg/pkguid"
)

// Inferrer derives a schema from one uploaded file.
type Inferrer interface {
	Infer(upload entity.RawUpload) (entity.Schema, error)
	Extensions() []string
}

// Store exposes the aggregate counters kept by the stats consumer.
type Store interface {
	Stats(ctx context.Context) (entity.ComparisonStats, error)
}

// EventPublisher publishes completed-comparison events.
type EventPublisher interface {
	Publish(ctx context.Context, event entity.ComparisonEvent) error
}

// Runner schedules background work.
type Runner interface {
	Go(ctx context.Context, f func(ctx context.Context) error)
}

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Inferrer Inferrer
	Store    Store
	Events   EventPublisher
	Runner   Runner
	Clock    Clock
	EventID  pkguid.NumberID
	RootCtx  context.Context

	// MaxFileBytes caps the decoded size of one uploaded file; zero means
	// no cap.
	MaxFileBytes int64
}

type Usecase struct {
	inferrer     Inferrer
	store        Store
	events       EventPublisher
	runner       Runner
	clock        Clock
	eventID      pkguid.NumberID
	rootCtx      context.Context
	maxFileBytes int64
}

func New(dep Dependency) *Usecase {
	root := dep.RootCtx
	if root == nil {
		root = context.Background()
	}

	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	return &Usecase{
		inferrer:     dep.Inferrer,
		store:        dep.Store,
		events:       dep.Events,
		runner:       dep.Runner,
		clock:        clock,
		eventID:      dep.EventID,
		rootCtx:      root,
		maxFileBytes: dep.MaxFileBytes,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Compare infers a schema from each uploaded file and matches the two. The
// two inferences are independent, so they run concurrently; results carry no
// cross-request state.
func (u *Usecase) Compare(ctx context.Context, fileA, fileB FileInput) (entity.MatchResult, error) {
	if u.inferrer == nil {
		return entity.MatchResult{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	for _, file := range []FileInput{fileA, fileB} {
		if file.FileName == "" {
			return entity.MatchResult{}, pkgerror.NewInvalidInput(errors.New("file_name is required"))
		}
		if u.maxFileBytes > 0 && int64(len(file.Content)) > u.maxFileBytes {
			return entity.MatchResult{}, pkgerror.NewInvalidInput(
				fmt.Errorf("file %q exceeds the %d byte limit", file.FileName, u.maxFileBytes))
		}
	}

	start := u.clock.Now()

	var (
		schemaA, schemaB entity.Schema
		errA, errB       error
		wg               sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		schemaA, errA = u.inferrer.Infer(entity.RawUpload(fileA))
	}()
	go func() {
		defer wg.Done()
		schemaB, errB = u.inferrer.Infer(entity.RawUpload(fileB))
	}()
	wg.Wait()

	// Deterministic precedence: file A's failure is reported first.
	if errA != nil {
		return entity.MatchResult{}, mapInferErr(fileA.FileName, errA)
	}
	if errB != nil {
		return entity.MatchResult{}, mapInferErr(fileB.FileName, errB)
	}

	result := matchSchemas(schemaA, schemaB)

	u.publishCompleted(fileA, fileB, result, u.clock.Now().Sub(start))

	return result, nil
}

// MatchFields matches two inline comma-separated schema strings with the same
// semantics as Compare, minus file parsing.
func (u *Usecase) MatchFields(ctx context.Context, schemaA, schemaB string) (entity.MatchResult, error) {
	return matchSchemas(tokenizeSchema(schemaA), tokenizeSchema(schemaB)), nil
}

// Stats returns the aggregate comparison counters.
func (u *Usecase) Stats(ctx context.Context) (entity.ComparisonStats, error) {
	if u.store == nil {
		return entity.ComparisonStats{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	stats, err := u.store.Stats(ctx)
	if err != nil {
		return entity.ComparisonStats{}, normalizeErr(err)
	}
	return stats, nil
}

// Formats returns the extensions recognized by the inferrer.
func (u *Usecase) Formats(ctx context.Context) (FormatsResult, error) {
	if u.inferrer == nil {
		return FormatsResult{}, pkgerror.NewServer(errors.New("missing dependency"))
	}
	return FormatsResult{Extensions: u.inferrer.Extensions()}, nil
}

func (u *Usecase) publishCompleted(fileA, fileB FileInput, result entity.MatchResult, elapsed time.Duration) {
	if u.events == nil || u.runner == nil || u.eventID == nil {
		return
	}

	formatA, _ := inference.FormatForFile(fileA.FileName)
	formatB, _ := inference.FormatForFile(fileB.FileName)

	event := entity.ComparisonEvent{
		EventID:    u.eventID.Generate(),
		FileA:      fileA.FileName,
		FileB:      fileB.FileName,
		FormatA:    formatA,
		FormatB:    formatB,
		Matched:    len(result.Matches),
		UnmatchedA: len(result.UnmatchedA),
		UnmatchedB: len(result.UnmatchedB),
		DurationMs: elapsed.Milliseconds(),
	}

	u.runner.Go(u.rootCtx, func(ctx context.Context) error {
		if err := u.events.Publish(ctx, event); err != nil {
			slog.WarnContext(ctx, "failed to publish comparison event", "event_id", event.EventID, "error", err)
			return err
		}
		return nil
	})
}

func mapInferErr(fileName string, err error) error {
	switch {
	case errors.Is(err, inference.ErrUnsupportedFormat):
		return pkgerror.NewUnsupportedFormat(fmt.Sprintf("file %q: %s", fileName, err))
	case errors.Is(err, inference.ErrUnparsableContent):
		return pkgerror.NewUnparsableContent(fmt.Sprintf("file %q: %s", fileName, err), err)
	default:
		return normalizeErr(err)
	}
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
