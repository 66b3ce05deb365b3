// Package basic validates candidate interview timestamps against the
// current instant and against each other.
package basic

import (
	"context"
	"log/slog"
	"time"

	"slotcheck/internal/scheduling/bucket"
	"slotcheck/internal/scheduling/models"
	"slotcheck/pkg/requestcontext"
)

// Clock supplies the current instant. Injected so tests can pin time.
type Clock func() time.Time

// Service classifies timestamps as expired, duplicate, or valid. It is
// stateless: every call is independent and safe to run concurrently.
type Service struct {
	clock  Clock
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock sets the clock for testability.
func WithClock(clock Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// New constructs a basic validator. Defaults to wall-clock time.
func New(opts ...Option) *Service {
	svc := &Service{
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Validate classifies each timestamp. The result is positionally aligned
// with the input, except that an empty input yields the single-element
// required short-circuit. Inputs are never mutated.
//
// The current instant is read exactly once per call, so all slots in one
// batch are judged against the same now.
func (s *Service) Validate(ctx context.Context, timestamps []models.Timestamp) models.Result {
	if len(timestamps) == 0 {
		return models.Result{models.CodeRequired}
	}

	now := s.Now(ctx)

	result := make(models.Result, len(timestamps))
	for i, ts := range timestamps {
		if ts < now {
			result[i] = models.CodeExpired
		} else {
			result[i] = models.CodeNone
		}
	}

	// Duplicates overlay only valid slots: expired dominates duplicate.
	for i := range bucket.DuplicateIndices(timestamps) {
		if result[i] == models.CodeNone {
			result[i] = models.CodeDuplicate
		}
	}

	return result
}

// Now resolves the current instant in epoch milliseconds. A request-scoped
// time placed in the context by middleware takes priority, so every
// validation within one request shares a single snapshot; otherwise the
// injected clock is read.
func (s *Service) Now(ctx context.Context) models.Timestamp {
	if t, ok := requestcontext.Time(ctx); ok {
		return models.Timestamp(t.UnixMilli())
	}
	return models.Timestamp(s.clock().UnixMilli())
}
