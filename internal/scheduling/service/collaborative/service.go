// Package collaborative validates candidate interview timestamps against
// the shared availability windows of all participants. It layers a range
// check on top of the basic validator's pipeline.
package collaborative

import (
	"context"
	"fmt"
	"log/slog"

	"slotcheck/internal/scheduling/models"
	"slotcheck/internal/scheduling/service/basic"
)

// Service classifies timestamps as expired, duplicate, out of range, or
// valid. Stateless and safe for concurrent use.
type Service struct {
	basic  *basic.Service
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New constructs a collaborative validator on top of the basic one.
func New(basicSvc *basic.Service, opts ...Option) (*Service, error) {
	if basicSvc == nil {
		return nil, fmt.Errorf("basic validator is required")
	}

	svc := &Service{
		basic: basicSvc,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Validate classifies each timestamp for an interview of the given duration
// against the available windows. Expiry and duplicate classification come
// from the basic pipeline and are never overwritten by the range check; a
// slot is out of range when no single window contains the whole interval
// [ts, ts+duration] (bounds inclusive). An empty window list puts every
// otherwise-valid slot out of range. Negative durations clamp to zero.
func (s *Service) Validate(ctx context.Context, timestamps []models.Timestamp, windows []models.TimeWindow, durationMillis int64) models.Result {
	result := s.basic.Validate(ctx, timestamps)
	if len(timestamps) == 0 {
		return result
	}

	if durationMillis < 0 {
		durationMillis = 0
	}

	for i, code := range result {
		if code != models.CodeNone {
			continue
		}
		start := timestamps[i]
		end := start + models.Timestamp(durationMillis)
		if !anyContains(windows, start, end) {
			result[i] = models.CodeOutOfRange
		}
	}

	return result
}

func anyContains(windows []models.TimeWindow, start, end models.Timestamp) bool {
	for _, w := range windows {
		if w.Contains(start, end) {
			return true
		}
	}
	return false
}
