// Package service exposes the scheduling validation facade. Handlers depend
// on this unified interface rather than on the individual validators.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"slotcheck/internal/scheduling/metrics"
	"slotcheck/internal/scheduling/models"
	"slotcheck/internal/scheduling/service/basic"
	"slotcheck/internal/scheduling/service/collaborative"
)

// Service composes the basic and collaborative validators and layers
// observability on top of them.
type Service struct {
	basic         *basic.Service
	collaborative *collaborative.Service
	logger        *slog.Logger
	metrics       *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(basicSvc *basic.Service, collaborativeSvc *collaborative.Service, opts ...Option) (*Service, error) {
	if basicSvc == nil {
		return nil, fmt.Errorf("basic validator is required")
	}
	if collaborativeSvc == nil {
		return nil, fmt.Errorf("collaborative validator is required")
	}

	svc := &Service{
		basic:         basicSvc,
		collaborative: collaborativeSvc,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// CheckBasic classifies each timestamp as required/expired/duplicate/none.
func (s *Service) CheckBasic(ctx context.Context, timestamps []models.Timestamp) models.Result {
	start := time.Now()
	result := s.basic.Validate(ctx, timestamps)
	s.observe(metrics.ValidatorBasic, result, time.Since(start))
	return result
}

// CheckCollaborative additionally classifies slots whose interview interval
// fits no available window as out_of_range.
func (s *Service) CheckCollaborative(ctx context.Context, timestamps []models.Timestamp, windows []models.TimeWindow, durationMillis int64) models.Result {
	start := time.Now()
	result := s.collaborative.Validate(ctx, timestamps, windows, durationMillis)
	s.observe(metrics.ValidatorCollaborative, result, time.Since(start))
	return result
}

// IsBasicValid reports whether every slot classifies as none.
func (s *Service) IsBasicValid(ctx context.Context, timestamps []models.Timestamp) bool {
	return s.CheckBasic(ctx, timestamps).Valid()
}

// IsCollaborativeValid reports whether every slot classifies as none.
func (s *Service) IsCollaborativeValid(ctx context.Context, timestamps []models.Timestamp, windows []models.TimeWindow, durationMillis int64) bool {
	return s.CheckCollaborative(ctx, timestamps, windows, durationMillis).Valid()
}

func (s *Service) observe(validator string, result models.Result, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}

	s.metrics.IncValidation(validator, result.Valid())
	s.metrics.AddSlotsChecked(validator, len(result))
	s.metrics.ObserveDuration(validator, elapsed)
	for _, code := range result {
		if code != models.CodeNone {
			s.metrics.IncSlotError(validator, code.String())
		}
	}
}
