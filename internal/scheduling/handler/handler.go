package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"slotcheck/internal/scheduling/models"
	dErrors "slotcheck/pkg/domain-errors"
	"slotcheck/pkg/platform/httputil"
	"slotcheck/pkg/requestcontext"
)

// Service defines the validation operations the handler depends on.
type Service interface {
	CheckBasic(ctx context.Context, timestamps []models.Timestamp) models.Result
	CheckCollaborative(ctx context.Context, timestamps []models.Timestamp, windows []models.TimeWindow, durationMillis int64) models.Result
}

// Handler wires the schedule-check endpoints to the validation service.
type Handler struct {
	service  Service
	logger   *slog.Logger
	maxBatch int
}

// New constructs a scheduling handler. maxBatch caps request sizes at the
// transport; the validators themselves accept any batch.
func New(service Service, logger *slog.Logger, maxBatch int) *Handler {
	return &Handler{
		service:  service,
		logger:   logger,
		maxBatch: maxBatch,
	}
}

// Register mounts the scheduling endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/schedule/check", h.HandleCheck)
	r.Post("/schedule/check/collaborative", h.HandleCheckCollaborative)
}

// HandleCheck handles POST /schedule/check requests.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[CheckRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if !h.checkBatchSize(w, ctx, requestID, len(req.Timestamps)) {
		return
	}

	result := h.service.CheckBasic(ctx, req.Timestamps)

	h.logger.InfoContext(ctx, "basic check completed",
		"request_id", requestID,
		"slots", len(req.Timestamps),
		"valid", result.Valid(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandleCheckCollaborative handles POST /schedule/check/collaborative
// requests.
func (h *Handler) HandleCheckCollaborative(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[CollaborativeCheckRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if !h.checkBatchSize(w, ctx, requestID, len(req.Timestamps)) {
		return
	}

	result := h.service.CheckCollaborative(ctx, req.Timestamps, req.ParsedWindows(), req.DurationMillis)

	h.logger.InfoContext(ctx, "collaborative check completed",
		"request_id", requestID,
		"slots", len(req.Timestamps),
		"windows", len(req.ParsedWindows()),
		"duration_ms_requested", req.DurationMillis,
		"valid", result.Valid(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

func (h *Handler) checkBatchSize(w http.ResponseWriter, ctx context.Context, requestID string, size int) bool {
	if h.maxBatch > 0 && size > h.maxBatch {
		h.logger.WarnContext(ctx, "batch size over limit",
			"request_id", requestID,
			"slots", size,
			"max", h.maxBatch,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("at most %d timestamps per request", h.maxBatch)))
		return false
	}
	return true
}
