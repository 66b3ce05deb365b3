package handler

import (
	"fmt"

	"slotcheck/internal/scheduling/models"
	dErrors "slotcheck/pkg/domain-errors"
)

// CheckRequest is the HTTP request body for POST /schedule/check.
// An empty timestamp list is not a transport error: the validators answer
// it with the required code.
type CheckRequest struct {
	Timestamps []models.Timestamp `json:"timestamps"`
}

// WindowRequest is one availability window in a collaborative check.
// Bounds are pointers so an omitted field is distinguishable from epoch
// zero, which is a legitimate timestamp.
type WindowRequest struct {
	Start *models.Timestamp `json:"start"`
	End   *models.Timestamp `json:"end"`
}

// CollaborativeCheckRequest is the HTTP request body for
// POST /schedule/check/collaborative.
type CollaborativeCheckRequest struct {
	Timestamps     []models.Timestamp `json:"timestamps"`
	Windows        []WindowRequest    `json:"windows"`
	DurationMillis int64              `json:"duration_ms"`

	// Parsed values (populated by Validate)
	parsedWindows []models.TimeWindow
}

// Validate parses the window payloads into domain windows.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *CollaborativeCheckRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.parsedWindows = make([]models.TimeWindow, 0, len(r.Windows))
	for i, w := range r.Windows {
		if w.Start == nil || w.End == nil {
			return dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("windows[%d] requires both start and end", i))
		}
		window, err := models.NewTimeWindow(*w.Start, *w.End)
		if err != nil {
			return err
		}
		r.parsedWindows = append(r.parsedWindows, window)
	}

	return nil
}

// ParsedWindows returns the validated windows.
func (r *CollaborativeCheckRequest) ParsedWindows() []models.TimeWindow {
	return r.parsedWindows
}
