// Package httputil centralizes JSON encoding and error translation for HTTP
// handlers so every endpoint shares one response contract.
package httputil

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	dErrors "slotcheck/pkg/domain-errors"
)

// maxBodyBytes bounds request bodies before decoding.
const maxBodyBytes = 1 << 20

// Validatable is implemented by request models that validate themselves
// after decoding.
type Validatable interface {
	Validate() error
}

// Normalizable is implemented by request models that canonicalize fields
// before validation.
type Normalizable interface {
	Normalize()
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the JSON error envelope.
// Internal errors omit the description so implementation detail never
// reaches clients.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.GetCode(err)

	body := map[string]string{
		"error": string(code),
	}
	if code != dErrors.CodeInternal {
		body["error_description"] = dErrors.Message(err)
	}

	WriteJSON(w, dErrors.HTTPStatus(code), body)
}

// DecodeAndPrepare decodes a JSON request body into T, then normalizes and
// validates it. On failure it writes the error response and logs the
// rejection; callers must return immediately when ok is false.
func DecodeAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	var req T

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "request decode failed",
			"request_id", requestID,
			"error", err,
		)
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "request body must be valid JSON"))
		return nil, false
	}

	if n, ok := any(&req).(Normalizable); ok {
		n.Normalize()
	}

	if v, ok := any(&req).(Validatable); ok {
		if err := v.Validate(); err != nil {
			logger.WarnContext(ctx, "request validation failed",
				"request_id", requestID,
				"error", err,
			)
			WriteError(w, err)
			return nil, false
		}
	}

	return &req, true
}
