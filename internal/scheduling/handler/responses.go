package handler

import (
	"slotcheck/internal/scheduling/models"
)

// CheckResponse carries the per-slot classification and the aggregate
// verdict. Results are positionally aligned with the request timestamps,
// except for the single-element required response to an empty list.
type CheckResponse struct {
	Results models.Result `json:"results"`
	Valid   bool          `json:"valid"`
}

// FromResult builds the response envelope for a validation result.
func FromResult(result models.Result) CheckResponse {
	return CheckResponse{
		Results: result,
		Valid:   result.Valid(),
	}
}
