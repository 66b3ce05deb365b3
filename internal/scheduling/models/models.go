// Package models defines the scheduling domain types shared by the
// validators, handlers, and metrics.
package models

import (
	dErrors "slotcheck/pkg/domain-errors"
)

// Timestamp is an instant expressed as milliseconds since the Unix epoch.
// Any int64 is a valid Timestamp: negative, zero, and far-future values all
// classify normally.
type Timestamp int64

// ErrorCode classifies why a candidate timestamp is unusable. Codes form a
// closed enum; CodeNone means the slot is valid.
type ErrorCode string

const (
	// CodeRequired is the whole-result code returned for an empty input.
	CodeRequired ErrorCode = "required"
	// CodeExpired marks a timestamp strictly earlier than the captured now.
	CodeExpired ErrorCode = "expired"
	// CodeDuplicate marks a timestamp sharing a minute bucket with another
	// input timestamp.
	CodeDuplicate ErrorCode = "duplicate"
	// CodeOutOfRange marks a timestamp whose interview interval fits no
	// available window.
	CodeOutOfRange ErrorCode = "out_of_range"
	// CodeNone marks a valid timestamp.
	CodeNone ErrorCode = "none"
)

// precedence orders codes by business priority: when several conditions
// apply to one slot the highest-precedence code is reported. This order is
// fixed; it is never configurable.
var precedence = map[ErrorCode]int{
	CodeRequired:   4,
	CodeExpired:    3,
	CodeDuplicate:  2,
	CodeOutOfRange: 1,
	CodeNone:       0,
}

// IsValid checks if the code is one of the supported enum values.
func (c ErrorCode) IsValid() bool {
	_, ok := precedence[c]
	return ok
}

// Precedence returns the code's rank; higher values dominate lower ones.
func (c ErrorCode) Precedence() int {
	return precedence[c]
}

// String returns the wire representation of the code.
func (c ErrorCode) String() string {
	return string(c)
}

// Result is the per-timestamp classification, positionally aligned with the
// input sequence. The empty-input short-circuit produces the single-element
// Result{CodeRequired}.
type Result []ErrorCode

// Valid reports whether every slot classified as CodeNone.
func (r Result) Valid() bool {
	for _, c := range r {
		if c != CodeNone {
			return false
		}
	}
	return len(r) > 0
}

// TimeWindow is a closed interval [Start, End] of epoch milliseconds during
// which an interview may occur. Construct via NewTimeWindow so an inverted
// window can never exist.
type TimeWindow struct {
	Start Timestamp `json:"start"`
	End   Timestamp `json:"end"`
}

// NewTimeWindow builds a TimeWindow, rejecting End < Start.
func NewTimeWindow(start, end Timestamp) (TimeWindow, error) {
	if end < start {
		return TimeWindow{}, dErrors.New(dErrors.CodeInvalidInput, "window end must not precede window start")
	}
	return TimeWindow{Start: start, End: end}, nil
}

// Contains reports whether the interval [start, end] lies fully inside the
// window. Both bounds are inclusive.
func (w TimeWindow) Contains(start, end Timestamp) bool {
	return w.Start <= start && end <= w.End
}
