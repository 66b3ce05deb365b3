// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values.
//
// Middleware sets the values; services only read them. Keeping this package
// free of net/http lets domain packages import it without pulling in
// transport code.
//
// Usage in services:
//
//	requestID := requestcontext.RequestID(ctx)
//	now, ok := requestcontext.Time(ctx)
//
// Usage in middleware and tests:
//
//	ctx = requestcontext.WithRequestID(ctx, requestID)
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"time"
)

// Context key types (unexported for encapsulation).
type (
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// RequestID retrieves the request ID from the context.
// Returns the empty string if not set.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// Time retrieves the request-scoped time from the context.
// The second return reports whether a time was set; callers fall back to
// their own clock when it was not.
func Time(ctx context.Context) (time.Time, bool) {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t, true
	}
	return time.Time{}, false
}

// WithTime injects a specific time into a context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}
