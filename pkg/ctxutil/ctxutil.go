// Package ctxutil carries per-request identity through contexts: the
// authenticated user set by the auth middleware and the request ID set
// by the tracing middleware. Unexported key types keep other packages
// from writing the values directly.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type userIDKey struct{}

type requestIDKey struct{}

// WithUserID returns a context carrying the authenticated user's ID.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx reads the authenticated user's ID. The second return is
// false for anonymous requests; uuid.Nil never reads back as a user.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID returns a context carrying the request's trace ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx reads the request's trace ID, or "" when absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
