// Package ctxutil carries request-scoped values across the HTTP boundary.
// Domain services take explicit owner IDs; the context is only used between
// middleware and handlers.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type userIDKey struct{}

type requestIDKey struct{}

// WithUserID stores the authenticated user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx extracts the user ID stored by WithUserID. The second
// return is false when no usable ID is present (absent, wrong type, or
// the nil UUID).
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx extracts the request ID, or "" when absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
