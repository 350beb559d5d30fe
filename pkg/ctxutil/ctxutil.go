// Package ctxutil carries the authenticated caller and the request ID
// through request contexts.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userIDKey    struct{}
	userRoleKey  struct{}
	requestIDKey struct{}
)

// AdminRole is the role claim that grants administrative access to every group.
const AdminRole = "admin"

func value[T any](ctx context.Context, key any) T {
	v, _ := ctx.Value(key).(T)
	return v
}

// WithCaller stores the authenticated user's ID and role claim.
func WithCaller(ctx context.Context, id uuid.UUID, role string) context.Context {
	return WithUserRole(WithUserID(ctx, id), role)
}

func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx returns the caller's ID. ok is false for anonymous requests,
// including a stored uuid.Nil.
func UserIDFromCtx(ctx context.Context) (id uuid.UUID, ok bool) {
	id = value[uuid.UUID](ctx, userIDKey{})
	return id, id != uuid.Nil
}

func WithUserRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, userRoleKey{}, role)
}

// UserRoleFromCtx returns the caller's role claim, or "".
func UserRoleFromCtx(ctx context.Context) string {
	return value[string](ctx, userRoleKey{})
}

func IsAdminCtx(ctx context.Context) bool {
	return UserRoleFromCtx(ctx) == AdminRole
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the correlation ID set by the RequestID middleware, or "".
func RequestIDFromCtx(ctx context.Context) string {
	return value[string](ctx, requestIDKey{})
}
