package http

import (
	"context"
	"errors"
)

type contextKey string

const userIDKey contextKey = "user_id"

var ErrNoUser = errors.New("no authenticated user in context")

// WithUserID stamps the authenticated user's ID onto the request context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext extracts the authenticated user's ID placed there by the
// auth middleware.
func UserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", ErrNoUser
	}
	return userID, nil
}
