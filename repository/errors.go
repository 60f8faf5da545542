package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrStoreNotConfigured is returned when no database connection was
// established at startup (missing DATABASE_URL or failed connect).
var ErrStoreNotConfigured = errors.New("document store not configured")

// IsUnavailable reports whether err indicates the store cannot currently be
// reached, as opposed to a malformed query or a decode failure. Callers that
// degrade gracefully use this to log unavailability at a lower severity than
// genuine query bugs.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrStoreNotConfigured) || errors.Is(err, mongo.ErrClientDisconnected) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return mongo.IsNetworkError(err) || mongo.IsTimeout(err)
}
