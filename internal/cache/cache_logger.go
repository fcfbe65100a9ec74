package cache

import (
	"context"
	"log/slog"
)

// SafeDelete deletes cache keys, logging instead of failing: a stale cache
// entry is preferable to failing the write that invalidated it.
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// SafeSet stores a value, logging on failure.
func SafeSet(ctx context.Context, helper *CacheHelper, value interface{}, parts ...string) {
	if err := helper.Set(ctx, value, parts...); err != nil {
		slog.ErrorContext(ctx, "Failed to set cache value",
			"error", err,
			"key_parts", parts)
	}
}
