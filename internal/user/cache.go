// AngelaMos | 2026
// cache.go

package user

import (
	"context"
	"log/slog"
)

func cacheKey(id string) string {
	return "user:" + id
}

// Cache failures degrade to database reads and are only logged.
func (s *Service) cachedUser(ctx context.Context, id string) (*User, bool) {
	var user User
	found, err := s.cache.Get(ctx, cacheKey(id), &user)
	if err != nil {
		slog.WarnContext(ctx, "user cache read failed", "user_id", id, "error", err)
		return nil, false
	}
	if !found {
		return nil, false
	}
	return &user, true
}

func (s *Service) storeUser(ctx context.Context, user *User) {
	if err := s.cache.Set(ctx, cacheKey(user.ID), user, s.cacheTTL); err != nil {
		slog.WarnContext(ctx, "user cache write failed", "user_id", user.ID, "error", err)
	}
}

func (s *Service) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, cacheKey(id)); err != nil {
		slog.WarnContext(ctx, "user cache invalidation failed", "user_id", id, "error", err)
	}
}
