package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
	"github.com/aussiebroadwan/yup/internal/rsvp/store"
	"github.com/aussiebroadwan/yup/pkg/slogx"
)

type AdminService struct {
	Store  store.Store
	Access *AccessPolicy
}

func (s *AdminService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if offset < 0 {
		offset = 0
	}
	return s.Store.Users().ListUsers(ctx, clampLimit(limit), offset)
}

// SetFlags overwrites the user's plan and role flags and drops any cached
// copy so the change applies on the next request.
func (s *AdminService) SetFlags(ctx context.Context, actorID, userID string, flags domain.UserFlags) (domain.User, error) {
	if err := s.Store.Users().UpdateFlags(ctx, userID, flags); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	if s.Access != nil {
		s.Access.Invalidate(ctx, userID)
	}

	slogx.FromContext(ctx).Info("user flags changed",
		slog.String("actor_id", actorID),
		slog.String("user_id", userID),
		slog.Bool("is_admin", flags.IsAdmin),
		slog.Bool("is_pro", flags.IsPro),
		slog.Bool("is_premium", flags.IsPremium),
	)
	return s.Store.Users().GetUserByID(ctx, userID)
}
