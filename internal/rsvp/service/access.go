package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/aussiebroadwan/yup/internal/rsvp/cache"
	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
	"github.com/aussiebroadwan/yup/internal/rsvp/store"
	"github.com/aussiebroadwan/yup/pkg/slogx"
)

// AccessPolicy answers plan and role questions about a user. Lookups go
// cache first, then the user row (which refreshes the cache), then the
// configured override usernames.
type AccessPolicy struct {
	Store store.Store
	Cache cache.FlagCache // optional

	// OverrideUsernames are treated as admins regardless of stored flags.
	OverrideUsernames []string
}

// Flags returns the effective flags for userID. An unknown user has no flags.
func (p *AccessPolicy) Flags(ctx context.Context, userID string) (domain.UserFlags, error) {
	if userID == "" {
		return domain.UserFlags{}, nil
	}
	log := slogx.FromContext(ctx)

	if p.Cache != nil {
		flags, ok, err := p.Cache.Get(ctx, userID)
		if err != nil {
			log.Warn("flag cache read failed", slog.String("user_id", userID), slog.Any("error", err))
		} else if ok {
			return flags, nil
		}
	}

	u, err := p.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.UserFlags{}, nil
	}
	if err != nil {
		return domain.UserFlags{}, err
	}

	flags := u.Flags()
	if slices.Contains(p.OverrideUsernames, u.Username) {
		flags.IsAdmin = true
	}

	if p.Cache != nil {
		if err := p.Cache.Set(ctx, userID, flags); err != nil {
			log.Warn("flag cache write failed", slog.String("user_id", userID), slog.Any("error", err))
		}
	}
	return flags, nil
}

// HasPremium matches httpx.AccessCheck.
func (p *AccessPolicy) HasPremium(ctx context.Context, userID string) (bool, error) {
	flags, err := p.Flags(ctx, userID)
	if err != nil {
		return false, err
	}
	return flags.HasPremium(), nil
}

func (p *AccessPolicy) IsAdmin(ctx context.Context, userID string) (bool, error) {
	flags, err := p.Flags(ctx, userID)
	if err != nil {
		return false, err
	}
	return flags.IsAdmin, nil
}

// Invalidate drops the cached flags for userID.
func (p *AccessPolicy) Invalidate(ctx context.Context, userID string) {
	if p.Cache == nil {
		return
	}
	if err := p.Cache.Invalidate(ctx, userID); err != nil {
		slogx.FromContext(ctx).Warn("flag cache invalidate failed",
			slog.String("user_id", userID), slog.Any("error", err))
	}
}
