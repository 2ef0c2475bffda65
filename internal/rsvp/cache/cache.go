// Package cache holds short-lived copies of user flags so premium and admin
// checks can skip the database on the hot path.
package cache

import (
	"context"
	"time"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
)

const DefaultTTL = 5 * time.Minute

// FlagCache stores domain.UserFlags per user id. A miss is reported with
// ok=false and a nil error; errors are reserved for backend failures.
type FlagCache interface {
	Get(ctx context.Context, userID string) (flags domain.UserFlags, ok bool, err error)
	Set(ctx context.Context, userID string, flags domain.UserFlags) error
	Invalidate(ctx context.Context, userID string) error
}
