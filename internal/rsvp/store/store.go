package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface, implemented by
// drivers/sqldb for both SQLite and Postgres. Repositories hang off it so a
// Tx exposes the same surface as the Store it came from.
type Store interface {
	Users() Users
	Events() Events
	Responses() Responses
	Invitations() Invitations

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Inside fn only tx may be used: SQLite runs on
	// a single connection and the outer Store would block.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// ListUsers returns users ordered by username.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)

	// CreateUser inserts a user. A taken username yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	UpdateProfile(ctx context.Context, userID, displayName, email string) error
	UpdateBranding(ctx context.Context, userID, themeColor, logoURL string) error
	UpdateFlags(ctx context.Context, userID string, flags domain.UserFlags) error
	SetSMSOptIn(ctx context.Context, userID string, optIn bool) error

	// StartPhoneVerification records the pending phone and TOTP secret and
	// resets phone_verified.
	StartPhoneVerification(ctx context.Context, userID, phone, secret string, startedAt time.Time) error

	// CompletePhoneVerification marks the phone verified and clears the secret.
	CompletePhoneVerification(ctx context.Context, userID string) error

	// ClearStalePhoneVerifications drops secrets started before cutoff and
	// returns how many were cleared.
	ClearStalePhoneVerifications(ctx context.Context, cutoff time.Time) (int64, error)
}

type Events interface {
	GetEventByID(ctx context.Context, id string) (domain.Event, error)
	GetEventBySlug(ctx context.Context, slug string) (domain.Event, error)

	// LockEventBySlug reads the event and, where the database supports it,
	// holds a row lock until the surrounding transaction ends.
	LockEventBySlug(ctx context.Context, slug string) (domain.Event, error)

	// ListEventsByHost returns the host's events, soonest first.
	ListEventsByHost(ctx context.Context, hostID string) ([]domain.Event, error)

	// ListUpcomingPublic returns open public events starting after since.
	ListUpcomingPublic(ctx context.Context, since time.Time, limit int) ([]domain.Event, error)

	// CreateEvent inserts an event. A taken slug yields ErrAlreadyExists.
	CreateEvent(ctx context.Context, e domain.Event) error

	// UpdateEvent overwrites every mutable column of e.
	UpdateEvent(ctx context.Context, e domain.Event) error

	// DeleteEvent cascades to responses and invitations.
	DeleteEvent(ctx context.Context, id string) error

	SlugExists(ctx context.Context, slug string) (bool, error)

	// CloseEndedEvents closes open events that ended before now and returns
	// how many changed.
	CloseEndedEvents(ctx context.Context, now time.Time) (int64, error)
}

type Responses interface {
	// UpsertResponse inserts r or, when a row for (event_id, respondent_key)
	// exists, overwrites its answer in place. The stored row is returned,
	// keeping the original id and created_at.
	UpsertResponse(ctx context.Context, r domain.Response) (domain.Response, error)

	GetResponse(ctx context.Context, eventID, respondentKey string) (domain.Response, error)

	// ListResponsesByEvent returns responses in submission order.
	ListResponsesByEvent(ctx context.Context, eventID string) ([]domain.Response, error)

	// SumYupGuests totals guest_count of yup responses for the event,
	// ignoring excludeKey so a respondent's own previous answer is not
	// counted against them.
	SumYupGuests(ctx context.Context, eventID, excludeKey string) (int, error)
}

type Invitations interface {
	CreateInvitation(ctx context.Context, inv domain.Invitation) error
	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)
	GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error)
	ListInvitationsByEvent(ctx context.Context, eventID string) ([]domain.Invitation, error)

	// UpdateInvitationStatus writes status and the sent/viewed/responded
	// stamps of inv.
	UpdateInvitationStatus(ctx context.Context, inv domain.Invitation) error

	// RotateInvitationToken replaces the token fingerprint; the old link
	// stops working.
	RotateInvitationToken(ctx context.Context, id, hash string) error
}
