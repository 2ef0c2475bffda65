package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
	"github.com/aussiebroadwan/yup/internal/rsvp/store"
	"github.com/aussiebroadwan/yup/pkg/cryptox"
	"github.com/aussiebroadwan/yup/pkg/idx"
	"github.com/aussiebroadwan/yup/pkg/slogx"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 10000
	slugAttempts      = 5
	defaultListLimit  = 50
	maxListLimit      = 200
)

type EventService struct {
	Store  store.Store
	Access *AccessPolicy
	Clock  Clock
}

type CreateEventInput struct {
	Slug           string // optional, derived from Title when empty
	Title          string
	Description    string
	Location       string
	StartsAt       time.Time
	EndsAt         *time.Time
	AllowGuestRSVP bool
	AllowPlusOnes  bool
	MaxPartySize   int
	Capacity       *int
	Wording        domain.Wording
	Visibility     domain.Visibility
	ImageURL       string
}

// UpdateEventInput changes the fields that are non-nil. A Capacity of 0
// removes the limit and ClearEndsAt removes the end time.
type UpdateEventInput struct {
	Title          *string
	Description    *string
	Location       *string
	StartsAt       *time.Time
	EndsAt         *time.Time
	ClearEndsAt    bool
	Status         *domain.EventStatus
	AllowGuestRSVP *bool
	AllowPlusOnes  *bool
	MaxPartySize   *int
	Capacity       *int
	Wording        *domain.Wording
	Visibility     *domain.Visibility
	ImageURL       *string
}

// Create stores a new open event hosted by hostID.
func (s *EventService) Create(ctx context.Context, hostID string, in CreateEventInput) (domain.Event, error) {
	log := slogx.FromContext(ctx)
	now := s.Clock.Now()

	if in.Visibility == "" {
		in.Visibility = domain.VisibilityPublic
	}
	e := domain.Event{
		ID:             idx.NewString(),
		HostID:         hostID,
		Title:          strings.TrimSpace(in.Title),
		Description:    in.Description,
		Location:       strings.TrimSpace(in.Location),
		StartsAt:       in.StartsAt.UTC(),
		EndsAt:         utcPtr(in.EndsAt),
		Status:         domain.EventOpen,
		AllowGuestRSVP: in.AllowGuestRSVP,
		AllowPlusOnes:  in.AllowPlusOnes,
		MaxPartySize:   in.MaxPartySize,
		Capacity:       in.Capacity,
		Wording:        in.Wording,
		Visibility:     in.Visibility,
		ImageURL:       strings.TrimSpace(in.ImageURL),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := validateEvent(e); err != nil {
		return domain.Event{}, err
	}

	if in.Slug != "" {
		slug := strings.ToLower(strings.TrimSpace(in.Slug))
		if !domain.ValidSlug(slug) {
			return domain.Event{}, fmt.Errorf("%w: slug must be %d-%d characters of a-z, 0-9 and '-'",
				ErrInvalidEvent, domain.SlugMinLen, domain.SlugMaxLen)
		}
		e.Slug = slug
		if err := s.Store.Events().CreateEvent(ctx, e); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return domain.Event{}, ErrSlugTaken
			}
			log.Error("failed to create event", slog.Any("error", err))
			return domain.Event{}, err
		}
		log.Info("event created", slog.String("event_id", e.ID), slog.String("slug", e.Slug))
		return e, nil
	}

	base := domain.Slugify(e.Title)
	for attempt := range slugAttempts {
		e.Slug = candidateSlug(base, attempt)
		err := s.Store.Events().CreateEvent(ctx, e)
		if err == nil {
			log.Info("event created", slog.String("event_id", e.ID), slog.String("slug", e.Slug))
			return e, nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			log.Error("failed to create event", slog.Any("error", err))
			return domain.Event{}, err
		}
	}
	log.Warn("gave up finding a free slug", slog.String("base", base))
	return domain.Event{}, ErrSlugTaken
}

// candidateSlug is base itself on the first attempt and base plus a random
// suffix afterwards. Titles too short for a slug always get a suffix.
func candidateSlug(base string, attempt int) string {
	if attempt == 0 && len(base) >= domain.SlugMinLen {
		return base
	}
	id := strings.ToLower(idx.NewString())
	suffix := id[len(id)-6:]
	if base == "" {
		return "event-" + suffix
	}
	return base + "-" + suffix
}

func validateEvent(e domain.Event) error {
	switch {
	case e.Title == "" || utf8.RuneCountInString(e.Title) > maxTitleLen:
		return fmt.Errorf("%w: title is required and at most %d characters", ErrInvalidEvent, maxTitleLen)
	case len(e.Description) > maxDescriptionLen:
		return fmt.Errorf("%w: description too long", ErrInvalidEvent)
	case e.StartsAt.IsZero():
		return fmt.Errorf("%w: starts_at is required", ErrInvalidEvent)
	case e.EndsAt != nil && !e.EndsAt.After(e.StartsAt):
		return fmt.Errorf("%w: ends_at must be after starts_at", ErrInvalidEvent)
	case e.MaxPartySize < 0:
		return fmt.Errorf("%w: max_party_size must not be negative", ErrInvalidEvent)
	case e.Capacity != nil && *e.Capacity < 1:
		return fmt.Errorf("%w: capacity must be at least 1", ErrInvalidEvent)
	case !e.Visibility.Valid():
		return fmt.Errorf("%w: unknown visibility %q", ErrInvalidEvent, e.Visibility)
	case !e.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", ErrInvalidEvent, e.Status)
	}
	return nil
}

// Get returns the event for slug as seen by viewerID (empty when
// anonymous). Private events need the host, an admin or a matching
// invitation token; everyone else gets ErrEventNotFound.
func (s *EventService) Get(ctx context.Context, slug, viewerID, inviteToken string) (domain.Event, error) {
	e, err := s.bySlug(ctx, slug)
	if err != nil {
		return domain.Event{}, err
	}
	if e.Visibility != domain.VisibilityPrivate {
		return e, nil
	}
	if viewerID != "" && s.isHostOrAdmin(ctx, viewerID, e) {
		return e, nil
	}
	if inviteToken != "" {
		inv, err := s.Store.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(inviteToken))
		if err == nil && inv.EventID == e.ID {
			return e, nil
		}
	}
	return domain.Event{}, ErrEventNotFound
}

// ListUpcoming returns open public events that have not started yet.
func (s *EventService) ListUpcoming(ctx context.Context, limit int) ([]domain.Event, error) {
	return s.Store.Events().ListUpcomingPublic(ctx, s.Clock.Now(), clampLimit(limit))
}

func (s *EventService) ListByHost(ctx context.Context, hostID string) ([]domain.Event, error) {
	return s.Store.Events().ListEventsByHost(ctx, hostID)
}

// Update applies in to the event. Only the host or an admin may update.
func (s *EventService) Update(ctx context.Context, actorID, slug string, in UpdateEventInput) (domain.Event, error) {
	log := slogx.FromContext(ctx)

	e, err := s.ForHost(ctx, actorID, slug)
	if err != nil {
		return domain.Event{}, err
	}

	if in.Status != nil {
		if !in.Status.Valid() {
			return domain.Event{}, fmt.Errorf("%w: unknown status %q", ErrInvalidEvent, *in.Status)
		}
		if !e.Status.CanTransitionTo(*in.Status) {
			return domain.Event{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, e.Status, *in.Status)
		}
		e.Status = *in.Status
	}
	if in.Title != nil {
		e.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Location != nil {
		e.Location = strings.TrimSpace(*in.Location)
	}
	if in.StartsAt != nil {
		e.StartsAt = in.StartsAt.UTC()
	}
	switch {
	case in.ClearEndsAt && in.EndsAt != nil:
		return domain.Event{}, fmt.Errorf("%w: ends_at and clear_ends_at are exclusive", ErrInvalidEvent)
	case in.ClearEndsAt:
		e.EndsAt = nil
	case in.EndsAt != nil:
		e.EndsAt = utcPtr(in.EndsAt)
	}
	if in.AllowGuestRSVP != nil {
		e.AllowGuestRSVP = *in.AllowGuestRSVP
	}
	if in.AllowPlusOnes != nil {
		e.AllowPlusOnes = *in.AllowPlusOnes
	}
	if in.MaxPartySize != nil {
		e.MaxPartySize = *in.MaxPartySize
	}
	if in.Capacity != nil {
		if *in.Capacity == 0 {
			e.Capacity = nil
		} else {
			c := *in.Capacity
			e.Capacity = &c
		}
	}
	if in.Wording != nil {
		e.Wording = *in.Wording
	}
	if in.Visibility != nil {
		e.Visibility = *in.Visibility
	}
	if in.ImageURL != nil {
		e.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	if err := validateEvent(e); err != nil {
		return domain.Event{}, err
	}

	e.UpdatedAt = s.Clock.Now()
	if err := s.Store.Events().UpdateEvent(ctx, e); err != nil {
		log.Error("failed to update event", slog.String("event_id", e.ID), slog.Any("error", err))
		return domain.Event{}, err
	}
	log.Info("event updated",
		slog.String("event_id", e.ID),
		slog.String("actor_id", actorID),
		slog.String("status", string(e.Status)),
	)
	return e, nil
}

// Delete removes the event along with its responses and invitations.
func (s *EventService) Delete(ctx context.Context, actorID, slug string) error {
	e, err := s.ForHost(ctx, actorID, slug)
	if err != nil {
		return err
	}
	if err := s.Store.Events().DeleteEvent(ctx, e.ID); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("event deleted", slog.String("event_id", e.ID), slog.String("actor_id", actorID))
	return nil
}

// ForHost loads the event and checks that actorID hosts it or is an admin.
func (s *EventService) ForHost(ctx context.Context, actorID, slug string) (domain.Event, error) {
	e, err := s.bySlug(ctx, slug)
	if err != nil {
		return domain.Event{}, err
	}
	if actorID == "" || !s.isHostOrAdmin(ctx, actorID, e) {
		slogx.FromContext(ctx).Warn("non-host attempted host action",
			slog.String("event_id", e.ID),
			slog.String("actor_id", actorID),
		)
		return domain.Event{}, ErrNotEventHost
	}
	return e, nil
}

func (s *EventService) isHostOrAdmin(ctx context.Context, userID string, e domain.Event) bool {
	if userID == e.HostID {
		return true
	}
	return s.isAdmin(ctx, userID)
}

func (s *EventService) isAdmin(ctx context.Context, userID string) bool {
	if userID == "" || s.Access == nil {
		return false
	}
	admin, err := s.Access.IsAdmin(ctx, userID)
	if err != nil {
		slogx.FromContext(ctx).Error("admin check failed", slog.String("user_id", userID), slog.Any("error", err))
		return false
	}
	return admin
}

func (s *EventService) bySlug(ctx context.Context, slug string) (domain.Event, error) {
	e, err := s.Store.Events().GetEventBySlug(ctx, strings.ToLower(slug))
	if errors.Is(err, store.ErrNotFound) {
		return domain.Event{}, ErrEventNotFound
	}
	return e, err
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func clampLimit(n int) int {
	if n <= 0 {
		return defaultListLimit
	}
	return min(n, maxListLimit)
}
