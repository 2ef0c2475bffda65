package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
	"github.com/aussiebroadwan/yup/internal/rsvp/metrics"
	"github.com/aussiebroadwan/yup/internal/rsvp/notify"
	"github.com/aussiebroadwan/yup/internal/rsvp/store"
	"github.com/aussiebroadwan/yup/pkg/cryptox"
	"github.com/aussiebroadwan/yup/pkg/idx"
	"github.com/aussiebroadwan/yup/pkg/slogx"
)

const maxGuestNameLen = 100

type ResponseService struct {
	Store    store.Store
	Events   *EventService
	Notifier notify.Notifier
	Metrics  *metrics.Metrics
	Clock    Clock
}

// SubmitInput is one RSVP. GuestName and GuestEmail are required for
// anonymous guests and ignored for signed-in users.
type SubmitInput struct {
	ResponseType    domain.ResponseType
	GuestName       string
	GuestEmail      string
	GuestCount      *int // defaults to 1
	InvitationToken string
}

// Submit records the respondent's answer for the event at slug. actorID is
// the signed-in user or empty. Each respondent has at most one response per
// event; resubmitting overwrites it.
//
// Capacity is checked and the response written in one transaction holding
// the event row, so concurrent yups cannot overshoot the limit. The host is
// notified after commit; a failed notification is logged, never returned.
func (s *ResponseService) Submit(ctx context.Context, slug, actorID string, in SubmitInput) (domain.Response, error) {
	log := slogx.FromContext(ctx)

	count := 1
	if in.GuestCount != nil {
		count = *in.GuestCount
	}
	if !in.ResponseType.Valid() {
		return domain.Response{}, fmt.Errorf("%w: response_type must be yup, nope or maybe", ErrInvalidResponse)
	}
	if count < 1 {
		return domain.Response{}, fmt.Errorf("%w: guest_count must be at least 1", ErrInvalidResponse)
	}

	resp := domain.Response{
		ID:           idx.NewString(),
		ResponseType: in.ResponseType,
		GuestCount:   count,
	}

	// Users and flags are read before the transaction: on SQLite the tx
	// holds the only connection.
	var admin bool
	switch {
	case actorID != "":
		u, err := s.Store.Users().GetUserByID(ctx, actorID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Response{}, ErrUserNotFound
			}
			return domain.Response{}, err
		}
		admin = s.Events != nil && s.Events.isAdmin(ctx, u.ID)
		resp.UserID = u.ID
		resp.RespondentKey = domain.RespondentKeyUser(u.ID)
		resp.GuestName = displayName(u)
		resp.GuestEmail = u.Email
	case in.InvitationToken != "":
		resp.IsGuest = true
		resp.GuestName = strings.TrimSpace(in.GuestName)
		if strings.TrimSpace(in.GuestEmail) != "" {
			email, err := domain.ParseEmail(in.GuestEmail)
			if err != nil {
				return domain.Response{}, fmt.Errorf("%w: guest_email is not a valid email", ErrInvalidResponse)
			}
			resp.GuestEmail = email
		}
	default:
		name := strings.TrimSpace(in.GuestName)
		if name == "" || len(name) > maxGuestNameLen {
			return domain.Response{}, fmt.Errorf("%w: guests must give a name", ErrInvalidResponse)
		}
		email, err := domain.ParseEmail(in.GuestEmail)
		if err != nil {
			return domain.Response{}, fmt.Errorf("%w: guests must give a valid email", ErrInvalidResponse)
		}
		resp.IsGuest = true
		resp.GuestName = name
		resp.GuestEmail = email
		resp.RespondentKey = domain.RespondentKeyGuest(email)
	}

	var event domain.Event
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		e, err := tx.Events().LockEventBySlug(ctx, strings.ToLower(slug))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		event = e
		resp.EventID = e.ID

		var inv domain.Invitation
		if in.InvitationToken != "" {
			inv, err = tx.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(in.InvitationToken))
			if errors.Is(err, store.ErrNotFound) || (err == nil && inv.EventID != e.ID) {
				return ErrInvalidInvitation
			}
			if err != nil {
				return err
			}
			resp.InvitationID = inv.ID
			if resp.RespondentKey == "" {
				resp.RespondentKey = domain.RespondentKeyInvitation(inv.ID)
				if resp.GuestName == "" {
					resp.GuestName = inv.Name
				}
				if resp.GuestEmail == "" {
					resp.GuestEmail = domain.NormalizeEmail(inv.Email)
				}
			}
		}

		if err := checkPolicy(e, actorID, admin, inv, count); err != nil {
			return err
		}

		if resp.ResponseType == domain.ResponseYup && e.Capacity != nil {
			others, err := tx.Responses().SumYupGuests(ctx, e.ID, resp.RespondentKey)
			if err != nil {
				return err
			}
			if others+count > *e.Capacity {
				log.Info("rsvp rejected, event full",
					slog.String("event_id", e.ID),
					slog.Int("capacity", *e.Capacity),
					slog.Int("taken", others),
					slog.Int("requested", count),
				)
				return ErrEventFull
			}
		}

		stored, err := tx.Responses().UpsertResponse(ctx, resp)
		if err != nil {
			return err
		}
		resp = stored

		if inv.ID != "" {
			if err := inv.Advance(domain.InvitationResponded, s.Clock.Now()); err != nil {
				return err
			}
			if err := tx.Invitations().UpdateInvitationStatus(ctx, inv); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if !isClientError(err) {
			log.Error("failed to store response", slog.String("slug", slug), slog.Any("error", err))
		}
		return domain.Response{}, err
	}

	log.Info("rsvp stored",
		slog.String("event_id", resp.EventID),
		slog.String("response_id", resp.ID),
		slog.String("type", string(resp.ResponseType)),
		slog.Int("guest_count", resp.GuestCount),
	)
	s.Metrics.RecordResponse(string(resp.ResponseType))
	s.notifyHost(ctx, event, resp)
	return resp, nil
}

// checkPolicy decides whether the respondent may answer e. A private event
// the caller cannot read is reported as not found before anything else, so
// its status and settings stay hidden.
func checkPolicy(e domain.Event, actorID string, admin bool, inv domain.Invitation, count int) error {
	if e.Visibility == domain.VisibilityPrivate && inv.ID == "" && actorID != e.HostID && !admin {
		return ErrEventNotFound
	}
	if e.Status != domain.EventOpen {
		return ErrEventNotOpen
	}
	anonymous := actorID == "" && inv.ID == ""
	if anonymous && !e.AllowGuestRSVP {
		return ErrGuestRSVPDisabled
	}
	if count > 1 && !e.AllowPlusOnes {
		return fmt.Errorf("%w: this event does not allow plus-ones", ErrPartyTooLarge)
	}
	if e.MaxPartySize > 0 && count > e.MaxPartySize {
		return fmt.Errorf("%w: at most %d per party", ErrPartyTooLarge, e.MaxPartySize)
	}
	return nil
}

func isClientError(err error) bool {
	for _, target := range []error{
		ErrEventNotFound, ErrEventNotOpen, ErrGuestRSVPDisabled,
		ErrPartyTooLarge, ErrEventFull, ErrInvalidInvitation, ErrInvalidTransition,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// notifyHost tells the host about a response by email and, when they opted
// in with a verified phone, by SMS.
func (s *ResponseService) notifyHost(ctx context.Context, e domain.Event, r domain.Response) {
	if s.Notifier == nil {
		return
	}
	log := slogx.FromContext(ctx)

	host, err := s.Store.Users().GetUserByID(ctx, e.HostID)
	if err != nil {
		log.Error("failed to load host for notification", slog.String("host_id", e.HostID), slog.Any("error", err))
		s.Metrics.RecordNotificationFailure(string(domain.KindRSVPReceived))
		return
	}

	body := rsvpMessage(e, r)
	var out []domain.Notification
	if host.Email != "" {
		out = append(out, domain.Notification{
			Kind:    domain.KindRSVPReceived,
			Channel: domain.ChannelEmail,
			To:      host.Email,
			Subject: "New RSVP for " + e.Title,
			Body:    body,
			EventID: e.ID,
		})
	}
	if host.CanReceiveSMS() {
		out = append(out, domain.Notification{
			Kind:    domain.KindRSVPReceived,
			Channel: domain.ChannelSMS,
			To:      host.Phone,
			Body:    body,
			EventID: e.ID,
		})
	}

	for _, n := range out {
		n.Metadata = map[string]string{
			"response_id":   r.ID,
			"response_type": string(r.ResponseType),
		}
		if err := s.Notifier.Notify(ctx, n); err != nil {
			log.Warn("host notification failed",
				slog.String("event_id", e.ID),
				slog.String("channel", string(n.Channel)),
				slog.Any("error", err),
			)
			s.Metrics.RecordNotificationFailure(string(n.Kind))
		}
	}
}

func rsvpMessage(e domain.Event, r domain.Response) string {
	name := r.GuestName
	if name == "" {
		name = "Someone"
	}
	msg := fmt.Sprintf("%s answered %q to %s", name, e.Wording.Label(r.ResponseType), e.Title)
	if r.GuestCount > 1 {
		msg += fmt.Sprintf(" (party of %d)", r.GuestCount)
	}
	return msg + "."
}

func displayName(u domain.User) string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// EventResponses is what a host sees for their event.
type EventResponses struct {
	Event     domain.Event
	Responses []domain.Response
	Summary   domain.ResponseSummary
}

// ListForHost returns every response to the event with a tally.
func (s *ResponseService) ListForHost(ctx context.Context, actorID, slug string) (EventResponses, error) {
	e, err := s.Events.ForHost(ctx, actorID, slug)
	if err != nil {
		return EventResponses{}, err
	}
	rs, err := s.Store.Responses().ListResponsesByEvent(ctx, e.ID)
	if err != nil {
		return EventResponses{}, err
	}
	return EventResponses{Event: e, Responses: rs, Summary: domain.Summarize(rs)}, nil
}

// Mine returns the signed-in user's response to the event.
func (s *ResponseService) Mine(ctx context.Context, userID, slug string) (domain.Response, error) {
	e, err := s.Events.bySlug(ctx, slug)
	if err != nil {
		return domain.Response{}, err
	}
	r, err := s.Store.Responses().GetResponse(ctx, e.ID, domain.RespondentKeyUser(userID))
	if errors.Is(err, store.ErrNotFound) {
		return domain.Response{}, ErrResponseNotFound
	}
	return r, err
}
