package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
	"github.com/aussiebroadwan/yup/internal/rsvp/metrics"
	"github.com/aussiebroadwan/yup/internal/rsvp/notify"
	"github.com/aussiebroadwan/yup/internal/rsvp/store"
	"github.com/aussiebroadwan/yup/pkg/cryptox"
	"github.com/aussiebroadwan/yup/pkg/idx"
	"github.com/aussiebroadwan/yup/pkg/slogx"
)

type InvitationService struct {
	Store    store.Store
	Events   *EventService
	Notifier notify.Notifier
	Metrics  *metrics.Metrics
	Clock    Clock

	// PublicURL is the base of the links put in invitations.
	PublicURL string
}

type CreateInvitationInput struct {
	Name  string
	Email string
	Phone string
}

// Create mints an invitation for the event and tries to deliver it. The
// invitation is returned in sent or failed state together with the raw
// token, which is not stored and cannot be recovered later.
//
// If the delivery state cannot be written the pending invitation and its
// token are still returned, alongside ErrDeliveryNotRecorded.
func (s *InvitationService) Create(
	ctx context.Context,
	actorID, slug string,
	in CreateInvitationInput,
) (domain.Invitation, string, error) {
	log := slogx.FromContext(ctx)

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Email == "" && in.Phone == "" {
		return domain.Invitation{}, "", fmt.Errorf("%w: email or phone is required", ErrInvalidInvitation)
	}
	if in.Email != "" {
		email, err := domain.ParseEmail(in.Email)
		if err != nil {
			return domain.Invitation{}, "", fmt.Errorf("%w: invalid email", ErrInvalidInvitation)
		}
		in.Email = email
	}
	if in.Phone != "" && !domain.ValidPhone(in.Phone) {
		return domain.Invitation{}, "", fmt.Errorf("%w: phone must be E.164", ErrInvalidInvitation)
	}

	e, err := s.Events.ForHost(ctx, actorID, slug)
	if err != nil {
		return domain.Invitation{}, "", err
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}

	now := s.Clock.Now()
	inv := domain.Invitation{
		ID:        idx.NewString(),
		EventID:   e.ID,
		InvitedBy: actorID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		TokenHash: cryptox.FingerprintToken(token),
		Status:    domain.InvitationPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		log.Error("failed to create invitation", slog.String("event_id", e.ID), slog.Any("error", err))
		return domain.Invitation{}, "", err
	}

	if err := s.deliver(ctx, e, &inv, token); err != nil {
		log.Warn("invitation stored but delivery not recorded, resend required",
			slog.String("event_id", e.ID),
			slog.String("invitation_id", inv.ID),
		)
		return inv, token, err
	}
	return inv, token, nil
}

// Resend retries delivery of a pending or failed invitation with a fresh
// token; the previous link stops working.
func (s *InvitationService) Resend(ctx context.Context, actorID, slug, invitationID string) (domain.Invitation, string, error) {
	e, err := s.Events.ForHost(ctx, actorID, slug)
	if err != nil {
		return domain.Invitation{}, "", err
	}

	inv, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && inv.EventID != e.ID) {
		return domain.Invitation{}, "", ErrInvitationNotFound
	}
	if err != nil {
		return domain.Invitation{}, "", err
	}
	if !inv.Status.CanResend() {
		return domain.Invitation{}, "", fmt.Errorf("%w: cannot resend a %s invitation", ErrInvalidTransition, inv.Status)
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.Invitation{}, "", err
	}
	inv.TokenHash = cryptox.FingerprintToken(token)
	if err := s.Store.Invitations().RotateInvitationToken(ctx, inv.ID, inv.TokenHash); err != nil {
		return domain.Invitation{}, "", err
	}

	if err := s.deliver(ctx, e, &inv, token); err != nil {
		return inv, token, err
	}
	return inv, token, nil
}

// deliver sends the invitation and records sent or failed. Only a store
// failure is returned; a notifier failure becomes the failed status. inv is
// left as stored when the status write fails.
func (s *InvitationService) deliver(ctx context.Context, e domain.Event, inv *domain.Invitation, token string) error {
	log := slogx.FromContext(ctx)

	n := domain.Notification{
		Kind:    domain.KindInvitationSent,
		Channel: domain.ChannelEmail,
		To:      inv.Email,
		Subject: "You're invited: " + e.Title,
		Body:    invitationMessage(e, inv.Name, s.link(e.Slug, token)),
		EventID: e.ID,
		Metadata: map[string]string{
			"invitation_id": inv.ID,
		},
	}
	if inv.Email == "" {
		n.Channel = domain.ChannelSMS
		n.To = inv.Phone
		n.Subject = ""
	}

	next := domain.InvitationSent
	if s.Notifier == nil {
		next = domain.InvitationFailed
	} else if err := s.Notifier.Notify(ctx, n); err != nil {
		log.Warn("invitation delivery failed",
			slog.String("invitation_id", inv.ID),
			slog.String("channel", string(n.Channel)),
			slog.Any("error", err),
		)
		s.Metrics.RecordNotificationFailure(string(n.Kind))
		next = domain.InvitationFailed
	}

	updated := *inv
	if err := updated.Advance(next, s.Clock.Now()); err != nil {
		return err
	}
	if err := s.Store.Invitations().UpdateInvitationStatus(ctx, updated); err != nil {
		log.Error("failed to record invitation status",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return fmt.Errorf("%w: %w", ErrDeliveryNotRecorded, err)
	}
	*inv = updated
	s.Metrics.RecordInvitationDelivery(string(inv.Status))
	log.Info("invitation delivered",
		slog.String("invitation_id", inv.ID),
		slog.String("status", string(inv.Status)),
	)
	return nil
}

func (s *InvitationService) link(slug, token string) string {
	base := strings.TrimRight(s.PublicURL, "/")
	return base + "/e/" + url.PathEscape(slug) + "?invite=" + url.QueryEscape(token)
}

func invitationMessage(e domain.Event, name, link string) string {
	greeting := "Hi"
	if name != "" {
		greeting += " " + name
	}
	msg := fmt.Sprintf("%s, you're invited to %s on %s", greeting, e.Title, e.StartsAt.Format("Mon 2 Jan 2006 15:04 MST"))
	if e.Location != "" {
		msg += " at " + e.Location
	}
	return msg + ". RSVP here: " + link
}

// View marks the invitation behind token as viewed and returns it with its
// event. Viewing an already answered invitation changes nothing.
func (s *InvitationService) View(ctx context.Context, token string) (domain.Invitation, domain.Event, error) {
	inv, err := s.Store.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(token))
	if errors.Is(err, store.ErrNotFound) {
		return domain.Invitation{}, domain.Event{}, ErrInvalidInvitation
	}
	if err != nil {
		return domain.Invitation{}, domain.Event{}, err
	}

	e, err := s.Store.Events().GetEventByID(ctx, inv.EventID)
	if err != nil {
		return domain.Invitation{}, domain.Event{}, err
	}

	if inv.Status.CheckTransition(domain.InvitationViewed) == nil && inv.Status != domain.InvitationViewed {
		if err := inv.Advance(domain.InvitationViewed, s.Clock.Now()); err != nil {
			return domain.Invitation{}, domain.Event{}, err
		}
		if err := s.Store.Invitations().UpdateInvitationStatus(ctx, inv); err != nil {
			return domain.Invitation{}, domain.Event{}, err
		}
	}
	return inv, e, nil
}

// List returns the event's invitations, oldest first.
func (s *InvitationService) List(ctx context.Context, actorID, slug string) ([]domain.Invitation, error) {
	e, err := s.Events.ForHost(ctx, actorID, slug)
	if err != nil {
		return nil, err
	}
	return s.Store.Invitations().ListInvitationsByEvent(ctx, e.ID)
}
