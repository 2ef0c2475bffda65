package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
	"github.com/aussiebroadwan/yup/internal/rsvp/service"
	"github.com/aussiebroadwan/yup/internal/rsvp/store"
	"github.com/aussiebroadwan/yup/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestInvitationLifecycle(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	host := e.signup(t, "maya")
	ev := e.createEvent(t, host.ID, func(in *service.CreateEventInput) { in.AllowGuestRSVP = false })

	inv, token, err := e.invitations.Create(ctx, host.ID, ev.Slug, service.CreateInvitationInput{
		Name:  "Jo",
		Email: "Jo@Example.com",
	})
	require.NoError(t, err)
	require.Equal(t, domain.InvitationSent, inv.Status)
	require.NotNil(t, inv.SentAt)
	require.Equal(t, "jo@example.com", inv.Email)
	require.Equal(t, cryptox.FingerprintToken(token), inv.TokenHash)

	sent := e.notifier.byKind(domain.KindInvitationSent)
	require.Len(t, sent, 1)
	require.Equal(t, domain.ChannelEmail, sent[0].Channel)
	require.Contains(t, sent[0].Body, "https://yup.test/e/"+ev.Slug+"?invite=")

	viewed, gotEvent, err := e.invitations.View(ctx, token)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationViewed, viewed.Status)
	require.Equal(t, ev.ID, gotEvent.ID)

	// Guest RSVPs are off, but the invitation admits Jo.
	r, err := e.responses.Submit(ctx, ev.Slug, "", service.SubmitInput{
		ResponseType:    domain.ResponseYup,
		InvitationToken: token,
	})
	require.NoError(t, err)
	require.Equal(t, domain.RespondentKeyInvitation(inv.ID), r.RespondentKey)
	require.Equal(t, inv.ID, r.InvitationID)
	require.Equal(t, "Jo", r.GuestName)

	list, err := e.invitations.List(ctx, host.ID, ev.Slug)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, domain.InvitationResponded, list[0].Status)
	require.NotNil(t, list[0].RespondedAt)

	// Viewing again after answering keeps responded.
	again, _, err := e.invitations.View(ctx, token)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationResponded, again.Status)

	_, _, err = e.invitations.Resend(ctx, host.ID, ev.Slug, inv.ID)
	require.ErrorIs(t, err, service.ErrInvalidTransition)
}

func TestInvitationDeliveryFailureAndResend(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	host := e.signup(t, "maya")
	ev := e.createEvent(t, host.ID)

	e.notifier.fail(errors.New("broker unavailable"))
	inv, oldToken, err := e.invitations.Create(ctx, host.ID, ev.Slug, service.CreateInvitationInput{
		Name:  "Jo",
		Phone: "+61412345678",
	})
	require.NoError(t, err)
	require.Equal(t, domain.InvitationFailed, inv.Status)
	require.Nil(t, inv.SentAt)

	e.notifier.fail(nil)
	resent, newToken, err := e.invitations.Resend(ctx, host.ID, ev.Slug, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationSent, resent.Status)
	require.NotEqual(t, oldToken, newToken)

	sent := e.notifier.byKind(domain.KindInvitationSent)
	require.Len(t, sent, 1)
	require.Equal(t, domain.ChannelSMS, sent[0].Channel)
	require.Equal(t, "+61412345678", sent[0].To)

	_, _, err = e.invitations.View(ctx, oldToken)
	require.ErrorIs(t, err, service.ErrInvalidInvitation)
	_, _, err = e.invitations.View(ctx, newToken)
	require.NoError(t, err)

	// Sent invitations cannot be resent.
	_, _, err = e.invitations.Resend(ctx, host.ID, ev.Slug, inv.ID)
	require.ErrorIs(t, err, service.ErrInvalidTransition)
}

// statusWriteFails is a store whose invitation status writes fail.
type statusWriteFails struct {
	store.Store
}

func (s statusWriteFails) Invitations() store.Invitations {
	return failingInvitations{s.Store.Invitations()}
}

type failingInvitations struct {
	store.Invitations
}

func (failingInvitations) UpdateInvitationStatus(context.Context, domain.Invitation) error {
	return errors.New("disk full")
}

func TestInvitationCreateKeepsTokenWhenStatusWriteFails(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	host := e.signup(t, "maya")
	ev := e.createEvent(t, host.ID)

	flaky := &service.InvitationService{
		Store:     statusWriteFails{e.store},
		Events:    e.events,
		Notifier:  e.notifier,
		Metrics:   e.metrics,
		PublicURL: "https://yup.test",
	}
	inv, token, err := flaky.Create(ctx, host.ID, ev.Slug, service.CreateInvitationInput{
		Name:  "Jo",
		Email: "Jo <JO@example.com>",
	})
	require.ErrorIs(t, err, service.ErrDeliveryNotRecorded)
	require.NotEmpty(t, inv.ID)
	require.NotEmpty(t, token)
	require.Equal(t, domain.InvitationPending, inv.Status)
	require.Equal(t, "jo@example.com", inv.Email)

	stored, err := e.invitations.List(ctx, host.ID, ev.Slug)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, inv.ID, stored[0].ID)
	require.Equal(t, domain.InvitationPending, stored[0].Status)

	resent, _, err := e.invitations.Resend(ctx, host.ID, ev.Slug, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationSent, resent.Status)
}

func TestInvitationGuards(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	host := e.signup(t, "maya")
	other := e.signup(t, "sam")
	ev := e.createEvent(t, host.ID)
	otherEvent := e.createEvent(t, other.ID)

	_, _, err := e.invitations.Create(ctx, host.ID, ev.Slug, service.CreateInvitationInput{Name: "Nobody"})
	require.ErrorIs(t, err, service.ErrInvalidInvitation)

	_, _, err = e.invitations.Create(ctx, host.ID, ev.Slug, service.CreateInvitationInput{Phone: "0412 345 678"})
	require.ErrorIs(t, err, service.ErrInvalidInvitation)

	_, _, err = e.invitations.Create(ctx, other.ID, ev.Slug, service.CreateInvitationInput{Email: "jo@example.com"})
	require.ErrorIs(t, err, service.ErrNotEventHost)

	inv, token, err := e.invitations.Create(ctx, host.ID, ev.Slug, service.CreateInvitationInput{Email: "jo@example.com"})
	require.NoError(t, err)

	// An invitation only works for its own event.
	_, err = e.responses.Submit(ctx, otherEvent.Slug, "", service.SubmitInput{
		ResponseType:    domain.ResponseYup,
		InvitationToken: token,
	})
	require.ErrorIs(t, err, service.ErrInvalidInvitation)

	_, _, err = e.invitations.Resend(ctx, other.ID, otherEvent.Slug, inv.ID)
	require.ErrorIs(t, err, service.ErrInvitationNotFound)
}
