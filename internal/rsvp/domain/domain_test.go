package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
	"github.com/stretchr/testify/require"
)

func TestInvitationTransitions(t *testing.T) {
	all := []domain.InvitationStatus{
		domain.InvitationPending,
		domain.InvitationSent,
		domain.InvitationFailed,
		domain.InvitationViewed,
		domain.InvitationResponded,
	}
	allowed := map[domain.InvitationStatus][]domain.InvitationStatus{
		domain.InvitationPending:   {domain.InvitationSent, domain.InvitationFailed, domain.InvitationViewed, domain.InvitationResponded},
		domain.InvitationFailed:    {domain.InvitationSent, domain.InvitationViewed, domain.InvitationResponded},
		domain.InvitationSent:      {domain.InvitationViewed, domain.InvitationResponded},
		domain.InvitationViewed:    {domain.InvitationResponded},
		domain.InvitationResponded: {},
	}

	for _, from := range all {
		for _, to := range all {
			err := from.CheckTransition(to)
			if from == to || contains(allowed[from], to) {
				require.NoError(t, err, "%s -> %s", from, to)
			} else {
				require.ErrorIs(t, err, domain.ErrInvalidTransition, "%s -> %s", from, to)
			}
		}
	}

	require.False(t, domain.InvitationStatus("received").Valid())
}

func contains(list []domain.InvitationStatus, s domain.InvitationStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestInvitationAdvanceStampsTimes(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	inv := domain.Invitation{Status: domain.InvitationPending}

	require.NoError(t, inv.Advance(domain.InvitationSent, now))
	require.Equal(t, now, *inv.SentAt)

	later := now.Add(time.Hour)
	require.NoError(t, inv.Advance(domain.InvitationViewed, later))
	require.Equal(t, later, *inv.ViewedAt)

	// Same-status is a no-op and keeps the original stamp.
	require.NoError(t, inv.Advance(domain.InvitationViewed, later.Add(time.Hour)))
	require.Equal(t, later, *inv.ViewedAt)

	require.ErrorIs(t, inv.Advance(domain.InvitationSent, later), domain.ErrInvalidTransition)
	require.Equal(t, domain.InvitationViewed, inv.Status)

	require.NoError(t, inv.Advance(domain.InvitationResponded, later))
	require.ErrorIs(t, inv.Advance(domain.InvitationViewed, later), domain.ErrInvalidTransition)
}

func TestEventStatusTransitions(t *testing.T) {
	require.True(t, domain.EventOpen.CanTransitionTo(domain.EventClosed))
	require.True(t, domain.EventOpen.CanTransitionTo(domain.EventCancelled))
	require.True(t, domain.EventClosed.CanTransitionTo(domain.EventOpen))
	require.True(t, domain.EventClosed.CanTransitionTo(domain.EventCancelled))
	require.True(t, domain.EventCancelled.CanTransitionTo(domain.EventCancelled))
	require.False(t, domain.EventCancelled.CanTransitionTo(domain.EventOpen))
	require.False(t, domain.EventCancelled.CanTransitionTo(domain.EventClosed))
}

func TestSlugs(t *testing.T) {
	require.True(t, domain.ValidSlug("launch-party-2025"))
	require.False(t, domain.ValidSlug("ab"))
	require.False(t, domain.ValidSlug("Launch-Party"))
	require.False(t, domain.ValidSlug("double--dash"))
	require.False(t, domain.ValidSlug("-leading"))

	require.Equal(t, "launch-party-2025", domain.Slugify("  Launch Party 2025! "))
	require.Equal(t, "caf-night", domain.Slugify("Café Night"))

	long := domain.Slugify("a very long title that keeps on going well past the point where anyone would read it all")
	require.LessOrEqual(t, len(long), domain.SlugMaxLen-7)
	require.True(t, domain.ValidSlug(long))
}

func TestWordingLabel(t *testing.T) {
	w := domain.Wording{Yup: "I'm in"}
	require.Equal(t, "I'm in", w.Label(domain.ResponseYup))
	require.Equal(t, "nope", w.Label(domain.ResponseNope))
	require.True(t, domain.Wording{}.IsZero())
}

func TestRespondentKeys(t *testing.T) {
	require.Equal(t, "user:01ABC", domain.RespondentKeyUser("01ABC"))
	require.Equal(t, "invitation:01XYZ", domain.RespondentKeyInvitation("01XYZ"))
	require.Equal(t, "guest:sam@example.com", domain.RespondentKeyGuest("  Sam@Example.COM "))
}

func TestParseEmail(t *testing.T) {
	for _, in := range []string{"bob@example.com", " Bob@Example.com ", "Bob <BOB@example.com>", `"Bob B" <bob@example.com>`} {
		got, err := domain.ParseEmail(in)
		require.NoError(t, err, in)
		require.Equal(t, "bob@example.com", got, in)
	}

	for _, in := range []string{"", "bob", "Bob <bob>", "bob@example.com, amy@example.com"} {
		_, err := domain.ParseEmail(in)
		require.ErrorIs(t, err, domain.ErrInvalidEmail, in)
	}
}

func TestSummarize(t *testing.T) {
	s := domain.Summarize([]domain.Response{
		{ResponseType: domain.ResponseYup, GuestCount: 2},
		{ResponseType: domain.ResponseYup, GuestCount: 1},
		{ResponseType: domain.ResponseMaybe, GuestCount: 3},
		{ResponseType: domain.ResponseNope, GuestCount: 1},
	})
	require.Equal(t, domain.ResponseSummary{Yup: 2, Nope: 1, Maybe: 1, YupGuests: 3, MaybeGuests: 3}, s)
}

func TestUserPremiumAndSMS(t *testing.T) {
	require.False(t, domain.User{}.HasPremium())
	require.True(t, domain.User{IsPro: true}.HasPremium())
	require.True(t, domain.User{IsAdmin: true}.HasPremium())
	require.True(t, domain.UserFlags{IsPremium: true}.HasPremium())

	require.False(t, domain.User{SMSOptIn: true, Phone: "+61400000000"}.CanReceiveSMS())
	require.True(t, domain.User{SMSOptIn: true, PhoneVerified: true, Phone: "+61400000000"}.CanReceiveSMS())
}

func TestEventHasEnded(t *testing.T) {
	start := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	e := domain.Event{StartsAt: start}
	require.False(t, e.HasEnded(start.Add(23*time.Hour)))
	require.True(t, e.HasEnded(start.Add(25*time.Hour)))

	end := start.Add(3 * time.Hour)
	e.EndsAt = &end
	require.True(t, e.HasEnded(start.Add(4*time.Hour)))
}

func TestValidators(t *testing.T) {
	require.True(t, domain.ValidUsername("maya_l"))
	require.False(t, domain.ValidUsername("Ma"))
	require.True(t, domain.ValidThemeColor("#1a2B3c"))
	require.True(t, domain.ValidThemeColor(""))
	require.False(t, domain.ValidThemeColor("red"))
	require.True(t, domain.ValidPhone("+61412345678"))
	require.False(t, domain.ValidPhone("0412345678"))
}
