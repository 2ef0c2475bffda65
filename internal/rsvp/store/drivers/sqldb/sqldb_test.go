package sqldb_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
	"github.com/aussiebroadwan/yup/internal/rsvp/store"
	"github.com/aussiebroadwan/yup/internal/rsvp/store/drivers/sqldb"
	"github.com/aussiebroadwan/yup/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqldb.Store {
	t.Helper()
	st, err := sqldb.Open(sqldb.DialectSQLite, ":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func seedUser(t *testing.T, st store.Store, username string) domain.User {
	t.Helper()
	u := domain.User{
		ID:           idx.NewString(),
		Username:     username,
		DisplayName:  username,
		PasswordHash: "$argon2id$placeholder",
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func seedEvent(t *testing.T, st store.Store, hostID, slug string, mutate ...func(*domain.Event)) domain.Event {
	t.Helper()
	e := domain.Event{
		ID:             idx.NewString(),
		HostID:         hostID,
		Slug:           slug,
		Title:          "Launch Party",
		Location:       "Warehouse 9",
		StartsAt:       time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second),
		Status:         domain.EventOpen,
		AllowGuestRSVP: true,
		AllowPlusOnes:  true,
		Visibility:     domain.VisibilityPublic,
	}
	for _, m := range mutate {
		m(&e)
	}
	require.NoError(t, st.Events().CreateEvent(context.Background(), e))
	return e
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := seedUser(t, st, "maya")

	got, err := st.Users().GetUserByUsername(ctx, "maya")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.False(t, got.HasPremium())
	require.False(t, got.CreatedAt.IsZero())

	t.Run("duplicate username", func(t *testing.T) {
		err := st.Users().CreateUser(ctx, domain.User{ID: idx.NewString(), Username: "maya", PasswordHash: "x"})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := st.Users().GetUserByID(ctx, idx.NewString())
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, st.Users().UpdateProfile(ctx, idx.NewString(), "x", ""), store.ErrNotFound)
	})

	t.Run("flags and branding", func(t *testing.T) {
		require.NoError(t, st.Users().UpdateFlags(ctx, u.ID, domain.UserFlags{IsPremium: true}))
		require.NoError(t, st.Users().UpdateBranding(ctx, u.ID, "#ff8800", "https://cdn.example.test/logo.png"))
		got, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.True(t, got.IsPremium)
		require.True(t, got.HasPremium())
		require.Equal(t, "#ff8800", got.ThemeColor)
	})

	t.Run("phone verification lifecycle", func(t *testing.T) {
		started := time.Now().UTC().Add(-time.Hour)
		require.NoError(t, st.Users().StartPhoneVerification(ctx, u.ID, "+61400000001", "SECRET", started))

		got, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, "+61400000001", got.Phone)
		require.Equal(t, "SECRET", got.PhoneVerifySecret)
		require.NotNil(t, got.PhoneVerifyStartedAt)
		require.False(t, got.PhoneVerified)

		n, err := st.Users().ClearStalePhoneVerifications(ctx, time.Now().UTC().Add(-10*time.Minute))
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		got, err = st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Empty(t, got.PhoneVerifySecret)
		require.Nil(t, got.PhoneVerifyStartedAt)

		require.NoError(t, st.Users().StartPhoneVerification(ctx, u.ID, "+61400000001", "SECRET2", time.Now().UTC()))
		require.NoError(t, st.Users().CompletePhoneVerification(ctx, u.ID))
		require.NoError(t, st.Users().SetSMSOptIn(ctx, u.ID, true))

		got, err = st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.True(t, got.PhoneVerified)
		require.True(t, got.CanReceiveSMS())
		require.Empty(t, got.PhoneVerifySecret)
	})

	t.Run("list", func(t *testing.T) {
		seedUser(t, st, "alex")
		users, err := st.Users().ListUsers(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, users, 2)
		require.Equal(t, "alex", users[0].Username)
	})
}

func TestEventsRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	host := seedUser(t, st, "host")

	capacity := 40
	ends := time.Now().UTC().Add(52 * time.Hour).Truncate(time.Second)
	e := seedEvent(t, st, host.ID, "launch-party-2025", func(e *domain.Event) {
		e.Capacity = &capacity
		e.EndsAt = &ends
		e.MaxPartySize = 4
		e.Wording = domain.Wording{Yup: "Count me in"}
	})

	got, err := st.Events().GetEventBySlug(ctx, "launch-party-2025")
	require.NoError(t, err)
	require.Equal(t, e.ID, got.ID)
	require.Equal(t, e.Title, got.Title)
	require.Equal(t, e.Location, got.Location)
	require.True(t, e.StartsAt.Equal(got.StartsAt))
	require.True(t, ends.Equal(*got.EndsAt))
	require.Equal(t, 40, *got.Capacity)
	require.Equal(t, "Count me in", got.Wording.Yup)
	require.Equal(t, domain.VisibilityPublic, got.Visibility)

	exists, err := st.Events().SlugExists(ctx, "launch-party-2025")
	require.NoError(t, err)
	require.True(t, exists)

	err = st.Events().CreateEvent(ctx, domain.Event{
		ID: idx.NewString(), HostID: host.ID, Slug: "launch-party-2025", Title: "dup",
		StartsAt: time.Now().UTC(), Status: domain.EventOpen, Visibility: domain.VisibilityPublic,
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	got.Title = "Launch Party (moved)"
	got.Capacity = nil
	got.Status = domain.EventClosed
	require.NoError(t, st.Events().UpdateEvent(ctx, got))

	got, err = st.Events().LockEventBySlug(ctx, "launch-party-2025")
	require.NoError(t, err)
	require.Equal(t, "Launch Party (moved)", got.Title)
	require.Nil(t, got.Capacity)
	require.Equal(t, domain.EventClosed, got.Status)

	hosted, err := st.Events().ListEventsByHost(ctx, host.ID)
	require.NoError(t, err)
	require.Len(t, hosted, 1)
}

func TestListUpcomingPublic(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	host := seedUser(t, st, "host")

	seedEvent(t, st, host.ID, "public-one")
	seedEvent(t, st, host.ID, "private-one", func(e *domain.Event) { e.Visibility = domain.VisibilityPrivate })
	seedEvent(t, st, host.ID, "closed-one", func(e *domain.Event) { e.Status = domain.EventClosed })
	seedEvent(t, st, host.ID, "past-one", func(e *domain.Event) { e.StartsAt = time.Now().UTC().Add(-72 * time.Hour) })

	events, err := st.Events().ListUpcomingPublic(ctx, time.Now().UTC(), 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "public-one", events[0].Slug)
}

func TestCloseEndedEvents(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	host := seedUser(t, st, "host")
	now := time.Now().UTC()

	ended := now.Add(-time.Hour)
	seedEvent(t, st, host.ID, "ended-with-end", func(e *domain.Event) {
		e.StartsAt = now.Add(-3 * time.Hour)
		e.EndsAt = &ended
	})
	seedEvent(t, st, host.ID, "started-long-ago", func(e *domain.Event) { e.StartsAt = now.Add(-30 * time.Hour) })
	seedEvent(t, st, host.ID, "started-recently", func(e *domain.Event) { e.StartsAt = now.Add(-2 * time.Hour) })
	seedEvent(t, st, host.ID, "upcoming")

	n, err := st.Events().CloseEndedEvents(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	for slug, want := range map[string]domain.EventStatus{
		"ended-with-end":   domain.EventClosed,
		"started-long-ago": domain.EventClosed,
		"started-recently": domain.EventOpen,
		"upcoming":         domain.EventOpen,
	} {
		e, err := st.Events().GetEventBySlug(ctx, slug)
		require.NoError(t, err)
		require.Equal(t, want, e.Status, slug)
	}
}

func TestUpsertResponseKeepsOneRow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	host := seedUser(t, st, "host")
	guest := seedUser(t, st, "guest")
	e := seedEvent(t, st, host.ID, "launch-party-2025")

	key := domain.RespondentKeyUser(guest.ID)
	first, err := st.Responses().UpsertResponse(ctx, domain.Response{
		ID: idx.NewString(), EventID: e.ID, RespondentKey: key, UserID: guest.ID,
		ResponseType: domain.ResponseMaybe, GuestCount: 1,
	})
	require.NoError(t, err)

	second, err := st.Responses().UpsertResponse(ctx, domain.Response{
		ID: idx.NewString(), EventID: e.ID, RespondentKey: key, UserID: guest.ID,
		ResponseType: domain.ResponseYup, GuestCount: 2,
	})
	require.NoError(t, err)

	require.Equal(t, first.ID, second.ID, "upsert keeps the original id")
	require.Equal(t, domain.ResponseYup, second.ResponseType)
	require.Equal(t, 2, second.GuestCount)

	all, err := st.Responses().ListResponsesByEvent(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestSumYupGuests(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	host := seedUser(t, st, "host")
	e := seedEvent(t, st, host.ID, "launch-party-2025")

	for i, tc := range []struct {
		typ   domain.ResponseType
		count int
	}{
		{domain.ResponseYup, 2},
		{domain.ResponseYup, 3},
		{domain.ResponseMaybe, 4},
	} {
		_, err := st.Responses().UpsertResponse(ctx, domain.Response{
			ID: idx.NewString(), EventID: e.ID, IsGuest: true,
			RespondentKey: domain.RespondentKeyGuest(string(rune('a'+i)) + "@example.test"),
			ResponseType:  tc.typ, GuestCount: tc.count,
		})
		require.NoError(t, err)
	}

	total, err := st.Responses().SumYupGuests(ctx, e.ID, "")
	require.NoError(t, err)
	require.Equal(t, 5, total)

	total, err = st.Responses().SumYupGuests(ctx, e.ID, domain.RespondentKeyGuest("a@example.test"))
	require.NoError(t, err)
	require.Equal(t, 3, total)
}

func TestInvitations(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	host := seedUser(t, st, "host")
	e := seedEvent(t, st, host.ID, "launch-party-2025")

	inv := domain.Invitation{
		ID: idx.NewString(), EventID: e.ID, InvitedBy: host.ID,
		Name: "Sam", Email: "sam@example.test", TokenHash: "fp-1",
		Status: domain.InvitationPending,
	}
	require.NoError(t, st.Invitations().CreateInvitation(ctx, inv))

	got, err := st.Invitations().GetInvitationByTokenHash(ctx, "fp-1")
	require.NoError(t, err)
	require.Equal(t, inv.ID, got.ID)
	require.Equal(t, domain.InvitationPending, got.Status)

	require.NoError(t, got.Advance(domain.InvitationSent, time.Now().UTC()))
	require.NoError(t, st.Invitations().UpdateInvitationStatus(ctx, got))

	got, err = st.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationSent, got.Status)
	require.NotNil(t, got.SentAt)
	require.Nil(t, got.ViewedAt)

	list, err := st.Invitations().ListInvitationsByEvent(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestDeleteEventCascades(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	host := seedUser(t, st, "host")
	e := seedEvent(t, st, host.ID, "launch-party-2025")

	require.NoError(t, st.Invitations().CreateInvitation(ctx, domain.Invitation{
		ID: idx.NewString(), EventID: e.ID, InvitedBy: host.ID, TokenHash: "fp", Status: domain.InvitationPending,
	}))
	_, err := st.Responses().UpsertResponse(ctx, domain.Response{
		ID: idx.NewString(), EventID: e.ID, RespondentKey: domain.RespondentKeyUser(host.ID),
		UserID: host.ID, ResponseType: domain.ResponseYup, GuestCount: 1,
	})
	require.NoError(t, err)

	require.NoError(t, st.Events().DeleteEvent(ctx, e.ID))

	rs, err := st.Responses().ListResponsesByEvent(ctx, e.ID)
	require.NoError(t, err)
	require.Empty(t, rs)
	_, err = st.Invitations().GetInvitationByTokenHash(ctx, "fp")
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, st.Events().DeleteEvent(ctx, e.ID), store.ErrNotFound)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	boom := context.Canceled
	err := st.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Users().CreateUser(ctx, domain.User{ID: idx.NewString(), Username: "ghost", PasswordHash: "x"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = st.Users().GetUserByUsername(ctx, "ghost")
	require.ErrorIs(t, err, store.ErrNotFound)

	err = st.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, domain.User{ID: idx.NewString(), Username: "real", PasswordHash: "x"})
	})
	require.NoError(t, err)
	_, err = st.Users().GetUserByUsername(ctx, "real")
	require.NoError(t, err)
}

func TestSQLiteDSN(t *testing.T) {
	require.Equal(t,
		"file::memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite",
		sqldb.SQLiteDSN(""))
	require.Contains(t, sqldb.SQLiteDSN("/data/yup.db"), "journal_mode(WAL)")
}
