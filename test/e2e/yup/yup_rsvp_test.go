package yup_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/yup/pkg/yupsdk"
	"github.com/stretchr/testify/require"
)

// TestLaunchPartyRSVP walks a host through creating an event and reading
// back the guest answers, including a capacity rejection.
func TestLaunchPartyRSVP(t *testing.T) {
	baseURL, cleanup := setupYupContainer(t)
	defer cleanup()

	ctx := t.Context()
	anon := yupsdk.NewClient(baseURL)
	host, _ := signupAndLogin(t, anon, "maya")

	ev := createEvent(t, host, yupsdk.CreateEventRequest{
		Title:          "Launch Party",
		Location:       "Warehouse 9",
		AllowGuestRSVP: true,
		AllowPlusOnes:  true,
		MaxPartySize:   4,
		Capacity:       intPtr(5),
	})
	require.Equal(t, "launch-party", ev.Slug)

	_, err := anon.SubmitResponse(ctx, ev.Slug, yupsdk.SubmitResponseRequest{
		ResponseType: "yup",
		GuestName:    "Sam",
		GuestEmail:   "sam@example.com",
		GuestCount:   intPtr(3),
	})
	require.NoError(t, err)

	_, err = anon.SubmitResponse(ctx, ev.Slug, yupsdk.SubmitResponseRequest{
		ResponseType: "maybe",
		GuestName:    "Ann",
		GuestEmail:   "ann@example.com",
	})
	require.NoError(t, err)

	// 3 + 3 would exceed the capacity of 5.
	_, err = anon.SubmitResponse(ctx, ev.Slug, yupsdk.SubmitResponseRequest{
		ResponseType: "yup",
		GuestName:    "Bo",
		GuestEmail:   "bo@example.com",
		GuestCount:   intPtr(3),
	})
	assertAPIError(t, err, http.StatusConflict, yupsdk.ErrorCodeConflict)

	// Resubmitting replaces Sam's answer instead of adding a row.
	_, err = anon.SubmitResponse(ctx, ev.Slug, yupsdk.SubmitResponseRequest{
		ResponseType: "yup",
		GuestName:    "Sam",
		GuestEmail:   "sam@example.com",
		GuestCount:   intPtr(2),
	})
	require.NoError(t, err)

	list, err := host.ListResponses(ctx, ev.Slug)
	require.NoError(t, err)
	require.Len(t, list.Responses, 2)
	require.Equal(t, yupsdk.ResponseSummary{Yup: 1, Maybe: 1, YupGuests: 2, MaybeGuests: 1}, list.Summary)

	_, err = anon.ListResponses(ctx, ev.Slug)
	assertAPIError(t, err, http.StatusUnauthorized, yupsdk.ErrorCodeUnauthorized)
}

// TestInvitationLink verifies a private event is reachable only through its
// invitation token.
func TestInvitationLink(t *testing.T) {
	baseURL, cleanup := setupYupContainer(t)
	defer cleanup()

	ctx := t.Context()
	anon := yupsdk.NewClient(baseURL)
	host, _ := signupAndLogin(t, anon, "maya")

	ev := createEvent(t, host, yupsdk.CreateEventRequest{
		Title:      "Secret Supper",
		Visibility: "private",
	})

	created, err := host.CreateInvitation(ctx, ev.Slug, yupsdk.CreateInvitationRequest{
		Name:  "Sam",
		Email: "sam@example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.Token)
	require.Equal(t, "sent", created.Invitation.Status)

	_, err = anon.GetEvent(ctx, ev.Slug, "")
	assertAPIError(t, err, http.StatusNotFound, yupsdk.ErrorCodeNotFound)

	view, err := anon.ViewInvitation(ctx, created.Token)
	require.NoError(t, err)
	require.Equal(t, ev.ID, view.Event.ID)
	require.Equal(t, "viewed", view.Invitation.Status)

	_, err = anon.SubmitResponse(ctx, ev.Slug, yupsdk.SubmitResponseRequest{
		ResponseType:    "yup",
		GuestName:       "Sam",
		GuestEmail:      "sam@example.com",
		InvitationToken: created.Token,
	})
	require.NoError(t, err)

	invs, err := host.ListInvitations(ctx, ev.Slug)
	require.NoError(t, err)
	require.Len(t, invs, 1)
	require.Equal(t, "responded", invs[0].Status)
}
