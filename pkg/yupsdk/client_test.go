package yupsdk_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/yup/pkg/yupsdk"
	"github.com/stretchr/testify/require"
)

func TestClientSendsTokenAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.Equal(t, "/v1/events/launch-party/responses", r.URL.Path)

		var req yupsdk.SubmitResponseRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "yup", req.ResponseType)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(yupsdk.Response{ID: "r1", ResponseType: "yup", GuestCount: *req.GuestCount})
	}))
	defer srv.Close()

	two := 2
	c := yupsdk.NewClient(srv.URL + "/").WithToken("tok")
	r, err := c.SubmitResponse(context.Background(), "launch-party", yupsdk.SubmitResponseRequest{
		ResponseType: "yup",
		GuestCount:   &two,
	})
	require.NoError(t, err)
	require.Equal(t, 2, r.GuestCount)
}

func TestClientErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/events/missing":
			yupsdk.ErrNotFound.WithDescription("event not found").WriteError(w)
		case "/v1/users/me/branding":
			http.Redirect(w, r, "/upgrade", http.StatusSeeOther)
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	c := yupsdk.NewClient(srv.URL)
	ctx := context.Background()

	_, err := c.GetEvent(ctx, "missing", "")
	require.ErrorIs(t, err, yupsdk.ErrNotFound)
	var apiErr *yupsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "event not found", apiErr.Description)

	_, err = c.Branding(ctx)
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusSeeOther, apiErr.StatusCode)
	require.Equal(t, yupsdk.ErrorCodeRedirect, apiErr.Code)
	require.Equal(t, "/upgrade", apiErr.Description)

	err = c.Livez(ctx)
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, yupsdk.ErrorCodeServerError, apiErr.Code)
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	yupsdk.ErrConflict.WithDescription("slug already taken").WriteError(rr)

	require.Equal(t, http.StatusConflict, rr.Code)
	require.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"error":"conflict","error_description":"slug already taken"}`, rr.Body.String())
}
