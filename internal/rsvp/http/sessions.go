package http

import (
	"net/http"

	"github.com/aussiebroadwan/yup/internal/rsvp/service"
	"github.com/aussiebroadwan/yup/pkg/httpx"
	"github.com/aussiebroadwan/yup/pkg/yupsdk"
)

type SessionsHandler struct {
	SessionService *service.SessionService
	SecureCookies  bool
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Exchanges a username and password for a session token. The token is returned in the body
//	@Description	and also set as the HttpOnly yup_session cookie for browsers.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		yupsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	yupsdk.SessionResponse	"token, token_type, expires_at, user"
//	@Failure		400		{object}	yupsdk.APIError			"error, error_description"
//	@Failure		401		{object}	yupsdk.APIError			"error, error_description"
//	@Failure		429		{object}	yupsdk.APIError			"error, error_description"
//	@Router			/v1/sessions [post]
func (h *SessionsHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req yupsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	s, err := h.SessionService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "failed to log in")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     httpx.SessionCookieName,
		Value:    s.Token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	httpx.WriteJSON(w, http.StatusOK, yupsdk.SessionResponse{
		Token:     s.Token,
		TokenType: "Bearer",
		ExpiresAt: s.ExpiresAt,
		User:      toUser(s.User),
	})
}

// HandleLogout godoc
//
//	@Summary		Log out
//	@Description	Clears the session cookie. Bearer tokens stay valid until they expire.
//	@Tags			Sessions
//	@Success		204	"No Content"
//	@Router			/v1/sessions [delete]
func (h *SessionsHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     httpx.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
