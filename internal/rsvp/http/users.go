package http

import (
	"net/http"

	"github.com/aussiebroadwan/yup/internal/rsvp/service"
	"github.com/aussiebroadwan/yup/pkg/httpx"
	"github.com/aussiebroadwan/yup/pkg/yupsdk"
)

type UsersHandler struct {
	UserService  *service.UserService
	EventService *service.EventService
}

// HandleSignup godoc
//
//	@Summary		Sign up
//	@Description	Creates an account. New accounts have no plan flags.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		yupsdk.SignupRequest	true	"Account details"
//	@Success		201		{object}	yupsdk.User
//	@Failure		400		{object}	yupsdk.APIError	"error, error_description"
//	@Failure		409		{object}	yupsdk.APIError	"username taken"
//	@Router			/v1/users [post]
func (h *UsersHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req yupsdk.SignupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	u, err := h.UserService.Signup(r.Context(), service.SignupInput{
		Username:    req.Username,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Email:       req.Email,
	})
	if err != nil {
		writeServiceError(w, r, err, "failed to sign up")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUser(u))
}

// HandleMe godoc
//
//	@Summary		Current user
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	yupsdk.User
//	@Failure		401	{object}	yupsdk.APIError	"error, error_description"
//	@Router			/v1/users/me [get]
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	u, err := h.UserService.GetUser(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "failed to load user")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// HandleUpdateProfile godoc
//
//	@Summary		Update profile
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		yupsdk.UpdateProfileRequest	true	"Display name and email"
//	@Success		200		{object}	yupsdk.User
//	@Failure		400		{object}	yupsdk.APIError	"error, error_description"
//	@Failure		401		{object}	yupsdk.APIError	"error, error_description"
//	@Router			/v1/users/me [patch]
func (h *UsersHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req yupsdk.UpdateProfileRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	u, err := h.UserService.UpdateProfile(r.Context(), httpx.UserIDFromContext(r.Context()), req.DisplayName, req.Email)
	if err != nil {
		writeServiceError(w, r, err, "failed to update profile")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// HandleMyEvents godoc
//
//	@Summary		Events I host
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	yupsdk.EventList
//	@Failure		401	{object}	yupsdk.APIError	"error, error_description"
//	@Router			/v1/users/me/events [get]
func (h *UsersHandler) HandleMyEvents(w http.ResponseWriter, r *http.Request) {
	es, err := h.EventService.ListByHost(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "failed to list hosted events")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, yupsdk.EventList{Events: toEvents(es)})
}

// HandleGetBranding godoc
//
//	@Summary		Branding settings
//	@Description	Premium only. Anonymous callers are redirected to the login page and
//	@Description	callers without a premium plan to the upgrade page.
//	@Tags			Branding
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	yupsdk.Branding
//	@Success		303	"Redirect to login or upgrade"
//	@Router			/v1/users/me/branding [get]
func (h *UsersHandler) HandleGetBranding(w http.ResponseWriter, r *http.Request) {
	u, err := h.UserService.GetUser(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "failed to load branding")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toBranding(u))
}

// HandleUpdateBranding godoc
//
//	@Summary		Update branding
//	@Description	Premium only. Sets the theme colour (#rrggbb) and logo URL shown on hosted event pages.
//	@Tags			Branding
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		yupsdk.Branding	true	"Branding"
//	@Success		200		{object}	yupsdk.Branding
//	@Success		303		"Redirect to login or upgrade"
//	@Failure		400		{object}	yupsdk.APIError	"error, error_description"
//	@Router			/v1/users/me/branding [put]
func (h *UsersHandler) HandleUpdateBranding(w http.ResponseWriter, r *http.Request) {
	var req yupsdk.Branding
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	u, err := h.UserService.UpdateBranding(r.Context(), httpx.UserIDFromContext(r.Context()), req.ThemeColor, req.LogoURL)
	if err != nil {
		writeServiceError(w, r, err, "failed to update branding")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toBranding(u))
}

// HandleSMSPreference godoc
//
//	@Summary		SMS notifications
//	@Description	Opting in requires a verified phone number.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		yupsdk.SMSPreferenceRequest	true	"opt_in"
//	@Success		200		{object}	yupsdk.User
//	@Failure		400		{object}	yupsdk.APIError	"phone not verified"
//	@Router			/v1/users/me/sms [put]
func (h *UsersHandler) HandleSMSPreference(w http.ResponseWriter, r *http.Request) {
	var req yupsdk.SMSPreferenceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	u, err := h.UserService.SetSMSOptIn(r.Context(), httpx.UserIDFromContext(r.Context()), req.OptIn)
	if err != nil {
		writeServiceError(w, r, err, "failed to update sms preference")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// HandleStartPhoneVerification godoc
//
//	@Summary		Start phone verification
//	@Description	Texts a six digit code to the number. The code is valid for ten minutes.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Param			request	body	yupsdk.PhoneVerificationRequest	true	"E.164 phone number"
//	@Success		202		"Code sent"
//	@Failure		400		{object}	yupsdk.APIError	"error, error_description"
//	@Failure		429		{object}	yupsdk.APIError	"error, error_description"
//	@Router			/v1/users/me/phone/verification [post]
func (h *UsersHandler) HandleStartPhoneVerification(w http.ResponseWriter, r *http.Request) {
	var req yupsdk.PhoneVerificationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	if err := h.UserService.StartPhoneVerification(r.Context(), httpx.UserIDFromContext(r.Context()), req.Phone); err != nil {
		writeServiceError(w, r, err, "failed to start phone verification")
		return
	}
	httpx.NoCache(w)
	w.WriteHeader(http.StatusAccepted)
}

// HandleConfirmPhoneVerification godoc
//
//	@Summary		Confirm phone verification
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		yupsdk.PhoneConfirmRequest	true	"Code"
//	@Success		200		{object}	yupsdk.User
//	@Failure		400		{object}	yupsdk.APIError	"wrong or expired code"
//	@Router			/v1/users/me/phone/verification/confirm [post]
func (h *UsersHandler) HandleConfirmPhoneVerification(w http.ResponseWriter, r *http.Request) {
	var req yupsdk.PhoneConfirmRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	u, err := h.UserService.ConfirmPhoneVerification(r.Context(), httpx.UserIDFromContext(r.Context()), req.Code)
	if err != nil {
		writeServiceError(w, r, err, "failed to confirm phone verification")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}
