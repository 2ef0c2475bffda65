package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/yup/internal/rsvp/service"
	"github.com/aussiebroadwan/yup/pkg/httpx"
	"github.com/aussiebroadwan/yup/pkg/idx"
	"github.com/aussiebroadwan/yup/pkg/yupsdk"
)

type InvitationsHandler struct {
	InvitationService *service.InvitationService
}

// HandleCreate godoc
//
//	@Summary		Invite someone
//	@Description	Host or admin only. Sends the invitation by email, or by SMS when only a phone is given.
//	@Description	The raw token is returned once; a failed delivery still creates the invitation.
//	@Tags			Invitations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			slug	path		string							true	"Event slug"
//	@Param			request	body		yupsdk.CreateInvitationRequest	true	"Invitee"
//	@Success		201		{object}	yupsdk.InvitationCreated
//	@Failure		400		{object}	yupsdk.APIError	"error, error_description"
//	@Failure		403		{object}	yupsdk.APIError	"not the host"
//	@Router			/v1/events/{slug}/invitations [post]
func (h *InvitationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req yupsdk.CreateInvitationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	ctx := r.Context()
	inv, token, err := h.InvitationService.Create(ctx, httpx.UserIDFromContext(ctx), r.PathValue("slug"), service.CreateInvitationInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		writeServiceError(w, r, err, "failed to create invitation")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, yupsdk.InvitationCreated{
		Invitation: toInvitation(inv),
		Token:      token,
	})
}

// HandleList godoc
//
//	@Summary		List invitations
//	@Tags			Invitations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			slug	path		string	true	"Event slug"
//	@Success		200		{object}	yupsdk.InvitationList
//	@Failure		403		{object}	yupsdk.APIError	"not the host"
//	@Router			/v1/events/{slug}/invitations [get]
func (h *InvitationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	invs, err := h.InvitationService.List(ctx, httpx.UserIDFromContext(ctx), r.PathValue("slug"))
	if err != nil {
		writeServiceError(w, r, err, "failed to list invitations")
		return
	}

	out := yupsdk.InvitationList{Invitations: make([]yupsdk.Invitation, 0, len(invs))}
	for _, inv := range invs {
		out.Invitations = append(out.Invitations, toInvitation(inv))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleResend godoc
//
//	@Summary		Resend invitation
//	@Description	Retries a pending or failed invitation with a new token. The old link stops working.
//	@Tags			Invitations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			slug	path		string	true	"Event slug"
//	@Param			id		path		string	true	"Invitation ID"
//	@Success		200		{object}	yupsdk.InvitationCreated
//	@Failure		403		{object}	yupsdk.APIError	"not the host"
//	@Failure		404		{object}	yupsdk.APIError	"error, error_description"
//	@Failure		409		{object}	yupsdk.APIError	"already sent, viewed or answered"
//	@Router			/v1/events/{slug}/invitations/{id}/resend [post]
func (h *InvitationsHandler) HandleResend(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !idx.Valid(id) {
		yupsdk.ErrNotFound.WithDescription("invitation not found").WriteError(w)
		return
	}

	ctx := r.Context()
	inv, token, err := h.InvitationService.Resend(ctx, httpx.UserIDFromContext(ctx), r.PathValue("slug"), id)
	if err != nil {
		writeServiceError(w, r, err, "failed to resend invitation")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, yupsdk.InvitationCreated{
		Invitation: toInvitation(inv),
		Token:      token,
	})
}

// HandleView godoc
//
//	@Summary		Open an invitation
//	@Description	Marks the invitation viewed and returns it with its event.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string	true	"Invitation token"
//	@Success		200		{object}	yupsdk.InvitationView
//	@Failure		404		{object}	yupsdk.APIError	"unknown token"
//	@Router			/v1/invitations/{token}/view [post]
func (h *InvitationsHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	inv, e, err := h.InvitationService.View(r.Context(), r.PathValue("token"))
	if errors.Is(err, service.ErrInvalidInvitation) {
		yupsdk.ErrNotFound.WithDescription("invitation not found").WriteError(w)
		return
	}
	if err != nil {
		writeServiceError(w, r, err, "failed to view invitation")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, yupsdk.InvitationView{
		Invitation: toInvitation(inv),
		Event:      toEvent(e),
	})
}
