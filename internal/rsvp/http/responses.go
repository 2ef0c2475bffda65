package http

import (
	"net/http"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
	"github.com/aussiebroadwan/yup/internal/rsvp/service"
	"github.com/aussiebroadwan/yup/pkg/httpx"
	"github.com/aussiebroadwan/yup/pkg/yupsdk"
)

type ResponsesHandler struct {
	ResponseService *service.ResponseService
}

// HandleSubmit godoc
//
//	@Summary		RSVP to an event
//	@Description	Signed-in users answer as themselves. Anonymous guests give a name and email, or answer
//	@Description	through an invitation token. Answering again replaces the earlier response.
//	@Tags			Responses
//	@Accept			json
//	@Produce		json
//	@Param			slug	path		string							true	"Event slug"
//	@Param			request	body		yupsdk.SubmitResponseRequest	true	"Response"
//	@Success		200		{object}	yupsdk.Response
//	@Failure		400		{object}	yupsdk.APIError	"error, error_description"
//	@Failure		403		{object}	yupsdk.APIError	"guest responses disabled"
//	@Failure		404		{object}	yupsdk.APIError	"error, error_description"
//	@Failure		409		{object}	yupsdk.APIError	"event closed or full"
//	@Router			/v1/events/{slug}/responses [post]
func (h *ResponsesHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req yupsdk.SubmitResponseRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	ctx := r.Context()
	resp, err := h.ResponseService.Submit(ctx, r.PathValue("slug"), httpx.UserIDFromContext(ctx), service.SubmitInput{
		ResponseType:    domain.ResponseType(req.ResponseType),
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestCount:      req.GuestCount,
		InvitationToken: req.InvitationToken,
	})
	if err != nil {
		writeServiceError(w, r, err, "failed to submit response")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toResponse(resp))
}

// HandleList godoc
//
//	@Summary		List responses
//	@Description	Host or admin only. Every response with yup, nope and maybe tallies.
//	@Tags			Responses
//	@Security		BearerAuth
//	@Produce		json
//	@Param			slug	path		string	true	"Event slug"
//	@Success		200		{object}	yupsdk.ResponseList
//	@Failure		403		{object}	yupsdk.APIError	"not the host"
//	@Failure		404		{object}	yupsdk.APIError	"error, error_description"
//	@Router			/v1/events/{slug}/responses [get]
func (h *ResponsesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	er, err := h.ResponseService.ListForHost(ctx, httpx.UserIDFromContext(ctx), r.PathValue("slug"))
	if err != nil {
		writeServiceError(w, r, err, "failed to list responses")
		return
	}

	out := yupsdk.ResponseList{
		Responses: make([]yupsdk.Response, 0, len(er.Responses)),
		Summary:   toSummary(er.Summary),
	}
	for _, resp := range er.Responses {
		out.Responses = append(out.Responses, toResponse(resp))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleMine godoc
//
//	@Summary		My response
//	@Tags			Responses
//	@Security		BearerAuth
//	@Produce		json
//	@Param			slug	path		string	true	"Event slug"
//	@Success		200		{object}	yupsdk.Response
//	@Failure		404		{object}	yupsdk.APIError	"no response yet"
//	@Router			/v1/events/{slug}/responses/me [get]
func (h *ResponsesHandler) HandleMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp, err := h.ResponseService.Mine(ctx, httpx.UserIDFromContext(ctx), r.PathValue("slug"))
	if err != nil {
		writeServiceError(w, r, err, "failed to load response")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toResponse(resp))
}
