package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
	"github.com/aussiebroadwan/yup/internal/rsvp/service"
	"github.com/aussiebroadwan/yup/pkg/httpx"
	"github.com/aussiebroadwan/yup/pkg/yupsdk"
)

type EventsHandler struct {
	EventService *service.EventService
}

// HandleCreate godoc
//
//	@Summary		Create event
//	@Description	Creates an open event hosted by the caller. Without a slug one is derived from the title.
//	@Tags			Events
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		yupsdk.CreateEventRequest	true	"Event"
//	@Success		201		{object}	yupsdk.Event
//	@Failure		400		{object}	yupsdk.APIError	"error, error_description"
//	@Failure		401		{object}	yupsdk.APIError	"error, error_description"
//	@Failure		409		{object}	yupsdk.APIError	"slug taken"
//	@Router			/v1/events [post]
func (h *EventsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req yupsdk.CreateEventRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	in := service.CreateEventInput{
		Slug:           req.Slug,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		AllowGuestRSVP: req.AllowGuestRSVP,
		AllowPlusOnes:  req.AllowPlusOnes,
		MaxPartySize:   req.MaxPartySize,
		Capacity:       req.Capacity,
		Visibility:     domain.Visibility(req.Visibility),
		ImageURL:       req.ImageURL,
	}
	if wd := fromWording(req.Wording); wd != nil {
		in.Wording = *wd
	}

	e, err := h.EventService.Create(r.Context(), httpx.UserIDFromContext(r.Context()), in)
	if err != nil {
		writeServiceError(w, r, err, "failed to create event")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toEvent(e))
}

// HandleList godoc
//
//	@Summary		Upcoming events
//	@Description	Open public events that have not started, soonest first.
//	@Tags			Events
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 50, max 200)"
//	@Success		200		{object}	yupsdk.EventList
//	@Failure		400		{object}	yupsdk.APIError	"error, error_description"
//	@Router			/v1/events [get]
func (h *EventsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit")
	if !ok {
		yupsdk.ErrInvalidRequest.WithDescription("limit must be a number").WriteError(w)
		return
	}

	es, err := h.EventService.ListUpcoming(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err, "failed to list events")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, yupsdk.EventList{Events: toEvents(es)})
}

// HandleGet godoc
//
//	@Summary		Get event
//	@Description	Public and unlisted events are readable by anyone. Private events need the host's
//	@Description	session or an invitation token in ?invite=; otherwise they look missing.
//	@Tags			Events
//	@Produce		json
//	@Param			slug	path		string	true	"Event slug"
//	@Param			invite	query		string	false	"Invitation token"
//	@Success		200		{object}	yupsdk.Event
//	@Failure		404		{object}	yupsdk.APIError	"error, error_description"
//	@Router			/v1/events/{slug} [get]
func (h *EventsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	e, err := h.EventService.Get(ctx, r.PathValue("slug"), httpx.UserIDFromContext(ctx), r.URL.Query().Get("invite"))
	if err != nil {
		writeServiceError(w, r, err, "failed to load event")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toEvent(e))
}

// HandleUpdate godoc
//
//	@Summary		Update event
//	@Description	Host or admin only. Only fields present in the body change. Status moves between
//	@Description	open and closed; cancelled is final. A capacity of 0 removes the limit.
//	@Tags			Events
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			slug	path		string						true	"Event slug"
//	@Param			request	body		yupsdk.UpdateEventRequest	true	"Changes"
//	@Success		200		{object}	yupsdk.Event
//	@Failure		400		{object}	yupsdk.APIError	"error, error_description"
//	@Failure		403		{object}	yupsdk.APIError	"not the host"
//	@Failure		404		{object}	yupsdk.APIError	"error, error_description"
//	@Failure		409		{object}	yupsdk.APIError	"invalid status transition"
//	@Router			/v1/events/{slug} [patch]
func (h *EventsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req yupsdk.UpdateEventRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	in := service.UpdateEventInput{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		ClearEndsAt:    req.ClearEndsAt,
		AllowGuestRSVP: req.AllowGuestRSVP,
		AllowPlusOnes:  req.AllowPlusOnes,
		MaxPartySize:   req.MaxPartySize,
		Capacity:       req.Capacity,
		Wording:        fromWording(req.Wording),
		ImageURL:       req.ImageURL,
	}
	if req.Status != nil {
		s := domain.EventStatus(*req.Status)
		in.Status = &s
	}
	if req.Visibility != nil {
		v := domain.Visibility(*req.Visibility)
		in.Visibility = &v
	}

	ctx := r.Context()
	e, err := h.EventService.Update(ctx, httpx.UserIDFromContext(ctx), r.PathValue("slug"), in)
	if err != nil {
		writeServiceError(w, r, err, "failed to update event")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toEvent(e))
}

// HandleDelete godoc
//
//	@Summary		Delete event
//	@Description	Host or admin only. Removes the event with its responses and invitations.
//	@Tags			Events
//	@Security		BearerAuth
//	@Param			slug	path	string	true	"Event slug"
//	@Success		204		"No Content"
//	@Failure		403		{object}	yupsdk.APIError	"not the host"
//	@Failure		404		{object}	yupsdk.APIError	"error, error_description"
//	@Router			/v1/events/{slug} [delete]
func (h *EventsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.EventService.Delete(ctx, httpx.UserIDFromContext(ctx), r.PathValue("slug")); err != nil {
		writeServiceError(w, r, err, "failed to delete event")
		return
	}
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// queryInt reads an optional integer query parameter. Missing means 0.
func queryInt(r *http.Request, name string) (int, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
