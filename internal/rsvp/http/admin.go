package http

import (
	"net/http"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
	"github.com/aussiebroadwan/yup/internal/rsvp/service"
	"github.com/aussiebroadwan/yup/pkg/httpx"
	"github.com/aussiebroadwan/yup/pkg/idx"
	"github.com/aussiebroadwan/yup/pkg/yupsdk"
)

type AdminHandler struct {
	AdminService *service.AdminService
}

// HandleListUsers godoc
//
//	@Summary		List users
//	@Description	Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 50, max 200)"
//	@Param			offset	query		int	false	"Rows to skip"
//	@Success		200		{object}	yupsdk.UserList
//	@Failure		400		{object}	yupsdk.APIError	"error, error_description"
//	@Failure		403		{object}	yupsdk.APIError	"not an admin"
//	@Router			/v1/admin/users [get]
func (h *AdminHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit")
	if !ok {
		yupsdk.ErrInvalidRequest.WithDescription("limit must be a non-negative number").WriteError(w)
		return
	}
	offset, ok := queryInt(r, "offset")
	if !ok {
		yupsdk.ErrInvalidRequest.WithDescription("offset must be a non-negative number").WriteError(w)
		return
	}

	us, err := h.AdminService.ListUsers(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, r, err, "failed to list users")
		return
	}

	out := yupsdk.UserList{Users: make([]yupsdk.User, 0, len(us)), Limit: limit, Offset: offset}
	for _, u := range us {
		out.Users = append(out.Users, toUser(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleSetFlags godoc
//
//	@Summary		Set plan and role flags
//	@Description	Admin only. Replaces all three flags; the change applies to cached access checks at once.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"User ID"
//	@Param			request	body		yupsdk.UserFlags	true	"Flags"
//	@Success		200		{object}	yupsdk.User
//	@Failure		403		{object}	yupsdk.APIError	"not an admin"
//	@Failure		404		{object}	yupsdk.APIError	"error, error_description"
//	@Router			/v1/admin/users/{id}/flags [put]
func (h *AdminHandler) HandleSetFlags(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if !idx.Valid(userID) {
		yupsdk.ErrNotFound.WithDescription("user not found").WriteError(w)
		return
	}

	var req yupsdk.UserFlags
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	ctx := r.Context()
	u, err := h.AdminService.SetFlags(ctx, httpx.UserIDFromContext(ctx), userID, domain.UserFlags{
		IsAdmin:   req.IsAdmin,
		IsPro:     req.IsPro,
		IsPremium: req.IsPremium,
	})
	if err != nil {
		writeServiceError(w, r, err, "failed to set user flags")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}
