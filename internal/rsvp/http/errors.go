package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/yup/internal/rsvp/service"
	"github.com/aussiebroadwan/yup/pkg/slogx"
	"github.com/aussiebroadwan/yup/pkg/yupsdk"
)

var (
	badRequest = []error{
		service.ErrInvalidResponse,
		service.ErrInvalidEvent,
		service.ErrInvalidSignup,
		service.ErrInvalidProfile,
		service.ErrInvalidPhone,
		service.ErrPartyTooLarge,
		service.ErrInvalidInvitation,
		service.ErrPhoneNotVerified,
		service.ErrNoPendingVerification,
		service.ErrVerificationExpired,
		service.ErrInvalidCode,
	}
	forbidden = []error{
		service.ErrNotEventHost,
		service.ErrGuestRSVPDisabled,
	}
	notFound = []error{
		service.ErrEventNotFound,
		service.ErrResponseNotFound,
		service.ErrInvitationNotFound,
		service.ErrUserNotFound,
	}
	conflict = []error{
		service.ErrSlugTaken,
		service.ErrUsernameTaken,
		service.ErrEventFull,
		service.ErrEventNotOpen,
		service.ErrInvalidTransition,
	}
)

// apiError maps a service error to its wire form. The second result is
// false for errors that are not the caller's fault.
func apiError(err error) (*yupsdk.APIError, bool) {
	match := func(targets []error) bool {
		for _, t := range targets {
			if errors.Is(err, t) {
				return true
			}
		}
		return false
	}

	switch {
	case match(badRequest):
		return yupsdk.ErrInvalidRequest.WithDescription(err.Error()), true
	case errors.Is(err, service.ErrInvalidCredentials):
		return yupsdk.ErrUnauthorized.WithDescription(err.Error()), true
	case match(forbidden):
		return yupsdk.ErrForbidden.WithDescription(err.Error()), true
	case match(notFound):
		return yupsdk.ErrNotFound.WithDescription(err.Error()), true
	case match(conflict):
		return yupsdk.ErrConflict.WithDescription(err.Error()), true
	}
	return yupsdk.ErrServerError, false
}

// writeServiceError answers with the mapped error. Unknown errors are
// logged with msg and hidden behind a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	e, known := apiError(err)
	if !known {
		slogx.FromContext(r.Context()).Error(msg, "err", err)
	}
	e.WriteError(w)
}

func writeBadJSON(w http.ResponseWriter) {
	yupsdk.ErrInvalidRequest.WithDescription("Invalid JSON body").WriteError(w)
}
