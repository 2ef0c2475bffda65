package service

import (
	"errors"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
)

var (
	ErrInvalidResponse    = errors.New("invalid response")
	ErrEventNotOpen       = errors.New("event is not open for responses")
	ErrGuestRSVPDisabled  = errors.New("event does not accept guest responses")
	ErrPartyTooLarge      = errors.New("party size exceeds what the event allows")
	ErrEventFull          = errors.New("event is at capacity")
	ErrResponseNotFound   = errors.New("response not found")
	ErrInvalidInvitation  = errors.New("invalid or unknown invitation")
	ErrInvitationNotFound = errors.New("invitation not found")

	// ErrDeliveryNotRecorded means the invitation is stored but its delivery
	// state is not; it stays pending until resent.
	ErrDeliveryNotRecorded = errors.New("invitation delivery not recorded")

	ErrInvalidEvent  = errors.New("invalid event")
	ErrEventNotFound = errors.New("event not found")
	ErrNotEventHost  = errors.New("only the event host may do this")
	ErrSlugTaken     = errors.New("slug already taken")

	// ErrInvalidTransition is returned for event and invitation status
	// changes outside the allowed table.
	ErrInvalidTransition = domain.ErrInvalidTransition

	ErrInvalidSignup      = errors.New("invalid signup request")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidProfile     = errors.New("invalid profile")

	ErrInvalidPhone          = errors.New("invalid phone number")
	ErrPhoneNotVerified      = errors.New("phone number is not verified")
	ErrNoPendingVerification = errors.New("no phone verification in progress")
	ErrVerificationExpired   = errors.New("verification code expired")
	ErrInvalidCode           = errors.New("invalid verification code")
)
