package domain

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

type ResponseType string

const (
	ResponseYup   ResponseType = "yup"
	ResponseNope  ResponseType = "nope"
	ResponseMaybe ResponseType = "maybe"
)

func (t ResponseType) Valid() bool {
	switch t {
	case ResponseYup, ResponseNope, ResponseMaybe:
		return true
	}
	return false
}

type Response struct {
	ID            string
	EventID       string
	RespondentKey string // unique per event, see RespondentKey* helpers
	UserID        string // empty for guests
	InvitationID  string // empty unless answered through an invitation
	IsGuest       bool
	GuestName     string
	GuestEmail    string
	ResponseType  ResponseType
	GuestCount    int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RespondentKeyUser identifies a signed-in respondent.
func RespondentKeyUser(userID string) string { return "user:" + userID }

// RespondentKeyInvitation identifies a respondent answering through an
// invitation link.
func RespondentKeyInvitation(invitationID string) string { return "invitation:" + invitationID }

// RespondentKeyGuest identifies an anonymous guest by normalised email.
func RespondentKeyGuest(email string) string { return "guest:" + NormalizeEmail(email) }

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var ErrInvalidEmail = errors.New("invalid email")

// ParseEmail accepts an address with or without a display name and returns
// the bare, lower-cased address.
func ParseEmail(email string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return "", ErrInvalidEmail
	}
	return NormalizeEmail(addr.Address), nil
}

// ResponseSummary tallies the responses of one event. Counts are rows,
// Guests is the sum of guest_count.
type ResponseSummary struct {
	Yup         int `json:"yup"`
	Nope        int `json:"nope"`
	Maybe       int `json:"maybe"`
	YupGuests   int `json:"yup_guests"`
	MaybeGuests int `json:"maybe_guests"`
}

// Summarize tallies rs.
func Summarize(rs []Response) ResponseSummary {
	var s ResponseSummary
	for _, r := range rs {
		switch r.ResponseType {
		case ResponseYup:
			s.Yup++
			s.YupGuests += r.GuestCount
		case ResponseNope:
			s.Nope++
		case ResponseMaybe:
			s.Maybe++
			s.MaybeGuests += r.GuestCount
		}
	}
	return s
}
