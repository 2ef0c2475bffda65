package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTransition = errors.New("invalid status transition")

type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "pending"
	InvitationSent      InvitationStatus = "sent"
	InvitationFailed    InvitationStatus = "failed"
	InvitationViewed    InvitationStatus = "viewed"
	InvitationResponded InvitationStatus = "responded"
)

var invitationTransitions = map[InvitationStatus][]InvitationStatus{
	InvitationPending:   {InvitationSent, InvitationFailed, InvitationViewed, InvitationResponded},
	InvitationFailed:    {InvitationSent, InvitationViewed, InvitationResponded},
	InvitationSent:      {InvitationViewed, InvitationResponded},
	InvitationViewed:    {InvitationResponded},
	InvitationResponded: nil,
}

func (s InvitationStatus) Valid() bool {
	_, ok := invitationTransitions[s]
	return ok
}

// CheckTransition returns nil when s may move to next. Moving to the same
// status is a no-op and always allowed.
func (s InvitationStatus) CheckTransition(next InvitationStatus) error {
	if s == next {
		return nil
	}
	for _, to := range invitationTransitions[s] {
		if to == next {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
}

// CanResend reports whether delivery may be retried from s.
func (s InvitationStatus) CanResend() bool {
	return s == InvitationPending || s == InvitationFailed
}

type Invitation struct {
	ID          string
	EventID     string
	InvitedBy   string
	UserID      string // set when the invitee has an account
	Name        string
	Email       string
	Phone       string
	TokenHash   string
	Status      InvitationStatus
	SentAt      *time.Time
	ViewedAt    *time.Time
	RespondedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Advance moves the invitation to next, stamping the matching timestamp.
// A same-status move changes nothing.
func (inv *Invitation) Advance(next InvitationStatus, now time.Time) error {
	if err := inv.Status.CheckTransition(next); err != nil {
		return err
	}
	if inv.Status == next {
		return nil
	}
	switch next {
	case InvitationSent:
		inv.SentAt = &now
	case InvitationViewed:
		inv.ViewedAt = &now
	case InvitationResponded:
		inv.RespondedAt = &now
	}
	inv.Status = next
	inv.UpdatedAt = now
	return nil
}
