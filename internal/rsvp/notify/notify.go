// Package notify delivers domain.Notification values to people: host
// RSVP alerts, invitations and phone verification codes.
package notify

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
)

// Notifier delivers one notification. Implementations that do not serve
// n.Channel return nil without doing anything.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// Func adapts a function to the Notifier interface.
type Func func(ctx context.Context, n domain.Notification) error

func (f Func) Notify(ctx context.Context, n domain.Notification) error {
	return f(ctx, n)
}

// Multi fans a notification out to every notifier and joins their errors.
// A failing notifier does not stop the others.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n domain.Notification) error {
	var errs []error
	for _, nt := range m {
		if nt == nil {
			continue
		}
		if err := nt.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop drops every notification.
var Nop Notifier = Func(func(context.Context, domain.Notification) error { return nil })
