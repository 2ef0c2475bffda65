package http

import (
	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
	"github.com/aussiebroadwan/yup/pkg/yupsdk"
)

func toUser(u domain.User) yupsdk.User {
	return yupsdk.User{
		ID:            u.ID,
		Username:      u.Username,
		DisplayName:   u.DisplayName,
		Email:         u.Email,
		Phone:         u.Phone,
		PhoneVerified: u.PhoneVerified,
		SMSOptIn:      u.SMSOptIn,
		IsAdmin:       u.IsAdmin,
		IsPro:         u.IsPro,
		IsPremium:     u.IsPremium,
		CreatedAt:     u.CreatedAt,
	}
}

func toBranding(u domain.User) yupsdk.Branding {
	return yupsdk.Branding{ThemeColor: u.ThemeColor, LogoURL: u.LogoURL}
}

func toWording(w domain.Wording) yupsdk.Wording {
	return yupsdk.Wording{Yup: w.Yup, Nope: w.Nope, Maybe: w.Maybe}
}

func fromWording(w *yupsdk.Wording) *domain.Wording {
	if w == nil {
		return nil
	}
	return &domain.Wording{Yup: w.Yup, Nope: w.Nope, Maybe: w.Maybe}
}

func toEvent(e domain.Event) yupsdk.Event {
	return yupsdk.Event{
		ID:             e.ID,
		HostID:         e.HostID,
		Slug:           e.Slug,
		Title:          e.Title,
		Description:    e.Description,
		Location:       e.Location,
		StartsAt:       e.StartsAt,
		EndsAt:         e.EndsAt,
		Status:         string(e.Status),
		AllowGuestRSVP: e.AllowGuestRSVP,
		AllowPlusOnes:  e.AllowPlusOnes,
		MaxPartySize:   e.MaxPartySize,
		Capacity:       e.Capacity,
		Wording:        toWording(e.Wording),
		Visibility:     string(e.Visibility),
		ImageURL:       e.ImageURL,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func toEvents(es []domain.Event) []yupsdk.Event {
	out := make([]yupsdk.Event, 0, len(es))
	for _, e := range es {
		out = append(out, toEvent(e))
	}
	return out
}

// toResponse leaves out the respondent key; it embeds guest emails.
func toResponse(r domain.Response) yupsdk.Response {
	return yupsdk.Response{
		ID:           r.ID,
		EventID:      r.EventID,
		UserID:       r.UserID,
		InvitationID: r.InvitationID,
		IsGuest:      r.IsGuest,
		GuestName:    r.GuestName,
		GuestEmail:   r.GuestEmail,
		ResponseType: string(r.ResponseType),
		GuestCount:   r.GuestCount,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toSummary(s domain.ResponseSummary) yupsdk.ResponseSummary {
	return yupsdk.ResponseSummary{
		Yup:         s.Yup,
		Nope:        s.Nope,
		Maybe:       s.Maybe,
		YupGuests:   s.YupGuests,
		MaybeGuests: s.MaybeGuests,
	}
}

// toInvitation never carries the token hash.
func toInvitation(inv domain.Invitation) yupsdk.Invitation {
	return yupsdk.Invitation{
		ID:          inv.ID,
		EventID:     inv.EventID,
		Name:        inv.Name,
		Email:       inv.Email,
		Phone:       inv.Phone,
		Status:      string(inv.Status),
		SentAt:      inv.SentAt,
		ViewedAt:    inv.ViewedAt,
		RespondedAt: inv.RespondedAt,
		CreatedAt:   inv.CreatedAt,
	}
}
