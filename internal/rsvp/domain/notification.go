package domain

type NotificationKind string

const (
	KindRSVPReceived      NotificationKind = "rsvp.received"
	KindInvitationSent    NotificationKind = "invitation.sent"
	KindPhoneVerification NotificationKind = "phone.verification"
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// Notification is a message for one recipient. Notifiers pick the
// notifications whose channel they serve.
type Notification struct {
	Kind     NotificationKind  `json:"kind"`
	Channel  Channel           `json:"channel"`
	To       string            `json:"to"` // email address or E.164 phone
	Subject  string            `json:"subject,omitempty"`
	Body     string            `json:"body"`
	EventID  string            `json:"event_id,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}
