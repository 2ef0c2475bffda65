package yupsdk

import "time"

// ============================================================================
// Users and sessions
// ============================================================================

type SignupRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse is returned by login. The same token is also set as the
// yup_session cookie.
type SessionResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	DisplayName   string    `json:"display_name"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	PhoneVerified bool      `json:"phone_verified"`
	SMSOptIn      bool      `json:"sms_opt_in"`
	IsAdmin       bool      `json:"is_admin"`
	IsPro         bool      `json:"is_pro"`
	IsPremium     bool      `json:"is_premium"`
	CreatedAt     time.Time `json:"created_at"`
}

type UserList struct {
	Users  []User `json:"users"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

type Branding struct {
	ThemeColor string `json:"theme_color"`
	LogoURL    string `json:"logo_url"`
}

type SMSPreferenceRequest struct {
	OptIn bool `json:"opt_in"`
}

type PhoneVerificationRequest struct {
	Phone string `json:"phone"`
}

type PhoneConfirmRequest struct {
	Code string `json:"code"`
}

type UserFlags struct {
	IsAdmin   bool `json:"is_admin"`
	IsPro     bool `json:"is_pro"`
	IsPremium bool `json:"is_premium"`
}

// ============================================================================
// Events
// ============================================================================

type Wording struct {
	Yup   string `json:"yup,omitempty"`
	Nope  string `json:"nope,omitempty"`
	Maybe string `json:"maybe,omitempty"`
}

type CreateEventRequest struct {
	Slug           string     `json:"slug,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Location       string     `json:"location,omitempty"`
	StartsAt       time.Time  `json:"starts_at"`
	EndsAt         *time.Time `json:"ends_at,omitempty"`
	AllowGuestRSVP bool       `json:"allow_guest_rsvp"`
	AllowPlusOnes  bool       `json:"allow_plus_ones"`
	MaxPartySize   int        `json:"max_party_size,omitempty"`
	Capacity       *int       `json:"capacity,omitempty"`
	Wording        *Wording   `json:"wording,omitempty"`
	Visibility     string     `json:"visibility,omitempty"`
	ImageURL       string     `json:"image_url,omitempty"`
}

// UpdateEventRequest changes only the fields that are present. A capacity
// of 0 removes the limit and clear_ends_at removes the end time.
type UpdateEventRequest struct {
	Title          *string    `json:"title,omitempty"`
	Description    *string    `json:"description,omitempty"`
	Location       *string    `json:"location,omitempty"`
	StartsAt       *time.Time `json:"starts_at,omitempty"`
	EndsAt         *time.Time `json:"ends_at,omitempty"`
	ClearEndsAt    bool       `json:"clear_ends_at,omitempty"`
	Status         *string    `json:"status,omitempty"`
	AllowGuestRSVP *bool      `json:"allow_guest_rsvp,omitempty"`
	AllowPlusOnes  *bool      `json:"allow_plus_ones,omitempty"`
	MaxPartySize   *int       `json:"max_party_size,omitempty"`
	Capacity       *int       `json:"capacity,omitempty"`
	Wording        *Wording   `json:"wording,omitempty"`
	Visibility     *string    `json:"visibility,omitempty"`
	ImageURL       *string    `json:"image_url,omitempty"`
}

type Event struct {
	ID             string     `json:"id"`
	HostID         string     `json:"host_id"`
	Slug           string     `json:"slug"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Location       string     `json:"location,omitempty"`
	StartsAt       time.Time  `json:"starts_at"`
	EndsAt         *time.Time `json:"ends_at,omitempty"`
	Status         string     `json:"status"`
	AllowGuestRSVP bool       `json:"allow_guest_rsvp"`
	AllowPlusOnes  bool       `json:"allow_plus_ones"`
	MaxPartySize   int        `json:"max_party_size"`
	Capacity       *int       `json:"capacity,omitempty"`
	Wording        Wording    `json:"wording"`
	Visibility     string     `json:"visibility"`
	ImageURL       string     `json:"image_url,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type EventList struct {
	Events []Event `json:"events"`
}

// ============================================================================
// Responses
// ============================================================================

type SubmitResponseRequest struct {
	ResponseType    string `json:"response_type"`
	GuestName       string `json:"guest_name,omitempty"`
	GuestEmail      string `json:"guest_email,omitempty"`
	GuestCount      *int   `json:"guest_count,omitempty"`
	InvitationToken string `json:"invitation_token,omitempty"`
}

type Response struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	UserID       string    `json:"user_id,omitempty"`
	InvitationID string    `json:"invitation_id,omitempty"`
	IsGuest      bool      `json:"is_guest"`
	GuestName    string    `json:"guest_name,omitempty"`
	GuestEmail   string    `json:"guest_email,omitempty"`
	ResponseType string    `json:"response_type"`
	GuestCount   int       `json:"guest_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ResponseSummary struct {
	Yup         int `json:"yup"`
	Nope        int `json:"nope"`
	Maybe       int `json:"maybe"`
	YupGuests   int `json:"yup_guests"`
	MaybeGuests int `json:"maybe_guests"`
}

type ResponseList struct {
	Responses []Response      `json:"responses"`
	Summary   ResponseSummary `json:"summary"`
}

// ============================================================================
// Invitations
// ============================================================================

type CreateInvitationRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type Invitation struct {
	ID          string     `json:"id"`
	EventID     string     `json:"event_id"`
	Name        string     `json:"name,omitempty"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Status      string     `json:"status"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	ViewedAt    *time.Time `json:"viewed_at,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// InvitationCreated carries the raw token. It is shown once.
type InvitationCreated struct {
	Invitation Invitation `json:"invitation"`
	Token      string     `json:"token"`
}

type InvitationList struct {
	Invitations []Invitation `json:"invitations"`
}

type InvitationView struct {
	Invitation Invitation `json:"invitation"`
	Event      Event      `json:"event"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string            `json:"status"`
	Uptime  string            `json:"uptime,omitempty"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}
