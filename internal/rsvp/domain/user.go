package domain

import (
	"regexp"
	"time"
)

type User struct {
	ID           string
	Username     string
	DisplayName  string
	Email        string
	Phone        string
	PasswordHash string // argon2 encoded

	IsAdmin   bool
	IsPro     bool
	IsPremium bool

	PhoneVerified        bool
	SMSOptIn             bool
	PhoneVerifySecret    string     // TOTP secret while a verification is pending
	PhoneVerifyStartedAt *time.Time // nil when nothing is pending

	ThemeColor string // "#rrggbb"
	LogoURL    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPremium reports whether the user may use premium-only features.
// Pro and admin accounts include premium.
func (u User) HasPremium() bool {
	return u.IsPremium || u.IsPro || u.IsAdmin
}

// Flags returns the access flags for caching.
func (u User) Flags() UserFlags {
	return UserFlags{IsAdmin: u.IsAdmin, IsPro: u.IsPro, IsPremium: u.IsPremium}
}

// CanReceiveSMS reports whether host notifications may go out by SMS.
func (u User) CanReceiveSMS() bool {
	return u.SMSOptIn && u.PhoneVerified && u.Phone != ""
}

// UserFlags are the plan and role bits used for access decisions.
type UserFlags struct {
	IsAdmin   bool `json:"is_admin"`
	IsPro     bool `json:"is_pro"`
	IsPremium bool `json:"is_premium"`
}

func (f UserFlags) HasPremium() bool {
	return f.IsPremium || f.IsPro || f.IsAdmin
}

var (
	usernameRe   = regexp.MustCompile(`^[a-z0-9_][a-z0-9_.-]{2,31}$`)
	themeColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	phoneRe      = regexp.MustCompile(`^\+[1-9][0-9]{6,14}$`)
)

// ValidUsername allows 3-32 lowercase letters, digits, '_', '.' and '-'.
func ValidUsername(s string) bool { return usernameRe.MatchString(s) }

// ValidThemeColor accepts "#rrggbb". The empty string clears the colour.
func ValidThemeColor(s string) bool { return s == "" || themeColorRe.MatchString(s) }

// ValidPhone accepts E.164 numbers such as +61412345678.
func ValidPhone(s string) bool { return phoneRe.MatchString(s) }
