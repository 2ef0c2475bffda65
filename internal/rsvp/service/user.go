package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
	"github.com/aussiebroadwan/yup/internal/rsvp/notify"
	"github.com/aussiebroadwan/yup/internal/rsvp/store"
	"github.com/aussiebroadwan/yup/pkg/cryptox"
	"github.com/aussiebroadwan/yup/pkg/idx"
	"github.com/aussiebroadwan/yup/pkg/slogx"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	minPasswordLen    = 8
	maxPasswordLen    = 256
	maxDisplayNameLen = 100

	// PhoneCodeTTL is how long a phone verification code stays valid.
	PhoneCodeTTL = 10 * time.Minute
)

type UserService struct {
	Store    store.Store
	Notifier notify.Notifier
	Clock    Clock

	// Issuer names the TOTP secrets used for phone codes.
	Issuer string
}

type SignupInput struct {
	Username    string
	Password    string
	DisplayName string
	Email       string
}

// Signup creates an account with no plan flags.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	username := strings.ToLower(strings.TrimSpace(in.Username))
	if !domain.ValidUsername(username) {
		return domain.User{}, fmt.Errorf("%w: username must be 3-32 characters of a-z, 0-9, '_', '.' or '-'", ErrInvalidSignup)
	}
	if n := utf8.RuneCountInString(in.Password); n < minPasswordLen || n > maxPasswordLen {
		return domain.User{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidSignup, minPasswordLen)
	}
	displayName, email, err := cleanProfile(in.DisplayName, in.Email)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %s", ErrInvalidSignup, err.Error())
	}
	if displayName == "" {
		displayName = username
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	now := s.Clock.Now()
	u := domain.User{
		ID:           idx.NewString(),
		Username:     username,
		DisplayName:  displayName,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("signup with taken username", slog.String("username", username))
			return domain.User{}, ErrUsernameTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user signed up", slog.String("user_id", u.ID), slog.String("username", u.Username))
	return u, nil
}

func cleanProfile(displayName, email string) (string, string, error) {
	displayName = strings.TrimSpace(displayName)
	if utf8.RuneCountInString(displayName) > maxDisplayNameLen {
		return "", "", errors.New("display name too long")
	}
	if strings.TrimSpace(email) == "" {
		return displayName, "", nil
	}
	email, err := domain.ParseEmail(email)
	if err != nil {
		return "", "", err
	}
	return displayName, email, nil
}

// GetUser fetches a user by id.
func (s *UserService) GetUser(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

func (s *UserService) UpdateProfile(ctx context.Context, userID, displayName, email string) (domain.User, error) {
	displayName, email, err := cleanProfile(displayName, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %s", ErrInvalidProfile, err.Error())
	}
	if displayName == "" {
		return domain.User{}, fmt.Errorf("%w: display name is required", ErrInvalidProfile)
	}
	if err := s.Store.Users().UpdateProfile(ctx, userID, displayName, email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return s.GetUser(ctx, userID)
}

// UpdateBranding sets the host's theme colour and logo. Callers gate this
// on premium.
func (s *UserService) UpdateBranding(ctx context.Context, userID, themeColor, logoURL string) (domain.User, error) {
	themeColor = strings.ToLower(strings.TrimSpace(themeColor))
	logoURL = strings.TrimSpace(logoURL)
	if !domain.ValidThemeColor(themeColor) {
		return domain.User{}, fmt.Errorf("%w: theme colour must look like #rrggbb", ErrInvalidProfile)
	}
	if logoURL != "" {
		u, err := url.Parse(logoURL)
		if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
			return domain.User{}, fmt.Errorf("%w: logo must be an http(s) URL", ErrInvalidProfile)
		}
	}
	if err := s.Store.Users().UpdateBranding(ctx, userID, themeColor, logoURL); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return s.GetUser(ctx, userID)
}

// SetSMSOptIn toggles SMS notifications. Opting in needs a verified phone.
func (s *UserService) SetSMSOptIn(ctx context.Context, userID string, optIn bool) (domain.User, error) {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	if optIn && (!u.PhoneVerified || u.Phone == "") {
		return domain.User{}, ErrPhoneNotVerified
	}
	if err := s.Store.Users().SetSMSOptIn(ctx, userID, optIn); err != nil {
		return domain.User{}, err
	}
	u.SMSOptIn = optIn
	slogx.FromContext(ctx).Info("sms preference changed", slog.String("user_id", userID), slog.Bool("opt_in", optIn))
	return u, nil
}

func phoneCodeOpts() totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    uint(PhoneCodeTTL / time.Second),
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	}
}

// StartPhoneVerification stores phone as pending and texts a six digit code
// to it. Starting again replaces any earlier attempt.
func (s *UserService) StartPhoneVerification(ctx context.Context, userID, phone string) error {
	log := slogx.FromContext(ctx)

	phone = strings.TrimSpace(phone)
	if !domain.ValidPhone(phone) {
		return ErrInvalidPhone
	}
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	issuer := s.Issuer
	if issuer == "" {
		issuer = "Yup"
	}
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: u.Username,
		Period:      uint(PhoneCodeTTL / time.Second),
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	now := s.Clock.Now()
	code, err := totp.GenerateCodeCustom(key.Secret(), now, phoneCodeOpts())
	if err != nil {
		return fmt.Errorf("failed to generate phone code: %w", err)
	}

	if err := s.Store.Users().StartPhoneVerification(ctx, userID, phone, key.Secret(), now); err != nil {
		return err
	}

	if s.Notifier == nil {
		return errors.New("no notifier configured for phone verification")
	}
	err = s.Notifier.Notify(ctx, domain.Notification{
		Kind:    domain.KindPhoneVerification,
		Channel: domain.ChannelSMS,
		To:      phone,
		Body:    fmt.Sprintf("Your Yup verification code is %s. It expires in %d minutes.", code, int(PhoneCodeTTL/time.Minute)),
	})
	if err != nil {
		log.Warn("phone verification code not sent", slog.String("user_id", userID), slog.Any("error", err))
		return fmt.Errorf("send verification code: %w", err)
	}

	log.Info("phone verification started", slog.String("user_id", userID))
	return nil
}

// ConfirmPhoneVerification checks code against the pending verification
// and marks the phone verified.
func (s *UserService) ConfirmPhoneVerification(ctx context.Context, userID, code string) (domain.User, error) {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	if u.PhoneVerifySecret == "" || u.PhoneVerifyStartedAt == nil {
		return domain.User{}, ErrNoPendingVerification
	}

	now := s.Clock.Now()
	if now.Sub(*u.PhoneVerifyStartedAt) > PhoneCodeTTL {
		return domain.User{}, ErrVerificationExpired
	}
	ok, err := totp.ValidateCustom(strings.TrimSpace(code), u.PhoneVerifySecret, now, phoneCodeOpts())
	if err != nil || !ok {
		slogx.FromContext(ctx).Warn("invalid phone verification code", slog.String("user_id", userID))
		return domain.User{}, ErrInvalidCode
	}

	if err := s.Store.Users().CompletePhoneVerification(ctx, userID); err != nil {
		return domain.User{}, err
	}
	slogx.FromContext(ctx).Info("phone verified", slog.String("user_id", userID))
	return s.GetUser(ctx, userID)
}
