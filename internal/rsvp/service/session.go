package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
	"github.com/aussiebroadwan/yup/internal/rsvp/store"
	"github.com/aussiebroadwan/yup/pkg/cryptox"
	"github.com/aussiebroadwan/yup/pkg/idx"
	"github.com/aussiebroadwan/yup/pkg/jwtx"
	"github.com/aussiebroadwan/yup/pkg/slogx"
)

type SessionService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	Audience []string
	TTL      time.Duration
	Clock    Clock
}

type Session struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

// Login checks the password and issues a signed session token.
func (s *SessionService) Login(ctx context.Context, username, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login for unknown user", slog.String("username", username))
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Error("stored password hash unreadable", slog.String("user_id", u.ID), slog.Any("error", err))
		} else {
			log.Warn("login with wrong password", slog.String("user_id", u.ID))
		}
		return Session{}, ErrInvalidCredentials
	}

	claims := jwtx.NewSessionClaims(
		u.ID, idx.NewString(), s.TTL,
		s.Issuer, s.Audience,
		u.Username, u.DisplayName,
		s.Clock.Now(),
	)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return Session{}, err
	}

	log.Info("user logged in", slog.String("user_id", u.ID))
	return Session{Token: token, ExpiresAt: claims.ExpiresAt.Time, User: u}, nil
}
