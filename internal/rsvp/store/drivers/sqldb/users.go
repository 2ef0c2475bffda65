package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
)

const userColumns = `id, username, display_name, email, phone, password_hash,
	is_admin, is_pro, is_premium, phone_verified, sms_opt_in,
	phone_verify_secret, phone_verify_started_at, theme_color, logo_url,
	created_at, updated_at`

type userRow struct {
	ID                   string         `db:"id"`
	Username             string         `db:"username"`
	DisplayName          string         `db:"display_name"`
	Email                string         `db:"email"`
	Phone                string         `db:"phone"`
	PasswordHash         string         `db:"password_hash"`
	IsAdmin              bool           `db:"is_admin"`
	IsPro                bool           `db:"is_pro"`
	IsPremium            bool           `db:"is_premium"`
	PhoneVerified        bool           `db:"phone_verified"`
	SMSOptIn             bool           `db:"sms_opt_in"`
	PhoneVerifySecret    sql.NullString `db:"phone_verify_secret"`
	PhoneVerifyStartedAt sql.NullTime   `db:"phone_verify_started_at"`
	ThemeColor           string         `db:"theme_color"`
	LogoURL              string         `db:"logo_url"`
	CreatedAt            time.Time      `db:"created_at"`
	UpdatedAt            time.Time      `db:"updated_at"`
}

func mapUser(row userRow) domain.User {
	return domain.User{
		ID:                   row.ID,
		Username:             row.Username,
		DisplayName:          row.DisplayName,
		Email:                row.Email,
		Phone:                row.Phone,
		PasswordHash:         row.PasswordHash,
		IsAdmin:              row.IsAdmin,
		IsPro:                row.IsPro,
		IsPremium:            row.IsPremium,
		PhoneVerified:        row.PhoneVerified,
		SMSOptIn:             row.SMSOptIn,
		PhoneVerifySecret:    mapNullString(row.PhoneVerifySecret),
		PhoneVerifyStartedAt: mapNullTimePtr(row.PhoneVerifyStartedAt),
		ThemeColor:           row.ThemeColor,
		LogoURL:              row.LogoURL,
		CreatedAt:            row.CreatedAt.UTC(),
		UpdatedAt:            row.UpdatedAt.UTC(),
	}
}

type usersRepo struct {
	c conn
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	var row userRow
	if err := r.c.get(ctx, &row, `SELECT `+userColumns+` FROM users WHERE id = ?`, id); err != nil {
		return domain.User{}, err
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var row userRow
	if err := r.c.get(ctx, &row, `SELECT `+userColumns+` FROM users WHERE username = ?`, username); err != nil {
		return domain.User{}, err
	}
	return mapUser(row), nil
}

func (r *usersRepo) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	var rows []userRow
	err := r.c.selectAll(ctx, &rows,
		`SELECT `+userColumns+` FROM users ORDER BY username LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapUser(row))
	}
	return out, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := nowUTC()
	_, err := r.c.exec(ctx, `
		INSERT INTO users (id, username, display_name, email, phone, password_hash,
			is_admin, is_pro, is_premium, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.DisplayName, u.Email, u.Phone, u.PasswordHash,
		u.IsAdmin, u.IsPro, u.IsPremium, now, now,
	)
	return err
}

func (r *usersRepo) UpdateProfile(ctx context.Context, userID, displayName, email string) error {
	return r.c.execOne(ctx,
		`UPDATE users SET display_name = ?, email = ?, updated_at = ? WHERE id = ?`,
		displayName, email, nowUTC(), userID)
}

func (r *usersRepo) UpdateBranding(ctx context.Context, userID, themeColor, logoURL string) error {
	return r.c.execOne(ctx,
		`UPDATE users SET theme_color = ?, logo_url = ?, updated_at = ? WHERE id = ?`,
		themeColor, logoURL, nowUTC(), userID)
}

func (r *usersRepo) UpdateFlags(ctx context.Context, userID string, f domain.UserFlags) error {
	return r.c.execOne(ctx,
		`UPDATE users SET is_admin = ?, is_pro = ?, is_premium = ?, updated_at = ? WHERE id = ?`,
		f.IsAdmin, f.IsPro, f.IsPremium, nowUTC(), userID)
}

func (r *usersRepo) SetSMSOptIn(ctx context.Context, userID string, optIn bool) error {
	return r.c.execOne(ctx,
		`UPDATE users SET sms_opt_in = ?, updated_at = ? WHERE id = ?`,
		optIn, nowUTC(), userID)
}

func (r *usersRepo) StartPhoneVerification(
	ctx context.Context,
	userID, phone, secret string,
	startedAt time.Time,
) error {
	return r.c.execOne(ctx, `
		UPDATE users
		SET phone = ?, phone_verified = ?, sms_opt_in = ?,
			phone_verify_secret = ?, phone_verify_started_at = ?, updated_at = ?
		WHERE id = ?`,
		phone, false, false, secret, startedAt.UTC(), nowUTC(), userID)
}

func (r *usersRepo) CompletePhoneVerification(ctx context.Context, userID string) error {
	return r.c.execOne(ctx, `
		UPDATE users
		SET phone_verified = ?, phone_verify_secret = NULL,
			phone_verify_started_at = NULL, updated_at = ?
		WHERE id = ?`,
		true, nowUTC(), userID)
}

func (r *usersRepo) ClearStalePhoneVerifications(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.c.exec(ctx, `
		UPDATE users
		SET phone_verify_secret = NULL, phone_verify_started_at = NULL, updated_at = ?
		WHERE phone_verify_started_at IS NOT NULL AND phone_verify_started_at < ?`,
		nowUTC(), cutoff.UTC())
}
