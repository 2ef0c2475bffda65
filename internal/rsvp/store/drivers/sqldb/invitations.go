package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
)

const invitationColumns = `id, event_id, invited_by, user_id, name, email, phone,
	token_hash, status, sent_at, viewed_at, responded_at, created_at, updated_at`

type invitationRow struct {
	ID          string         `db:"id"`
	EventID     string         `db:"event_id"`
	InvitedBy   string         `db:"invited_by"`
	UserID      sql.NullString `db:"user_id"`
	Name        string         `db:"name"`
	Email       string         `db:"email"`
	Phone       string         `db:"phone"`
	TokenHash   string         `db:"token_hash"`
	Status      string         `db:"status"`
	SentAt      sql.NullTime   `db:"sent_at"`
	ViewedAt    sql.NullTime   `db:"viewed_at"`
	RespondedAt sql.NullTime   `db:"responded_at"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func mapInvitation(row invitationRow) domain.Invitation {
	return domain.Invitation{
		ID:          row.ID,
		EventID:     row.EventID,
		InvitedBy:   row.InvitedBy,
		UserID:      mapNullString(row.UserID),
		Name:        row.Name,
		Email:       row.Email,
		Phone:       row.Phone,
		TokenHash:   row.TokenHash,
		Status:      domain.InvitationStatus(row.Status),
		SentAt:      mapNullTimePtr(row.SentAt),
		ViewedAt:    mapNullTimePtr(row.ViewedAt),
		RespondedAt: mapNullTimePtr(row.RespondedAt),
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
}

type invitationsRepo struct {
	c conn
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	now := nowUTC()
	_, err := r.c.exec(ctx, `
		INSERT INTO invitations (id, event_id, invited_by, user_id, name, email, phone,
			token_hash, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.EventID, inv.InvitedBy, mapStringNull(inv.UserID),
		inv.Name, inv.Email, inv.Phone, inv.TokenHash, string(inv.Status), now, now,
	)
	return err
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	var row invitationRow
	if err := r.c.get(ctx, &row, `SELECT `+invitationColumns+` FROM invitations WHERE id = ?`, id); err != nil {
		return domain.Invitation{}, err
	}
	return mapInvitation(row), nil
}

func (r *invitationsRepo) GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error) {
	var row invitationRow
	err := r.c.get(ctx, &row, `SELECT `+invitationColumns+` FROM invitations WHERE token_hash = ?`, hash)
	if err != nil {
		return domain.Invitation{}, err
	}
	return mapInvitation(row), nil
}

func (r *invitationsRepo) ListInvitationsByEvent(ctx context.Context, eventID string) ([]domain.Invitation, error) {
	var rows []invitationRow
	err := r.c.selectAll(ctx, &rows,
		`SELECT `+invitationColumns+` FROM invitations WHERE event_id = ? ORDER BY created_at, id`, eventID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Invitation, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapInvitation(row))
	}
	return out, nil
}

func (r *invitationsRepo) UpdateInvitationStatus(ctx context.Context, inv domain.Invitation) error {
	return r.c.execOne(ctx, `
		UPDATE invitations
		SET status = ?, sent_at = ?, viewed_at = ?, responded_at = ?, updated_at = ?
		WHERE id = ?`,
		string(inv.Status), mapOptionalTime(inv.SentAt), mapOptionalTime(inv.ViewedAt),
		mapOptionalTime(inv.RespondedAt), nowUTC(), inv.ID,
	)
}

func (r *invitationsRepo) RotateInvitationToken(ctx context.Context, id, hash string) error {
	return r.c.execOne(ctx,
		`UPDATE invitations SET token_hash = ?, updated_at = ? WHERE id = ?`,
		hash, nowUTC(), id)
}
