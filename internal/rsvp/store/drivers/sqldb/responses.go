package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
)

const responseColumns = `id, event_id, respondent_key, user_id, invitation_id,
	is_guest, guest_name, guest_email, response_type, guest_count,
	created_at, updated_at`

type responseRow struct {
	ID            string         `db:"id"`
	EventID       string         `db:"event_id"`
	RespondentKey string         `db:"respondent_key"`
	UserID        sql.NullString `db:"user_id"`
	InvitationID  sql.NullString `db:"invitation_id"`
	IsGuest       bool           `db:"is_guest"`
	GuestName     string         `db:"guest_name"`
	GuestEmail    string         `db:"guest_email"`
	ResponseType  string         `db:"response_type"`
	GuestCount    int            `db:"guest_count"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func mapResponse(row responseRow) domain.Response {
	return domain.Response{
		ID:            row.ID,
		EventID:       row.EventID,
		RespondentKey: row.RespondentKey,
		UserID:        mapNullString(row.UserID),
		InvitationID:  mapNullString(row.InvitationID),
		IsGuest:       row.IsGuest,
		GuestName:     row.GuestName,
		GuestEmail:    row.GuestEmail,
		ResponseType:  domain.ResponseType(row.ResponseType),
		GuestCount:    row.GuestCount,
		CreatedAt:     row.CreatedAt.UTC(),
		UpdatedAt:     row.UpdatedAt.UTC(),
	}
}

type responsesRepo struct {
	c conn
}

func (r *responsesRepo) UpsertResponse(ctx context.Context, resp domain.Response) (domain.Response, error) {
	now := nowUTC()
	_, err := r.c.exec(ctx, `
		INSERT INTO responses (id, event_id, respondent_key, user_id, invitation_id,
			is_guest, guest_name, guest_email, response_type, guest_count,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (event_id, respondent_key) DO UPDATE SET
			user_id = excluded.user_id,
			invitation_id = excluded.invitation_id,
			is_guest = excluded.is_guest,
			guest_name = excluded.guest_name,
			guest_email = excluded.guest_email,
			response_type = excluded.response_type,
			guest_count = excluded.guest_count,
			updated_at = excluded.updated_at`,
		resp.ID, resp.EventID, resp.RespondentKey,
		mapStringNull(resp.UserID), mapStringNull(resp.InvitationID),
		resp.IsGuest, resp.GuestName, resp.GuestEmail,
		string(resp.ResponseType), resp.GuestCount, now, now,
	)
	if err != nil {
		return domain.Response{}, err
	}
	return r.GetResponse(ctx, resp.EventID, resp.RespondentKey)
}

func (r *responsesRepo) GetResponse(ctx context.Context, eventID, respondentKey string) (domain.Response, error) {
	var row responseRow
	err := r.c.get(ctx, &row,
		`SELECT `+responseColumns+` FROM responses WHERE event_id = ? AND respondent_key = ?`,
		eventID, respondentKey)
	if err != nil {
		return domain.Response{}, err
	}
	return mapResponse(row), nil
}

func (r *responsesRepo) ListResponsesByEvent(ctx context.Context, eventID string) ([]domain.Response, error) {
	var rows []responseRow
	err := r.c.selectAll(ctx, &rows,
		`SELECT `+responseColumns+` FROM responses WHERE event_id = ? ORDER BY created_at, id`, eventID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Response, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapResponse(row))
	}
	return out, nil
}

func (r *responsesRepo) SumYupGuests(ctx context.Context, eventID, excludeKey string) (int, error) {
	var total int
	err := r.c.get(ctx, &total, `
		SELECT COALESCE(SUM(guest_count), 0) FROM responses
		WHERE event_id = ? AND response_type = ? AND respondent_key <> ?`,
		eventID, string(domain.ResponseYup), excludeKey)
	return total, err
}
