package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
)

const eventColumns = `id, host_id, slug, title, description, location,
	starts_at, ends_at, status, allow_guest_rsvp, allow_plus_ones,
	max_party_size, capacity, wording_yup, wording_nope, wording_maybe,
	visibility, image_url, created_at, updated_at`

type eventRow struct {
	ID             string        `db:"id"`
	HostID         string        `db:"host_id"`
	Slug           string        `db:"slug"`
	Title          string        `db:"title"`
	Description    string        `db:"description"`
	Location       string        `db:"location"`
	StartsAt       time.Time     `db:"starts_at"`
	EndsAt         sql.NullTime  `db:"ends_at"`
	Status         string        `db:"status"`
	AllowGuestRSVP bool          `db:"allow_guest_rsvp"`
	AllowPlusOnes  bool          `db:"allow_plus_ones"`
	MaxPartySize   int           `db:"max_party_size"`
	Capacity       sql.NullInt64 `db:"capacity"`
	WordingYup     string        `db:"wording_yup"`
	WordingNope    string        `db:"wording_nope"`
	WordingMaybe   string        `db:"wording_maybe"`
	Visibility     string        `db:"visibility"`
	ImageURL       string        `db:"image_url"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
}

func mapEvent(row eventRow) domain.Event {
	return domain.Event{
		ID:             row.ID,
		HostID:         row.HostID,
		Slug:           row.Slug,
		Title:          row.Title,
		Description:    row.Description,
		Location:       row.Location,
		StartsAt:       row.StartsAt.UTC(),
		EndsAt:         mapNullTimePtr(row.EndsAt),
		Status:         domain.EventStatus(row.Status),
		AllowGuestRSVP: row.AllowGuestRSVP,
		AllowPlusOnes:  row.AllowPlusOnes,
		MaxPartySize:   row.MaxPartySize,
		Capacity:       mapNullIntPtr(row.Capacity),
		Wording: domain.Wording{
			Yup:   row.WordingYup,
			Nope:  row.WordingNope,
			Maybe: row.WordingMaybe,
		},
		Visibility: domain.Visibility(row.Visibility),
		ImageURL:   row.ImageURL,
		CreatedAt:  row.CreatedAt.UTC(),
		UpdatedAt:  row.UpdatedAt.UTC(),
	}
}

func mapEvents(rows []eventRow) []domain.Event {
	out := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapEvent(row))
	}
	return out
}

type eventsRepo struct {
	c conn
}

func (r *eventsRepo) GetEventByID(ctx context.Context, id string) (domain.Event, error) {
	var row eventRow
	if err := r.c.get(ctx, &row, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id); err != nil {
		return domain.Event{}, err
	}
	return mapEvent(row), nil
}

func (r *eventsRepo) GetEventBySlug(ctx context.Context, slug string) (domain.Event, error) {
	var row eventRow
	if err := r.c.get(ctx, &row, `SELECT `+eventColumns+` FROM events WHERE slug = ?`, slug); err != nil {
		return domain.Event{}, err
	}
	return mapEvent(row), nil
}

func (r *eventsRepo) LockEventBySlug(ctx context.Context, slug string) (domain.Event, error) {
	q := `SELECT ` + eventColumns + ` FROM events WHERE slug = ?`
	if r.c.dialect == DialectPostgres {
		q += ` FOR UPDATE`
	}
	var row eventRow
	if err := r.c.get(ctx, &row, q, slug); err != nil {
		return domain.Event{}, err
	}
	return mapEvent(row), nil
}

func (r *eventsRepo) ListEventsByHost(ctx context.Context, hostID string) ([]domain.Event, error) {
	var rows []eventRow
	err := r.c.selectAll(ctx, &rows,
		`SELECT `+eventColumns+` FROM events WHERE host_id = ? ORDER BY starts_at, id`, hostID)
	if err != nil {
		return nil, err
	}
	return mapEvents(rows), nil
}

func (r *eventsRepo) ListUpcomingPublic(ctx context.Context, since time.Time, limit int) ([]domain.Event, error) {
	var rows []eventRow
	err := r.c.selectAll(ctx, &rows, `
		SELECT `+eventColumns+` FROM events
		WHERE status = ? AND visibility = ? AND starts_at >= ?
		ORDER BY starts_at, id
		LIMIT ?`,
		string(domain.EventOpen), string(domain.VisibilityPublic), since.UTC(), limit)
	if err != nil {
		return nil, err
	}
	return mapEvents(rows), nil
}

func (r *eventsRepo) CreateEvent(ctx context.Context, e domain.Event) error {
	now := nowUTC()
	_, err := r.c.exec(ctx, `
		INSERT INTO events (id, host_id, slug, title, description, location,
			starts_at, ends_at, status, allow_guest_rsvp, allow_plus_ones,
			max_party_size, capacity, wording_yup, wording_nope, wording_maybe,
			visibility, image_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.HostID, e.Slug, e.Title, e.Description, e.Location,
		e.StartsAt.UTC(), mapOptionalTime(e.EndsAt), string(e.Status),
		e.AllowGuestRSVP, e.AllowPlusOnes, e.MaxPartySize, mapOptionalInt(e.Capacity),
		e.Wording.Yup, e.Wording.Nope, e.Wording.Maybe,
		string(e.Visibility), e.ImageURL, now, now,
	)
	return err
}

func (r *eventsRepo) UpdateEvent(ctx context.Context, e domain.Event) error {
	return r.c.execOne(ctx, `
		UPDATE events
		SET title = ?, description = ?, location = ?, starts_at = ?, ends_at = ?,
			status = ?, allow_guest_rsvp = ?, allow_plus_ones = ?, max_party_size = ?,
			capacity = ?, wording_yup = ?, wording_nope = ?, wording_maybe = ?,
			visibility = ?, image_url = ?, updated_at = ?
		WHERE id = ?`,
		e.Title, e.Description, e.Location, e.StartsAt.UTC(), mapOptionalTime(e.EndsAt),
		string(e.Status), e.AllowGuestRSVP, e.AllowPlusOnes, e.MaxPartySize,
		mapOptionalInt(e.Capacity), e.Wording.Yup, e.Wording.Nope, e.Wording.Maybe,
		string(e.Visibility), e.ImageURL, nowUTC(), e.ID,
	)
}

func (r *eventsRepo) DeleteEvent(ctx context.Context, id string) error {
	return r.c.execOne(ctx, `DELETE FROM events WHERE id = ?`, id)
}

func (r *eventsRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var n int
	if err := r.c.get(ctx, &n, `SELECT COUNT(*) FROM events WHERE slug = ?`, slug); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *eventsRepo) CloseEndedEvents(ctx context.Context, now time.Time) (int64, error) {
	now = now.UTC()
	return r.c.exec(ctx, `
		UPDATE events SET status = ?, updated_at = ?
		WHERE status = ?
		  AND ((ends_at IS NOT NULL AND ends_at < ?)
		    OR (ends_at IS NULL AND starts_at < ?))`,
		string(domain.EventClosed), now, string(domain.EventOpen),
		now, now.Add(-24*time.Hour),
	)
}
