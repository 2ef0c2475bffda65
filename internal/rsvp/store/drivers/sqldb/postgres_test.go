package sqldb_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
	"github.com/aussiebroadwan/yup/internal/rsvp/store"
	"github.com/aussiebroadwan/yup/internal/rsvp/store/drivers/sqldb"
	"github.com/aussiebroadwan/yup/pkg/idx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func newMockStore(t *testing.T) (*sqldb.Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqldb.New(db, sqldb.DialectPostgres), mock
}

var eventColumnNames = []string{
	"id", "host_id", "slug", "title", "description", "location",
	"starts_at", "ends_at", "status", "allow_guest_rsvp", "allow_plus_ones",
	"max_party_size", "capacity", "wording_yup", "wording_nope", "wording_maybe",
	"visibility", "image_url", "created_at", "updated_at",
}

func TestPostgresLockEventUsesForUpdate(t *testing.T) {
	st, mock := newMockStore(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(eventColumnNames).AddRow(
		"01EVENT", "01HOST", "launch-party-2025", "Launch Party", "", "Warehouse 9",
		now, nil, "open", true, true,
		0, 10, "", "", "",
		"public", "", now, now,
	)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM events WHERE slug = \$1 FOR UPDATE`).
		WithArgs("launch-party-2025").
		WillReturnRows(rows)
	mock.ExpectCommit()

	err := st.WithTx(context.Background(), func(tx store.Tx) error {
		e, err := tx.Events().LockEventBySlug(context.Background(), "launch-party-2025")
		if err != nil {
			return err
		}
		require.Equal(t, 10, *e.Capacity)
		require.Nil(t, e.EndsAt)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUniqueViolationMapsToAlreadyExists(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO users .* VALUES \(\$1, \$2, .*\$11\)`).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := st.Users().CreateUser(context.Background(), domain.User{ID: "01X", Username: "maya", PasswordHash: "x"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresNoRowsMapsToNotFound(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := st.Users().GetUserByID(context.Background(), "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresOtherErrorsPassThrough(t *testing.T) {
	st, mock := newMockStore(t)
	boom := errors.New("connection reset")

	mock.ExpectExec(`UPDATE users SET sms_opt_in = \$1`).WillReturnError(boom)

	err := st.Users().SetSMSOptIn(context.Background(), "01X", true)
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresUpdateZeroRowsIsNotFound(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectExec(`UPDATE users SET is_admin = \$1`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := st.Users().UpdateFlags(context.Background(), "01X", domain.UserFlags{IsAdmin: true})
	require.ErrorIs(t, err, store.ErrNotFound)
}

// TestPostgresIntegration runs the store against a real Postgres. It needs
// Docker and only runs with YUP_DOCKER_TESTS=1.
func TestPostgresIntegration(t *testing.T) {
	if os.Getenv("YUP_DOCKER_TESTS") != "1" {
		t.Skip("set YUP_DOCKER_TESTS=1 to run Docker-backed tests")
	}
	ctx := context.Background()

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "yup",
				"POSTGRES_PASSWORD": "yup",
				"POSTGRES_DB":       "yup",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctr.Terminate(ctx) })

	host, err := ctr.Host(ctx)
	require.NoError(t, err)
	port, err := ctr.MappedPort(ctx, "5432")
	require.NoError(t, err)

	st, err := sqldb.Open(sqldb.DialectPostgres,
		"postgres://yup:yup@"+host+":"+port.Port()+"/yup?sslmode=disable")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	u := seedUser(t, st, "maya")
	err = st.Users().CreateUser(ctx, domain.User{ID: idx.NewString(), Username: "maya", PasswordHash: "x"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	e := seedEvent(t, st, u.ID, "launch-party-2025")
	key := domain.RespondentKeyUser(u.ID)

	err = st.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Events().LockEventBySlug(ctx, e.Slug); err != nil {
			return err
		}
		_, err := tx.Responses().UpsertResponse(ctx, domain.Response{
			ID: idx.NewString(), EventID: e.ID, RespondentKey: key, UserID: u.ID,
			ResponseType: domain.ResponseYup, GuestCount: 2,
		})
		return err
	})
	require.NoError(t, err)

	_, err = st.Responses().UpsertResponse(ctx, domain.Response{
		ID: idx.NewString(), EventID: e.ID, RespondentKey: key, UserID: u.ID,
		ResponseType: domain.ResponseNope, GuestCount: 1,
	})
	require.NoError(t, err)

	rs, err := st.Responses().ListResponsesByEvent(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, rs, 1)
	require.Equal(t, domain.ResponseNope, rs[0].ResponseType)
}
