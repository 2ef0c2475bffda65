// Package sqldb implements store.Store on database/sql through sqlx. One
// set of queries serves both SQLite (modernc.org/sqlite) and Postgres
// (lib/pq); placeholders are rebound per dialect.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/yup/internal/rsvp/store"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

func init() {
	// sqlx only knows "sqlite3" out of the box.
	sqlx.BindDriver(string(DialectSQLite), sqlx.QUESTION)
}

type Store struct {
	db      *sqlx.DB
	dialect Dialect
}

// Open connects to the database for dialect. For SQLite dsn is a file path
// (or ":memory:"); for Postgres it is a connection URL.
func Open(dialect Dialect, dsn string) (*Store, error) {
	switch dialect {
	case DialectSQLite:
		return openSQLite(dsn)
	case DialectPostgres:
		return openPostgres(dsn)
	default:
		return nil, fmt.Errorf("sqldb: unsupported dialect %q", dialect)
	}
}

func openSQLite(path string) (*Store, error) {
	db, err := sqlx.Open(string(DialectSQLite), SQLiteDSN(path))
	if err != nil {
		return nil, err
	}

	// One connection: SQLite serialises writers anyway, and an in-memory
	// database only lives as long as its connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dialect: DialectSQLite}, nil
}

func openPostgres(url string) (*Store, error) {
	db, err := sqlx.Open(string(DialectPostgres), url)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	return &Store{db: db, dialect: DialectPostgres}, nil
}

// SQLiteDSN turns a file path into a modernc DSN with the pragmas the
// store relies on.
func SQLiteDSN(path string) string {
	if path == "" || path == ":memory:" {
		path = ":memory:"
	}
	pragmas := []string{
		"_pragma=foreign_keys(1)",
		"_pragma=busy_timeout(5000)",
		"_time_format=sqlite",
	}
	if path != ":memory:" {
		pragmas = append(pragmas, "_pragma=journal_mode(WAL)")
	}
	return "file:" + path + "?" + strings.Join(pragmas, "&")
}

// New wraps an existing handle, e.g. a sqlmock connection in tests.
func New(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: sqlx.NewDb(db, string(dialect)), dialect: dialect}
}

func (s *Store) Dialect() Dialect { return s.dialect }

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx, s.dialect), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) conn() conn { return conn{ext: s.db, dialect: s.dialect} }

func (s *Store) Users() store.Users             { return &usersRepo{c: s.conn()} }
func (s *Store) Events() store.Events           { return &eventsRepo{c: s.conn()} }
func (s *Store) Responses() store.Responses     { return &responsesRepo{c: s.conn()} }
func (s *Store) Invitations() store.Invitations { return &invitationsRepo{c: s.conn()} }

// conn binds queries to a *sqlx.DB or *sqlx.Tx and maps driver errors onto
// store sentinels.
type conn struct {
	ext     sqlx.ExtContext
	dialect Dialect
}

func (c conn) get(ctx context.Context, dest any, query string, args ...any) error {
	return mapErr(sqlx.GetContext(ctx, c.ext, dest, c.ext.Rebind(query), args...))
}

func (c conn) selectAll(ctx context.Context, dest any, query string, args ...any) error {
	return mapErr(sqlx.SelectContext(ctx, c.ext, dest, c.ext.Rebind(query), args...))
}

func (c conn) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := c.ext.ExecContext(ctx, c.ext.Rebind(query), args...)
	if err != nil {
		return 0, mapErr(err)
	}
	return res.RowsAffected()
}

// execOne runs a statement that must touch exactly one row.
func (c conn) execOne(ctx context.Context, query string, args ...any) error {
	n, err := c.exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", store.ErrAlreadyExists, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		case sqlite3.SQLITE_CONSTRAINT:
			return strings.Contains(liteErr.Error(), "UNIQUE constraint failed")
		}
	}
	return false
}

func nowUTC() time.Time { return time.Now().UTC() }

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time.UTC()
		return &val
	}
	return nil
}

func mapOptionalTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func mapNullIntPtr(n sql.NullInt64) *int {
	if n.Valid {
		v := int(n.Int64)
		return &v
	}
	return nil
}

func mapOptionalInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}
