package sqldb

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/yup/internal/rsvp/store"
	"github.com/jmoiron/sqlx"
)

type txStore struct {
	tx      *sqlx.Tx
	dialect Dialect
}

func newTx(tx *sqlx.Tx, dialect Dialect) *txStore {
	return &txStore{tx: tx, dialect: dialect}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error                   { return nil } // the outer Store owns the DB
func (t *txStore) Ping(ctx context.Context) error { return nil }

// Nested transactions are not supported.
func (t *txStore) Tx(ctx context.Context) (store.Tx, error) { return nil, sql.ErrTxDone }
func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) conn() conn { return conn{ext: t.tx, dialect: t.dialect} }

func (t *txStore) Users() store.Users             { return &usersRepo{c: t.conn()} }
func (t *txStore) Events() store.Events           { return &eventsRepo{c: t.conn()} }
func (t *txStore) Responses() store.Responses     { return &responsesRepo{c: t.conn()} }
func (t *txStore) Invitations() store.Invitations { return &invitationsRepo{c: t.conn()} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx
