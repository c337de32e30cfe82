package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/tariq205/duetcareerhub/internal/hub/store"
	_ "modernc.org/sqlite"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so every repository can run
// inside or outside a transaction unchanged.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling
// commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err // rollback happens in defer
	}

	return tx.Commit()
}

func (s *Store) Admins() store.Admins               { return &adminsRepo{db: s.db} }
func (s *Store) Alumni() store.Alumni               { return &alumniRepo{db: s.db} }
func (s *Store) Faculty() store.Faculty             { return &facultyRepo{db: s.db} }
func (s *Store) Users() store.Users                 { return &usersRepo{db: s.db} }
func (s *Store) Events() store.Events               { return &eventsRepo{db: s.db} }
func (s *Store) Announcements() store.Announcements { return &announcementsRepo{db: s.db} }
func (s *Store) Terms() store.Terms                 { return &termsRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConflict translates a sqlite UNIQUE violation into store.ErrAlreadyExists.
func mapConflict(err error) error {
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

func mapNullStringPtr(ns sql.NullString) *string {
	if ns.Valid {
		val := ns.String
		return &val
	}
	return nil
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time
		return &val
	}
	return nil
}

// joinList and splitList store string slices in a single TEXT column,
// comma-separated.
func joinList(items []string) string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return strings.Join(out, ",")
}

func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// setResetCode overwrites the pending reset state of one principal row. The
// table name comes from a fixed per-repo constant, never from user input.
func setResetCode(ctx context.Context, db dbtx, table, id, code string, expiresAt time.Time) error {
	res, err := db.ExecContext(ctx,
		`UPDATE `+table+` SET otp = ?, otp_expires = ?, updated_at = ? WHERE id = ?`,
		code, expiresAt.UTC(), time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// resetPassword replaces the password hash and clears both reset-state
// columns in the same statement.
func resetPassword(ctx context.Context, db dbtx, table, id, newHash string) error {
	res, err := db.ExecContext(ctx,
		`UPDATE `+table+` SET password_hash = ?, otp = NULL, otp_expires = NULL, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func countCreatedBetween(ctx context.Context, db dbtx, table string, start, end time.Time) (int64, error) {
	var n int64
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM `+table+` WHERE created_at >= ? AND created_at < ?`,
		start.UTC(), end.UTC(),
	).Scan(&n)
	return n, err
}
