package sqlite

import (
	"context"
	"time"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
)

type eventsRepo struct {
	db dbtx
}

const eventColumns = `id, title, description, address, event_date, image_url, created_at, updated_at`

func (r *eventsRepo) CreateEvent(ctx context.Context, e domain.Event) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (id, title, description, address, event_date, image_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Description, e.Address, e.Date.UTC(), e.ImageURL, now, now,
	)
	return err
}

func (r *eventsRepo) GetEventByID(ctx context.Context, id string) (domain.Event, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	e, err := scanEvent(row)
	if err != nil {
		return domain.Event{}, mapNotFound(err)
	}
	return e, nil
}

func (r *eventsRepo) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return r.queryEvents(ctx, `SELECT `+eventColumns+` FROM events ORDER BY event_date DESC`)
}

func (r *eventsRepo) ListLatestEvents(ctx context.Context, limit int) ([]domain.Event, error) {
	return r.queryEvents(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY created_at DESC LIMIT ?`, limit)
}

func (r *eventsRepo) UpdateEvent(ctx context.Context, e domain.Event) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE events SET title = ?, description = ?, address = ?, event_date = ?,
			image_url = ?, updated_at = ?
		WHERE id = ?`,
		e.Title, e.Description, e.Address, e.Date.UTC(), e.ImageURL, time.Now().UTC(), e.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *eventsRepo) DeleteEvent(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *eventsRepo) queryEvents(ctx context.Context, query string, args ...any) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanEvent(row rowScanner) (domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Address, &e.Date,
		&e.ImageURL, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}
