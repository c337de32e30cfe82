package sqlite

import (
	"context"
	"time"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
)

type termsRepo struct {
	db dbtx
}

const termsColumns = `id, heading, text, created_at, updated_at`

func (r *termsRepo) CreateTerms(ctx context.Context, t domain.Terms) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO terms (id, heading, text, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.Heading, t.Text, now, now,
	)
	return mapConflict(err)
}

func (r *termsRepo) UpdateTerms(ctx context.Context, t domain.Terms) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE terms SET heading = ?, text = ?, updated_at = ? WHERE id = ?`,
		t.Heading, t.Text, time.Now().UTC(), t.ID,
	)
	if err != nil {
		return mapConflict(err)
	}
	return requireRow(res)
}

func (r *termsRepo) GetTermsByID(ctx context.Context, id string) (domain.Terms, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+termsColumns+` FROM terms WHERE id = ?`, id)
	var t domain.Terms
	if err := row.Scan(&t.ID, &t.Heading, &t.Text, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return domain.Terms{}, mapNotFound(err)
	}
	return t, nil
}

func (r *termsRepo) GetTermsByHeading(ctx context.Context, heading string) (domain.Terms, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+termsColumns+` FROM terms WHERE heading = ?`, heading)
	var t domain.Terms
	if err := row.Scan(&t.ID, &t.Heading, &t.Text, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return domain.Terms{}, mapNotFound(err)
	}
	return t, nil
}

func (r *termsRepo) ListTerms(ctx context.Context) ([]domain.Terms, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+termsColumns+` FROM terms ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Terms
	for rows.Next() {
		var t domain.Terms
		if err := rows.Scan(&t.ID, &t.Heading, &t.Text, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *termsRepo) DeleteTerms(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM terms WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
