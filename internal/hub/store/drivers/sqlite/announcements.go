package sqlite

import (
	"context"
	"time"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
)

type announcementsRepo struct {
	db dbtx
}

const announcementColumns = `id, title, description, announced_at, created_at, updated_at`

func (r *announcementsRepo) CreateAnnouncement(ctx context.Context, a domain.Announcement) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO announcements (id, title, description, announced_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Title, a.Description, a.AnnouncedAt.UTC(), now, now,
	)
	return err
}

func (r *announcementsRepo) ListAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	return r.queryAnnouncements(ctx,
		`SELECT `+announcementColumns+` FROM announcements ORDER BY announced_at DESC`)
}

func (r *announcementsRepo) ListLatestAnnouncements(ctx context.Context, limit int) ([]domain.Announcement, error) {
	return r.queryAnnouncements(ctx,
		`SELECT `+announcementColumns+` FROM announcements ORDER BY created_at DESC LIMIT ?`, limit)
}

func (r *announcementsRepo) DeleteAnnouncement(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM announcements WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *announcementsRepo) queryAnnouncements(ctx context.Context, query string, args ...any) ([]domain.Announcement, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Announcement
	for rows.Next() {
		var a domain.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.AnnouncedAt, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
