package domain

import "time"

// Announcement is a broadcast notice shown on the platform dashboard.
type Announcement struct {
	ID          string
	Title       string
	Description string
	AnnouncedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
