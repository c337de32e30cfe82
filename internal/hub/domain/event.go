package domain

import "time"

// Event is an alumni-network event. The image is stored as a URL only; file
// uploads are handled outside this service.
type Event struct {
	ID          string
	Title       string
	Description string
	Address     string
	Date        time.Time
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
