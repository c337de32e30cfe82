package domain

import "time"

// Terms is a terms-and-conditions section, keyed by heading.
type Terms struct {
	ID        string
	Heading   string
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
