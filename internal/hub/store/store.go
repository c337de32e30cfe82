package store

import (
	"context"
	"errors"
	"time"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes one sub-repository per collection; the four
// principal collections additionally implement the Credentials capability
// consumed by the auth flows.
type Store interface {
	Admins() Admins
	Alumni() Alumni
	Faculty() Faculty
	Users() Users
	Events() Events
	Announcements() Announcements
	Terms() Terms

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Credentials is the one capability the auth flows need from a principal
// collection. Each of the four collections implements it independently; the
// identity resolver probes them in a fixed priority order.
type Credentials interface {
	// FindByEmail returns the credential view of the record matching the
	// email exactly (case-sensitive), or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (domain.Principal, error)

	// SetResetCode stores a pending reset code and its expiry in a single
	// update. A previously pending code is overwritten.
	SetResetCode(ctx context.Context, id, code string, expiresAt time.Time) error

	// ResetPassword replaces the password hash and clears both reset-state
	// fields in the same update, so a half-reset record is never visible.
	ResetPassword(ctx context.Context, id, newHash string) error
}

type Admins interface {
	Credentials

	// CreateAdmin inserts a new admin (id is provided by app via ULID).
	CreateAdmin(ctx context.Context, a domain.Admin) error

	// IsEmpty returns true if there are no admins. Used by bootstrap.
	IsEmpty(ctx context.Context) (bool, error)
}

type Alumni interface {
	Credentials

	CreateAlumni(ctx context.Context, a domain.Alumni) error
	GetAlumniByID(ctx context.Context, id string) (domain.Alumni, error)

	// ExistsByRollNumber reports whether a roll number is already taken
	// within the given department.
	ExistsByRollNumber(ctx context.Context, rollNumber, department string) (bool, error)

	// SearchAlumni returns a page of alumni whose name, last name,
	// department or roll number contains the search term. An empty term
	// matches everything.
	SearchAlumni(ctx context.Context, search string, offset, limit int) ([]domain.Alumni, error)

	// CountAlumni counts records matching the same predicate as SearchAlumni.
	CountAlumni(ctx context.Context, search string) (int64, error)

	// UpdateAlumni replaces the profile fields of an existing record. It
	// never touches the credential or reset-state columns.
	UpdateAlumni(ctx context.Context, a domain.Alumni) error

	DeleteAlumni(ctx context.Context, id string) error

	// CountCreatedBetween counts records created in [start, end).
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
}

type Faculty interface {
	Credentials

	CreateFaculty(ctx context.Context, f domain.Faculty) error
	GetFacultyByID(ctx context.Context, id string) (domain.Faculty, error)
	ListFaculty(ctx context.Context) ([]domain.Faculty, error)
	CountFaculty(ctx context.Context) (int64, error)
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
}

type Users interface {
	Credentials

	CreateUser(ctx context.Context, u domain.User) error
	CountUsers(ctx context.Context) (int64, error)
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
}

type Events interface {
	CreateEvent(ctx context.Context, e domain.Event) error
	GetEventByID(ctx context.Context, id string) (domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)

	// ListLatestEvents returns the most recently created events, newest first.
	ListLatestEvents(ctx context.Context, limit int) ([]domain.Event, error)

	UpdateEvent(ctx context.Context, e domain.Event) error
	DeleteEvent(ctx context.Context, id string) error
}

type Announcements interface {
	CreateAnnouncement(ctx context.Context, a domain.Announcement) error
	ListAnnouncements(ctx context.Context) ([]domain.Announcement, error)

	// ListLatestAnnouncements returns the most recent announcements, newest first.
	ListLatestAnnouncements(ctx context.Context, limit int) ([]domain.Announcement, error)

	DeleteAnnouncement(ctx context.Context, id string) error
}

type Terms interface {
	CreateTerms(ctx context.Context, t domain.Terms) error
	UpdateTerms(ctx context.Context, t domain.Terms) error
	GetTermsByID(ctx context.Context, id string) (domain.Terms, error)
	GetTermsByHeading(ctx context.Context, heading string) (domain.Terms, error)
	ListTerms(ctx context.Context) ([]domain.Terms, error)
	DeleteTerms(ctx context.Context, id string) error
}
