package domain

import "time"

// Role is the closed set of principal roles.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleAlumni  Role = "alumni"
	RoleFaculty Role = "faculty"
	RoleStudent Role = "student"
)

// ValidRole reports whether r belongs to the closed role set.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleAlumni, RoleFaculty, RoleStudent:
		return true
	}
	return false
}

// Principal is the credential-bearing view of any authenticable account,
// regardless of which collection it lives in. The auth flows only ever read
// and mutate these fields; kind-specific profile data stays in the kind's
// own record type.
type Principal struct {
	ID           string
	Name         string
	LastName     string
	Email        string
	PasswordHash string // argon2 encoded, never empty once created
	Role         Role

	// Pending reset state. Either both nil (steady state) or both set
	// (between a reset request and its confirmation or expiry).
	OTP        *string
	OTPExpires *time.Time
}

// HasPendingReset reports whether a reset code is currently stored. It does
// not check expiry; that is the orchestrator's job at confirm time.
func (p Principal) HasPendingReset() bool {
	return p.OTP != nil && p.OTPExpires != nil
}
