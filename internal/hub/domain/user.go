package domain

import "time"

// User is a generic account: the catch-all collection for principals that
// are not an admin, alumni or faculty record. Its role still comes from the
// closed role set.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	OTP          *string
	OTPExpires   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal returns the credential view of the user record.
func (u User) Principal() Principal {
	return Principal{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		OTP:          u.OTP,
		OTPExpires:   u.OTPExpires,
	}
}
