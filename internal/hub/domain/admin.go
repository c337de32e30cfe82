package domain

import "time"

// Admin is a platform administrator account.
type Admin struct {
	ID            string
	Name          string
	LastName      string
	Department    string
	Designation   string
	Qualification string
	ContactNumber string
	Email         string
	PasswordHash  string
	OTP           *string
	OTPExpires    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Principal returns the credential view of the admin record.
func (a Admin) Principal() Principal {
	return Principal{
		ID:           a.ID,
		Name:         a.Name,
		LastName:     a.LastName,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         RoleAdmin,
		OTP:          a.OTP,
		OTPExpires:   a.OTPExpires,
	}
}
