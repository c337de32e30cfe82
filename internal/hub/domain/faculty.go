package domain

import "time"

// Faculty is a teaching or staff member account.
type Faculty struct {
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

// Principal returns the credential view of the faculty record.
func (f Faculty) Principal() Principal {
	return Principal{
		ID:           f.ID,
		Name:         f.Name,
		LastName:     f.LastName,
		Email:        f.Email,
		PasswordHash: f.PasswordHash,
		Role:         RoleFaculty,
		OTP:          f.OTP,
		OTPExpires:   f.OTPExpires,
	}
}
