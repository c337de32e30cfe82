package domain

import "time"

// Alumni is a graduate profile with its login credential.
type Alumni struct {
	ID              string
	Name            string
	LastName        string
	Department      string
	RollNumber      string
	GraduationYear  int
	Degree          string
	CurrentJobTitle string
	CompanyName     string
	ContactNumber   string
	Email           string
	PasswordHash    string
	ProfilePicture  string
	PortfolioURL    string
	LinkedInURL     string
	Skills          []string
	About           string
	OTP             *string
	OTPExpires      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Principal returns the credential view of the alumni record.
func (a Alumni) Principal() Principal {
	return Principal{
		ID:           a.ID,
		Name:         a.Name,
		LastName:     a.LastName,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         RoleAlumni,
		OTP:          a.OTP,
		OTPExpires:   a.OTPExpires,
	}
}
