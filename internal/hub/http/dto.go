package http

import (
	"time"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
)

// principalView is what auth responses expose about an account. Credential
// and reset-state fields are stripped before this is ever built.
type principalView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"lastName,omitempty"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func toPrincipalView(p domain.Principal) principalView {
	return principalView{
		ID:       p.ID,
		Name:     p.Name,
		LastName: p.LastName,
		Email:    p.Email,
		Role:     string(p.Role),
	}
}

type alumniView struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	LastName        string    `json:"lastName"`
	Department      string    `json:"department"`
	RollNumber      string    `json:"rollNumber"`
	GraduationYear  int       `json:"graduationYear"`
	Degree          string    `json:"degree"`
	CurrentJobTitle string    `json:"currentJobTitle,omitempty"`
	CompanyName     string    `json:"companyName,omitempty"`
	ContactNumber   string    `json:"contactNumber,omitempty"`
	Email           string    `json:"email"`
	ProfilePicture  string    `json:"profilePicture,omitempty"`
	PortfolioURL    string    `json:"portfolioUrl,omitempty"`
	LinkedInURL     string    `json:"linkedinUrl,omitempty"`
	Skills          []string  `json:"skills,omitempty"`
	About           string    `json:"about,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toAlumniView(a domain.Alumni) alumniView {
	return alumniView{
		ID:              a.ID,
		Name:            a.Name,
		LastName:        a.LastName,
		Department:      a.Department,
		RollNumber:      a.RollNumber,
		GraduationYear:  a.GraduationYear,
		Degree:          a.Degree,
		CurrentJobTitle: a.CurrentJobTitle,
		CompanyName:     a.CompanyName,
		ContactNumber:   a.ContactNumber,
		Email:           a.Email,
		ProfilePicture:  a.ProfilePicture,
		PortfolioURL:    a.PortfolioURL,
		LinkedInURL:     a.LinkedInURL,
		Skills:          a.Skills,
		About:           a.About,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func toAlumniViews(list []domain.Alumni) []alumniView {
	views := make([]alumniView, len(list))
	for i, a := range list {
		views[i] = toAlumniView(a)
	}
	return views
}

type facultyView struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	LastName      string    `json:"lastName"`
	Department    string    `json:"department"`
	Designation   string    `json:"designation,omitempty"`
	Qualification string    `json:"qualification,omitempty"`
	ContactNumber string    `json:"contactNumber,omitempty"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toFacultyView(f domain.Faculty) facultyView {
	return facultyView{
		ID:            f.ID,
		Name:          f.Name,
		LastName:      f.LastName,
		Department:    f.Department,
		Designation:   f.Designation,
		Qualification: f.Qualification,
		ContactNumber: f.ContactNumber,
		Email:         f.Email,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

func toFacultyViews(list []domain.Faculty) []facultyView {
	views := make([]facultyView, len(list))
	for i, f := range list {
		views[i] = toFacultyView(f)
	}
	return views
}

type eventView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Address     string    `json:"address,omitempty"`
	Date        time.Time `json:"date"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toEventView(e domain.Event) eventView {
	return eventView{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Address:     e.Address,
		Date:        e.Date,
		ImageURL:    e.ImageURL,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toEventViews(list []domain.Event) []eventView {
	views := make([]eventView, len(list))
	for i, e := range list {
		views[i] = toEventView(e)
	}
	return views
}

type announcementView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AnnouncedAt time.Time `json:"announcedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toAnnouncementView(a domain.Announcement) announcementView {
	return announcementView{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		AnnouncedAt: a.AnnouncedAt,
		CreatedAt:   a.CreatedAt,
	}
}

func toAnnouncementViews(list []domain.Announcement) []announcementView {
	views := make([]announcementView, len(list))
	for i, a := range list {
		views[i] = toAnnouncementView(a)
	}
	return views
}

type termsView struct {
	ID        string    `json:"id"`
	Heading   string    `json:"heading"`
	Text      string    `json:"text"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toTermsView(tm domain.Terms) termsView {
	return termsView{
		ID:        tm.ID,
		Heading:   tm.Heading,
		Text:      tm.Text,
		UpdatedAt: tm.UpdatedAt,
	}
}

func toTermsViews(list []domain.Terms) []termsView {
	views := make([]termsView, len(list))
	for i, tm := range list {
		views[i] = toTermsView(tm)
	}
	return views
}

type statsView struct {
	TotalAlumni           int64              `json:"totalAlumni"`
	TotalAlumniLastMonth  int64              `json:"totalAlumniLastMonth"`
	TotalUsers            int64              `json:"totalUsers"`
	TotalUsersLastMonth   int64              `json:"totalUsersLastMonth"`
	TotalFaculty          int64              `json:"totalFaculty"`
	TotalFacultyLastMonth int64              `json:"totalFacultyLastMonth"`
	LatestAnnouncements   []announcementView `json:"latestAnnouncements"`
	LatestEvents          []eventView        `json:"latestEvents"`
}

func toStatsView(s domain.Stats) statsView {
	return statsView{
		TotalAlumni:           s.TotalAlumni,
		TotalAlumniLastMonth:  s.TotalAlumniLastMonth,
		TotalUsers:            s.TotalUsers,
		TotalUsersLastMonth:   s.TotalUsersLastMonth,
		TotalFaculty:          s.TotalFaculty,
		TotalFacultyLastMonth: s.TotalFacultyLastMonth,
		LatestAnnouncements:   toAnnouncementViews(s.LatestAnnouncements),
		LatestEvents:          toEventViews(s.LatestEvents),
	}
}
