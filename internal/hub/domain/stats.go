package domain

// Stats is the dashboard aggregate: headline counts, the same counts scoped
// to the previous calendar month, and the most recent content.
type Stats struct {
	TotalAlumni           int64
	TotalAlumniLastMonth  int64
	TotalUsers            int64
	TotalUsersLastMonth   int64
	TotalFaculty          int64
	TotalFacultyLastMonth int64
	LatestAnnouncements   []Announcement
	LatestEvents          []Event
}
