package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
	"github.com/tariq205/duetcareerhub/internal/hub/store"
)

const (
	latestAnnouncementsLimit = 5
	latestEventsLimit        = 3
)

type StatsService struct {
	Store store.Store
}

// GetStats assembles the admin dashboard aggregate. The "last month" window
// is the previous calendar month: from the first day of last month up to,
// but not including, the first day of the current month.
func (s *StatsService) GetStats(ctx context.Context) (domain.Stats, error) {
	start, end := previousMonthWindow(time.Now())

	var stats domain.Stats
	var err error

	if stats.TotalAlumni, err = s.Store.Alumni().CountAlumni(ctx, ""); err != nil {
		return domain.Stats{}, fmt.Errorf("failed to count alumni: %w", err)
	}
	if stats.TotalAlumniLastMonth, err = s.Store.Alumni().CountCreatedBetween(ctx, start, end); err != nil {
		return domain.Stats{}, fmt.Errorf("failed to count recent alumni: %w", err)
	}
	if stats.TotalUsers, err = s.Store.Users().CountUsers(ctx); err != nil {
		return domain.Stats{}, fmt.Errorf("failed to count users: %w", err)
	}
	if stats.TotalUsersLastMonth, err = s.Store.Users().CountCreatedBetween(ctx, start, end); err != nil {
		return domain.Stats{}, fmt.Errorf("failed to count recent users: %w", err)
	}
	if stats.TotalFaculty, err = s.Store.Faculty().CountFaculty(ctx); err != nil {
		return domain.Stats{}, fmt.Errorf("failed to count faculty: %w", err)
	}
	if stats.TotalFacultyLastMonth, err = s.Store.Faculty().CountCreatedBetween(ctx, start, end); err != nil {
		return domain.Stats{}, fmt.Errorf("failed to count recent faculty: %w", err)
	}
	if stats.LatestAnnouncements, err = s.Store.Announcements().ListLatestAnnouncements(ctx, latestAnnouncementsLimit); err != nil {
		return domain.Stats{}, fmt.Errorf("failed to load latest announcements: %w", err)
	}
	if stats.LatestEvents, err = s.Store.Events().ListLatestEvents(ctx, latestEventsLimit); err != nil {
		return domain.Stats{}, fmt.Errorf("failed to load latest events: %w", err)
	}

	return stats, nil
}

func previousMonthWindow(now time.Time) (start, end time.Time) {
	y, m, _ := now.Date()
	end = time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	start = end.AddDate(0, -1, 0)
	return start, end
}
