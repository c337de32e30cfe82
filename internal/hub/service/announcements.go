package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
	"github.com/tariq205/duetcareerhub/internal/hub/store"
	"github.com/tariq205/duetcareerhub/pkg/idx"
)

var ErrAnnouncementNotFound = errors.New("announcement not found")

type AnnouncementService struct {
	Store store.Store
}

type AnnouncementInput struct {
	Title       string
	Description string
	AnnouncedAt time.Time
}

func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, in AnnouncementInput) (domain.Announcement, error) {
	if in.AnnouncedAt.IsZero() {
		in.AnnouncedAt = time.Now()
	}
	announcement := domain.Announcement{
		ID:          idx.New().String(),
		Title:       in.Title,
		Description: in.Description,
		AnnouncedAt: in.AnnouncedAt,
	}
	if err := s.Store.Announcements().CreateAnnouncement(ctx, announcement); err != nil {
		return domain.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}
	return announcement, nil
}

func (s *AnnouncementService) ListAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	announcements, err := s.Store.Announcements().ListAnnouncements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return announcements, nil
}

func (s *AnnouncementService) DeleteAnnouncement(ctx context.Context, id string) error {
	if err := s.Store.Announcements().DeleteAnnouncement(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAnnouncementNotFound
		}
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	return nil
}
