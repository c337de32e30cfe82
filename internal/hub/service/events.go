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

var ErrEventNotFound = errors.New("event not found")

type EventService struct {
	Store store.Store
}

type EventInput struct {
	Title       string
	Description string
	Address     string
	Date        time.Time
	ImageURL    string
}

func (s *EventService) CreateEvent(ctx context.Context, in EventInput) (domain.Event, error) {
	event := domain.Event{
		ID:          idx.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Address:     in.Address,
		Date:        in.Date,
		ImageURL:    in.ImageURL,
	}
	if err := s.Store.Events().CreateEvent(ctx, event); err != nil {
		return domain.Event{}, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.Store.Events().ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	event, err := s.Store.Events().GetEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Event{}, ErrEventNotFound
		}
		return domain.Event{}, fmt.Errorf("failed to load event: %w", err)
	}
	return event, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id string, in EventInput) (domain.Event, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}

	event.Title = in.Title
	event.Description = in.Description
	event.Address = in.Address
	event.Date = in.Date
	event.ImageURL = in.ImageURL

	if err := s.Store.Events().UpdateEvent(ctx, event); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Event{}, ErrEventNotFound
		}
		return domain.Event{}, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.Store.Events().DeleteEvent(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
