package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
	"github.com/tariq205/duetcareerhub/internal/hub/store"
	"github.com/tariq205/duetcareerhub/pkg/cryptox"
	"github.com/tariq205/duetcareerhub/pkg/idx"
)

var ErrFacultyNotFound = errors.New("faculty not found")

type FacultyService struct {
	Store store.Store
}

type CreateFacultyInput struct {
	Name          string
	LastName      string
	Department    string
	Designation   string
	Qualification string
	ContactNumber string
	Email         string
	Password      string
}

func (s *FacultyService) CreateFaculty(ctx context.Context, in CreateFacultyInput) (domain.Faculty, error) {
	if _, err := s.Store.Faculty().FindByEmail(ctx, in.Email); err == nil {
		return domain.Faculty{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.Faculty{}, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.Faculty{}, fmt.Errorf("failed to hash password: %w", err)
	}

	faculty := domain.Faculty{
		ID:            idx.New().String(),
		Name:          in.Name,
		LastName:      in.LastName,
		Department:    in.Department,
		Designation:   in.Designation,
		Qualification: in.Qualification,
		ContactNumber: in.ContactNumber,
		Email:         in.Email,
		PasswordHash:  hash,
	}

	if err := s.Store.Faculty().CreateFaculty(ctx, faculty); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Faculty{}, ErrEmailTaken
		}
		return domain.Faculty{}, fmt.Errorf("failed to create faculty: %w", err)
	}

	return faculty, nil
}

func (s *FacultyService) ListFaculty(ctx context.Context) ([]domain.Faculty, error) {
	results, err := s.Store.Faculty().ListFaculty(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list faculty: %w", err)
	}
	return results, nil
}

func (s *FacultyService) GetFaculty(ctx context.Context, id string) (domain.Faculty, error) {
	faculty, err := s.Store.Faculty().GetFacultyByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Faculty{}, ErrFacultyNotFound
		}
		return domain.Faculty{}, fmt.Errorf("failed to load faculty: %w", err)
	}
	return faculty, nil
}
