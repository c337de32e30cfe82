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

var (
	ErrRollNumberTaken = errors.New("roll number already exists in this department")
	ErrEmailTaken      = errors.New("email already exists")
	ErrAlumniNotFound  = errors.New("alumni not found")
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type AlumniService struct {
	Store store.Store
}

// CreateAlumniInput is the registration payload. Password arrives as
// plaintext and is hashed here, visibly in the flow - persistence never
// hashes behind the caller's back.
type CreateAlumniInput struct {
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
	Password        string
	ProfilePicture  string
	PortfolioURL    string
	LinkedInURL     string
	Skills          []string
	About           string
}

// CreateAlumni registers a new alumni record. Roll numbers must be unique
// within a department and emails unique within the alumni collection.
func (s *AlumniService) CreateAlumni(ctx context.Context, in CreateAlumniInput) (domain.Alumni, error) {
	taken, err := s.Store.Alumni().ExistsByRollNumber(ctx, in.RollNumber, in.Department)
	if err != nil {
		return domain.Alumni{}, fmt.Errorf("failed to check roll number: %w", err)
	}
	if taken {
		return domain.Alumni{}, ErrRollNumberTaken
	}

	if _, err := s.Store.Alumni().FindByEmail(ctx, in.Email); err == nil {
		return domain.Alumni{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.Alumni{}, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.Alumni{}, fmt.Errorf("failed to hash password: %w", err)
	}

	alumni := domain.Alumni{
		ID:              idx.New().String(),
		Name:            in.Name,
		LastName:        in.LastName,
		Department:      in.Department,
		RollNumber:      in.RollNumber,
		GraduationYear:  in.GraduationYear,
		Degree:          in.Degree,
		CurrentJobTitle: in.CurrentJobTitle,
		CompanyName:     in.CompanyName,
		ContactNumber:   in.ContactNumber,
		Email:           in.Email,
		PasswordHash:    hash,
		ProfilePicture:  in.ProfilePicture,
		PortfolioURL:    in.PortfolioURL,
		LinkedInURL:     in.LinkedInURL,
		Skills:          in.Skills,
		About:           in.About,
	}

	if err := s.Store.Alumni().CreateAlumni(ctx, alumni); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost a race with a concurrent registration.
			return domain.Alumni{}, ErrEmailTaken
		}
		return domain.Alumni{}, fmt.Errorf("failed to create alumni: %w", err)
	}

	return alumni, nil
}

// ListAlumni returns one page of alumni matching the search term, plus the
// total match count for pagination.
func (s *AlumniService) ListAlumni(ctx context.Context, page, limit int, search string) ([]domain.Alumni, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	results, err := s.Store.Alumni().SearchAlumni(ctx, search, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search alumni: %w", err)
	}

	total, err := s.Store.Alumni().CountAlumni(ctx, search)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count alumni: %w", err)
	}

	return results, total, nil
}

func (s *AlumniService) GetAlumni(ctx context.Context, id string) (domain.Alumni, error) {
	alumni, err := s.Store.Alumni().GetAlumniByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Alumni{}, ErrAlumniNotFound
		}
		return domain.Alumni{}, fmt.Errorf("failed to load alumni: %w", err)
	}
	return alumni, nil
}

// UpdateAlumniInput holds partial profile updates; nil fields are left
// unchanged. Credential and reset-state fields cannot be updated here.
type UpdateAlumniInput struct {
	Name            *string
	LastName        *string
	Department      *string
	RollNumber      *string
	GraduationYear  *int
	Degree          *string
	CurrentJobTitle *string
	CompanyName     *string
	ContactNumber   *string
	ProfilePicture  *string
	PortfolioURL    *string
	LinkedInURL     *string
	Skills          []string
	About           *string
}

func (s *AlumniService) UpdateAlumni(ctx context.Context, id string, in UpdateAlumniInput) (domain.Alumni, error) {
	alumni, err := s.GetAlumni(ctx, id)
	if err != nil {
		return domain.Alumni{}, err
	}

	applyString(&alumni.Name, in.Name)
	applyString(&alumni.LastName, in.LastName)
	applyString(&alumni.Department, in.Department)
	applyString(&alumni.RollNumber, in.RollNumber)
	applyString(&alumni.Degree, in.Degree)
	applyString(&alumni.CurrentJobTitle, in.CurrentJobTitle)
	applyString(&alumni.CompanyName, in.CompanyName)
	applyString(&alumni.ContactNumber, in.ContactNumber)
	applyString(&alumni.ProfilePicture, in.ProfilePicture)
	applyString(&alumni.PortfolioURL, in.PortfolioURL)
	applyString(&alumni.LinkedInURL, in.LinkedInURL)
	applyString(&alumni.About, in.About)
	if in.GraduationYear != nil {
		alumni.GraduationYear = *in.GraduationYear
	}
	if in.Skills != nil {
		alumni.Skills = in.Skills
	}

	if err := s.Store.Alumni().UpdateAlumni(ctx, alumni); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return domain.Alumni{}, ErrAlumniNotFound
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Alumni{}, ErrRollNumberTaken
		}
		return domain.Alumni{}, fmt.Errorf("failed to update alumni: %w", err)
	}

	return alumni, nil
}

func (s *AlumniService) DeleteAlumni(ctx context.Context, id string) error {
	if err := s.Store.Alumni().DeleteAlumni(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAlumniNotFound
		}
		return fmt.Errorf("failed to delete alumni: %w", err)
	}
	return nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
