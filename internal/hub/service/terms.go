package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
	"github.com/tariq205/duetcareerhub/internal/hub/store"
	"github.com/tariq205/duetcareerhub/pkg/idx"
)

var ErrTermsNotFound = errors.New("terms section not found")

type TermsService struct {
	Store store.Store
}

type TermsInput struct {
	Heading string
	Text    string
}

// SaveTerms creates a section or, when one with the same heading already
// exists, replaces its text. Lookup and write run in one transaction so
// concurrent saves of the same heading cannot create duplicates.
func (s *TermsService) SaveTerms(ctx context.Context, in TermsInput) (domain.Terms, error) {
	var saved domain.Terms
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.Terms().GetTermsByHeading(ctx, in.Heading)
		switch {
		case err == nil:
			existing.Text = in.Text
			if err := tx.Terms().UpdateTerms(ctx, existing); err != nil {
				return fmt.Errorf("failed to update terms: %w", err)
			}
			saved = existing
			return nil
		case errors.Is(err, store.ErrNotFound):
			saved = domain.Terms{
				ID:      idx.New().String(),
				Heading: in.Heading,
				Text:    in.Text,
			}
			return tx.Terms().CreateTerms(ctx, saved)
		default:
			return fmt.Errorf("failed to look up terms: %w", err)
		}
	})
	if err != nil {
		return domain.Terms{}, err
	}
	return saved, nil
}

func (s *TermsService) ListTerms(ctx context.Context) ([]domain.Terms, error) {
	terms, err := s.Store.Terms().ListTerms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list terms: %w", err)
	}
	return terms, nil
}

func (s *TermsService) GetTerms(ctx context.Context, id string) (domain.Terms, error) {
	terms, err := s.Store.Terms().GetTermsByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Terms{}, ErrTermsNotFound
		}
		return domain.Terms{}, fmt.Errorf("failed to load terms: %w", err)
	}
	return terms, nil
}

func (s *TermsService) DeleteTerms(ctx context.Context, id string) error {
	if err := s.Store.Terms().DeleteTerms(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTermsNotFound
		}
		return fmt.Errorf("failed to delete terms: %w", err)
	}
	return nil
}
