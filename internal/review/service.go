// AngelaMos | 2026
// service.go

package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/carterperez-dev/rental-api/internal/core"
)

// PlaceChecker reports core.ErrNotFound for a missing place.
type PlaceChecker interface {
	Exists(ctx context.Context, placeID string) error
}

type Service struct {
	repo   Repository
	places PlaceChecker
	roles  core.RoleLookup
}

func NewService(
	repo Repository,
	places PlaceChecker,
	roles core.RoleLookup,
) *Service {
	return &Service{repo: repo, places: places, roles: roles}
}

func (s *Service) Create(
	ctx context.Context,
	authorID, placeID string,
	req CreateReviewRequest,
) (*Review, error) {
	if req.Rating < MinRating || req.Rating > MaxRating {
		return nil, core.ValidationError("rating must be between 1 and 5")
	}

	if err := s.places.Exists(ctx, placeID); err != nil {
		return nil, err
	}

	review := &Review{
		ID:      uuid.New().String(),
		Text:    req.Text,
		Rating:  req.Rating,
		UserID:  authorID,
		PlaceID: placeID,
	}

	if err := s.repo.Add(ctx, review); err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			return nil, core.ValidationError("place or author no longer exists")
		}
		return nil, err
	}

	return review, nil
}

func (s *Service) ListByPlace(
	ctx context.Context,
	placeID string,
) ([]Review, error) {
	if err := s.places.Exists(ctx, placeID); err != nil {
		return nil, err
	}

	return s.repo.ListByPlace(ctx, placeID)
}

func (s *Service) Get(ctx context.Context, id string) (*Review, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(
	ctx context.Context,
	callerID, id string,
	req UpdateReviewRequest,
) (*Review, error) {
	review, err := s.authorizedReview(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Rating != nil {
		review.Rating = *req.Rating
	}

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *Service) Delete(ctx context.Context, callerID, id string) error {
	if _, err := s.authorizedReview(ctx, callerID, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *Service) authorizedReview(
	ctx context.Context,
	callerID, id string,
) (*Review, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := core.RequireOwnerOrAdmin(ctx, s.roles, callerID, review.UserID); err != nil {
		return nil, fmt.Errorf("review %s: %w", id, err)
	}

	return review, nil
}
