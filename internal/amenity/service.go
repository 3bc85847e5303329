// AngelaMos | 2026
// service.go

package amenity

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/carterperez-dev/rental-api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	req CreateAmenityRequest,
) (*Amenity, error) {
	amenity := &Amenity{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}

	if amenity.Name == "" {
		return nil, core.ValidationError("name is required")
	}

	if err := s.repo.Add(ctx, amenity); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateError("amenity name")
		}
		return nil, err
	}

	return amenity, nil
}

func (s *Service) List(ctx context.Context) ([]Amenity, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Amenity, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
