// AngelaMos | 2026
// service.go

package place

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/rental-api/internal/amenity"
	"github.com/carterperez-dev/rental-api/internal/core"
)

type Service struct {
	repo  Repository
	roles core.RoleLookup
}

func NewService(repo Repository, roles core.RoleLookup) *Service {
	return &Service{repo: repo, roles: roles}
}

// Create records a place owned by ownerID.
func (s *Service) Create(
	ctx context.Context,
	ownerID string,
	req CreatePlaceRequest,
) (*Place, error) {
	place := &Place{
		ID:                uuid.New().String(),
		Name:              req.Name,
		Description:       req.Description,
		City:              req.City,
		State:             req.State,
		Country:           req.Country,
		PricePerNight:     req.PricePerNight,
		MaxGuests:         req.MaxGuests,
		NumberOfRooms:     req.NumberOfRooms,
		NumberOfBathrooms: req.NumberOfBathrooms,
		OwnerID:           ownerID,
	}
	place.applyDefaults()

	if err := s.repo.Add(ctx, place); err != nil {
		return nil, err
	}

	return place, nil
}

func (s *Service) List(ctx context.Context) ([]Place, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) Get(
	ctx context.Context,
	id string,
) (*Place, []amenity.Amenity, error) {
	place, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	amenities, err := s.repo.AmenitiesOf(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return place, amenities, nil
}

// Exists reports ErrNotFound when the place is missing.
func (s *Service) Exists(ctx context.Context, id string) error {
	_, err := s.repo.GetByID(ctx, id)
	return err
}

func (s *Service) Update(
	ctx context.Context,
	callerID, id string,
	req UpdatePlaceRequest,
) (*Place, error) {
	place, err := s.authorizedPlace(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		place.Name = *req.Name
	}
	req.Description.Apply(&place.Description)
	if req.City != nil {
		place.City = *req.City
	}
	req.State.Apply(&place.State)
	if req.Country != nil {
		place.Country = *req.Country
	}
	if req.PricePerNight != nil {
		place.PricePerNight = *req.PricePerNight
	}
	if req.MaxGuests != nil {
		place.MaxGuests = *req.MaxGuests
	}
	if req.NumberOfRooms != nil {
		place.NumberOfRooms = *req.NumberOfRooms
	}
	if req.NumberOfBathrooms != nil {
		place.NumberOfBathrooms = *req.NumberOfBathrooms
	}

	if err := s.repo.Update(ctx, place); err != nil {
		return nil, err
	}

	return place, nil
}

// Delete removes the place; its reviews and amenity links cascade.
func (s *Service) Delete(ctx context.Context, callerID, id string) error {
	if _, err := s.authorizedPlace(ctx, callerID, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) ReplaceAmenities(
	ctx context.Context,
	callerID, id string,
	amenityIDs []string,
) ([]amenity.Amenity, error) {
	if _, err := s.authorizedPlace(ctx, callerID, id); err != nil {
		return nil, err
	}

	ids := dedupe(amenityIDs)
	ctx, span := core.StartSpan(ctx, "place.replace_amenities",
		attribute.String("place.id", id),
		attribute.Int("amenity.count", len(ids)),
	)
	defer span.End()

	if err := s.repo.ReplaceAmenities(ctx, id, ids); err != nil {
		core.SetSpanError(ctx, err)
		if errors.Is(err, core.ErrInvalidInput) {
			return nil, core.ValidationError("unknown amenity id")
		}
		return nil, err
	}

	return s.repo.AmenitiesOf(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *Service) authorizedPlace(
	ctx context.Context,
	callerID, id string,
) (*Place, error) {
	place, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := core.RequireOwnerOrAdmin(ctx, s.roles, callerID, place.OwnerID); err != nil {
		return nil, fmt.Errorf("place %s: %w", id, err)
	}

	return place, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
