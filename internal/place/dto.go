// AngelaMos | 2026
// dto.go

package place

import (
	"time"

	"github.com/carterperez-dev/rental-api/internal/amenity"
	"github.com/carterperez-dev/rental-api/internal/core"
)

type CreatePlaceRequest struct {
	Name              string  `json:"name"                validate:"required,min=1,max=120"`
	Description       *string `json:"description"         validate:"omitempty,max=2000"`
	City              string  `json:"city"                validate:"required,min=1,max=120"`
	State             *string `json:"state"               validate:"omitempty,max=120"`
	Country           string  `json:"country"             validate:"required,min=1,max=120"`
	PricePerNight     float64 `json:"price_per_night"     validate:"gte=0"`
	MaxGuests         int     `json:"max_guests"          validate:"omitempty,min=1"`
	NumberOfRooms     int     `json:"number_of_rooms"     validate:"omitempty,min=1"`
	NumberOfBathrooms int     `json:"number_of_bathrooms" validate:"omitempty,min=1"`
}

// UpdatePlaceRequest is a partial update: nil fields are left untouched.
// Description and state may also be cleared with an explicit null.
type UpdatePlaceRequest struct {
	Name              *string             `json:"name"                validate:"omitempty,min=1,max=120"`
	Description       core.NullableString `json:"description"         validate:"omitempty,max=2000"`
	City              *string             `json:"city"                validate:"omitempty,min=1,max=120"`
	State             core.NullableString `json:"state"               validate:"omitempty,max=120"`
	Country           *string             `json:"country"             validate:"omitempty,min=1,max=120"`
	PricePerNight     *float64            `json:"price_per_night"     validate:"omitempty,gte=0"`
	MaxGuests         *int                `json:"max_guests"          validate:"omitempty,min=1"`
	NumberOfRooms     *int                `json:"number_of_rooms"     validate:"omitempty,min=1"`
	NumberOfBathrooms *int                `json:"number_of_bathrooms" validate:"omitempty,min=1"`
}

type ReplaceAmenitiesRequest struct {
	AmenityIDs []string `json:"amenity_ids" validate:"required,dive,uuid"`
}

type PlaceResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       *string   `json:"description"`
	City              string    `json:"city"`
	State             *string   `json:"state"`
	Country           string    `json:"country"`
	PricePerNight     float64   `json:"price_per_night"`
	MaxGuests         int       `json:"max_guests"`
	NumberOfRooms     int       `json:"number_of_rooms"`
	NumberOfBathrooms int       `json:"number_of_bathrooms"`
	OwnerID           string    `json:"owner_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func ToPlaceResponse(p *Place) PlaceResponse {
	return PlaceResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		City:              p.City,
		State:             p.State,
		Country:           p.Country,
		PricePerNight:     p.PricePerNight,
		MaxGuests:         p.MaxGuests,
		NumberOfRooms:     p.NumberOfRooms,
		NumberOfBathrooms: p.NumberOfBathrooms,
		OwnerID:           p.OwnerID,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// PlaceDetailResponse always carries the amenities key, empty or not.
type PlaceDetailResponse struct {
	PlaceResponse
	Amenities []amenity.AmenityResponse `json:"amenities"`
}

func ToPlaceDetailResponse(p *Place, amenities []amenity.Amenity) PlaceDetailResponse {
	return PlaceDetailResponse{
		PlaceResponse: ToPlaceResponse(p),
		Amenities:     amenity.ToAmenityResponseList(amenities),
	}
}

func ToPlaceResponseList(places []Place) []PlaceResponse {
	responses := make([]PlaceResponse, 0, len(places))
	for i := range places {
		responses = append(responses, ToPlaceResponse(&places[i]))
	}
	return responses
}
