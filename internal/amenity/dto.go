// AngelaMos | 2026
// dto.go

package amenity

import (
	"time"
)

type CreateAmenityRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=120"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

type AmenityResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToAmenityResponse(a *Amenity) AmenityResponse {
	return AmenityResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func ToAmenityResponseList(amenities []Amenity) []AmenityResponse {
	responses := make([]AmenityResponse, 0, len(amenities))
	for i := range amenities {
		responses = append(responses, ToAmenityResponse(&amenities[i]))
	}
	return responses
}
