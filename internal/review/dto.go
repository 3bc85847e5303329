// AngelaMos | 2026
// dto.go

package review

import (
	"time"
)

type CreateReviewRequest struct {
	Text   string `json:"text"   validate:"required,min=1,max=5000"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}

type UpdateReviewRequest struct {
	Text   *string `json:"text,omitempty"   validate:"omitempty,min=1,max=5000"`
	Rating *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	UserID    string    `json:"user_id"`
	PlaceID   string    `json:"place_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToReviewResponse(r *Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		Text:      r.Text,
		Rating:    r.Rating,
		UserID:    r.UserID,
		PlaceID:   r.PlaceID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func ToReviewResponseList(reviews []Review) []ReviewResponse {
	responses := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, ToReviewResponse(&reviews[i]))
	}
	return responses
}
