// AngelaMos | 2026
// handler.go

package review

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/rental-api/internal/core"
	"github.com/carterperez-dev/rental-api/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/reviews", func(r chi.Router) {
		r.Get("/{reviewID}", h.GetReview)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Put("/{reviewID}", h.UpdateReview)
			r.Delete("/{reviewID}", h.DeleteReview)
		})
	})
}

// PlaceRoutes returns the per-place review routes, to be mounted inside
// the /places subtree.
func (h *Handler) PlaceRoutes(
	authenticator func(http.Handler) http.Handler,
) func(chi.Router) {
	return func(r chi.Router) {
		r.Route("/{placeID}/reviews", func(r chi.Router) {
			r.Get("/", h.ListPlaceReviews)
			r.With(authenticator).Post("/", h.CreateReview)
		})
	}
}

func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	authorID := middleware.GetUserID(r.Context())
	if authorID == "" {
		core.Unauthorized(w, "")
		return
	}

	var req CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	review, err := h.service.Create(
		r.Context(),
		authorID,
		chi.URLParam(r, "placeID"),
		req,
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "place")
			return
		}
		core.JSONError(w, err)
		return
	}

	core.Created(w, ToReviewResponse(review))
}

func (h *Handler) ListPlaceReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListByPlace(r.Context(), chi.URLParam(r, "placeID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "place")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.List(w, ToReviewResponseList(reviews), len(reviews))
}

func (h *Handler) GetReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.service.Get(r.Context(), chi.URLParam(r, "reviewID"))
	if err != nil {
		writeReviewError(w, err)
		return
	}

	core.OK(w, ToReviewResponse(review))
}

func (h *Handler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	var req UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	review, err := h.service.Update(
		r.Context(),
		middleware.GetUserID(r.Context()),
		chi.URLParam(r, "reviewID"),
		req,
	)
	if err != nil {
		writeReviewError(w, err)
		return
	}

	core.OK(w, ToReviewResponse(review))
}

func (h *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(
		r.Context(),
		middleware.GetUserID(r.Context()),
		chi.URLParam(r, "reviewID"),
	)
	if err != nil {
		writeReviewError(w, err)
		return
	}

	core.NoContent(w)
}

func writeReviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "review")
	case errors.Is(err, core.ErrForbidden):
		core.Forbidden(w, "only the author or an admin can change this review")
	default:
		core.JSONError(w, err)
	}
}
