// AngelaMos | 2026
// handler.go

package amenity

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/rental-api/internal/core"
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
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/amenities", func(r chi.Router) {
		r.Get("/", h.ListAmenities)
		r.Get("/{amenityID}", h.GetAmenity)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(adminOnly)
			r.Post("/", h.CreateAmenity)
		})
	})
}

func (h *Handler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	var req CreateAmenityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	amenity, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, ToAmenityResponse(amenity))
}

func (h *Handler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.List(w, ToAmenityResponseList(amenities), len(amenities))
}

func (h *Handler) GetAmenity(w http.ResponseWriter, r *http.Request) {
	amenity, err := h.service.Get(r.Context(), chi.URLParam(r, "amenityID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "amenity")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToAmenityResponse(amenity))
}
