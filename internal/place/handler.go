// AngelaMos | 2026
// handler.go

package place

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/rental-api/internal/amenity"
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

// RegisterRoutes mounts /places. nested routers are mounted inside the
// same subtree, e.g. the per-place review routes.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
	nested ...func(chi.Router),
) {
	r.Route("/places", func(r chi.Router) {
		r.Get("/", h.ListPlaces)
		r.Get("/{placeID}", h.GetPlace)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Post("/", h.CreatePlace)
			r.Put("/{placeID}", h.UpdatePlace)
			r.Delete("/{placeID}", h.DeletePlace)
			r.Put("/{placeID}/amenities", h.ReplaceAmenities)
		})

		for _, mount := range nested {
			mount(r)
		}
	})
}

func (h *Handler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())
	if ownerID == "" {
		core.Unauthorized(w, "")
		return
	}

	var req CreatePlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	place, err := h.service.Create(r.Context(), ownerID, req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, ToPlaceResponse(place))
}

func (h *Handler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.List(w, ToPlaceResponseList(places), len(places))
}

func (h *Handler) GetPlace(w http.ResponseWriter, r *http.Request) {
	place, amenities, err := h.service.Get(r.Context(), chi.URLParam(r, "placeID"))
	if err != nil {
		writePlaceError(w, err)
		return
	}

	core.OK(w, ToPlaceDetailResponse(place, amenities))
}

func (h *Handler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	var req UpdatePlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	place, err := h.service.Update(
		r.Context(),
		middleware.GetUserID(r.Context()),
		chi.URLParam(r, "placeID"),
		req,
	)
	if err != nil {
		writePlaceError(w, err)
		return
	}

	core.OK(w, ToPlaceResponse(place))
}

func (h *Handler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(
		r.Context(),
		middleware.GetUserID(r.Context()),
		chi.URLParam(r, "placeID"),
	)
	if err != nil {
		writePlaceError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) ReplaceAmenities(w http.ResponseWriter, r *http.Request) {
	var req ReplaceAmenitiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	amenities, err := h.service.ReplaceAmenities(
		r.Context(),
		middleware.GetUserID(r.Context()),
		chi.URLParam(r, "placeID"),
		req.AmenityIDs,
	)
	if err != nil {
		writePlaceError(w, err)
		return
	}

	core.List(w, amenity.ToAmenityResponseList(amenities), len(amenities))
}

func writePlaceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "place")
	case errors.Is(err, core.ErrForbidden):
		core.Forbidden(w, "only the owner or an admin can change this place")
	default:
		core.JSONError(w, err)
	}
}
