// AngelaMos | 2026
// service_test.go

package place

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/rental-api/internal/amenity"
	"github.com/carterperez-dev/rental-api/internal/core"
	"github.com/carterperez-dev/rental-api/internal/middleware"
)

type memRepository struct {
	places    map[string]Place
	links     map[string][]string
	amenities map[string]amenity.Amenity
}

func newMemRepository() *memRepository {
	return &memRepository{
		places: map[string]Place{},
		links:  map[string][]string{},
		amenities: map[string]amenity.Amenity{
			"a-wifi": {ID: "a-wifi", Name: "Wifi"},
			"a-pool": {ID: "a-pool", Name: "Pool"},
		},
	}
}

func (m *memRepository) Add(_ context.Context, p *Place) error {
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	m.places[p.ID] = *p
	return nil
}

func (m *memRepository) GetByID(_ context.Context, id string) (*Place, error) {
	p, ok := m.places[id]
	if !ok {
		return nil, fmt.Errorf("get places: %w", core.ErrNotFound)
	}
	return &p, nil
}

func (m *memRepository) GetAll(context.Context) ([]Place, error) {
	out := make([]Place, 0, len(m.places))
	for _, p := range m.places {
		out = append(out, p)
	}
	return out, nil
}

func (m *memRepository) Update(_ context.Context, p *Place) error {
	if _, ok := m.places[p.ID]; !ok {
		return core.ErrNotFound
	}
	m.places[p.ID] = *p
	return nil
}

func (m *memRepository) Delete(_ context.Context, id string) error {
	if _, ok := m.places[id]; !ok {
		return core.ErrNotFound
	}
	delete(m.places, id)
	delete(m.links, id)
	return nil
}

func (m *memRepository) Count(context.Context) (int, error) {
	return len(m.places), nil
}

func (m *memRepository) AmenitiesOf(_ context.Context, placeID string) ([]amenity.Amenity, error) {
	out := []amenity.Amenity{}
	for _, id := range m.links[placeID] {
		out = append(out, m.amenities[id])
	}
	return out, nil
}

func (m *memRepository) ReplaceAmenities(_ context.Context, placeID string, ids []string) error {
	for _, id := range ids {
		if _, ok := m.amenities[id]; !ok {
			return fmt.Errorf("link amenity %s: %w", id, core.ErrInvalidInput)
		}
	}
	m.links[placeID] = ids
	return nil
}

type stubRoles map[string]string

func (s stubRoles) GetRole(_ context.Context, userID string) (string, error) {
	role, ok := s[userID]
	if !ok {
		return "", core.ErrNotFound
	}
	return role, nil
}

var roles = stubRoles{
	"owner":    "user",
	"stranger": "user",
	"admin":    core.RoleAdmin,
}

func newTestService() (*Service, *memRepository) {
	repo := newMemRepository()
	return NewService(repo, roles), repo
}

func createPlace(t *testing.T, svc *Service) *Place {
	t.Helper()
	p, err := svc.Create(context.Background(), "owner", CreatePlaceRequest{
		Name:          "Loft",
		City:          "Lisbon",
		Country:       "Portugal",
		PricePerNight: 120,
	})
	require.NoError(t, err)
	return p
}

func TestService_CreateAppliesDefaults(t *testing.T) {
	svc, _ := newTestService()

	p := createPlace(t, svc)

	assert.Equal(t, "owner", p.OwnerID)
	assert.Equal(t, 1, p.MaxGuests)
	assert.Equal(t, 1, p.NumberOfRooms)
	assert.Equal(t, 1, p.NumberOfBathrooms)
}

func TestService_UpdateOwnership(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	p := createPlace(t, svc)

	name := "Penthouse"
	_, err := svc.Update(ctx, "stranger", p.ID, UpdatePlaceRequest{Name: &name})
	assert.ErrorIs(t, err, core.ErrForbidden)

	_, err = svc.Update(ctx, "", p.ID, UpdatePlaceRequest{Name: &name})
	assert.ErrorIs(t, err, core.ErrUnauthorized)

	updated, err := svc.Update(ctx, "owner", p.ID, UpdatePlaceRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Penthouse", updated.Name)
	assert.Equal(t, "Lisbon", updated.City)

	price := 99.5
	updated, err = svc.Update(ctx, "admin", p.ID, UpdatePlaceRequest{PricePerNight: &price})
	require.NoError(t, err)
	assert.InDelta(t, 99.5, updated.PricePerNight, 0.001)
	assert.Equal(t, "Penthouse", updated.Name)
}

func TestService_DeleteOwnership(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	p := createPlace(t, svc)

	assert.ErrorIs(t, svc.Delete(ctx, "stranger", p.ID), core.ErrForbidden)
	assert.Contains(t, repo.places, p.ID)

	require.NoError(t, svc.Delete(ctx, "admin", p.ID))
	assert.ErrorIs(t, svc.Delete(ctx, "admin", p.ID), core.ErrNotFound)
}

func TestService_ReplaceAmenities(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	p := createPlace(t, svc)

	got, err := svc.ReplaceAmenities(ctx, "owner", p.ID, []string{"a-wifi", "a-pool", "a-wifi"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = svc.ReplaceAmenities(ctx, "owner", p.ID, []string{"a-sauna"})
	appErr := core.ToAppError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, "unknown amenity id", appErr.Message)

	got, err = svc.ReplaceAmenities(ctx, "owner", p.ID, []string{})
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = svc.ReplaceAmenities(ctx, "stranger", p.ID, []string{"a-wifi"})
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, dedupe([]string{"a", "b", "a", "b"}))
	assert.Empty(t, dedupe(nil))
}

func fakeAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-Test-User")
		if userID == "" {
			core.Unauthorized(w, "missing authorization token")
			return
		}
		ctx := middleware.WithClaims(r.Context(), &middleware.AccessTokenClaims{UserID: userID})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func serve(router http.Handler, method, path, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if userID != "" {
		req.Header.Set("X-Test-User", userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Routes(t *testing.T) {
	svc, _ := newTestService()
	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(r, fakeAuth)

	body := `{"name":"Cabin","city":"Oslo","country":"Norway","price_per_night":80}`

	rec := serve(r, http.MethodPost, "/places", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(r, http.MethodPost, "/places", "owner", `{"name":"Cabin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(r, http.MethodPost, "/places", "owner", `{"name":"Cabin","city":"Oslo","country":"Norway","price_per_night":-1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(r, http.MethodPost, "/places", "owner", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	places, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, places, 1)
	id := places[0].ID

	rec = serve(r, http.MethodGet, "/places", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
	assert.NotContains(t, rec.Body.String(), `"amenities"`)

	rec = serve(r, http.MethodGet, "/places/"+id, "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"amenities":[]`)

	rec = serve(r, http.MethodPut, "/places/"+id, "owner", `{"description":"Quiet","state":"Viken"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"description":"Quiet"`)

	rec = serve(r, http.MethodPut, "/places/"+id, "owner", `{"state":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"description":"Quiet"`)
	assert.Contains(t, rec.Body.String(), `"state":null`)

	rec = serve(r, http.MethodPut, "/places/"+id, "owner", `{"description":"`+strings.Repeat("x", 2001)+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(r, http.MethodPut, "/places/"+id, "stranger", `{"name":"Mine now"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(r, http.MethodPut, "/places/"+id+"/amenities", "owner", `{"amenity_ids":["not-a-uuid"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(r, http.MethodDelete, "/places/"+id, "owner", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(r, http.MethodGet, "/places/"+id, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestService_UpdateNullableFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	description, state := "Sea view", "Lisboa"
	p, err := svc.Create(ctx, "owner", CreatePlaceRequest{
		Name:          "Flat",
		Description:   &description,
		City:          "Lisbon",
		State:         &state,
		Country:       "Portugal",
		PricePerNight: 90,
	})
	require.NoError(t, err)

	decode := func(body string) UpdatePlaceRequest {
		var req UpdatePlaceRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		return req
	}

	updated, err := svc.Update(ctx, "owner", p.ID, decode(`{"name":"Flat 2"}`))
	require.NoError(t, err)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Sea view", *updated.Description)
	require.NotNil(t, updated.State)

	updated, err = svc.Update(ctx, "owner", p.ID, decode(`{"description":null}`))
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
	require.NotNil(t, updated.State)
	assert.Equal(t, "Lisboa", *updated.State)

	updated, err = svc.Update(ctx, "owner", p.ID, decode(`{"state":"Porto"}`))
	require.NoError(t, err)
	assert.Equal(t, "Porto", *updated.State)
	assert.Nil(t, updated.Description)
}
