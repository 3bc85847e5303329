// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/rental-api/internal/config"
	"github.com/carterperez-dev/rental-api/internal/core"
	"github.com/carterperez-dev/rental-api/internal/middleware"
)

type fakeUsers struct {
	byEmail   map[string]*UserInfo
	rehashed  map[string]string
	createErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		byEmail:  map[string]*UserInfo{},
		rehashed: map[string]string{},
	}
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*UserInfo, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, core.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*UserInfo, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeUsers) CreateAccount(
	_ context.Context,
	username, email, passwordHash string,
) (*UserInfo, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u := &UserInfo{
		ID:           "id-" + username,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         "user",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.byEmail[email] = u
	return u, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	f.rehashed[userID] = passwordHash
	return nil
}

type fakeTokens struct{}

func (fakeTokens) CreateAccessToken(userID string) (*IssuedToken, error) {
	return &IssuedToken{
		Token:     "token-for-" + userID,
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}, nil
}

func newTestService(t *testing.T) (*Service, *fakeUsers, *core.PasswordHasher) {
	t.Helper()

	hasher, err := core.NewPasswordHasher(config.PasswordConfig{
		Memory:  1024,
		Time:    1,
		Threads: 1,
	})
	require.NoError(t, err)

	users := newFakeUsers()
	return NewService(fakeTokens{}, hasher, users), users, hasher
}

func TestService_RegisterThenLogin(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "user", resp.Role)
	assert.NotEqual(t, "s3cret-pass", users.byEmail["alice@example.com"].PasswordHash)

	tok, err := svc.Login(ctx, LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-for-id-alice", tok.AccessToken)
	assert.Equal(t, "Bearer", tok.TokenType)
	assert.InDelta(t, 900, tok.ExpiresIn, 2)
}

func TestService_LoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "correct-pass",
	})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, LoginRequest{
		Email:    "bob@example.com",
		Password: "incorrect-pass",
	})
	_, unknownEmail := svc.Login(ctx, LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-pass",
	})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
}

func TestService_LoginRehashesStaleHash(t *testing.T) {
	svc, users, _ := newTestService(t)

	stale, err := core.NewPasswordHasher(config.PasswordConfig{
		Memory:  512,
		Time:    1,
		Threads: 1,
	})
	require.NoError(t, err)
	hash, err := stale.Hash("old-params-pass")
	require.NoError(t, err)

	users.byEmail["carol@example.com"] = &UserInfo{
		ID:           "carol",
		Email:        "carol@example.com",
		PasswordHash: hash,
	}

	_, err = svc.Login(context.Background(), LoginRequest{
		Email:    "carol@example.com",
		Password: "old-params-pass",
	})
	require.NoError(t, err)
	assert.Contains(t, users.rehashed["carol"], "m=1024")
}

func TestService_RegisterDuplicate(t *testing.T) {
	svc, users, _ := newTestService(t)
	users.createErr = core.DuplicateError("email")

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "dave",
		Email:    "dave@example.com",
		Password: "long-enough",
	})
	assert.ErrorIs(t, err, core.ErrDuplicateKey)
}

func TestService_ProfileRequiresIdentity(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Profile(context.Background(), "")
	assert.ErrorIs(t, err, core.ErrUnauthorized)
}

func newTestRouter(svc *Service) http.Handler {
	r := chi.NewRouter()
	passthrough := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := middleware.WithClaims(r.Context(), &middleware.AccessTokenClaims{
				UserID: r.Header.Get("X-Test-User"),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
	NewHandler(svc).RegisterRoutes(r, passthrough)
	return r
}

func TestHandler_Register(t *testing.T) {
	svc, _, _ := newTestService(t)
	router := newTestRouter(svc)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"username":"erin","email":"erin@example.com","password":"password1"}`, http.StatusCreated},
		{"short password", `{"username":"frank","email":"frank@example.com","password":"short"}`, http.StatusBadRequest},
		{"missing email", `{"username":"gina","password":"password1"}`, http.StatusBadRequest},
		{"malformed json", `{"username":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.NotContains(t, rec.Body.String(), "password_hash")
		})
	}
}

func TestHandler_LoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t)
	router := newTestRouter(svc)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "hank",
		Email:    "hank@example.com",
		Password: "password1",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"hank@example.com","password":"password2"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email or password")
}

func TestHandler_Profile(t *testing.T) {
	svc, _, _ := newTestService(t)
	router := newTestRouter(svc)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "ivy",
		Email:    "ivy@example.com",
		Password: "password1",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req.Header.Set("X-Test-User", "id-ivy")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"ivy@example.com"`)

	req = httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req.Header.Set("X-Test-User", "id-ghost")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_ProfileWithSignedToken(t *testing.T) {
	jwtManager := newTestJWTManager(t, 15*time.Minute)
	_, users, hasher := newTestService(t)
	svc := NewService(jwtManager, hasher, users)

	router := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(router, middleware.Authenticator(jwtManager))

	ctx := context.Background()
	_, err := svc.Register(ctx, RegisterRequest{
		Username: "judy",
		Email:    "judy@example.com",
		Password: "password1",
	})
	require.NoError(t, err)
	tok, err := svc.Login(ctx, LoginRequest{
		Email:    "judy@example.com",
		Password: "password1",
	})
	require.NoError(t, err)

	profile := func(token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := profile(tok.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"id-judy"`)
	assert.Contains(t, rec.Body.String(), `"email":"judy@example.com"`)

	tampered := []byte(tok.AccessToken)
	i := strings.Index(tok.AccessToken, ".") + 5
	if tampered[i] == 'A' {
		tampered[i] = 'B'
	} else {
		tampered[i] = 'A'
	}

	rec = profile(string(tampered))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotContains(t, rec.Body.String(), "judy")
}
