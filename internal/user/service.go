// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carterperez-dev/rental-api/internal/auth"
	"github.com/carterperez-dev/rental-api/internal/core"
)

type Service struct {
	repo     Repository
	hasher   *core.PasswordHasher
	cache    core.Cache
	cacheTTL time.Duration
}

func NewService(
	repo Repository,
	hasher *core.PasswordHasher,
	cache core.Cache,
	cacheTTL time.Duration,
) *Service {
	if cache == nil {
		cache = core.NopCache{}
	}
	return &Service{
		repo:     repo,
		hasher:   hasher,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Create is the admin path; role defaults to user.
func (s *Service) Create(
	ctx context.Context,
	req CreateUserRequest,
) (*User, error) {
	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = RoleUser
	}

	user := &User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Email:        normalizeEmail(req.Email),
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := s.repo.Add(ctx, user); err != nil {
		return nil, translateWriteError(err)
	}

	return user, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	if user, ok := s.cachedUser(ctx, id); ok {
		return user, nil
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.storeUser(ctx, user)
	return user, nil
}

// Modify applies only the fields present in req. The record is always
// read from the database because the cached copy carries no hash.
func (s *Service) Modify(
	ctx context.Context,
	id string,
	req UpdateUserRequest,
) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = normalizeEmail(*req.Email)
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Password != nil {
		passwordHash, hashErr := s.hasher.Hash(*req.Password)
		if hashErr != nil {
			return nil, fmt.Errorf("hash password: %w", hashErr)
		}
		user.PasswordHash = passwordHash
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, translateWriteError(err)
	}

	s.invalidate(ctx, id)
	return user, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	return nil
}

// GetRole implements core.RoleLookup. It reads the stored row, never the
// cache.
func (s *Service) GetRole(ctx context.Context, id string) (string, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

// CreateAccount is the self-registration path and always assigns the
// user role.
func (s *Service) CreateAccount(
	ctx context.Context,
	username, email, passwordHash string,
) (*auth.UserInfo, error) {
	user := &User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        normalizeEmail(email),
		PasswordHash: passwordHash,
		Role:         RoleUser,
	}

	if err := s.repo.Add(ctx, user); err != nil {
		return nil, translateWriteError(err)
	}

	return toUserInfo(user), nil
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	userID, passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

// translateWriteError names the colliding field when a unique constraint
// fails.
func translateWriteError(err error) error {
	if !errors.Is(err, core.ErrDuplicateKey) {
		return err
	}

	switch core.ConstraintOf(err) {
	case constraintUsername:
		return core.DuplicateError("username")
	case constraintEmail:
		return core.DuplicateError("email")
	default:
		return core.DuplicateError("user")
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

var (
	_ auth.UserProvider = (*Service)(nil)
	_ core.RoleLookup   = (*Service)(nil)
)
