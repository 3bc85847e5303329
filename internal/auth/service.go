// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/rental-api/internal/core"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type UserInfo struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByID(ctx context.Context, id string) (*UserInfo, error)
	CreateAccount(
		ctx context.Context,
		username, email, passwordHash string,
	) (*UserInfo, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

type TokenIssuer interface {
	CreateAccessToken(userID string) (*IssuedToken, error)
}

type Service struct {
	tokens       TokenIssuer
	hasher       *core.PasswordHasher
	userProvider UserProvider
}

func NewService(
	tokens TokenIssuer,
	hasher *core.PasswordHasher,
	userProvider UserProvider,
) *Service {
	return &Service{
		tokens:       tokens,
		hasher:       hasher,
		userProvider: userProvider,
	}
}

// Register creates a user account. Uniqueness of username and email is
// left to the database constraints, so concurrent registrations cannot
// both succeed.
func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*UserResponse, error) {
	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.userProvider.CreateAccount(
		ctx,
		req.Username,
		req.Email,
		passwordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return toUserResponse(user), nil
}

// Login returns ErrInvalidCredentials for both unknown emails and wrong
// passwords, and spends one hash verification either way.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*TokenResponse, error) {
	user, err := s.userProvider.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // result discarded, the call only equalises timing
			_, _, _ = s.hasher.VerifyTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, newHash, err := s.hasher.VerifyTimingSafe(
		req.Password,
		&user.PasswordHash,
	)
	if err != nil {
		slog.WarnContext(ctx, "stored password hash unreadable",
			"user_id", user.ID,
			"error", err,
		)
		return nil, ErrInvalidCredentials
	}

	if !valid {
		core.AddSpanEvent(ctx, "login.rejected")
		return nil, ErrInvalidCredentials
	}

	if newHash != "" {
		if updateErr := s.userProvider.UpdatePassword(ctx, user.ID, newHash); updateErr != nil {
			slog.WarnContext(ctx, "password rehash not persisted",
				"user_id", user.ID,
				"error", updateErr,
			)
		}
	}

	issued, err := s.tokens.CreateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	core.AddSpanEvent(ctx, "login.succeeded", attribute.String("user.id", user.ID))

	return &TokenResponse{
		AccessToken: issued.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int(time.Until(issued.ExpiresAt).Round(time.Second) / time.Second),
		ExpiresAt:   issued.ExpiresAt,
	}, nil
}

func (s *Service) Profile(
	ctx context.Context,
	userID string,
) (*UserResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("profile: %w", core.ErrUnauthorized)
	}

	user, err := s.userProvider.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toUserResponse(user), nil
}
