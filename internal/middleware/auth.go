// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/carterperez-dev/rental-api/internal/core"
)

const (
	UserIDKey contextKey = "user_id"
	ClaimsKey contextKey = "jwt_claims"
)

type TokenVerifier interface {
	VerifyAccessToken(
		ctx context.Context,
		token string,
	) (*AccessTokenClaims, error)
}

// AccessTokenClaims is the verified identity carried by an access token.
// Roles are resolved per request through core.RoleLookup.
type AccessTokenClaims struct {
	UserID    string
	TokenID   string
	ExpiresAt time.Time
}

func Authenticator(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token == "" {
				authFailures.WithLabelValues("missing_token").Inc()
				core.JSONError(
					w,
					core.UnauthorizedError("missing authorization token"),
				)
				return
			}

			claims, err := verifier.VerifyAccessToken(r.Context(), token)
			if err != nil {
				authFailures.WithLabelValues(failureReason(err)).Inc()
				core.JSONError(w, core.TokenInvalidError())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireAdmin must run after Authenticator. A token whose user no longer
// exists is treated as unauthenticated.
func RequireAdmin(lookup core.RoleLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := GetUserID(r.Context())
			if userID == "" {
				core.JSONError(w, core.UnauthorizedError(""))
				return
			}

			role, err := lookup.GetRole(r.Context(), userID)
			if err != nil {
				if errors.Is(err, core.ErrNotFound) {
					authFailures.WithLabelValues("unknown_user").Inc()
					core.JSONError(w, core.UnauthorizedError(""))
					return
				}
				slog.ErrorContext(r.Context(), "role lookup failed",
					"user_id", userID,
					"error", err,
				)
				core.InternalServerError(w, err)
				return
			}

			if role != core.RoleAdmin {
				authFailures.WithLabelValues("forbidden").Inc()
				core.JSONError(w, core.ForbiddenError("admin privileges required"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func failureReason(err error) string {
	if errors.Is(err, core.ErrTokenExpired) {
		return "expired_token"
	}
	return "invalid_token"
}

// WithClaims stores the verified claims on ctx.
func WithClaims(ctx context.Context, claims *AccessTokenClaims) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	return context.WithValue(ctx, ClaimsKey, claims)
}

func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

func GetClaims(ctx context.Context) *AccessTokenClaims {
	if claims, ok := ctx.Value(ClaimsKey).(*AccessTokenClaims); ok {
		return claims
	}
	return nil
}
