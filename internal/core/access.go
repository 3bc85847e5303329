// AngelaMos | 2026
// access.go

package core

import (
	"context"
	"errors"
	"fmt"
)

const RoleAdmin = "admin"

// RoleLookup resolves the current role of a user id.
type RoleLookup interface {
	GetRole(ctx context.Context, userID string) (string, error)
}

// RequireOwnerOrAdmin passes when callerID owns the resource or currently
// holds the admin role. A caller whose account is gone is unauthorized.
func RequireOwnerOrAdmin(
	ctx context.Context,
	lookup RoleLookup,
	callerID, ownerID string,
) error {
	if callerID == "" {
		return fmt.Errorf("ownership check: %w", ErrUnauthorized)
	}

	if callerID == ownerID {
		return nil
	}

	role, err := lookup.GetRole(ctx, callerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("ownership check: %w", ErrUnauthorized)
		}
		return fmt.Errorf("ownership check: %w", err)
	}

	if role != RoleAdmin {
		return fmt.Errorf("ownership check: %w", ErrForbidden)
	}

	return nil
}
