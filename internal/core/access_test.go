// AngelaMos | 2026
// access_test.go

package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubRoles map[string]string

func (s stubRoles) GetRole(_ context.Context, userID string) (string, error) {
	role, ok := s[userID]
	if !ok {
		return "", ErrNotFound
	}
	return role, nil
}

type failingRoles struct{}

func (failingRoles) GetRole(context.Context, string) (string, error) {
	return "", errors.New("redis down")
}

func TestRequireOwnerOrAdmin(t *testing.T) {
	roles := stubRoles{
		"owner": "user",
		"other": "user",
		"boss":  RoleAdmin,
	}
	ctx := context.Background()

	assert.NoError(t, RequireOwnerOrAdmin(ctx, roles, "owner", "owner"))
	assert.NoError(t, RequireOwnerOrAdmin(ctx, roles, "boss", "owner"))
	assert.ErrorIs(t, RequireOwnerOrAdmin(ctx, roles, "other", "owner"), ErrForbidden)
	assert.ErrorIs(t, RequireOwnerOrAdmin(ctx, roles, "", "owner"), ErrUnauthorized)
	assert.ErrorIs(t, RequireOwnerOrAdmin(ctx, roles, "ghost", "owner"), ErrUnauthorized)
}

func TestRequireOwnerOrAdmin_LookupFailure(t *testing.T) {
	err := RequireOwnerOrAdmin(context.Background(), failingRoles{}, "a", "b")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}
