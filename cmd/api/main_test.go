// AngelaMos | 2026
// main_test.go

package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/rental-api/internal/config"
)

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()

	for _, path := range [][]string{
		{"serve"},
		{"migrate", "up"},
		{"migrate", "down"},
		{"keys", "generate"},
		{"admin", "create"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, "command %v", path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestKeysGenerate(t *testing.T) {
	dir := t.TempDir()
	priv := filepath.Join(dir, "keys", "private.pem")
	pub := filepath.Join(dir, "keys", "public.pem")

	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("JWT_PRIVATE_KEY_PATH", priv)
	t.Setenv("JWT_PUBLIC_KEY_PATH", pub)

	run := func(args ...string) error {
		root := newRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetArgs(append([]string{"--config", ""}, args...))
		return root.ExecuteContext(context.Background())
	}

	require.NoError(t, run("keys", "generate"))
	assert.FileExists(t, priv)
	assert.FileExists(t, pub)

	info, err := os.Stat(priv)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	err = run("keys", "generate")
	assert.ErrorContains(t, err, "already exists")

	assert.NoError(t, run("keys", "generate", "--force"))
}

func TestAdminCreateValidatesBeforeConnecting(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")

	root := newRootCmd()
	root.SetArgs([]string{"admin", "create", "--username", "root", "--email", "not-an-email"})

	err := root.ExecuteContext(context.Background())
	assert.ErrorContains(t, err, "invalid admin account")
}

func TestSetupLogger(t *testing.T) {
	logger := setupLogger(config.LogConfig{Level: "warn", Format: "json"})

	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
	_, isJSON := logger.Handler().(*slog.JSONHandler)
	assert.True(t, isJSON)

	logger = setupLogger(config.LogConfig{Level: "debug", Format: "text"})
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}
