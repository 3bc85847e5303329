// AngelaMos | 2026
// migrate_test.go

package core

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(migrationsFS, "migrations/*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, ups)

	for _, up := range ups {
		down := strings.TrimSuffix(up, ".up.sql") + ".down.sql"
		_, err := fs.Stat(migrationsFS, down)
		assert.NoError(t, err, "missing %s", down)
	}
}

func TestSchemaDeclaresCascades(t *testing.T) {
	raw, err := fs.ReadFile(migrationsFS, "migrations/000001_init_schema.up.sql")
	require.NoError(t, err)
	schema := string(raw)

	for _, want := range []string{
		"owner_id            UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE",
		"CHECK (rating BETWEEN 1 AND 5)",
		"CONSTRAINT users_email_key UNIQUE (email)",
		"CONSTRAINT users_username_key UNIQUE (username)",
	} {
		assert.Contains(t, schema, want)
	}
	assert.Contains(t, schema, "place_amenities")
}
