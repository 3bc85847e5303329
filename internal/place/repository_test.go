// AngelaMos | 2026
// repository_test.go

package place

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/rental-api/internal/core"
)

const (
	placeID = "3e1f2a4b-5c6d-4e7f-8a9b-0c1d2e3f4a5b"
	wifiID  = "9b8a7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d"
	poolID  = "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
)

func setupRepository(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	return NewRepository(sqlx.NewDb(mockDB, "postgres")), mock
}

func TestReplaceAmenities_Commits(t *testing.T) {
	repo, mock := setupRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE places SET updated_at = NOW() WHERE id = $1")).
		WithArgs(placeID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM place_amenities WHERE place_id = $1")).
		WithArgs(placeID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	for _, id := range []string{wifiID, poolID} {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO place_amenities (place_id, amenity_id) VALUES ($1, $2)")).
			WithArgs(placeID, id).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err := repo.ReplaceAmenities(context.Background(), placeID, []string{wifiID, poolID})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAmenities_UnknownAmenityRollsBack(t *testing.T) {
	repo, mock := setupRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE places").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM place_amenities").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO place_amenities").
		WithArgs(placeID, wifiID).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	err := repo.ReplaceAmenities(context.Background(), placeID, []string{wifiID})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAmenities_MissingPlace(t *testing.T) {
	repo, mock := setupRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE places").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.ReplaceAmenities(context.Background(), placeID, nil)
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAmenitiesOf(t *testing.T) {
	repo, mock := setupRepository(t)

	mock.ExpectQuery("FROM amenities a\\s+JOIN place_amenities").
		WithArgs(placeID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "created_at", "updated_at"}))

	got, err := repo.AmenitiesOf(context.Background(), placeID)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
