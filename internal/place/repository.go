// AngelaMos | 2026
// repository.go

package place

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/rental-api/internal/amenity"
	"github.com/carterperez-dev/rental-api/internal/core"
)

type Repository interface {
	Add(ctx context.Context, place *Place) error
	GetByID(ctx context.Context, id string) (*Place, error)
	GetAll(ctx context.Context) ([]Place, error)
	Update(ctx context.Context, place *Place) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	AmenitiesOf(ctx context.Context, placeID string) ([]amenity.Amenity, error)
	ReplaceAmenities(ctx context.Context, placeID string, amenityIDs []string) error
}

type repository struct {
	*core.CRUD[Place]
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{
		CRUD: core.NewCRUD[Place](db, placesTable),
		db:   db,
	}
}

func (r *repository) AmenitiesOf(
	ctx context.Context,
	placeID string,
) ([]amenity.Amenity, error) {
	query := `
		SELECT a.id, a.name, a.description, a.created_at, a.updated_at
		FROM amenities a
		JOIN place_amenities pa ON pa.amenity_id = a.id
		WHERE pa.place_id = $1
		ORDER BY a.name ASC`

	amenities := []amenity.Amenity{}
	if err := r.db.SelectContext(ctx, &amenities, query, placeID); err != nil {
		return nil, fmt.Errorf("list place amenities: %w", err)
	}

	return amenities, nil
}

// ReplaceAmenities swaps the whole amenity set of a place in one
// transaction and refreshes the place's updated_at.
func (r *repository) ReplaceAmenities(
	ctx context.Context,
	placeID string,
	amenityIDs []string,
) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE places SET updated_at = NOW() WHERE id = $1`,
			placeID,
		)
		if err != nil {
			return fmt.Errorf("touch place: %w", core.TranslateError(err))
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("touch place: %w", err)
		}
		if rows == 0 {
			return fmt.Errorf("touch place: %w", core.ErrNotFound)
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM place_amenities WHERE place_id = $1`,
			placeID,
		); err != nil {
			return fmt.Errorf("clear place amenities: %w", err)
		}

		for _, amenityID := range amenityIDs {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO place_amenities (place_id, amenity_id) VALUES ($1, $2)`,
				placeID, amenityID,
			); err != nil {
				return fmt.Errorf(
					"link amenity %s: %w", amenityID, core.TranslateError(err),
				)
			}
		}

		return nil
	})
}
