// AngelaMos | 2026
// repository.go

package amenity

import (
	"context"

	"github.com/carterperez-dev/rental-api/internal/core"
)

type Repository interface {
	Add(ctx context.Context, amenity *Amenity) error
	GetByID(ctx context.Context, id string) (*Amenity, error)
	GetAll(ctx context.Context) ([]Amenity, error)
	Count(ctx context.Context) (int, error)
}

func NewRepository(db core.DBTX) Repository {
	return core.NewCRUD[Amenity](db, amenitiesTable)
}
