// AngelaMos | 2026
// repository.go

package review

import (
	"context"

	"github.com/carterperez-dev/rental-api/internal/core"
)

type Repository interface {
	Add(ctx context.Context, review *Review) error
	GetByID(ctx context.Context, id string) (*Review, error)
	Update(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	ListByPlace(ctx context.Context, placeID string) ([]Review, error)
}

type repository struct {
	*core.CRUD[Review]
}

func NewRepository(db core.DBTX) Repository {
	return &repository{CRUD: core.NewCRUD[Review](db, reviewsTable)}
}

func (r *repository) ListByPlace(
	ctx context.Context,
	placeID string,
) ([]Review, error) {
	return r.FindAll(ctx, "place_id", placeID)
}
