// AngelaMos | 2026
// entity.go

package amenity

import (
	"time"

	"github.com/carterperez-dev/rental-api/internal/core"
)

type Amenity struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

var amenitiesTable = core.Table{
	Name:      "amenities",
	Columns:   []string{"id", "name", "description", "created_at", "updated_at"},
	Insert:    []string{"id", "name", "description"},
	Update:    []string{"name", "description"},
	Returning: []string{"created_at", "updated_at"},
	OrderBy:   "name ASC",
}
