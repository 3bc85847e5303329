// AngelaMos | 2026
// entity.go

package review

import (
	"time"

	"github.com/carterperez-dev/rental-api/internal/core"
)

type Review struct {
	ID        string    `db:"id"`
	Text      string    `db:"text"`
	Rating    int       `db:"rating"`
	UserID    string    `db:"user_id"`
	PlaceID   string    `db:"place_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

const (
	MinRating = 1
	MaxRating = 5
)

var reviewsTable = core.Table{
	Name: "reviews",
	Columns: []string{
		"id", "text", "rating", "user_id", "place_id",
		"created_at", "updated_at",
	},
	Insert:    []string{"id", "text", "rating", "user_id", "place_id"},
	Update:    []string{"text", "rating"},
	Returning: []string{"created_at", "updated_at"},
}
