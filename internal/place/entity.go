// AngelaMos | 2026
// entity.go

package place

import (
	"time"

	"github.com/carterperez-dev/rental-api/internal/core"
)

type Place struct {
	ID                string    `db:"id"`
	Name              string    `db:"name"`
	Description       *string   `db:"description"`
	City              string    `db:"city"`
	State             *string   `db:"state"`
	Country           string    `db:"country"`
	PricePerNight     float64   `db:"price_per_night"`
	MaxGuests         int       `db:"max_guests"`
	NumberOfRooms     int       `db:"number_of_rooms"`
	NumberOfBathrooms int       `db:"number_of_bathrooms"`
	OwnerID           string    `db:"owner_id"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (p *Place) applyDefaults() {
	if p.MaxGuests == 0 {
		p.MaxGuests = 1
	}
	if p.NumberOfRooms == 0 {
		p.NumberOfRooms = 1
	}
	if p.NumberOfBathrooms == 0 {
		p.NumberOfBathrooms = 1
	}
}

var mutableColumns = []string{
	"name", "description", "city", "state", "country", "price_per_night",
	"max_guests", "number_of_rooms", "number_of_bathrooms",
}

var placesTable = core.Table{
	Name: "places",
	Columns: append(
		append([]string{"id"}, mutableColumns...),
		"owner_id", "created_at", "updated_at",
	),
	Insert:    append(append([]string{"id"}, mutableColumns...), "owner_id"),
	Update:    mutableColumns,
	Returning: []string{"created_at", "updated_at"},
}
