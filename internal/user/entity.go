// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"github.com/carterperez-dev/rental-api/internal/core"
)

type User struct {
	ID           string    `db:"id"            json:"id"`
	Username     string    `db:"username"      json:"username"`
	Email        string    `db:"email"         json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role"          json:"role"`
	CreatedAt    time.Time `db:"created_at"    json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"    json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

const (
	RoleUser  = "user"
	RoleAdmin = core.RoleAdmin
)

var usersTable = core.Table{
	Name: "users",
	Columns: []string{
		"id", "username", "email", "password_hash", "role",
		"created_at", "updated_at",
	},
	Insert:    []string{"id", "username", "email", "password_hash", "role"},
	Update:    []string{"username", "email", "password_hash", "role"},
	Returning: []string{"created_at", "updated_at"},
}

// Unique constraint names from the schema, used to tell the client which
// field collided.
const (
	constraintUsername = "users_username_key"
	constraintEmail    = "users_email_key"
)
