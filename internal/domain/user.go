package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user. The password hash is
// deliberately absent: default read paths never return it.
type User struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Role      Role      `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Credentials pairs a user with its stored password hash. Only the login path
// reads this shape; it must never leave the auth service.
type Credentials struct {
	User
	PasswordHash string `db:"password_hash"`
}
