package domain

import "time"

// User is an account synced from the external identity provider.
// Email is the immutable business key; the numeric id is internal.
// JSON field names match what the identity sync and the front-end expect.
type User struct {
	ID             int64     `json:"user_id" db:"user_id"`
	Email          string    `json:"email" db:"email"`
	Name           string    `json:"name" db:"name"`
	ProfilePicture *string   `json:"profile_picture" db:"profile_picture"`
	Role           Role      `json:"role" db:"role"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Identity is the authenticated caller resolved by the transport layer and
// carried through the context to services.
type Identity struct {
	UserID int64
	Email  string
	Name   string
	Role   Role
}
