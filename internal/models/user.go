package models

// User represents a member of the group.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the user's email address (unique across users).
	Email string `json:"email"`

	// CreatedAt is the Unix timestamp when the user was created.
	CreatedAt int64 `json:"createdAt"`
}
