package models

// Restaurant represents a place the group orders from.
// A restaurant owns zero or more menu items and cannot be deleted
// while any of them reference it.
type Restaurant struct {
	// ID is the unique identifier for the restaurant (UUID format).
	ID string `json:"id"`

	// Name is the display name of the restaurant.
	Name string `json:"name"`

	// CreatedAt is the Unix timestamp when the restaurant was created.
	CreatedAt int64 `json:"createdAt"`
}
