package models

// Menu item categories.
const (
	CategoryFood  = "food"
	CategoryDrink = "drink"
)

// MenuItem represents an item on a restaurant's menu.
//
// Price is the default unit price. A debt may override it with a custom
// price at creation time; either way the resolved price is frozen into the
// debt, so later edits to a menu item never change existing debts.
type MenuItem struct {
	// ID is the unique identifier for the menu item (UUID format).
	ID string `json:"id"`

	// Name is the display name of the item (e.g. "Pad Thai").
	Name string `json:"name"`

	// Price is the default unit price. Must be >= 0.
	Price float64 `json:"price"`

	// Category is either CategoryFood or CategoryDrink.
	Category string `json:"category"`

	// RestaurantID is the restaurant this item belongs to.
	RestaurantID string `json:"restaurantId"`

	// CreatedAt is the Unix timestamp when the item was created.
	CreatedAt int64 `json:"createdAt"`
}
