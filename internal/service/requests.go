package service

import "github.com/mmynk/lunchledger/internal/models"

// Request types are the single place inbound bodies are validated: handlers
// decode JSON into these and call Validate before any business logic runs.
// Pointer fields distinguish "absent" from a legitimate zero value.

// CreateUserRequest is the body of POST /api/users.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate checks required fields.
func (r *CreateUserRequest) Validate() error {
	if r.Name == "" || r.Email == "" {
		return invalid("Name and email are required")
	}
	return nil
}

// UpdateUserRequest is the body of PUT /api/users.
type UpdateUserRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate checks required fields.
func (r *UpdateUserRequest) Validate() error {
	if r.ID == "" || r.Name == "" || r.Email == "" {
		return invalid("ID, name and email are required")
	}
	return nil
}

// CreateRestaurantRequest is the body of POST /api/restaurants.
type CreateRestaurantRequest struct {
	Name string `json:"name"`
}

// Validate checks required fields.
func (r *CreateRestaurantRequest) Validate() error {
	if r.Name == "" {
		return invalid("Name is required")
	}
	return nil
}

// UpdateRestaurantRequest is the body of PUT /api/restaurants.
type UpdateRestaurantRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Validate checks required fields.
func (r *UpdateRestaurantRequest) Validate() error {
	if r.ID == "" || r.Name == "" {
		return invalid("ID and name are required")
	}
	return nil
}

// MenuItemFields holds the writable fields shared by menu item create and
// update requests. Price is a pointer so an absent price is distinguishable
// from a free item.
type MenuItemFields struct {
	Name         string   `json:"name"`
	Price        *float64 `json:"price"`
	Category     string   `json:"category"`
	RestaurantID string   `json:"restaurantId"`
}

func (f *MenuItemFields) validate() error {
	if f.Name == "" || f.Price == nil || f.Category == "" || f.RestaurantID == "" {
		return invalid("Name, price, category and restaurant are required")
	}
	if *f.Price < 0 {
		return invalid("Price must be zero or greater")
	}
	if f.Category != models.CategoryFood && f.Category != models.CategoryDrink {
		return invalid("Category must be food or drink")
	}
	return nil
}

// CreateMenuItemRequest is the body of POST /api/menu-items.
type CreateMenuItemRequest struct {
	MenuItemFields
}

// Validate checks required fields and the category enum.
func (r *CreateMenuItemRequest) Validate() error {
	return r.validate()
}

// UpdateMenuItemRequest is the body of PUT /api/menu-items.
type UpdateMenuItemRequest struct {
	ID string `json:"id"`
	MenuItemFields
}

// Validate checks required fields and the category enum.
func (r *UpdateMenuItemRequest) Validate() error {
	if r.ID == "" {
		return invalid("ID is required")
	}
	return r.validate()
}

// CreateDebtRequest is the body of POST /api/debts. CustomPrice, when
// present, overrides the menu item's unit price.
type CreateDebtRequest struct {
	DebtorID    string   `json:"debtorId"`
	CreditorID  string   `json:"creditorId"`
	MenuItemID  string   `json:"menuItemId"`
	Quantity    int      `json:"quantity"`
	CustomPrice *float64 `json:"customPrice"`
}

// Validate checks required fields, the quantity bound, and that debtor and
// creditor are distinct users.
func (r *CreateDebtRequest) Validate() error {
	if r.DebtorID == "" || r.CreditorID == "" || r.MenuItemID == "" || r.Quantity == 0 {
		return invalid("Debtor, creditor, menu item and quantity are required")
	}
	if r.Quantity < 0 {
		return invalid("Quantity must be greater than zero")
	}
	if r.DebtorID == r.CreditorID {
		return invalid("Debtor and creditor must be different users")
	}
	if r.CustomPrice != nil && *r.CustomPrice < 0 {
		return invalid("Custom price must be zero or greater")
	}
	return nil
}
