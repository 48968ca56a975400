// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/lunchledger/internal/models"
)

// Store defines the interface for lunchledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer. The handle is constructed once at
// process start and passed into the services explicitly; there is no
// package-level connection state.
type Store interface {
	// Users.
	CreateUser(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id string) error

	// Restaurants.
	CreateRestaurant(ctx context.Context, restaurant *models.Restaurant) error
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, restaurant *models.Restaurant) error
	DeleteRestaurant(ctx context.Context, id string) error

	// Menu items.
	CreateMenuItem(ctx context.Context, item *models.MenuItem) error
	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *models.MenuItem) error
	DeleteMenuItem(ctx context.Context, id string) error

	// Debts.
	//
	// CreateDebt resolves the unit price and inserts the debt in a single
	// transaction: the menu item's price is read and the row written
	// atomically, so a menu item deleted concurrently fails the whole
	// operation instead of leaving a half-resolved debt. If customPrice is
	// non-nil it overrides the menu item's price. The debt's ID, Date and
	// TotalPrice fields are populated by the store.
	CreateDebt(ctx context.Context, debt *models.Debt, customPrice *float64) error
	GetDebt(ctx context.Context, id string) (*models.Debt, error)
	ListDebts(ctx context.Context) ([]models.Debt, error)
	DeleteDebt(ctx context.Context, id string) error

	// Ping verifies the backing database is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
