package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/lunchledger/internal/models"
	"github.com/mmynk/lunchledger/internal/storage"
)

// MenuItemService implements menu item CRUD on top of a storage.Store.
type MenuItemService struct {
	store storage.Store
}

// NewMenuItemService creates a new MenuItemService with the given storage backend.
func NewMenuItemService(store storage.Store) *MenuItemService {
	return &MenuItemService{store: store}
}

// List returns all menu items sorted by name.
func (s *MenuItemService) List(ctx context.Context) ([]models.MenuItem, error) {
	return s.store.ListMenuItems(ctx)
}

// Create validates the request and persists a new menu item.
func (s *MenuItemService) Create(ctx context.Context, req CreateMenuItemRequest) (*models.MenuItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item := &models.MenuItem{
		Name:         req.Name,
		Price:        *req.Price,
		Category:     req.Category,
		RestaurantID: req.RestaurantID,
	}
	if err := s.store.CreateMenuItem(ctx, item); err != nil {
		return nil, err
	}

	slog.Info("menu item created", "menu_item_id", item.ID, "name", item.Name, "price", item.Price)
	return item, nil
}

// Update validates the request and updates an existing menu item.
// Debts created before the update keep their frozen total price.
func (s *MenuItemService) Update(ctx context.Context, req UpdateMenuItemRequest) (*models.MenuItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item := &models.MenuItem{
		ID:           req.ID,
		Name:         req.Name,
		Price:        *req.Price,
		Category:     req.Category,
		RestaurantID: req.RestaurantID,
	}
	if err := s.store.UpdateMenuItem(ctx, item); err != nil {
		return nil, err
	}

	slog.Info("menu item updated", "menu_item_id", item.ID)
	return item, nil
}

// Delete removes a menu item by ID. Items referenced by debts cannot be
// deleted.
func (s *MenuItemService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return invalid("Menu item ID is required")
	}

	if err := s.store.DeleteMenuItem(ctx, id); err != nil {
		return err
	}

	slog.Info("menu item deleted", "menu_item_id", id)
	return nil
}
