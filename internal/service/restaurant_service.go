package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/lunchledger/internal/models"
	"github.com/mmynk/lunchledger/internal/storage"
)

// RestaurantService implements restaurant CRUD on top of a storage.Store.
type RestaurantService struct {
	store storage.Store
}

// NewRestaurantService creates a new RestaurantService with the given storage backend.
func NewRestaurantService(store storage.Store) *RestaurantService {
	return &RestaurantService{store: store}
}

// List returns all restaurants sorted by name.
func (s *RestaurantService) List(ctx context.Context) ([]models.Restaurant, error) {
	return s.store.ListRestaurants(ctx)
}

// Create validates the request and persists a new restaurant.
func (s *RestaurantService) Create(ctx context.Context, req CreateRestaurantRequest) (*models.Restaurant, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	restaurant := &models.Restaurant{Name: req.Name}
	if err := s.store.CreateRestaurant(ctx, restaurant); err != nil {
		return nil, err
	}

	slog.Info("restaurant created", "restaurant_id", restaurant.ID, "name", restaurant.Name)
	return restaurant, nil
}

// Update validates the request and renames an existing restaurant.
func (s *RestaurantService) Update(ctx context.Context, req UpdateRestaurantRequest) (*models.Restaurant, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	restaurant := &models.Restaurant{ID: req.ID, Name: req.Name}
	if err := s.store.UpdateRestaurant(ctx, restaurant); err != nil {
		return nil, err
	}

	slog.Info("restaurant updated", "restaurant_id", restaurant.ID)
	return restaurant, nil
}

// Delete removes a restaurant by ID. Restaurants with menu items cannot be
// deleted.
func (s *RestaurantService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return invalid("Restaurant ID is required")
	}

	if err := s.store.DeleteRestaurant(ctx, id); err != nil {
		return err
	}

	slog.Info("restaurant deleted", "restaurant_id", id)
	return nil
}
