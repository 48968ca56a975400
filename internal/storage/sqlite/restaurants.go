package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/lunchledger/internal/models"
	"github.com/mmynk/lunchledger/internal/storage"
)

// CreateRestaurant inserts a new restaurant into the database.
func (s *SQLiteStore) CreateRestaurant(ctx context.Context, restaurant *models.Restaurant) error {
	if restaurant.ID == "" {
		restaurant.ID = uuid.New().String()
	}
	if restaurant.CreatedAt == 0 {
		restaurant.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO restaurants (id, name, created_at) VALUES (?, ?, ?)",
		restaurant.ID, restaurant.Name, restaurant.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert restaurant: %w", err)
	}

	return nil
}

// ListRestaurants returns all restaurants ordered by name.
func (s *SQLiteStore) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at FROM restaurants ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []models.Restaurant
	for rows.Next() {
		var r models.Restaurant
		if err := rows.Scan(&r.ID, &r.Name, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate restaurants: %w", err)
	}

	return restaurants, nil
}

// UpdateRestaurant updates an existing restaurant's name.
func (s *SQLiteStore) UpdateRestaurant(ctx context.Context, restaurant *models.Restaurant) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE restaurants SET name = ? WHERE id = ?",
		restaurant.Name, restaurant.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update restaurant: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("restaurant %s: %w", restaurant.ID, storage.ErrNotFound)
	}

	return nil
}

// DeleteRestaurant deletes a restaurant by ID. Fails with storage.ErrConflict
// if any menu item references the restaurant.
func (s *SQLiteStore) DeleteRestaurant(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM restaurants WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete restaurant: %w", translateConstraint(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("restaurant %s: %w", id, storage.ErrNotFound)
	}

	return nil
}
