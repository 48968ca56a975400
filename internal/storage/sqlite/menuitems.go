package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/lunchledger/internal/models"
	"github.com/mmynk/lunchledger/internal/storage"
)

// CreateMenuItem inserts a new menu item into the database.
func (s *SQLiteStore) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt == 0 {
		item.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO menu_items (id, name, price, category, restaurant_id, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		item.ID, item.Name, item.Price, item.Category, item.RestaurantID, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert menu item: %w", translateConstraint(err))
	}

	return nil
}

// ListMenuItems returns all menu items ordered by name.
func (s *SQLiteStore) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, price, category, restaurant_id, created_at FROM menu_items ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Category, &item.RestaurantID, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu items: %w", err)
	}

	return items, nil
}

// GetMenuItem retrieves a menu item by ID.
func (s *SQLiteStore) GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	item := &models.MenuItem{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, price, category, restaurant_id, created_at FROM menu_items WHERE id = ?",
		id,
	).Scan(&item.ID, &item.Name, &item.Price, &item.Category, &item.RestaurantID, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("menu item %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	return item, nil
}

// UpdateMenuItem updates an existing menu item. Debts created before the
// update keep their frozen total price.
func (s *SQLiteStore) UpdateMenuItem(ctx context.Context, item *models.MenuItem) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE menu_items SET name = ?, price = ?, category = ?, restaurant_id = ? WHERE id = ?",
		item.Name, item.Price, item.Category, item.RestaurantID, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", translateConstraint(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("menu item %s: %w", item.ID, storage.ErrNotFound)
	}

	return nil
}

// DeleteMenuItem deletes a menu item by ID. Fails with storage.ErrConflict
// if any debt references the item.
func (s *SQLiteStore) DeleteMenuItem(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM menu_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", translateConstraint(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("menu item %s: %w", id, storage.ErrNotFound)
	}

	return nil
}
