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

// debtSelect joins the debtor, creditor and menu item so debts come back
// with their relations inlined.
const debtSelect = `
SELECT d.id, d.debtor_id, d.creditor_id, d.menu_item_id, d.quantity, d.total_price, d.date,
       du.name, du.email, du.created_at,
       cu.name, cu.email, cu.created_at,
       mi.name, mi.price, mi.category, mi.restaurant_id, mi.created_at
FROM debts d
JOIN users du ON du.id = d.debtor_id
JOIN users cu ON cu.id = d.creditor_id
JOIN menu_items mi ON mi.id = d.menu_item_id`

// scanDebt scans one row of debtSelect into a fully populated debt.
func scanDebt(scan func(dest ...any) error) (*models.Debt, error) {
	debt := &models.Debt{
		Debtor:   &models.User{},
		Creditor: &models.User{},
		MenuItem: &models.MenuItem{},
	}
	err := scan(
		&debt.ID, &debt.DebtorID, &debt.CreditorID, &debt.MenuItemID,
		&debt.Quantity, &debt.TotalPrice, &debt.Date,
		&debt.Debtor.Name, &debt.Debtor.Email, &debt.Debtor.CreatedAt,
		&debt.Creditor.Name, &debt.Creditor.Email, &debt.Creditor.CreatedAt,
		&debt.MenuItem.Name, &debt.MenuItem.Price, &debt.MenuItem.Category,
		&debt.MenuItem.RestaurantID, &debt.MenuItem.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	debt.Debtor.ID = debt.DebtorID
	debt.Creditor.ID = debt.CreditorID
	debt.MenuItem.ID = debt.MenuItemID
	return debt, nil
}

// CreateDebt resolves the unit price and inserts the debt atomically.
//
// The menu item read and the debt write run in one transaction, so a menu
// item deleted concurrently fails the whole operation. The total price is
// frozen here: later price changes on the menu item do not affect this debt.
func (s *SQLiteStore) CreateDebt(ctx context.Context, debt *models.Debt, customPrice *float64) error {
	if debt.ID == "" {
		debt.ID = uuid.New().String()
	}
	if debt.Date == 0 {
		debt.Date = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var unitPrice float64
	err = tx.QueryRowContext(ctx,
		"SELECT price FROM menu_items WHERE id = ?", debt.MenuItemID,
	).Scan(&unitPrice)
	if err == sql.ErrNoRows {
		return fmt.Errorf("menu item %s: %w", debt.MenuItemID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to resolve menu item price: %w", err)
	}

	if customPrice != nil {
		unitPrice = *customPrice
	}
	debt.TotalPrice = unitPrice * float64(debt.Quantity)

	_, err = tx.ExecContext(ctx,
		"INSERT INTO debts (id, debtor_id, creditor_id, menu_item_id, quantity, total_price, date) VALUES (?, ?, ?, ?, ?, ?, ?)",
		debt.ID, debt.DebtorID, debt.CreditorID, debt.MenuItemID,
		debt.Quantity, debt.TotalPrice, debt.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to insert debt: %w", translateConstraint(err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetDebt retrieves a debt by ID with debtor, creditor and menu item inlined.
func (s *SQLiteStore) GetDebt(ctx context.Context, id string) (*models.Debt, error) {
	row := s.db.QueryRowContext(ctx, debtSelect+" WHERE d.id = ?", id)
	debt, err := scanDebt(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("debt %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get debt: %w", err)
	}

	return debt, nil
}

// ListDebts returns all debts newest first, with relations inlined.
func (s *SQLiteStore) ListDebts(ctx context.Context) ([]models.Debt, error) {
	rows, err := s.db.QueryContext(ctx, debtSelect+" ORDER BY d.date DESC, d.id")
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var debts []models.Debt
	for rows.Next() {
		debt, err := scanDebt(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, *debt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate debts: %w", err)
	}

	return debts, nil
}

// DeleteDebt deletes a debt by ID.
func (s *SQLiteStore) DeleteDebt(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM debts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete debt: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("debt %s: %w", id, storage.ErrNotFound)
	}

	return nil
}
