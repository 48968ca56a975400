package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmynk/lunchledger/internal/models"
	"github.com/mmynk/lunchledger/internal/report"
	"github.com/mmynk/lunchledger/internal/storage"
)

// DebtService implements debt CRUD and the reporting views on top of a
// storage.Store. The reporting math itself lives in the report package;
// this service only fetches the data and hands it over.
type DebtService struct {
	store storage.Store
}

// NewDebtService creates a new DebtService with the given storage backend.
func NewDebtService(store storage.Store) *DebtService {
	return &DebtService{store: store}
}

// List returns all debts newest first, with debtor, creditor and menu item
// inlined.
func (s *DebtService) List(ctx context.Context) ([]models.Debt, error) {
	return s.store.ListDebts(ctx)
}

// Create validates the request and records a new debt. The unit price
// (custom price if supplied, otherwise the menu item's current price) is
// resolved and frozen inside a single storage transaction.
func (s *DebtService) Create(ctx context.Context, req CreateDebtRequest) (*models.Debt, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	debt := &models.Debt{
		DebtorID:   req.DebtorID,
		CreditorID: req.CreditorID,
		MenuItemID: req.MenuItemID,
		Quantity:   req.Quantity,
	}
	if err := s.store.CreateDebt(ctx, debt, req.CustomPrice); err != nil {
		return nil, err
	}

	slog.Info("debt created",
		"debt_id", debt.ID,
		"debtor_id", debt.DebtorID,
		"creditor_id", debt.CreditorID,
		"total_price", debt.TotalPrice,
	)

	// Reload with relations inlined for the response.
	return s.store.GetDebt(ctx, debt.ID)
}

// Delete removes a debt by ID.
func (s *DebtService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return invalid("Debt ID is required")
	}

	if err := s.store.DeleteDebt(ctx, id); err != nil {
		return err
	}

	slog.Info("debt deleted", "debt_id", id)
	return nil
}

// Summaries returns the pairwise group-by sums of all debts: one row per
// ordered (debtor, creditor) pair. Mutual debts stay as two rows.
func (s *DebtService) Summaries(ctx context.Context) ([]report.PairSummary, error) {
	debts, err := s.store.ListDebts(ctx)
	if err != nil {
		return nil, err
	}
	return report.SummarizeByPair(debts), nil
}

// Dashboard bundles the numbers the overview screen shows: per-user stats,
// the current month's total, the whole group's total, and the top debtor
// and creditor.
type Dashboard struct {
	UserStats      []report.UserStat `json:"userStats"`
	MonthlyTotal   float64           `json:"monthlyTotal"`
	TotalGroupDebt float64           `json:"totalGroupDebt"`
	TopDebtor      *report.UserStat  `json:"topDebtor,omitempty"`
	TopCreditor    *report.UserStat  `json:"topCreditor,omitempty"`
}

// Dashboard computes the overview statistics as of now.
func (s *DebtService) Dashboard(ctx context.Context, now time.Time) (*Dashboard, error) {
	debts, err := s.store.ListDebts(ctx)
	if err != nil {
		return nil, err
	}

	summaries := report.SummarizeByPair(debts)
	stats := report.UserStats(summaries)

	dash := &Dashboard{
		UserStats:      stats,
		MonthlyTotal:   report.MonthlyTotal(debts, now),
		TotalGroupDebt: report.GroupTotal(summaries),
	}
	if top, ok := report.TopDebtor(stats); ok {
		dash.TopDebtor = &top
	}
	if top, ok := report.TopCreditor(stats); ok {
		dash.TopCreditor = &top
	}

	return dash, nil
}
