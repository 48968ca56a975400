package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/lunchledger/internal/models"
	"github.com/mmynk/lunchledger/internal/report"
	"github.com/mmynk/lunchledger/internal/service"
)

// DebtHandler serves the /api/debts endpoints and the reporting views.
type DebtHandler struct {
	debts *service.DebtService
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debts *service.DebtService) *DebtHandler {
	return &DebtHandler{debts: debts}
}

// List handles GET /api/debts: all debts newest first, with debtor,
// creditor and menu item inlined.
func (h *DebtHandler) List(c *gin.Context) {
	debts, err := h.debts.List(c.Request.Context())
	if err != nil {
		respondError(c, err, errSpec{fallback: "Failed to fetch debts"})
		return
	}
	if debts == nil {
		debts = []models.Debt{}
	}
	c.JSON(http.StatusOK, debts)
}

// Create handles POST /api/debts.
func (h *DebtHandler) Create(c *gin.Context) {
	var req service.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	debt, err := h.debts.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, errSpec{
			notFound: "Menu item not found",
			fallback: "Failed to create debt",
		})
		return
	}
	c.JSON(http.StatusCreated, debt)
}

// Summaries handles GET /api/debts/summary. It is also registered on
// PUT /api/debts: the interface this replaces used PUT for the pairwise
// summary read, and existing callers depend on it.
func (h *DebtHandler) Summaries(c *gin.Context) {
	summaries, err := h.debts.Summaries(c.Request.Context())
	if err != nil {
		respondError(c, err, errSpec{fallback: "Failed to fetch debt summaries"})
		return
	}
	if summaries == nil {
		summaries = []report.PairSummary{}
	}
	c.JSON(http.StatusOK, summaries)
}

// Stats handles GET /api/stats: the overview dashboard numbers.
func (h *DebtHandler) Stats(c *gin.Context) {
	dash, err := h.debts.Dashboard(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, err, errSpec{fallback: "Failed to fetch stats"})
		return
	}
	if dash.UserStats == nil {
		dash.UserStats = []report.UserStat{}
	}
	c.JSON(http.StatusOK, dash)
}

// Delete handles DELETE /api/debts?id=.
func (h *DebtHandler) Delete(c *gin.Context) {
	err := h.debts.Delete(c.Request.Context(), c.Query("id"))
	if err != nil {
		respondError(c, err, errSpec{
			notFound: "Debt not found",
			fallback: "Failed to delete debt",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Debt deleted successfully"})
}
