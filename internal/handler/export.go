package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/mmynk/lunchledger/internal/service"
)

// ExportHandler serves spreadsheet exports of the debt ledger.
type ExportHandler struct {
	debts *service.DebtService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(debts *service.DebtService) *ExportHandler {
	return &ExportHandler{debts: debts}
}

// ExportXLSX handles GET /api/export/xlsx. It writes all debts, newest
// first, as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	debts, err := h.debts.List(c.Request.Context())
	if err != nil {
		respondError(c, err, errSpec{fallback: "Failed to export debts"})
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"Date", "Debtor", "Creditor", "Item", "Category", "Quantity", "Total"}
	for i, head := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, head)
	}

	for idx, d := range debts {
		row := idx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), time.Unix(d.Date, 0).Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), d.Debtor.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), d.Creditor.Name)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), d.MenuItem.Name)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), d.MenuItem.Category)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), d.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), d.TotalPrice)
	}

	filename := fmt.Sprintf("debts-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		// Headers are already sent; nothing useful left to return.
		slog.Error("failed to write xlsx export", "error", err)
	}
}
