package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"startive/internal/ledger"
	"startive/internal/models"
	"startive/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler writes the user's transactions as CSV or XLSX.
type ExportHandler struct {
	Ledger *ledger.Service
}

func NewExportHandler(svc *ledger.Service) *ExportHandler {
	return &ExportHandler{Ledger: svc}
}

var exportHeader = []string{"Date", "Category", "Description", "Amount", "Roundup"}

func exportRow(t *models.Transaction) []string {
	return []string{
		t.OccurredAt.Format("2006-01-02"),
		t.Category,
		t.Description,
		util.FormatCent(t.AmountCent),
		util.FormatCent(t.RoundupCent),
	}
}

// ExportCSV streams all transactions as a CSV download.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	transactions, err := h.Ledger.RecentTransactions(user.ID, 0)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query transactions")
		return
	}

	filename := fmt.Sprintf("transactions-%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	w := csv.NewWriter(c.Writer)
	_ = w.Write(exportHeader)
	for i := range transactions {
		_ = w.Write(exportRow(&transactions[i]))
	}
	w.Flush()
}

// ExportXLSX writes all transactions into a single-sheet workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	transactions, err := h.Ledger.RecentTransactions(user.ID, 0)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query transactions")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Transactions"
	index, err := f.NewSheet(sheet)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to build workbook")
		return
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for col, name := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, name)
	}
	for row := range transactions {
		for col, value := range exportRow(&transactions[row]) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	filename := fmt.Sprintf("transactions-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to write workbook")
	}
}
