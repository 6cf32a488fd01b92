package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Jancsi-Artienda/parking-fee-system/internal/export"
	"github.com/Jancsi-Artienda/parking-fee-system/internal/middleware"
	"github.com/Jancsi-Artienda/parking-fee-system/internal/models"
	"github.com/Jancsi-Artienda/parking-fee-system/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler renders the caller's ledger as CSV, XLSX or the printable
// parking-fee PDF.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

func (h *ExportHandler) loadReports(employeeID uint) ([]models.Report, error) {
	var reports []models.Report
	err := h.DB.Where("employee_id = ?", employeeID).
		Order("created_at DESC, trans_date DESC").
		Find(&reports).Error
	return reports, err
}

func formatAmount(centavo int64) string {
	return strconv.FormatFloat(float64(centavo)/100.0, 'f', 2, 64)
}

// displayDate turns a stored YYYY-MM-DD into the M/D/YYYY shape the
// printable report uses.
func displayDate(stored string) string {
	t, err := time.Parse("2006-01-02", stored)
	if err != nil {
		return stored
	}
	return t.Format("1/2/2006")
}

// CSV streams the ledger as a CSV attachment.
func (h *ExportHandler) CSV(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	reports, err := h.loadReports(user.EmployeeID)
	if err != nil {
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to fetch reports.", err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"parking-reports_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	_ = writer.Write([]string{"Date", "Vehicle", "Amount (PHP)", "Label", "Coverage From", "Coverage To"})
	for _, r := range reports {
		_ = writer.Write([]string{
			r.TransDate,
			r.VehicleModel,
			formatAmount(r.AmountCentavo),
			r.TempName,
			r.CoverageFrom,
			r.CoverageTo,
		})
	}
}

// XLSX writes the ledger as a spreadsheet attachment.
func (h *ExportHandler) XLSX(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	reports, err := h.loadReports(user.EmployeeID)
	if err != nil {
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to fetch reports.", err)
		return
	}

	f := excelize.NewFile()
	sheetName := "Parking Reports"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to build spreadsheet.", err)
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Vehicle", "Amount (PHP)", "Label", "Coverage From", "Coverage To"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx, r := range reports {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.TransDate)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.VehicleModel)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), formatAmount(r.AmountCentavo))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.TempName)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.CoverageFrom)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.CoverageTo)
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 35)
	f.SetColWidth(sheetName, "C", "C", 14)
	f.SetColWidth(sheetName, "D", "D", 20)
	f.SetColWidth(sheetName, "E", "F", 14)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"parking-reports_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to export spreadsheet.", err)
	}
}

// coverageLabel mirrors the report page's display: single date, range, or N/A.
func coverageLabel(pref *models.CoveragePreference) string {
	format := func(stored string) string {
		t, err := time.Parse("2006-01-02", stored)
		if err != nil {
			return stored
		}
		return t.Format("January 2, 2006")
	}

	switch {
	case pref.CoverageFrom != "" && pref.CoverageTo != "":
		return format(pref.CoverageFrom) + " - " + format(pref.CoverageTo)
	case pref.CoverageFrom != "":
		return format(pref.CoverageFrom)
	default:
		return "N/A"
	}
}

// PDF renders the printable parking-fee report over the current rows.
func (h *ExportHandler) PDF(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	reports, err := h.loadReports(user.EmployeeID)
	if err != nil {
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to fetch reports.", err)
		return
	}

	var pref models.CoveragePreference
	if err := h.DB.Where("employee_id = ?", user.EmployeeID).First(&pref).Error; err != nil &&
		err != gorm.ErrRecordNotFound {
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to fetch coverage.", err)
		return
	}

	rows := make([]export.Row, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, export.Row{
			Date:         displayDate(r.TransDate),
			VehicleModel: r.VehicleModel,
			Amount:       formatAmount(r.AmountCentavo),
		})
	}

	now := time.Now()
	doc := export.Document{
		PreparedBy:    user.FullName(),
		Coverage:      coverageLabel(&pref),
		DateSubmitted: now.Format("January 2, 2006"),
		Rows:          rows,
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(now)))

	if err := doc.Render(c.Writer); err != nil {
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to render PDF.", err)
	}
}
