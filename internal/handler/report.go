package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Jancsi-Artienda/parking-fee-system/internal/middleware"
	"github.com/Jancsi-Artienda/parking-fee-system/internal/models"
	"github.com/Jancsi-Artienda/parking-fee-system/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReportHandler owns the parking-fee ledger and the coverage preference.
type ReportHandler struct {
	DB        *gorm.DB
	ReportCap int
}

func NewReportHandler(db *gorm.DB, reportCap int) *ReportHandler {
	if reportCap <= 0 {
		reportCap = 15
	}
	return &ReportHandler{DB: db, ReportCap: reportCap}
}

type reportResp struct {
	ID           uint    `json:"id"`
	TransDate    string  `json:"transDate"`
	CoverageFrom string  `json:"coverageFrom"`
	CoverageTo   string  `json:"coverageTo"`
	VehicleModel string  `json:"vehicleModel"`
	Amount       float64 `json:"amount"`
	TempName     string  `json:"tempName"`
	CreatedDate  string  `json:"createdDate"`
}

func toReportResp(r *models.Report) reportResp {
	return reportResp{
		ID:           r.ID,
		TransDate:    r.TransDate,
		CoverageFrom: r.CoverageFrom,
		CoverageTo:   r.CoverageTo,
		VehicleModel: r.VehicleModel,
		Amount:       float64(r.AmountCentavo) / 100.0,
		TempName:     r.TempName,
		CreatedDate:  r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// parseAmount accepts a JSON number or a numeric string and returns
// centavos. The form has sent both shapes over time.
func parseAmount(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n <= 0 {
			return 0, false
		}
		return int64(n*100 + 0.5), true
	case string:
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || f <= 0 {
			return 0, false
		}
		return int64(f*100 + 0.5), true
	default:
		return 0, false
	}
}

// composeVehicleModel denormalizes a vehicle into the stored description,
// skipping empty parts and truncating to the column budget.
func composeVehicleModel(v *models.Vehicle) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{v.Type, v.Model, v.Plate} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	desc := strings.Join(parts, " / ")
	if len(desc) > models.VehicleModelMaxLen {
		desc = desc[:models.VehicleModelMaxLen]
	}
	return desc
}

// List returns the caller's reports, most recent first.
func (h *ReportHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	var reports []models.Report
	if err := h.DB.Where("employee_id = ?", user.EmployeeID).
		Order("created_at DESC, trans_date DESC").
		Find(&reports).Error; err != nil {
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to fetch reports.", err)
		return
	}

	items := make([]reportResp, 0, len(reports))
	for i := range reports {
		items = append(items, toReportResp(&reports[i]))
	}
	c.JSON(http.StatusOK, items)
}

type addReportReq struct {
	VehicleID    any    `json:"vehicleId"`
	TransDate    string `json:"transDate"`
	Amount       any    `json:"amount"`
	TempName     string `json:"tempName"`
	CoverageFrom string `json:"coverageFrom"`
	CoverageTo   string `json:"coverageTo"`
}

func parseVehicleID(v any) (uint, bool) {
	switch n := v.(type) {
	case float64:
		if n <= 0 || n != float64(uint(n)) {
			return 0, false
		}
		return uint(n), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil || parsed <= 0 {
			return 0, false
		}
		return uint(parsed), true
	default:
		return 0, false
	}
}

// Add validates and persists one ledger entry. Order of checks: required
// fields and amount, coverage containment, report cap, duplicate calendar
// date, vehicle ownership. The unique (employee, date) index turns any
// surviving race into a conflict instead of a duplicate row.
func (h *ReportHandler) Add(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	var req addReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	vehicleID, okID := parseVehicleID(req.VehicleID)
	if !okID || strings.TrimSpace(req.TransDate) == "" || req.Amount == nil {
		util.Error(c, http.StatusBadRequest, "Vehicle, date, and amount are required.")
		return
	}

	amountCentavo, okAmount := parseAmount(req.Amount)
	if !okAmount {
		util.Error(c, http.StatusBadRequest, "Amount must be greater than 0.")
		return
	}

	transDate, err := util.NormalizeDate(req.TransDate)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "Transaction date is invalid.")
		return
	}

	var coverageFrom, coverageTo string
	if strings.TrimSpace(req.CoverageFrom) != "" {
		if coverageFrom, err = util.NormalizeDate(req.CoverageFrom); err != nil {
			util.Error(c, http.StatusBadRequest, "Coverage start date is invalid.")
			return
		}
	}
	if strings.TrimSpace(req.CoverageTo) != "" {
		if coverageTo, err = util.NormalizeDate(req.CoverageTo); err != nil {
			util.Error(c, http.StatusBadRequest, "Coverage end date is invalid.")
			return
		}
	}
	// Coverage containment is authoritative here, not just a client gate.
	// Normalized dates compare correctly as strings.
	if coverageFrom != "" && coverageTo != "" {
		if coverageFrom > coverageTo {
			util.Error(c, http.StatusBadRequest, "Coverage range is invalid.")
			return
		}
		if transDate < coverageFrom || transDate > coverageTo {
			util.Error(c, http.StatusBadRequest, "Transaction date must fall within the coverage range.")
			return
		}
	}

	var total int64
	if err := h.DB.Model(&models.Report{}).
		Where("employee_id = ?", user.EmployeeID).
		Count(&total).Error; err != nil {
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to create report.", err)
		return
	}
	if total >= int64(h.ReportCap) {
		util.Error(c, http.StatusBadRequest,
			fmt.Sprintf("Report limit reached (%d). You cannot add more reports.", h.ReportCap))
		return
	}

	var duplicates int64
	if err := h.DB.Model(&models.Report{}).
		Where("employee_id = ? AND trans_date = ?", user.EmployeeID, transDate).
		Count(&duplicates).Error; err != nil {
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to create report.", err)
		return
	}
	if duplicates > 0 {
		util.Error(c, http.StatusConflict, "A report for this date already exists.")
		return
	}

	var vehicle models.Vehicle
	if err := h.DB.Where("id = ? AND employee_id = ?", vehicleID, user.EmployeeID).
		First(&vehicle).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "Selected vehicle was not found.")
		} else {
			util.ErrorDetail(c, http.StatusInternalServerError, "Failed to create report.", err)
		}
		return
	}

	report := models.Report{
		EmployeeID:    user.EmployeeID,
		TransDate:     transDate,
		CoverageFrom:  coverageFrom,
		CoverageTo:    coverageTo,
		VehicleModel:  composeVehicleModel(&vehicle),
		AmountCentavo: amountCentavo,
		TempName:      strings.TrimSpace(req.TempName),
	}
	if err := h.DB.Create(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			util.Error(c, http.StatusConflict, "A report for this date already exists.")
			return
		}
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to create report.", err)
		return
	}

	c.JSON(http.StatusCreated, toReportResp(&report))
}

// Delete removes the caller's entry for one calendar date.
func (h *ReportHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	transDate, err := util.NormalizeDate(c.Param("transDate"))
	if err != nil {
		util.Error(c, http.StatusBadRequest, "Transaction date is invalid.")
		return
	}

	result := h.DB.Where("employee_id = ? AND trans_date = ?", user.EmployeeID, transDate).
		Delete(&models.Report{})
	if result.Error != nil {
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to delete report.", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, "Report not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report deleted successfully."})
}

// GetCoverage returns the stored coverage range; a missing row is empty
// strings, never an error, so report entry is never blocked by it.
func (h *ReportHandler) GetCoverage(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	var pref models.CoveragePreference
	err := h.DB.Where("employee_id = ?", user.EmployeeID).First(&pref).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to fetch coverage.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"coverageFrom": pref.CoverageFrom,
		"coverageTo":   pref.CoverageTo,
	})
}

type saveCoverageReq struct {
	CoverageFrom string `json:"coverageFrom"`
	CoverageTo   string `json:"coverageTo"`
}

// SaveCoverage upserts the caller's coverage range.
func (h *ReportHandler) SaveCoverage(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	var req saveCoverageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	var coverageFrom, coverageTo string
	var err error
	if strings.TrimSpace(req.CoverageFrom) != "" {
		if coverageFrom, err = util.NormalizeDate(req.CoverageFrom); err != nil {
			util.Error(c, http.StatusBadRequest, "Coverage start date is invalid.")
			return
		}
	}
	if strings.TrimSpace(req.CoverageTo) != "" {
		if coverageTo, err = util.NormalizeDate(req.CoverageTo); err != nil {
			util.Error(c, http.StatusBadRequest, "Coverage end date is invalid.")
			return
		}
	}
	if coverageFrom != "" && coverageTo != "" && coverageFrom > coverageTo {
		util.Error(c, http.StatusBadRequest, "Coverage start must not be after coverage end.")
		return
	}

	var pref models.CoveragePreference
	err = h.DB.Where("employee_id = ?", user.EmployeeID).First(&pref).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to save coverage.", err)
		return
	}

	pref.EmployeeID = user.EmployeeID
	pref.CoverageFrom = coverageFrom
	pref.CoverageTo = coverageTo
	if err := h.DB.Save(&pref).Error; err != nil {
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to save coverage.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"coverageFrom": pref.CoverageFrom,
		"coverageTo":   pref.CoverageTo,
	})
}
