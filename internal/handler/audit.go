package handler

import (
	"net/http"
	"strconv"

	"github.com/Jancsi-Artienda/parking-fee-system/internal/middleware"
	"github.com/Jancsi-Artienda/parking-fee-system/internal/models"
	"github.com/Jancsi-Artienda/parking-fee-system/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuditHandler exposes the caller's own activity trail.
type AuditHandler struct {
	DB *gorm.DB
}

func NewAuditHandler(db *gorm.DB) *AuditHandler {
	return &AuditHandler{DB: db}
}

type auditResp struct {
	ID        uint   `json:"id"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	Action    string `json:"action"`
	IP        string `json:"ip"`
	CreatedAt string `json:"createdAt"`
}

// List pages through the caller's audit entries, newest first.
func (h *AuditHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if size <= 0 || size > 100 {
		size = 20
	}

	var total int64
	if err := h.DB.Model(&models.AuditLog{}).
		Where("employee_id = ?", user.EmployeeID).
		Count(&total).Error; err != nil {
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to fetch activity.", err)
		return
	}

	var entries []models.AuditLog
	if err := h.DB.Where("employee_id = ?", user.EmployeeID).
		Order("id DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&entries).Error; err != nil {
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to fetch activity.", err)
		return
	}

	items := make([]auditResp, 0, len(entries))
	for _, e := range entries {
		items = append(items, auditResp{
			ID:        e.ID,
			Method:    e.Method,
			Path:      e.Path,
			Action:    e.Action,
			IP:        e.IP,
			CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": total,
		"page":  page,
		"size":  size,
	})
}
