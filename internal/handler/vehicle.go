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

// VehicleHandler serves the per-employee vehicle registry.
type VehicleHandler struct {
	DB *gorm.DB
}

func NewVehicleHandler(db *gorm.DB) *VehicleHandler {
	return &VehicleHandler{DB: db}
}

var vehicleTypes = map[string]bool{
	"Car":        true,
	"Motorcycle": true,
}

type vehicleResp struct {
	ID         uint   `json:"id"`
	Type       string `json:"type"`
	Name       string `json:"name"`
	Plate      string `json:"plate"`
	Color      string `json:"color"`
	Registered string `json:"registered"`
}

func toVehicleResp(v *models.Vehicle) vehicleResp {
	return vehicleResp{
		ID:         v.ID,
		Type:       v.Type,
		Name:       v.Model,
		Plate:      v.Plate,
		Color:      v.Color,
		Registered: v.CreatedAt.Format("1/2/2006"),
	}
}

// List returns the caller's vehicles, newest first.
func (h *VehicleHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	var vehicles []models.Vehicle
	if err := h.DB.Where("employee_id = ?", user.EmployeeID).
		Order("id DESC").
		Find(&vehicles).Error; err != nil {
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to fetch vehicles.", err)
		return
	}

	items := make([]vehicleResp, 0, len(vehicles))
	for i := range vehicles {
		items = append(items, toVehicleResp(&vehicles[i]))
	}
	c.JSON(http.StatusOK, items)
}

type addVehicleReq struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Plate string `json:"plate"`
	Color string `json:"color"`
}

// Add registers a vehicle, enforcing the user's vehicle limit and plate
// format. Model, plate and color are stored upper-cased.
func (h *VehicleHandler) Add(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	var req addVehicleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	vehicleType := strings.TrimSpace(req.Type)
	model := util.SanitizeVehicleField(req.Name)
	plate := util.SanitizeVehicleField(req.Plate)
	color := util.SanitizeVehicleField(req.Color)

	if vehicleType == "" || model == "" || plate == "" {
		util.Error(c, http.StatusBadRequest, "Type, name, and plate are required.")
		return
	}
	if !vehicleTypes[vehicleType] {
		util.Error(c, http.StatusBadRequest, "Vehicle type must be Car or Motorcycle.")
		return
	}
	if msg := util.ValidatePlate(plate); msg != "" {
		util.Error(c, http.StatusBadRequest, msg)
		return
	}

	if user.VehicleLimit > 0 {
		var current int64
		if err := h.DB.Model(&models.Vehicle{}).
			Where("employee_id = ?", user.EmployeeID).
			Count(&current).Error; err != nil {
			util.ErrorDetail(c, http.StatusInternalServerError, "Failed to add vehicle.", err)
			return
		}
		if current >= int64(user.VehicleLimit) {
			util.Error(c, http.StatusBadRequest,
				fmt.Sprintf("Vehicle limit reached (%d). You cannot add more vehicles.", user.VehicleLimit))
			return
		}
	}

	vehicle := models.Vehicle{
		EmployeeID: user.EmployeeID,
		Type:       vehicleType,
		Model:      model,
		Plate:      plate,
		Color:      color,
	}
	if err := h.DB.Create(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			util.Error(c, http.StatusConflict, "Vehicle plate already exists for this user.")
			return
		}
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to add vehicle.", err)
		return
	}

	// re-read so the response reflects what was persisted
	var stored models.Vehicle
	if err := h.DB.First(&stored, vehicle.ID).Error; err != nil {
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to add vehicle.", err)
		return
	}

	c.JSON(http.StatusCreated, toVehicleResp(&stored))
}

// Delete removes one of the caller's vehicles; a missing id is a 404.
func (h *VehicleHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "Invalid vehicle id.")
		return
	}

	result := h.DB.Where("id = ? AND employee_id = ?", id, user.EmployeeID).
		Delete(&models.Vehicle{})
	if result.Error != nil {
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to delete vehicle.", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, "Vehicle not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted successfully."})
}
