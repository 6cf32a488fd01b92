package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Jancsi-Artienda/parking-fee-system/internal/middleware"
	"github.com/Jancsi-Artienda/parking-fee-system/internal/models"
	"github.com/Jancsi-Artienda/parking-fee-system/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthHandler owns registration, login and profile maintenance.
type AuthHandler struct {
	DB         *gorm.DB
	JWTSecret  string
	Issuer     string
	TokenTTL   time.Duration
	BcryptCost int
}

func NewAuthHandler(db *gorm.DB, jwtSecret, issuer string, ttlHours, bcryptCost int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 168
	}
	return &AuthHandler{
		DB:         db,
		JWTSecret:  jwtSecret,
		Issuer:     issuer,
		TokenTTL:   time.Duration(ttlHours) * time.Hour,
		BcryptCost: bcryptCost,
	}
}

// ---------- register ----------

type registerReq struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	ContactNumber   string `json:"contactNumber"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	VehicleNumber   any    `json:"vehicleNumber"`
}

// parseVehicleLimit accepts the vehicle count as either a JSON number or a
// numeric string, the two shapes the registration form has sent over time.
func parseVehicleLimit(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case string:
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	contact := strings.TrimSpace(req.ContactNumber)
	username := strings.TrimSpace(req.Username)

	if firstName == "" || lastName == "" || email == "" || contact == "" ||
		username == "" || req.Password == "" || req.ConfirmPassword == "" || req.VehicleNumber == nil {
		util.Error(c, http.StatusBadRequest, "All fields are required.")
		return
	}

	if req.Password != req.ConfirmPassword {
		util.Error(c, http.StatusBadRequest, "Passwords do not match.")
		return
	}

	if !util.IsGmailAddress(email) {
		util.Error(c, http.StatusBadRequest, "Email must be a valid @gmail.com address.")
		return
	}

	if msg := util.ValidateContactNumber(contact); msg != "" {
		util.Error(c, http.StatusBadRequest, "Contact number must be exactly 11 digits.")
		return
	}

	if msg := util.ValidateUsername(username); msg != "" {
		util.Error(c, http.StatusBadRequest, "Username must be 3-20 characters using letters, numbers, or underscore.")
		return
	}

	if !util.IsStrongPassword(req.Password) {
		util.Error(c, http.StatusBadRequest, "Password must be 8-64 characters with upper, lower, and digit.")
		return
	}

	vehicleLimit, ok := parseVehicleLimit(req.VehicleNumber)
	if !ok || vehicleLimit < 1 {
		util.Error(c, http.StatusBadRequest, "Number of vehicles must be at least 1.")
		return
	}

	var count int64
	if err := h.DB.Model(&models.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error; err != nil {
		util.ErrorDetail(c, http.StatusInternalServerError, "Registration failed.", err)
		return
	}
	if count > 0 {
		util.Error(c, http.StatusConflict, "Email or username already exists.")
		return
	}

	hash, err := util.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		util.ErrorDetail(c, http.StatusInternalServerError, "Registration failed.", err)
		return
	}

	// Employee numbers are MAX+1; computed inside the insert transaction so
	// two concurrent registrations cannot claim the same number unchecked
	// (the unique index backstops the remaining window).
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var nextEmployeeID uint
		if err := tx.Model(&models.User{}).
			Select("COALESCE(MAX(employee_id), 0) + 1").
			Scan(&nextEmployeeID).Error; err != nil {
			return err
		}

		user := models.User{
			EmployeeID:    nextEmployeeID,
			Username:      username,
			PasswordHash:  hash,
			FirstName:     firstName,
			LastName:      lastName,
			Email:         email,
			JobRole:       "Employee",
			ContactNumber: contact,
			VehicleLimit:  vehicleLimit,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			util.Error(c, http.StatusConflict, "Email or username already exists.")
			return
		}
		util.ErrorDetail(c, http.StatusInternalServerError, "Registration failed.", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// ---------- login ----------

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		util.Error(c, http.StatusBadRequest, "Email and password are required.")
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// same message for unknown email and wrong password
			util.Error(c, http.StatusUnauthorized, "Invalid credentials.")
		} else {
			util.ErrorDetail(c, http.StatusInternalServerError, "Login failed.", err)
		}
		return
	}

	if !util.CheckPassword(req.Password, user.PasswordHash) {
		util.Error(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, h.Issuer, user.ID, user.EmployeeID, user.Email, h.TokenTTL)
	if err != nil {
		util.ErrorDetail(c, http.StatusInternalServerError, "Login failed.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"employeeId":    user.EmployeeID,
		"username":      user.Username,
		"name":          user.FullName(),
		"email":         user.Email,
		"contactNumber": user.ContactNumber,
		"vehicleNumber": user.VehicleLimit,
		"token":         token,
	})
}

// ---------- forgot password ----------

type forgotPasswordReq struct {
	Email string `json:"email"`
}

// ForgotPassword answers generically whether or not the account exists, so
// the endpoint cannot be used to enumerate registered emails.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		util.Error(c, http.StatusBadRequest, "Email is required.")
		return
	}
	if !util.IsGmailAddress(email) {
		util.Error(c, http.StatusBadRequest, "Email must be a valid @gmail.com address.")
		return
	}

	var user models.User
	err := h.DB.Where("email = ?", email).First(&user).Error
	if err == nil {
		resetToken := strings.ReplaceAll(uuid.NewString(), "-", "")
		if updErr := h.DB.Model(&user).Update("reset_token", resetToken).Error; updErr != nil {
			util.ErrorDetail(c, http.StatusInternalServerError, "Failed to process forgot password.", updErr)
			return
		}
	} else if err != gorm.ErrRecordNotFound {
		util.ErrorDetail(c, http.StatusInternalServerError, "Failed to process forgot password.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "If an account exists for this email, a reset link has been sent.",
	})
}

// ---------- profile ----------

type updateProfileReq struct {
	Username      string `json:"username"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	contact := strings.TrimSpace(req.ContactNumber)
	firstName, lastName := util.SplitFullName(req.Name)

	if username == "" || strings.TrimSpace(req.Name) == "" || email == "" || contact == "" {
		util.Error(c, http.StatusBadRequest, "Username, name, email, and contact number are required.")
		return
	}

	if msg := util.ValidateUsername(username); msg != "" {
		util.Error(c, http.StatusBadRequest, "Username must be 3-20 characters using letters, numbers, or underscore.")
		return
	}
	if !util.IsGmailAddress(email) {
		util.Error(c, http.StatusBadRequest, "Email must be a valid @gmail.com address.")
		return
	}
	if msg := util.ValidateContactNumber(contact); msg != "" {
		util.Error(c, http.StatusBadRequest, "Contact number must be exactly 11 digits.")
		return
	}

	var count int64
	if err := h.DB.Model(&models.User{}).
		Where("email = ? AND id <> ?", email, user.ID).
		Count(&count).Error; err != nil {
		util.ErrorDetail(c, http.StatusInternalServerError, "Profile update failed.", err)
		return
	}
	if count > 0 {
		util.Error(c, http.StatusConflict, "Email already exists.")
		return
	}

	if err := h.DB.Model(&models.User{}).
		Where("username = ? AND id <> ?", username, user.ID).
		Count(&count).Error; err != nil {
		util.ErrorDetail(c, http.StatusInternalServerError, "Profile update failed.", err)
		return
	}
	if count > 0 {
		util.Error(c, http.StatusConflict, "Username already exists.")
		return
	}

	updates := map[string]any{
		"username":       username,
		"first_name":     firstName,
		"last_name":      lastName,
		"email":          email,
		"contact_number": contact,
	}
	if err := h.DB.Model(user).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			util.Error(c, http.StatusConflict, "Email or username already exists.")
			return
		}
		util.ErrorDetail(c, http.StatusInternalServerError, "Profile update failed.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      username,
		"name":          strings.TrimSpace(firstName + " " + lastName),
		"email":         email,
		"contactNumber": contact,
	})
}

// Me returns the authenticated user's profile projection.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"employeeId":    user.EmployeeID,
		"username":      user.Username,
		"name":          user.FullName(),
		"email":         user.Email,
		"contactNumber": user.ContactNumber,
		"vehicleNumber": user.VehicleLimit,
		"createdAt":     user.CreatedAt,
	})
}
