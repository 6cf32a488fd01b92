package middleware

import (
	"bytes"
	"io"

	"github.com/Jancsi-Artienda/parking-fee-system/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuditMiddleware records one row per authenticated request. Bodies are
// folded into the action string only when short; failures to write the
// audit row never fail the request.
func AuditMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		c.Next()

		user, ok := CurrentUser(c)
		if !ok {
			return
		}

		path := c.Request.URL.Path
		action := c.Request.Method + " " + path
		if len(bodyBytes) > 0 && len(bodyBytes) < 1000 {
			action += " " + string(bodyBytes)
		}

		entry := models.AuditLog{
			EmployeeID: user.EmployeeID,
			Method:     c.Request.Method,
			Path:       path,
			Action:     action,
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		}
		_ = db.Create(&entry).Error
	}
}
