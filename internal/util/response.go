package util

import "github.com/gin-gonic/gin"

// Error writes the API error envelope. Every failure leaves the service
// as {"message": ...} with the matching status code.
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{"message": msg})
}

// ErrorDetail adds a diagnostic detail string. Detail is a debugging aid
// for this internal tool and may name columns; strip it when hardening.
func ErrorDetail(c *gin.Context, httpStatus int, msg string, err error) {
	body := gin.H{"message": msg}
	if err != nil {
		body["detail"] = err.Error()
	}
	c.JSON(httpStatus, body)
}
