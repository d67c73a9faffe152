package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Error codes returned in the "code" field of failed responses
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeInvalidID          = "INVALID_ID"
	CodeNotFound           = "NOT_FOUND"
	CodePhoneExists        = "PHONE_EXISTS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeObjectNotFound     = "OBJECT_NOT_FOUND"
	CodeStorage            = "STORAGE_ERROR"
	CodeDatabase           = "DATABASE_ERROR"
	CodeInternal           = "INTERNAL_ERROR"
)

// FieldError describes one rejected request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondError(c *gin.Context, status int, code, message string, details ...FieldError) {
	body := gin.H{
		"success": false,
		"error":   message,
		"code":    code,
	}
	if len(details) > 0 {
		body["details"] = details
	}
	c.AbortWithStatusJSON(status, body)
}

// respondServerError logs the full error and sends the client only a generic message
func respondServerError(c *gin.Context, code, message string, err error) {
	log.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("code", code).
		Msg(message)
	_ = c.Error(err)
	respondError(c, http.StatusInternalServerError, code, message)
}

func respondNotFound(c *gin.Context, what string) {
	respondError(c, http.StatusNotFound, CodeNotFound, what+" not found")
}
