// Package httperr writes the uniform JSON error bodies. Every failure
// surfaced to a caller goes through here so store internals never leak.
package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bilemo/phone-shop-api/internal/validation"
)

// HTTPError is the {status, message} envelope shared by 404/403/500
// responses and mutation acknowledgements.
type HTTPError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{
		Status:  status,
		Message: message,
	})
}

func NotFound(c *gin.Context) {
	Write(c, http.StatusNotFound, "resource not found")
}

func Forbidden(c *gin.Context, reason string) {
	Write(c, http.StatusForbidden, reason)
}

func Internal(c *gin.Context) {
	Write(c, http.StatusInternalServerError, "an internal error occurred")
}

// MalformedPayload covers undecodable request bodies. Its body carries
// no status field, unlike the other error envelopes.
func MalformedPayload(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload format"})
}

// Validation returns the full collected violation list, never a partial one.
func Validation(c *gin.Context, errs []validation.FieldError) {
	c.JSON(http.StatusBadRequest, errs)
}
