package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// WriteError maps a BusinessError kind to its HTTP status. Anything that is
// not a BusinessError is reported as an opaque internal failure.
func WriteError(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", "Unexpected error.")
		return
	}

	switch be.Kind {
	case KindValidation:
		BadRequest(c, be.Code, be.Message)
	case KindNotFound:
		NotFound(c, be.Code, be.Message)
	case KindForbidden:
		Forbidden(c, be.Code, be.Message)
	default:
		Internal(c, be.Code, be.Message)
	}
}
