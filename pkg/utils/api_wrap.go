package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto the HTTP taxonomy.
// Dependency failures are logged with detail and answered generically so
// internals never leak to the client.
func HandleServiceError(c *gin.Context, err error) {
	var validationErr *ValidationError

	switch {
	case errors.Is(err, ErrAuthenticationRequired):
		RespondError(c, http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, ErrAccessDenied), errors.Is(err, ErrSelfDelete):
		// One generic message for every denial, so callers cannot probe roles.
		RespondError(c, http.StatusForbidden, "Access denied")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrVehicleNotFound):
		RespondError(c, http.StatusNotFound, "Vehicle not found")
	case errors.Is(err, ErrDocumentNotFound):
		RespondError(c, http.StatusNotFound, "Document not found")
	case errors.Is(err, ErrEventNotFound):
		RespondError(c, http.StatusNotFound, "Event not found")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, ErrPlateAlreadyExists):
		RespondError(c, http.StatusBadRequest, "License plate already registered")
	case errors.As(err, &validationErr):
		RespondError(c, http.StatusBadRequest, validationErr.Reason)
	case errors.Is(err, ErrQRCodeGeneration):
		logrus.WithError(err).Error("qr code generation failed")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	case errors.Is(err, ErrFileStorage):
		logrus.WithError(err).Error("file storage error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	case errors.Is(err, ErrDatabaseError):
		logrus.WithError(err).Error("database error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		logrus.WithError(err).Error("unhandled service error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
