package utils

import (
	"errors"
	"net/http"

	"sevagram/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind classifies failures for the transport layer.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

// AppError is returned by services for every failure the caller can act on.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewValidationError(msg string) error {
	return &AppError{Kind: KindValidation, Message: msg}
}

func NewUnauthorizedError(msg string) error {
	return &AppError{Kind: KindUnauthorized, Message: msg}
}

func NewForbiddenError(msg string) error {
	return &AppError{Kind: KindForbidden, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func NewConflictError(msg string, err error) error {
	return &AppError{Kind: KindConflict, Message: msg, Err: err}
}

func NewInternalError(msg string, err error) error {
	return &AppError{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf returns the kind of err, KindInternal for anything that is not an *AppError.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// StatusCode maps an error kind to its HTTP status.
func StatusCode(kind ErrorKind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Success: false,
					Message: "Server Error",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response. details only leaves the process outside production.
func JSONError(c *gin.Context, status int, message string, details string) {
	logger := GetLogger()
	if status >= http.StatusInternalServerError {
		logger.Error(message, zap.String("path", c.Request.URL.Path), zap.String("details", details))
	} else {
		logger.Warn(message, zap.String("path", c.Request.URL.Path), zap.String("details", details))
	}
	resp := ErrorResponse{Success: false, Message: message}
	if !config.IsProduction() {
		resp.Error = details
	}
	c.AbortWithStatusJSON(status, resp)
}

// RespondError writes err using the envelope and status of its kind.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		JSONError(c, http.StatusInternalServerError, "Server Error", err.Error())
		return
	}
	details := ""
	if appErr.Err != nil {
		details = appErr.Err.Error()
	}
	JSONError(c, StatusCode(appErr.Kind), appErr.Message, details)
}
