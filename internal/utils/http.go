package utils

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/internal/pkg/apperrors"
	httpclient "github.com/redtestlab/portal/internal/pkg/http"
	"github.com/redtestlab/portal/internal/pkg/logger"
)

// UnreachableMessage is shown whenever the lab API could not be reached
const UnreachableMessage = "Unable to reach the lab server"

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// ServiceUnavailableResponse sends a 503 Service Unavailable response
func ServiceUnavailableResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Service unavailable"
	}
	return ErrorResponseHandler(c, http.StatusServiceUnavailable, errorMessage)
}

// HandleError maps a usecase error onto the error envelope.
// Lab API 4xx answers keep their status, 5xx become 502.
func HandleError(c echo.Context, err error) error {
	if upstreamErr, ok := httpclient.AsUpstreamError(err); ok {
		if upstreamErr.IsServerError() {
			logger.Warn("Lab API server error",
				logger.Int("status_code", upstreamErr.StatusCode),
				logger.String("message", upstreamErr.Message))
			return ErrorResponseHandler(c, http.StatusBadGateway, upstreamErr.Message)
		}
		return ErrorResponseHandler(c, upstreamErr.StatusCode, upstreamErr.Message)
	}

	switch {
	case errors.Is(err, httpclient.ErrUpstreamUnavailable):
		logger.Error("Lab API unreachable", logger.Err(err))
		return ErrorResponseHandler(c, http.StatusBadGateway, UnreachableMessage)
	case errors.Is(err, apperrors.ErrUnauthorized):
		return UnauthorizedResponse(c, apperrors.Message(err, ""))
	case errors.Is(err, apperrors.ErrForbidden):
		return ForbiddenResponse(c, apperrors.Message(err, ""))
	case errors.Is(err, apperrors.ErrNotFound):
		return NotFoundResponse(c, apperrors.Message(err, ""))
	case errors.Is(err, apperrors.ErrConflict):
		return ErrorResponseHandler(c, http.StatusConflict, apperrors.Message(err, "Request already in progress"))
	case errors.Is(err, apperrors.ErrRateLimited):
		return ErrorResponseHandler(c, http.StatusTooManyRequests, apperrors.Message(err, "Too many requests"))
	case errors.Is(err, apperrors.ErrValidation):
		return BadRequestResponse(c, apperrors.Message(err, err.Error()))
	case errors.Is(err, ErrInvalidPhone), errors.Is(err, ErrInvalidOTP):
		return BadRequestResponse(c, err.Error())
	case errors.Is(err, context.Canceled):
		return ErrorResponseHandler(c, 499, "Request canceled")
	}

	logger.Error("Unhandled error", logger.Err(err))
	return InternalServerErrorResponse(c, "")
}
