package types

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/killallgit/scout-api/pkg/errors"
	"github.com/killallgit/scout-api/pkg/logger"
)

// Handler utility functions to reduce duplication across handlers

const logHint = "Check the service logs for more information"

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return false
	}
	return true
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: message})
}

// SendInternalError sends a standardized internal server error response
func SendInternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message, Details: logHint})
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendError maps err onto the error envelope. Client errors carry their own
// message; anything else is logged and answered with a generic message.
func SendError(c *gin.Context, log *logger.Logger, err error) {
	appErr, ok := apperrors.As(err)
	if ok && appErr.Public() {
		response := ErrorResponse{Error: appErr.Message}
		if len(appErr.Details) > 0 {
			response.Details = appErr.Details
		}
		c.JSON(appErr.GetHTTPCode(), response)
		return
	}

	if log == nil {
		log = logger.Nop()
	}
	log.Error("Request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"code", apperrors.GetCode(err),
		"error", err,
	)
	SendInternalError(c, genericMessage(apperrors.GetCode(err)))
}

func genericMessage(code apperrors.ErrorCode) string {
	switch code {
	case apperrors.ErrCodeUpstream:
		return "AI model request failed"
	case apperrors.ErrCodePersistence:
		return "Storage operation failed"
	default:
		return "An unexpected error occurred"
	}
}
