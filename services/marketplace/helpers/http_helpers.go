package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"bidding-marketplace/internal/markerrors"
	"bidding-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// CallerHeader carries the acting user's id. The value is caller-supplied;
// an authentication layer upstream would populate the same header.
const CallerHeader = "X-User-ID"

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, markerrors.ErrValidation):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, markerrors.ErrNotFound):
		return http.StatusNotFound, "record not found"
	case errors.Is(err, markerrors.ErrInvalidState):
		return http.StatusConflict, "operation not allowed for current status"
	case errors.Is(err, markerrors.ErrForbidden):
		return http.StatusForbidden, "not authorized"
	case errors.Is(err, markerrors.ErrStore):
		return http.StatusInternalServerError, "internal server error"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// CallerID reads the acting user from the X-User-ID header.
func CallerID(c *gin.Context) (int64, error) {
	raw := c.GetHeader(CallerHeader)
	if raw == "" {
		return 0, fmt.Errorf("%w - missing %s header", markerrors.ErrForbidden, CallerHeader)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w - invalid %s header", markerrors.ErrForbidden, CallerHeader)
	}
	return id, nil
}

// QueryID parses a numeric id from the named query parameter.
func QueryID(c *gin.Context, name string) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, fmt.Errorf("%w - missing %s", markerrors.ErrValidation, name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w - invalid %s", markerrors.ErrValidation, name)
	}
	return id, nil
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
