package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/richmill123/rice_mill_backend/internal/apperrors"
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/richmill123/rice_mill_backend/internal/middleware"
)

// respondError translates service errors into HTTP responses. Validation
// failures are client errors, illegal transitions are unprocessable, lost
// concurrent races are conflicts and unreadable collections map to 503.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var unavailable *apperrors.DataUnavailableError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Request failed validation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrIllegalTransition):
		logger.Warn("Illegal status transition", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflicting write", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &unavailable):
		logger.Error("Collection unavailable", slog.String("collection", unavailable.Collection))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": fmt.Sprintf("Data for %s is currently unavailable", unavailable.Collection)})
	default:
		logger.Error("Request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// parseDateRange reads optional from/to query parameters (YYYY-MM-DD) into a
// date range. Both absent means no range; one without the other is an error.
func parseDateRange(c *gin.Context) (*domain.DateRange, error) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" && toStr == "" {
		return nil, nil
	}
	if fromStr == "" || toStr == "" {
		return nil, fmt.Errorf("both from and to must be provided")
	}
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return nil, fmt.Errorf("invalid from date %q", fromStr)
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return nil, fmt.Errorf("invalid to date %q", toStr)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("to must not be before from")
	}
	return &domain.DateRange{Start: from, End: to}, nil
}
