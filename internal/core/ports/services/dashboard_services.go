package services

import (
	"context"
	"time"

	"github.com/richmill123/rice_mill_backend/internal/core/domain"
)

// DashboardSvcFacade computes the aggregated dashboard for one client.
type DashboardSvcFacade interface {
	// ComputeDashboard aggregates the calendar year of asOf into monthly and
	// yearly summaries plus the single-day figures for asOf itself.
	// Aggregation is all-or-nothing: any unreadable collection fails the
	// whole request with apperrors.DataUnavailableError.
	ComputeDashboard(ctx context.Context, clientID string, asOf time.Time) (*domain.DashboardSummary, error)
}
