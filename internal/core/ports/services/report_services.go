package services

import (
	"context"
	"time"

	"github.com/richmill123/rice_mill_backend/internal/core/domain"
)

// ReportSvcFacade shapes record collections for display/export collaborators.
type ReportSvcFacade interface {
	// ComputeRange fetches one entity collection for the client and date
	// range, reconciled so derived fields are populated, and projects it into
	// a column/row table. Empty collections still carry the full column set.
	ComputeRange(ctx context.Context, clientID string, entity domain.EntityType, from, to time.Time) (*domain.ReportTable, error)
}
