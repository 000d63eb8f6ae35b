package domain_test

import (
	"testing"

	"github.com/richmill123/rice_mill_backend/internal/apperrors"
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		name    string
		from    domain.OrderStatus
		to      domain.OrderStatus
		allowed bool
	}{
		{"created to initial stocking", domain.OrderCreated, domain.OrderInitialStocking, true},
		{"initial stocking to boiling", domain.OrderInitialStocking, domain.OrderBoilingCompleted, true},
		{"boiling to splitting", domain.OrderBoilingCompleted, domain.OrderSplittingCompleted, true},
		{"splitting to packed", domain.OrderSplittingCompleted, domain.OrderPackedReady, true},
		{"packed to paid close", domain.OrderPackedReady, domain.OrderPaidClose, true},
		{"same status is a no-op", domain.OrderBoilingCompleted, domain.OrderBoilingCompleted, true},
		{"terminal same status is a no-op", domain.OrderPaidClose, domain.OrderPaidClose, true},
		{"skipping a stage", domain.OrderCreated, domain.OrderBoilingCompleted, false},
		{"skipping to terminal", domain.OrderCreated, domain.OrderPaidClose, false},
		{"backwards", domain.OrderPackedReady, domain.OrderSplittingCompleted, false},
		{"out of terminal", domain.OrderPaidClose, domain.OrderCreated, false},
		{"unknown target", domain.OrderCreated, domain.OrderStatus("SHIPPED"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order := domain.Order{Status: tc.from}
			err := order.CanTransition(tc.to)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrIllegalTransition)
			}
		})
	}
}

func TestCanTransitionUnknownCurrentStatus(t *testing.T) {
	order := domain.Order{Status: domain.OrderStatus("LIMBO")}
	err := order.CanTransition(domain.OrderCreated)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrIllegalTransition)
}

func TestOrderStatusesOrdering(t *testing.T) {
	statuses := domain.OrderStatuses()
	require.Len(t, statuses, 6)
	assert.Equal(t, domain.OrderCreated, statuses[0])
	assert.Equal(t, domain.OrderPaidClose, statuses[len(statuses)-1])
	for _, s := range statuses {
		assert.True(t, s.IsValid())
	}
	assert.True(t, domain.OrderPaidClose.IsTerminal())
	assert.False(t, domain.OrderPackedReady.IsTerminal())
}
