package services_test

import (
	"testing"

	"github.com/richmill123/rice_mill_backend/internal/apperrors"
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/richmill123/rice_mill_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func validOrder() domain.Order {
	return domain.Order{
		NumberOfBags: 10,
		TotalAmount:  dec("5000"),
		Status:       domain.OrderCreated,
	}
}

func TestReconcileOrder(t *testing.T) {
	t.Run("valid order passes unchanged", func(t *testing.T) {
		o, err := services.ReconcileOrder(validOrder())
		require.NoError(t, err)
		assert.Equal(t, 10, o.NumberOfBags)
	})

	t.Run("zero bags rejected", func(t *testing.T) {
		o := validOrder()
		o.NumberOfBags = 0
		_, err := services.ReconcileOrder(o)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("advance above total rejected", func(t *testing.T) {
		o := validOrder()
		o.AdvanceAmount = dec("5000.01")
		_, err := services.ReconcileOrder(o)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("advance equal to total allowed", func(t *testing.T) {
		o := validOrder()
		o.AdvanceAmount = dec("5000")
		_, err := services.ReconcileOrder(o)
		assert.NoError(t, err)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		o := validOrder()
		o.Status = domain.OrderStatus("SHIPPED")
		_, err := services.ReconcileOrder(o)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestReconcileWage(t *testing.T) {
	t.Run("pending amount derived", func(t *testing.T) {
		w, err := services.ReconcileWage(domain.Wage{
			TotalWage:   dec("1000"),
			AdvanceWage: dec("300"),
			AdvanceDebt: dec("150"),
		})
		require.NoError(t, err)
		assert.True(t, w.PendingAmount.Equal(dec("550")), "got %s", w.PendingAmount)
	})

	t.Run("negative pending is surfaced, not clamped", func(t *testing.T) {
		w, err := services.ReconcileWage(domain.Wage{
			TotalWage:   dec("500"),
			AdvanceWage: dec("400"),
			AdvanceDebt: dec("200"),
		})
		require.NoError(t, err)
		assert.True(t, w.PendingAmount.Equal(dec("-100")), "got %s", w.PendingAmount)
	})

	t.Run("advance above total rejected", func(t *testing.T) {
		_, err := services.ReconcileWage(domain.Wage{
			TotalWage:   dec("500"),
			AdvanceWage: dec("501"),
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("negative bags rejected", func(t *testing.T) {
		_, err := services.ReconcileWage(domain.Wage{
			TotalWage: dec("500"),
			Bags:      -1,
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestReconcileSale(t *testing.T) {
	t.Run("amounts recomputed from quantity and rate", func(t *testing.T) {
		s, err := services.ReconcileSale(domain.Sale{
			Items: []domain.SaleItem{
				{ItemType: domain.ItemBran, Quantity: dec("10"), Rate: dec("25.50"), Amount: dec("999")},
				{ItemType: domain.ItemHusk, Quantity: dec("4"), Rate: dec("12")},
			},
		})
		require.NoError(t, err)
		assert.True(t, s.Items[0].Amount.Equal(dec("255")), "stored amount must be ignored, got %s", s.Items[0].Amount)
		assert.True(t, s.Items[1].Amount.Equal(dec("48")))
		assert.True(t, s.TotalAmount.Equal(dec("303")))
	})

	t.Run("reconciliation is idempotent", func(t *testing.T) {
		once, err := services.ReconcileSale(domain.Sale{
			Items: []domain.SaleItem{
				{ItemType: domain.ItemBran, Quantity: dec("3"), Rate: dec("7")},
			},
		})
		require.NoError(t, err)
		twice, err := services.ReconcileSale(once)
		require.NoError(t, err)
		assert.True(t, once.TotalAmount.Equal(twice.TotalAmount))
		assert.True(t, once.Items[0].Amount.Equal(twice.Items[0].Amount))
	})

	t.Run("empty item list totals zero", func(t *testing.T) {
		s, err := services.ReconcileSale(domain.Sale{})
		require.NoError(t, err)
		assert.True(t, s.TotalAmount.IsZero())
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		_, err := services.ReconcileSale(domain.Sale{
			Items: []domain.SaleItem{{Quantity: dec("-1"), Rate: dec("5")}},
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestReconcileEmployee(t *testing.T) {
	t.Run("pending salary derived", func(t *testing.T) {
		e, err := services.ReconcileEmployee(domain.Employee{
			Salary:     dec("12000"),
			DebtAmount: dec("2000"),
		})
		require.NoError(t, err)
		assert.True(t, e.PendingSalary.Equal(dec("10000")))
	})

	t.Run("pending salary clamped at zero", func(t *testing.T) {
		e, err := services.ReconcileEmployee(domain.Employee{
			Salary:     dec("1000"),
			DebtAmount: dec("1500"),
		})
		require.NoError(t, err)
		assert.True(t, e.PendingSalary.IsZero())
	})
}

func TestReconcileStock(t *testing.T) {
	t.Run("empty item type rejected", func(t *testing.T) {
		_, err := services.ReconcileStock(domain.Stock{AvailableQuantity: dec("5")})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		_, err := services.ReconcileStock(domain.Stock{ItemType: "bran", AvailableQuantity: dec("-1")})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestReconcileExpenseAndIncome(t *testing.T) {
	_, err := services.ReconcileExpense(domain.Expense{Amount: dec("-5")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = services.ReconcileIncome(domain.Income{Amount: dec("-5")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = services.ReconcileExpense(domain.Expense{Amount: dec("0")})
	assert.NoError(t, err)
}
