package services

import (
	"strconv"

	"github.com/richmill123/rice_mill_backend/internal/apperrors"
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Reconciliation rules: pure functions, one per entity type, each validating
// the entity's invariants and returning a copy annotated with derived fields.
// Violations come back as apperrors.ValidationError and are never silently
// corrected.

// ReconcileOrder validates an order. Orders have no derived fields.
func ReconcileOrder(o domain.Order) (domain.Order, error) {
	if o.NumberOfBags <= 0 {
		return o, apperrors.NewValidationError("order", "numberOfBags", "must be positive", intString(o.NumberOfBags))
	}
	if o.TotalAmount.IsNegative() {
		return o, apperrors.NewValidationError("order", "totalAmount", "must not be negative", o.TotalAmount.String())
	}
	if o.AdvanceAmount.IsNegative() {
		return o, apperrors.NewValidationError("order", "advanceAmount", "must not be negative", o.AdvanceAmount.String())
	}
	if o.AdvanceAmount.GreaterThan(o.TotalAmount) {
		return o, apperrors.NewValidationError("order", "advanceAmount", "must not exceed totalAmount", o.AdvanceAmount.String())
	}
	if !o.Status.IsValid() {
		return o, apperrors.NewValidationError("order", "status", "unknown status", string(o.Status))
	}
	return o, nil
}

// ReconcileWage validates a wage entry and derives its pending amount:
// pendingAmount = totalWage - advanceWage - advanceDebt. A negative result
// signals over-advancement and is surfaced, not clamped.
func ReconcileWage(w domain.Wage) (domain.Wage, error) {
	if w.TotalWage.IsNegative() {
		return w, apperrors.NewValidationError("wage", "totalWage", "must not be negative", w.TotalWage.String())
	}
	if w.AdvanceWage.IsNegative() {
		return w, apperrors.NewValidationError("wage", "advanceWage", "must not be negative", w.AdvanceWage.String())
	}
	if w.AdvanceWage.GreaterThan(w.TotalWage) {
		return w, apperrors.NewValidationError("wage", "advanceWage", "must not exceed totalWage", w.AdvanceWage.String())
	}
	if w.Bags < 0 {
		return w, apperrors.NewValidationError("wage", "bags", "must not be negative", intString(w.Bags))
	}
	w.PendingAmount = w.TotalWage.Sub(w.AdvanceWage).Sub(w.AdvanceDebt)
	return w, nil
}

// ReconcileSale validates a sale and recomputes every line-item amount from
// quantity x rate, ignoring whatever amount was stored, then recomputes the
// total as the sum of items. The recomputation is authoritative.
func ReconcileSale(s domain.Sale) (domain.Sale, error) {
	items := make([]domain.SaleItem, len(s.Items))
	total := decimal.Zero
	for i, item := range s.Items {
		if item.Quantity.IsNegative() {
			return s, apperrors.NewValidationError("sale", "items.quantity", "must not be negative", item.Quantity.String())
		}
		if item.Rate.IsNegative() {
			return s, apperrors.NewValidationError("sale", "items.rate", "must not be negative", item.Rate.String())
		}
		item.Amount = item.Quantity.Mul(item.Rate)
		items[i] = item
		total = total.Add(item.Amount)
	}
	s.Items = items
	s.TotalAmount = total
	return s, nil
}

// ReconcileExpense validates an expense. Expenses have no derived fields.
func ReconcileExpense(e domain.Expense) (domain.Expense, error) {
	if e.Amount.IsNegative() {
		return e, apperrors.NewValidationError("expense", "amount", "must not be negative", e.Amount.String())
	}
	return e, nil
}

// ReconcileIncome validates an income entry. Income has no derived fields.
func ReconcileIncome(in domain.Income) (domain.Income, error) {
	if in.Amount.IsNegative() {
		return in, apperrors.NewValidationError("income", "amount", "must not be negative", in.Amount.String())
	}
	return in, nil
}

// ReconcileStock validates a stock snapshot entry.
func ReconcileStock(st domain.Stock) (domain.Stock, error) {
	if st.ItemType == "" {
		return st, apperrors.NewValidationError("stock", "itemType", "must not be empty", "")
	}
	if st.AvailableQuantity.IsNegative() {
		return st, apperrors.NewValidationError("stock", "availableQuantity", "must not be negative", st.AvailableQuantity.String())
	}
	return st, nil
}

// ReconcileEmployee validates an employee and derives the pending salary:
// pendingSalary = max(0, salary - debtAmount).
func ReconcileEmployee(e domain.Employee) (domain.Employee, error) {
	if e.Salary.IsNegative() {
		return e, apperrors.NewValidationError("employee", "salary", "must not be negative", e.Salary.String())
	}
	if e.DebtAmount.IsNegative() {
		return e, apperrors.NewValidationError("employee", "debtAmount", "must not be negative", e.DebtAmount.String())
	}
	pending := e.Salary.Sub(e.DebtAmount)
	if pending.IsNegative() {
		pending = decimal.Zero
	}
	e.PendingSalary = pending
	return e, nil
}

func intString(n int) string {
	return strconv.Itoa(n)
}
