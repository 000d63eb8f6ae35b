package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/richmill123/rice_mill_backend/internal/apperrors"
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	portsrepo "github.com/richmill123/rice_mill_backend/internal/core/ports/repositories"
	portssvc "github.com/richmill123/rice_mill_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// dashboardService implements the DashboardSvcFacade interface. It is the
// aggregation engine: it pulls the transactional collections for one client,
// applies the reconciliation rules, and rolls the records up into monthly,
// yearly and single-day summaries.
type dashboardService struct {
	BaseService
	orderRepo    portsrepo.OrderRepository
	saleRepo     portsrepo.SaleRepository
	wageRepo     portsrepo.WageRepository
	expenseRepo  portsrepo.ExpenseRepository
	incomeRepo   portsrepo.IncomeRepository
	stockRepo    portsrepo.StockRepository
	employeeRepo portsrepo.EmployeeRepository
}

// NewDashboardService creates a new dashboard service over the full set of
// entity repositories.
func NewDashboardService(repos portsrepo.RepositoryProvider) portssvc.DashboardSvcFacade {
	return &dashboardService{
		orderRepo:    repos.OrderRepo,
		saleRepo:     repos.SaleRepo,
		wageRepo:     repos.WageRepo,
		expenseRepo:  repos.ExpenseRepo,
		incomeRepo:   repos.IncomeRepo,
		stockRepo:    repos.StockRepo,
		employeeRepo: repos.EmployeeRepo,
	}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// ComputeDashboard aggregates the calendar year of asOf for the client.
// Any unreadable collection aborts the whole request with
// apperrors.DataUnavailableError; partial summaries are never returned.
func (s *dashboardService) ComputeDashboard(ctx context.Context, clientID string, asOf time.Time) (*domain.DashboardSummary, error) {
	year := asOf.Year()
	yearRange := &domain.DateRange{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}

	// Orders are fetched unranged: the today summary and the paddy counters
	// look across the whole order book, not just this year.
	orders, err := s.orderRepo.ListOrdersByClient(ctx, clientID, nil)
	if err != nil {
		return nil, s.unavailable(ctx, "orders", err)
	}
	sales, err := s.saleRepo.ListSalesByClient(ctx, clientID, yearRange)
	if err != nil {
		return nil, s.unavailable(ctx, "sales", err)
	}
	wages, err := s.wageRepo.ListWagesByClient(ctx, clientID, yearRange)
	if err != nil {
		return nil, s.unavailable(ctx, "wages", err)
	}
	expenses, err := s.expenseRepo.ListExpensesByClient(ctx, clientID, yearRange)
	if err != nil {
		return nil, s.unavailable(ctx, "expenses", err)
	}
	income, err := s.incomeRepo.ListIncomeByClient(ctx, clientID, yearRange)
	if err != nil {
		return nil, s.unavailable(ctx, "income", err)
	}
	stocks, err := s.stockRepo.ListStockByClient(ctx, clientID)
	if err != nil {
		return nil, s.unavailable(ctx, "stock", err)
	}
	employees, err := s.employeeRepo.ListEmployeesByClient(ctx, clientID)
	if err != nil {
		return nil, s.unavailable(ctx, "employees", err)
	}

	for i, o := range orders {
		if orders[i], err = ReconcileOrder(o); err != nil {
			return nil, err
		}
	}
	for i, sl := range sales {
		if sales[i], err = ReconcileSale(sl); err != nil {
			return nil, err
		}
	}
	for i, w := range wages {
		if wages[i], err = ReconcileWage(w); err != nil {
			return nil, err
		}
	}
	for i, e := range expenses {
		if expenses[i], err = ReconcileExpense(e); err != nil {
			return nil, err
		}
	}
	for i, in := range income {
		if income[i], err = ReconcileIncome(in); err != nil {
			return nil, err
		}
	}
	for i, e := range employees {
		if employees[i], err = ReconcileEmployee(e); err != nil {
			return nil, err
		}
	}

	months := aggregateMonths(year, orders, sales, wages, expenses, income, employees)

	summary := &domain.DashboardSummary{
		Today:          todaySummary(orders, asOf),
		PaddyProcessed: paddyProcessed(orders),
		OrderStatuses:  orderStatusSummary(orders),
		Stock:          stockSnapshot(stocks),
		Yearly: domain.YearSummary{
			Year:   year,
			Months: months,
		},
	}

	// Top-level figures are the year aggregate over the twelve months.
	yearRevenue := zeroRevenue()
	yearExpense := zeroExpense()
	yearSales := domain.SalesBreakdown{ByItemType: map[domain.SaleItemType]domain.AmountQuantity{}}
	for _, m := range months {
		yearRevenue.Orders = yearRevenue.Orders.Add(m.Revenue.Orders)
		yearRevenue.Sales = yearRevenue.Sales.Add(m.Revenue.Sales)
		yearRevenue.Income = yearRevenue.Income.Add(m.Revenue.Income)
		yearRevenue.Total = yearRevenue.Total.Add(m.Revenue.Total)
		yearExpense.Wages = yearExpense.Wages.Add(m.Expense.Wages)
		yearExpense.Salary = yearExpense.Salary.Add(m.Expense.Salary)
		yearExpense.Other = yearExpense.Other.Add(m.Expense.Other)
		yearExpense.Total = yearExpense.Total.Add(m.Expense.Total)
		for itemType, aq := range m.Sales.ByItemType {
			merged := yearSales.ByItemType[itemType]
			merged.Quantity = merged.Quantity.Add(aq.Quantity)
			merged.Amount = merged.Amount.Add(aq.Amount)
			yearSales.ByItemType[itemType] = merged
		}
	}
	summary.Revenue = yearRevenue
	summary.Expense = yearExpense
	summary.Profit = yearRevenue.Total.Sub(yearExpense.Total)
	summary.Sales = yearSales

	s.LogInfo(ctx, "Dashboard computed",
		slog.String("client_id", clientID),
		slog.Int("year", year),
		slog.Int("orders", len(orders)),
		slog.Int("sales", len(sales)))
	return summary, nil
}

func (s *dashboardService) unavailable(ctx context.Context, collection string, err error) error {
	s.LogError(ctx, err, "Entity collection unavailable", slog.String("collection", collection))
	return &apperrors.DataUnavailableError{Collection: collection, Err: err}
}

func zeroRevenue() domain.RevenueSummary {
	return domain.RevenueSummary{
		Orders: decimal.Zero,
		Sales:  decimal.Zero,
		Income: decimal.Zero,
		Total:  decimal.Zero,
	}
}

func zeroExpense() domain.ExpenseSummary {
	return domain.ExpenseSummary{
		Wages:  decimal.Zero,
		Salary: decimal.Zero,
		Other:  decimal.Zero,
		Total:  decimal.Zero,
	}
}

// aggregateMonths groups the reconciled records of one calendar year by
// month. Every month 1-12 is present; a month without activity is a valid
// all-zero summary. All sums are exact decimal additions.
func aggregateMonths(year int, orders []domain.Order, sales []domain.Sale, wages []domain.Wage, expenses []domain.Expense, income []domain.Income, employees []domain.Employee) []domain.MonthSummary {
	months := make([]domain.MonthSummary, 12)
	for i := range months {
		months[i] = domain.MonthSummary{
			Month:   i + 1,
			Revenue: zeroRevenue(),
			Expense: zeroExpense(),
			Profit:  decimal.Zero,
			Sales:   domain.SalesBreakdown{ByItemType: map[domain.SaleItemType]domain.AmountQuantity{}},
		}
	}

	monthOf := func(t time.Time) int {
		if t.Year() != year {
			return -1
		}
		return int(t.Month()) - 1
	}

	for _, o := range orders {
		if m := monthOf(o.CreatedAt); m >= 0 {
			months[m].Revenue.Orders = months[m].Revenue.Orders.Add(o.TotalAmount)
		}
	}
	for _, sl := range sales {
		m := monthOf(sl.CreatedAt)
		if m < 0 {
			continue
		}
		months[m].Revenue.Sales = months[m].Revenue.Sales.Add(sl.TotalAmount)
		for _, item := range sl.Items {
			aq := months[m].Sales.ByItemType[item.ItemType]
			aq.Quantity = aq.Quantity.Add(item.Quantity)
			aq.Amount = aq.Amount.Add(item.Amount)
			months[m].Sales.ByItemType[item.ItemType] = aq
		}
	}
	for _, in := range income {
		if m := monthOf(in.Date); m >= 0 {
			months[m].Revenue.Income = months[m].Revenue.Income.Add(in.Amount)
		}
	}
	for _, w := range wages {
		// Gross labor cost: totalWage, independent of advance or debt status.
		if m := monthOf(w.Date); m >= 0 {
			months[m].Expense.Wages = months[m].Expense.Wages.Add(w.TotalWage)
		}
	}
	for _, e := range expenses {
		if m := monthOf(e.Date); m >= 0 {
			months[m].Expense.Other = months[m].Expense.Other.Add(e.Amount)
		}
	}

	// Salary is a monthly figure: the full salary bill is attributed to each
	// month, not pro-rated.
	salaryBill := decimal.Zero
	for _, e := range employees {
		salaryBill = salaryBill.Add(e.Salary)
	}

	for i := range months {
		months[i].Expense.Salary = salaryBill
		months[i].Revenue.Total = months[i].Revenue.Orders.
			Add(months[i].Revenue.Sales).
			Add(months[i].Revenue.Income)
		months[i].Expense.Total = months[i].Expense.Wages.
			Add(months[i].Expense.Salary).
			Add(months[i].Expense.Other)
		months[i].Profit = months[i].Revenue.Total.Sub(months[i].Expense.Total)
	}
	return months
}

// todaySummary collapses the range to the single day of asOf.
func todaySummary(orders []domain.Order, asOf time.Time) domain.TodaySummary {
	day := domain.DayOf(asOf)
	var t domain.TodaySummary
	for _, o := range orders {
		created := domain.DayOf(o.CreatedAt)
		switch {
		case created.Equal(day):
			t.NewOrder++
			t.PaddyTaken += o.NumberOfBags
		case created.Before(day) && !o.Status.IsTerminal():
			t.TotalOrder++
		}
	}
	t.Output = t.TotalOrder + t.NewOrder
	return t
}

func paddyProcessed(orders []domain.Order) domain.PaddyProcessed {
	var p domain.PaddyProcessed
	for _, o := range orders {
		p.TotalBags += o.NumberOfBags
		if o.Status.IsTerminal() {
			p.PaidBags += o.NumberOfBags
		}
	}
	return p
}

func orderStatusSummary(orders []domain.Order) domain.OrderStatusSummary {
	var s domain.OrderStatusSummary
	for _, o := range orders {
		switch o.Status {
		case domain.OrderInitialStocking:
			s.InitialStocking.Count++
			s.InitialStocking.TotalBags += o.NumberOfBags
		case domain.OrderBoilingCompleted:
			s.BoilingCompleted.Count++
			s.BoilingCompleted.TotalBags += o.NumberOfBags
		case domain.OrderSplittingCompleted:
			s.SplittingCompleted.Count++
			s.SplittingCompleted.TotalBags += o.NumberOfBags
		case domain.OrderPackedReady:
			s.PackedReady.Count++
			s.PackedReady.TotalBags += o.NumberOfBags
		}
	}
	return s
}

// stockSnapshot passes the current availability through untouched; stock is
// never aggregated over time.
func stockSnapshot(stocks []domain.Stock) domain.StockSnapshot {
	snapshot := domain.StockSnapshot{Available: make(map[string]decimal.Decimal, len(stocks))}
	for _, st := range stocks {
		snapshot.Available[st.ItemType] = st.AvailableQuantity
	}
	return snapshot
}
