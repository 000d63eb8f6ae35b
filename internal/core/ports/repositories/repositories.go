package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	OrderRepo    OrderRepository
	WageRepo     WageRepository
	SaleRepo     SaleRepository
	ExpenseRepo  ExpenseRepository
	IncomeRepo   IncomeRepository
	StockRepo    StockRepository
	EmployeeRepo EmployeeRepository
}
