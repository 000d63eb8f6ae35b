package services

import (
	portsrepo "github.com/richmill123/rice_mill_backend/internal/core/ports/repositories"
	portssvc "github.com/richmill123/rice_mill_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Order:     NewOrderService(repos.OrderRepo),
		Wage:      NewWageService(repos.WageRepo),
		Sale:      NewSaleService(repos.SaleRepo),
		Expense:   NewExpenseService(repos.ExpenseRepo),
		Income:    NewIncomeService(repos.IncomeRepo),
		Stock:     NewStockService(repos.StockRepo),
		Employee:  NewEmployeeService(repos.EmployeeRepo),
		Dashboard: NewDashboardService(repos),
		Report:    NewReportService(repos),
	}
}
