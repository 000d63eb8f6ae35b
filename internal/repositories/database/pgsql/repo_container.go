package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/richmill123/rice_mill_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		OrderRepo:    newPgxOrderRepository(dbPool),
		WageRepo:     newPgxWageRepository(dbPool),
		SaleRepo:     newPgxSaleRepository(dbPool),
		ExpenseRepo:  newPgxExpenseRepository(dbPool),
		IncomeRepo:   newPgxIncomeRepository(dbPool),
		StockRepo:    newPgxStockRepository(dbPool),
		EmployeeRepo: newPgxEmployeeRepository(dbPool),
	}
}
