package services_test

import (
	"context"

	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, clientID, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, clientID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByClient(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Order, error) {
	args := m.Called(ctx, clientID, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteOrder(ctx context.Context, clientID, orderID string) error {
	args := m.Called(ctx, clientID, orderID)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateOrderStatus(ctx context.Context, clientID, orderID string, from, to domain.OrderStatus) (*domain.Order, error) {
	args := m.Called(ctx, clientID, orderID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

// --- Mock WageRepository ---
type MockWageRepository struct {
	mock.Mock
}

func (m *MockWageRepository) SaveWage(ctx context.Context, wage domain.Wage) error {
	args := m.Called(ctx, wage)
	return args.Error(0)
}

func (m *MockWageRepository) FindWageByID(ctx context.Context, clientID, wageID string) (*domain.Wage, error) {
	args := m.Called(ctx, clientID, wageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wage), args.Error(1)
}

func (m *MockWageRepository) ListWagesByClient(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Wage, error) {
	args := m.Called(ctx, clientID, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wage), args.Error(1)
}

func (m *MockWageRepository) UpdateWage(ctx context.Context, wage domain.Wage) error {
	args := m.Called(ctx, wage)
	return args.Error(0)
}

func (m *MockWageRepository) DeleteWage(ctx context.Context, clientID, wageID string) error {
	args := m.Called(ctx, clientID, wageID)
	return args.Error(0)
}

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, clientID, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, clientID, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSalesByClient(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Sale, error) {
	args := m.Called(ctx, clientID, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) DeleteSale(ctx context.Context, clientID, saleID string) error {
	args := m.Called(ctx, clientID, saleID)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, clientID, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, clientID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesByClient(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Expense, error) {
	args := m.Called(ctx, clientID, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, clientID, expenseID string) error {
	args := m.Called(ctx, clientID, expenseID)
	return args.Error(0)
}

// --- Mock IncomeRepository ---
type MockIncomeRepository struct {
	mock.Mock
}

func (m *MockIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	args := m.Called(ctx, income)
	return args.Error(0)
}

func (m *MockIncomeRepository) FindIncomeByID(ctx context.Context, clientID, incomeID string) (*domain.Income, error) {
	args := m.Called(ctx, clientID, incomeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}

func (m *MockIncomeRepository) ListIncomeByClient(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Income, error) {
	args := m.Called(ctx, clientID, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}

func (m *MockIncomeRepository) UpdateIncome(ctx context.Context, income domain.Income) error {
	args := m.Called(ctx, income)
	return args.Error(0)
}

func (m *MockIncomeRepository) DeleteIncome(ctx context.Context, clientID, incomeID string) error {
	args := m.Called(ctx, clientID, incomeID)
	return args.Error(0)
}

// --- Mock StockRepository ---
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) UpsertStock(ctx context.Context, stock domain.Stock) (*domain.Stock, error) {
	args := m.Called(ctx, stock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stock), args.Error(1)
}

func (m *MockStockRepository) FindStockByID(ctx context.Context, clientID, stockID string) (*domain.Stock, error) {
	args := m.Called(ctx, clientID, stockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stock), args.Error(1)
}

func (m *MockStockRepository) ListStockByClient(ctx context.Context, clientID string) ([]domain.Stock, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stock), args.Error(1)
}

func (m *MockStockRepository) DeleteStock(ctx context.Context, clientID, stockID string) error {
	args := m.Called(ctx, clientID, stockID)
	return args.Error(0)
}

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, clientID, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, clientID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployeesByClient(ctx context.Context, clientID string) ([]domain.Employee, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, clientID, employeeID string) error {
	args := m.Called(ctx, clientID, employeeID)
	return args.Error(0)
}
