package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/richmill123/rice_mill_backend/internal/apperrors"
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	portsrepo "github.com/richmill123/rice_mill_backend/internal/core/ports/repositories"
	portssvc "github.com/richmill123/rice_mill_backend/internal/core/ports/services"
	"github.com/richmill123/rice_mill_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	orderRepo    *MockOrderRepository
	saleRepo     *MockSaleRepository
	wageRepo     *MockWageRepository
	expenseRepo  *MockExpenseRepository
	incomeRepo   *MockIncomeRepository
	stockRepo    *MockStockRepository
	employeeRepo *MockEmployeeRepository
	service      portssvc.DashboardSvcFacade
	ctx          context.Context
	clientID     string
	asOf         time.Time
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.orderRepo = new(MockOrderRepository)
	suite.saleRepo = new(MockSaleRepository)
	suite.wageRepo = new(MockWageRepository)
	suite.expenseRepo = new(MockExpenseRepository)
	suite.incomeRepo = new(MockIncomeRepository)
	suite.stockRepo = new(MockStockRepository)
	suite.employeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewDashboardService(portsrepo.RepositoryProvider{
		OrderRepo:    suite.orderRepo,
		SaleRepo:     suite.saleRepo,
		WageRepo:     suite.wageRepo,
		ExpenseRepo:  suite.expenseRepo,
		IncomeRepo:   suite.incomeRepo,
		StockRepo:    suite.stockRepo,
		EmployeeRepo: suite.employeeRepo,
	})
	suite.ctx = context.Background()
	suite.clientID = "client-1"
	suite.asOf = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
}

func (suite *DashboardServiceTestSuite) expectCollections(
	orders []domain.Order, sales []domain.Sale, wages []domain.Wage,
	expenses []domain.Expense, income []domain.Income,
	stocks []domain.Stock, employees []domain.Employee,
) {
	suite.orderRepo.On("ListOrdersByClient", suite.ctx, suite.clientID, (*domain.DateRange)(nil)).Return(orders, nil).Once()
	suite.saleRepo.On("ListSalesByClient", suite.ctx, suite.clientID, mock.Anything).Return(sales, nil).Once()
	suite.wageRepo.On("ListWagesByClient", suite.ctx, suite.clientID, mock.Anything).Return(wages, nil).Once()
	suite.expenseRepo.On("ListExpensesByClient", suite.ctx, suite.clientID, mock.Anything).Return(expenses, nil).Once()
	suite.incomeRepo.On("ListIncomeByClient", suite.ctx, suite.clientID, mock.Anything).Return(income, nil).Once()
	suite.stockRepo.On("ListStockByClient", suite.ctx, suite.clientID).Return(stocks, nil).Once()
	suite.employeeRepo.On("ListEmployeesByClient", suite.ctx, suite.clientID).Return(employees, nil).Once()
}

func (suite *DashboardServiceTestSuite) TestComputeDashboardAggregatesYear() {
	march := time.Date(2025, time.March, 5, 8, 0, 0, 0, time.UTC)

	orders := []domain.Order{{
		OrderID:      "order-1",
		ClientID:     suite.clientID,
		Name:         "Raju",
		TypeOfPaddy:  "sona masoori",
		NumberOfBags: 40,
		TotalAmount:  dec("10000"),
		Status:       domain.OrderInitialStocking,
		AuditFields:  domain.AuditFields{CreatedAt: march, LastUpdatedAt: march},
	}}
	sales := []domain.Sale{{
		SaleID:   "sale-1",
		ClientID: suite.clientID,
		Items: []domain.SaleItem{
			{ItemType: domain.ItemBran, Quantity: dec("10"), Rate: dec("25")},
		},
		AuditFields: domain.AuditFields{CreatedAt: march, LastUpdatedAt: march},
	}}
	wages := []domain.Wage{{
		WageID:    "wage-1",
		ClientID:  suite.clientID,
		TotalWage: dec("1000"),
		Date:      march,
	}}
	expenses := []domain.Expense{{
		ExpenseID: "expense-1",
		ClientID:  suite.clientID,
		Item:      "diesel",
		Amount:    dec("300"),
		Date:      march,
	}}
	income := []domain.Income{{
		IncomeID: "income-1",
		ClientID: suite.clientID,
		Item:     "gunny bags",
		Amount:   dec("500"),
		Date:     march,
	}}
	stocks := []domain.Stock{{
		StockID:           "stock-1",
		ClientID:          suite.clientID,
		ItemType:          "bran",
		AvailableQuantity: dec("55"),
	}}
	employees := []domain.Employee{{
		EmployeeID: "emp-1",
		ClientID:   suite.clientID,
		Name:       "Siva",
		Salary:     dec("1200"),
	}}

	suite.expectCollections(orders, sales, wages, expenses, income, stocks, employees)

	summary, err := suite.service.ComputeDashboard(suite.ctx, suite.clientID, suite.asOf)

	suite.Require().NoError(err)
	suite.Require().Len(summary.Yearly.Months, 12)
	suite.Equal(2025, summary.Yearly.Year)

	march2025 := summary.Yearly.Months[2]
	suite.Equal(3, march2025.Month)
	suite.True(march2025.Revenue.Orders.Equal(dec("10000")))
	suite.True(march2025.Revenue.Sales.Equal(dec("250")), "sale amounts recomputed from quantity x rate, got %s", march2025.Revenue.Sales)
	suite.True(march2025.Revenue.Income.Equal(dec("500")))
	suite.True(march2025.Revenue.Total.Equal(dec("10750")))
	suite.True(march2025.Expense.Wages.Equal(dec("1000")))
	suite.True(march2025.Expense.Salary.Equal(dec("1200")))
	suite.True(march2025.Expense.Other.Equal(dec("300")))
	suite.True(march2025.Expense.Total.Equal(dec("2500")))
	suite.True(march2025.Profit.Equal(dec("8250")))

	// Salary is a full monthly bill in every month, so the year carries 12x.
	suite.True(summary.Expense.Salary.Equal(dec("14400")))
	suite.True(summary.Revenue.Total.Equal(dec("10750")))
	suite.True(summary.Expense.Total.Equal(dec("15700")))
	suite.True(summary.Profit.Equal(dec("-4950")))

	bran := summary.Sales.ByItemType[domain.ItemBran]
	suite.True(bran.Quantity.Equal(dec("10")))
	suite.True(bran.Amount.Equal(dec("250")))

	suite.True(summary.Stock.Available["bran"].Equal(dec("55")))
	suite.Equal(1, summary.OrderStatuses.InitialStocking.Count)
	suite.Equal(40, summary.OrderStatuses.InitialStocking.TotalBags)
	suite.Equal(40, summary.PaddyProcessed.TotalBags)
	suite.Equal(0, summary.PaddyProcessed.PaidBags)
}

func (suite *DashboardServiceTestSuite) TestComputeDashboardSingleMonthTotals() {
	march := time.Date(2025, time.March, 8, 9, 0, 0, 0, time.UTC)

	orders := []domain.Order{{
		OrderID:      "order-1",
		NumberOfBags: 25,
		TotalAmount:  dec("10000"),
		Status:       domain.OrderCreated,
		AuditFields:  domain.AuditFields{CreatedAt: march, LastUpdatedAt: march},
	}}
	sales := []domain.Sale{{
		SaleID: "sale-1",
		Items: []domain.SaleItem{
			{ItemType: domain.ItemHusk, Quantity: dec("100"), Rate: dec("20")},
		},
		AuditFields: domain.AuditFields{CreatedAt: march, LastUpdatedAt: march},
	}}
	wages := []domain.Wage{{WageID: "wage-1", TotalWage: dec("1500"), Date: march}}
	expenses := []domain.Expense{{ExpenseID: "expense-1", Item: "repairs", Amount: dec("500"), Date: march}}

	suite.expectCollections(orders, sales, wages, expenses, nil, nil, nil)

	summary, err := suite.service.ComputeDashboard(suite.ctx, suite.clientID, suite.asOf)

	suite.Require().NoError(err)
	march2025 := summary.Yearly.Months[2]
	suite.True(march2025.Revenue.Total.Equal(dec("12000")))
	suite.True(march2025.Expense.Total.Equal(dec("2000")))
	suite.True(march2025.Profit.Equal(dec("10000")))
}

func (suite *DashboardServiceTestSuite) TestComputeDashboardEmptyCollections() {
	suite.expectCollections(nil, nil, nil, nil, nil, nil, nil)

	summary, err := suite.service.ComputeDashboard(suite.ctx, suite.clientID, suite.asOf)

	suite.Require().NoError(err)
	suite.Require().Len(summary.Yearly.Months, 12)
	for i, m := range summary.Yearly.Months {
		suite.Equal(i+1, m.Month)
		suite.True(m.Revenue.Total.IsZero())
		suite.True(m.Expense.Total.IsZero())
		suite.True(m.Profit.IsZero())
	}
	suite.True(summary.Profit.IsZero())
	suite.Equal(0, summary.Today.NewOrder)
}

func (suite *DashboardServiceTestSuite) TestComputeDashboardTodaySummary() {
	today := suite.asOf
	yesterday := suite.asOf.AddDate(0, 0, -1)

	orders := []domain.Order{
		{
			OrderID:      "order-today",
			NumberOfBags: 15,
			TotalAmount:  dec("5000"),
			Status:       domain.OrderCreated,
			AuditFields:  domain.AuditFields{CreatedAt: today, LastUpdatedAt: today},
		},
		{
			OrderID:      "order-open",
			NumberOfBags: 20,
			TotalAmount:  dec("8000"),
			Status:       domain.OrderPackedReady,
			AuditFields:  domain.AuditFields{CreatedAt: yesterday, LastUpdatedAt: yesterday},
		},
		{
			OrderID:      "order-closed",
			NumberOfBags: 30,
			TotalAmount:  dec("9000"),
			Status:       domain.OrderPaidClose,
			AuditFields:  domain.AuditFields{CreatedAt: yesterday, LastUpdatedAt: yesterday},
		},
	}

	suite.expectCollections(orders, nil, nil, nil, nil, nil, nil)

	summary, err := suite.service.ComputeDashboard(suite.ctx, suite.clientID, suite.asOf)

	suite.Require().NoError(err)
	suite.Equal(1, summary.Today.NewOrder)
	suite.Equal(15, summary.Today.PaddyTaken)
	suite.Equal(1, summary.Today.TotalOrder, "closed orders do not count as open")
	suite.Equal(2, summary.Today.Output)
	suite.Equal(30, summary.PaddyProcessed.PaidBags)
}

func (suite *DashboardServiceTestSuite) TestComputeDashboardUnavailableCollection() {
	suite.orderRepo.On("ListOrdersByClient", suite.ctx, suite.clientID, (*domain.DateRange)(nil)).Return([]domain.Order{}, nil).Once()
	suite.saleRepo.On("ListSalesByClient", suite.ctx, suite.clientID, mock.Anything).Return(nil, errors.New("connection reset")).Once()

	_, err := suite.service.ComputeDashboard(suite.ctx, suite.clientID, suite.asOf)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDataUnavailable)
	var unavailable *apperrors.DataUnavailableError
	suite.Require().ErrorAs(err, &unavailable)
	suite.Equal("sales", unavailable.Collection)
	suite.wageRepo.AssertNotCalled(suite.T(), "ListWagesByClient", mock.Anything, mock.Anything, mock.Anything)
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
