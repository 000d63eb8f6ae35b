package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/richmill123/rice_mill_backend/internal/apperrors"
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	portsrepo "github.com/richmill123/rice_mill_backend/internal/core/ports/repositories"
	portssvc "github.com/richmill123/rice_mill_backend/internal/core/ports/services"
	"github.com/richmill123/rice_mill_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestReportColumns(t *testing.T) {
	t.Run("stock columns carry humanized headers", func(t *testing.T) {
		columns, err := services.ReportColumns(domain.EntityStock)
		require.NoError(t, err)
		require.Len(t, columns, 3)
		assert.Equal(t, "Item Type", columns[0].DisplayName)
		assert.Equal(t, "itemType", columns[0].FieldKey)
		assert.Equal(t, "Available Quantity", columns[1].DisplayName)
		assert.Equal(t, "Updated At", columns[2].DisplayName)
	})

	t.Run("identity fields are not reportable columns", func(t *testing.T) {
		columns, err := services.ReportColumns(domain.EntityOrder)
		require.NoError(t, err)
		for _, c := range columns {
			assert.NotEqual(t, "orderID", c.FieldKey)
			assert.NotEqual(t, "clientID", c.FieldKey)
		}
	})

	t.Run("unknown entity rejected", func(t *testing.T) {
		_, err := services.ReportColumns(domain.EntityType("machine"))
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

type ReportServiceTestSuite struct {
	suite.Suite
	orderRepo   *MockOrderRepository
	wageRepo    *MockWageRepository
	saleRepo    *MockSaleRepository
	expenseRepo *MockExpenseRepository
	incomeRepo  *MockIncomeRepository
	stockRepo   *MockStockRepository
	service     portssvc.ReportSvcFacade
	ctx         context.Context
	clientID    string
	from        time.Time
	to          time.Time
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.orderRepo = new(MockOrderRepository)
	suite.wageRepo = new(MockWageRepository)
	suite.saleRepo = new(MockSaleRepository)
	suite.expenseRepo = new(MockExpenseRepository)
	suite.incomeRepo = new(MockIncomeRepository)
	suite.stockRepo = new(MockStockRepository)
	suite.service = services.NewReportService(portsrepo.RepositoryProvider{
		OrderRepo:   suite.orderRepo,
		WageRepo:    suite.wageRepo,
		SaleRepo:    suite.saleRepo,
		ExpenseRepo: suite.expenseRepo,
		IncomeRepo:  suite.incomeRepo,
		StockRepo:   suite.stockRepo,
	})
	suite.ctx = context.Background()
	suite.clientID = "client-1"
	suite.from = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
}

func (suite *ReportServiceTestSuite) TestComputeRangeWages() {
	date := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)
	wages := []domain.Wage{{
		WageID:       "wage-1",
		ClientID:     suite.clientID,
		EmployeeName: "Siva",
		TotalWage:    dec("1000"),
		AdvanceWage:  dec("300"),
		AdvanceDebt:  dec("150"),
		TypeOfWork:   domain.WorkBoiling,
		Date:         date,
	}}

	suite.wageRepo.On("ListWagesByClient", suite.ctx, suite.clientID, mock.MatchedBy(func(r *domain.DateRange) bool {
		return r != nil && r.Start.Equal(suite.from) && r.End.Equal(suite.to)
	})).Return(wages, nil).Once()

	table, err := suite.service.ComputeRange(suite.ctx, suite.clientID, domain.EntityWage, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Equal(domain.EntityWage, table.Entity)
	suite.Require().Len(table.Rows, 1)
	row := table.Rows[0]
	suite.Equal("Siva", row["employeeName"])
	suite.Equal("2025-04-10", row["date"])
	pending, ok := row["pendingAmount"].(decimal.Decimal)
	suite.Require().True(ok)
	suite.True(pending.Equal(dec("550")), "pending recomputed on read, got %s", pending)
	suite.mockAssertAll()
}

func (suite *ReportServiceTestSuite) TestComputeRangeSaleItemsSerialized() {
	created := time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)
	sales := []domain.Sale{{
		SaleID:   "sale-1",
		ClientID: suite.clientID,
		Name:     "Kumar traders",
		Items: []domain.SaleItem{
			{ItemType: domain.ItemBran, Quantity: dec("10"), Rate: dec("25")},
		},
		PaymentStatus: domain.PaymentPaid,
		PaymentMethod: domain.MethodCash,
		AuditFields:   domain.AuditFields{CreatedAt: created, LastUpdatedAt: created},
	}}

	suite.saleRepo.On("ListSalesByClient", suite.ctx, suite.clientID, mock.Anything).Return(sales, nil).Once()

	table, err := suite.service.ComputeRange(suite.ctx, suite.clientID, domain.EntitySale, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(table.Rows, 1)
	row := table.Rows[0]
	items, ok := row["items"].(string)
	suite.Require().True(ok, "nested items must be serialized to JSON text")
	suite.Contains(items, `"itemType":"bran"`)
	suite.Equal("2025-06-02", row["createdAt"])
	total, ok := row["totalAmount"].(decimal.Decimal)
	suite.Require().True(ok)
	suite.True(total.Equal(dec("250")))
}

func (suite *ReportServiceTestSuite) TestComputeRangeEmptyCollectionKeepsColumns() {
	suite.orderRepo.On("ListOrdersByClient", suite.ctx, suite.clientID, mock.Anything).Return([]domain.Order{}, nil).Once()

	table, err := suite.service.ComputeRange(suite.ctx, suite.clientID, domain.EntityOrder, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Len(table.Columns, 10)
	suite.NotNil(table.Rows)
	suite.Len(table.Rows, 0)
}

func (suite *ReportServiceTestSuite) TestComputeRangeStockIgnoresRange() {
	stocks := []domain.Stock{{
		StockID:           "stock-1",
		ClientID:          suite.clientID,
		ItemType:          "husk",
		AvailableQuantity: dec("12.5"),
	}}

	suite.stockRepo.On("ListStockByClient", suite.ctx, suite.clientID).Return(stocks, nil).Once()

	table, err := suite.service.ComputeRange(suite.ctx, suite.clientID, domain.EntityStock, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(table.Rows, 1)
	suite.Equal("husk", table.Rows[0]["itemType"])
	suite.mockAssertAll()
}

func (suite *ReportServiceTestSuite) TestComputeRangeUnknownEntity() {
	_, err := suite.service.ComputeRange(suite.ctx, suite.clientID, domain.EntityType("machine"), suite.from, suite.to)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReportServiceTestSuite) mockAssertAll() {
	suite.orderRepo.AssertExpectations(suite.T())
	suite.wageRepo.AssertExpectations(suite.T())
	suite.saleRepo.AssertExpectations(suite.T())
	suite.expenseRepo.AssertExpectations(suite.T())
	suite.incomeRepo.AssertExpectations(suite.T())
	suite.stockRepo.AssertExpectations(suite.T())
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
