package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/richmill123/rice_mill_backend/internal/apperrors"
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	portssvc "github.com/richmill123/rice_mill_backend/internal/core/ports/services"
	"github.com/richmill123/rice_mill_backend/internal/core/services"
	"github.com/richmill123/rice_mill_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	mockRepo *MockOrderRepository
	service  portssvc.OrderSvcFacade
	ctx      context.Context
	clientID string
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockOrderRepository)
	suite.service = services.NewOrderService(suite.mockRepo)
	suite.ctx = context.Background()
	suite.clientID = "client-1"
}

func storedOrder(status domain.OrderStatus) *domain.Order {
	now := time.Now().UTC()
	return &domain.Order{
		OrderID:      "order-1",
		ClientID:     "client-1",
		Name:         "Raju",
		TypeOfPaddy:  "sona masoori",
		NumberOfBags: 40,
		TotalAmount:  dec("20000"),
		Status:       status,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
}

func (suite *OrderServiceTestSuite) TestCreateOrderStartsInCreated() {
	req := dto.CreateOrderRequest{
		Name:         "Raju",
		TypeOfPaddy:  "sona masoori",
		NumberOfBags: 40,
		TotalAmount:  dec("20000"),
	}

	suite.mockRepo.On("SaveOrder", suite.ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.Status == domain.OrderCreated && o.OrderID != "" && o.ClientID == suite.clientID
	})).Return(nil).Once()

	order, err := suite.service.CreateOrder(suite.ctx, suite.clientID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderCreated, order.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrderRejectsInvalidAmounts() {
	req := dto.CreateOrderRequest{
		Name:          "Raju",
		TypeOfPaddy:   "sona masoori",
		NumberOfBags:  40,
		TotalAmount:   dec("100"),
		AdvanceAmount: dec("200"),
	}

	_, err := suite.service.CreateOrder(suite.ctx, suite.clientID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestTransitionOrderLegalStep() {
	current := storedOrder(domain.OrderCreated)
	advanced := storedOrder(domain.OrderInitialStocking)

	suite.mockRepo.On("FindOrderByID", suite.ctx, suite.clientID, "order-1").Return(current, nil).Once()
	suite.mockRepo.On("UpdateOrderStatus", suite.ctx, suite.clientID, "order-1",
		domain.OrderCreated, domain.OrderInitialStocking).Return(advanced, nil).Once()

	order, err := suite.service.TransitionOrder(suite.ctx, suite.clientID, "order-1", domain.OrderInitialStocking)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderInitialStocking, order.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestTransitionOrderSameStatusIsNoOp() {
	current := storedOrder(domain.OrderBoilingCompleted)

	suite.mockRepo.On("FindOrderByID", suite.ctx, suite.clientID, "order-1").Return(current, nil).Once()

	order, err := suite.service.TransitionOrder(suite.ctx, suite.clientID, "order-1", domain.OrderBoilingCompleted)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderBoilingCompleted, order.Status)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateOrderStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestTransitionOrderRejectsStageSkip() {
	current := storedOrder(domain.OrderCreated)

	suite.mockRepo.On("FindOrderByID", suite.ctx, suite.clientID, "order-1").Return(current, nil).Once()

	_, err := suite.service.TransitionOrder(suite.ctx, suite.clientID, "order-1", domain.OrderPaidClose)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrIllegalTransition)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateOrderStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestTransitionOrderSurfacesLostRace() {
	current := storedOrder(domain.OrderPackedReady)
	conflict := &apperrors.ConflictError{Entity: "order", ID: "order-1"}

	suite.mockRepo.On("FindOrderByID", suite.ctx, suite.clientID, "order-1").Return(current, nil).Once()
	suite.mockRepo.On("UpdateOrderStatus", suite.ctx, suite.clientID, "order-1",
		domain.OrderPackedReady, domain.OrderPaidClose).Return(nil, conflict).Once()

	_, err := suite.service.TransitionOrder(suite.ctx, suite.clientID, "order-1", domain.OrderPaidClose)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestTransitionOrderNotFound() {
	suite.mockRepo.On("FindOrderByID", suite.ctx, suite.clientID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.TransitionOrder(suite.ctx, suite.clientID, "missing", domain.OrderInitialStocking)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *OrderServiceTestSuite) TestGetOrderByIDReconciles() {
	current := storedOrder(domain.OrderCreated)

	suite.mockRepo.On("FindOrderByID", suite.ctx, suite.clientID, "order-1").Return(current, nil).Once()

	order, err := suite.service.GetOrderByID(suite.ctx, suite.clientID, "order-1")

	suite.Require().NoError(err)
	suite.Equal("order-1", order.OrderID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
