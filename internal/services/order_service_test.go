package services_test

import (
	"fmt"
	"testing"

	"vibecart/internal/models"
	"vibecart/internal/repositories"
	"vibecart/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByBuyer(buyerID string) ([]models.Order, error) {
	args := m.Called(buyerID)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListBySeller(sellerID string) ([]models.Order, error) {
	args := m.Called(sellerID)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(id, sellerID, status string) error {
	args := m.Called(id, sellerID, status)
	return args.Error(0)
}

func (m *MockOrderRepository) Stats(sellerID string) (*repositories.SellerStats, error) {
	args := m.Called(sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.SellerStats), args.Error(1)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	orderService := services.NewOrderService(mockOrderRepo, mockProductRepo)

	mockOrderRepo.On("UpdateStatus", "order-1", "seller-1", models.OrderStatusShipped).Return(nil).Once()
	err := orderService.UpdateOrderStatus("order-1", "seller-1", models.OrderStatusShipped)
	assert.NoError(t, err)
	mockOrderRepo.AssertExpectations(t)
}

func TestOrderService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	orderService := services.NewOrderService(mockOrderRepo, mockProductRepo)

	err := orderService.UpdateOrderStatus("order-1", "seller-1", "TELEPORTED")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status")
	mockOrderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_UpdateOrderStatus_NotOwned(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	orderService := services.NewOrderService(mockOrderRepo, mockProductRepo)

	// Repositories scope the update by seller; an order belonging to
	// another seller looks like a missing row.
	mockOrderRepo.On("UpdateStatus", "order-1", "seller-2", models.OrderStatusShipped).
		Return(fmt.Errorf("order with ID order-1 not found for status update")).Once()
	err := orderService.UpdateOrderStatus("order-1", "seller-2", models.OrderStatusShipped)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	mockOrderRepo.AssertExpectations(t)
}

func TestOrderService_Dashboard(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	orderService := services.NewOrderService(mockOrderRepo, mockProductRepo)

	mockOrderRepo.On("Stats", "seller-1").Return(&repositories.SellerStats{
		TotalRevenue: 350000,
		TotalOrders:  12,
	}, nil).Once()
	mockProductRepo.On("CountBySeller", "seller-1").Return(int64(4), nil).Once()

	stats, err := orderService.Dashboard("seller-1")
	assert.NoError(t, err)
	assert.Equal(t, 350000.0, stats.TotalRevenue)
	assert.Equal(t, int64(12), stats.TotalOrders)
	assert.Equal(t, int64(4), stats.ProductsListed)
	mockOrderRepo.AssertExpectations(t)
	mockProductRepo.AssertExpectations(t)
}

func TestOrderService_Dashboard_RevenueCountsDeliveredOnly(t *testing.T) {
	// Drive the in-memory stack end to end: the aggregate only sums
	// orders that reached DELIVERED.
	orderRepo := repositories.NewMockOrderRepository()
	productRepo := repositories.NewMockProductRepository()
	cartRepo := repositories.NewMockCartRepository(productRepo)
	userRepo := repositories.NewMockUserRepository()
	ledgerRepo := repositories.NewMockLedgerRepository(userRepo)
	checkoutRepo := repositories.NewMockCheckoutRepository(userRepo, productRepo, cartRepo, orderRepo, ledgerRepo)

	assert.NoError(t, userRepo.Create(&models.User{ID: "buyer-1", Email: "dash-buyer@example.com", WalletBalance: 1000000}))
	assert.NoError(t, productRepo.Create(&models.Product{ID: "prod-1", SellerID: "seller-1", Name: "Desk Lamp", Price: 100000, Stock: 10}))

	place := func() models.Order {
		order := models.Order{
			BuyerID:     "buyer-1",
			SellerID:    "seller-1",
			Status:      models.OrderStatusPending,
			TotalAmount: 100000,
			Items: []models.OrderItem{
				{ProductID: "prod-1", Quantity: 1, Price: 100000},
			},
		}
		assert.NoError(t, checkoutRepo.Commit("buyer-1", 100000, []*models.Order{&order}))
		return order
	}

	delivered := place()
	pending := place()
	assert.NoError(t, orderRepo.UpdateStatus(delivered.ID, "seller-1", models.OrderStatusDelivered))

	orderService := services.NewOrderService(orderRepo, productRepo)
	stats, err := orderService.Dashboard("seller-1")
	assert.NoError(t, err)
	assert.Equal(t, 100000.0, stats.TotalRevenue, "only the delivered order counts toward revenue")
	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.ProductsListed)

	// The pending order still exists with its original status.
	got, err := orderRepo.GetByID(pending.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, got.Status)
}
