package services

import (
	"testing"
	"time"

	"nars_shop/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func validBilling(items ...PlaceOrderItem) *PlaceOrderInput {
	return &PlaceOrderInput{
		FullName:        "Maria Santos",
		PhoneNumber:     "09171234567",
		Address:         "123 Rizal St",
		City:            "Quezon City",
		StateProvince:   "Metro Manila",
		PostalCode:      "1100",
		DeliveryAddress: "Home",
		PaymentMethod:   models.PaymentGCash,
		Items:           items,
	}
}

func newTestOrderService(deliveryFee float64) (*orderService, *MockOrderRepository, *MockProductRepository, *MockScheduledTaskRepository) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	taskRepo := new(MockScheduledTaskRepository)
	svc := NewOrderService(orderRepo, productRepo, taskRepo, deliveryFee).(*orderService)
	return svc, orderRepo, productRepo, taskRepo
}

func TestPlaceOrder_TotalsAndInitialState(t *testing.T) {
	svc, orderRepo, productRepo, _ := newTestOrderService(60.00)

	productRepo.On("GetByID", uint(1)).Return(&models.Product{ID: 1, Name: "Bag", Price: 250.00}, nil)
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Run(func(args mock.Arguments) {
		order := args.Get(0).(*models.Order)
		assert.Equal(t, 500.00, order.Subtotal)
		assert.Equal(t, 60.00, order.DeliveryFee)
		assert.Equal(t, 560.00, order.Total)
		assert.Equal(t, order.Subtotal+order.DeliveryFee, order.Total)
		assert.Equal(t, string(models.StatusOrderPlaced), order.Status)
		assert.True(t, order.InSalesReport)
		assert.Regexp(t, `^ORD-[0-9A-Z]{9}$`, order.OrderNumber)
		assert.Regexp(t, `^TRK-[0-9A-F]{12}$`, order.TrackingNumber)
	})

	order, err := svc.PlaceOrder(7, validBilling(PlaceOrderItem{ProductID: 1, Quantity: 2}))

	assert.NoError(t, err)
	assert.Equal(t, uint(7), order.UserID)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, 250.00, order.Items[0].UnitPrice)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestPlaceOrder_MissingBillingField(t *testing.T) {
	svc, _, _, _ := newTestOrderService(60.00)

	input := validBilling(PlaceOrderItem{ProductID: 1, Quantity: 1})
	input.City = ""

	_, err := svc.PlaceOrder(7, input)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPlaceOrder_UnknownPaymentMethod(t *testing.T) {
	svc, _, _, _ := newTestOrderService(60.00)

	input := validBilling(PlaceOrderItem{ProductID: 1, Quantity: 1})
	input.PaymentMethod = "Cash"

	_, err := svc.PlaceOrder(7, input)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPlaceOrder_UnknownProduct(t *testing.T) {
	svc, _, productRepo, _ := newTestOrderService(60.00)

	productRepo.On("GetByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.PlaceOrder(7, validBilling(PlaceOrderItem{ProductID: 99, Quantity: 1}))

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestTransition_NotFound(t *testing.T) {
	svc, orderRepo, _, _ := newTestOrderService(60.00)

	orderRepo.On("GetByID", uint(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Transition(42, models.StatusProcessing)

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestTransition_RejectsUndefinedEdges(t *testing.T) {
	svc, orderRepo, _, _ := newTestOrderService(60.00)

	cases := []struct {
		current models.OrderStatus
		target  models.OrderStatus
	}{
		{models.StatusOrderPlaced, models.StatusShipped},
		{models.StatusOrderPlaced, models.StatusDelivered},
		{models.StatusProcessing, models.StatusDelivered},
		{models.StatusShipped, models.StatusProcessing},
		{models.StatusDelivered, models.StatusProcessing},
		{models.StatusCancelled, models.StatusOrderPlaced},
		{models.StatusDelivered, models.StatusCancelled},
	}

	for i, tc := range cases {
		id := uint(100 + i)
		orderRepo.On("GetByID", id).Return(&models.Order{ID: id, Status: string(tc.current)}, nil)

		_, err := svc.Transition(id, tc.target)

		assert.ErrorIs(t, err, ErrInvalidTransition, "edge %s -> %s", tc.current, tc.target)
	}
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestTransition_CancelledSchedulesPurge(t *testing.T) {
	svc, orderRepo, _, taskRepo := newTestOrderService(60.00)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	orderRepo.On("GetByID", uint(1)).Return(&models.Order{ID: 1, Status: string(models.StatusProcessing)}, nil)
	orderRepo.On("UpdateStatus", uint(1), string(models.StatusCancelled)).Return(nil)
	taskRepo.On("DeletePendingByOrderID", uint(1)).Return(nil)
	taskRepo.On("Create", mock.AnythingOfType("*models.ScheduledTask")).Return(nil).Run(func(args mock.Arguments) {
		task := args.Get(0).(*models.ScheduledTask)
		assert.Equal(t, models.TaskDeleteOrder, task.Action)
		assert.Equal(t, now.Add(8*time.Hour), task.DueAt)
	})

	order, err := svc.Transition(1, models.StatusCancelled)

	assert.NoError(t, err)
	assert.Equal(t, string(models.StatusCancelled), order.Status)
	taskRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestTransition_DeliveredSchedulesReportRemoval(t *testing.T) {
	svc, orderRepo, _, taskRepo := newTestOrderService(60.00)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	orderRepo.On("GetByID", uint(2)).Return(&models.Order{ID: 2, Status: string(models.StatusShipped)}, nil)
	orderRepo.On("UpdateStatus", uint(2), string(models.StatusDelivered)).Return(nil)
	taskRepo.On("DeletePendingByOrderID", uint(2)).Return(nil)
	taskRepo.On("Create", mock.AnythingOfType("*models.ScheduledTask")).Return(nil).Run(func(args mock.Arguments) {
		task := args.Get(0).(*models.ScheduledTask)
		assert.Equal(t, models.TaskRemoveFromReport, task.Action)
		assert.Equal(t, now.Add(5*time.Hour), task.DueAt)
	})

	_, err := svc.Transition(2, models.StatusDelivered)

	assert.NoError(t, err)
	taskRepo.AssertExpectations(t)
}

func TestTransition_NonTerminalSchedulesNothing(t *testing.T) {
	svc, orderRepo, _, taskRepo := newTestOrderService(60.00)

	orderRepo.On("GetByID", uint(3)).Return(&models.Order{ID: 3, Status: string(models.StatusOrderPlaced)}, nil)
	orderRepo.On("UpdateStatus", uint(3), string(models.StatusProcessing)).Return(nil)
	taskRepo.On("DeletePendingByOrderID", uint(3)).Return(nil)

	_, err := svc.Transition(3, models.StatusProcessing)

	assert.NoError(t, err)
	taskRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCancelByCustomer_OnlyWhilePlaced(t *testing.T) {
	svc, orderRepo, _, _ := newTestOrderService(60.00)

	orderRepo.On("GetByID", uint(5)).Return(&models.Order{ID: 5, UserID: 7, Status: string(models.StatusProcessing)}, nil)

	err := svc.CancelByCustomer(5, 7)

	assert.ErrorIs(t, err, ErrCancelNotAllowed)
}

func TestCancelByCustomer_OtherUsersOrderHidden(t *testing.T) {
	svc, orderRepo, _, _ := newTestOrderService(60.00)

	orderRepo.On("GetByID", uint(5)).Return(&models.Order{ID: 5, UserID: 7, Status: string(models.StatusOrderPlaced)}, nil)

	err := svc.CancelByCustomer(5, 8)

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCancelByCustomer_PlacedOrderCancels(t *testing.T) {
	svc, orderRepo, _, taskRepo := newTestOrderService(60.00)

	orderRepo.On("GetByID", uint(5)).Return(&models.Order{ID: 5, UserID: 7, Status: string(models.StatusOrderPlaced)}, nil)
	orderRepo.On("UpdateStatus", uint(5), string(models.StatusCancelled)).Return(nil)
	taskRepo.On("DeletePendingByOrderID", uint(5)).Return(nil)
	taskRepo.On("Create", mock.AnythingOfType("*models.ScheduledTask")).Return(nil)

	err := svc.CancelByCustomer(5, 7)

	assert.NoError(t, err)
	orderRepo.AssertExpectations(t)
}

func TestEditOrderDate_GatedByStatus(t *testing.T) {
	svc, orderRepo, _, _ := newTestOrderService(60.00)
	newDate := time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)

	orderRepo.On("GetByID", uint(1)).Return(&models.Order{ID: 1, Status: string(models.StatusOrderPlaced)}, nil)
	assert.ErrorIs(t, svc.EditOrderDate(1, newDate), ErrDateEditNotAllowed)

	orderRepo.On("GetByID", uint(2)).Return(&models.Order{ID: 2, Status: string(models.StatusCancelled)}, nil)
	assert.ErrorIs(t, svc.EditOrderDate(2, newDate), ErrDateEditNotAllowed)

	orderRepo.On("GetByID", uint(3)).Return(&models.Order{ID: 3, Status: string(models.StatusShipped)}, nil)
	orderRepo.On("UpdateOrderDate", uint(3), newDate).Return(nil)
	assert.NoError(t, svc.EditOrderDate(3, newDate))

	orderRepo.AssertExpectations(t)
}

func TestDeleteOrder_CancelsPendingEffects(t *testing.T) {
	svc, orderRepo, _, taskRepo := newTestOrderService(60.00)

	orderRepo.On("GetByID", uint(9)).Return(&models.Order{ID: 9, Status: string(models.StatusCancelled)}, nil)
	taskRepo.On("DeletePendingByOrderID", uint(9)).Return(nil)
	orderRepo.On("Delete", uint(9)).Return(nil)

	err := svc.DeleteOrder(9)

	assert.NoError(t, err)
	taskRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}
