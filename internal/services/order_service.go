package services

import (
	"errors"
	"math/rand"
	"nars_shop/internal/models"
	"nars_shop/internal/repository"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Retention windows for the deferred effects registered on terminal
// transitions. Cancelled orders are purged, delivered orders only drop off
// the sales-report listing.
const (
	cancelledPurgeDelay  = 8 * time.Hour
	deliveredReportDelay = 5 * time.Hour
)

// statusTransitions defines the outgoing edges of the order lifecycle.
// Delivered and Cancelled are terminal for manual transitions.
var statusTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.StatusOrderPlaced: {models.StatusProcessing, models.StatusCancelled},
	models.StatusProcessing:  {models.StatusShipped, models.StatusCancelled},
	models.StatusShipped:     {models.StatusDelivered, models.StatusCancelled},
	models.StatusDelivered:   {},
	models.StatusCancelled:   {},
}

// dateEditableStatuses gates EditOrderDate.
var dateEditableStatuses = map[models.OrderStatus]bool{
	models.StatusProcessing: true,
	models.StatusShipped:    true,
	models.StatusDelivered:  true,
}

type PlaceOrderItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type PlaceOrderInput struct {
	FullName        string           `json:"fullName"`
	PhoneNumber     string           `json:"phoneNumber"`
	Address         string           `json:"address"`
	City            string           `json:"city"`
	StateProvince   string           `json:"stateProvince"`
	PostalCode      string           `json:"postalCode"`
	DeliveryAddress string           `json:"deliveryAddress"`
	PaymentMethod   string           `json:"paymentMethod"`
	Items           []PlaceOrderItem `json:"items"`
}

type OrderService interface {
	PlaceOrder(userID uint, input *PlaceOrderInput) (*models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	GetOrdersByUser(userID uint) ([]models.Order, error)
	GetSalesReportOrders() ([]models.Order, error)
	Transition(id uint, target models.OrderStatus) (*models.Order, error)
	CancelByCustomer(id, userID uint) error
	EditOrderDate(id uint, newDate time.Time) error
	RemoveFromSalesReport(id uint) error
	DeleteOrder(id uint) error
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	taskRepo    repository.ScheduledTaskRepository
	deliveryFee float64
	now         func() time.Time
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	taskRepo repository.ScheduledTaskRepository,
	deliveryFee float64,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		taskRepo:    taskRepo,
		deliveryFee: deliveryFee,
		now:         time.Now,
	}
}

func (s *orderService) PlaceOrder(userID uint, input *PlaceOrderInput) (*models.Order, error) {
	if err := validateBilling(input); err != nil {
		return nil, err
	}

	// Resolve every line item against the catalog and capture the unit price
	// at purchase time.
	var items []models.OrderItem
	subtotal := 0.0
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, ErrInvalidInput
		}
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, err
		}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
		})
		subtotal += product.Price * float64(line.Quantity)
	}

	order := &models.Order{
		OrderNumber:     generateOrderID(),
		UserID:          userID,
		FullName:        input.FullName,
		PhoneNumber:     input.PhoneNumber,
		Address:         input.Address,
		City:            input.City,
		StateProvince:   input.StateProvince,
		PostalCode:      input.PostalCode,
		DeliveryAddress: input.DeliveryAddress,
		PaymentMethod:   input.PaymentMethod,
		Subtotal:        subtotal,
		DeliveryFee:     s.deliveryFee,
		Total:           subtotal + s.deliveryFee,
		OrderDate:       s.now(),
		TrackingNumber:  generateTrackingNumber(),
		Status:          string(models.StatusOrderPlaced),
		InSalesReport:   true,
		Items:           items,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrdersByUser(userID uint) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

func (s *orderService) GetSalesReportOrders() ([]models.Order, error) {
	return s.orderRepo.GetInSalesReport()
}

// Transition moves an order along a defined lifecycle edge and registers the
// deferred effect attached to terminal states. Any pending effect from an
// earlier transition is cancelled first.
func (s *orderService) Transition(id uint, target models.OrderStatus) (*models.Order, error) {
	order, err := s.GetOrderByID(id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(models.OrderStatus(order.Status), target) {
		return nil, ErrInvalidTransition
	}

	if err := s.orderRepo.UpdateStatus(id, string(target)); err != nil {
		return nil, err
	}
	order.Status = string(target)

	if err := s.taskRepo.DeletePendingByOrderID(id); err != nil {
		return nil, err
	}

	switch target {
	case models.StatusCancelled:
		err = s.taskRepo.Create(&models.ScheduledTask{
			OrderID: id,
			Action:  models.TaskDeleteOrder,
			DueAt:   s.now().Add(cancelledPurgeDelay),
		})
	case models.StatusDelivered:
		err = s.taskRepo.Create(&models.ScheduledTask{
			OrderID: id,
			Action:  models.TaskRemoveFromReport,
			DueAt:   s.now().Add(deliveredReportDelay),
		})
	}
	if err != nil {
		return nil, err
	}

	return order, nil
}

// CancelByCustomer is the storefront cancellation path, only allowed while
// the order has not started processing.
func (s *orderService) CancelByCustomer(id, userID uint) error {
	order, err := s.GetOrderByID(id)
	if err != nil {
		return err
	}
	if order.UserID != userID {
		return ErrOrderNotFound
	}
	if models.OrderStatus(order.Status) != models.StatusOrderPlaced {
		return ErrCancelNotAllowed
	}

	_, err = s.Transition(id, models.StatusCancelled)
	return err
}

// EditOrderDate rewrites only the order timestamp, never the status.
func (s *orderService) EditOrderDate(id uint, newDate time.Time) error {
	order, err := s.GetOrderByID(id)
	if err != nil {
		return err
	}
	if !dateEditableStatuses[models.OrderStatus(order.Status)] {
		return ErrDateEditNotAllowed
	}
	return s.orderRepo.UpdateOrderDate(id, newDate)
}

func (s *orderService) RemoveFromSalesReport(id uint) error {
	if _, err := s.GetOrderByID(id); err != nil {
		return err
	}
	return s.orderRepo.ClearSalesReport(id)
}

func (s *orderService) DeleteOrder(id uint) error {
	if _, err := s.GetOrderByID(id); err != nil {
		return err
	}
	if err := s.taskRepo.DeletePendingByOrderID(id); err != nil {
		return err
	}
	return s.orderRepo.Delete(id)
}

func transitionAllowed(current, target models.OrderStatus) bool {
	for _, next := range statusTransitions[current] {
		if next == target {
			return true
		}
	}
	return false
}

func validateBilling(input *PlaceOrderInput) error {
	required := []string{
		input.FullName,
		input.PhoneNumber,
		input.Address,
		input.City,
		input.StateProvince,
		input.PostalCode,
		input.DeliveryAddress,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return ErrInvalidInput
		}
	}
	if input.PaymentMethod != models.PaymentGCash && input.PaymentMethod != models.PaymentPayMaya {
		return ErrInvalidInput
	}
	if len(input.Items) == 0 {
		return ErrInvalidInput
	}
	return nil
}

const orderIDCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generateOrderID mirrors the ORD-XXXXXXXXX format used across the shop.
func generateOrderID() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = orderIDCharset[rand.Intn(len(orderIDCharset))]
	}
	return "ORD-" + string(b)
}

func generateTrackingNumber() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "TRK-" + raw[:12]
}
