package repository

import (
	"nars_shop/internal/models"
	"time"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByUserID(userID uint) ([]models.Order, error)
	GetInSalesReport() ([]models.Order, error)
	Update(order *models.Order) error
	UpdateStatus(id uint, status string) error
	UpdateOrderDate(id uint, orderDate time.Time) error
	ClearSalesReport(id uint) error
	Delete(id uint) error
	SumTotals(start, end time.Time) (float64, error)
	CountOrders(start, end time.Time) (int64, error)
	CountDistinctCustomers(start, end time.Time) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Where("user_id = ?", userID).Order("order_date DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetInSalesReport() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("in_sales_report = ?", true).Order("order_date DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}

func (r *orderRepository) UpdateOrderDate(id uint, orderDate time.Time) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("order_date", orderDate).Error
}

func (r *orderRepository) ClearSalesReport(id uint) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("in_sales_report", false).Error
}

// Delete removes the order record for good, together with its line items.
func (r *orderRepository) Delete(id uint) error {
	if err := r.db.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Order{}, id).Error
}

func (r *orderRepository) SumTotals(start, end time.Time) (float64, error) {
	var sum float64
	err := r.db.Model(&models.Order{}).
		Where("order_date >= ? AND order_date < ?", start, end).
		Select("COALESCE(SUM(total), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *orderRepository) CountOrders(start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).
		Where("order_date >= ? AND order_date < ?", start, end).
		Count(&count).Error
	return count, err
}

func (r *orderRepository) CountDistinctCustomers(start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).
		Where("order_date >= ? AND order_date < ?", start, end).
		Distinct("user_id").
		Count(&count).Error
	return count, err
}
