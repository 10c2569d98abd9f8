package models

import (
	"time"
)

type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	OrderNumber     string      `json:"order_number" gorm:"unique;not null"`
	UserID          uint        `json:"user_id" gorm:"not null;index"`
	FullName        string      `json:"full_name" gorm:"not null"`
	PhoneNumber     string      `json:"phone_number"`
	Address         string      `json:"address"`
	City            string      `json:"city"`
	StateProvince   string      `json:"state_province"`
	PostalCode      string      `json:"postal_code"`
	DeliveryAddress string      `json:"delivery_address"` // Home, Work, ...
	PaymentMethod   string      `json:"payment_method"`   // GCash, PayMaya
	Subtotal        float64     `json:"subtotal" gorm:"not null"`
	DeliveryFee     float64     `json:"delivery" gorm:"not null"`
	Total           float64     `json:"total" gorm:"not null"`
	OrderDate       time.Time   `json:"order_date" gorm:"not null"`
	TrackingNumber  string      `json:"tracking_number"`
	Status          string      `json:"status" gorm:"default:'Order Placed'"`
	InSalesReport   bool        `json:"in_sales_report" gorm:"default:true"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type OrderStatus string

const (
	StatusOrderPlaced OrderStatus = "Order Placed"
	StatusProcessing  OrderStatus = "Processing"
	StatusShipped     OrderStatus = "Shipped"
	StatusDelivered   OrderStatus = "Delivered"
	StatusCancelled   OrderStatus = "Cancelled"
)

const (
	PaymentGCash   = "GCash"
	PaymentPayMaya = "PayMaya"
)
