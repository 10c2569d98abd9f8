package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"not null"`
	Description   string         `json:"description" gorm:"type:text"`
	Price         float64        `json:"price" gorm:"not null"`
	ImageURL      string         `json:"image_url"`
	StockQuantity int            `json:"stock_quantity"`
	Category      string         `json:"category"`
	SupplierID    uint           `json:"supplier_id"`
	BatchID       string         `json:"order_id" gorm:"column:order_id"` // generated batch tag, ORD-XXXXXXXXX
	Rating        float64        `json:"rating"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// TopProduct is a ranking row produced by the sales aggregator.
type TopProduct struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	ImageURL string  `json:"image_url"`
	Sold     int     `json:"sold"`
	Rating   float64 `json:"rating"`
}
