package models

import (
	"time"
)

type ProductRating struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Rating    int       `json:"rating" gorm:"not null"` // 1..5
	CreatedAt time.Time `json:"created_at"`
}
