package models

import (
	"time"
)

// ScheduledTask is a persisted deferred effect attached to an order. Pending
// tasks survive restarts; the scheduler polls for due rows and executes them.
type ScheduledTask struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderID   uint      `json:"order_id" gorm:"not null;index"`
	Action    string    `json:"action" gorm:"not null"`
	DueAt     time.Time `json:"due_at" gorm:"not null"`
	Processed bool      `json:"processed" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	TaskDeleteOrder      = "delete_order"
	TaskRemoveFromReport = "remove_from_report"
)
