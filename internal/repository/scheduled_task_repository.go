package repository

import (
	"nars_shop/internal/models"
	"time"

	"gorm.io/gorm"
)

type ScheduledTaskRepository interface {
	Create(task *models.ScheduledTask) error
	GetDue(now time.Time) ([]models.ScheduledTask, error)
	MarkProcessed(id uint) error
	DeletePendingByOrderID(orderID uint) error
}

type scheduledTaskRepository struct {
	db *gorm.DB
}

func NewScheduledTaskRepository(db *gorm.DB) ScheduledTaskRepository {
	return &scheduledTaskRepository{db: db}
}

func (r *scheduledTaskRepository) Create(task *models.ScheduledTask) error {
	return r.db.Create(task).Error
}

func (r *scheduledTaskRepository) GetDue(now time.Time) ([]models.ScheduledTask, error) {
	var tasks []models.ScheduledTask
	err := r.db.Where("processed = ? AND due_at <= ?", false, now).Find(&tasks).Error
	return tasks, err
}

func (r *scheduledTaskRepository) MarkProcessed(id uint) error {
	return r.db.Model(&models.ScheduledTask{}).Where("id = ?", id).Update("processed", true).Error
}

// DeletePendingByOrderID cancels every unfired effect attached to an order,
// used when the order is deleted or transitions again before a task fires.
func (r *scheduledTaskRepository) DeletePendingByOrderID(orderID uint) error {
	return r.db.Where("order_id = ? AND processed = ?", orderID, false).Delete(&models.ScheduledTask{}).Error
}
