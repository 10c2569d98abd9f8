package services

import (
	"context"
	"log"
	"nars_shop/internal/models"
	"nars_shop/internal/repository"
	"time"
)

// SchedulerService executes persisted deferred effects: purging cancelled
// orders after their retention window and dropping delivered orders from the
// sales report. Tasks live in the database, so pending effects survive a
// process restart.
type SchedulerService interface {
	ProcessDueTasks() error
	Run(ctx context.Context, interval time.Duration)
}

type schedulerService struct {
	taskRepo  repository.ScheduledTaskRepository
	orderRepo repository.OrderRepository
	now       func() time.Time
}

func NewSchedulerService(taskRepo repository.ScheduledTaskRepository, orderRepo repository.OrderRepository) SchedulerService {
	return &schedulerService{
		taskRepo:  taskRepo,
		orderRepo: orderRepo,
		now:       time.Now,
	}
}

func (s *schedulerService) ProcessDueTasks() error {
	tasks, err := s.taskRepo.GetDue(s.now())
	if err != nil {
		return err
	}

	for _, task := range tasks {
		if err := s.execute(&task); err != nil {
			// Leave the task pending; the next poll retries it.
			log.Printf("scheduler: task %d (%s, order %d) failed: %v", task.ID, task.Action, task.OrderID, err)
			continue
		}
		if err := s.taskRepo.MarkProcessed(task.ID); err != nil {
			log.Printf("scheduler: failed to mark task %d processed: %v", task.ID, err)
		}
	}
	return nil
}

func (s *schedulerService) execute(task *models.ScheduledTask) error {
	switch task.Action {
	case models.TaskDeleteOrder:
		return s.orderRepo.Delete(task.OrderID)
	case models.TaskRemoveFromReport:
		return s.orderRepo.ClearSalesReport(task.OrderID)
	default:
		log.Printf("scheduler: skipping unknown action %q for order %d", task.Action, task.OrderID)
		return nil
	}
}

func (s *schedulerService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("Scheduler started, polling every %s", interval)
	for {
		select {
		case <-ctx.Done():
			log.Println("Scheduler stopped")
			return
		case <-ticker.C:
			if err := s.ProcessDueTasks(); err != nil {
				log.Printf("scheduler: processing due tasks failed: %v", err)
			}
		}
	}
}
