package services

import (
	"nars_shop/internal/models"
	"nars_shop/internal/repository"
	"time"
)

const defaultTopProductLimit = 5

type SalesSummary struct {
	SalesToday        float64 `json:"salesToday"`
	PeriodSales       float64 `json:"periodSales"`
	TotalOrders       int64   `json:"totalOrders"`
	CustomersThisWeek int64   `json:"customersThisWeek"`
}

type SalesService interface {
	Summary(timeFrame string) (*SalesSummary, error)
	TopProducts(limit int) ([]models.TopProduct, error)
}

type salesService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	now         func() time.Time
}

func NewSalesService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) SalesService {
	return &salesService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		now:         time.Now,
	}
}

// Summary aggregates over the full historical order set; the in_sales_report
// flag only filters the admin orders listing, not these figures.
func (s *salesService) Summary(timeFrame string) (*SalesSummary, error) {
	now := s.now()
	dayStart := startOfDay(now)
	dayEnd := dayStart.Add(24 * time.Hour)

	periodStart, periodEnd := dayStart, dayEnd
	switch timeFrame {
	case "yesterday":
		periodStart = dayStart.AddDate(0, 0, -1)
		periodEnd = dayStart
	case "lastWeek":
		periodStart = dayStart.AddDate(0, 0, -7)
	case "lastMonth":
		periodStart = dayStart.AddDate(0, -1, 0)
	}

	salesToday, err := s.orderRepo.SumTotals(dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	periodSales, err := s.orderRepo.SumTotals(periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.orderRepo.CountOrders(periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	customersThisWeek, err := s.orderRepo.CountDistinctCustomers(dayStart.AddDate(0, 0, -7), dayEnd)
	if err != nil {
		return nil, err
	}

	return &SalesSummary{
		SalesToday:        salesToday,
		PeriodSales:       periodSales,
		TotalOrders:       totalOrders,
		CustomersThisWeek: customersThisWeek,
	}, nil
}

func (s *salesService) TopProducts(limit int) ([]models.TopProduct, error) {
	if limit <= 0 {
		limit = defaultTopProductLimit
	}
	return s.productRepo.TopProducts(limit)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
