package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/wekesa/dukapos-api/internal/domain/repository"
	"github.com/wekesa/dukapos-api/internal/infrastructure/cache"
	"github.com/wekesa/dukapos-api/pkg/apperror"
)

const reportCacheTTL = 60 * time.Second

// ReportService produces sales and inventory reports. Results are cached
// for a short TTL since they aggregate over the whole sales history; a
// cache failure degrades to a direct query, never to an error.
type ReportService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
	cache       cache.ReportCache
}

// NewReportService creates a new report service
func NewReportService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	reportCache cache.ReportCache,
) *ReportService {
	return &ReportService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		stockRepo:   stockRepo,
		cache:       reportCache,
	}
}

// SummaryReport aggregates sales figures for today and the trailing period
type SummaryReport struct {
	Today      *repository.SalesSummary `json:"today"`
	Last7Days  *repository.SalesSummary `json:"last_7_days"`
	Last30Days *repository.SalesSummary `json:"last_30_days"`
}

// Summary returns sales totals for today, the last 7 days and the last 30 days
func (s *ReportService) Summary(ctx context.Context) (*SummaryReport, error) {
	const key = "report:summary"

	var cached SummaryReport
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		log.Printf("report cache read failed: %v", err)
	} else if hit {
		return &cached, nil
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	today, err := s.saleRepo.Summary(ctx, startOfDay)
	if err != nil {
		return nil, err
	}
	week, err := s.saleRepo.Summary(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	month, err := s.saleRepo.Summary(ctx, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	report := &SummaryReport{
		Today:      today,
		Last7Days:  week,
		Last30Days: month,
	}
	if err := s.cache.Set(ctx, key, report, reportCacheTTL); err != nil {
		log.Printf("report cache write failed: %v", err)
	}
	return report, nil
}

// TopProducts returns the best selling products ranked by revenue
func (s *ReportService) TopProducts(ctx context.Context, limit int) ([]repository.TopProductRow, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		return nil, apperror.NewBadRequestError("Limit cannot exceed 100")
	}
	key := fmt.Sprintf("report:top-products:%d", limit)

	var cached []repository.TopProductRow
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		log.Printf("report cache read failed: %v", err)
	} else if hit {
		return cached, nil
	}

	rows, err := s.saleRepo.TopProducts(ctx, limit)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, rows, reportCacheTTL); err != nil {
		log.Printf("report cache write failed: %v", err)
	}
	return rows, nil
}

// InventoryReport summarizes current stock positions
type InventoryReport struct {
	TotalProducts  int64 `json:"total_products"`
	OutOfStock     int64 `json:"out_of_stock"`
	TotalAvailable int64 `json:"total_available"`
}

// Inventory returns a snapshot of stock coverage across the catalog
func (s *ReportService) Inventory(ctx context.Context) (*InventoryReport, error) {
	const key = "report:inventory"

	var cached InventoryReport
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		log.Printf("report cache read failed: %v", err)
	} else if hit {
		return &cached, nil
	}

	products, err := s.productRepo.ListWithBalances(ctx)
	if err != nil {
		return nil, err
	}
	outOfStock, err := s.productRepo.CountOutOfStock(ctx)
	if err != nil {
		return nil, err
	}

	var totalAvailable int64
	for i := range products {
		for _, bal := range products[i].StockBalances {
			totalAvailable += int64(bal.AvailableQty)
		}
	}

	report := &InventoryReport{
		TotalProducts:  int64(len(products)),
		OutOfStock:     outOfStock,
		TotalAvailable: totalAvailable,
	}
	if err := s.cache.Set(ctx, key, report, reportCacheTTL); err != nil {
		log.Printf("report cache write failed: %v", err)
	}
	return report, nil
}
