package services

import (
	"context"
	"errors"
	"time"

	"farmstand/internal/domain"
	"farmstand/internal/metrics"
	"farmstand/internal/repos"
)

// SalesService coordinates sale recording. The transactional write itself
// lives in the repository; this layer owns validation and defaulting.
type SalesService struct {
	Sales *repos.SalesRepo
}

func NewSalesService(sales *repos.SalesRepo) *SalesService {
	return &SalesService{Sales: sales}
}

// Record validates the sale and commits it together with the product's
// stock adjustment. A sale is either fully committed or fully aborted.
func (s *SalesService) Record(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	if sale.Quantity <= 0 {
		metrics.SalesRejectedTotal.WithLabelValues("bad_quantity").Inc()
		return domain.Sale{}, repos.ErrInsufficientStock
	}
	if sale.Date == "" {
		sale.Date = time.Now().UTC().Format(time.DateTime)
	}

	out, err := s.Sales.Record(ctx, sale)
	if err != nil {
		metrics.SalesRejectedTotal.WithLabelValues(rejectReason(err)).Inc()
		return domain.Sale{}, err
	}
	metrics.SalesCommittedTotal.Inc()
	return out, nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, repos.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, repos.ErrNotFound):
		return "product_missing"
	case errors.Is(err, repos.ErrConstraint):
		return "bad_reference"
	default:
		return "store_error"
	}
}
