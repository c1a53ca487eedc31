package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"medstore/filters"
	"medstore/models"
	"medstore/store"
)

// StockUpdate reports what recording one purchase item did to batch stock.
type StockUpdate struct {
	ProductID models.ProductID `json:"productId"`
	BatchID   models.BatchID   `json:"batchId"`
	Quantity  int              `json:"quantity"`
	Applied   bool             `json:"applied"`
	Reason    string           `json:"reason,omitempty"`
}

type RecordedPurchase struct {
	models.Purchase
	StockUpdates []StockUpdate `json:"stockUpdates"`
}

// Skipped counts the items whose stock was not incremented.
func (r *RecordedPurchase) Skipped() int {
	n := 0
	for _, u := range r.StockUpdates {
		if !u.Applied {
			n++
		}
	}
	return n
}

// CreatePurchase raises the stock of every referenced batch and then persists
// the purchase. The supplier must exist. An item whose product or batch no
// longer exists is skipped and reported; the remaining items and the purchase
// itself are still recorded.
func (s *Service) CreatePurchase(ctx context.Context, p *models.Purchase) (*RecordedPurchase, error) {
	if p.PaymentMethod == "" {
		p.PaymentMethod = models.PaymentCash
	}
	for i := range p.Items {
		it := &p.Items[i]
		if it.Amount == 0 {
			it.Amount = decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))).Round(2).InexactFloat64()
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	sp, err := s.store.GetSupplier(ctx, p.SupplierID)
	if err != nil {
		return nil, err
	}
	p.SupplierName = sp.Name

	rec := &RecordedPurchase{StockUpdates: make([]StockUpdate, 0, len(p.Items))}
	for _, it := range p.Items {
		u := StockUpdate{ProductID: it.ProductID, BatchID: it.BatchID, Quantity: it.Quantity}
		err := s.store.IncrementBatchStock(ctx, it.ProductID, it.BatchID, it.Quantity)
		switch {
		case err == nil:
			u.Applied = true
		case errors.Is(err, store.ErrNotFound):
			u.Reason = "product or batch not found"
			s.metrics.PurchaseStockSkips.Inc()
			s.log.WarnContext(ctx, "purchase item skipped",
				slog.String("productId", string(it.ProductID)),
				slog.String("batchId", string(it.BatchID)),
				slog.Int("quantity", it.Quantity))
		default:
			return nil, err
		}
		rec.StockUpdates = append(rec.StockUpdates, u)
	}

	p.ID = models.NewID[models.PurchaseID]()
	now := s.now()
	p.CreatedAt, p.UpdatedAt = now, now
	if err := s.store.CreatePurchase(ctx, p); err != nil {
		return nil, err
	}
	rec.Purchase = *p
	s.log.InfoContext(ctx, "purchase recorded",
		slog.String("id", string(p.ID)),
		slog.Int("items", len(p.Items)),
		slog.Int("skipped", rec.Skipped()))
	return rec, nil
}

func (s *Service) ListPurchases(ctx context.Context, f filters.PurchaseFilter) ([]models.Purchase, error) {
	if f.Limit == 0 {
		f.Limit = filters.DefaultTransactionLimit
	}
	return s.store.ListPurchases(ctx, f)
}

func (s *Service) GetPurchase(ctx context.Context, id models.PurchaseID) (*models.Purchase, error) {
	return s.store.GetPurchase(ctx, id)
}

// UpdatePurchase edits payment details only; it never touches stock.
func (s *Service) UpdatePurchase(ctx context.Context, id models.PurchaseID, patch models.PurchasePatch) (*models.Purchase, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.store.UpdatePurchase(ctx, id, patch, s.now())
}
