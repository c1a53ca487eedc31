package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"medstore/filters"
	"medstore/models"
)

// ReturnSearchLimit caps the candidate originals offered by /returns/search.
const ReturnSearchLimit = 10

type CustomerReturnRequest struct {
	OriginalTransactionID models.TransactionID  `json:"originalTransactionId"`
	Items                 []models.ReturnItem   `json:"items"`
	TotalAmount           float64               `json:"totalAmount"`
	SettlementType        models.SettlementType `json:"settlementType"`
	Reason                string                `json:"reason"`
}

type SupplierReturnRequest struct {
	OriginalPurchaseID models.PurchaseID   `json:"originalPurchaseId"`
	Items              []models.ReturnItem `json:"items"`
	TotalAmount        float64             `json:"totalAmount"`
	Reason             string              `json:"reason"`
}

func (s *Service) newReturn(ctx context.Context, typ models.ReturnType, items []models.ReturnItem, total float64, reason string) *models.Return {
	now := s.now()
	r := &models.Return{
		ID:          models.NewID[models.ReturnID](),
		Type:        typ,
		Items:       items,
		TotalAmount: total,
		Reason:      reason,
		Status:      models.ReturnCompleted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for i := range r.Items {
		it := &r.Items[i]
		if it.Amount == 0 {
			it.Amount = decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))).Round(2).InexactFloat64()
		}
	}
	if actor, ok := ActorFromContext(ctx); ok {
		r.ProcessedBy = actor.ID
	}
	return r
}

// CreateCustomerReturn settles goods handed back by a customer against the
// sale they were bought in, using the settlement the caller chose.
func (s *Service) CreateCustomerReturn(ctx context.Context, req CustomerReturnRequest) (*models.Return, error) {
	r := s.newReturn(ctx, models.ReturnCustomer, req.Items, req.TotalAmount, req.Reason)
	r.OriginalTransactionID = req.OriginalTransactionID
	r.SettlementType = req.SettlementType
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.store.GetTransaction(ctx, req.OriginalTransactionID); err != nil {
		return nil, err
	}
	if r.SettlementType == models.SettlementVoucher {
		r.VoucherID = fmt.Sprintf("VCHR-%d", s.now().UnixMilli())
	}
	return s.saveReturn(ctx, r)
}

// CreateSupplierReturn sends goods back against a purchase. A paid purchase is
// settled with a credit note; an unpaid one is netted off the supplier ledger.
func (s *Service) CreateSupplierReturn(ctx context.Context, req SupplierReturnRequest) (*models.Return, error) {
	r := s.newReturn(ctx, models.ReturnSupplier, req.Items, req.TotalAmount, req.Reason)
	r.OriginalPurchaseID = req.OriginalPurchaseID
	r.SettlementType = models.SettlementLedgerAdjustment
	if err := r.Validate(); err != nil {
		return nil, err
	}
	purchase, err := s.store.GetPurchase(ctx, req.OriginalPurchaseID)
	if err != nil {
		return nil, err
	}
	if purchase.Status == models.StatusPaid {
		r.SettlementType = models.SettlementCreditNote
		r.CreditNoteID = fmt.Sprintf("CN-%d", s.now().UnixMilli())
	}
	return s.saveReturn(ctx, r)
}

func (s *Service) saveReturn(ctx context.Context, r *models.Return) (*models.Return, error) {
	if err := s.store.CreateReturn(ctx, r); err != nil {
		return nil, err
	}
	s.metrics.ReturnsSettled.WithLabelValues(string(r.Type), string(r.SettlementType)).Inc()
	s.log.InfoContext(ctx, "return settled",
		slog.String("id", string(r.ID)),
		slog.String("type", string(r.Type)),
		slog.String("settlement", string(r.SettlementType)),
		slog.Float64("amount", r.TotalAmount))
	return r, nil
}

func (s *Service) ListReturns(ctx context.Context, f filters.ReturnFilter) ([]models.Return, error) {
	return s.store.ListReturns(ctx, f)
}

func (s *Service) GetReturn(ctx context.Context, id models.ReturnID) (*models.Return, error) {
	return s.store.GetReturn(ctx, id)
}

// SearchReturnableSales finds sale transactions a customer return may reference.
func (s *Service) SearchReturnableSales(ctx context.Context, q string) ([]models.Transaction, error) {
	term, ok := filters.SearchTerm(q, filters.MinSearchLength)
	if !ok {
		return []models.Transaction{}, nil
	}
	if err := s.backfill(ctx); err != nil {
		return nil, err
	}
	return s.store.ListTransactions(ctx, filters.TransactionFilter{
		Type:  models.TransactionSale,
		Text:  term,
		Limit: ReturnSearchLimit,
	})
}

// SearchReturnablePurchases finds purchases a supplier return may reference.
func (s *Service) SearchReturnablePurchases(ctx context.Context, q string) ([]models.Purchase, error) {
	term, ok := filters.SearchTerm(q, filters.MinSearchLength)
	if !ok {
		return []models.Purchase{}, nil
	}
	return s.store.ListPurchases(ctx, filters.PurchaseFilter{Search: term, Limit: ReturnSearchLimit})
}
