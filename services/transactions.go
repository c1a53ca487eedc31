package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"medstore/filters"
	"medstore/models"
	"medstore/store"
)

// CreateTransaction records a ledger entry. It never changes stock. A sale that
// names a customer with a phone number registers or refreshes that customer.
func (s *Service) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	if t.Type == "" {
		t.Type = models.TransactionSale
	}
	t.CustomerName = strings.TrimSpace(t.CustomerName)
	t.CustomerPhone = strings.TrimSpace(t.CustomerPhone)
	if err := t.Validate(); err != nil {
		return err
	}
	now := s.now()

	switch t.Type {
	case models.TransactionSale:
		if t.CustomerName != "" && t.CustomerPhone != "" {
			c := &models.Customer{
				ID:        models.NewID[models.CustomerID](),
				Name:      t.CustomerName,
				Phone:     t.CustomerPhone,
				CreatedAt: now,
				UpdatedAt: now,
			}
			created, err := s.store.UpsertCustomerByPhone(ctx, c)
			if err != nil {
				return err
			}
			t.CustomerID = c.ID
			if created {
				s.log.InfoContext(ctx, "customer registered from sale", slog.String("customerId", string(c.ID)))
			}
		}
	case models.TransactionPurchase:
		if t.SupplierID != "" && t.SupplierName == "" {
			sp, err := s.store.GetSupplier(ctx, t.SupplierID)
			switch {
			case err == nil:
				t.SupplierName = sp.Name
			case !errors.Is(err, store.ErrNotFound):
				return err
			}
		}
	}

	t.ID = models.NewID[models.TransactionID]()
	t.CreatedAt, t.UpdatedAt = now, now
	return s.store.CreateTransaction(ctx, t)
}

// backfill migrates legacy ledger entries recorded before type existed.
func (s *Service) backfill(ctx context.Context) error {
	n, err := s.store.BackfillTransactionType(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		s.log.InfoContext(ctx, "backfilled transaction type", slog.Int64("count", n))
	}
	return nil
}

// ListTransactions returns the most recent ledger entries.
func (s *Service) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	if err := s.backfill(ctx); err != nil {
		return nil, err
	}
	return s.store.ListTransactions(ctx, filters.TransactionFilter{Limit: filters.DefaultTransactionLimit})
}

// FilterTransactions applies the composite filter. A schedule is resolved to
// the ids of the products carrying it, so a schedule nobody carries matches nothing.
func (s *Service) FilterTransactions(ctx context.Context, f filters.TransactionFilter) ([]models.Transaction, error) {
	if err := s.backfill(ctx); err != nil {
		return nil, err
	}
	if f.Schedule != "" {
		products, err := s.store.ListProducts(ctx, filters.ProductFilter{Schedules: []models.Schedule{f.Schedule}})
		if err != nil {
			return nil, err
		}
		ids := make([]models.ProductID, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID)
		}
		f.RestrictToProducts(ids)
	}
	if f.Limit == 0 {
		f.Limit = filters.DefaultTransactionLimit
	}
	return s.store.ListTransactions(ctx, f)
}

func (s *Service) GetTransaction(ctx context.Context, id models.TransactionID) (*models.Transaction, error) {
	return s.store.GetTransaction(ctx, id)
}

func (s *Service) UpdateTransaction(ctx context.Context, id models.TransactionID, patch models.TransactionPatch) (*models.Transaction, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.store.UpdateTransaction(ctx, id, patch, s.now())
}
