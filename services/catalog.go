package services

import (
	"context"
	"log/slog"
	"strings"

	"medstore/filters"
	"medstore/inventory"
	"medstore/models"
)

// ProductSearchLimit caps /products/search results.
const ProductSearchLimit = 50

// ProductView is a product enriched with its derived stock state.
type ProductView struct {
	models.Product
	TotalStock  int                   `json:"totalStock"`
	StockStatus inventory.StockStatus `json:"stockStatus"`
}

func viewOf(p models.Product) ProductView {
	return ProductView{
		Product:     p,
		TotalStock:  inventory.TotalStock(&p),
		StockStatus: inventory.Status(&p),
	}
}

func viewsOf(products []models.Product) []ProductView {
	out := make([]ProductView, 0, len(products))
	for _, p := range products {
		out = append(out, viewOf(p))
	}
	return out
}

func (s *Service) ListProducts(ctx context.Context) ([]ProductView, error) {
	products, err := s.store.ListProducts(ctx, filters.ProductFilter{})
	if err != nil {
		return nil, err
	}
	return viewsOf(products), nil
}

// FilterProducts runs the storage query and then applies the stock-state post-filter.
func (s *Service) FilterProducts(ctx context.Context, f filters.ProductFilter) ([]ProductView, error) {
	products, err := s.store.ListProducts(ctx, f)
	if err != nil {
		return nil, err
	}
	matched := f.PostFilter(products)
	s.log.DebugContext(ctx, "products filtered",
		slog.String("filter", f.String()),
		slog.Int("matched", len(matched)))
	return viewsOf(matched), nil
}

// SearchProducts returns an empty list without querying when q is too short.
func (s *Service) SearchProducts(ctx context.Context, q string) ([]ProductView, error) {
	term, ok := filters.SearchTerm(q, filters.MinSearchLength)
	if !ok {
		return []ProductView{}, nil
	}
	products, err := s.store.ListProducts(ctx, filters.ProductFilter{Search: term, Limit: ProductSearchLimit})
	if err != nil {
		return nil, err
	}
	return viewsOf(products), nil
}

func (s *Service) GetProduct(ctx context.Context, id models.ProductID) (*ProductView, error) {
	p, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	v := viewOf(*p)
	return &v, nil
}

func (s *Service) CreateProduct(ctx context.Context, p *models.Product) error {
	p.ID = models.NewID[models.ProductID]()
	p.Name = strings.TrimSpace(p.Name)
	p.Normalize()
	if err := p.Validate(); err != nil {
		return err
	}
	now := s.now()
	p.CreatedAt, p.UpdatedAt = now, now
	return s.store.CreateProduct(ctx, p)
}

// UpdateProduct replaces the editable fields of a product. Identity and
// creation time are kept from the stored document.
func (s *Service) UpdateProduct(ctx context.Context, id models.ProductID, p *models.Product) error {
	existing, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.Name = strings.TrimSpace(p.Name)
	p.Normalize()
	if err := p.Validate(); err != nil {
		return err
	}
	p.UpdatedAt = s.now()
	return s.store.ReplaceProduct(ctx, p)
}

func (s *Service) DeleteProduct(ctx context.Context, id models.ProductID) error {
	return s.store.DeleteProduct(ctx, id)
}

func (s *Service) AddBatch(ctx context.Context, id models.ProductID, b models.Batch) (*ProductView, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	b.ID = models.NewID[models.BatchID]()
	if err := s.store.AddBatch(ctx, id, b); err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, id)
}

// SetBatchStock overwrites a batch's stock. Concurrent writers resolve last-writer-wins.
func (s *Service) SetBatchStock(ctx context.Context, id models.ProductID, batchID models.BatchID, stock int) (*ProductView, error) {
	if stock < 0 {
		return nil, models.Invalid("stock", "must not be negative")
	}
	if err := s.store.SetBatchStock(ctx, id, batchID, stock); err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, id)
}

func (s *Service) SetBatchSaleDiscount(ctx context.Context, id models.ProductID, batchID models.BatchID, pct float64) (*ProductView, error) {
	if pct < 0 || pct > 100 {
		return nil, models.Invalid("saleDiscount", "must be between 0 and 100")
	}
	if err := s.store.SetBatchSaleDiscount(ctx, id, batchID, pct); err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, id)
}

func (s *Service) SetProductFlags(ctx context.Context, id models.ProductID, orderLater, isOrdered bool) (*ProductView, error) {
	if err := s.store.SetProductFlags(ctx, id, orderLater, isOrdered); err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, id)
}

// ExpiringBatches lists in-stock batches across the catalog that fall in w, soonest first.
func (s *Service) ExpiringBatches(ctx context.Context, w inventory.Window) ([]inventory.ExpiringBatch, error) {
	products, err := s.store.ListProducts(ctx, filters.ProductFilter{})
	if err != nil {
		return nil, err
	}
	out := inventory.ExpiringAcross(products, s.now(), w)
	attrs := []any{slog.String("window", w.String()), slog.Int("matched", len(out))}
	if !w.IsExpired() {
		attrs = append(attrs, slog.Int("days", w.Days()))
	}
	s.log.DebugContext(ctx, "expiring batches listed", attrs...)
	return out, nil
}

func (s *Service) ProductStats(ctx context.Context) (inventory.Summary, error) {
	products, err := s.store.ListProducts(ctx, filters.ProductFilter{})
	if err != nil {
		return inventory.Summary{}, err
	}
	return inventory.Summarize(products, s.now()), nil
}
