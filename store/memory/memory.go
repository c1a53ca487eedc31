// Package memory is a mutex-guarded in-process Store. Queries are answered by
// evaluating the same filters the MongoDB store renders to BSON.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"medstore/filters"
	"medstore/models"
	"medstore/store"
)

type Store struct {
	mu             sync.RWMutex
	products       map[models.ProductID]models.Product
	suppliers      map[models.SupplierID]models.Supplier
	customers      map[models.CustomerID]models.Customer
	transactions   map[models.TransactionID]models.Transaction
	purchases      map[models.PurchaseID]models.Purchase
	purchaseOrders map[models.PurchaseOrderID]models.PurchaseOrder
	returns        map[models.ReturnID]models.Return
	users          map[models.UserID]models.User
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		products:       map[models.ProductID]models.Product{},
		suppliers:      map[models.SupplierID]models.Supplier{},
		customers:      map[models.CustomerID]models.Customer{},
		transactions:   map[models.TransactionID]models.Transaction{},
		purchases:      map[models.PurchaseID]models.Purchase{},
		purchaseOrders: map[models.PurchaseOrderID]models.PurchaseOrder{},
		returns:        map[models.ReturnID]models.Return{},
		users:          map[models.UserID]models.User{},
	}
}

func (s *Store) Ping(context.Context) error { return nil }

func notFound(kind string, id any) error {
	return fmt.Errorf("%s %v: %w", kind, id, store.ErrNotFound)
}

func limit[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func cloneProduct(p models.Product) models.Product {
	p.Batches = slices.Clone(p.Batches)
	if p.Batches == nil {
		p.Batches = []models.Batch{}
	}
	return p
}

// Products

func (s *Store) ListProducts(_ context.Context, f filters.ProductFilter) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Product{}
	for _, p := range s.products {
		if f.Match(&p) {
			out = append(out, cloneProduct(p))
		}
	}
	slices.SortFunc(out, func(a, b models.Product) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), strings.Compare(string(a.ID), string(b.ID)))
	})
	return limit(out, f.Limit), nil
}

func (s *Store) GetProduct(_ context.Context, id models.ProductID) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, notFound("product", id)
	}
	p = cloneProduct(p)
	return &p, nil
}

func (s *Store) CreateProduct(_ context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[p.ID]; ok {
		return fmt.Errorf("product %s: %w", p.ID, store.ErrConflict)
	}
	s.products[p.ID] = cloneProduct(*p)
	return nil
}

func (s *Store) ReplaceProduct(_ context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[p.ID]; !ok {
		return notFound("product", p.ID)
	}
	s.products[p.ID] = cloneProduct(*p)
	return nil
}

func (s *Store) DeleteProduct(_ context.Context, id models.ProductID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return notFound("product", id)
	}
	delete(s.products, id)
	return nil
}

// mutateBatch runs fn on one batch under the write lock.
func (s *Store) mutateBatch(id models.ProductID, batchID models.BatchID, fn func(*models.Batch)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return notFound("product", id)
	}
	p = cloneProduct(p)
	b, ok := p.Batch(batchID)
	if !ok {
		return notFound("batch", batchID)
	}
	fn(b)
	p.UpdatedAt = time.Now()
	s.products[id] = p
	return nil
}

func (s *Store) AddBatch(_ context.Context, id models.ProductID, b models.Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return notFound("product", id)
	}
	p = cloneProduct(p)
	p.Batches = append(p.Batches, b)
	p.UpdatedAt = time.Now()
	s.products[id] = p
	return nil
}

func (s *Store) SetBatchStock(_ context.Context, id models.ProductID, batchID models.BatchID, stock int) error {
	return s.mutateBatch(id, batchID, func(b *models.Batch) { b.Stock = stock })
}

func (s *Store) SetBatchSaleDiscount(_ context.Context, id models.ProductID, batchID models.BatchID, pct float64) error {
	return s.mutateBatch(id, batchID, func(b *models.Batch) { b.SaleDiscount = pct })
}

func (s *Store) IncrementBatchStock(_ context.Context, id models.ProductID, batchID models.BatchID, delta int) error {
	return s.mutateBatch(id, batchID, func(b *models.Batch) { b.Stock += delta })
}

func (s *Store) SetProductFlags(_ context.Context, id models.ProductID, orderLater, isOrdered bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return notFound("product", id)
	}
	p.OrderLater, p.IsOrdered = orderLater, isOrdered
	p.UpdatedAt = time.Now()
	s.products[id] = p
	return nil
}

// Suppliers

func (s *Store) ListSuppliers(_ context.Context, f filters.SupplierFilter) ([]models.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Supplier{}
	for _, sp := range s.suppliers {
		if f.Match(&sp) {
			out = append(out, sp)
		}
	}
	slices.SortFunc(out, func(a, b models.Supplier) int { return strings.Compare(a.Name, b.Name) })
	return limit(out, f.Limit), nil
}

func (s *Store) GetSupplier(_ context.Context, id models.SupplierID) (*models.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sp, ok := s.suppliers[id]
	if !ok {
		return nil, notFound("supplier", id)
	}
	return &sp, nil
}

func (s *Store) CreateSupplier(_ context.Context, sp *models.Supplier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppliers[sp.ID] = *sp
	return nil
}

func (s *Store) ReplaceSupplier(_ context.Context, sp *models.Supplier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.suppliers[sp.ID]; !ok {
		return notFound("supplier", sp.ID)
	}
	s.suppliers[sp.ID] = *sp
	return nil
}

func (s *Store) DeleteSupplier(_ context.Context, id models.SupplierID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.suppliers[id]; !ok {
		return notFound("supplier", id)
	}
	delete(s.suppliers, id)
	return nil
}

// Customers

func (s *Store) ListCustomers(_ context.Context, f filters.CustomerFilter) ([]models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Customer{}
	for _, c := range s.customers {
		if f.Match(&c) {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b models.Customer) int { return strings.Compare(a.Name, b.Name) })
	return limit(out, f.Limit), nil
}

func (s *Store) GetCustomer(_ context.Context, id models.CustomerID) (*models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers[id]
	if !ok {
		return nil, notFound("customer", id)
	}
	return &c, nil
}

func (s *Store) UpsertCustomerByPhone(_ context.Context, c *models.Customer) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.customers {
		if existing.Phone == c.Phone {
			existing.Name = c.Name
			existing.UpdatedAt = c.UpdatedAt
			s.customers[id] = existing
			*c = existing
			return false, nil
		}
	}
	s.customers[c.ID] = *c
	return true, nil
}

func (s *Store) ReplaceCustomer(_ context.Context, c *models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[c.ID]; !ok {
		return notFound("customer", c.ID)
	}
	for id, existing := range s.customers {
		if id != c.ID && existing.Phone == c.Phone {
			return fmt.Errorf("customer phone %s: %w", c.Phone, store.ErrConflict)
		}
	}
	s.customers[c.ID] = *c
	return nil
}

func (s *Store) DeleteCustomer(_ context.Context, id models.CustomerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[id]; !ok {
		return notFound("customer", id)
	}
	delete(s.customers, id)
	return nil
}

// Transactions

func cloneTransaction(t models.Transaction) models.Transaction {
	t.Items = slices.Clone(t.Items)
	t.Prescription = maps.Clone(t.Prescription)
	return t
}

func newestFirst(a, b time.Time) int { return b.Compare(a) }

func (s *Store) ListTransactions(_ context.Context, f filters.TransactionFilter) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Transaction{}
	for _, t := range s.transactions {
		if f.Match(&t) {
			out = append(out, cloneTransaction(t))
		}
	}
	slices.SortFunc(out, func(a, b models.Transaction) int { return newestFirst(a.CreatedAt, b.CreatedAt) })
	return limit(out, f.Limit), nil
}

func (s *Store) GetTransaction(_ context.Context, id models.TransactionID) (*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transactions[id]
	if !ok {
		return nil, notFound("transaction", id)
	}
	t = cloneTransaction(t)
	return &t, nil
}

func (s *Store) CreateTransaction(_ context.Context, t *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[t.ID] = cloneTransaction(*t)
	return nil
}

func (s *Store) UpdateTransaction(_ context.Context, id models.TransactionID, patch models.TransactionPatch, at time.Time) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.transactions[id]
	if !ok {
		return nil, notFound("transaction", id)
	}
	t = cloneTransaction(t)
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.PaymentMethod != nil {
		t.PaymentMethod = *patch.PaymentMethod
	}
	if len(patch.Prescription) > 0 {
		if t.Prescription == nil {
			t.Prescription = map[string]string{}
		}
		maps.Copy(t.Prescription, patch.Prescription)
	}
	t.UpdatedAt = at
	s.transactions[id] = t
	out := cloneTransaction(t)
	return &out, nil
}

func (s *Store) BackfillTransactionType(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, t := range s.transactions {
		if t.Type == "" {
			t.Type = models.TransactionSale
			s.transactions[id] = t
			n++
		}
	}
	return n, nil
}

func (s *Store) SumTransactionTotals(_ context.Context, typ models.TransactionType, since time.Time) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum float64
	for _, t := range s.transactions {
		if t.Type == typ && !t.CreatedAt.Before(since) {
			sum += t.Total
		}
	}
	return sum, nil
}

// Purchases

func (s *Store) ListPurchases(_ context.Context, f filters.PurchaseFilter) ([]models.Purchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Purchase{}
	for _, p := range s.purchases {
		if f.Match(&p) {
			p.Items = slices.Clone(p.Items)
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b models.Purchase) int { return newestFirst(a.CreatedAt, b.CreatedAt) })
	return limit(out, f.Limit), nil
}

func (s *Store) GetPurchase(_ context.Context, id models.PurchaseID) (*models.Purchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.purchases[id]
	if !ok {
		return nil, notFound("purchase", id)
	}
	p.Items = slices.Clone(p.Items)
	return &p, nil
}

func (s *Store) CreatePurchase(_ context.Context, p *models.Purchase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	cp.Items = slices.Clone(p.Items)
	s.purchases[p.ID] = cp
	return nil
}

func (s *Store) UpdatePurchase(_ context.Context, id models.PurchaseID, patch models.PurchasePatch, at time.Time) (*models.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.purchases[id]
	if !ok {
		return nil, notFound("purchase", id)
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.PaymentMethod != nil {
		p.PaymentMethod = *patch.PaymentMethod
	}
	if patch.InvoiceNumber != nil {
		p.InvoiceNumber = *patch.InvoiceNumber
	}
	p.UpdatedAt = at
	s.purchases[id] = p
	p.Items = slices.Clone(p.Items)
	return &p, nil
}

// Purchase orders

func (s *Store) ListPurchaseOrders(_ context.Context, f filters.PurchaseOrderFilter) ([]models.PurchaseOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.PurchaseOrder{}
	for _, po := range s.purchaseOrders {
		if f.Match(&po) {
			po.Items = slices.Clone(po.Items)
			out = append(out, po)
		}
	}
	slices.SortFunc(out, func(a, b models.PurchaseOrder) int { return newestFirst(a.CreatedAt, b.CreatedAt) })
	return out, nil
}

func (s *Store) GetPurchaseOrder(_ context.Context, id models.PurchaseOrderID) (*models.PurchaseOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	po, ok := s.purchaseOrders[id]
	if !ok {
		return nil, notFound("purchase order", id)
	}
	po.Items = slices.Clone(po.Items)
	return &po, nil
}

func (s *Store) CreatePurchaseOrder(_ context.Context, po *models.PurchaseOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *po
	cp.Items = slices.Clone(po.Items)
	s.purchaseOrders[po.ID] = cp
	return nil
}

func (s *Store) ReplacePurchaseOrder(_ context.Context, po *models.PurchaseOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.purchaseOrders[po.ID]; !ok {
		return notFound("purchase order", po.ID)
	}
	cp := *po
	cp.Items = slices.Clone(po.Items)
	s.purchaseOrders[po.ID] = cp
	return nil
}

// Returns

func (s *Store) ListReturns(_ context.Context, f filters.ReturnFilter) ([]models.Return, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Return{}
	for _, r := range s.returns {
		if f.Match(&r) {
			r.Items = slices.Clone(r.Items)
			out = append(out, r)
		}
	}
	slices.SortFunc(out, func(a, b models.Return) int { return newestFirst(a.CreatedAt, b.CreatedAt) })
	return out, nil
}

func (s *Store) GetReturn(_ context.Context, id models.ReturnID) (*models.Return, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.returns[id]
	if !ok {
		return nil, notFound("return", id)
	}
	r.Items = slices.Clone(r.Items)
	return &r, nil
}

func (s *Store) CreateReturn(_ context.Context, r *models.Return) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	cp.Items = slices.Clone(r.Items)
	s.returns[r.ID] = cp
	return nil
}

// Users

func (s *Store) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, notFound("user", email)
}

func (s *Store) GetUser(_ context.Context, id models.UserID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, notFound("user", id)
	}
	return &u, nil
}

func (s *Store) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return fmt.Errorf("user %s: %w", u.Email, store.ErrConflict)
		}
	}
	s.users[u.ID] = *u
	return nil
}

func (s *Store) CountUsers(context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}
