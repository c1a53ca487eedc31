package services

import (
	"context"
	"strings"

	"medstore/filters"
	"medstore/models"
)

// CustomerSearchLimit caps /customers/search results.
const CustomerSearchLimit = 20

func (s *Service) ListSuppliers(ctx context.Context, f filters.SupplierFilter) ([]models.Supplier, error) {
	return s.store.ListSuppliers(ctx, f)
}

func (s *Service) GetSupplier(ctx context.Context, id models.SupplierID) (*models.Supplier, error) {
	return s.store.GetSupplier(ctx, id)
}

func (s *Service) CreateSupplier(ctx context.Context, sp *models.Supplier) error {
	sp.Name = strings.TrimSpace(sp.Name)
	if err := sp.Validate(); err != nil {
		return err
	}
	now := s.now()
	sp.ID = models.NewID[models.SupplierID]()
	sp.CreatedAt, sp.UpdatedAt = now, now
	return s.store.CreateSupplier(ctx, sp)
}

func (s *Service) UpdateSupplier(ctx context.Context, id models.SupplierID, sp *models.Supplier) error {
	existing, err := s.store.GetSupplier(ctx, id)
	if err != nil {
		return err
	}
	sp.Name = strings.TrimSpace(sp.Name)
	if err := sp.Validate(); err != nil {
		return err
	}
	sp.ID, sp.CreatedAt = existing.ID, existing.CreatedAt
	sp.UpdatedAt = s.now()
	return s.store.ReplaceSupplier(ctx, sp)
}

func (s *Service) DeleteSupplier(ctx context.Context, id models.SupplierID) error {
	return s.store.DeleteSupplier(ctx, id)
}

func (s *Service) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.store.ListCustomers(ctx, filters.CustomerFilter{})
}

// SearchCustomers returns an empty list without querying when q is too short.
func (s *Service) SearchCustomers(ctx context.Context, q string) ([]models.Customer, error) {
	term, ok := filters.SearchTerm(q, filters.MinSearchLength)
	if !ok {
		return []models.Customer{}, nil
	}
	return s.store.ListCustomers(ctx, filters.CustomerFilter{Search: term, Limit: CustomerSearchLimit})
}

func (s *Service) GetCustomer(ctx context.Context, id models.CustomerID) (*models.Customer, error) {
	return s.store.GetCustomer(ctx, id)
}

// CreateCustomer registers a customer. Submitting a phone that is already
// known renames that customer instead of creating a duplicate.
func (s *Service) CreateCustomer(ctx context.Context, c *models.Customer) (created bool, err error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	if err := c.Validate(); err != nil {
		return false, err
	}
	now := s.now()
	c.ID = models.NewID[models.CustomerID]()
	c.CreatedAt, c.UpdatedAt = now, now
	return s.store.UpsertCustomerByPhone(ctx, c)
}

func (s *Service) UpdateCustomer(ctx context.Context, id models.CustomerID, c *models.Customer) error {
	existing, err := s.store.GetCustomer(ctx, id)
	if err != nil {
		return err
	}
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	if err := c.Validate(); err != nil {
		return err
	}
	c.ID, c.CreatedAt = existing.ID, existing.CreatedAt
	c.UpdatedAt = s.now()
	return s.store.ReplaceCustomer(ctx, c)
}

func (s *Service) DeleteCustomer(ctx context.Context, id models.CustomerID) error {
	return s.store.DeleteCustomer(ctx, id)
}
