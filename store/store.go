//go:generate mockgen -destination=mockstore/store_mock.go -package=mockstore medstore/store Store

// Package store defines the persistence contracts. store/mongostore is the
// production implementation; store/memory backs tests and local development.
package store

import (
	"context"
	"errors"
	"time"

	"medstore/filters"
	"medstore/models"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

type Products interface {
	ListProducts(ctx context.Context, f filters.ProductFilter) ([]models.Product, error)
	GetProduct(ctx context.Context, id models.ProductID) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	ReplaceProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id models.ProductID) error
	AddBatch(ctx context.Context, id models.ProductID, b models.Batch) error
	SetBatchStock(ctx context.Context, id models.ProductID, batchID models.BatchID, stock int) error
	SetBatchSaleDiscount(ctx context.Context, id models.ProductID, batchID models.BatchID, pct float64) error
	// IncrementBatchStock atomically adds delta to one batch. It returns
	// ErrNotFound when the product or the batch does not exist.
	IncrementBatchStock(ctx context.Context, id models.ProductID, batchID models.BatchID, delta int) error
	SetProductFlags(ctx context.Context, id models.ProductID, orderLater, isOrdered bool) error
}

type Suppliers interface {
	ListSuppliers(ctx context.Context, f filters.SupplierFilter) ([]models.Supplier, error)
	GetSupplier(ctx context.Context, id models.SupplierID) (*models.Supplier, error)
	CreateSupplier(ctx context.Context, s *models.Supplier) error
	ReplaceSupplier(ctx context.Context, s *models.Supplier) error
	DeleteSupplier(ctx context.Context, id models.SupplierID) error
}

type Customers interface {
	ListCustomers(ctx context.Context, f filters.CustomerFilter) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id models.CustomerID) (*models.Customer, error)
	// UpsertCustomerByPhone inserts c, or overwrites the name of the customer
	// already holding c.Phone. c is updated with the stored document.
	UpsertCustomerByPhone(ctx context.Context, c *models.Customer) (created bool, err error)
	ReplaceCustomer(ctx context.Context, c *models.Customer) error
	DeleteCustomer(ctx context.Context, id models.CustomerID) error
}

type Transactions interface {
	ListTransactions(ctx context.Context, f filters.TransactionFilter) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id models.TransactionID) (*models.Transaction, error)
	CreateTransaction(ctx context.Context, t *models.Transaction) error
	UpdateTransaction(ctx context.Context, id models.TransactionID, patch models.TransactionPatch, at time.Time) (*models.Transaction, error)
	// BackfillTransactionType sets type=sale on legacy entries that have none.
	BackfillTransactionType(ctx context.Context) (int64, error)
	SumTransactionTotals(ctx context.Context, typ models.TransactionType, since time.Time) (float64, error)
}

type Purchases interface {
	ListPurchases(ctx context.Context, f filters.PurchaseFilter) ([]models.Purchase, error)
	GetPurchase(ctx context.Context, id models.PurchaseID) (*models.Purchase, error)
	CreatePurchase(ctx context.Context, p *models.Purchase) error
	UpdatePurchase(ctx context.Context, id models.PurchaseID, patch models.PurchasePatch, at time.Time) (*models.Purchase, error)
}

type PurchaseOrders interface {
	ListPurchaseOrders(ctx context.Context, f filters.PurchaseOrderFilter) ([]models.PurchaseOrder, error)
	GetPurchaseOrder(ctx context.Context, id models.PurchaseOrderID) (*models.PurchaseOrder, error)
	CreatePurchaseOrder(ctx context.Context, po *models.PurchaseOrder) error
	ReplacePurchaseOrder(ctx context.Context, po *models.PurchaseOrder) error
}

type Returns interface {
	ListReturns(ctx context.Context, f filters.ReturnFilter) ([]models.Return, error)
	GetReturn(ctx context.Context, id models.ReturnID) (*models.Return, error)
	CreateReturn(ctx context.Context, r *models.Return) error
}

type Users interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUser(ctx context.Context, id models.UserID) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
	CountUsers(ctx context.Context) (int64, error)
}

// Store is everything the application persists.
type Store interface {
	Products
	Suppliers
	Customers
	Transactions
	Purchases
	PurchaseOrders
	Returns
	Users
	Ping(ctx context.Context) error
}
