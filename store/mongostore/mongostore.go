// Package mongostore implements store.Store on MongoDB.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medstore/filters"
	"medstore/models"
	"medstore/store"
)

const (
	productsCollection       = "products"
	suppliersCollection      = "suppliers"
	customersCollection      = "customers"
	transactionsCollection   = "transactions"
	purchasesCollection      = "purchases"
	purchaseOrdersCollection = "purchaseorders"
	returnsCollection        = "returns"
	usersCollection          = "users"
)

type Store struct {
	db *mongo.Database

	products       *mongo.Collection
	suppliers      *mongo.Collection
	customers      *mongo.Collection
	transactions   *mongo.Collection
	purchases      *mongo.Collection
	purchaseOrders *mongo.Collection
	returns        *mongo.Collection
	users          *mongo.Collection
}

var _ store.Store = (*Store)(nil)

func New(db *mongo.Database) *Store {
	return &Store{
		db:             db,
		products:       db.Collection(productsCollection),
		suppliers:      db.Collection(suppliersCollection),
		customers:      db.Collection(customersCollection),
		transactions:   db.Collection(transactionsCollection),
		purchases:      db.Collection(purchasesCollection),
		purchaseOrders: db.Collection(purchaseOrdersCollection),
		returns:        db.Collection(returnsCollection),
		users:          db.Collection(usersCollection),
	}
}

// EnsureIndexes creates the indexes queries and uniqueness rules rely on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	specs := []struct {
		coll  *mongo.Collection
		model mongo.IndexModel
	}{
		{s.customers, mongo.IndexModel{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{s.users, mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{s.products, mongo.IndexModel{Keys: bson.D{{Key: "name", Value: 1}, {Key: "manufacturer", Value: 1}}}},
		{s.products, mongo.IndexModel{Keys: bson.D{{Key: "schedule", Value: 1}}}},
		{s.transactions, mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}}},
		{s.transactions, mongo.IndexModel{Keys: bson.D{{Key: "type", Value: 1}, {Key: "createdAt", Value: -1}}}},
		{s.purchases, mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}}},
		{s.returns, mongo.IndexModel{Keys: bson.D{{Key: "type", Value: 1}, {Key: "createdAt", Value: -1}}}},
	}
	for _, spec := range specs {
		if _, err := spec.coll.Indexes().CreateOne(ctx, spec.model); err != nil {
			return fmt.Errorf("create index on %s: %w", spec.coll.Name(), err)
		}
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

func find[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return out, nil
}

func findByID[T any](ctx context.Context, coll *mongo.Collection, id string) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s %s: %w", coll.Name(), id, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find %s %s: %w", coll.Name(), id, err)
	}
	return &doc, nil
}

func insert(ctx context.Context, coll *mongo.Collection, doc any) error {
	_, err := coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("insert %s: %w", coll.Name(), store.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("insert %s: %w", coll.Name(), err)
	}
	return nil
}

func replace(ctx context.Context, coll *mongo.Collection, id string, doc any) error {
	res, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("replace %s %s: %w", coll.Name(), id, store.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("replace %s %s: %w", coll.Name(), id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s %s: %w", coll.Name(), id, store.ErrNotFound)
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", coll.Name(), id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s %s: %w", coll.Name(), id, store.ErrNotFound)
	}
	return nil
}

func update(ctx context.Context, coll *mongo.Collection, filter bson.M, upd bson.M) error {
	res, err := coll.UpdateOne(ctx, filter, upd)
	if err != nil {
		return fmt.Errorf("update %s: %w", coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s %v: %w", coll.Name(), filter["_id"], store.ErrNotFound)
	}
	return nil
}

// findAndSet applies $set to one document and decodes the result.
func findAndSet[T any](ctx context.Context, coll *mongo.Collection, id string, set bson.M) (*T, error) {
	var doc T
	err := coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s %s: %w", coll.Name(), id, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update %s %s: %w", coll.Name(), id, err)
	}
	return &doc, nil
}

func newestFirst(limit int) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return opts
}

func byName(limit int) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return opts
}

// Products

func (s *Store) ListProducts(ctx context.Context, f filters.ProductFilter) ([]models.Product, error) {
	return find[models.Product](ctx, s.products, f.BSON(), byName(f.Limit))
}

func (s *Store) GetProduct(ctx context.Context, id models.ProductID) (*models.Product, error) {
	return findByID[models.Product](ctx, s.products, string(id))
}

func (s *Store) CreateProduct(ctx context.Context, p *models.Product) error {
	return insert(ctx, s.products, p)
}

func (s *Store) ReplaceProduct(ctx context.Context, p *models.Product) error {
	return replace(ctx, s.products, string(p.ID), p)
}

func (s *Store) DeleteProduct(ctx context.Context, id models.ProductID) error {
	return deleteByID(ctx, s.products, string(id))
}

func (s *Store) AddBatch(ctx context.Context, id models.ProductID, b models.Batch) error {
	return update(ctx, s.products, bson.M{"_id": id}, pushBatch(b, time.Now()))
}

func (s *Store) SetBatchStock(ctx context.Context, id models.ProductID, batchID models.BatchID, stock int) error {
	return update(ctx, s.products, batchFilter(id, batchID), setBatchField("stock", stock, time.Now()))
}

func (s *Store) SetBatchSaleDiscount(ctx context.Context, id models.ProductID, batchID models.BatchID, pct float64) error {
	return update(ctx, s.products, batchFilter(id, batchID), setBatchField("saleDiscount", pct, time.Now()))
}

func (s *Store) IncrementBatchStock(ctx context.Context, id models.ProductID, batchID models.BatchID, delta int) error {
	return update(ctx, s.products, batchFilter(id, batchID), incBatchStock(delta, time.Now()))
}

func (s *Store) SetProductFlags(ctx context.Context, id models.ProductID, orderLater, isOrdered bool) error {
	return update(ctx, s.products, bson.M{"_id": id}, setProductFlags(orderLater, isOrdered, time.Now()))
}

// Suppliers

func (s *Store) ListSuppliers(ctx context.Context, f filters.SupplierFilter) ([]models.Supplier, error) {
	return find[models.Supplier](ctx, s.suppliers, f.BSON(), byName(f.Limit))
}

func (s *Store) GetSupplier(ctx context.Context, id models.SupplierID) (*models.Supplier, error) {
	return findByID[models.Supplier](ctx, s.suppliers, string(id))
}

func (s *Store) CreateSupplier(ctx context.Context, sp *models.Supplier) error {
	return insert(ctx, s.suppliers, sp)
}

func (s *Store) ReplaceSupplier(ctx context.Context, sp *models.Supplier) error {
	return replace(ctx, s.suppliers, string(sp.ID), sp)
}

func (s *Store) DeleteSupplier(ctx context.Context, id models.SupplierID) error {
	return deleteByID(ctx, s.suppliers, string(id))
}

// Customers

func (s *Store) ListCustomers(ctx context.Context, f filters.CustomerFilter) ([]models.Customer, error) {
	return find[models.Customer](ctx, s.customers, f.BSON(), byName(f.Limit))
}

func (s *Store) GetCustomer(ctx context.Context, id models.CustomerID) (*models.Customer, error) {
	return findByID[models.Customer](ctx, s.customers, string(id))
}

func (s *Store) UpsertCustomerByPhone(ctx context.Context, c *models.Customer) (bool, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var stored models.Customer
	err := s.customers.FindOneAndUpdate(ctx, bson.M{"phone": c.Phone}, upsertCustomer(c), opts).Decode(&stored)
	if err != nil {
		return false, fmt.Errorf("upsert customer %s: %w", c.Phone, err)
	}
	created := stored.ID == c.ID
	*c = stored
	return created, nil
}

func (s *Store) ReplaceCustomer(ctx context.Context, c *models.Customer) error {
	return replace(ctx, s.customers, string(c.ID), c)
}

func (s *Store) DeleteCustomer(ctx context.Context, id models.CustomerID) error {
	return deleteByID(ctx, s.customers, string(id))
}

// Transactions

func (s *Store) ListTransactions(ctx context.Context, f filters.TransactionFilter) ([]models.Transaction, error) {
	return find[models.Transaction](ctx, s.transactions, f.BSON(), newestFirst(f.Limit))
}

func (s *Store) GetTransaction(ctx context.Context, id models.TransactionID) (*models.Transaction, error) {
	return findByID[models.Transaction](ctx, s.transactions, string(id))
}

func (s *Store) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	return insert(ctx, s.transactions, t)
}

func (s *Store) UpdateTransaction(ctx context.Context, id models.TransactionID, patch models.TransactionPatch, at time.Time) (*models.Transaction, error) {
	return findAndSet[models.Transaction](ctx, s.transactions, string(id), transactionSet(patch, at))
}

func (s *Store) BackfillTransactionType(ctx context.Context) (int64, error) {
	res, err := s.transactions.UpdateMany(ctx,
		bson.M{"type": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"type": models.TransactionSale}})
	if err != nil {
		return 0, fmt.Errorf("backfill transaction type: %w", err)
	}
	return res.ModifiedCount, nil
}

func (s *Store) SumTransactionTotals(ctx context.Context, typ models.TransactionType, since time.Time) (float64, error) {
	cursor, err := s.transactions.Aggregate(ctx, sumTotalsPipeline(typ, since))
	if err != nil {
		return 0, fmt.Errorf("sum %s totals: %w", typ, err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("decode %s totals: %w", typ, err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// Purchases

func (s *Store) ListPurchases(ctx context.Context, f filters.PurchaseFilter) ([]models.Purchase, error) {
	return find[models.Purchase](ctx, s.purchases, f.BSON(), newestFirst(f.Limit))
}

func (s *Store) GetPurchase(ctx context.Context, id models.PurchaseID) (*models.Purchase, error) {
	return findByID[models.Purchase](ctx, s.purchases, string(id))
}

func (s *Store) CreatePurchase(ctx context.Context, p *models.Purchase) error {
	return insert(ctx, s.purchases, p)
}

func (s *Store) UpdatePurchase(ctx context.Context, id models.PurchaseID, patch models.PurchasePatch, at time.Time) (*models.Purchase, error) {
	return findAndSet[models.Purchase](ctx, s.purchases, string(id), purchaseSet(patch, at))
}

// Purchase orders

func (s *Store) ListPurchaseOrders(ctx context.Context, f filters.PurchaseOrderFilter) ([]models.PurchaseOrder, error) {
	return find[models.PurchaseOrder](ctx, s.purchaseOrders, f.BSON(), newestFirst(0))
}

func (s *Store) GetPurchaseOrder(ctx context.Context, id models.PurchaseOrderID) (*models.PurchaseOrder, error) {
	return findByID[models.PurchaseOrder](ctx, s.purchaseOrders, string(id))
}

func (s *Store) CreatePurchaseOrder(ctx context.Context, po *models.PurchaseOrder) error {
	return insert(ctx, s.purchaseOrders, po)
}

func (s *Store) ReplacePurchaseOrder(ctx context.Context, po *models.PurchaseOrder) error {
	return replace(ctx, s.purchaseOrders, string(po.ID), po)
}

// Returns

func (s *Store) ListReturns(ctx context.Context, f filters.ReturnFilter) ([]models.Return, error) {
	return find[models.Return](ctx, s.returns, f.BSON(), newestFirst(0))
}

func (s *Store) GetReturn(ctx context.Context, id models.ReturnID) (*models.Return, error) {
	return findByID[models.Return](ctx, s.returns, string(id))
}

func (s *Store) CreateReturn(ctx context.Context, r *models.Return) error {
	return insert(ctx, s.returns, r)
}

// Users

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("user %s: %w", email, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", email, err)
	}
	return &u, nil
}

func (s *Store) GetUser(ctx context.Context, id models.UserID) (*models.User, error) {
	return findByID[models.User](ctx, s.users, string(id))
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	return insert(ctx, s.users, u)
}

func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	n, err := s.users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
