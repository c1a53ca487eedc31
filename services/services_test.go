package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"medstore/filters"
	"medstore/inventory"
	"medstore/models"
	"medstore/store"
	"medstore/store/memory"
	"medstore/store/mockstore"
)

var testNow = time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	st := memory.New()
	return New(st, WithClock(func() time.Time { return testNow })), st
}

func seedProduct(t *testing.T, st *memory.Store, name string, schedule models.Schedule, batches ...models.Batch) *models.Product {
	t.Helper()
	p := &models.Product{
		ID:           models.NewID[models.ProductID](),
		Name:         name,
		Manufacturer: "Cipla",
		Schedule:     schedule,
		Batches:      batches,
		CreatedAt:    testNow,
		UpdatedAt:    testNow,
	}
	p.Normalize()
	require.NoError(t, st.CreateProduct(context.Background(), p))
	return p
}

func seedSupplier(t *testing.T, st *memory.Store, name string) *models.Supplier {
	t.Helper()
	sp := &models.Supplier{ID: models.NewID[models.SupplierID](), Name: name}
	require.NoError(t, st.CreateSupplier(context.Background(), sp))
	return sp
}

func batch(number string, stock int, expiresIn time.Duration) models.Batch {
	return models.Batch{
		ID:            models.NewID[models.BatchID](),
		BatchNumber:   number,
		ExpiryDate:    testNow.Add(expiresIn),
		Stock:         stock,
		MRP:           100,
		PurchasePrice: 80,
	}
}

func validationFields(t *testing.T, err error) []string {
	t.Helper()
	var v *models.ValidationError
	require.True(t, errors.As(err, &v), "want validation error, got %v", err)
	out := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		out = append(out, f.Field)
	}
	return out
}

func TestCreatePurchaseIncrementsEveryBatch(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	a := seedProduct(t, st, "Amoxicillin", models.ScheduleH, batch("A1", 10, 400*24*time.Hour))
	b := seedProduct(t, st, "Cetirizine", models.ScheduleNone, batch("C1", 3, 400*24*time.Hour))
	sp := seedSupplier(t, st, "Medline")

	rec, err := svc.CreatePurchase(ctx, &models.Purchase{
		SupplierID:    sp.ID,
		InvoiceNumber: "INV-1",
		Status:        models.StatusPaid,
		Total:         500,
		Items: []models.PurchaseItem{
			{ProductID: a.ID, BatchID: a.Batches[0].ID, Quantity: 5, Price: 50},
			{ProductID: b.ID, BatchID: b.Batches[0].ID, Quantity: 7, Price: 30},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCash, rec.PaymentMethod)
	assert.Equal(t, "Medline", rec.SupplierName)
	assert.Equal(t, 0, rec.Skipped())
	assert.Equal(t, 250.0, rec.Items[0].Amount)

	gotA, _ := st.GetProduct(ctx, a.ID)
	gotB, _ := st.GetProduct(ctx, b.ID)
	assert.Equal(t, 15, gotA.Batches[0].Stock)
	assert.Equal(t, 10, gotB.Batches[0].Stock)
}

func TestCreatePurchaseSkipsMissingBatch(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	a := seedProduct(t, st, "Amoxicillin", models.ScheduleH, batch("A1", 10, 400*24*time.Hour))

	rec, err := svc.CreatePurchase(ctx, &models.Purchase{
		SupplierID:    seedSupplier(t, st, "Medline").ID,
		Status:        models.StatusCredit,
		PaymentMethod: models.PaymentBank,
		Items: []models.PurchaseItem{
			{ProductID: a.ID, BatchID: models.NewID[models.BatchID](), Quantity: 4},
			{ProductID: a.ID, BatchID: a.Batches[0].ID, Quantity: 2},
		},
	})
	require.NoError(t, err)
	require.Len(t, rec.StockUpdates, 2)
	assert.False(t, rec.StockUpdates[0].Applied)
	assert.NotEmpty(t, rec.StockUpdates[0].Reason)
	assert.True(t, rec.StockUpdates[1].Applied)
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.metrics.PurchaseStockSkips))

	got, _ := st.GetProduct(ctx, a.ID)
	assert.Equal(t, 12, got.Batches[0].Stock)

	saved, err := svc.GetPurchase(ctx, rec.ID)
	require.NoError(t, err)
	assert.Len(t, saved.Items, 2)
}

func TestCreatePurchaseValidation(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.CreatePurchase(context.Background(), &models.Purchase{Status: "unpaid", Total: -1})
	assert.ElementsMatch(t, []string{"supplierId", "items", "total", "status"}, validationFields(t, err))
}

func TestCreatePurchaseUnknownSupplier(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	a := seedProduct(t, st, "Amoxicillin", models.ScheduleH, batch("A1", 10, 400*24*time.Hour))

	_, err := svc.CreatePurchase(ctx, &models.Purchase{
		SupplierID: models.NewID[models.SupplierID](),
		Status:     models.StatusPaid,
		Items:      []models.PurchaseItem{{ProductID: a.ID, BatchID: a.Batches[0].ID, Quantity: 5}},
	})
	assert.ErrorIs(t, err, store.ErrNotFound)

	got, _ := st.GetProduct(ctx, a.ID)
	assert.Equal(t, 10, got.Batches[0].Stock)
	purchases, err := svc.ListPurchases(ctx, filters.PurchaseFilter{})
	require.NoError(t, err)
	assert.Empty(t, purchases)
}

func TestUpdatePurchase(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	a := seedProduct(t, st, "Amoxicillin", models.ScheduleH, batch("A1", 10, 400*24*time.Hour))
	rec, err := svc.CreatePurchase(ctx, &models.Purchase{
		SupplierID: seedSupplier(t, st, "Medline").ID,
		Status:     models.StatusCredit,
		Items:      []models.PurchaseItem{{ProductID: a.ID, BatchID: a.Batches[0].ID, Quantity: 1}},
	})
	require.NoError(t, err)

	paid, upi := models.StatusPaid, models.PaymentUPI
	got, err := svc.UpdatePurchase(ctx, rec.ID, models.PurchasePatch{Status: &paid, PaymentMethod: &upi})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, got.Status)
	assert.Equal(t, models.PaymentUPI, got.PaymentMethod)

	_, err = svc.UpdatePurchase(ctx, models.NewID[models.PurchaseID](), models.PurchasePatch{Status: &paid})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateTransactionRegistersCustomer(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	first := &models.Transaction{
		CustomerName:  "Ravi",
		CustomerPhone: "9876543210",
		Items:         []models.LineItem{{Name: "Dolo 650", Quantity: 2, Price: 30}},
		Total:         60,
		Status:        models.StatusPaid,
		PaymentMethod: "Cash",
	}
	require.NoError(t, svc.CreateTransaction(ctx, first))
	assert.Equal(t, models.TransactionSale, first.Type)
	require.NotEmpty(t, first.CustomerID)

	second := &models.Transaction{
		CustomerName:  "Ravi Kumar",
		CustomerPhone: "9876543210",
		Items:         []models.LineItem{{Name: "Dolo 650", Quantity: 1, Price: 30}},
		Total:         30,
		Status:        models.StatusCredit,
	}
	require.NoError(t, svc.CreateTransaction(ctx, second))
	assert.Equal(t, first.CustomerID, second.CustomerID)

	customers, err := st.ListCustomers(ctx, filters.CustomerFilter{})
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Ravi Kumar", customers[0].Name)
}

func TestCreateTransactionLeavesStockAlone(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	p := seedProduct(t, st, "Dolo 650", models.ScheduleNone, batch("D1", 10, 400*24*time.Hour))

	require.NoError(t, svc.CreateTransaction(ctx, &models.Transaction{
		Items:  []models.LineItem{{ProductID: p.ID, BatchID: p.Batches[0].ID, Name: p.Name, Quantity: 4, Price: 30}},
		Total:  120,
		Status: models.StatusPaid,
	}))
	got, _ := st.GetProduct(ctx, p.ID)
	assert.Equal(t, 10, got.Batches[0].Stock)
}

func TestListTransactionsBackfillsType(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	require.NoError(t, st.CreateTransaction(ctx, &models.Transaction{ID: "legacy", Total: 10, CreatedAt: testNow}))

	got, err := svc.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.TransactionSale, got[0].Type)
}

func TestFilterTransactionsBySchedule(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	h1 := seedProduct(t, st, "Alprazolam", models.ScheduleH1)
	plain := seedProduct(t, st, "Vitamin C", models.ScheduleNone)

	for i, pid := range []models.ProductID{h1.ID, plain.ID} {
		require.NoError(t, st.CreateTransaction(ctx, &models.Transaction{
			ID:        models.NewID[models.TransactionID](),
			Type:      models.TransactionSale,
			Items:     []models.LineItem{{ProductID: pid, Quantity: 1}},
			Status:    models.StatusPaid,
			CreatedAt: testNow.Add(time.Duration(i) * time.Minute),
		}))
	}

	got, err := svc.FilterTransactions(ctx, filters.TransactionFilter{Schedule: models.ScheduleH1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, h1.ID, got[0].Items[0].ProductID)

	got, err = svc.FilterTransactions(ctx, filters.TransactionFilter{Schedule: models.ScheduleNarcotic})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCustomerReturn(t *testing.T) {
	svc, st := newTestService(t)
	ctx := WithActor(context.Background(), Actor{ID: "staff-1", Role: models.RoleStaff})
	require.NoError(t, st.CreateTransaction(ctx, &models.Transaction{ID: "sale-1", Type: models.TransactionSale, CreatedAt: testNow}))

	items := []models.ReturnItem{{Name: "Dolo 650", Quantity: 1, Price: 30}}

	r, err := svc.CreateCustomerReturn(ctx, CustomerReturnRequest{
		OriginalTransactionID: "sale-1",
		Items:                 items,
		TotalAmount:           30,
		SettlementType:        models.SettlementVoucher,
	})
	require.NoError(t, err)
	assert.Regexp(t, `^VCHR-\d+$`, r.VoucherID)
	assert.Equal(t, models.ReturnCompleted, r.Status)
	assert.Equal(t, models.UserID("staff-1"), r.ProcessedBy)
	assert.Equal(t, 30.0, r.Items[0].Amount)

	refund, err := svc.CreateCustomerReturn(ctx, CustomerReturnRequest{
		OriginalTransactionID: "sale-1",
		Items:                 items,
		TotalAmount:           30,
		SettlementType:        models.SettlementRefund,
	})
	require.NoError(t, err)
	assert.Empty(t, refund.VoucherID)

	_, err = svc.CreateCustomerReturn(ctx, CustomerReturnRequest{
		OriginalTransactionID: "missing",
		Items:                 items,
		TotalAmount:           30,
		SettlementType:        models.SettlementRefund,
	})
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Body validation runs before the lookup.
	_, err = svc.CreateCustomerReturn(ctx, CustomerReturnRequest{
		OriginalTransactionID: "missing",
		Items:                 items,
		TotalAmount:           0,
		SettlementType:        "cash",
	})
	assert.ElementsMatch(t, []string{"totalAmount", "settlementType"}, validationFields(t, err))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.metrics.ReturnsSettled.WithLabelValues("customer", "voucher")))
}

func TestSupplierReturnSettlement(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	require.NoError(t, st.CreatePurchase(ctx, &models.Purchase{ID: "paid-1", Status: models.StatusPaid, Total: 150}))
	require.NoError(t, st.CreatePurchase(ctx, &models.Purchase{ID: "credit-1", Status: models.StatusCredit, Total: 150}))
	items := []models.ReturnItem{{Name: "Amoxicillin", Quantity: 3, Price: 50}}

	paid, err := svc.CreateSupplierReturn(ctx, SupplierReturnRequest{OriginalPurchaseID: "paid-1", Items: items, TotalAmount: 150})
	require.NoError(t, err)
	assert.Equal(t, models.SettlementCreditNote, paid.SettlementType)
	assert.Regexp(t, `^CN-\d+$`, paid.CreditNoteID)

	credit, err := svc.CreateSupplierReturn(ctx, SupplierReturnRequest{OriginalPurchaseID: "credit-1", Items: items, TotalAmount: 150})
	require.NoError(t, err)
	assert.Equal(t, models.SettlementLedgerAdjustment, credit.SettlementType)
	assert.Empty(t, credit.CreditNoteID)
	assert.Equal(t, models.ReturnCompleted, credit.Status)

	_, err = svc.CreateSupplierReturn(ctx, SupplierReturnRequest{OriginalPurchaseID: "missing", Items: items, TotalAmount: 150})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.CreateSupplierReturn(ctx, SupplierReturnRequest{OriginalPurchaseID: "paid-1"})
	assert.ElementsMatch(t, []string{"items", "totalAmount"}, validationFields(t, err))

	list, err := svc.ListReturns(ctx, filters.ReturnFilter{Type: models.ReturnSupplier})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestSearchReturnables(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	require.NoError(t, st.CreateTransaction(ctx, &models.Transaction{ID: "s1", Type: models.TransactionSale, CustomerName: "Meera", CustomerPhone: "9000011111", CreatedAt: testNow}))
	require.NoError(t, st.CreatePurchase(ctx, &models.Purchase{ID: "p1", InvoiceNumber: "INV-778", SupplierName: "Medline", CreatedAt: testNow}))

	sales, err := svc.SearchReturnableSales(ctx, "90000")
	require.NoError(t, err)
	assert.Len(t, sales, 1)

	purchases, err := svc.SearchReturnablePurchases(ctx, "inv-7")
	require.NoError(t, err)
	assert.Len(t, purchases, 1)

	short, err := svc.SearchReturnablePurchases(ctx, "in")
	require.NoError(t, err)
	assert.Empty(t, short)
}

func TestSearchOrderAndCaps(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	for range 7 {
		seedProduct(t, st, "Paracetamol", models.ScheduleNone)
	}
	for i := range 4 {
		require.NoError(t, st.CreateTransaction(ctx, &models.Transaction{
			ID:        models.NewID[models.TransactionID](),
			Type:      models.TransactionSale,
			Items:     []models.LineItem{{Name: "Paracetamol", Quantity: 1}},
			CreatedAt: testNow.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, st.CreateSupplier(ctx, &models.Supplier{ID: "s1", Name: "Para Pharma"}))

	got, err := svc.Search(ctx, "para")
	require.NoError(t, err)
	require.Len(t, got, 9)
	for i := range 5 {
		assert.Equal(t, KindProduct, got[i].Kind)
	}
	for i := 5; i < 8; i++ {
		assert.Equal(t, KindTransaction, got[i].Kind)
	}
	assert.Equal(t, KindSupplier, got[8].Kind)

	for i := range 5 {
		_, err := svc.CreateCustomer(ctx, &models.Customer{Name: "Parag", Phone: string(rune('0' + i))})
		require.NoError(t, err)
	}
	got, err = svc.Search(ctx, "para")
	require.NoError(t, err)
	require.Len(t, got, 10)
	assert.Equal(t, KindCustomer, got[8].Kind)
	assert.Equal(t, KindCustomer, got[9].Kind)

	short, err := svc.Search(ctx, "p")
	require.NoError(t, err)
	assert.Empty(t, short)
}

func TestSearchProductsShortQuery(t *testing.T) {
	svc, st := newTestService(t)
	seedProduct(t, st, "Paracetamol", models.ScheduleNone)

	got, err := svc.SearchProducts(context.Background(), "pa")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = svc.SearchProducts(context.Background(), "CETA")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

// The mock carries no expectations, so any store call fails the test.
func TestShortSearchesSkipStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := New(mockstore.NewMockStore(ctrl), WithClock(func() time.Time { return testNow }))
	ctx := context.Background()

	products, err := svc.SearchProducts(ctx, "pa")
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)

	customers, err := svc.SearchCustomers(ctx, "ab")
	require.NoError(t, err)
	assert.NotNil(t, customers)
	assert.Empty(t, customers)

	results, err := svc.Search(ctx, " a ")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)

	sales, err := svc.SearchReturnableSales(ctx, "ab")
	require.NoError(t, err)
	assert.NotNil(t, sales)
	assert.Empty(t, sales)

	purchases, err := svc.SearchReturnablePurchases(ctx, "ab")
	require.NoError(t, err)
	assert.NotNil(t, purchases)
	assert.Empty(t, purchases)
}

func TestSearchProductsQueriesOnlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstore.NewMockStore(ctrl)
	st.EXPECT().
		ListProducts(gomock.Any(), filters.ProductFilter{Search: "para", Limit: ProductSearchLimit}).
		Return([]models.Product{{ID: "p1", Name: "Paracetamol"}}, nil).
		Times(1)
	svc := New(st)

	got, err := svc.SearchProducts(context.Background(), "  para ")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Paracetamol", got[0].Name)
}

func TestCatalogQueriesLogTheirInputs(t *testing.T) {
	var buf bytes.Buffer
	st := memory.New()
	svc := New(st,
		WithClock(func() time.Time { return testNow }),
		WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	seedProduct(t, st, "Dolo 650", models.ScheduleNone, batch("D1", 2, 10*24*time.Hour))
	ctx := context.Background()

	_, err := svc.FilterProducts(ctx, filters.ProductFilter{Search: "dolo", Status: filters.StockLow})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `status=low_stock`)
	assert.Contains(t, buf.String(), "matched=1")

	buf.Reset()
	_, err = svc.ExpiringBatches(ctx, inventory.Within(30))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "window=30")
	assert.Contains(t, buf.String(), "days=30")

	buf.Reset()
	_, err = svc.ExpiringBatches(ctx, inventory.Expired)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "window=expired")
	assert.NotContains(t, buf.String(), "days=")
}

func TestExpiringScenarioAndStats(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	p := seedProduct(t, st, "Azithromycin", models.ScheduleH, batch("AZ1", 5, 10*24*time.Hour))
	p.MinStock = 10
	require.NoError(t, st.ReplaceProduct(ctx, p))

	w, err := svc.ExpiringBatches(ctx, mustWindow(t, "30"))
	require.NoError(t, err)
	require.Len(t, w, 1)
	assert.Equal(t, 10, w[0].DaysRemaining)

	stats, err := svc.ProductStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.LowStock)
	assert.Equal(t, 0, stats.OutOfStock)
	assert.Equal(t, 1, stats.ExpiringSoon)
	assert.Equal(t, 400.0, stats.InventoryValue)
}

func TestFilterProductsStockPostFilter(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	seedProduct(t, st, "Empty", models.ScheduleNone, batch("E1", 0, 400*24*time.Hour))
	seedProduct(t, st, "Low", models.ScheduleNone, batch("L1", 3, 400*24*time.Hour))
	seedProduct(t, st, "Plenty", models.ScheduleNone, batch("P1", 300, 400*24*time.Hour))

	low, err := svc.FilterProducts(ctx, filters.ProductFilter{Status: filters.StockLow})
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Low", low[0].Name)

	out, err := svc.FilterProducts(ctx, filters.ProductFilter{Status: filters.StockOutOfStock})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Empty", out[0].Name)

	all, err := svc.FilterProducts(ctx, filters.ProductFilter{Status: filters.StockAll})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestBatchOperations(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	p := seedProduct(t, st, "Pantoprazole", models.ScheduleNone, batch("PP1", 10, 400*24*time.Hour))

	v, err := svc.SetBatchStock(ctx, p.ID, p.Batches[0].ID, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, v.TotalStock)

	_, err = svc.SetBatchStock(ctx, p.ID, p.Batches[0].ID, -1)
	assert.Equal(t, []string{"stock"}, validationFields(t, err))

	v, err = svc.SetBatchSaleDiscount(ctx, p.ID, p.Batches[0].ID, 12.5)
	require.NoError(t, err)
	assert.Equal(t, 12.5, v.Batches[0].SaleDiscount)

	_, err = svc.SetBatchSaleDiscount(ctx, p.ID, models.NewID[models.BatchID](), 5)
	assert.ErrorIs(t, err, store.ErrNotFound)

	v, err = svc.AddBatch(ctx, p.ID, models.Batch{BatchNumber: "PP2", ExpiryDate: testNow.AddDate(1, 0, 0), Stock: 8})
	require.NoError(t, err)
	assert.Len(t, v.Batches, 2)
	assert.Equal(t, 50, v.TotalStock)

	v, err = svc.SetProductFlags(ctx, p.ID, true, false)
	require.NoError(t, err)
	assert.True(t, v.OrderLater)
}

func TestPurchaseOrderLifecycle(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	require.NoError(t, st.CreateSupplier(ctx, &models.Supplier{ID: "sup", Name: "Medline"}))

	po := &models.PurchaseOrder{
		SupplierID: "sup",
		Items:      []models.PurchaseOrderItem{{Name: "Amoxicillin", Quantity: 10, Rate: 12.35}},
	}
	require.NoError(t, svc.CreatePurchaseOrder(ctx, po))
	assert.Equal(t, models.POPending, po.Status)
	assert.Equal(t, "Medline", po.SupplierName)
	assert.Equal(t, 123.5, po.TotalValue)

	received := models.POReceived
	_, err := svc.UpdatePurchaseOrder(ctx, po.ID, PurchaseOrderUpdate{Status: &received})
	assert.Equal(t, []string{"status"}, validationFields(t, err))

	approved := models.POApproved
	got, err := svc.UpdatePurchaseOrder(ctx, po.ID, PurchaseOrderUpdate{Status: &approved})
	require.NoError(t, err)
	assert.Equal(t, models.POApproved, got.Status)

	_, err = svc.UpdatePurchaseOrder(ctx, po.ID, PurchaseOrderUpdate{Items: []models.PurchaseOrderItem{{Name: "X", Quantity: 1}}})
	assert.Equal(t, []string{"items"}, validationFields(t, err))

	got, err = svc.UpdatePurchaseOrder(ctx, po.ID, PurchaseOrderUpdate{Status: &received})
	require.NoError(t, err)
	assert.Equal(t, models.POReceived, got.Status)

	err = svc.CreatePurchaseOrder(ctx, &models.PurchaseOrder{
		SupplierID: "nobody",
		Items:      []models.PurchaseOrderItem{{Name: "X", Quantity: 1}},
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func mustWindow(t *testing.T, s string) inventory.Window {
	t.Helper()
	w, err := inventory.ParseWindow(s)
	require.NoError(t, err)
	return w
}
