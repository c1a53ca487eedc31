package services

import (
	"context"
	"time"

	"medstore/filters"
	"medstore/inventory"
	"medstore/models"
)

type DashboardStats struct {
	MonthlySales     float64 `json:"monthlySales"`
	MonthlyPurchases float64 `json:"monthlyPurchases"`
	TotalProducts    int     `json:"totalProducts"`
	LowStock         int     `json:"lowStock"`
	OutOfStock       int     `json:"outOfStock"`
	ExpiringSoon     int     `json:"expiringSoon"`
	Expired          int     `json:"expired"`
	InventoryValue   float64 `json:"inventoryValue"`
}

type Alerts struct {
	LowStock     []ProductView             `json:"lowStock"`
	OutOfStock   []ProductView             `json:"outOfStock"`
	ExpiringSoon []inventory.ExpiringBatch `json:"expiringSoon"`
	Expired      []inventory.ExpiringBatch `json:"expired"`
}

// Empty reports whether there is nothing to alert on.
func (a *Alerts) Empty() bool {
	return len(a.LowStock) == 0 && len(a.OutOfStock) == 0 && len(a.ExpiringSoon) == 0 && len(a.Expired) == 0
}

func (s *Service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	if err := s.backfill(ctx); err != nil {
		return nil, err
	}
	now := s.now()
	monthStart := startOfMonth(now)

	sales, err := s.store.SumTransactionTotals(ctx, models.TransactionSale, monthStart)
	if err != nil {
		return nil, err
	}
	purchases, err := s.store.SumTransactionTotals(ctx, models.TransactionPurchase, monthStart)
	if err != nil {
		return nil, err
	}
	products, err := s.store.ListProducts(ctx, filters.ProductFilter{})
	if err != nil {
		return nil, err
	}
	sum := inventory.Summarize(products, now)
	return &DashboardStats{
		MonthlySales:     roundMoney(sales),
		MonthlyPurchases: roundMoney(purchases),
		TotalProducts:    sum.TotalProducts,
		LowStock:         sum.LowStock,
		OutOfStock:       sum.OutOfStock,
		ExpiringSoon:     sum.ExpiringSoon,
		Expired:          sum.Expired,
		InventoryValue:   sum.InventoryValue,
	}, nil
}

// DashboardAlerts lists what needs attention: products below their threshold,
// products with nothing left, and batches expired or expiring within 30 days.
func (s *Service) DashboardAlerts(ctx context.Context) (*Alerts, error) {
	products, err := s.store.ListProducts(ctx, filters.ProductFilter{})
	if err != nil {
		return nil, err
	}
	now := s.now()
	a := &Alerts{
		LowStock:     []ProductView{},
		OutOfStock:   []ProductView{},
		ExpiringSoon: inventory.ExpiringAcross(products, now, inventory.Within(inventory.AlertHorizon)),
		Expired:      inventory.ExpiringAcross(products, now, inventory.Expired),
	}
	for _, p := range products {
		switch inventory.Status(&p) {
		case inventory.LowStock:
			a.LowStock = append(a.LowStock, viewOf(p))
		case inventory.OutOfStock:
			a.OutOfStock = append(a.OutOfStock, viewOf(p))
		}
	}
	return a, nil
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
