package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"medstore/models"
)

// AlertHorizon is the fixed expiry horizon used by dashboard counters and alerts.
const AlertHorizon = 30

type Summary struct {
	TotalProducts  int     `json:"totalProducts"`
	TotalStock     int     `json:"totalStock"`
	InventoryValue float64 `json:"inventoryValue"`
	RetailValue    float64 `json:"retailValue"`
	LowStock       int     `json:"lowStock"`
	OutOfStock     int     `json:"outOfStock"`
	ExpiringSoon   int     `json:"expiringSoon"`
	Expired        int     `json:"expired"`
}

// Summarize classifies every product once. ExpiringSoon and Expired count batches, not products.
func Summarize(products []models.Product, asOf time.Time) Summary {
	s := Summary{TotalProducts: len(products)}
	value, retail := decimal.Zero, decimal.Zero
	soon := Within(AlertHorizon)
	for i := range products {
		p := &products[i]
		s.TotalStock += TotalStock(p)
		value = value.Add(decimal.NewFromFloat(InventoryValue(p)))
		retail = retail.Add(decimal.NewFromFloat(RetailValue(p)))
		switch Status(p) {
		case LowStock:
			s.LowStock++
		case OutOfStock:
			s.OutOfStock++
		}
		for range Expiring(p, asOf, soon) {
			s.ExpiringSoon++
		}
		for range Expiring(p, asOf, Expired) {
			s.Expired++
		}
	}
	s.InventoryValue = value.Round(2).InexactFloat64()
	s.RetailValue = retail.Round(2).InexactFloat64()
	return s
}
