// Package inventory derives stock state from a product's batches. Nothing here
// is stored; every value is recomputed from the batch list on demand.
package inventory

import (
	"github.com/shopspring/decimal"

	"medstore/models"
)

type StockStatus string

const (
	InStock    StockStatus = "in_stock"
	LowStock   StockStatus = "low_stock"
	OutOfStock StockStatus = "out_of_stock"
)

func TotalStock(p *models.Product) int {
	total := 0
	for _, b := range p.Batches {
		total += b.Stock
	}
	return total
}

// EffectiveMinStock is the product's threshold, or models.DefaultMinStock when unset.
func EffectiveMinStock(p *models.Product) int {
	if p.MinStock > 0 {
		return p.MinStock
	}
	return models.DefaultMinStock
}

// IsLowStock excludes empty products: those are out of stock, never low.
func IsLowStock(p *models.Product) bool {
	total := TotalStock(p)
	return total > 0 && total < EffectiveMinStock(p)
}

func IsOutOfStock(p *models.Product) bool {
	return TotalStock(p) == 0
}

func Status(p *models.Product) StockStatus {
	switch {
	case IsOutOfStock(p):
		return OutOfStock
	case IsLowStock(p):
		return LowStock
	}
	return InStock
}

// InventoryValue is the stock valued at purchase price.
func InventoryValue(p *models.Product) float64 {
	return sumValue(p, func(b models.Batch) float64 { return b.PurchasePrice })
}

// RetailValue is the stock valued at MRP.
func RetailValue(p *models.Product) float64 {
	return sumValue(p, func(b models.Batch) float64 { return b.MRP })
}

func sumValue(p *models.Product, price func(models.Batch) float64) float64 {
	total := decimal.Zero
	for _, b := range p.Batches {
		total = total.Add(decimal.NewFromInt(int64(b.Stock)).Mul(decimal.NewFromFloat(price(b))))
	}
	return total.Round(2).InexactFloat64()
}
