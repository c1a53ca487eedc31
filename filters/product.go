package filters

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"medstore/inventory"
	"medstore/models"
)

// ProductTag selects products by workflow flag.
type ProductTag string

const (
	TagOrderLater ProductTag = "order_later"
	TagOrdered    ProductTag = "ordered"
)

// StockFilter is applied after the query returns because stock state is derived.
type StockFilter string

const (
	StockAll        StockFilter = "all"
	StockLow        StockFilter = "low_stock"
	StockOutOfStock StockFilter = "out_of_stock"
)

type ProductFilter struct {
	Search    string
	Category  string
	Tag       ProductTag
	Schedules []models.Schedule
	Status    StockFilter
	Limit     int
}

var productSearchFields = []string{"name", "manufacturer", "salts", "batches.batchNumber"}

// ParseProductQuery reads search, category, status, tag and schedule.
func ParseProductQuery(q url.Values) (ProductFilter, error) {
	f := ProductFilter{
		Search:   strings.TrimSpace(q.Get("search")),
		Category: strings.TrimSpace(q.Get("category")),
		Status:   StockFilter(q.Get("status")),
		Tag:      ProductTag(q.Get("tag")),
	}
	switch f.Status {
	case "":
		f.Status = StockAll
	case StockAll, StockLow, StockOutOfStock:
	default:
		return f, models.Invalid("status", "must be one of all, low_stock, out_of_stock")
	}
	switch f.Tag {
	case "", TagOrderLater, TagOrdered:
	default:
		return f, models.Invalid("tag", "must be order_later or ordered")
	}
	if f.Category == "all" {
		f.Category = ""
	}
	if s := q.Get("schedule"); s != "" && s != "all" {
		sch := models.Schedule(s)
		if !sch.Valid() {
			return f, models.Invalid("schedule", "unknown schedule %q", s)
		}
		f.Schedules = []models.Schedule{sch}
	}
	return f, nil
}

// BSON renders the storage predicate. Status is deliberately not part of it.
func (f ProductFilter) BSON() bson.M {
	var clauses bson.A
	if f.Search != "" {
		clauses = append(clauses, anyField(f.Search, productSearchFields...))
	}
	if f.Category != "" {
		clauses = append(clauses, bson.M{"category": f.Category})
	}
	switch f.Tag {
	case TagOrderLater:
		clauses = append(clauses, bson.M{"orderLater": true})
	case TagOrdered:
		clauses = append(clauses, bson.M{"isOrdered": true})
	}
	if len(f.Schedules) > 0 {
		clauses = append(clauses, bson.M{"schedule": bson.M{"$in": f.Schedules}})
	}
	return and(clauses)
}

// Match evaluates the storage predicate in memory.
func (f ProductFilter) Match(p *models.Product) bool {
	if f.Search != "" {
		fields := []string{p.Name, p.Manufacturer, p.Salts}
		for _, b := range p.Batches {
			fields = append(fields, b.BatchNumber)
		}
		if !containsAny(f.Search, fields...) {
			return false
		}
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Tag == TagOrderLater && !p.OrderLater {
		return false
	}
	if f.Tag == TagOrdered && !p.IsOrdered {
		return false
	}
	if len(f.Schedules) > 0 && !slices.Contains(f.Schedules, p.Schedule) {
		return false
	}
	return true
}

// PostFilter keeps the products whose derived stock state matches Status.
func (f ProductFilter) PostFilter(products []models.Product) []models.Product {
	var keep func(*models.Product) bool
	switch f.Status {
	case StockLow:
		keep = inventory.IsLowStock
	case StockOutOfStock:
		keep = inventory.IsOutOfStock
	default:
		return products
	}
	out := make([]models.Product, 0, len(products))
	for i := range products {
		if keep(&products[i]) {
			out = append(out, products[i])
		}
	}
	return out
}

func (f ProductFilter) String() string {
	return fmt.Sprintf("search=%q category=%q tag=%q status=%s", f.Search, f.Category, f.Tag, f.Status)
}
