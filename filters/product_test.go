package filters

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"medstore/models"
)

func TestParseProductQuery(t *testing.T) {
	f, err := ParseProductQuery(url.Values{
		"search":   {" dolo "},
		"category": {"tablet"},
		"status":   {"low_stock"},
		"tag":      {"order_later"},
		"schedule": {"H"},
	})
	require.NoError(t, err)
	assert.Equal(t, "dolo", f.Search)
	assert.Equal(t, StockLow, f.Status)
	assert.Equal(t, []models.Schedule{models.ScheduleH}, f.Schedules)

	f, err = ParseProductQuery(url.Values{"category": {"all"}})
	require.NoError(t, err)
	assert.Equal(t, StockAll, f.Status)
	assert.Empty(t, f.Category)

	_, err = ParseProductQuery(url.Values{"status": {"plenty"}})
	assert.Error(t, err)
	_, err = ParseProductQuery(url.Values{"schedule": {"X"}})
	assert.Error(t, err)
}

func TestProductFilterBSONNeverIncludesStatus(t *testing.T) {
	f := ProductFilter{Search: "dolo", Tag: TagOrdered, Status: StockLow}
	rx := primitive.Regex{Pattern: "dolo", Options: "i"}
	assert.Equal(t, bson.M{"$and": bson.A{
		bson.M{"$or": bson.A{
			bson.M{"name": rx},
			bson.M{"manufacturer": rx},
			bson.M{"salts": rx},
			bson.M{"batches.batchNumber": rx},
		}},
		bson.M{"isOrdered": true},
	}}, f.BSON())
}

func TestProductFilterMatch(t *testing.T) {
	p := &models.Product{
		Name:         "Dolo 650",
		Manufacturer: "Micro Labs",
		Salts:        "Paracetamol",
		Category:     "tablet",
		Schedule:     models.ScheduleNone,
		OrderLater:   true,
		Batches:      []models.Batch{{BatchNumber: "DL2291"}},
	}
	assert.True(t, ProductFilter{}.Match(p))
	assert.True(t, ProductFilter{Search: "paraCET"}.Match(p))
	assert.True(t, ProductFilter{Search: "dl229"}.Match(p))
	assert.False(t, ProductFilter{Search: "crocin"}.Match(p))
	assert.True(t, ProductFilter{Tag: TagOrderLater, Category: "tablet"}.Match(p))
	assert.False(t, ProductFilter{Tag: TagOrdered}.Match(p))
	assert.False(t, ProductFilter{Schedules: []models.Schedule{models.ScheduleH1}}.Match(p))
}

func TestPostFilter(t *testing.T) {
	expiry := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	products := []models.Product{
		{ID: "empty"},
		{ID: "low", Batches: []models.Batch{{Stock: 3, ExpiryDate: expiry}}},
		{ID: "full", Batches: []models.Batch{{Stock: 300, ExpiryDate: expiry}}},
	}
	ids := func(ps []models.Product) []models.ProductID {
		out := []models.ProductID{}
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}
	assert.Equal(t, []models.ProductID{"low"}, ids(ProductFilter{Status: StockLow}.PostFilter(products)))
	assert.Equal(t, []models.ProductID{"empty"}, ids(ProductFilter{Status: StockOutOfStock}.PostFilter(products)))
	assert.Len(t, ProductFilter{Status: StockAll}.PostFilter(products), 3)
}

func TestSearchTerm(t *testing.T) {
	q, ok := SearchTerm("  ab ", MinSearchLength)
	assert.Equal(t, "ab", q)
	assert.False(t, ok)
	_, ok = SearchTerm("ab", MinGlobalSearchLength)
	assert.True(t, ok)
	_, ok = SearchTerm("ज्व", MinSearchLength)
	assert.True(t, ok)
}
