package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medstore/models"
)

var asOf = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func batch(id string, stock int, expiry time.Time) models.Batch {
	return models.Batch{ID: models.BatchID(id), BatchNumber: id, Stock: stock, ExpiryDate: expiry}
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("expired")
	require.NoError(t, err)
	assert.True(t, w.IsExpired())

	w, err = ParseWindow("60")
	require.NoError(t, err)
	assert.Equal(t, 60, w.Days())

	for _, bad := range []string{"", "7", "abc", "-30"} {
		_, err := ParseWindow(bad)
		assert.Error(t, err, bad)
	}
}

func TestExpiringWindowMode(t *testing.T) {
	p := &models.Product{ID: "p1", Name: "Amoxicillin", Batches: []models.Batch{
		batch("past", 4, asOf.Add(-time.Hour)),
		batch("today", 2, asOf),
		batch("ten", 5, asOf.Add(10*day)),
		batch("edge", 1, asOf.Add(30*day)),
		batch("beyond", 9, asOf.Add(30*day+time.Minute)),
		batch("empty", 0, asOf.Add(5*day)),
	}}

	var got []string
	for rec := range Expiring(p, asOf, Within(30)) {
		got = append(got, string(rec.Batch.ID))
		assert.Positive(t, rec.Batch.Stock)
		assert.False(t, rec.Batch.ExpiryDate.Before(asOf))
		assert.False(t, rec.Batch.ExpiryDate.After(asOf.Add(30*day)))
		assert.GreaterOrEqual(t, rec.DaysRemaining, 0)
	}
	assert.Equal(t, []string{"today", "ten", "edge"}, got)
}

func TestExpiringExpiredMode(t *testing.T) {
	p := &models.Product{ID: "p1", Batches: []models.Batch{
		batch("old", 3, asOf.Add(-50*time.Hour)),
		batch("old-empty", 0, asOf.Add(-50*time.Hour)),
		batch("fresh", 3, asOf.Add(time.Hour)),
	}}

	var recs []ExpiringBatch
	for rec := range Expiring(p, asOf, Expired) {
		recs = append(recs, rec)
	}
	require.Len(t, recs, 1)
	assert.Equal(t, models.BatchID("old"), recs[0].Batch.ID)
	assert.Equal(t, -2, recs[0].DaysRemaining)
}

func TestExpiringIsRestartable(t *testing.T) {
	p := &models.Product{Batches: []models.Batch{batch("a", 1, asOf.Add(day)), batch("b", 1, asOf.Add(2*day))}}
	seq := Expiring(p, asOf, Within(15))

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	assert.Equal(t, 2, count())
	assert.Equal(t, 2, count())

	for range seq {
		break
	}
}

func TestDaysRemainingRoundsUp(t *testing.T) {
	assert.Equal(t, 10, DaysRemaining(asOf.Add(10*day), asOf))
	assert.Equal(t, 10, DaysRemaining(asOf.Add(9*day+time.Minute), asOf))
	assert.Equal(t, 0, DaysRemaining(asOf, asOf))
}

func TestExpiringAcrossSortsByExpiry(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Batches: []models.Batch{batch("late", 1, asOf.Add(20*day))}},
		{ID: "p2", Batches: []models.Batch{batch("soon", 1, asOf.Add(2*day)), batch("mid", 1, asOf.Add(9*day))}},
	}
	recs := ExpiringAcross(products, asOf, Within(30))
	require.Len(t, recs, 3)
	assert.Equal(t, models.BatchID("soon"), recs[0].Batch.ID)
	assert.Equal(t, models.BatchID("mid"), recs[1].Batch.ID)
	assert.Equal(t, models.BatchID("late"), recs[2].Batch.ID)
	assert.Equal(t, models.ProductID("p2"), recs[0].ProductID)
}

func TestSummarize(t *testing.T) {
	products := []models.Product{
		{ID: "low", MinStock: 10, Batches: []models.Batch{{ID: "b1", Stock: 5, ExpiryDate: asOf.Add(10 * day), MRP: 100, PurchasePrice: 80}}},
		{ID: "out", Batches: []models.Batch{{ID: "b2", Stock: 0, ExpiryDate: asOf.Add(-day)}}},
		{ID: "ok", Batches: []models.Batch{{ID: "b3", Stock: 50, ExpiryDate: asOf.Add(-day), MRP: 2, PurchasePrice: 1}}},
	}
	s := Summarize(products, asOf)
	assert.Equal(t, Summary{
		TotalProducts:  3,
		TotalStock:     55,
		InventoryValue: 450,
		RetailValue:    600,
		LowStock:       1,
		OutOfStock:     1,
		ExpiringSoon:   1,
		Expired:        1,
	}, s)
}
