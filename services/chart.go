package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"medstore/filters"
	"medstore/models"
)

type ChartRange string

const (
	RangeDay   ChartRange = "day"
	RangeWeek  ChartRange = "week"
	RangeMonth ChartRange = "month"
)

// ChartPoint sums sale and purchase totals for one bucket. Keys sort
// lexically in time order: YYYY-MM-DD, YYYY-Www (ISO week) or YYYY-MM.
type ChartPoint struct {
	Key       string  `json:"date"`
	Sales     float64 `json:"sales"`
	Purchases float64 `json:"purchases"`
}

// window returns where the range starts and how a timestamp maps to its bucket.
func (r ChartRange) window(now time.Time) (time.Time, func(time.Time) string, bool) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch r {
	case RangeDay:
		return midnight.AddDate(0, 0, -29), func(t time.Time) string {
			return t.Format("2006-01-02")
		}, true
	case RangeWeek:
		// ISO weeks start on Monday.
		offset := (int(midnight.Weekday()) + 6) % 7
		monday := midnight.AddDate(0, 0, -offset)
		return monday.AddDate(0, 0, -7*11), isoWeekKey, true
	case RangeMonth:
		return startOfMonth(now).AddDate(0, -11, 0), func(t time.Time) string {
			return t.Format("2006-01")
		}, true
	}
	return time.Time{}, nil, false
}

func isoWeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

type bucketSums struct {
	sales, purchases decimal.Decimal
}

// Chart buckets the ledger over the last 30 days, 12 ISO weeks or 12 months.
// Only buckets that hold at least one transaction are returned, oldest first.
func (s *Service) Chart(ctx context.Context, r ChartRange) ([]ChartPoint, error) {
	now := s.now()
	from, keyOf, ok := r.window(now)
	if !ok {
		return nil, models.Invalid("range", "must be day, week or month")
	}
	if err := s.backfill(ctx); err != nil {
		return nil, err
	}
	txns, err := s.store.ListTransactions(ctx, filters.TransactionFilter{From: from})
	if err != nil {
		return nil, err
	}

	buckets := map[string]*bucketSums{}
	loc := now.Location()
	for _, t := range txns {
		key := keyOf(t.CreatedAt.In(loc))
		b, ok := buckets[key]
		if !ok {
			b = &bucketSums{}
			buckets[key] = b
		}
		amount := decimal.NewFromFloat(t.Total)
		switch t.Type {
		case models.TransactionSale:
			b.sales = b.sales.Add(amount)
		case models.TransactionPurchase:
			b.purchases = b.purchases.Add(amount)
		}
	}

	out := make([]ChartPoint, 0, len(buckets))
	for key, b := range buckets {
		out = append(out, ChartPoint{
			Key:       key,
			Sales:     b.sales.Round(2).InexactFloat64(),
			Purchases: b.purchases.Round(2).InexactFloat64(),
		})
	}
	slices.SortFunc(out, func(a, b ChartPoint) int { return strings.Compare(a.Key, b.Key) })
	return out, nil
}

func roundMoney(f float64) float64 {
	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}
