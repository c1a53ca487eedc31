package inventory

import (
	"iter"
	"math"
	"slices"
	"strconv"
	"time"

	"medstore/models"
)

const day = 24 * time.Hour

// Window selects batches either already expired or expiring within a horizon.
type Window struct {
	expired bool
	days    int
}

// Expired selects batches whose expiry date is before the reference date.
var Expired = Window{expired: true}

// Within selects batches expiring between the reference date and days later, inclusive.
func Within(days int) Window {
	return Window{days: days}
}

var allowedHorizons = []int{15, 30, 60, 90}

// ParseWindow accepts "expired" or one of the listed horizons in days.
func ParseWindow(s string) (Window, error) {
	if s == "expired" {
		return Expired, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || !slices.Contains(allowedHorizons, n) {
		return Window{}, models.Invalid("filter", "must be one of expired, 15, 30, 60, 90")
	}
	return Within(n), nil
}

func (w Window) IsExpired() bool { return w.expired }

func (w Window) Days() int { return w.days }

func (w Window) String() string {
	if w.expired {
		return "expired"
	}
	return strconv.Itoa(w.days)
}

// Contains reports whether a batch expiring at expiry falls in the window as of asOf.
func (w Window) Contains(expiry, asOf time.Time) bool {
	if w.expired {
		return expiry.Before(asOf)
	}
	return !expiry.Before(asOf) && !expiry.After(asOf.Add(time.Duration(w.days)*day))
}

type ExpiringBatch struct {
	ProductID     models.ProductID `json:"productId"`
	ProductName   string           `json:"productName"`
	Manufacturer  string           `json:"manufacturer"`
	Batch         models.Batch     `json:"batch"`
	DaysRemaining int              `json:"daysRemaining"`
}

// DaysRemaining rounds the time left up to whole days. It is negative for expired batches.
func DaysRemaining(expiry, asOf time.Time) int {
	return int(math.Ceil(expiry.Sub(asOf).Hours() / 24))
}

// Expiring yields the product's in-stock batches that fall in w. The sequence
// holds no state and can be ranged over any number of times.
func Expiring(p *models.Product, asOf time.Time, w Window) iter.Seq[ExpiringBatch] {
	return func(yield func(ExpiringBatch) bool) {
		for _, b := range p.Batches {
			if b.Stock <= 0 || !w.Contains(b.ExpiryDate, asOf) {
				continue
			}
			rec := ExpiringBatch{
				ProductID:     p.ID,
				ProductName:   p.Name,
				Manufacturer:  p.Manufacturer,
				Batch:         b,
				DaysRemaining: DaysRemaining(b.ExpiryDate, asOf),
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// ExpiringAcross collects matching batches of every product, soonest expiry first.
func ExpiringAcross(products []models.Product, asOf time.Time, w Window) []ExpiringBatch {
	out := []ExpiringBatch{}
	for i := range products {
		for rec := range Expiring(&products[i], asOf, w) {
			out = append(out, rec)
		}
	}
	SortByExpiry(out)
	return out
}

func SortByExpiry(recs []ExpiringBatch) {
	slices.SortStableFunc(recs, func(a, b ExpiringBatch) int {
		return a.Batch.ExpiryDate.Compare(b.Batch.ExpiryDate)
	})
}
