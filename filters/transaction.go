package filters

import (
	"net/url"
	"slices"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"medstore/models"
)

// TransactionFilter is the composite ledger filter. Each populated group
// narrows the result; groups are ANDed together.
type TransactionFilter struct {
	Type       models.TransactionType
	Status     models.PaymentStatus
	CustomerID models.CustomerID

	// PaymentMethods and IncludeCredit form one OR group. "Credit" is a
	// payment status rather than a method, so it matches status=credit.
	PaymentMethods []string
	IncludeCredit  bool

	From time.Time
	To   time.Time

	ProductName  string
	Counterparty string
	// Text matches id, counterparty names, phone and item names.
	Text string

	// Schedule is resolved by the caller into ProductIDs before querying.
	Schedule         models.Schedule
	ProductIDs       []models.ProductID
	RestrictProducts bool

	Limit int
}

const dateLayout = "2006-01-02"

// ParseTransactionQuery builds a filter from the /transactions/filter query string.
func ParseTransactionQuery(q url.Values, now time.Time) (TransactionFilter, error) {
	f := TransactionFilter{Limit: DefaultTransactionLimit}
	v := &models.ValidationError{}

	if t := q.Get("type"); t != "" && t != "all" {
		f.Type = models.TransactionType(t)
		if !f.Type.Valid() {
			v.Add("type", "must be sale or purchase")
		}
	}
	if s := q.Get("status"); s != "" && s != "all" {
		f.Status = models.PaymentStatus(s)
		if !f.Status.Valid() {
			v.Add("status", "must be paid or credit")
		}
	}
	f.CustomerID = models.CustomerID(strings.TrimSpace(q.Get("customerId")))

	for _, raw := range q["paymentMethod"] {
		for _, m := range strings.Split(raw, ",") {
			m = strings.TrimSpace(m)
			switch {
			case m == "" || strings.EqualFold(m, "all"):
			case strings.EqualFold(m, "credit"):
				f.IncludeCredit = true
			default:
				f.PaymentMethods = append(f.PaymentMethods, m)
			}
		}
	}

	start, end := q.Get("startDate"), q.Get("endDate")
	if start != "" || end != "" {
		if start != "" {
			t, err := parseDate(start, now.Location(), false)
			if err != nil {
				v.Add("startDate", "must be YYYY-MM-DD or RFC 3339")
			}
			f.From = t
		}
		if end != "" {
			t, err := parseDate(end, now.Location(), true)
			if err != nil {
				v.Add("endDate", "must be YYYY-MM-DD or RFC 3339")
			}
			f.To = t
		}
	} else if p := q.Get("period"); p != "" && p != "all" {
		from, ok := PeriodStart(p, now)
		if !ok {
			v.Add("period", "must be today, week or month")
		}
		f.From = from
	}

	if name, ok := SearchTerm(q.Get("productName"), MinSearchLength); ok {
		f.ProductName = name
	}
	if name, ok := SearchTerm(q.Get("customerName"), MinSearchLength); ok {
		f.Counterparty = name
	}
	if s := q.Get("schedule"); s != "" && s != "all" {
		f.Schedule = models.Schedule(s)
		if !f.Schedule.Valid() {
			v.Add("schedule", "unknown schedule %q", s)
		}
	}
	return f, v.Err()
}

// PeriodStart returns the start of a named period ending now.
func PeriodStart(period string, now time.Time) (time.Time, bool) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch period {
	case "today":
		return midnight, true
	case "week":
		return midnight.AddDate(0, 0, -7), true
	case "month":
		return midnight.AddDate(0, -1, 0), true
	}
	return time.Time{}, false
}

func parseDate(s string, loc *time.Location, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Millisecond)
	}
	return t, nil
}

// RestrictToProducts limits results to transactions referencing any of ids.
// An empty ids slice matches nothing.
func (f *TransactionFilter) RestrictToProducts(ids []models.ProductID) {
	f.ProductIDs = ids
	f.RestrictProducts = true
}

func (f TransactionFilter) BSON() bson.M {
	var clauses bson.A
	if f.Type != "" {
		clauses = append(clauses, bson.M{"type": f.Type})
	}
	if f.Status != "" {
		clauses = append(clauses, bson.M{"status": f.Status})
	}
	if f.CustomerID != "" {
		clauses = append(clauses, bson.M{"customerId": f.CustomerID})
	}

	var payment bson.A
	if len(f.PaymentMethods) > 0 {
		payment = append(payment, bson.M{"paymentMethod": bson.M{"$in": f.PaymentMethods}})
	}
	if f.IncludeCredit {
		payment = append(payment, bson.M{"status": models.StatusCredit})
	}
	if len(payment) > 0 {
		clauses = append(clauses, bson.M{"$or": payment})
	}

	if !f.From.IsZero() || !f.To.IsZero() {
		rng := bson.M{}
		if !f.From.IsZero() {
			rng["$gte"] = f.From
		}
		if !f.To.IsZero() {
			rng["$lte"] = f.To
		}
		clauses = append(clauses, bson.M{"createdAt": rng})
	}

	if f.ProductName != "" {
		clauses = append(clauses, bson.M{"items.name": pattern(f.ProductName)})
	}
	if f.Counterparty != "" {
		clauses = append(clauses, anyField(f.Counterparty, "customerName", "supplierName"))
	}
	if f.Text != "" {
		text := anyField(f.Text, "customerName", "supplierName", "customerPhone", "items.name")
		if models.IsHexID(f.Text) {
			text["$or"] = append(text["$or"].(bson.A), bson.M{"_id": f.Text})
		}
		clauses = append(clauses, text)
	}
	if f.RestrictProducts {
		ids := f.ProductIDs
		if ids == nil {
			ids = []models.ProductID{}
		}
		clauses = append(clauses, bson.M{"items.productId": bson.M{"$in": ids}})
	}
	return and(clauses)
}

func (f TransactionFilter) Match(t *models.Transaction) bool {
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.CustomerID != "" && t.CustomerID != f.CustomerID {
		return false
	}
	if len(f.PaymentMethods) > 0 || f.IncludeCredit {
		byMethod := slices.Contains(f.PaymentMethods, t.PaymentMethod)
		byCredit := f.IncludeCredit && t.Status == models.StatusCredit
		if !byMethod && !byCredit {
			return false
		}
	}
	if !f.From.IsZero() && t.CreatedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && t.CreatedAt.After(f.To) {
		return false
	}
	if f.ProductName != "" && !slices.ContainsFunc(t.Items, func(it models.LineItem) bool {
		return ContainsFold(it.Name, f.ProductName)
	}) {
		return false
	}
	if f.Counterparty != "" && !containsAny(f.Counterparty, t.CustomerName, t.SupplierName) {
		return false
	}
	if f.Text != "" && string(t.ID) != f.Text {
		fields := []string{t.CustomerName, t.SupplierName, t.CustomerPhone}
		for _, it := range t.Items {
			fields = append(fields, it.Name)
		}
		if !containsAny(f.Text, fields...) {
			return false
		}
	}
	if f.RestrictProducts && !slices.ContainsFunc(t.Items, func(it models.LineItem) bool {
		return slices.Contains(f.ProductIDs, it.ProductID)
	}) {
		return false
	}
	return true
}
