package models

import (
	"fmt"
	"strings"
	"time"
)

// Schedule is the regulatory drug classification of a product.
type Schedule string

const (
	ScheduleNone     Schedule = "none"
	ScheduleH        Schedule = "H"
	ScheduleH1       Schedule = "H1"
	ScheduleNarcotic Schedule = "narcotic"
	ScheduleTB       Schedule = "tb"
)

func (s Schedule) Valid() bool {
	switch s {
	case ScheduleNone, ScheduleH, ScheduleH1, ScheduleNarcotic, ScheduleTB:
		return true
	}
	return false
}

// DefaultMinStock is the low-stock threshold used when a product has none set.
const DefaultMinStock = 20

type Batch struct {
	ID            BatchID   `bson:"_id" json:"id"`
	BatchNumber   string    `bson:"batchNumber" json:"batchNumber"`
	ExpiryDate    time.Time `bson:"expiryDate" json:"expiryDate"`
	Stock         int       `bson:"stock" json:"stock"`
	MRP           float64   `bson:"mrp" json:"mrp"`
	PurchasePrice float64   `bson:"purchasePrice" json:"purchasePrice"`
	Discount      float64   `bson:"discount" json:"discount"`
	SaleDiscount  float64   `bson:"saleDiscount" json:"saleDiscount"`
}

func (b Batch) validate(v *ValidationError, prefix string) {
	if strings.TrimSpace(b.BatchNumber) == "" {
		v.Add(prefix+"batchNumber", "is required")
	}
	if b.ExpiryDate.IsZero() {
		v.Add(prefix+"expiryDate", "is required")
	}
	if b.Stock < 0 {
		v.Add(prefix+"stock", "must not be negative")
	}
	if b.MRP < 0 {
		v.Add(prefix+"mrp", "must not be negative")
	}
	if b.PurchasePrice < 0 {
		v.Add(prefix+"purchasePrice", "must not be negative")
	}
	checkPercent(v, prefix+"discount", b.Discount)
	checkPercent(v, prefix+"saleDiscount", b.SaleDiscount)
}

// Validate checks a single batch outside of a product, e.g. when it is appended.
func (b Batch) Validate() error {
	v := &ValidationError{}
	b.validate(v, "")
	return v.Err()
}

type Product struct {
	ID           ProductID `bson:"_id" json:"id"`
	HSNCode      string    `bson:"hsnCode" json:"hsnCode"`
	Name         string    `bson:"name" json:"name"`
	Pack         string    `bson:"pack" json:"pack"`
	Manufacturer string    `bson:"manufacturer" json:"manufacturer"`
	Salts        string    `bson:"salts,omitempty" json:"salts,omitempty"`
	Schedule     Schedule  `bson:"schedule" json:"schedule"`
	Batches      []Batch   `bson:"batches" json:"batches"`
	Category     string    `bson:"category" json:"category"`
	MinStock     int       `bson:"minStock" json:"minStock"`
	OrderLater   bool      `bson:"orderLater" json:"orderLater"`
	IsOrdered    bool      `bson:"isOrdered" json:"isOrdered"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Normalize fills the defaults a freshly submitted product may omit.
func (p *Product) Normalize() {
	if p.Schedule == "" {
		p.Schedule = ScheduleNone
	}
	if p.Batches == nil {
		p.Batches = []Batch{}
	}
	for i := range p.Batches {
		if p.Batches[i].ID == "" {
			p.Batches[i].ID = NewID[BatchID]()
		}
	}
}

func (p *Product) Validate() error {
	v := &ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		v.Add("name", "is required")
	}
	if !p.Schedule.Valid() {
		v.Add("schedule", "must be one of none, H, H1, narcotic, tb")
	}
	if p.MinStock < 0 {
		v.Add("minStock", "must not be negative")
	}
	seen := make(map[BatchID]bool, len(p.Batches))
	for i, b := range p.Batches {
		prefix := fmt.Sprintf("batches[%d].", i)
		b.validate(v, prefix)
		if seen[b.ID] {
			v.Add(prefix+"id", "duplicate batch id")
		}
		seen[b.ID] = true
	}
	return v.Err()
}

// Batch returns the batch with the given id.
func (p *Product) Batch(id BatchID) (*Batch, bool) {
	for i := range p.Batches {
		if p.Batches[i].ID == id {
			return &p.Batches[i], true
		}
	}
	return nil, false
}
