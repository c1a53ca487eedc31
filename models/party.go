package models

import (
	"strings"
	"time"
)

type Supplier struct {
	ID           SupplierID `bson:"_id" json:"id"`
	Name         string     `bson:"name" json:"name"`
	Address      string     `bson:"address" json:"address"`
	Contact      string     `bson:"contact" json:"contact"`
	GSTIN        string     `bson:"gstin" json:"gstin"`
	DrugLicense1 string     `bson:"dlNo1" json:"dlNo1"`
	DrugLicense2 string     `bson:"dlNo2" json:"dlNo2"`
	Discount     float64    `bson:"discount" json:"discount"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updatedAt" json:"updatedAt"`
}

func (s *Supplier) Validate() error {
	v := &ValidationError{}
	if strings.TrimSpace(s.Name) == "" {
		v.Add("name", "is required")
	}
	checkPercent(v, "discount", s.Discount)
	return v.Err()
}

// Customer phone numbers are unique; re-submitting a known phone renames the customer.
type Customer struct {
	ID        CustomerID `bson:"_id" json:"id"`
	Name      string     `bson:"name" json:"name"`
	Phone     string     `bson:"phone" json:"phone"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
}

func (c *Customer) Validate() error {
	v := &ValidationError{}
	if strings.TrimSpace(c.Name) == "" {
		v.Add("name", "is required")
	}
	if strings.TrimSpace(c.Phone) == "" {
		v.Add("phone", "is required")
	}
	return v.Err()
}
