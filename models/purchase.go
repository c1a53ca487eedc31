package models

import (
	"fmt"
	"strings"
	"time"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentBank PaymentMethod = "bank"
	PaymentUPI  PaymentMethod = "upi"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentBank || m == PaymentUPI
}

type PurchaseItem struct {
	ProductID ProductID `bson:"productId" json:"productId"`
	BatchID   BatchID   `bson:"batchId" json:"batchId"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Quantity  int       `bson:"quantity" json:"quantity"`
	Price     float64   `bson:"price" json:"price"`
	Amount    float64   `bson:"amount" json:"amount"`
}

// Purchase is a supplier goods receipt. Recording one raises batch stock.
type Purchase struct {
	ID            PurchaseID     `bson:"_id" json:"id"`
	SupplierID    SupplierID     `bson:"supplierId" json:"supplierId"`
	SupplierName  string         `bson:"supplierName,omitempty" json:"supplierName,omitempty"`
	InvoiceNumber string         `bson:"invoiceNumber" json:"invoiceNumber"`
	Items         []PurchaseItem `bson:"items" json:"items"`
	Total         float64        `bson:"total" json:"total"`
	Status        PaymentStatus  `bson:"status" json:"status"`
	PaymentMethod PaymentMethod  `bson:"paymentMethod" json:"paymentMethod"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt" json:"updatedAt"`
}

func (p *Purchase) Validate() error {
	v := &ValidationError{}
	if p.SupplierID == "" {
		v.Add("supplierId", "is required")
	}
	if len(p.Items) == 0 {
		v.Add("items", "at least one item is required")
	}
	for i, it := range p.Items {
		prefix := fmt.Sprintf("items[%d].", i)
		if it.ProductID == "" {
			v.Add(prefix+"productId", "is required")
		}
		if it.Quantity < 1 {
			v.Add(prefix+"quantity", "must be at least 1")
		}
		if it.Price < 0 {
			v.Add(prefix+"price", "must not be negative")
		}
		if it.Amount < 0 {
			v.Add(prefix+"amount", "must not be negative")
		}
	}
	if p.Total < 0 {
		v.Add("total", "must not be negative")
	}
	if !p.Status.Valid() {
		v.Add("status", "must be paid or credit")
	}
	if !p.PaymentMethod.Valid() {
		v.Add("paymentMethod", "must be cash, bank or upi")
	}
	return v.Err()
}

type PurchasePatch struct {
	Status        *PaymentStatus
	PaymentMethod *PaymentMethod
	InvoiceNumber *string
}

func (p PurchasePatch) Validate() error {
	v := &ValidationError{}
	if p.Status != nil && !p.Status.Valid() {
		v.Add("status", "must be paid or credit")
	}
	if p.PaymentMethod != nil && !p.PaymentMethod.Valid() {
		v.Add("paymentMethod", "must be cash, bank or upi")
	}
	if p.InvoiceNumber != nil && strings.TrimSpace(*p.InvoiceNumber) == "" {
		v.Add("invoiceNumber", "must not be empty")
	}
	if p.Status == nil && p.PaymentMethod == nil && p.InvoiceNumber == nil {
		v.Add("body", "no fields to update")
	}
	return v.Err()
}
