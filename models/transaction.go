package models

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type TransactionType string

const (
	TransactionSale     TransactionType = "sale"
	TransactionPurchase TransactionType = "purchase"
)

func (t TransactionType) Valid() bool {
	return t == TransactionSale || t == TransactionPurchase
}

// PaymentStatus is shared by ledger transactions and purchases.
type PaymentStatus string

const (
	StatusPaid   PaymentStatus = "paid"
	StatusCredit PaymentStatus = "credit"
)

func (s PaymentStatus) Valid() bool {
	return s == StatusPaid || s == StatusCredit
}

type LineItem struct {
	ProductID ProductID `bson:"productId" json:"productId"`
	Name      string    `bson:"name" json:"name"`
	Quantity  int       `bson:"quantity" json:"quantity"`
	Price     float64   `bson:"price" json:"price"`
	Tax       float64   `bson:"tax" json:"tax"`
	BatchID   BatchID   `bson:"batchId,omitempty" json:"batchId,omitempty"`
}

type Transaction struct {
	ID            TransactionID     `bson:"_id" json:"id"`
	Type          TransactionType   `bson:"type" json:"type"`
	CustomerID    CustomerID        `bson:"customerId,omitempty" json:"customerId,omitempty"`
	CustomerName  string            `bson:"customerName,omitempty" json:"customerName,omitempty"`
	CustomerPhone string            `bson:"customerPhone,omitempty" json:"customerPhone,omitempty"`
	SupplierID    SupplierID        `bson:"supplierId,omitempty" json:"supplierId,omitempty"`
	SupplierName  string            `bson:"supplierName,omitempty" json:"supplierName,omitempty"`
	Items         []LineItem        `bson:"items" json:"items"`
	Total         float64           `bson:"total" json:"total"`
	Discount      float64           `bson:"discount" json:"discount"`
	Status        PaymentStatus     `bson:"status" json:"status"`
	PaymentMethod string            `bson:"paymentMethod" json:"paymentMethod"`
	Prescription  map[string]string `bson:"prescription,omitempty" json:"prescription,omitempty"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time         `bson:"updatedAt" json:"updatedAt"`
}

func (t *Transaction) Validate() error {
	v := &ValidationError{}
	if !t.Type.Valid() {
		v.Add("type", "must be sale or purchase")
	}
	switch t.Type {
	case TransactionSale:
		if t.SupplierID != "" || t.SupplierName != "" {
			v.Add("supplierId", "not allowed on a sale")
		}
	case TransactionPurchase:
		if t.CustomerID != "" || t.CustomerName != "" {
			v.Add("customerId", "not allowed on a purchase")
		}
	}
	if len(t.Items) == 0 {
		v.Add("items", "at least one item is required")
	}
	for i, it := range t.Items {
		prefix := fmt.Sprintf("items[%d].", i)
		if it.Quantity < 1 {
			v.Add(prefix+"quantity", "must be at least 1")
		}
		if it.Price < 0 {
			v.Add(prefix+"price", "must not be negative")
		}
		if it.Tax < 0 {
			v.Add(prefix+"tax", "must not be negative")
		}
	}
	if t.Total < 0 {
		v.Add("total", "must not be negative")
	}
	checkPercent(v, "discount", t.Discount)
	if !t.Status.Valid() {
		v.Add("status", "must be paid or credit")
	}
	return v.Err()
}

// Counterparty is the customer or supplier name, whichever applies.
func (t *Transaction) Counterparty() string {
	if t.Type == TransactionPurchase {
		return t.SupplierName
	}
	return t.CustomerName
}

// TransactionPatch carries the fields that may change after a ledger entry is recorded.
type TransactionPatch struct {
	Status        *PaymentStatus
	PaymentMethod *string
	Prescription  map[string]string
}

// ValidPrescriptionLabel reports whether label can name a prescription entry.
// Labels become document field names, so they must be non-empty and free of
// '.' and '$'.
func ValidPrescriptionLabel(label string) bool {
	return strings.TrimSpace(label) != "" && !strings.ContainsAny(label, ".$")
}

func (p TransactionPatch) Validate() error {
	v := &ValidationError{}
	if p.Status != nil && !p.Status.Valid() {
		v.Add("status", "must be paid or credit")
	}
	labels := make([]string, 0, len(p.Prescription))
	for label := range p.Prescription {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		if !ValidPrescriptionLabel(label) {
			v.Add("prescription."+label, "label must be a plain name without '.' or '$'")
		}
	}
	if p.Status == nil && p.PaymentMethod == nil && p.Prescription == nil {
		v.Add("body", "no fields to update")
	}
	return v.Err()
}
