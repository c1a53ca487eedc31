package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseOrderStatus string

const (
	POPending   PurchaseOrderStatus = "pending"
	POApproved  PurchaseOrderStatus = "approved"
	POReceived  PurchaseOrderStatus = "received"
	POCancelled PurchaseOrderStatus = "cancelled"
)

func (s PurchaseOrderStatus) Valid() bool {
	switch s {
	case POPending, POApproved, POReceived, POCancelled:
		return true
	}
	return false
}

var poTransitions = map[PurchaseOrderStatus][]PurchaseOrderStatus{
	POPending:  {POApproved, POCancelled},
	POApproved: {POReceived, POCancelled},
}

// CanTransitionTo reports whether an order in status s may move to next.
// Received and cancelled orders are final.
func (s PurchaseOrderStatus) CanTransitionTo(next PurchaseOrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range poTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PurchaseOrderItem struct {
	ProductID    ProductID `bson:"productId" json:"productId"`
	Name         string    `bson:"name" json:"name"`
	Manufacturer string    `bson:"manufacturer" json:"manufacturer"`
	Quantity     int       `bson:"quantity" json:"quantity"`
	Rate         float64   `bson:"rate" json:"rate"`
}

type PurchaseOrder struct {
	ID           PurchaseOrderID     `bson:"_id" json:"id"`
	SupplierID   SupplierID          `bson:"supplierId" json:"supplierId"`
	SupplierName string              `bson:"supplierName" json:"supplierName"`
	Items        []PurchaseOrderItem `bson:"items" json:"items"`
	TotalValue   float64             `bson:"totalValue" json:"totalValue"`
	Status       PurchaseOrderStatus `bson:"status" json:"status"`
	Notes        string              `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// ComputeTotal sets TotalValue to the sum of quantity x rate over the items.
func (po *PurchaseOrder) ComputeTotal() {
	total := decimal.Zero
	for _, it := range po.Items {
		total = total.Add(decimal.NewFromFloat(it.Rate).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	po.TotalValue = total.Round(2).InexactFloat64()
}

func (po *PurchaseOrder) Validate() error {
	v := &ValidationError{}
	if po.SupplierID == "" {
		v.Add("supplierId", "is required")
	}
	if len(po.Items) == 0 {
		v.Add("items", "at least one item is required")
	}
	for i, it := range po.Items {
		prefix := fmt.Sprintf("items[%d].", i)
		if it.ProductID == "" && it.Name == "" {
			v.Add(prefix+"productId", "a product reference or name is required")
		}
		if it.Quantity < 1 {
			v.Add(prefix+"quantity", "must be at least 1")
		}
		if it.Rate < 0 {
			v.Add(prefix+"rate", "must not be negative")
		}
	}
	if !po.Status.Valid() {
		v.Add("status", "must be one of pending, approved, received, cancelled")
	}
	return v.Err()
}
