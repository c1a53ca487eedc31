package models

import (
	"fmt"
	"time"
)

type ReturnType string

const (
	ReturnCustomer ReturnType = "customer"
	ReturnSupplier ReturnType = "supplier"
)

func (t ReturnType) Valid() bool {
	return t == ReturnCustomer || t == ReturnSupplier
}

type SettlementType string

const (
	SettlementRefund           SettlementType = "refund"
	SettlementVoucher          SettlementType = "voucher"
	SettlementCreditNote       SettlementType = "credit_note"
	SettlementLedgerAdjustment SettlementType = "ledger_adjustment"
)

func (s SettlementType) Valid() bool {
	switch s {
	case SettlementRefund, SettlementVoucher, SettlementCreditNote, SettlementLedgerAdjustment:
		return true
	}
	return false
}

type ReturnStatus string

const (
	ReturnPending   ReturnStatus = "pending"
	ReturnCompleted ReturnStatus = "completed"
	ReturnCancelled ReturnStatus = "cancelled"
)

func (s ReturnStatus) Valid() bool {
	return s == ReturnPending || s == ReturnCompleted || s == ReturnCancelled
}

type ReturnItem struct {
	ProductID ProductID `bson:"productId" json:"productId"`
	BatchID   BatchID   `bson:"batchId,omitempty" json:"batchId,omitempty"`
	Name      string    `bson:"name" json:"name"`
	Quantity  int       `bson:"quantity" json:"quantity"`
	Price     float64   `bson:"price" json:"price"`
	Amount    float64   `bson:"amount" json:"amount"`
}

type Return struct {
	ID                    ReturnID       `bson:"_id" json:"id"`
	Type                  ReturnType     `bson:"type" json:"type"`
	OriginalTransactionID TransactionID  `bson:"originalTransactionId,omitempty" json:"originalTransactionId,omitempty"`
	OriginalPurchaseID    PurchaseID     `bson:"originalPurchaseId,omitempty" json:"originalPurchaseId,omitempty"`
	Items                 []ReturnItem   `bson:"items" json:"items"`
	TotalAmount           float64        `bson:"totalAmount" json:"totalAmount"`
	SettlementType        SettlementType `bson:"settlementType" json:"settlementType"`
	VoucherID             string         `bson:"voucherId,omitempty" json:"voucherId,omitempty"`
	CreditNoteID          string         `bson:"creditNoteId,omitempty" json:"creditNoteId,omitempty"`
	Status                ReturnStatus   `bson:"status" json:"status"`
	Reason                string         `bson:"reason,omitempty" json:"reason,omitempty"`
	ProcessedBy           UserID         `bson:"processedBy" json:"processedBy"`
	CreatedAt             time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time      `bson:"updatedAt" json:"updatedAt"`
}

func (r *Return) Validate() error {
	v := &ValidationError{}
	switch r.Type {
	case ReturnCustomer:
		if r.OriginalTransactionID == "" {
			v.Add("originalTransactionId", "is required")
		}
		if r.OriginalPurchaseID != "" {
			v.Add("originalPurchaseId", "not allowed on a customer return")
		}
	case ReturnSupplier:
		if r.OriginalPurchaseID == "" {
			v.Add("originalPurchaseId", "is required")
		}
		if r.OriginalTransactionID != "" {
			v.Add("originalTransactionId", "not allowed on a supplier return")
		}
	default:
		v.Add("type", "must be customer or supplier")
	}
	if len(r.Items) == 0 {
		v.Add("items", "at least one item is required")
	}
	for i, it := range r.Items {
		if it.Quantity < 1 {
			v.Add(fmt.Sprintf("items[%d].quantity", i), "must be at least 1")
		}
	}
	if r.TotalAmount <= 0 {
		v.Add("totalAmount", "must be greater than 0")
	}
	if !r.SettlementType.Valid() {
		v.Add("settlementType", "must be one of refund, voucher, credit_note, ledger_adjustment")
	}
	if !r.Status.Valid() {
		v.Add("status", "must be one of pending, completed, cancelled")
	}
	return v.Err()
}
