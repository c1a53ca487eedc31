package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Typed references. Every id is the hex form of a Mongo ObjectID, stored as the
// document _id, so references between collections cannot be mixed up at compile time.
type (
	ProductID       string
	BatchID         string
	SupplierID      string
	CustomerID      string
	TransactionID   string
	PurchaseID      string
	PurchaseOrderID string
	ReturnID        string
	UserID          string
)

// NewID mints a fresh identifier of the requested kind.
func NewID[T ~string]() T {
	return T(primitive.NewObjectID().Hex())
}

// IsHexID reports whether s looks like an id minted by NewID.
func IsHexID(s string) bool {
	return primitive.IsValidObjectID(s)
}
