package filters

import (
	"go.mongodb.org/mongo-driver/bson"

	"medstore/models"
)

type CustomerFilter struct {
	Search string
	Limit  int
}

func (f CustomerFilter) BSON() bson.M {
	if f.Search == "" {
		return bson.M{}
	}
	return anyField(f.Search, "name", "phone")
}

func (f CustomerFilter) Match(c *models.Customer) bool {
	return f.Search == "" || containsAny(f.Search, c.Name, c.Phone)
}

type SupplierFilter struct {
	Search string
	Limit  int
}

func (f SupplierFilter) BSON() bson.M {
	if f.Search == "" {
		return bson.M{}
	}
	return anyField(f.Search, "name", "gstin", "contact")
}

func (f SupplierFilter) Match(s *models.Supplier) bool {
	return f.Search == "" || containsAny(f.Search, s.Name, s.GSTIN, s.Contact)
}

type PurchaseFilter struct {
	Search     string
	SupplierID models.SupplierID
	Status     models.PaymentStatus
	Limit      int
}

func (f PurchaseFilter) BSON() bson.M {
	var clauses bson.A
	if f.Search != "" {
		or := anyField(f.Search, "invoiceNumber", "supplierName")
		if models.IsHexID(f.Search) {
			or["$or"] = append(or["$or"].(bson.A), bson.M{"_id": f.Search})
		}
		clauses = append(clauses, or)
	}
	if f.SupplierID != "" {
		clauses = append(clauses, bson.M{"supplierId": f.SupplierID})
	}
	if f.Status != "" {
		clauses = append(clauses, bson.M{"status": f.Status})
	}
	return and(clauses)
}

func (f PurchaseFilter) Match(p *models.Purchase) bool {
	if f.Search != "" && string(p.ID) != f.Search && !containsAny(f.Search, p.InvoiceNumber, p.SupplierName) {
		return false
	}
	if f.SupplierID != "" && p.SupplierID != f.SupplierID {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	return true
}

type PurchaseOrderFilter struct {
	SupplierID models.SupplierID
	Status     models.PurchaseOrderStatus
}

func (f PurchaseOrderFilter) BSON() bson.M {
	m := bson.M{}
	if f.SupplierID != "" {
		m["supplierId"] = f.SupplierID
	}
	if f.Status != "" {
		m["status"] = f.Status
	}
	return m
}

func (f PurchaseOrderFilter) Match(po *models.PurchaseOrder) bool {
	return (f.SupplierID == "" || po.SupplierID == f.SupplierID) && (f.Status == "" || po.Status == f.Status)
}

type ReturnFilter struct {
	Type models.ReturnType
}

func (f ReturnFilter) BSON() bson.M {
	if f.Type == "" {
		return bson.M{}
	}
	return bson.M{"type": f.Type}
}

func (f ReturnFilter) Match(r *models.Return) bool {
	return f.Type == "" || r.Type == f.Type
}
