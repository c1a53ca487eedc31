package services

import (
	"context"

	"medstore/filters"
	"medstore/models"
)

// PurchaseOrderUpdate is the body of PUT /purchase-orders/:id. Items can only
// be replaced while the order is still pending.
type PurchaseOrderUpdate struct {
	Status *models.PurchaseOrderStatus `json:"status"`
	Items  []models.PurchaseOrderItem  `json:"items"`
	Notes  *string                     `json:"notes"`
}

func (s *Service) CreatePurchaseOrder(ctx context.Context, po *models.PurchaseOrder) error {
	po.Status = models.POPending
	po.ComputeTotal()
	if err := po.Validate(); err != nil {
		return err
	}
	sp, err := s.store.GetSupplier(ctx, po.SupplierID)
	if err != nil {
		return err
	}
	po.SupplierName = sp.Name
	now := s.now()
	po.ID = models.NewID[models.PurchaseOrderID]()
	po.CreatedAt, po.UpdatedAt = now, now
	return s.store.CreatePurchaseOrder(ctx, po)
}

func (s *Service) ListPurchaseOrders(ctx context.Context, f filters.PurchaseOrderFilter) ([]models.PurchaseOrder, error) {
	return s.store.ListPurchaseOrders(ctx, f)
}

func (s *Service) GetPurchaseOrder(ctx context.Context, id models.PurchaseOrderID) (*models.PurchaseOrder, error) {
	return s.store.GetPurchaseOrder(ctx, id)
}

func (s *Service) UpdatePurchaseOrder(ctx context.Context, id models.PurchaseOrderID, upd PurchaseOrderUpdate) (*models.PurchaseOrder, error) {
	po, err := s.store.GetPurchaseOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Items != nil {
		if po.Status != models.POPending {
			return nil, models.Invalid("items", "can only be changed while the order is pending")
		}
		po.Items = upd.Items
		po.ComputeTotal()
	}
	if upd.Notes != nil {
		po.Notes = *upd.Notes
	}
	if upd.Status != nil {
		if !upd.Status.Valid() {
			return nil, models.Invalid("status", "must be one of pending, approved, received, cancelled")
		}
		if !po.Status.CanTransitionTo(*upd.Status) {
			return nil, models.Invalid("status", "cannot move from %s to %s", po.Status, *upd.Status)
		}
		po.Status = *upd.Status
	}
	if err := po.Validate(); err != nil {
		return nil, err
	}
	po.UpdatedAt = s.now()
	if err := s.store.ReplacePurchaseOrder(ctx, po); err != nil {
		return nil, err
	}
	return po, nil
}
