package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"medstore/filters"
	"medstore/models"
	"medstore/services"
)

func (h *Handler) CreatePurchase(c *gin.Context) {
	var p models.Purchase
	if err := bind(c, &p); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	rec, err := h.svc.CreatePurchase(ctx, &p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *Handler) ListPurchases(c *gin.Context) {
	f := filters.PurchaseFilter{
		Search:     strings.TrimSpace(c.Query("search")),
		SupplierID: models.SupplierID(c.Query("supplierId")),
	}
	if s := c.Query("status"); s != "" && s != "all" {
		f.Status = models.PaymentStatus(s)
		if !f.Status.Valid() {
			respondError(c, models.Invalid("status", "must be paid or credit"))
			return
		}
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	purchases, err := h.svc.ListPurchases(ctx, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, purchases)
}

func (h *Handler) GetPurchase(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	p, err := h.svc.GetPurchase(ctx, models.PurchaseID(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type purchaseUpdateRequest struct {
	Status        *models.PaymentStatus `json:"status"`
	PaymentMethod *models.PaymentMethod `json:"paymentMethod"`
	InvoiceNumber *string               `json:"invoiceNumber"`
}

func (h *Handler) UpdatePurchase(c *gin.Context) {
	var input purchaseUpdateRequest
	if err := bind(c, &input); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	p, err := h.svc.UpdatePurchase(ctx, models.PurchaseID(c.Param("id")), models.PurchasePatch{
		Status:        input.Status,
		PaymentMethod: input.PaymentMethod,
		InvoiceNumber: input.InvoiceNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) CreatePurchaseOrder(c *gin.Context) {
	var po models.PurchaseOrder
	if err := bind(c, &po); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.CreatePurchaseOrder(ctx, &po); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, po)
}

func (h *Handler) ListPurchaseOrders(c *gin.Context) {
	f := filters.PurchaseOrderFilter{SupplierID: models.SupplierID(c.Query("supplierId"))}
	if s := c.Query("status"); s != "" && s != "all" {
		f.Status = models.PurchaseOrderStatus(s)
		if !f.Status.Valid() {
			respondError(c, models.Invalid("status", "must be pending, approved, received or cancelled"))
			return
		}
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	orders, err := h.svc.ListPurchaseOrders(ctx, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetPurchaseOrder(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	po, err := h.svc.GetPurchaseOrder(ctx, models.PurchaseOrderID(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, po)
}

func (h *Handler) UpdatePurchaseOrder(c *gin.Context) {
	var input services.PurchaseOrderUpdate
	if err := bind(c, &input); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	po, err := h.svc.UpdatePurchaseOrder(ctx, models.PurchaseOrderID(c.Param("id")), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, po)
}
