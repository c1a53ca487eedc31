package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medstore/filters"
	"medstore/models"
	"medstore/services"
)

func (h *Handler) CreateCustomerReturn(c *gin.Context) {
	var input services.CustomerReturnRequest
	if err := bind(c, &input); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	r, err := h.svc.CreateCustomerReturn(ctx, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *Handler) CreateSupplierReturn(c *gin.Context) {
	var input services.SupplierReturnRequest
	if err := bind(c, &input); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	r, err := h.svc.CreateSupplierReturn(ctx, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *Handler) ListReturns(c *gin.Context) {
	var f filters.ReturnFilter
	if t := c.Query("type"); t != "" && t != "all" {
		f.Type = models.ReturnType(t)
		if !f.Type.Valid() {
			respondError(c, models.Invalid("type", "must be customer or supplier"))
			return
		}
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	returns, err := h.svc.ListReturns(ctx, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, returns)
}

func (h *Handler) GetReturn(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	r, err := h.svc.GetReturn(ctx, models.ReturnID(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// SearchReturnable looks up originals: sales for type=customer, purchases for type=supplier.
func (h *Handler) SearchReturnable(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	q := c.Query("q")
	switch models.ReturnType(c.Query("type")) {
	case models.ReturnCustomer:
		txs, err := h.svc.SearchReturnableSales(ctx, q)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, txs)
	case models.ReturnSupplier:
		purchases, err := h.svc.SearchReturnablePurchases(ctx, q)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, purchases)
	default:
		respondError(c, models.Invalid("type", "must be customer or supplier"))
	}
}
