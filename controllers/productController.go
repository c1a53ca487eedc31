package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medstore/filters"
	"medstore/inventory"
	"medstore/models"
)

func (h *Handler) ListProducts(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	products, err := h.svc.ListProducts(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var p models.Product
	if err := bind(c, &p); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.CreateProduct(ctx, &p); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) GetProduct(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	p, err := h.svc.GetProduct(ctx, models.ProductID(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var p models.Product
	if err := bind(c, &p); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.UpdateProduct(ctx, models.ProductID(c.Param("id")), &p); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.DeleteProduct(ctx, models.ProductID(c.Param("id"))); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

func (h *Handler) ProductStats(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	stats, err := h.svc.ProductStats(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) FilterProducts(c *gin.Context) {
	f, err := filters.ParseProductQuery(c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	products, err := h.svc.FilterProducts(ctx, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) SearchProducts(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	products, err := h.svc.SearchProducts(ctx, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// ExpiringProducts lists batches for ?filter=expired|15|30|60|90, soonest first.
func (h *Handler) ExpiringProducts(c *gin.Context) {
	w, err := inventory.ParseWindow(c.DefaultQuery("filter", "30"))
	if err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	batches, err := h.svc.ExpiringBatches(ctx, w)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, batches)
}

func (h *Handler) AddBatch(c *gin.Context) {
	var b models.Batch
	if err := bind(c, &b); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	p, err := h.svc.AddBatch(ctx, models.ProductID(c.Param("id")), b)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

type batchStockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

func (h *Handler) SetBatchStock(c *gin.Context) {
	var input batchStockRequest
	if err := bind(c, &input); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	p, err := h.svc.SetBatchStock(ctx, models.ProductID(c.Param("id")), models.BatchID(c.Param("batchId")), *input.Stock)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type batchDiscountRequest struct {
	SaleDiscount *float64 `json:"saleDiscount" binding:"required"`
}

func (h *Handler) SetBatchDiscount(c *gin.Context) {
	var input batchDiscountRequest
	if err := bind(c, &input); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	p, err := h.svc.SetBatchSaleDiscount(ctx, models.ProductID(c.Param("id")), models.BatchID(c.Param("batchId")), *input.SaleDiscount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type productFlagsRequest struct {
	OrderLater *bool `json:"orderLater" binding:"required"`
	IsOrdered  *bool `json:"isOrdered" binding:"required"`
}

func (h *Handler) SetProductFlags(c *gin.Context) {
	var input productFlagsRequest
	if err := bind(c, &input); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	p, err := h.svc.SetProductFlags(ctx, models.ProductID(c.Param("id")), *input.OrderLater, *input.IsOrdered)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
