package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"medstore/filters"
	"medstore/models"
)

func (h *Handler) ListSuppliers(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	suppliers, err := h.svc.ListSuppliers(ctx, filters.SupplierFilter{Search: strings.TrimSpace(c.Query("search"))})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func (h *Handler) GetSupplier(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	sp, err := h.svc.GetSupplier(ctx, models.SupplierID(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (h *Handler) CreateSupplier(c *gin.Context) {
	var sp models.Supplier
	if err := bind(c, &sp); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.CreateSupplier(ctx, &sp); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sp)
}

func (h *Handler) UpdateSupplier(c *gin.Context) {
	var sp models.Supplier
	if err := bind(c, &sp); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.UpdateSupplier(ctx, models.SupplierID(c.Param("id")), &sp); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (h *Handler) DeleteSupplier(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.DeleteSupplier(ctx, models.SupplierID(c.Param("id"))); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted"})
}

func (h *Handler) ListCustomers(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	customers, err := h.svc.ListCustomers(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *Handler) SearchCustomers(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	customers, err := h.svc.SearchCustomers(ctx, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *Handler) GetCustomer(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	cu, err := h.svc.GetCustomer(ctx, models.CustomerID(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cu)
}

// CreateCustomer answers 201 for a new phone and 200 when an existing
// customer was refreshed.
func (h *Handler) CreateCustomer(c *gin.Context) {
	var cu models.Customer
	if err := bind(c, &cu); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	created, err := h.svc.CreateCustomer(ctx, &cu)
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, cu)
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	var cu models.Customer
	if err := bind(c, &cu); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.UpdateCustomer(ctx, models.CustomerID(c.Param("id")), &cu); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cu)
}

func (h *Handler) DeleteCustomer(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.DeleteCustomer(ctx, models.CustomerID(c.Param("id"))); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
