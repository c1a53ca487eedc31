package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"medstore/filters"
	"medstore/models"
	"medstore/services"
	"medstore/utils"
)

func (h *Handler) ListTransactions(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	txs, err := h.svc.ListTransactions(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, txs)
}

func (h *Handler) CreateTransaction(c *gin.Context) {
	var t models.Transaction
	if err := bind(c, &t); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.CreateTransaction(ctx, &t); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *Handler) GetTransaction(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	t, err := h.svc.GetTransaction(ctx, models.TransactionID(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

type transactionUpdateRequest struct {
	Status        *models.PaymentStatus `json:"status"`
	PaymentMethod *string               `json:"paymentMethod"`
	Prescription  map[string]string     `json:"prescription"`
}

func (h *Handler) UpdateTransaction(c *gin.Context) {
	var input transactionUpdateRequest
	if err := bind(c, &input); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	t, err := h.svc.UpdateTransaction(ctx, models.TransactionID(c.Param("id")), models.TransactionPatch{
		Status:        input.Status,
		PaymentMethod: input.PaymentMethod,
		Prescription:  input.Prescription,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) FilterTransactions(c *gin.Context) {
	f, err := filters.ParseTransactionQuery(c.Request.URL.Query(), h.svc.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	txs, err := h.svc.FilterTransactions(ctx, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, txs)
}

func (h *Handler) TransactionChart(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	points, err := h.svc.Chart(ctx, services.ChartRange(c.Param("range")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// UploadPrescription stores the "file" form field and records its URLs under
// the "label" form field (default "image") in the transaction's prescription.
func (h *Handler) UploadPrescription(c *gin.Context) {
	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "prescription storage is not configured", "error": "uploads disabled"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, models.Invalid("file", "is required"))
		return
	}
	label := strings.TrimSpace(c.DefaultPostForm("label", "image"))
	if !models.ValidPrescriptionLabel(label) {
		respondError(c, models.Invalid("label", "must be a plain name"))
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	id := models.TransactionID(c.Param("id"))
	if _, err := h.svc.GetTransaction(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	img, err := h.uploader.Upload(ctx, string(id), file)
	if err != nil {
		if errors.Is(err, utils.ErrFileTooLarge) || errors.Is(err, utils.ErrUnsupportedImage) {
			err = models.Invalid("file", "%s", err.Error())
		}
		respondError(c, err)
		return
	}

	t, err := h.svc.UpdateTransaction(ctx, id, models.TransactionPatch{
		Prescription: map[string]string{
			label:             img.URL,
			label + "Preview": img.PreviewURL,
		},
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}
