package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) DashboardStats(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	stats, err := h.svc.DashboardStats(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) DashboardAlerts(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	alerts, err := h.svc.DashboardAlerts(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (h *Handler) GlobalSearch(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	results, err := h.svc.Search(ctx, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
