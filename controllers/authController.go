package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"medstore/middleware"
	"medstore/models"
	"medstore/utils"
)

const tokenCookie = "token"

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var input loginRequest
	if err := bind(c, &input); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	user, err := h.svc.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	token, claims, err := h.tokens.GenerateToken(string(user.ID), string(user.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error while generating token", "error": err.Error()})
		return
	}

	maxAge := int(claims.Remaining(time.Now()).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(tokenCookie, token, maxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Logout revokes the presented token for the rest of its lifetime.
func (h *Handler) Logout(c *gin.Context) {
	claims, ok := c.Get(middleware.ClaimsKey)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized", "error": "missing token"})
		return
	}
	jwtClaims := claims.(*utils.JWTClaim)

	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.denylist.Revoke(ctx, jwtClaims.TokenID(), jwtClaims.Remaining(time.Now())); err != nil {
		respondError(c, err)
		return
	}
	c.SetCookie(tokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *Handler) Me(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	user, err := h.svc.GetUser(ctx, models.UserID(c.GetString(middleware.UserIDKey)))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Healthz reports liveness together with the database round trip.
func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
