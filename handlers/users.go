package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nordnotes/nordnotes/backend/go-services/internal/market"
	"github.com/nordnotes/nordnotes/backend/go-services/pkg/middleware"
)

// SelectUserRequest switches the demo persona.
type SelectUserRequest struct {
	UserID string `json:"userId" binding:"required"`
}

func (h *MarketHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Users())
}

func (h *MarketHandler) GetUser(c *gin.Context) {
	u := h.svc.User(c.Param("id"))
	if u == nil {
		notFound(c, market.ReasonUserNotFound, "user not found")
		return
	}
	c.JSON(http.StatusOK, u)
}

// GetMe returns the acting user.
func (h *MarketHandler) GetMe(c *gin.Context) {
	id, ok := requireUser(c)
	if !ok {
		return
	}
	u := h.svc.User(id)
	if u == nil {
		notFound(c, market.ReasonUserNotFound, "user not found")
		return
	}
	c.JSON(http.StatusOK, u)
}

// SelectMe changes the persistent current-user selection.
func (h *MarketHandler) SelectMe(c *gin.Context) {
	var req SelectUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	u, err := h.svc.SetCurrentUser(c.Request.Context(), req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *MarketHandler) GetSellerStats(c *gin.Context) {
	id := c.Param("id")
	if !h.svc.HasUser(id) {
		notFound(c, market.ReasonUserNotFound, "user not found")
		return
	}
	c.JSON(http.StatusOK, h.svc.SellerStats(id))
}

func (h *MarketHandler) ListSellerDocuments(c *gin.Context) {
	c.JSON(http.StatusOK, nonNil(h.svc.DocumentsBySeller(c.Param("id"))))
}

func (h *MarketHandler) ListSales(c *gin.Context) {
	c.JSON(http.StatusOK, nonNil(h.svc.TransactionsBySeller(c.Param("id"))))
}

// ListPurchases is visible to the buyer only.
func (h *MarketHandler) ListPurchases(c *gin.Context) {
	id := c.Param("id")
	if middleware.UserID(c) != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "purchases are private"})
		return
	}
	c.JSON(http.StatusOK, nonNil(h.svc.TransactionsByBuyer(id)))
}

// Payout simulates paying out the user's balance.
func (h *MarketHandler) Payout(c *gin.Context) {
	u := h.svc.SimulatePayout(c.Request.Context(), c.Param("id"))
	if u == nil {
		notFound(c, market.ReasonUserNotFound, "user not found")
		return
	}
	c.JSON(http.StatusOK, u)
}

// nonNil keeps empty listings encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
