package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nordnotes/nordnotes/backend/go-services/internal/files"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/market"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/models"
	"github.com/nordnotes/nordnotes/backend/go-services/pkg/middleware"
)

// Marketplace is the data service surface used by the HTTP handlers.
type Marketplace interface {
	middleware.UserResolver
	Users() []models.User
	User(id string) *models.User
	SetCurrentUser(ctx context.Context, userID string) (*models.User, error)
	SimulatePayout(ctx context.Context, userID string) *models.User
	SellerStats(sellerID string) market.SellerStats
	DocumentsBySeller(sellerID string) []models.Document
	TransactionsBySeller(sellerID string) []models.Transaction
	TransactionsByBuyer(buyerID string) []models.Transaction

	Browse(f market.BrowseFilter) []models.Document
	FilterOptions() market.FilterOptions
	Document(id string) *models.Document
	CreateDocument(ctx context.Context, actingUserID string, in market.DocumentInput) (*models.Document, error)
	UpdateDocument(ctx context.Context, id string, patch market.DocumentPatch) (*models.Document, error)
	CreateTransaction(ctx context.Context, documentID, buyerID string, method models.PaymentMethod) (*models.Transaction, error)
	AddReview(ctx context.Context, documentID, userID string, rating int, comment string) (*models.Review, error)
	HasPurchased(documentID, userID string) bool
	SalesCount(documentID string) int
	ReviewsForDocument(documentID string) []models.Review
}

// MarketHandler serves the marketplace API.
type MarketHandler struct {
	svc   Marketplace
	files files.Store
}

// NewMarketHandler builds the handler. fs may be nil, in which case file
// endpoints answer 503.
func NewMarketHandler(svc Marketplace, fs files.Store) *MarketHandler {
	return &MarketHandler{svc: svc, files: fs}
}

// Register routes under /api
func (h *MarketHandler) Register(rg *gin.RouterGroup) {
	api := rg.Group("/api", middleware.ActingUser(h.svc))

	api.GET("/users", h.ListUsers)
	api.GET("/users/:id", h.GetUser)
	api.GET("/users/:id/stats", h.GetSellerStats)
	api.GET("/users/:id/documents", h.ListSellerDocuments)
	api.GET("/users/:id/sales", h.ListSales)
	api.GET("/users/:id/purchases", h.ListPurchases)
	api.POST("/users/:id/payout", h.Payout)
	api.GET("/me", h.GetMe)
	api.PUT("/me", h.SelectMe)

	api.GET("/documents", h.BrowseDocuments)
	api.GET("/documents/filters", h.GetFilterOptions)
	api.POST("/documents", h.CreateDocument)
	api.GET("/documents/:id", h.GetDocument)
	api.PATCH("/documents/:id", h.UpdateDocument)
	api.POST("/documents/:id/purchase", h.Purchase)
	api.POST("/documents/:id/reviews", h.AddReview)
	api.POST("/documents/:id/file", h.UploadFile)
	api.GET("/documents/:id/file", h.DownloadFile)
}

// requireUser returns the acting user id or writes 401.
func requireUser(c *gin.Context) (string, bool) {
	id := middleware.UserID(c)
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no acting user; set " + middleware.UserHeader, "code": string(market.ReasonUserNotFound)})
		return "", false
	}
	return id, true
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func notFound(c *gin.Context, reason market.Reason, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg, "code": string(reason)})
}

// writeError maps marketplace rejections to HTTP statuses.
func writeError(c *gin.Context, err error) {
	var me *market.Error
	if !errors.As(err, &me) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	status := http.StatusBadRequest
	switch me.Reason {
	case market.ReasonDocumentNotFound, market.ReasonUserNotFound:
		status = http.StatusNotFound
	case market.ReasonRoleNotAllowed, market.ReasonSelfPurchase:
		status = http.StatusForbidden
	case market.ReasonNotPurchased, market.ReasonAlreadyReviewed:
		status = http.StatusConflict
	case market.ReasonInvalidRating:
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": me.Message, "code": string(me.Reason)})
}
