package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nordnotes/nordnotes/backend/go-services/internal/files"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/market"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/models"
	"github.com/nordnotes/nordnotes/backend/go-services/pkg/logger"
	"github.com/nordnotes/nordnotes/backend/go-services/pkg/middleware"
)

// MaxUploadBytes caps uploaded document files.
const MaxUploadBytes = 20 << 20

// CreateDocumentRequest is the listing form. Prices are in NOK.
type CreateDocumentRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	PriceNOK    float64  `json:"priceNOK" binding:"required"`
	University  string   `json:"university" binding:"required"`
	Country     string   `json:"country" binding:"required,oneof=NO SE DK"`
	Subject     string   `json:"subject" binding:"required"`
	CourseCode  string   `json:"courseCode"`
	Type        string   `json:"type" binding:"required,oneof=exam-answer summary lecture-notes exercise-solution other"`
	Tags        []string `json:"tags"`
	Language    string   `json:"language" binding:"omitempty,oneof=nb nn en sv da"`
	PreviewURL  string   `json:"previewUrl"`
	FileName    string   `json:"fileName"`
}

// UpdateDocumentRequest carries a partial update; absent fields are kept.
type UpdateDocumentRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	PriceNOK    *float64  `json:"priceNOK" binding:"omitempty,gt=0"`
	University  *string   `json:"university"`
	Country     *string   `json:"country" binding:"omitempty,oneof=NO SE DK"`
	Subject     *string   `json:"subject"`
	CourseCode  *string   `json:"courseCode"`
	Type        *string   `json:"type" binding:"omitempty,oneof=exam-answer summary lecture-notes exercise-solution other"`
	Tags        *[]string `json:"tags"`
	Language    *string   `json:"language" binding:"omitempty,oneof=nb nn en sv da"`
	PreviewURL  *string   `json:"previewUrl"`
	FileName    *string   `json:"fileName"`
}

type PurchaseRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"omitempty,oneof=vipps_demo kort_demo stripe_demo"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// DocumentDetail is the document page payload.
type DocumentDetail struct {
	Document     models.Document `json:"document"`
	Seller       *models.User    `json:"seller"`
	SalesCount   int             `json:"salesCount"`
	Reviews      []models.Review `json:"reviews"`
	HasPurchased bool            `json:"hasPurchased"`
}

func (h *MarketHandler) BrowseDocuments(c *gin.Context) {
	f := market.BrowseFilter{
		Query:      c.Query("q"),
		University: c.Query("university"),
		Country:    models.CountryCode(c.Query("country")),
		Subject:    c.Query("subject"),
		Type:       models.DocumentType(c.Query("type")),
		Sort:       market.SortOrder(c.DefaultQuery("sort", string(market.SortNewest))),
	}
	c.JSON(http.StatusOK, h.svc.Browse(f))
}

func (h *MarketHandler) GetFilterOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.FilterOptions())
}

func (h *MarketHandler) GetDocument(c *gin.Context) {
	id := c.Param("id")
	d := h.svc.Document(id)
	if d == nil {
		notFound(c, market.ReasonDocumentNotFound, "document not found")
		return
	}
	c.JSON(http.StatusOK, DocumentDetail{
		Document:     *d,
		Seller:       h.svc.User(d.SellerID),
		SalesCount:   h.svc.SalesCount(id),
		Reviews:      nonNil(h.svc.ReviewsForDocument(id)),
		HasPurchased: h.svc.HasPurchased(id, middleware.UserID(c)),
	})
}

func (h *MarketHandler) CreateDocument(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	price := decimal.NewFromFloat(req.PriceNOK)
	if price.LessThan(models.MinDocumentPrice) {
		badRequest(c, fmt.Errorf("priceNOK must be at least %s", models.MinDocumentPrice))
		return
	}
	lang := models.Language(req.Language)
	if lang == "" {
		lang = models.LanguageBokmal
	}
	d, err := h.svc.CreateDocument(c.Request.Context(), userID, market.DocumentInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       price,
		University:  req.University,
		Country:     models.CountryCode(req.Country),
		Subject:     req.Subject,
		CourseCode:  req.CourseCode,
		Type:        models.DocumentType(req.Type),
		Tags:        req.Tags,
		Language:    lang,
		PreviewURL:  req.PreviewURL,
		FileName:    req.FileName,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// UpdateDocument is restricted to the document's seller.
func (h *MarketHandler) UpdateDocument(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.ownedDocument(c, id); !ok {
		return
	}
	var req UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	patch := market.DocumentPatch{
		Title:       req.Title,
		Description: req.Description,
		University:  req.University,
		Subject:     req.Subject,
		CourseCode:  req.CourseCode,
		Tags:        req.Tags,
		PreviewURL:  req.PreviewURL,
		FileName:    req.FileName,
	}
	if req.PriceNOK != nil {
		p := decimal.NewFromFloat(*req.PriceNOK)
		patch.Price = &p
	}
	if req.Country != nil {
		v := models.CountryCode(*req.Country)
		patch.Country = &v
	}
	if req.Type != nil {
		v := models.DocumentType(*req.Type)
		patch.Type = &v
	}
	if req.Language != nil {
		v := models.Language(*req.Language)
		patch.Language = &v
	}
	d, err := h.svc.UpdateDocument(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	if d == nil {
		notFound(c, market.ReasonDocumentNotFound, "document not found")
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *MarketHandler) Purchase(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req PurchaseRequest
	// an empty body selects the default payment method
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err)
		return
	}
	method := models.PaymentMethod(req.PaymentMethod)
	if method == "" {
		method = models.PaymentVipps
	}
	tx, err := h.svc.CreateTransaction(c.Request.Context(), c.Param("id"), userID, method)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

func (h *MarketHandler) AddReview(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	r, err := h.svc.AddReview(c.Request.Context(), c.Param("id"), userID, req.Rating, req.Comment)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// UploadFile stores the document's file and points fileName/previewUrl at it.
func (h *MarketHandler) UploadFile(c *gin.Context) {
	if h.files == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "file storage not configured"})
		return
	}
	id := c.Param("id")
	if _, ok := h.ownedDocument(c, id); !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes)
	fh, err := c.FormFile("file")
	if err != nil {
		badRequest(c, err)
		return
	}
	f, err := fh.Open()
	if err != nil {
		badRequest(c, err)
		return
	}
	defer f.Close()

	ctx := c.Request.Context()
	key := files.ObjectKey(id, fh.Filename)
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := h.files.Upload(ctx, key, f, fh.Size, contentType); err != nil {
		logger.Errorw("file upload failed", "documentId", id, "key", key, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "upload failed"})
		return
	}
	preview, err := h.files.PreviewURL(ctx, key)
	if err != nil {
		logger.Warnw("preview url failed", "documentId", id, "key", key, "error", err)
		preview = ""
	}
	name := fh.Filename
	d, err := h.svc.UpdateDocument(ctx, id, market.DocumentPatch{FileName: &name, PreviewURL: &preview})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// DownloadFile streams the document file to its seller or a buyer.
func (h *MarketHandler) DownloadFile(c *gin.Context) {
	if h.files == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "file storage not configured"})
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id := c.Param("id")
	d := h.svc.Document(id)
	if d == nil {
		notFound(c, market.ReasonDocumentNotFound, "document not found")
		return
	}
	if d.SellerID != userID && !h.svc.HasPurchased(id, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "purchase the document to download it", "code": string(market.ReasonNotPurchased)})
		return
	}
	rc, err := h.files.Open(c.Request.Context(), files.ObjectKey(id, d.FileName))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	defer rc.Close()
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": d.FileName})
	if disposition == "" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", disposition)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		logger.Warnw("file download interrupted", "documentId", id, "error", err)
	}
}

// ownedDocument loads the document and checks the acting user sells it.
func (h *MarketHandler) ownedDocument(c *gin.Context, id string) (*models.Document, bool) {
	userID, ok := requireUser(c)
	if !ok {
		return nil, false
	}
	d := h.svc.Document(id)
	if d == nil {
		notFound(c, market.ReasonDocumentNotFound, "document not found")
		return nil, false
	}
	if d.SellerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the seller can modify this document", "code": string(market.ReasonRoleNotAllowed)})
		return nil, false
	}
	return d, true
}
