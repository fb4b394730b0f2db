package market

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/nordnotes/nordnotes/backend/go-services/internal/models"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/storage"
	"github.com/nordnotes/nordnotes/backend/go-services/pkg/logger"
)

// DocumentInput carries the seller-supplied fields of a new listing.
type DocumentInput struct {
	Title       string
	Description string
	Price       decimal.Decimal
	University  string
	Country     models.CountryCode
	Subject     string
	CourseCode  string
	Type        models.DocumentType
	Tags        []string
	Language    models.Language
	PreviewURL  string
	FileName    string
}

// DocumentPatch holds optional updates; nil fields are left unchanged.
type DocumentPatch struct {
	Title       *string
	Description *string
	Price       *decimal.Decimal
	University  *string
	Country     *models.CountryCode
	Subject     *string
	CourseCode  *string
	Type        *models.DocumentType
	Tags        *[]string
	Language    *models.Language
	PreviewURL  *string
	FileName    *string
}

func (s *Service) Documents() []models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Document, len(s.documents))
	for i, d := range s.documents {
		out[i] = cloneDocument(d)
	}
	return out
}

// Document returns the document with the given id, or nil.
func (s *Service) Document(id string) *models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.documentIndex(id); i >= 0 {
		d := cloneDocument(s.documents[i])
		return &d
	}
	return nil
}

// DocumentsBySeller lists a seller's documents, newest first.
func (s *Service) DocumentsBySeller(sellerID string) []models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Document
	for _, d := range s.documents {
		if d.SellerID == sellerID {
			out = append(out, cloneDocument(d))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// CreateDocument lists a new document for the acting user, who must be
// allowed to sell.
func (s *Service) CreateDocument(ctx context.Context, actingUserID string, in DocumentInput) (*models.Document, error) {
	const op = "create_document"
	s.mu.Lock()
	defer s.mu.Unlock()

	ui := s.userIndex(actingUserID)
	if ui < 0 {
		return nil, s.reject(op, ReasonUserNotFound, "unknown acting user", "userId", actingUserID)
	}
	if !s.users[ui].Role.CanSell() {
		return nil, s.reject(op, ReasonRoleNotAllowed, "user is not a seller",
			"userId", actingUserID, "role", string(s.users[ui].Role))
	}

	now := s.now()
	doc := models.Document{
		ID:            s.opts.NewID(),
		Title:         in.Title,
		Description:   in.Description,
		Price:         in.Price,
		SellerID:      actingUserID,
		University:    in.University,
		Country:       in.Country,
		Subject:       in.Subject,
		CourseCode:    in.CourseCode,
		Type:          in.Type,
		RatingAverage: 0,
		RatingCount:   0,
		CreatedAt:     now,
		UpdatedAt:     now,
		PreviewURL:    in.PreviewURL,
		FileName:      in.FileName,
		Tags:          append([]string(nil), in.Tags...),
		Language:      in.Language,
	}
	s.documents = append([]models.Document{doc}, s.documents...)
	s.persist(ctx, storage.KeyDocuments)
	s.succeeded(op)
	logger.Infof("document %s listed by %s", doc.ID, actingUserID)

	out := cloneDocument(doc)
	return &out, nil
}

// UpdateDocument applies patch to the document and refreshes updatedAt.
// An unknown id is a no-op and returns nil without error.
func (s *Service) UpdateDocument(ctx context.Context, id string, patch DocumentPatch) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.documentIndex(id)
	if i < 0 {
		logger.Debugw("update skipped, unknown document", "documentId", id)
		return nil, nil
	}
	docs := append([]models.Document(nil), s.documents...)
	d := cloneDocument(docs[i])
	if patch.Title != nil {
		d.Title = *patch.Title
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	if patch.Price != nil {
		d.Price = *patch.Price
	}
	if patch.University != nil {
		d.University = *patch.University
	}
	if patch.Country != nil {
		d.Country = *patch.Country
	}
	if patch.Subject != nil {
		d.Subject = *patch.Subject
	}
	if patch.CourseCode != nil {
		d.CourseCode = *patch.CourseCode
	}
	if patch.Type != nil {
		d.Type = *patch.Type
	}
	if patch.Tags != nil {
		d.Tags = append([]string(nil), (*patch.Tags)...)
	}
	if patch.Language != nil {
		d.Language = *patch.Language
	}
	if patch.PreviewURL != nil {
		d.PreviewURL = *patch.PreviewURL
	}
	if patch.FileName != nil {
		d.FileName = *patch.FileName
	}
	d.UpdatedAt = s.now()
	docs[i] = d
	s.documents = docs
	s.persist(ctx, storage.KeyDocuments)
	s.succeeded("update_document")

	out := cloneDocument(d)
	return &out, nil
}
