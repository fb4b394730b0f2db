package market

import (
	"context"
	"sort"

	"github.com/nordnotes/nordnotes/backend/go-services/internal/fees"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/models"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/storage"
)

const (
	MinRating = 1
	MaxRating = 5
)

func (s *Service) Reviews() []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Review(nil), s.reviews...)
}

// ReviewsForDocument returns the document's reviews, newest first.
func (s *Service) ReviewsForDocument(documentID string) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Review
	for _, r := range s.reviews {
		if r.DocumentID == documentID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// AddReview records a review by a user who bought the document and
// recomputes the document's rating from all of its reviews.
func (s *Service) AddReview(ctx context.Context, documentID, userID string, rating int, comment string) (*models.Review, error) {
	const op = "add_review"
	s.mu.Lock()
	defer s.mu.Unlock()

	if rating < MinRating || rating > MaxRating {
		return nil, s.reject(op, ReasonInvalidRating, "rating out of range",
			"documentId", documentID, "rating", rating)
	}
	if s.userIndex(userID) < 0 {
		return nil, s.reject(op, ReasonUserNotFound, "unknown reviewer", "userId", userID)
	}
	di := s.documentIndex(documentID)
	if di < 0 {
		return nil, s.reject(op, ReasonDocumentNotFound, "unknown document", "documentId", documentID)
	}
	if !s.hasPurchased(documentID, userID) {
		return nil, s.reject(op, ReasonNotPurchased, "user must purchase document before reviewing",
			"documentId", documentID, "userId", userID)
	}
	if s.opts.GuardDuplicateReview {
		for _, r := range s.reviews {
			if r.DocumentID == documentID && r.UserID == userID {
				return nil, s.reject(op, ReasonAlreadyReviewed, "user already reviewed document",
					"documentId", documentID, "userId", userID)
			}
		}
	}

	review := models.Review{
		ID:         s.opts.NewID(),
		DocumentID: documentID,
		UserID:     userID,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  s.now(),
	}
	s.reviews = append([]models.Review{review}, s.reviews...)

	total, count := 0, 0
	for _, r := range s.reviews {
		if r.DocumentID == documentID {
			total += r.Rating
			count++
		}
	}
	docs := append([]models.Document(nil), s.documents...)
	docs[di].RatingAverage = fees.Round1(float64(total) / float64(count))
	docs[di].RatingCount = count
	s.documents = docs

	s.persist(ctx, storage.KeyReviews, storage.KeyDocuments)
	s.succeeded(op)
	return &review, nil
}
