package market

import (
	"context"
	"sort"

	"github.com/nordnotes/nordnotes/backend/go-services/internal/fees"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/models"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/storage"
	"github.com/nordnotes/nordnotes/backend/go-services/pkg/logger"
	"github.com/nordnotes/nordnotes/backend/go-services/pkg/metrics"
)

func (s *Service) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Transaction(nil), s.transactions...)
}

// TransactionsBySeller lists sales of the seller's documents, newest first.
func (s *Service) TransactionsBySeller(sellerID string) []models.Transaction {
	return s.filterTransactions(func(t models.Transaction) bool { return t.SellerID == sellerID })
}

// TransactionsByBuyer lists the buyer's purchases, newest first.
func (s *Service) TransactionsByBuyer(buyerID string) []models.Transaction {
	return s.filterTransactions(func(t models.Transaction) bool { return t.BuyerID == buyerID })
}

func (s *Service) filterTransactions(keep func(models.Transaction) bool) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Transaction
	for _, t := range s.transactions {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// CreateTransaction records a completed purchase at the document's current
// price and credits the seller's balance with the revenue share.
func (s *Service) CreateTransaction(ctx context.Context, documentID, buyerID string, method models.PaymentMethod) (*models.Transaction, error) {
	const op = "create_transaction"
	s.mu.Lock()
	defer s.mu.Unlock()

	di := s.documentIndex(documentID)
	if di < 0 {
		return nil, s.reject(op, ReasonDocumentNotFound, "unknown document", "documentId", documentID)
	}
	if s.userIndex(buyerID) < 0 {
		return nil, s.reject(op, ReasonUserNotFound, "unknown buyer", "userId", buyerID)
	}
	doc := s.documents[di]
	if s.opts.GuardSelfPurchase && doc.SellerID == buyerID {
		return nil, s.reject(op, ReasonSelfPurchase, "buyer is the seller",
			"documentId", documentID, "userId", buyerID)
	}

	fee, revenue := s.opts.Fees.Split(doc.Price)
	tx := models.Transaction{
		ID:            s.opts.NewID(),
		DocumentID:    documentID,
		BuyerID:       buyerID,
		SellerID:      doc.SellerID,
		Price:         doc.Price,
		PlatformFee:   fee,
		SellerRevenue: revenue,
		CreatedAt:     s.now(),
		PaymentMethod: method,
		Status:        models.TransactionCompleted,
	}
	s.transactions = append([]models.Transaction{tx}, s.transactions...)

	if si := s.userIndex(doc.SellerID); si >= 0 {
		users := append([]models.User(nil), s.users...)
		users[si].Balance = fees.Round2(users[si].Balance.Add(revenue))
		s.users = users
	} else {
		logger.Warnw("seller missing, balance not credited", "sellerId", doc.SellerID, "transactionId", tx.ID)
	}
	s.persist(ctx, storage.KeyTransactions, storage.KeyUsers)

	s.succeeded(op)
	metrics.PlatformRevenue.Add(fee.InexactFloat64())
	logger.Infow("purchase completed", "transactionId", tx.ID, "documentId", documentID,
		"buyerId", buyerID, "price", doc.Price.StringFixed(2))
	return &tx, nil
}

// HasPurchased reports whether userID holds a completed transaction for the
// document. An empty userID means the current user.
func (s *Service) HasPurchased(documentID, userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasPurchased(documentID, userID)
}

func (s *Service) hasPurchased(documentID, userID string) bool {
	if userID == "" {
		userID = s.currentUserID
	}
	if userID == "" {
		return false
	}
	for _, t := range s.transactions {
		if t.DocumentID == documentID && t.BuyerID == userID && t.Completed() {
			return true
		}
	}
	return false
}

// SalesCount is the number of completed transactions for the document.
func (s *Service) SalesCount(documentID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.salesCount(documentID)
}

func (s *Service) salesCount(documentID string) int {
	n := 0
	for _, t := range s.transactions {
		if t.DocumentID == documentID && t.Completed() {
			n++
		}
	}
	return n
}
