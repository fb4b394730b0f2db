package market

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nordnotes/nordnotes/backend/go-services/internal/config"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/fees"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/models"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/storage"
	"github.com/nordnotes/nordnotes/backend/go-services/pkg/logger"
	"github.com/nordnotes/nordnotes/backend/go-services/pkg/metrics"
)

// Options configures a Service. Zero values are replaced by DefaultOptions.
type Options struct {
	Now   func() time.Time
	NewID func() string
	Fees  fees.Calculator
	// GuardSelfPurchase rejects purchases of a seller's own document.
	GuardSelfPurchase bool
	// GuardDuplicateReview rejects a second review by the same user.
	GuardDuplicateReview bool
	// ReadOnly keeps every change in memory and never writes to the store.
	ReadOnly bool
}

func DefaultOptions() Options {
	return Options{
		Now:                  func() time.Time { return time.Now().UTC() },
		NewID:                uuid.NewString,
		Fees:                 fees.NewCalculator(fees.FeeRate),
		GuardSelfPurchase:    true,
		GuardDuplicateReview: true,
	}
}

// Service is the marketplace data layer: the four collections held in memory,
// every mutation written through to the store.
type Service struct {
	mu    sync.RWMutex
	store *storage.Store
	opts  Options

	users         []models.User
	documents     []models.Document
	transactions  []models.Transaction
	reviews       []models.Review
	currentUserID string
}

// New builds a service and loads its state from the store.
func New(ctx context.Context, store *storage.Store, opts Options) *Service {
	def := DefaultOptions()
	if opts.Now == nil {
		opts.Now = def.Now
	}
	if opts.NewID == nil {
		opts.NewID = def.NewID
	}
	if !opts.Fees.Rate.IsPositive() {
		opts.Fees = def.Fees
	}
	s := &Service{store: store, opts: opts}
	s.Reload(ctx)
	return s
}

// Reload replaces the in-memory state with what the store currently holds.
// When no current user is stored the first user is selected and persisted.
func (s *Service) Reload(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = s.store.Users(ctx)
	s.documents = s.store.Documents(ctx)
	s.transactions = s.store.Transactions(ctx)
	s.reviews = s.store.Reviews(ctx)

	s.currentUserID = s.store.CurrentUserID(ctx)
	if s.currentUserID == "" && len(s.users) > 0 {
		s.currentUserID = s.users[0].ID
		s.persistCurrentUser(ctx)
	}
	logger.Debugf("market state loaded: users=%d documents=%d transactions=%d reviews=%d",
		len(s.users), len(s.documents), len(s.transactions), len(s.reviews))
}

func (s *Service) now() time.Time { return s.opts.Now() }

// reject logs and counts a refused operation and returns its typed error.
func (s *Service) reject(op string, reason Reason, msg string, kv ...interface{}) error {
	metrics.MarketRejections.WithLabelValues(op, string(reason)).Inc()
	logger.Warnw(op+" rejected: "+msg, append([]interface{}{"reason", string(reason)}, kv...)...)
	return &Error{Op: op, Reason: reason, Message: msg}
}

func (s *Service) succeeded(op string) {
	metrics.MarketOperations.WithLabelValues(op).Inc()
}

// persist writes the given collections in one backend call. Store failures
// are logged and do not fail the operation.
func (s *Service) persist(ctx context.Context, keys ...string) {
	if s.opts.ReadOnly {
		return
	}
	values := make(map[string]any, len(keys))
	for _, k := range keys {
		switch k {
		case storage.KeyUsers:
			values[k] = s.users
		case storage.KeyDocuments:
			values[k] = s.documents
		case storage.KeyTransactions:
			values[k] = s.transactions
		case storage.KeyReviews:
			values[k] = s.reviews
		}
	}
	if err := s.store.SetMany(ctx, values); err != nil {
		logger.Errorw("failed to persist market state", "keys", keys, "error", err)
	}
}

func (s *Service) persistCurrentUser(ctx context.Context) {
	if s.opts.ReadOnly {
		return
	}
	if err := s.store.SetCurrentUserID(ctx, s.currentUserID); err != nil {
		logger.Errorw("failed to persist current user", "error", err)
	}
}

func (s *Service) userIndex(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) documentIndex(id string) int {
	for i := range s.documents {
		if s.documents[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneDocument(d models.Document) models.Document {
	if d.Tags != nil {
		d.Tags = append([]string(nil), d.Tags...)
	}
	return d
}

// OptionsFromConfig maps the market section of the service config.
func OptionsFromConfig(cfg config.MarketConfig) Options {
	opts := DefaultOptions()
	opts.Fees = fees.NewCalculator(decimal.NewFromFloat(cfg.FeeRate))
	opts.GuardSelfPurchase = cfg.GuardSelfPurchase
	opts.GuardDuplicateReview = cfg.GuardDuplicateReview
	return opts
}
