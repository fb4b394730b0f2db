package seed

import (
	"context"
	"fmt"

	"github.com/nordnotes/nordnotes/backend/go-services/internal/storage"
	"github.com/nordnotes/nordnotes/backend/go-services/pkg/logger"
)

// Loader gates the demo dataset behind a version string. A version mismatch
// overwrites all four collections; local edits are discarded.
type Loader struct {
	store   *storage.Store
	version string
}

func NewLoader(store *storage.Store, version string) *Loader {
	return &Loader{store: store, version: version}
}

func (l *Loader) Version() string { return l.version }

// NeedsSeeding reports whether the stored version is absent or different.
func (l *Loader) NeedsSeeding(ctx context.Context) bool {
	v := l.store.SeedVersion(ctx)
	return v == "" || v != l.version
}

// EnsureSeeded seeds when needed and reports whether it did.
func (l *Loader) EnsureSeeded(ctx context.Context) (bool, error) {
	if !l.NeedsSeeding(ctx) {
		return false, nil
	}
	if err := l.Force(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Force overwrites the collections with the demo dataset regardless of the
// stored version. The version is written last so an interrupted seed is
// retried on the next start.
func (l *Loader) Force(ctx context.Context) error {
	d := Dataset()
	err := l.store.SetMany(ctx, map[string]any{
		storage.KeyUsers:        d.Users,
		storage.KeyDocuments:    d.Documents,
		storage.KeyTransactions: d.Transactions,
		storage.KeyReviews:      d.Reviews,
	})
	if err != nil {
		return fmt.Errorf("seed collections: %w", err)
	}
	if err := l.store.SetCurrentUserID(ctx, DefaultCurrentUserID); err != nil {
		return fmt.Errorf("seed current user: %w", err)
	}
	if err := l.store.SetSeedVersion(ctx, l.version); err != nil {
		return fmt.Errorf("seed version: %w", err)
	}
	logger.Infof("seeded demo data version %s (%d users, %d documents, %d transactions, %d reviews)",
		l.version, len(d.Users), len(d.Documents), len(d.Transactions), len(d.Reviews))
	return nil
}
