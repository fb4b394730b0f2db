package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nordnotes/nordnotes/backend/go-services/internal/models"
	"github.com/nordnotes/nordnotes/backend/go-services/pkg/logger"
)

// DefaultPrefix namespaces every key written by the marketplace.
const DefaultPrefix = "nordnotes_"

// Logical keys. Collections are JSON arrays, the two scalars are raw strings.
const (
	KeyUsers         = "users"
	KeyDocuments     = "documents"
	KeyTransactions  = "transactions"
	KeyReviews       = "reviews"
	KeyCurrentUserID = "currentUserId"
	KeySeedVersion   = "seed_version"
)

// AllKeys lists every key owned by the store, in ClearAll order.
var AllKeys = []string{KeyUsers, KeyDocuments, KeyTransactions, KeyReviews, KeyCurrentUserID, KeySeedVersion}

// Store is the JSON persistence layer over a KV backend. Reads never fail:
// missing or corrupt values yield the caller's fallback.
type Store struct {
	kv     KV
	prefix string
}

func New(kv KV, prefix string) *Store {
	return &Store{kv: kv, prefix: prefix}
}

// NewMemory returns a store over a fresh in-memory backend.
func NewMemory() *Store {
	return New(NewMemoryKV(), DefaultPrefix)
}

func (s *Store) key(k string) string { return s.prefix + k }

// Get decodes the JSON value under key into a T, returning fallback when the
// key is absent, the backend fails, or the payload does not parse.
func Get[T any](ctx context.Context, s *Store, key string, fallback T) T {
	raw, ok, err := s.kv.Get(ctx, s.key(key))
	if err != nil {
		logger.Warnw("storage read failed", "key", key, "error", err)
		return fallback
	}
	if !ok || len(raw) == 0 {
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Warnw("failed to parse storage payload", "key", key, "error", err)
		return fallback
	}
	return v
}

// Set encodes value as JSON under key.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, s.key(key), b); err != nil {
		logger.Errorw("storage write failed", "key", key, "error", err)
		return err
	}
	return nil
}

// SetMany encodes all values and writes them in one backend call. Nothing is
// written if any value fails to encode.
func (s *Store) SetMany(ctx context.Context, values map[string]any) error {
	raw := make(map[string][]byte, len(values))
	for k, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", k, err)
		}
		raw[s.key(k)] = b
	}
	if err := s.kv.SetMany(ctx, raw); err != nil {
		logger.Errorw("storage batch write failed", "keys", len(raw), "error", err)
		return err
	}
	return nil
}

func (s *Store) Users(ctx context.Context) []models.User {
	return Get(ctx, s, KeyUsers, []models.User{})
}

func (s *Store) SetUsers(ctx context.Context, v []models.User) error {
	return s.Set(ctx, KeyUsers, v)
}

func (s *Store) Documents(ctx context.Context) []models.Document {
	return Get(ctx, s, KeyDocuments, []models.Document{})
}

func (s *Store) SetDocuments(ctx context.Context, v []models.Document) error {
	return s.Set(ctx, KeyDocuments, v)
}

func (s *Store) Transactions(ctx context.Context) []models.Transaction {
	return Get(ctx, s, KeyTransactions, []models.Transaction{})
}

func (s *Store) SetTransactions(ctx context.Context, v []models.Transaction) error {
	return s.Set(ctx, KeyTransactions, v)
}

func (s *Store) Reviews(ctx context.Context) []models.Review {
	return Get(ctx, s, KeyReviews, []models.Review{})
}

func (s *Store) SetReviews(ctx context.Context, v []models.Review) error {
	return s.Set(ctx, KeyReviews, v)
}

func (s *Store) scalar(ctx context.Context, key string) string {
	raw, ok, err := s.kv.Get(ctx, s.key(key))
	if err != nil {
		logger.Warnw("storage read failed", "key", key, "error", err)
		return ""
	}
	if !ok {
		return ""
	}
	return string(raw)
}

// CurrentUserID returns the selected persona id, or "" when none is stored.
func (s *Store) CurrentUserID(ctx context.Context) string {
	return s.scalar(ctx, KeyCurrentUserID)
}

// SetCurrentUserID stores the persona id; an empty id removes the key.
func (s *Store) SetCurrentUserID(ctx context.Context, id string) error {
	if id == "" {
		return s.kv.Delete(ctx, s.key(KeyCurrentUserID))
	}
	return s.kv.Set(ctx, s.key(KeyCurrentUserID), []byte(id))
}

func (s *Store) SeedVersion(ctx context.Context) string {
	return s.scalar(ctx, KeySeedVersion)
}

func (s *Store) SetSeedVersion(ctx context.Context, v string) error {
	return s.kv.Set(ctx, s.key(KeySeedVersion), []byte(v))
}

// ClearAll removes every key owned by the store.
func (s *Store) ClearAll(ctx context.Context) error {
	keys := make([]string, 0, len(AllKeys))
	for _, k := range AllKeys {
		keys = append(keys, s.key(k))
	}
	return s.kv.Delete(ctx, keys...)
}

// Ping reports whether the backend answers reads. Used by readiness checks.
func (s *Store) Ping(ctx context.Context) error {
	_, _, err := s.kv.Get(ctx, s.key(KeySeedVersion))
	return err
}
