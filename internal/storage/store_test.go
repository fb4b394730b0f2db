package storage

import (
	"context"
	"testing"
	"time"

	"github.com/nordnotes/nordnotes/backend/go-services/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestStoreCollectionsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	require.Empty(t, s.Users(ctx))

	users := []models.User{{
		ID:       "u1",
		Name:     "Test",
		Role:     models.RoleSeller,
		Country:  models.CountryNorway,
		Balance:  decimal.RequireFromString("88.2"),
		JoinedAt: time.Date(2023, 9, 1, 10, 0, 0, 0, time.UTC),
	}}
	require.NoError(t, s.SetUsers(ctx, users))

	got := s.Users(ctx)
	require.Len(t, got, 1)
	require.Equal(t, "u1", got[0].ID)
	require.True(t, got[0].Balance.Equal(decimal.RequireFromString("88.2")))
	require.True(t, got[0].JoinedAt.Equal(users[0].JoinedAt))
}

func TestStoreMoneyEncodedAsNumber(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	s := New(kv, DefaultPrefix)

	require.NoError(t, s.SetUsers(ctx, []models.User{{ID: "u1", Balance: decimal.RequireFromString("58.5")}}))
	raw, ok, err := kv.Get(ctx, DefaultPrefix+KeyUsers)
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, string(raw), `"balanceNOK":58.5`)
}

func TestStoreCorruptPayloadFallsBack(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	s := New(kv, DefaultPrefix)

	require.NoError(t, kv.Set(ctx, DefaultPrefix+KeyDocuments, []byte("{not json")))
	require.Empty(t, s.Documents(ctx))
	require.Equal(t, []string{"x"}, Get(ctx, s, KeyDocuments, []string{"x"}))
}

func TestStoreScalars(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	require.Equal(t, "", s.CurrentUserID(ctx))
	require.NoError(t, s.SetCurrentUserID(ctx, "user-mathias"))
	require.Equal(t, "user-mathias", s.CurrentUserID(ctx))
	require.NoError(t, s.SetCurrentUserID(ctx, ""))
	require.Equal(t, "", s.CurrentUserID(ctx))

	require.NoError(t, s.SetSeedVersion(ctx, "2025-11-13"))
	require.Equal(t, "2025-11-13", s.SeedVersion(ctx))
}

func TestStoreSetManyAndClearAll(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	s := New(kv, DefaultPrefix)

	err := s.SetMany(ctx, map[string]any{
		KeyTransactions: []models.Transaction{{ID: "t1", Status: models.TransactionCompleted}},
		KeyUsers:        []models.User{{ID: "u1"}},
	})
	require.NoError(t, err)
	require.Len(t, s.Transactions(ctx), 1)
	require.Len(t, s.Users(ctx), 1)
	require.NoError(t, s.SetSeedVersion(ctx, "v"))

	require.NoError(t, s.ClearAll(ctx))
	require.Equal(t, 0, kv.Len())
}

func TestStoreSetManyEncodeFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	s := New(kv, DefaultPrefix)

	err := s.SetMany(ctx, map[string]any{
		KeyUsers:   []models.User{{ID: "u1"}},
		KeyReviews: make(chan int),
	})
	require.Error(t, err)
	require.Equal(t, 0, kv.Len())
}
