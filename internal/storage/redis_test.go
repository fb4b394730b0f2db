package storage

import (
	"context"
	"testing"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*Store, *mr.Miniredis) {
	t.Helper()
	m, err := mr.Run()
	require.NoError(t, err)
	t.Cleanup(m.Close)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(NewRedisKV(client), "test:"), m
}

func TestRedisKV_CollectionsAndScalars(t *testing.T) {
	ctx := context.Background()
	s, m := newRedisStore(t)

	require.NoError(t, s.SetReviews(ctx, []models.Review{{ID: "r1", Rating: 5}}))
	got := s.Reviews(ctx)
	require.Len(t, got, 1)
	require.Equal(t, 5, got[0].Rating)

	require.NoError(t, s.SetCurrentUserID(ctx, "user-elin"))
	v, err := m.Get("test:" + KeyCurrentUserID)
	require.NoError(t, err)
	require.Equal(t, "user-elin", v)
}

func TestRedisKV_PhysicalKeyNames(t *testing.T) {
	ctx := context.Background()
	m, err := mr.Run()
	require.NoError(t, err)
	t.Cleanup(m.Close)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	s := New(NewRedisKV(client), DefaultPrefix)

	require.NoError(t, s.SetSeedVersion(ctx, "2025-11-13"))
	require.NoError(t, s.SetCurrentUserID(ctx, "user-mathias"))
	require.NoError(t, s.SetUsers(ctx, []models.User{{ID: "u1"}}))

	v, err := m.Get("nordnotes_seed_version")
	require.NoError(t, err)
	require.Equal(t, "2025-11-13", v)
	require.True(t, m.Exists("nordnotes_currentUserId"))
	require.True(t, m.Exists("nordnotes_users"))
}

func TestRedisKV_SetManyAndDelete(t *testing.T) {
	ctx := context.Background()
	s, m := newRedisStore(t)

	require.NoError(t, s.SetMany(ctx, map[string]any{
		KeyUsers:        []models.User{{ID: "u1"}},
		KeyTransactions: []models.Transaction{{ID: "t1"}},
	}))
	require.True(t, m.Exists("test:"+KeyUsers))
	require.True(t, m.Exists("test:"+KeyTransactions))

	require.NoError(t, s.ClearAll(ctx))
	require.False(t, m.Exists("test:"+KeyUsers))
	require.False(t, m.Exists("test:"+KeyTransactions))
}

func TestRedisKV_CorruptValueFallsBack(t *testing.T) {
	ctx := context.Background()
	s, m := newRedisStore(t)

	require.NoError(t, m.Set("test:"+KeyUsers, "[{broken"))
	require.Empty(t, s.Users(ctx))
}

func TestRedisKV_UnavailableFallsBack(t *testing.T) {
	ctx := context.Background()
	s, m := newRedisStore(t)
	require.NoError(t, s.SetUsers(ctx, []models.User{{ID: "u1"}}))
	require.NoError(t, s.Ping(ctx))

	m.Close()
	require.Error(t, s.Ping(ctx))
	require.Empty(t, s.Users(ctx))
	require.Error(t, s.SetUsers(ctx, nil))
}
