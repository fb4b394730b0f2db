package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/nordnotes/nordnotes/backend/go-services/internal/database"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/models"
	"github.com/stretchr/testify/require"
)

// Runs against a real MongoDB when MONGODB_URI is set (integration mode).
func TestMongoKV_Integration(t *testing.T) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set")
	}
	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, uri, 5*time.Second)
	require.NoError(t, err)
	defer func() { _ = client.Disconnect(ctx) }()

	col := client.Database("nordnotes_test").Collection("kv_" + time.Now().Format("20060102T150405"))
	defer func() { _ = col.Drop(ctx) }()
	s := New(NewMongoKV(col), DefaultPrefix)

	require.Empty(t, s.Users(ctx))
	require.NoError(t, s.SetMany(ctx, map[string]any{
		KeyUsers:     []models.User{{ID: "u1"}},
		KeyDocuments: []models.Document{{ID: "d1", Title: "Statistikk"}},
	}))
	require.Len(t, s.Users(ctx), 1)
	require.Equal(t, "Statistikk", s.Documents(ctx)[0].Title)

	require.NoError(t, s.SetSeedVersion(ctx, "v1"))
	require.Equal(t, "v1", s.SeedVersion(ctx))

	require.NoError(t, s.ClearAll(ctx))
	require.Empty(t, s.Documents(ctx))
	require.Equal(t, "", s.SeedVersion(ctx))
}
