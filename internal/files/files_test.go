package files

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordnotes/nordnotes/backend/go-services/internal/config"
)

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "documents/doc-1/notes.pdf", ObjectKey("doc-1", "notes.pdf"))
	assert.Equal(t, "documents/doc-1/notes.pdf", ObjectKey("doc-1", "../../notes.pdf"))
	assert.Equal(t, "documents/doc-1/notes.pdf", ObjectKey("doc-1", `C:\Users\x\notes.pdf`))
	assert.Equal(t, "documents/doc-1/file", ObjectKey("doc-1", ""))
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore("http://files.local")

	require.NoError(t, s.Upload(ctx, "documents/a/x.pdf", strings.NewReader("pdf"), 3, "application/pdf"))
	rc, err := s.Open(ctx, "documents/a/x.pdf")
	require.NoError(t, err)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "pdf", string(b))

	u, err := s.PreviewURL(ctx, "documents/a/x.pdf")
	require.NoError(t, err)
	assert.Equal(t, "http://files.local/documents/a/x.pdf", u)

	_, err = s.Open(ctx, "missing")
	assert.Error(t, err)
}

func TestNewMinIOStore_RequiresEndpoint(t *testing.T) {
	_, err := NewMinIOStore(context.Background(), config.MinIOConfig{})
	assert.Error(t, err)
}

// Integration: runs only when MINIO_ENDPOINT points at a live server.
func TestMinIOStore_Integration(t *testing.T) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		t.Skip("MINIO_ENDPOINT not set")
	}
	ctx := context.Background()
	s, err := NewMinIOStore(ctx, config.MinIOConfig{
		Endpoint:   endpoint,
		AccessKey:  os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey:  os.Getenv("MINIO_SECRET_KEY"),
		Bucket:     "nordnotes-test",
		PreviewTTL: time.Minute,
	})
	require.NoError(t, err)

	key := ObjectKey("doc-it", "it.txt")
	require.NoError(t, s.Upload(ctx, key, strings.NewReader("hello"), 5, "text/plain"))
	rc, err := s.Open(ctx, key)
	require.NoError(t, err)
	b, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "hello", string(b))

	u, err := s.PreviewURL(ctx, key)
	require.NoError(t, err)
	assert.Contains(t, u, "nordnotes-test")
}
