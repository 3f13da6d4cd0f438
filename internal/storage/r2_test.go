package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"chefpay/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewR2ClientRequiresConfig(t *testing.T) {
	_, err := NewR2Client(context.Background(), config.R2Config{Endpoint: "https://r2.example.com"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestUpload(t *testing.T) {
	var mu sync.Mutex
	var gotPath, gotType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewR2Client(context.Background(), config.R2Config{
		Endpoint:      srv.URL,
		AccessKey:     "ak",
		SecretKey:     "sk",
		Bucket:        "menus",
		PublicBaseURL: "https://cdn.example.com/",
	})
	require.NoError(t, err)

	url, err := client.Upload(context.Background(), "exports/7/week.xlsx", []byte("xlsx-bytes"), "application/octet-stream")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/exports/7/week.xlsx", url)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "/menus/exports/7/week.xlsx", gotPath)
	assert.Equal(t, "application/octet-stream", gotType)
	assert.Contains(t, string(gotBody), "xlsx-bytes")
}
