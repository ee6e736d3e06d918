// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-explorer/internal/httputil"
	"github.com/pdiddy/paper-explorer/pkg/types"
)

func init() {
	httputil.RetryBaseDelay = time.Millisecond
}

func testConfig() types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   5 * time.Second,
			UserAgent: "paper-explorer-test",
		},
		MaxRetries: 2,
	}
}

func TestDatasetDownloads(t *testing.T) {
	var gotAuth, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`[{"title": "A Paper"}]`))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "data", "papers.json")
	err := Dataset(context.Background(), testConfig(), srv.URL, "sekrit", dest, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "Bearer sekrit", gotAuth)
	assert.Equal(t, "paper-explorer-test", gotUA)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, `[{"title": "A Paper"}]`, string(data))
}

func TestDatasetNoToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "papers.json")
	require.NoError(t, Dataset(context.Background(), testConfig(), srv.URL, "", dest, io.Discard))
	assert.Empty(t, gotAuth)
}

func TestDatasetRetriesRateLimit(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "papers.json")
	require.NoError(t, Dataset(context.Background(), testConfig(), srv.URL, "", dest, io.Discard))
	assert.Equal(t, 3, calls)
}

// A failed download must not clobber an existing dataset.
func TestDatasetKeepsExistingOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "papers.json")
	require.NoError(t, os.WriteFile(dest, []byte("previous"), 0o644))

	err := Dataset(context.Background(), testConfig(), srv.URL, "", dest, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestDatasetEmptyURL(t *testing.T) {
	err := Dataset(context.Background(), testConfig(), "", "", "papers.json", io.Discard)
	require.Error(t, err)
}
