// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads the survey dataset to the local data path. This
// is acquisition tooling, not part of the explorer session: the explorer
// itself loads only from disk and never retries.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pdiddy/paper-explorer/internal/httputil"
	"github.com/pdiddy/paper-explorer/pkg/types"
)

// Dataset downloads url to dest, retrying rate-limited and transient
// failures. The token, when non-empty, is sent as a bearer token. The file
// is written to a temp path first and renamed into place, so a failed
// download never clobbers an existing dataset.
func Dataset(ctx context.Context, cfg types.FetchConfig, url, token, dest string, w io.Writer) error {
	if url == "" {
		return fmt.Errorf("no dataset URL configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: cfg.Timeout}
	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries, w)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".dataset-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("moving dataset into place: %w", err)
	}

	fmt.Fprintf(w, "fetched %s (%d bytes) -> %s\n", url, n, dest)
	return nil
}
