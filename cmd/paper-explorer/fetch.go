// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-explorer/internal/fetch"
	"github.com/pdiddy/paper-explorer/internal/secrets"
	"github.com/pdiddy/paper-explorer/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the dataset to the local data path",
	Long: `Fetch downloads the dataset from the configured URL into the local data
path, retrying rate-limited and transient failures. A bearer token is read
from .secrets/dataset-token when present.`,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	url, _ := cmd.Flags().GetString("url")
	if url == "" {
		url = viper.GetString("dataset.url")
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	maxRetries, _ := cmd.Flags().GetInt("max-retries")

	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: "paper-explorer/" + version,
		},
		MaxRetries: maxRetries,
	}

	return fetch.Dataset(context.Background(), cfg, url,
		loadedSecrets[secrets.DatasetToken], datasetPath(cmd), os.Stdout)
}

func init() {
	fetchCmd.Flags().String("url", "", "dataset URL (default: dataset.url from config)")
	fetchCmd.Flags().Duration("timeout", 30*time.Second, "HTTP request timeout")
	fetchCmd.Flags().Int("max-retries", 0, "retry attempts on 429/5xx (0 = default)")
	rootCmd.AddCommand(fetchCmd)
}
