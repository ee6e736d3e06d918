// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-explorer/internal/explore"
	"github.com/pdiddy/paper-explorer/internal/webui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the explorer web UI",
	Long: `Serve loads the dataset once and serves the explorer UI: a filterable,
sortable table and card view with active-filter chips and CSV export.

If the dataset cannot be loaded the UI still starts and shows the failure,
with empty presentations; no partial dataset is ever served.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = viper.GetString("serve.addr")
	}

	var server *webui.Server
	records, err := loadRecords(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		server = webui.NewErrorServer(err)
	} else {
		fmt.Fprintf(os.Stderr, "Loaded %d records from %s\n", len(records), datasetPath(cmd))
		server = webui.NewServer(explore.NewEngine(records))
	}

	return server.ListenAndServe(addr)
}

func init() {
	serveCmd.Flags().String("addr", "", "HTTP listen address (default :7033)")
	rootCmd.AddCommand(serveCmd)
}
