package cmd

import (
	"fmt"
	"net/http"

	"github.com/ptomes1987/regiojet-delays/pkg/config"
	"github.com/ptomes1987/regiojet-delays/pkg/webapi"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the configured delay boards as a small JSON API",
	Long:  "Starts an HTTP server exposing GET /api/delays with live arrival and departure delays for every station in your local station list.",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		limit, _ := cmd.Flags().GetInt("limit")

		if limit <= 0 {
			return fmt.Errorf("limit must be a positive number, got %d", limit)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		server := webapi.NewServer(apiClient(cfg), cfg.Stations, limit)

		fmt.Printf("🚄 Serving RegioJet delays on http://%s (stations: %d)\n", addr, len(cfg.Stations))
		return http.ListenAndServe(addr, server.Handler())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", "127.0.0.1:5000", "Listen address")
	serveCmd.Flags().IntP("limit", "l", 10, "Maximum number of services per board")
}
