package cmd

import (
	"fmt"
	"os"

	"github.com/ptomes1987/regiojet-delays/pkg/config"
	"github.com/ptomes1987/regiojet-delays/pkg/regiojet"
	"github.com/ptomes1987/regiojet-delays/pkg/report"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "regiojet-delays",
	Short: "A CLI for live RegioJet arrival and departure delays",
	Long: `regiojet-delays queries the public RegioJet API for scheduled services
at bus and train stations and reports their current delays.

Run without arguments to print arrivals and departures for your default
station.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		reporter := report.New(cfg.Stations)
		stationID, ok := reporter.StationID(cfg.DefaultStation)
		if !ok {
			return fmt.Errorf("default station %q is not in the configured station list", cfg.DefaultStation)
		}

		client := apiClient(cfg)

		// Errors per direction are reported but do not fail the run
		for _, dir := range []regiojet.Direction{regiojet.DirectionArrivals, regiojet.DirectionDepartures} {
			records, err := client.FetchServices(stationID, dir, 10)
			if err != nil {
				fmt.Fprintf(os.Stderr, "❌ Failed to fetch %s for %s: %v\n", dir, reporter.StationName(stationID), err)
				continue
			}
			fmt.Println(reporter.Board(stationID, dir, records))
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// apiClient builds a client honoring the config's base URL and language
// overrides.
func apiClient(cfg *config.AppConfig) *regiojet.Client {
	baseURL := regiojet.DefaultBaseURL
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}
	return regiojet.NewClientWith(baseURL, cfg.Language)
}
