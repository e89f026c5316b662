package cmd

import (
	"fmt"
	"strings"

	"github.com/ptomes1987/regiojet-delays/pkg/config"
	"github.com/ptomes1987/regiojet-delays/pkg/regiojet"
	"github.com/ptomes1987/regiojet-delays/pkg/report"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show live delays for one or more stations",
	Long:  "Fetches scheduled services for the given stations and reports the current delay of each, classified as on time or delayed.",
	RunE: func(cmd *cobra.Command, args []string) error {
		stationFlag, _ := cmd.Flags().GetString("station")
		directionFlag, _ := cmd.Flags().GetString("direction")
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if stationFlag == "" {
			stationFlag = cfg.DefaultStation
		}
		if limit <= 0 {
			return fmt.Errorf("limit must be a positive number, got %d", limit)
		}

		var directions []regiojet.Direction
		switch directionFlag {
		case "departures":
			directions = []regiojet.Direction{regiojet.DirectionDepartures}
		case "arrivals":
			directions = []regiojet.Direction{regiojet.DirectionArrivals}
		case "both":
			directions = []regiojet.Direction{regiojet.DirectionArrivals, regiojet.DirectionDepartures}
		default:
			return fmt.Errorf("invalid direction %q: must be arrivals, departures or both", directionFlag)
		}

		client := apiClient(cfg)
		reporter := report.New(cfg.Stations)

		// One station failing must not block the others
		for _, ref := range strings.Split(stationFlag, ",") {
			ref = strings.TrimSpace(ref)
			stationID, ok := reporter.StationID(ref)
			if !ok {
				fmt.Printf("⚠️ Warning: Unknown station '%s'. Skipping.\n", ref)
				continue
			}

			for _, dir := range directions {
				var records []regiojet.ServiceRecord
				var fetchErr error

				_ = spinner.New().
					Title(fmt.Sprintf("Fetching %s for %s...", dir, reporter.StationName(stationID))).
					Action(func() {
						records, fetchErr = client.FetchServices(stationID, dir, limit)
					}).
					Run()

				if fetchErr != nil {
					fmt.Printf("❌ Failed to fetch %s for %s: %v\n", dir, reporter.StationName(stationID), fetchErr)
					continue
				}

				fmt.Println(reporter.Board(stationID, dir, records))
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)

	boardCmd.Flags().StringP("station", "s", "", "Station name or ID; comma-separate for multiple (default: configured station)")
	boardCmd.Flags().StringP("direction", "d", "both", "Which schedule to query: arrivals, departures or both")
	boardCmd.Flags().IntP("limit", "l", 10, "Maximum number of services per board")
}
