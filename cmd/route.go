package cmd

import (
	"fmt"

	"github.com/ptomes1987/regiojet-delays/pkg/config"
	"github.com/ptomes1987/regiojet-delays/pkg/regiojet"
	"github.com/ptomes1987/regiojet-delays/pkg/report"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Check delays on connections between two stations",
	Long:  "Scans the departures board of the origin station for services calling at the destination and reports their delays, times and platforms.",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		limit, _ := cmd.Flags().GetInt("limit")
		threshold, _ := cmd.Flags().GetInt("threshold")

		if limit <= 0 {
			return fmt.Errorf("limit must be a positive number, got %d", limit)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		reporter := report.New(cfg.Stations)

		fromID, ok := reporter.StationID(from)
		if !ok {
			return fmt.Errorf("unknown origin station %q", from)
		}
		toID, ok := reporter.StationID(to)
		if !ok {
			return fmt.Errorf("unknown destination station %q", to)
		}

		client := apiClient(cfg)

		var connections []regiojet.Connection
		var fetchErr error

		_ = spinner.New().
			Title(fmt.Sprintf("Checking connections %s -> %s...", reporter.StationName(fromID), reporter.StationName(toID))).
			Action(func() {
				connections, fetchErr = client.CheckDelays(fromID, toID, limit, threshold)
			}).
			Run()

		if fetchErr != nil {
			return fmt.Errorf("failed to fetch connections: %w", fetchErr)
		}

		fmt.Println(reporter.Connections(fromID, toID, connections))

		if threshold <= 0 && len(connections) > 0 {
			records := make([]regiojet.ServiceRecord, 0, len(connections))
			for _, conn := range connections {
				records = append(records, conn.ServiceRecord)
			}
			fmt.Print(reporter.Summary(regiojet.Summarize(records)))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(routeCmd)

	routeCmd.Flags().StringP("from", "f", "", "Origin station name or ID")
	routeCmd.Flags().StringP("to", "t", "", "Destination station name or ID")
	routeCmd.Flags().IntP("limit", "l", 50, "How many departures to scan at the origin")
	routeCmd.Flags().IntP("threshold", "T", 0, "Only show connections delayed at least this many minutes")
	routeCmd.MarkFlagRequired("from")
	routeCmd.MarkFlagRequired("to")
}
