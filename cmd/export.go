package cmd

import (
	"fmt"
	"os"

	"github.com/ptomes1987/regiojet-delays/pkg/config"
	"github.com/ptomes1987/regiojet-delays/pkg/exporter"
	"github.com/ptomes1987/regiojet-delays/pkg/regiojet"
	"github.com/ptomes1987/regiojet-delays/pkg/report"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export upcoming connections to an ICS calendar file",
	Long:  `Export the upcoming connections between two stations to an ICS file you can import into any calendar application.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		output, _ := cmd.Flags().GetString("output")
		limit, _ := cmd.Flags().GetInt("limit")

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
			Title(fmt.Sprintf("Exporting connections %s -> %s to %s...", reporter.StationName(fromID), reporter.StationName(toID), output)).
			Action(func() {
				connections, fetchErr = client.FindConnections(fromID, toID, limit)
			}).
			Run()

		if fetchErr != nil {
			return fmt.Errorf("failed to fetch connections: %w", fetchErr)
		}

		if len(connections) == 0 {
			return fmt.Errorf("no connections found between %s and %s", from, to)
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		err = exporter.GenerateICS(reporter.StationName(fromID), reporter.StationName(toID), connections, file)
		if err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d connections to %s\n", len(connections), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("from", "f", "", "Origin station name or ID")
	exportCmd.Flags().StringP("to", "t", "", "Destination station name or ID")
	exportCmd.Flags().StringP("output", "o", "connections.ics", "Output file path")
	exportCmd.Flags().IntP("limit", "l", 50, "How many departures to scan at the origin")
	exportCmd.MarkFlagRequired("from")
	exportCmd.MarkFlagRequired("to")
}
