package cmd

import (
	"fmt"
	"strings"

	"github.com/ptomes1987/regiojet-delays/pkg/config"
	"github.com/ptomes1987/regiojet-delays/pkg/regiojet"
	"github.com/ptomes1987/regiojet-delays/pkg/tui"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var stationsCmd = &cobra.Command{
	Use:   "stations <query>",
	Short: "Search the RegioJet station directory",
	Long:  "Searches the RegioJet locations dataset for stations by city or station name and prints their IDs. With --save, a chosen match is stored in your local station list.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		save, _ := cmd.Flags().GetBool("save")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		client := apiClient(cfg)

		var matches []regiojet.StationMatch
		var fetchErr error

		_ = spinner.New().
			Title(fmt.Sprintf("Searching stations for '%s'...", query)).
			Action(func() {
				matches, fetchErr = client.SearchStations(query)
			}).
			Run()

		if fetchErr != nil {
			return fmt.Errorf("station search failed: %w", fetchErr)
		}

		if len(matches) == 0 {
			fmt.Printf("No stations found matching '%s'.\n", query)
			return nil
		}

		if !save {
			for _, m := range matches {
				fmt.Printf("%s - %s (ID: %s)\n", m.City, m.Station, m.StationID)
				if m.Fullname != "" {
					fmt.Printf("    %s\n", m.Fullname)
				}
				fmt.Printf("    Address: %s\n", m.Address)
			}
			return nil
		}

		options := make([]huh.Option[int], 0, len(matches))
		for i, m := range matches {
			options = append(options, huh.NewOption(fmt.Sprintf("%s - %s (ID: %s)", m.City, m.Station, m.StationID), i))
		}

		var picked int

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[int]().
					Title("Select the station to save").
					Options(options...).
					Height(12).
					Value(&picked),
			),
		).WithTheme(tui.GetTheme())

		if err := form.Run(); err != nil {
			return err
		}

		match := matches[picked]
		name := strings.ToLower(fmt.Sprintf("%s %s", match.City, match.Station))
		cfg.Stations[name] = match.StationID

		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Printf("✅ Saved station: %s (ID: %s)\n", name, match.StationID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stationsCmd)

	stationsCmd.Flags().BoolP("save", "S", false, "Interactively pick a match and store it in the local station list")
}
