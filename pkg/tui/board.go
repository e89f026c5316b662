package tui

import (
	"fmt"
	"sort"

	"github.com/ptomes1987/regiojet-delays/pkg/config"
	"github.com/ptomes1987/regiojet-delays/pkg/regiojet"
	"github.com/ptomes1987/regiojet-delays/pkg/report"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// stationOptions builds the select options from the configured station
// mapping, sorted by display name.
func stationOptions(stations map[string]string) []huh.Option[string] {
	names := make([]string, 0, len(stations))
	for name := range stations {
		names = append(names, name)
	}
	sort.Strings(names)

	titler := cases.Title(language.Czech)
	options := make([]huh.Option[string], 0, len(names))
	for _, name := range names {
		options = append(options, huh.NewOption(titler.String(name), stations[name]))
	}
	return options
}

// RunBoardTUI launches the interactive station board experience
func RunBoardTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var stationID string
	var direction string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which station?").
				Options(stationOptions(cfg.Stations)...).
				Value(&stationID),

			huh.NewSelect[string]().
				Title("Arrivals or departures?").
				Options(
					huh.NewOption("Departures", string(regiojet.DirectionDepartures)),
					huh.NewOption("Arrivals", string(regiojet.DirectionArrivals)),
				).
				Value(&direction),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	client := newClient(cfg)
	reporter := report.New(cfg.Stations)

	var records []regiojet.ServiceRecord
	var fetchErr error

	_ = spinner.New().
		Title("Fetching live services...").
		Action(func() {
			records, fetchErr = client.FetchServices(stationID, regiojet.Direction(direction), 10)
		}).
		Run()

	if fetchErr != nil {
		return fmt.Errorf("could not fetch services: %w", fetchErr)
	}

	fmt.Println(reporter.Board(stationID, regiojet.Direction(direction), records))
	return nil
}

// RunRouteTUI launches the interactive route delay check
func RunRouteTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var fromID, toID string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("From which station?").
				Options(stationOptions(cfg.Stations)...).
				Value(&fromID),

			huh.NewSelect[string]().
				Title("To which station?").
				Options(stationOptions(cfg.Stations)...).
				Value(&toID),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if fromID == toID {
		fmt.Println(errorStyle.Render("Origin and destination are the same station."))
		return nil
	}

	client := newClient(cfg)
	reporter := report.New(cfg.Stations)

	var connections []regiojet.Connection
	var fetchErr error

	_ = spinner.New().
		Title("Checking connections...").
		Action(func() {
			connections, fetchErr = client.FindConnections(fromID, toID, 50)
		}).
		Run()

	if fetchErr != nil {
		return fmt.Errorf("could not fetch connections: %w", fetchErr)
	}

	fmt.Println(reporter.Connections(fromID, toID, connections))
	return nil
}

// newClient builds an API client honoring the user's base URL and
// language overrides.
func newClient(cfg *config.AppConfig) *regiojet.Client {
	baseURL := regiojet.DefaultBaseURL
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}
	return regiojet.NewClientWith(baseURL, cfg.Language)
}
