package tui

import (
	"fmt"
	"strings"

	"github.com/ptomes1987/regiojet-delays/pkg/config"
	"github.com/ptomes1987/regiojet-delays/pkg/regiojet"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Default Station", "default"),
						huh.NewOption("Set Response Language", "language"),
						huh.NewOption("Add Station (Search RegioJet)", "add"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		if action == "back" {
			return nil
		}

		if action == "theme" {
			err = runSetThemeTUI(cfg)
		} else if action == "default" {
			err = runSetDefaultStationTUI(cfg)
		} else if action == "language" {
			err = runSetLanguageTUI(cfg)
		} else if action == "add" {
			err = runAddStationTUI(cfg)
		} else if action == "view" {
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.regiojet-delays.json) ---"))
			fmt.Printf("Language: %s\n", cfg.Language)
			if cfg.BaseURL == "" {
				fmt.Println("API Base URL: default")
			} else {
				fmt.Printf("API Base URL: %s\n", cfg.BaseURL)
			}
			fmt.Printf("Default Station: %s\n", cfg.DefaultStation)
			fmt.Printf("Saved Stations: %d\n", len(cfg.Stations))
			fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func runSetDefaultStationTUI(cfg *config.AppConfig) error {
	var selectedID string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select your default station for the zero-argument report").
				Options(stationOptions(cfg.Stations)...).
				Value(&selectedID),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	for name, id := range cfg.Stations {
		if id == selectedID {
			cfg.DefaultStation = name
			break
		}
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Default station changed to: %s\n", cfg.DefaultStation)))
	return nil
}

func runSetLanguageTUI(cfg *config.AppConfig) error {
	var selected string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select the language for route labels").
				Options(
					huh.NewOption("Čeština", "cs"),
					huh.NewOption("English", "en"),
					huh.NewOption("Deutsch", "de"),
					huh.NewOption("Slovenčina", "sk"),
				).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Language = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Response language changed to: %s\n", selected)))
	return nil
}

func runAddStationTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter a city or station name to search for").
				Description("The match will be saved to your local station list.").
				Placeholder("e.g. Plzeň or Brno...").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "" {
		fmt.Println("Operation cancelled: No search term provided.")
		return nil
	}

	client := newClient(cfg)
	var matches []regiojet.StationMatch
	var fetchErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Searching RegioJet network for '%s'...", input)).
		Action(func() {
			matches, fetchErr = client.SearchStations(input)
		}).
		Run()

	if fetchErr != nil {
		return fmt.Errorf("could not search stations: %w", fetchErr)
	}

	if len(matches) == 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("❌ No matching stations found for '%s'", input)))
		return nil
	}

	matchOptions := make([]huh.Option[string], 0, len(matches))
	idToName := make(map[string]string, len(matches))
	for _, m := range matches {
		display := fmt.Sprintf("%s - %s (ID: %s)", m.City, m.Station, m.StationID)
		matchOptions = append(matchOptions, huh.NewOption(display, m.StationID))
		idToName[m.StationID] = strings.ToLower(fmt.Sprintf("%s %s", m.City, m.Station))
	}

	var selectedID string

	selectForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select the station to save").
				Options(matchOptions...).
				Height(12).
				Value(&selectedID),
		),
	).WithTheme(GetTheme())

	if err := selectForm.Run(); err != nil {
		return err
	}

	name := idToName[selectedID]
	cfg.Stations[name] = selectedID

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Successfully saved station: %s (ID: %s)\n", name, selectedID)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s RegioJet Yellow", colorBlock("220")), "220"),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		customForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex color code or ANSI 256 number").
					Placeholder("#ffcc00 or 220").
					Value(&input),
			),
		).WithTheme(GetTheme())

		if err := customForm.Run(); err != nil {
			return err
		}
		if input == "" {
			fmt.Println("Operation cancelled: No color provided.")
			return nil
		}
	}

	cfg.AccentColor = input
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Accent color saved.\n"))
	return nil
}
