package cmd

import (
	"fmt"

	"github.com/ptomes1987/regiojet-delays/pkg/config"
	"github.com/ptomes1987/regiojet-delays/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage regiojet-delays configuration",
	Long:  "View or edit your local configuration settings (language, API base URL, station list, default station).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		language, _ := cmd.Flags().GetString("set-language")
		baseURL, _ := cmd.Flags().GetString("set-base-url")
		defaultStation, _ := cmd.Flags().GetString("set-default-station")

		changed := false

		if language != "" {
			cfg.Language = language
			changed = true
		}
		if baseURL != "" {
			cfg.BaseURL = baseURL
			changed = true
		}
		if defaultStation != "" {
			if _, ok := cfg.Stations[defaultStation]; !ok {
				return fmt.Errorf("station %q is not in the configured station list; add it with 'regiojet-delays stations <query> --save'", defaultStation)
			}
			cfg.DefaultStation = defaultStation
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Println("✅ Configuration saved.")
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringP("set-language", "L", "", "Set the X-Lang language code (cs, en, de, sk)")
	configCmd.Flags().StringP("set-base-url", "u", "", "Override the RegioJet API base URL")
	configCmd.Flags().StringP("set-default-station", "s", "", "Set the default station for the zero-argument report")
}
