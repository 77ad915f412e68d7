package main

import (
	"fmt"
	"os"

	"landshare-tui/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// -------------------- MAIN --------------------

// cliFlags override the environment when set.
type cliFlags struct {
	admin        string
	functionsURL string
	configPath   string
	rpcURL       string
	dotenv       []string
}

func newRootCmd() *cobra.Command {
	var flags cliFlags

	cmd := &cobra.Command{
		Use:   "landshare",
		Short: "Terminal client for the LandShare land fractionalization platform",
		Long: `landshare connects a wallet address and routes it to the admin console
or the investor dashboard, depending on whether it matches the configured
admin address.

Settings come from the environment (and .env):
  LANDSHARE_ADMIN_ADDRESS   admin wallet address (required)
  LANDSHARE_FUNCTIONS_URL   base URL of the edge functions
  LANDSHARE_FUNCTIONS_KEY   API key sent to the edge functions
  LANDSHARE_CHAIN_ID        expected chain id (default 11155111)
  ETH_RPC_URL               Ethereum JSON-RPC endpoint
  LANDSHARE_CONFIG          config file (default ~/.landshare-config.json)`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := resolveSettings(cmd, flags)
			if err != nil {
				return err
			}

			cfg := config.LoadOrCreate(settings.ConfigPath)
			m := newModel(settings, cfg)
			p := tea.NewProgram(m, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&flags.admin, "admin", "", "admin wallet address")
	cmd.Flags().StringVar(&flags.functionsURL, "functions-url", "", "edge functions base URL")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file path")
	cmd.Flags().StringVar(&flags.rpcURL, "rpc", "", "Ethereum JSON-RPC URL")
	cmd.Flags().StringSliceVar(&flags.dotenv, "env-file", nil, "dotenv files to load (default .env)")

	return cmd
}

// resolveSettings loads settings from the environment and applies the flags
// the user set explicitly.
func resolveSettings(cmd *cobra.Command, flags cliFlags) (config.Settings, error) {
	settings, err := config.LoadSettings(flags.dotenv...)
	if err != nil {
		return config.Settings{}, err
	}

	if cmd.Flags().Changed("admin") {
		settings.AdminAddress = flags.admin
	}
	if cmd.Flags().Changed("functions-url") {
		settings.FunctionsURL = flags.functionsURL
	}
	if cmd.Flags().Changed("config") {
		settings.ConfigPath = flags.configPath
	}
	if cmd.Flags().Changed("rpc") {
		settings.RPCURL = flags.rpcURL
	}

	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
