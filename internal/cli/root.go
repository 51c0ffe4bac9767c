package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/starfishstorage/sfcli/internal/client"
	"github.com/starfishstorage/sfcli/internal/config"
)

var (
	cfgFile   string
	cfg       *config.Config
	apiClient *client.Client
)

var rootCmd = &cobra.Command{
	Use:   "sfcli",
	Short: "Starfish inventory client",
	Long:  "Command-line and terminal-UI client for the Starfish storage inventory API.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.LoadFrom(cfgFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if server, _ := cmd.Flags().GetString("server"); server != "" {
			cfg.Server.URL = server
		}
		if username, _ := cmd.Flags().GetString("username"); username != "" {
			cfg.Server.Username = username
		}
		if password, _ := cmd.Flags().GetString("password"); password != "" {
			cfg.Server.Password = password
		}
		apiClient = client.New(cfg.Server.URL, cfg.Server.Username, cfg.Server.Password, cfg.Server.InsecureSkipVerify)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().String("server", "", "server URL (overrides config)")
	rootCmd.PersistentFlags().String("username", "", "basic-auth user (overrides config)")
	rootCmd.PersistentFlags().String("password", "", "basic-auth password (overrides config)")

	rootCmd.AddCommand(volumeCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func getClient() *client.Client {
	return apiClient
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sfcli v0.1.0")
	},
}
