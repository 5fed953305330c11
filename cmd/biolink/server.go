package main

import (
	"github.com/matsen/biolink/internal/config"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Show the resolved server profile",
	Long: `Show the server profile commands will use, after applying --server,
BIOLINK_SERVER, BIOLINK_URL and ~/.config/biolink/config.yml.`,
	Args: cobra.NoArgs,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

// ServerResponse is the JSON output of the server command.
type ServerResponse struct {
	Name       string        `json:"name"`
	AppBase    string        `json:"app_base"`
	ConfigPath string        `json:"config_path"`
	Server     config.Server `json:"server"`
}

func runServer(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		exitWithError(ExitConfigError, "%v\n\n%s", err, config.HelpfulConfigMessage())
	}

	resp := ServerResponse{
		Name:       client.Server().Name,
		AppBase:    client.AppBase(),
		ConfigPath: config.GlobalConfigPath(),
		Server:     client.Server(),
	}
	if humanOutput {
		outputHuman("Server:   %s\n", resp.Name)
		outputHuman("App:      %s\n", resp.AppBase)
		outputHuman("BioLink:  %s\n", resp.Server.BiolinkURL)
		outputHuman("SciGraph: %s\n", resp.Server.SciGraphURL)
		outputHuman("Analyzer: %s\n", resp.Server.AnalyzeURL)
		outputHuman("Assets:   %s\n", resp.Server.AssetsURL)
		outputHuman("Config:   %s\n", resp.ConfigPath)
		return nil
	}
	return outputJSON(resp)
}
