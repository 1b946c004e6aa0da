package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Run a single poll pass over the subscribed channels",
	Long: `Lists the authorized account's subscriptions, checks each channel for a
new upload and processes anything not seen before. Requires a completed
OAuth flow (see the serve command's /auth/start endpoint).`,
	Args: cobra.NoArgs,
	RunE: runMonitor,
}

func runMonitor(cmd *cobra.Command, _ []string) error {
	a, err := newApp(configPath)
	if err != nil {
		return err
	}

	session, err := a.newSession()
	if err != nil {
		return err
	}

	m, store, err := a.newMonitor(session)
	if err != nil {
		return err
	}
	defer store.Close()

	report, err := m.RunOnce(cmd.Context())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
