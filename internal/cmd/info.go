package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/meilikey/meilikey/internal/logging"
)

func newInfoCmd(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display information about the search engine",
		Args:  NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := loadClientConfig(cmd.Flags())
			if err != nil {
				return err
			}

			engine, err := cli.apiEngine(cmd.Flags())
			if err != nil {
				return err
			}

			status := "up"
			if err := engine.Health(); err != nil {
				logging.Debugf("health check: %s", err)
				status = "unreachable"
			}

			serverVersion := "unknown"
			if v, err := engine.Version(); err == nil {
				serverVersion = v
			} else {
				logging.Debugf("server version: %s", err)
			}

			w := tabwriter.NewWriter(cli.Stdout, 0, 0, 1, ' ', tabwriter.AlignRight)
			defer w.Flush()

			fmt.Fprintln(w)
			fmt.Fprintln(w, "Host:\t", config.Host)
			fmt.Fprintln(w, "Status:\t", status)
			fmt.Fprintln(w, "Version:\t", serverVersion)
			fmt.Fprintln(w)

			return nil
		},
	}
}
