package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/meilikey/meilikey/internal"
	"github.com/meilikey/meilikey/internal/logging"
)

func newVersionCmd(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the client and server versions",
		Args:  NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cli.Stdout, 0, 0, 1, ' ', tabwriter.AlignRight)
			defer w.Flush()

			serverVersion := "not connected"
			if engine, err := cli.apiEngine(cmd.Flags()); err == nil {
				if v, err := engine.Version(); err == nil {
					serverVersion = v
				} else {
					logging.Debugf("server version: %s", err)
				}
			}

			fmt.Fprintln(w)
			fmt.Fprintln(w, "Client:\t", internal.Version)
			fmt.Fprintln(w, "Server:\t", serverVersion)
			fmt.Fprintln(w)

			return nil
		},
	}
}
