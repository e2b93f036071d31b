package cmd

import (
	"strings"

	"github.com/meilisearch/meilisearch-go"
	"github.com/spf13/cobra"

	"github.com/meilikey/meilikey/internal/format"
	"github.com/meilikey/meilikey/internal/logging"
)

// listKeysLimit raises the server's default page size; operators with more
// keys than this should use the API directly.
const listKeysLimit = 100

func newListCmd(cli *CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List API keys",
		Args:    NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := cli.apiEngine(cmd.Flags())
			if err != nil {
				return err
			}

			logging.Debugf("call server: list keys")
			keys, err := engine.GetKeys(&meilisearch.KeysQuery{Limit: listKeysLimit})
			if err != nil {
				return err
			}

			type row struct {
				Name    string `header:"NAME"`
				UID     string `header:"UID"`
				Actions string `header:"ACTIONS"`
				Indexes string `header:"INDEXES"`
				Created string `header:"CREATED"`
				Expires string `header:"EXPIRES"`
			}

			var rows []row
			for _, k := range keys.Results {
				rows = append(rows, row{
					Name:    k.Name,
					UID:     k.UID,
					Actions: strings.Join(k.Actions, ","),
					Indexes: strings.Join(k.Indexes, ","),
					Created: format.HumanTime(k.CreatedAt, "never"),
					Expires: format.HumanTime(k.ExpiresAt, "never"),
				})
			}

			if len(rows) > 0 {
				printTable(rows, cli.Stdout)
			} else {
				cli.Output("No API keys found")
			}

			return nil
		},
	}
	return cmd
}
