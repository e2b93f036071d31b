package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/meilisearch/meilisearch-go"
	"github.com/spf13/cobra"

	"github.com/meilikey/meilikey/internal/format"
	"github.com/meilikey/meilikey/internal/logging"
)

// knownActions is the vocabulary offered for action auto-completion. The
// server is authoritative; unknown actions are passed through unchanged.
var knownActions = []string{
	"*",
	"search",
	"documents.add", "documents.get", "documents.delete",
	"indexes.create", "indexes.get", "indexes.update", "indexes.delete",
	"tasks.get",
	"settings.get", "settings.update",
	"stats.get",
	"dumps.create",
	"version",
	"keys.get", "keys.create", "keys.update", "keys.delete",
}

type keyActionOptions struct {
	Create bool
	Update bool
	Delete bool

	Actions     string
	Indexes     string
	Expires     string
	Name        string
	Description string
	UID         string

	NonInteractive bool
}

func newKeyCmd(cli *CLI) *cobra.Command {
	var options keyActionOptions

	cmd := &cobra.Command{
		Use:   "key [KEY]",
		Short: "Create, update, or delete an API key",
		Long: `Create, update, or delete an API key on the search engine.

Creation prompts for any field not supplied as a flag, with tab completion
over the known actions and the indexes the engine reports. Update fetches
the existing key first; flags win over stored values.`,
		Example: `
# Create a search-only key for every index, valid for 6 months
$ meilikey key --create --actions=search --indexes=* --expires="6 months"

# Rename an existing key
$ meilikey key --update --name=backend 6062abda-a5aa-4414-ac91-ecd7944c0f8d

# Delete a key
$ meilikey key --delete 6062abda-a5aa-4414-ac91-ecd7944c0f8d
`,
		Args: MaxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key string
			if len(args) > 0 {
				key = args[0]
			}
			return runKeyAction(cli, cmd, key, options)
		},
	}

	cmd.Flags().BoolVar(&options.Create, "create", false, "Create a new API key")
	cmd.Flags().BoolVar(&options.Update, "update", false, "Update the API key named by KEY")
	cmd.Flags().BoolVar(&options.Delete, "delete", false, "Delete the API key named by KEY")
	cmd.Flags().StringVar(&options.Actions, "actions", "", "Comma separated list of actions the key grants")
	cmd.Flags().StringVar(&options.Indexes, "indexes", "", "Comma separated list of indexes the key can reach")
	cmd.Flags().StringVar(&options.Expires, "expires", "", `Relative expiry for the key, e.g. "6 months"`)
	cmd.Flags().StringVar(&options.Name, "name", "", "Human readable name for the key")
	cmd.Flags().StringVar(&options.Description, "description", "", "Description for the key")
	cmd.Flags().StringVar(&options.UID, "uid", "", "Client chosen UID for the new key")
	addNonInteractiveFlag(cmd.Flags(), &options.NonInteractive)

	return cmd
}

func runKeyAction(cli *CLI, cmd *cobra.Command, key string, options keyActionOptions) error {
	selected := 0
	for _, set := range []bool{options.Create, options.Update, options.Delete} {
		if set {
			selected++
		}
	}

	// local validation happens before any remote call
	switch {
	case key == "" && selected == 0:
		return Error{
			Message: "No action specified. Pass a key or one of --create, --update, --delete.",
			Code:    exitCodeUsage,
		}
	case selected > 1:
		return Error{
			Message: "--create, --update, and --delete are mutually exclusive.",
			Code:    exitCodeUsage,
		}
	case (options.Update || options.Delete) && key == "":
		return Error{
			Message: "A key reference is required with --update and --delete.",
			Code:    exitCodeMissingKey,
		}
	}

	engine, err := cli.apiEngine(cmd.Flags())
	if err != nil {
		return err
	}

	switch {
	case options.Delete:
		return deleteKey(cli, engine, key)
	case options.Update:
		return updateKey(cli, engine, key, options)
	default:
		// creation is the default action, also when only a key was given
		return createKey(cli, engine, options)
	}
}

func deleteKey(cli *CLI, engine Engine, key string) error {
	logging.Debugf("call server: delete key %q", key)
	if _, err := engine.DeleteKey(key); err != nil {
		return err
	}

	cli.Output("API key deletion succeeded: %q", key)
	return nil
}

func createKey(cli *CLI, engine Engine, options keyActionOptions) error {
	request, err := collectCreateRequest(cli, engine, options)
	if err != nil {
		return err
	}

	logging.Debugf("call server: create key %q", request.Name)
	resp, err := engine.CreateKey(request)
	if err != nil {
		return err
	}
	if resp.UID == "" {
		return Error{
			Message: "The engine did not return a valid key.",
			Code:    exitCodeNoKeyReturned,
		}
	}

	cli.Output("API key creation succeeded")
	cli.Output("UID: %s", resp.UID)
	if resp.Key != "" {
		cli.Output("Key: %s", resp.Key)
	}
	if !resp.ExpiresAt.IsZero() {
		cli.Output("Expires: %s (%s)",
			resp.ExpiresAt.UTC().Format(time.RFC3339),
			format.HumanTime(resp.ExpiresAt, "never"))
	}
	return nil
}

// collectCreateRequest gathers every field of a new key, prompting for the
// ones not supplied as flags unless running non-interactively.
func collectCreateRequest(cli *CLI, engine Engine, options keyActionOptions) (*meilisearch.Key, error) {
	actions := defaultString(options.Actions, "*")
	indexes := defaultString(options.Indexes, "*")
	expires := options.Expires
	name := options.Name
	description := options.Description

	if !options.NonInteractive {
		prompter := cli.Prompter()

		var err error
		if actions, err = prompter.Suggest("Actions:", actions, knownActions); err != nil {
			return nil, err
		}

		logging.Debugf("call server: list indexes")
		indexUIDs, err := engine.ListIndexUIDs()
		if err != nil {
			return nil, err
		}
		if indexes, err = prompter.Suggest("Indexes:", indexes, append([]string{"*"}, indexUIDs...)); err != nil {
			return nil, err
		}

		if expires, err = prompter.Input(`Expires (e.g. "6 months", empty for none):`, expires); err != nil {
			return nil, err
		}
		if name, err = prompter.Input("Name:", name); err != nil {
			return nil, err
		}
		if description, err = prompter.Input("Description:", description); err != nil {
			return nil, err
		}
	}

	request := &meilisearch.Key{
		Name:        name,
		Description: description,
		UID:         options.UID,
		Actions:     splitList(actions),
		Indexes:     splitList(indexes),
	}

	if expires != "" {
		expiresAt, err := format.ResolveRelative(time.Now(), expires)
		if err != nil {
			return nil, Error{
				Message:       fmt.Sprintf("Invalid expiry %q", expires),
				Code:          exitCodeUsage,
				OriginalError: err,
			}
		}
		request.ExpiresAt = expiresAt
	}
	return request, nil
}

func updateKey(cli *CLI, engine Engine, key string, options keyActionOptions) error {
	logging.Debugf("call server: get key %q", key)
	existing, err := engine.GetKey(key)
	if err != nil {
		return err
	}

	name := defaultString(options.Name, existing.Name)
	description := defaultString(options.Description, existing.Description)

	if !options.NonInteractive {
		prompter := cli.Prompter()
		if name, err = prompter.Input("Name:", name); err != nil {
			return err
		}
		if description, err = prompter.Input("Description:", description); err != nil {
			return err
		}
	}

	// flags win, then the stored key
	request := &meilisearch.Key{
		Name:        name,
		Description: description,
		Actions:     existing.Actions,
		Indexes:     existing.Indexes,
		ExpiresAt:   existing.ExpiresAt,
	}
	if options.Actions != "" {
		request.Actions = splitList(options.Actions)
	}
	if options.Indexes != "" {
		request.Indexes = splitList(options.Indexes)
	}
	if options.Expires != "" {
		expiresAt, err := format.ResolveRelative(time.Now(), options.Expires)
		if err != nil {
			return Error{
				Message:       fmt.Sprintf("Invalid expiry %q", options.Expires),
				Code:          exitCodeUsage,
				OriginalError: err,
			}
		}
		request.ExpiresAt = expiresAt
	}

	logging.Debugf("call server: update key %q", key)
	resp, err := engine.UpdateKey(key, request)
	if err != nil {
		return err
	}
	if resp.UID == "" {
		return Error{
			Message: "The engine did not return a valid key.",
			Code:    exitCodeNoKeyReturned,
		}
	}

	cli.Output("API key modification succeeded: %q", key)
	return nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
