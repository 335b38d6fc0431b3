package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/labkit/app/toolserver"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func clientFor(cmd *cobra.Command) (*toolserver.Client, error) {
	url, err := cmd.Flags().GetString("url")
	if err != nil {
		return nil, err
	}
	return toolserver.NewClient(url), nil
}

func newToolsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools of a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := clientFor(cmd)
			if err != nil {
				return err
			}
			tools, err := c.ListTools(cmd.Context())
			if err != nil {
				return fmt.Errorf("list tools: %w", err)
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), tools)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, t := range tools {
				fmt.Fprintf(w, "%s\t%s\n", t.Name, t.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full catalog as JSON")
	return cmd
}

func newInvokeCmd() *cobra.Command {
	var execute bool

	cmd := &cobra.Command{
		Use:   "invoke <tool> [key=value...]",
		Short: "Invoke a tool on a running server",
		Long: `Invoke a tool on a running server.

Arguments are key=value pairs. Values that parse as JSON keep their type,
so a=6 is a number and flag=true a boolean; anything else is a string.`,
		Example: `  labkit invoke calculator 'expression=2 * (3 + 4)'
  labkit invoke --execute arithmetic operation=add a=2 b=3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolArgs, err := toolserver.ParseArgs(args[1:])
			if err != nil {
				return err
			}
			c, err := clientFor(cmd)
			if err != nil {
				return err
			}

			call := c.Invoke
			if execute {
				call = c.Execute
			}
			result, err := call(cmd.Context(), args[0], toolArgs)
			if err != nil {
				return fmt.Errorf("invoke %s: %w", args[0], err)
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().BoolVar(&execute, "execute", false, "use POST /execute, which reports failures as errors")
	return cmd
}

func printJSON(w io.Writer, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}
