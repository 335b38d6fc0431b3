package main

import (
	"github.com/spf13/cobra"
)

const defaultServerURL = "http://127.0.0.1:8080"

// NewRootCmd creates the labkit command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "labkit",
		Short: "Tool server with a typed request router",
		Long: `labkit - a tool server built on a typed request router.

Run "labkit serve" to start the server, then use "labkit tools" and
"labkit invoke" to talk to it.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("url", defaultServerURL, "base URL of a running tool server")

	root.AddCommand(
		newServeCmd(),
		newToolsCmd(),
		newInvokeCmd(),
	)
	return root
}
