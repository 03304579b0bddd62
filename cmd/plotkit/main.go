package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "plotkit",
		Short: "Annotation model tooling for plotkit documents",
		Long: `plotkit manages the declarative annotation models (tooltips,
labels, toolbars) that a rendering frontend consumes.

Commands:

  • serve     serve a live document over HTTP/WebSocket
  • validate  check serialized documents against the model schemas
  • version   print version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		validateCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
