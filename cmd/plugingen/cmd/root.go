// Package cmd implements the plugingen command line interface.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/plugingen/logger"
	"github.com/teranos/plugingen/version"
)

var (
	rootJSONLogs bool
	rootVerbose  bool
)

// RootCmd is the plugingen root command.
var RootCmd = &cobra.Command{
	Use:   "plugingen",
	Short: "Generate invocation-plugin registration code",
	Long: `plugingen scans Go packages for //plugingen: directives on methods of
graph-IR builder types and generates, per top-level declaring type, one
registration module (a plugin factory) plus a provider entry so the host
compiler can discover every factory without scanning compiled artifacts.

Examples:
  plugingen generate                   # scan per plugingen.toml and generate
  plugingen generate ./ir/...          # explicit package patterns
  plugingen generate --watch           # regenerate on source changes
  plugingen config init                # scaffold plugingen.toml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Initialize(rootJSONLogs, rootVerbose)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Get().String())
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&rootJSONLogs, "json", false, "Structured JSON log output")
	RootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Debug logging (one line per generated factory)")

	RootCmd.AddCommand(generateCmd)
	RootCmd.AddCommand(configCmd)
	RootCmd.AddCommand(versionCmd)
}
