// Package cli wires the manhattan command line: parse a graph from its
// native dialect, lay it out, and render it, all configurable via a YAML
// file (spec §6.4) or flags.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion overrides the version string shown by --version, normally
// injected via ldflags at build time.
func SetVersion(v string) { version = v }

// Execute runs the manhattan CLI.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "manhattan",
		Short:        "manhattan lays out and renders node-link graphs on an orthogonal grid",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringP("config", "c", "", "path to a YAML config file (spec §6.4)")

	root.AddCommand(newLayoutCmd())

	return root.ExecuteContext(context.Background())
}
