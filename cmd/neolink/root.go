// Package neolink is the CLI entrypoint for the RTSP re-streaming core:
// it loads configuration, wires up logging, and starts one Supervisor
// per configured camera, which serves all of that camera's stream
// variants.
package neolink

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var Fatal = FatalErrorHandler

func init() { //nolint:gochecknoinits
	NewRootCmd()
}

// NewRootCmd builds the root command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   getCommandLineExecutable(),
		Short: "neolink",
		Long:  `RTSP re-streaming core for multi-camera bridges`,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	rootCmd := NewRootCmd()
	rootCmd.SetContext(context.Background())
	rootCmd.SetOutput(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		Fatal(rootCmd, err.Error(), 1)
	}
}
