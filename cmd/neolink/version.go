package neolink

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// GetVersion reports the binary's VCS revision, read from Go's build
// info when available (e.g. set automatically by `go build` from a git
// checkout), falling back to "<unknown>" otherwise.
func GetVersion() string {
	version := "<unknown>"
	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, kv := range info.Settings {
			if kv.Value == "" {
				continue
			}
			if kv.Key == "vcs.revision" {
				version = kv.Value
			}
		}
	}
	return version
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(GetVersion())
		},
	}
}
