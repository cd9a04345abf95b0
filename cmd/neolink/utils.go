package neolink

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func getCommandLineExecutable() string {
	return os.Args[0]
}

// FatalErrorHandler prints msg (if any) and exits the process with code.
// Execute calls it through the Fatal var rather than directly, so tests
// can swap it out rather than letting a CLI error path call os.Exit
// during `go test`.
func FatalErrorHandler(cmd *cobra.Command, msg string, code int) {
	if len(msg) > 0 {
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		cmd.Print(msg)
	}
	os.Exit(code)
}

// splitAndTrim splits a comma-separated list, trimming whitespace and
// dropping empty entries.
func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
