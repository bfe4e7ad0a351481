package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mdbed",
	Short: "Markdown embedding and similarity tool",
	Long: `mdbed extracts text nodes from rendered markdown documents, embeds them,
and reports pairs of nodes whose embeddings score above a similarity
threshold.`,
	SilenceUsage: true,
}

// Execute runs the CLI. A first argument that is neither a known subcommand
// nor a flag is treated as a path for the default embed command, so
// "mdbed ./docs" behaves like "mdbed embed ./docs".
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := os.Args[1:]
	if len(args) > 0 && !isKnownCommand(args[0]) && !strings.HasPrefix(args[0], "-") {
		args = append([]string{"embed"}, args...)
	}
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func isKnownCommand(name string) bool {
	for _, c := range rootCmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	// Cobra adds these itself at execution time.
	return name == "help" || name == "completion"
}
