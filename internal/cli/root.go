package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the prefixlog command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "prefixlog",
		Short: "Render and emit prefixed log lines",
		Long: `prefixlog exercises a logger registry from the command line.

Prefix templates may reference %loggerName, %logLevel and any placeholder
token; %% is a literal percent sign. Configuration comes from a YAML file,
an optional .env file and PREFIXLOG_* environment variables.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newRenderCommand(),
		newEmitCommand(),
		newShowCommand(),
	)
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
