package cli

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/philipp01105/prefixlog/core"
	"github.com/philipp01105/prefixlog/formatter"
	"github.com/philipp01105/prefixlog/logger"
)

type renderFlags struct {
	format       string
	name         string
	level        string
	placeholders []string
}

func newRenderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the prefix a logger would prepend",
		Example: `  prefixlog render --name db --level warn
  prefixlog render --format "[%app] %loggerName:" -p %app=shop`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := core.ParseLevel(flags.level)
			if err != nil {
				return err
			}
			placeholders, err := parsePlaceholders(flags.placeholders)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatter.Prefix(flags.format, placeholders, flags.name, level))
			return err
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", logger.DefaultPrefixFormat, "prefix template")
	cmd.Flags().StringVar(&flags.name, "name", "app", "logger name")
	cmd.Flags().StringVar(&flags.level, "level", "info", "level: trace, debug, info, warn or error")
	cmd.Flags().StringArrayVarP(&flags.placeholders, "placeholder", "p", nil, "placeholder as token=value (repeatable)")
	return cmd
}

// parsePlaceholders turns token=value pairs into a placeholder map keyed
// by template token; the leading '%' of the token is optional. The value
// may itself contain '='.
func parsePlaceholders(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		token, value, ok := strings.Cut(pair, "=")
		if !ok || token == "" {
			return nil, errors.Errorf("invalid placeholder %q, expected token=value", pair)
		}
		out[formatter.Token(token)] = value
	}
	return out, nil
}
