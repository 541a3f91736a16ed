package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/prefixlog/config"
)

func newShowCommand() *cobra.Command {
	var flags loadFlags

	cmd := &cobra.Command{
		Use:   "show [logger...]",
		Short: "Print the runtime defaults and the effective configuration of loggers",
		Long: `show loads the configuration like emit does and prints it as YAML: the
runtime defaults, then the resolved configuration of every named logger
and of every logger the configuration file mentions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := flags.registry(nil)
			if err != nil {
				return err
			}

			names := args
			for name := range reg.PerLoggerConfig() {
				names = append(names, name)
			}

			out := config.FileConfig{
				Defaults: config.FromConfig(reg.DefaultConfig()),
				Loggers:  make(map[string]config.LoggerConfig, len(names)),
			}
			for _, name := range names {
				eff, err := reg.EffectiveConfig(name)
				if err != nil {
					return err
				}
				out.Loggers[strings.TrimSpace(name)] = config.FromConfig(eff)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(out); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	flags.register(cmd)
	return cmd
}
