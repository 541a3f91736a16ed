package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipp01105/prefixlog/config"
	"github.com/philipp01105/prefixlog/core"
	"github.com/philipp01105/prefixlog/logger"
)

type loadFlags struct {
	configFile string
	envFile    string
	noEnv      bool
}

func (f *loadFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVar(&f.envFile, "env-file", "", ".env file loaded before reading PREFIXLOG_* variables")
	cmd.Flags().BoolVar(&f.noEnv, "no-env", false, "ignore PREFIXLOG_* environment variables")
}

// registry loads the configuration described by f and applies it to a
// new registry writing to out.
func (f *loadFlags) registry(out any) (*logger.Registry, error) {
	var opts []config.LoaderOption
	if f.envFile != "" {
		opts = append(opts, config.WithEnvFile(f.envFile))
	}
	if f.noEnv {
		opts = append(opts, config.WithoutEnv())
	}

	fc, err := config.Load(f.configFile, opts...)
	if err != nil {
		return nil, err
	}
	reg := logger.NewBuilder().WithOutput(out).Build()
	if err := fc.Apply(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

type emitFlags struct {
	loadFlags
	sink  string
	name  string
	level string
}

func newEmitCommand() *cobra.Command {
	var flags emitFlags

	cmd := &cobra.Command{
		Use:   "emit [message...]",
		Short: "Write one message through a configured logger",
		Example: `  prefixlog emit --name db --level warn slow query
  prefixlog emit -c prefixlog.yaml --sink zap --name api started`,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := core.ParseLevel(flags.level)
			if err != nil {
				return err
			}
			s, err := newSink(flags.sink, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.flush()

			reg, err := flags.registry(s.out)
			if err != nil {
				return err
			}
			l, err := reg.GetLogger(flags.name)
			if err != nil {
				return err
			}

			msg := make([]any, len(args))
			for i, a := range args {
				msg[i] = a
			}
			l.Log(level, msg...)
			return nil
		},
	}

	flags.loadFlags.register(cmd)
	cmd.Flags().StringVar(&flags.sink, "sink", "console", "output: "+strings.Join(sinkNames(), ", "))
	cmd.Flags().StringVar(&flags.name, "name", "app", "logger name")
	cmd.Flags().StringVar(&flags.level, "level", "info", "message level")
	return cmd
}
