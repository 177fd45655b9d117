package commands

import (
	"github.com/spf13/cobra"

	"github.com/hupe1980/hermes"
	"github.com/hupe1980/hermes/cmd/hermes/internal/config"
)

// app carries the global flags and the configuration loaded for a command run.
type app struct {
	envFile  string
	store    string
	root     string
	prefix   string
	logLevel string

	cfg    *config.Config
	logger *hermes.Logger
}

// NewRootCommand builds the hermes command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "hermes",
		Short: "Feature vector encoding, distances and storage",
		Long: `hermes - serialize feature vectors, compare them and keep them in a blob store.

Configuration is read from HERMES_* environment variables, optionally
preloaded from a .env file:
  HERMES_STORE        memory | local | minio | s3 (default local)
  HERMES_ROOT         local store directory (default hermes-data)
  HERMES_BUCKET       bucket for minio and s3
  HERMES_ENDPOINT     minio endpoint or custom s3 endpoint
  HERMES_PREFIX       blob name prefix (default vectors)
  HERMES_COMPRESSION  none | lz4 | zstd (default zstd)
  HERMES_LOG_LEVEL    debug | info | warn | error (default warn)

Examples:
  hermes encode --id 7 1,2.5,-3
  hermes decode BwAAAAIAAAAAAAAAAADwPwAAAAAAAABA
  hermes distance --metric all 0,0 3,4
  hermes store put --id 7 1,2.5,-3
  hermes store nearest --k 3 1,2,3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.envFile, "env-file", "", "load environment variables from file")
	pf.StringVar(&a.store, "store", "", "blob store kind (memory|local|minio|s3)")
	pf.StringVar(&a.root, "root", "", "local store root directory")
	pf.StringVar(&a.prefix, "prefix", "", "blob name prefix")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug|info|warn|error)")

	cmd.AddCommand(
		newEncodeCommand(a),
		newDecodeCommand(a),
		newDistanceCommand(a),
		newStoreCommand(a),
	)
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store = a.store
	}
	if flags.Changed("root") {
		cfg.Root = a.root
	}
	if flags.Changed("prefix") {
		cfg.Prefix = a.prefix
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = cfg.Logger(cmd.ErrOrStderr())
	return nil
}
