package main

import (
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/notefulapp/noteful-server/internal/config"
	"github.com/notefulapp/noteful-server/internal/di"
	"github.com/notefulapp/noteful-server/internal/logger"
)

var (
	dbPath   string
	envFile  string
	logLevel string

	// injector is built in PersistentPreRunE and shut down by run.
	injector *do.RootScope
)

var rootCmd = &cobra.Command{
	Use:   "noteful",
	Short: "Operate a Noteful database",
	Long: `noteful works directly on the Badger data directory used by the API server.
Stop the server first: Badger allows a single process per directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		injector = di.NewContainer(containerArgs())

		// Logs go to stderr so that stdout stays parseable.
		do.Override(injector, func(i do.Injector) (*logger.Logger, error) {
			cfg, err := do.Invoke[*config.Config](i)
			if err != nil {
				return nil, err
			}
			return logger.New(logger.Config{
				Level:       logger.ParseLevel(cfg.Logger.Level),
				Environment: cfg.App.Environment,
				Writer:      cmd.ErrOrStderr(),
			}), nil
		})

		_, err := do.Invoke[*config.Config](injector)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "Badger data directory (default: $DB_PATH or ~/Noteful/data)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to .env file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}

// containerArgs translates the persistent flags into config flags.
func containerArgs() []string {
	args := []string{"-env-file", envFile, "-log-level", logLevel}
	if dbPath != "" {
		args = append(args, "-db-path", dbPath)
	}
	return args
}

// run executes the command line and releases the container afterwards.
func run(args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	if injector != nil {
		if shutdownErr := di.Shutdown(injector); shutdownErr != nil && err == nil {
			err = fmt.Errorf("shutdown: %w", shutdownErr)
		}
		injector = nil
	}
	return err
}
