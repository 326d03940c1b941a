package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"onlyflans/internal/app"
	"onlyflans/internal/config"
	"onlyflans/pkg/logger"
)

var (
	log logger.Logger
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "onlyflans",
	Short: "OnlyFlans - the flan catalog with a weekly digest",
	Long: `OnlyFlans serves the flan catalog website and JSON API, and runs the
subscriber notifications.

Configuration is read from the environment and an optional .env file found in
the working directory or any parent.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log = logger.NewFromEnv()
		loaded, err := config.Load(log)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openApp wires the application for one-shot commands. The caller closes it.
func openApp() (*app.App, error) {
	application, err := app.New(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("init app: %w", err)
	}
	return application, nil
}

func closeApp(application *app.App) {
	if err := application.Close(); err != nil {
		log.Error("app: close failed", "err", err)
	}
}
