package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-matchmaker/internal"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/config"
)

const defaultConfigPath = "./config.yml"

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Tic-tac-toe matchmaking server",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "Path to the config file")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and websocket server",
		RunE: func(_ *cobra.Command, _ []string) error {
			conf := config.MustLoad(configPath)

			return app.RunApp(initLogger(conf), conf)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := config.MustLoad(configPath)

			return app.Migrate(cmd.Context(), initLogger(conf), conf)
		},
	})

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
