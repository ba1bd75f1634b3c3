// Package main implements workoutctl, the admin CLI for the workoutlog database.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/2beens/workoutlog/internal/config"
	"github.com/2beens/workoutlog/internal/db"
	"github.com/2beens/workoutlog/internal/logging"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var (
	env        string
	configPath string
	logLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "workoutctl",
	Short: "Admin operations for the workoutlog database",
	Long: `workoutctl runs maintenance operations against the workoutlog postgres database,
using the same TOML config file as the service.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(logging.LoggerSetupParams{
			LogToStdout: true,
			LogLevel:    logLevel,
		})
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config.toml", "path for the TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")
}

func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, err
	}

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: cfg.PostgresHost,
		DBPort: cfg.PostgresPort,
		DBName: cfg.PostgresDBName,
		DBUser: cfg.PostgresUser,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return pool, nil
}
