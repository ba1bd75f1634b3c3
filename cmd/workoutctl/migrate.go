package main

import (
	"context"
	"time"

	"github.com/2beens/workoutlog/internal/db"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Create the app_user, exercises, workouts, workout_exercises, workout_history and
workout_exercise_history tables. Running it again on an up to date database is a no-op.

Examples:
  workoutctl migrate --env production --config /etc/workoutlog/config.toml`,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		return err
	}

	log.Infoln("schema migrated")
	return nil
}
