package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/2beens/workoutlog/internal/workout/catalog"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	csvPath string
	dryRun  bool
)

func init() {
	seedExercisesCmd.Flags().StringVar(&csvPath, "csv", "", "path of the name,muscles CSV file (required)")
	seedExercisesCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print what would be inserted without writing")
	_ = seedExercisesCmd.MarkFlagRequired("csv")

	rootCmd.AddCommand(seedExercisesCmd)
}

var seedExercisesCmd = &cobra.Command{
	Use:   "seed-exercises",
	Short: "Load the exercise catalog from a CSV file",
	Long: `Load exercises from a CSV file with "name,muscles" rows; muscles is a comma
separated list, so quote it when it holds more than one tag. Exercises whose name
already exists are skipped.

Examples:
  workoutctl seed-exercises --csv ./exercises.csv
  workoutctl seed-exercises --csv ./exercises.csv --dry-run`,
	RunE: runSeedExercises,
}

func runSeedExercises(cmd *cobra.Command, _ []string) error {
	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warnf("close csv file: %s", err)
		}
	}()

	exercises, err := catalog.ReadCSV(f)
	if err != nil {
		return err
	}
	if len(exercises) == 0 {
		return errors.New("no exercises in csv file")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := catalog.NewRepo(pool)
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}

	missing := newExercises(existing, exercises)
	if dryRun {
		writeDryRun(cmd.OutOrStdout(), missing, len(exercises))
		return nil
	}
	if len(missing) == 0 {
		log.Infoln("catalog already up to date")
		return nil
	}

	inserted, err := repo.Insert(ctx, missing)
	if err != nil {
		return err
	}

	log.Infof("%d of %d exercises inserted", inserted, len(exercises))
	return nil
}

// writeDryRun lists what a real run would insert.
func writeDryRun(w io.Writer, missing []catalog.Exercise, total int) {
	for _, e := range missing {
		fmt.Fprintf(w, "  %-40s %s\n", e.Name, e.Muscles)
	}
	fmt.Fprintf(w, "%d of %d exercises would be inserted\n", len(missing), total)
}

// newExercises returns the exercises of seed whose name is not in the catalog yet.
func newExercises(existing, seed []catalog.Exercise) []catalog.Exercise {
	known := make(map[string]bool, len(existing))
	for _, e := range existing {
		known[strings.ToLower(e.Name)] = true
	}

	var missing []catalog.Exercise
	for _, e := range seed {
		key := strings.ToLower(e.Name)
		if known[key] {
			continue
		}
		known[key] = true
		missing = append(missing, e)
	}
	return missing
}
