package testinternals

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/2beens/workoutlog/internal/db"
	"github.com/2beens/workoutlog/internal/workout/catalog"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestCatalog is the exercise catalog loaded by SeedCatalog.
var TestCatalog = []catalog.Exercise{
	{Name: "Bench Press", Muscles: "Chest"},
	{Name: "Incline Dumbbell Press", Muscles: "Chest"},
	{Name: "Back Squat", Muscles: "Legs"},
	{Name: "Romanian Deadlift", Muscles: "Legs"},
	{Name: "Pull Up", Muscles: "Back"},
	{Name: "Plank"},
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// NewTestDBPool connects to the local test postgres (POSTGRES_HOST, POSTGRES_PORT,
// POSTGRES_DB), applies the schema and empties every table.
func NewTestDBPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := envOr("POSTGRES_HOST", "localhost")
	t.Logf("using postgres host: %s", host)

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: host,
		DBPort: envOr("POSTGRES_PORT", "5432"),
		DBName: envOr("POSTGRES_DB", "workoutlog_test"),
	})
	require.NoError(t, err)
	t.Cleanup(dbPool.Close)

	require.NoError(t, db.Migrate(ctx, dbPool))
	_, err = dbPool.Exec(ctx, `
		TRUNCATE workout_exercise_history, workout_history, workout_exercises, workouts, exercises, app_user
		RESTART IDENTITY CASCADE;`)
	require.NoError(t, err)

	return dbPool
}

// CreateUser inserts a user with a random email and returns its id.
func CreateUser(t *testing.T, dbPool *pgxpool.Pool) int {
	t.Helper()

	var id int
	err := dbPool.QueryRow(
		context.Background(),
		`INSERT INTO app_user (email, password_hash) VALUES ($1, 'not-a-real-hash') RETURNING id;`,
		gofakeit.Email(),
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// SeedCatalog loads TestCatalog and returns it with the assigned ids.
func SeedCatalog(t *testing.T, dbPool *pgxpool.Pool) []catalog.Exercise {
	t.Helper()

	ctx := context.Background()
	repo := catalog.NewRepo(dbPool)
	inserted, err := repo.Insert(ctx, TestCatalog)
	require.NoError(t, err)
	require.Equal(t, int64(len(TestCatalog)), inserted)

	exercises, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, exercises, len(TestCatalog))
	return exercises
}

// ByName picks an exercise out of a seeded catalog.
func ByName(t *testing.T, exercises []catalog.Exercise, name string) catalog.Exercise {
	t.Helper()
	for _, e := range exercises {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("exercise %q not seeded", name)
	return catalog.Exercise{}
}
