package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema holds every table the service reads or writes. Statements are
// idempotent, so it is safe to apply on each start.
const Schema = `
CREATE TABLE IF NOT EXISTS app_user
(
    id            SERIAL PRIMARY KEY,
    email         VARCHAR     NOT NULL UNIQUE,
    password_hash VARCHAR     NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS exercises
(
    id      SERIAL PRIMARY KEY,
    name    VARCHAR NOT NULL,
    muscles VARCHAR
);

CREATE TABLE IF NOT EXISTS workouts
(
    id            SERIAL PRIMARY KEY,
    user_id       INTEGER     NOT NULL REFERENCES app_user (id) ON DELETE CASCADE,
    workout_name  VARCHAR     NOT NULL,
    days_per_week INTEGER     NOT NULL CHECK (days_per_week BETWEEN 3 AND 5),
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_workouts_user_created ON workouts (user_id, created_at);

CREATE TABLE IF NOT EXISTS workout_exercises
(
    id          SERIAL PRIMARY KEY,
    workout_id  INTEGER NOT NULL REFERENCES workouts (id) ON DELETE CASCADE,
    exercise_id INTEGER NOT NULL REFERENCES exercises (id),
    day         INTEGER NOT NULL CHECK (day >= 1),
    sets        INTEGER NOT NULL,
    reps        INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS workout_history
(
    id         SERIAL PRIMARY KEY,
    user_id    INTEGER     NOT NULL REFERENCES app_user (id) ON DELETE CASCADE,
    workout_id INTEGER     REFERENCES workouts (id) ON DELETE SET NULL,
    date       DATE        NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_workout_history_user_date ON workout_history (user_id, date);

CREATE TABLE IF NOT EXISTS workout_exercise_history
(
    id                 SERIAL PRIMARY KEY,
    workout_history_id INTEGER     NOT NULL REFERENCES workout_history (id) ON DELETE CASCADE,
    exercise_id        INTEGER     NOT NULL REFERENCES exercises (id),
    weight             NUMERIC     NOT NULL CHECK (weight > 0 AND weight <= 1000),
    created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_weh_exercise ON workout_exercise_history (exercise_id);
`

// Migrate ensures tables exist.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
