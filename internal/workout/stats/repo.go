package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/workoutlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const selectEntries = `
	SELECT h.user_id, h.id, weh.exercise_id, weh.weight, h.date, weh.created_at
	FROM workout_exercise_history weh
	JOIN workout_history h ON h.id = weh.workout_history_id
`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Entries returns every positive weight entry logged by the user.
func (r *Repo) Entries(ctx context.Context, userID int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.entries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		selectEntries+`WHERE h.user_id = $1 AND weh.weight > 0;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (r *Repo) ExerciseEntries(ctx context.Context, userID, exerciseID int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.exercise_entries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("exercise.id", exerciseID))

	rows, err := r.db.Query(
		ctx,
		selectEntries+`
		WHERE h.user_id = $1 AND weh.exercise_id = $2
		ORDER BY h.date, weh.created_at;`,
		userID, exerciseID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (r *Repo) HasSessions(ctx context.Context, userID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.has_sessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var id int
	err = r.db.QueryRow(ctx, `SELECT id FROM workout_history WHERE user_id = $1 LIMIT 1;`, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func scanEntries(rows pgx.Rows) ([]Entry, error) {
	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.UserID, &e.SessionID, &e.ExerciseID, &e.Weight, &e.Date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
