package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/workoutlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, name, muscles FROM exercises ORDER BY name, id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		var (
			e       Exercise
			muscles *string
		)
		if err := rows.Scan(&e.ID, &e.Name, &muscles); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if muscles != nil {
			e.Muscles = *muscles
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))
	return exercises, nil
}

// Insert bulk loads catalog entries; used when seeding the catalog.
func (r *Repo) Insert(ctx context.Context, exercises []Exercise) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))

	rows := make([][]any, 0, len(exercises))
	for _, e := range exercises {
		var muscles *string
		if e.Muscles != "" {
			m := e.Muscles
			muscles = &m
		}
		rows = append(rows, []any{e.Name, muscles})
	}

	return r.db.CopyFrom(
		ctx,
		pgx.Identifier{"exercises"},
		[]string{"name", "muscles"},
		pgx.CopyFromRows(rows),
	)
}
